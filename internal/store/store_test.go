package store

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"hetvrp/internal/customer"
	"hetvrp/internal/geo"
)

func sampleSet(t *testing.T) *customer.Set {
	t.Helper()
	cs, err := customer.RandomCustomers(6, geo.GeoVec2{Latitude: 40.7128, Longitude: -74.006}, 10, 1, 5, 17)
	require.NoError(t, err)
	return cs
}

// exerciseStore runs the behavior every backend shares.
func exerciseStore(t *testing.T, s Store) {
	ctx := context.Background()
	cs := sampleSet(t)

	id, err := s.SaveInstance(ctx, "nyc", cs)
	require.NoError(t, err)
	require.NotEmpty(t, id)

	in, err := s.LoadInstance(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, id, in.ID)
	assert.Equal(t, "nyc", in.Name)
	assert.Equal(t, cs.Size(), in.Size)
	assert.False(t, in.CreatedAt.IsZero())
	assert.Equal(t, cs.Nodes(), in.Customers.Nodes())

	id2, err := s.SaveInstance(ctx, "second", customer.NewSet(geo.Vec2{X: 1, Y: 2}, nil))
	require.NoError(t, err)

	list, err := s.ListInstances(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, id, list[0].ID)
	assert.Equal(t, id2, list[1].ID)
	assert.Equal(t, 1, list[1].Size)

	require.NoError(t, s.DeleteInstance(ctx, id))
	_, err = s.LoadInstance(ctx, id)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, s.DeleteInstance(ctx, id), ErrNotFound)

	list, err = s.ListInstances(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "second", list[0].Name)

	in, err = s.LoadInstance(ctx, id2)
	require.NoError(t, err)
	assert.Equal(t, geo.Vec2{X: 1, Y: 2}, in.Customers.Depot().Pos())

	require.NoError(t, s.Close())
}

func TestMemory(t *testing.T) {
	exerciseStore(t, NewMemory())
}

func TestRedis(t *testing.T) {
	mr := miniredis.RunT(t)
	r, err := NewRedis(context.Background(), "redis://"+mr.Addr(), zap.NewNop())
	require.NoError(t, err)
	exerciseStore(t, r)
}

func TestRedisSkipsDanglingIndex(t *testing.T) {
	mr := miniredis.RunT(t)
	ctx := context.Background()
	r, err := NewRedis(ctx, "redis://"+mr.Addr(), zap.NewNop())
	require.NoError(t, err)
	defer r.Close()

	id, err := r.SaveInstance(ctx, "gone", sampleSet(t))
	require.NoError(t, err)
	mr.Del("instance:" + id)

	list, err := r.ListInstances(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestNewRedisErrors(t *testing.T) {
	_, err := NewRedis(context.Background(), "not a url", zap.NewNop())
	assert.Error(t, err)

	mr, err := miniredis.Run()
	require.NoError(t, err)
	addr := mr.Addr()
	mr.Close()
	_, err = NewRedis(context.Background(), "redis://"+addr, zap.NewNop())
	assert.Error(t, err)
}

func TestOpenFallsBackToMemory(t *testing.T) {
	s, err := Open(context.Background(), "", "", zap.NewNop())
	require.NoError(t, err)
	assert.IsType(t, &Memory{}, s)

	mr := miniredis.RunT(t)
	s, err = Open(context.Background(), "", "redis://"+mr.Addr(), zap.NewNop())
	require.NoError(t, err)
	assert.IsType(t, &Redis{}, s)
	require.NoError(t, s.Close())
}

func TestCodecKeepsDepotAndDemands(t *testing.T) {
	cs := customer.NewSet(geo.Vec2{X: -3, Y: 4}, []customer.Customer{
		customer.New(geo.Vec2{X: 1.25, Y: 0}, 2),
		customer.New(geo.Vec2{X: 0, Y: -7}, 6),
	})
	body, err := encodeSet(cs)
	require.NoError(t, err)
	assert.JSONEq(t, `{"depot":{"x":-3,"y":4},"customers":[{"x":1.25,"y":0,"demand":2},{"x":0,"y":-7,"demand":6}]}`, string(body))

	back, err := decodeSet(body)
	require.NoError(t, err)
	assert.Equal(t, cs.Nodes(), back.Nodes())

	_, err = decodeSet([]byte("{"))
	assert.Error(t, err)
}
