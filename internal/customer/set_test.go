package customer

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hetvrp/internal/geo"
)

var knoxville = geo.GeoVec2{Latitude: 35.9606, Longitude: -83.9207}

func TestNewSetPrependsDepot(t *testing.T) {
	depot := geo.Vec2{X: 1, Y: 1}
	s := NewSet(depot, []Customer{
		New(geo.Vec2{X: 2, Y: 3}, 4),
		New(geo.Vec2{X: -1, Y: 0}, 2),
	})
	require.Equal(t, 3, s.Size())
	assert.Equal(t, depot, s.Depot().Pos())
	assert.Zero(t, s.Depot().Demand())
	assert.Equal(t, 4.0, s.Node(1).Demand())
	assert.Equal(t, []geo.Vec2{{X: 1, Y: 1}, {X: 2, Y: 3}, {X: -1, Y: 0}}, s.Positions())
}

func TestNewSetEmptyStillHasDepot(t *testing.T) {
	s := NewSet(geo.Vec2{}, nil)
	assert.Equal(t, 1, s.Size())
}

func TestNodesIsACopy(t *testing.T) {
	s := NewSet(geo.Vec2{}, []Customer{New(geo.Vec2{X: 1}, 1)})
	nodes := s.Nodes()
	nodes[1] = New(geo.Vec2{X: 99}, 99)
	assert.Equal(t, 1.0, s.Node(1).Pos().X)
}

func TestRandomCustomersReproducible(t *testing.T) {
	a, err := RandomCustomers(25, knoxville, 20, 1, 6, 42)
	require.NoError(t, err)
	b, err := RandomCustomers(25, knoxville, 20, 1, 6, 42)
	require.NoError(t, err)
	assert.Equal(t, a.Nodes(), b.Nodes())

	c, err := RandomCustomers(25, knoxville, 20, 1, 6, 43)
	require.NoError(t, err)
	assert.NotEqual(t, a.Nodes(), c.Nodes())
}

func TestRandomCustomersSeedZeroIsDeterministic(t *testing.T) {
	a, err := RandomCustomers(10, geo.GeoVec2{}, 20, 1, 6, 0)
	require.NoError(t, err)
	b, err := RandomCustomers(10, geo.GeoVec2{}, 20, 1, 6, 0)
	require.NoError(t, err)
	assert.Equal(t, a.Nodes(), b.Nodes())
}

func TestRandomCustomersBounds(t *testing.T) {
	const box = 10.0
	s, err := RandomCustomers(200, knoxville, box, 2, 5, 7)
	require.NoError(t, err)
	require.Equal(t, 201, s.Size())
	assert.Equal(t, geo.Vec2{}, s.Depot().Pos())
	assert.Zero(t, s.Depot().Demand())

	for i := 1; i < s.Size(); i++ {
		c := s.Node(i)
		assert.LessOrEqual(t, math.Abs(c.Pos().X), box/2+1e-6, "customer %d", i)
		assert.LessOrEqual(t, math.Abs(c.Pos().Y), box/2+1e-6, "customer %d", i)
		d := c.Demand()
		assert.Equal(t, math.Trunc(d), d)
		assert.GreaterOrEqual(t, d, 2.0)
		assert.LessOrEqual(t, d, 5.0)
	}
}

func TestRandomCustomersAutoSeed(t *testing.T) {
	s, err := RandomCustomers(3, knoxville, 5, 1, 1, AutoSeed)
	require.NoError(t, err)
	assert.Equal(t, 4, s.Size())

	// Passed through an interface, the seed keeps its uint64 type.
	assert.Equal(t, uint64(math.MaxUint64), AutoSeed)
	assert.IsType(t, uint64(0), AutoSeed)
}

func TestRandomCustomersInvalid(t *testing.T) {
	_, err := RandomCustomers(-1, knoxville, 5, 1, 2, 0)
	assert.ErrorIs(t, err, ErrInvalidCount)
	_, err = RandomCustomers(1, knoxville, -5, 1, 2, 0)
	assert.ErrorIs(t, err, ErrInvalidBox)
	_, err = RandomCustomers(1, knoxville, 5, 3, 2, 0)
	assert.ErrorIs(t, err, ErrInvalidDemand)
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "{}", FormatList([]int{}))
	assert.Equal(t, "{1, 2, 3}", FormatList([]int{1, 2, 3}))

	s := NewSet(geo.Vec2{}, []Customer{New(geo.Vec2{X: 1.5, Y: 2}, 3)})
	assert.Equal(t, "{((0, 0), 0), ((1.5, 2), 3)}", s.String())
	assert.Equal(t, "{(0, 0), (1.5, 2)}", FormatList(s.Positions()))
}

func TestDistance(t *testing.T) {
	a := New(geo.Vec2{}, 1)
	b := New(geo.Vec2{X: 3, Y: 4}, 1)
	assert.Equal(t, 5.0, Distance(geo.Euclidean, a, b))
	assert.Equal(t, 7.0, Distance(geo.Manhattan, a, b))
}
