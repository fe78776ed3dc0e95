package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hetvrp/internal/check"
	"hetvrp/internal/customer"
	"hetvrp/internal/geo"
)

func TestDistancesSymmetric(t *testing.T) {
	cs, err := customer.RandomCustomers(30, geo.GeoVec2{Latitude: 35.96, Longitude: -83.92}, 20, 1, 6, 3)
	require.NoError(t, err)
	g := New(cs)
	require.Equal(t, 31, g.Size())

	for i := 0; i < g.Size(); i++ {
		assert.Zero(t, g.VanDistance(i, i))
		assert.Zero(t, g.DroneDistance(i, i))
		for j := 0; j < g.Size(); j++ {
			assert.Equal(t, g.VanDistance(i, j), g.VanDistance(j, i))
			assert.Equal(t, g.DroneDistance(i, j), g.DroneDistance(j, i))
			assert.GreaterOrEqual(t, g.VanDistance(i, j)+1e-12, g.DroneDistance(i, j))
		}
	}
}

func TestDistancesMatchCustomers(t *testing.T) {
	cs := customer.NewSet(geo.Vec2{}, []customer.Customer{
		customer.New(geo.Vec2{X: 3, Y: 4}, 1),
		customer.New(geo.Vec2{X: -1, Y: 1}, 1),
	})
	g := New(cs)
	assert.Equal(t, 5.0, g.DroneDistance(0, 1))
	assert.Equal(t, 7.0, g.VanDistance(1, 0))
	assert.Equal(t, 7.0, g.Distance(geo.Manhattan, 1, 2))
	assert.Equal(t, g.DroneDistance(1, 2), g.Distance(geo.Euclidean, 2, 1))
	assert.Same(t, cs, g.Customers())
}

func TestDepotOnlyGraph(t *testing.T) {
	g := New(customer.NewSet(geo.Vec2{}, nil))
	assert.Equal(t, 1, g.Size())
	assert.Zero(t, g.VanDistance(0, 0))
}

func TestZeroGraphPanicsWhenChecked(t *testing.T) {
	if !check.Enabled {
		t.Skip("built with vrp_unchecked")
	}
	var g Graph
	assert.PanicsWithValue(t, ErrNoCustomers, func() { g.Size() })
	assert.PanicsWithValue(t, ErrNoCustomers, func() { g.Customers() })
	assert.PanicsWithValue(t, ErrNoCustomers, func() { New(nil) })
}
