package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hetvrp/internal/fleet"
	"hetvrp/internal/geo"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(body), 0o644))
	return p
}

func TestLoadFleetPlaceholder(t *testing.T) {
	f, err := LoadFleet("")
	require.NoError(t, err)
	want, err := fleet.New(fleet.DefaultConfig())
	require.NoError(t, err)
	assert.Equal(t, want, f)
}

func TestLoadFleetFile(t *testing.T) {
	p := writeFile(t, "fleet.yaml", `
auto_count: 1
van_count: 2
drone_count: 0
truck_drone_count: 1
costs:
  fuel: {cost: 3.5, cost_rate: 0.5}
van: {capacity: 1000, max_range: 150, cost: 12}
`)
	f, err := LoadFleet(p)
	require.NoError(t, err)
	assert.Equal(t, 2, f.VanCount())
	assert.Equal(t, 0, f.DroneCount())
	assert.Equal(t, 3, f.FleetCount())
	assert.Equal(t, 3.5, f.Cost(fleet.Fuel))
	assert.Equal(t, 0.5, f.CostRate(fleet.Fuel))
	assert.Equal(t, 10.0, f.Cost(fleet.Labor))
	assert.Equal(t, fleet.Vehicle{Capacity: 1000, MaxRange: 150, Cost: 12}, f.Vehicle(fleet.Van))
	assert.Equal(t, 496.0, f.Vehicle(fleet.Autonomous).Capacity)
}

func TestLoadFleetErrors(t *testing.T) {
	_, err := LoadFleet(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = LoadFleet(writeFile(t, "bad.yaml", "van_count: [1"))
	assert.Error(t, err)

	_, err = LoadFleet(writeFile(t, "td.yaml", "van_count: 1\ndrone_count: 1\ntruck_drone_count: 3\n"))
	assert.ErrorIs(t, err, fleet.ErrInvalidFleet)
}

func TestParseInstancePlanar(t *testing.T) {
	cs, err := ParseInstance([]byte(`
depot: {x: 1, y: -1}
customers:
  - {x: 2, y: 3, demand: 4}
  - {x: -5, y: 0.5, demand: 1}
`))
	require.NoError(t, err)
	require.Equal(t, 3, cs.Size())
	assert.Equal(t, geo.Vec2{X: 1, Y: -1}, cs.Depot().Pos())
	assert.Zero(t, cs.Depot().Demand())
	assert.Equal(t, geo.Vec2{X: -5, Y: 0.5}, cs.Node(2).Pos())
	assert.Equal(t, 4.0, cs.Node(1).Demand())
}

func TestParseInstanceGeographic(t *testing.T) {
	cs, err := ParseInstance([]byte(`
center: {latitude: 35.9606, longitude: -83.9207}
customers:
  - {latitude: 35.9606, longitude: -83.9207, demand: 2}
  - {latitude: 36.0606, longitude: -83.9207, demand: 3}
`))
	require.NoError(t, err)
	require.Equal(t, 3, cs.Size())
	assert.Equal(t, geo.Vec2{}, cs.Depot().Pos())
	assert.InDelta(t, 0, geo.Length(cs.Node(1).Pos()), 1e-9)
	assert.InDelta(t, geo.EarthRadiusMiles*geo.Radians(0.1), cs.Node(2).Pos().Y, 1e-6)
	assert.InDelta(t, 0, cs.Node(2).Pos().X, 1e-9)
}

func TestParseInstanceErrors(t *testing.T) {
	for name, doc := range map[string]string{
		"empty":         "customers: []",
		"no center":     "customers:\n  - {latitude: 1, longitude: 2, demand: 1}",
		"mixed":         "center: {latitude: 0, longitude: 0}\ncustomers:\n  - {x: 1, latitude: 1, longitude: 2, demand: 1}",
		"partial":       "customers:\n  - {x: 1, demand: 1}",
		"negative":      "customers:\n  - {x: 1, y: 1, demand: -2}",
		"depot, center": "depot: {x: 0, y: 0}\ncenter: {latitude: 0, longitude: 0}\ncustomers:\n  - {x: 1, y: 1, demand: 1}",
	} {
		_, err := ParseInstance([]byte(doc))
		assert.ErrorIs(t, err, ErrInvalidOption, name)
	}
	_, err := ParseInstance([]byte("customers: {"))
	assert.Error(t, err)
}

func TestLoadInstanceFile(t *testing.T) {
	p := writeFile(t, "inst.yaml", "customers:\n  - {x: 1, y: 1, demand: 1}\n")
	cs, err := LoadInstance(p)
	require.NoError(t, err)
	assert.Equal(t, 2, cs.Size())

	_, err = LoadInstance(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadEnv(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("REDIS_URL", "redis://already:6379/0")
	p := writeFile(t, ".env", "DATABASE_URL=postgres://u@localhost/vrp\nREDIS_URL=redis://other:6379/1\n")

	env, err := LoadEnv(p)
	require.NoError(t, err)
	assert.Equal(t, "redis://already:6379/0", env.RedisURL)

	_, err = LoadEnv(filepath.Join(t.TempDir(), "missing.env"))
	assert.NoError(t, err)
}
