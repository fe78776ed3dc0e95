// Package route implements the vehicle route topologies a search mutates:
// circular tours for base, autonomous and van vehicles, depot round trips
// for drones, and a truck tour carrying drone sorties for truck-drones.
//
// Every route keeps its cost up to date on each insert and remove, so Cost
// is O(1). ManualCost recomputes the same value from scratch and exists to
// audit the running total.
//
// Arguments are validated unless the module is built with -tags
// vrp_unchecked; see package check. A route belongs to one goroutine at a
// time and must not outlive its graph.
package route

import (
	"errors"

	"hetvrp/internal/check"
	"hetvrp/internal/fleet"
	"hetvrp/internal/graph"
)

var (
	ErrOutOfRange      = errors.New("route: index out of range")
	ErrCapacity        = errors.New("route: route is full")
	ErrInvalidArgument = errors.New("route: invalid argument")
	ErrInvalidState    = errors.New("route: route is empty")
	ErrNoGraph         = errors.New("route: no graph")
)

// Tolerance is the largest drift allowed between Cost and ManualCost.
const Tolerance = 1e-4

// Route is the closed set of route topologies. Mutation APIs differ per
// topology, so callers switch on the concrete type.
type Route interface {
	// Cost is the running distance total.
	Cost() float64
	// Size is the number of scheduled stops.
	Size() int
	// ManualCost recomputes Cost from the stops.
	ManualCost() float64
	Kind() fleet.Kind
	Graph() *graph.Graph

	sealed()
}

var (
	_ Route = (*BaseRoute)(nil)
	_ Route = (*AutonomousRoute)(nil)
	_ Route = (*VanRoute)(nil)
	_ Route = (*DroneRoute)(nil)
	_ Route = (*TruckDroneRoute)(nil)
)

// Checked reports whether this build validates route arguments.
func Checked() bool { return check.Enabled }

// Consistent reports whether r's running cost matches a full recomputation.
func Consistent(r Route) bool {
	d := r.Cost() - r.ManualCost()
	return d < Tolerance && d > -Tolerance
}

// New returns an empty route of kind k on g.
func New(k fleet.Kind, g *graph.Graph) Route {
	switch k {
	case fleet.Autonomous:
		return NewAutonomous(g)
	case fleet.Van:
		return NewVan(g)
	case fleet.Drone:
		return NewDrone(g)
	case fleet.TruckDrone:
		return NewTruckDrone(g)
	}
	return NewBase(g)
}
