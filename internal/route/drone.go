package route

import (
	"fmt"
	"slices"

	"hetvrp/internal/check"
	"hetvrp/internal/fleet"
	"hetvrp/internal/graph"
)

// DroneRoute is a set of independent depot round trips. Order carries no
// cost: each entry contributes twice its Euclidean distance from the depot.
type DroneRoute struct {
	g     *graph.Graph
	stops []int
	cost  float64
}

// NewDrone returns a drone route with no trips.
func NewDrone(g *graph.Graph) *DroneRoute {
	return &DroneRoute{g: g, stops: make([]int, 0, g.Size())}
}

func (r *DroneRoute) Cost() float64       { return r.cost }
func (r *DroneRoute) Size() int           { return len(r.stops) }
func (r *DroneRoute) Kind() fleet.Kind    { return fleet.Drone }
func (r *DroneRoute) Graph() *graph.Graph { return r.g }
func (*DroneRoute) sealed()               {}

// At returns the customer served by trip i.
func (r *DroneRoute) At(i int) int { return r.stops[i] }

func (r *DroneRoute) Stops() []int { return slices.Clone(r.stops) }

func (r *DroneRoute) trip(c int) float64 { return 2 * r.g.DroneDistance(0, c) }

func (r *DroneRoute) checkInsert(c int) error {
	if r.g == nil {
		return fmt.Errorf("insert: %w", ErrNoGraph)
	}
	if len(r.stops) >= r.g.Size() {
		return fmt.Errorf("insert customer %d: %w", c, ErrCapacity)
	}
	if c <= 0 || c >= r.g.Size() {
		return fmt.Errorf("insert customer %d: %w", c, ErrInvalidArgument)
	}
	return nil
}

func (r *DroneRoute) checkRemove(pos int) error {
	if r.g == nil {
		return fmt.Errorf("remove: %w", ErrNoGraph)
	}
	if pos < 0 || pos >= len(r.stops) {
		return fmt.Errorf("remove at %d of %d: %w", pos, len(r.stops), ErrOutOfRange)
	}
	return nil
}

// Insert adds a round trip to customer c.
func (r *DroneRoute) Insert(c int) error {
	if check.Enabled {
		if err := r.checkInsert(c); err != nil {
			return err
		}
	}
	r.stops = append(r.stops, c)
	r.cost += r.trip(c)
	return nil
}

// Remove drops trip pos.
func (r *DroneRoute) Remove(pos int) error {
	if check.Enabled {
		if err := r.checkRemove(pos); err != nil {
			return err
		}
	}
	r.cost -= r.trip(r.stops[pos])
	r.stops = slices.Delete(r.stops, pos, pos+1)
	return nil
}

// InsertDelta is the change Insert(c) would make to Cost.
func (r *DroneRoute) InsertDelta(c int) (float64, error) {
	if check.Enabled {
		if err := r.checkInsert(c); err != nil {
			return 0, err
		}
	}
	return r.trip(c), nil
}

// RemoveDelta is the change Remove(pos) would make to Cost.
func (r *DroneRoute) RemoveDelta(pos int) (float64, error) {
	if check.Enabled {
		if err := r.checkRemove(pos); err != nil {
			return 0, err
		}
	}
	return -r.trip(r.stops[pos]), nil
}

func (r *DroneRoute) ManualCost() float64 {
	sum := 0.0
	for _, c := range r.stops {
		sum += r.trip(c)
	}
	return sum
}
