package route

import (
	"fmt"
	"slices"

	"hetvrp/internal/check"
	"hetvrp/internal/fleet"
	"hetvrp/internal/graph"
)

// BaseRoute is a circular tour that starts at the depot: stop 0 is always
// customer 0 and the last stop returns to it. Legs use the Manhattan (van)
// metric.
type BaseRoute struct {
	g     *graph.Graph
	stops []int
	cost  float64
}

// NewBase returns a tour holding only the depot.
func NewBase(g *graph.Graph) *BaseRoute {
	r := &BaseRoute{g: g}
	r.init(g)
	return r
}

func (r *BaseRoute) init(g *graph.Graph) {
	r.g = g
	r.stops = make([]int, 1, g.Size())
	r.cost = 0
}

func (r *BaseRoute) Cost() float64       { return r.cost }
func (r *BaseRoute) Size() int           { return len(r.stops) }
func (r *BaseRoute) Kind() fleet.Kind    { return fleet.Base }
func (r *BaseRoute) Graph() *graph.Graph { return r.g }
func (*BaseRoute) sealed()               {}

// At returns the customer scheduled at stop i.
func (r *BaseRoute) At(i int) int { return r.stops[i] }

// Stops returns a copy of the tour, depot first.
func (r *BaseRoute) Stops() []int { return slices.Clone(r.stops) }

func (r *BaseRoute) dist(a, b int) float64 { return r.g.VanDistance(a, b) }

func (r *BaseRoute) checkInsert(pos, c int) error {
	if r.g == nil || len(r.stops) == 0 {
		return fmt.Errorf("insert: %w", ErrNoGraph)
	}
	if pos < 0 || pos > len(r.stops) {
		return fmt.Errorf("insert at %d of %d: %w", pos, len(r.stops), ErrOutOfRange)
	}
	if pos == 0 {
		return fmt.Errorf("insert at %d: depot position: %w", pos, ErrInvalidArgument)
	}
	if len(r.stops) >= r.g.Size() {
		return fmt.Errorf("insert customer %d: %w", c, ErrCapacity)
	}
	if c <= 0 || c >= r.g.Size() {
		return fmt.Errorf("insert customer %d: %w", c, ErrInvalidArgument)
	}
	return nil
}

func (r *BaseRoute) checkRemove(pos int) error {
	if r.g == nil || len(r.stops) == 0 {
		return fmt.Errorf("remove: %w", ErrNoGraph)
	}
	if pos < 0 || pos >= len(r.stops) {
		return fmt.Errorf("remove at %d of %d: %w", pos, len(r.stops), ErrOutOfRange)
	}
	if len(r.stops) == 1 {
		return fmt.Errorf("remove at %d: %w", pos, ErrInvalidState)
	}
	if pos == 0 {
		return fmt.Errorf("remove at %d: depot position: %w", pos, ErrInvalidArgument)
	}
	return nil
}

// neighbors returns the stops before and at pos on the circular tour.
func (r *BaseRoute) neighbors(pos int) (before, at int) {
	n := len(r.stops)
	return r.stops[(pos+n-1)%n], r.stops[pos%n]
}

// Insert schedules customer c at stop pos, shifting later stops back.
// Valid positions are 1..Size().
func (r *BaseRoute) Insert(pos, c int) error {
	if check.Enabled {
		if err := r.checkInsert(pos, c); err != nil {
			return err
		}
	}
	before, after := r.neighbors(pos)
	r.cost -= r.dist(before, after)
	r.stops = slices.Insert(r.stops, pos, c)
	r.cost += r.dist(before, c) + r.dist(c, after)
	return nil
}

// Remove drops the stop at pos and joins its neighbors. Valid positions are
// 1..Size()-1.
func (r *BaseRoute) Remove(pos int) error {
	if check.Enabled {
		if err := r.checkRemove(pos); err != nil {
			return err
		}
	}
	n := len(r.stops)
	before, cur := r.neighbors(pos)
	after := r.stops[(pos+1)%n]
	r.cost -= r.dist(before, cur) + r.dist(cur, after)
	r.stops = slices.Delete(r.stops, pos, pos+1)
	r.cost += r.dist(before, after)
	return nil
}

// InsertDelta is the change Insert(pos, c) would make to Cost.
func (r *BaseRoute) InsertDelta(pos, c int) (float64, error) {
	if check.Enabled {
		if err := r.checkInsert(pos, c); err != nil {
			return 0, err
		}
	}
	before, after := r.neighbors(pos)
	return r.dist(before, c) + r.dist(c, after) - r.dist(before, after), nil
}

// RemoveDelta is the change Remove(pos) would make to Cost.
func (r *BaseRoute) RemoveDelta(pos int) (float64, error) {
	if check.Enabled {
		if err := r.checkRemove(pos); err != nil {
			return 0, err
		}
	}
	before, cur := r.neighbors(pos)
	after := r.stops[(pos+1)%len(r.stops)]
	return r.dist(before, after) - r.dist(before, cur) - r.dist(cur, after), nil
}

// ManualCost sums every leg of the tour including the return to the depot.
func (r *BaseRoute) ManualCost() float64 {
	n := len(r.stops)
	if n == 0 {
		return 0
	}
	sum := 0.0
	for i := 0; i < n-1; i++ {
		sum += r.dist(r.stops[i], r.stops[i+1])
	}
	return sum + r.dist(r.stops[n-1], r.stops[0])
}

// AutonomousRoute is a BaseRoute driven by an autonomous vehicle.
type AutonomousRoute struct{ BaseRoute }

func NewAutonomous(g *graph.Graph) *AutonomousRoute {
	r := &AutonomousRoute{}
	r.init(g)
	return r
}

func (*AutonomousRoute) Kind() fleet.Kind { return fleet.Autonomous }

// VanRoute is a BaseRoute driven by a van.
type VanRoute struct{ BaseRoute }

func NewVan(g *graph.Graph) *VanRoute {
	r := &VanRoute{}
	r.init(g)
	return r
}

func (*VanRoute) Kind() fleet.Kind { return fleet.Van }
