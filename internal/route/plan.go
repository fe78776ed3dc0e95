package route

import (
	"errors"
	"fmt"

	"hetvrp/internal/fleet"
	"hetvrp/internal/graph"
)

// ErrFleetExhausted is returned when a plan already holds one route for
// every vehicle of a kind.
var ErrFleetExhausted = errors.New("route: no vehicle left of this kind")

// Plan is a candidate solution: routes over one graph, each assigned to a
// vehicle of the plan's fleet.
type Plan struct {
	g      *graph.Graph
	fleet  *fleet.Fleet
	routes []Route
	used   map[fleet.Kind]int
}

func NewPlan(g *graph.Graph, f *fleet.Fleet) *Plan {
	return &Plan{g: g, fleet: f, used: map[fleet.Kind]int{}}
}

func (p *Plan) Graph() *graph.Graph { return p.g }
func (p *Plan) Fleet() *fleet.Fleet { return p.fleet }

// Add assigns r to a free vehicle of its kind.
func (p *Plan) Add(r Route) error {
	if r.Graph() != p.g {
		return fmt.Errorf("plan add %s route: built on another graph: %w", r.Kind(), ErrInvalidArgument)
	}
	k := r.Kind()
	if p.used[k] >= p.fleet.Count(k) {
		return fmt.Errorf("plan add %s route: %d in use: %w", k, p.used[k], ErrFleetExhausted)
	}
	p.used[k]++
	p.routes = append(p.routes, r)
	return nil
}

// Open creates an empty route of kind k and adds it to the plan.
func (p *Plan) Open(k fleet.Kind) (Route, error) {
	r := New(k, p.g)
	if err := p.Add(r); err != nil {
		return nil, err
	}
	return r, nil
}

// Drop removes route i, freeing its vehicle.
func (p *Plan) Drop(i int) error {
	if i < 0 || i >= len(p.routes) {
		return fmt.Errorf("plan drop %d of %d: %w", i, len(p.routes), ErrOutOfRange)
	}
	p.used[p.routes[i].Kind()]--
	p.routes = append(p.routes[:i], p.routes[i+1:]...)
	return nil
}

func (p *Plan) Routes() []Route       { return append([]Route(nil), p.routes...) }
func (p *Plan) Len() int              { return len(p.routes) }
func (p *Plan) Used(k fleet.Kind) int { return p.used[k] }

// Cost sums the running cost of every route.
func (p *Plan) Cost() float64 {
	total := 0.0
	for _, r := range p.routes {
		total += r.Cost()
	}
	return total
}

// Consistent reports whether every route's running cost matches its
// recomputed cost.
func (p *Plan) Consistent() bool {
	for _, r := range p.routes {
		if !Consistent(r) {
			return false
		}
	}
	return true
}
