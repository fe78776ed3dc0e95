package route

import (
	"fmt"
	"slices"

	"hetvrp/internal/check"
	"hetvrp/internal/fleet"
	"hetvrp/internal/graph"
)

// Sortie is one drone flight launched from a truck: it leaves at customer
// Departure, serves Service and rejoins the truck at Reunion.
type Sortie struct {
	Departure int
	Service   int
	Reunion   int
}

func (s Sortie) String() string {
	return fmt.Sprintf("(%d, %d, %d)", s.Departure, s.Service, s.Reunion)
}

// TruckDroneRoute is a truck tour plus drone sorties. Truck stops behave
// exactly like a BaseRoute. Sorties are costed on the Euclidean metric and
// accumulated separately; the two totals only meet in Cost.
//
// Sortie endpoints are not required to appear on the truck tour.
type TruckDroneRoute struct {
	truck     BaseRoute
	sorties   []Sortie
	droneCost float64
}

// NewTruckDrone returns a truck-drone route holding only the depot.
func NewTruckDrone(g *graph.Graph) *TruckDroneRoute {
	r := &TruckDroneRoute{sorties: make([]Sortie, 0, g.Size())}
	r.truck.init(g)
	return r
}

func (r *TruckDroneRoute) Cost() float64       { return r.truck.Cost() + r.droneCost }
func (r *TruckDroneRoute) Size() int           { return r.truck.Size() }
func (r *TruckDroneRoute) Kind() fleet.Kind    { return fleet.TruckDrone }
func (r *TruckDroneRoute) Graph() *graph.Graph { return r.truck.g }
func (*TruckDroneRoute) sealed()               {}

// TruckCost and DroneCost split Cost into its two accumulators.
func (r *TruckDroneRoute) TruckCost() float64 { return r.truck.Cost() }
func (r *TruckDroneRoute) DroneCost() float64 { return r.droneCost }

// RendezvousCount is the number of sorties.
func (r *TruckDroneRoute) RendezvousCount() int { return len(r.sorties) }

// Truck exposes the truck tour. Mutating it directly is equivalent to
// calling Insert and Remove on r.
func (r *TruckDroneRoute) Truck() *BaseRoute { return &r.truck }

func (r *TruckDroneRoute) TruckStop(i int) int     { return r.truck.At(i) }
func (r *TruckDroneRoute) TruckStops() []int       { return r.truck.Stops() }
func (r *TruckDroneRoute) Rendezvous(i int) Sortie { return r.sorties[i] }
func (r *TruckDroneRoute) Sorties() []Sortie       { return slices.Clone(r.sorties) }

// Insert schedules truck stop c at pos; see BaseRoute.Insert.
func (r *TruckDroneRoute) Insert(pos, c int) error { return r.truck.Insert(pos, c) }

// Remove drops truck stop pos; see BaseRoute.Remove.
func (r *TruckDroneRoute) Remove(pos int) error { return r.truck.Remove(pos) }

func (r *TruckDroneRoute) InsertDelta(pos, c int) (float64, error) {
	return r.truck.InsertDelta(pos, c)
}

func (r *TruckDroneRoute) RemoveDelta(pos int) (float64, error) {
	return r.truck.RemoveDelta(pos)
}

func (r *TruckDroneRoute) flight(s Sortie) float64 {
	g := r.truck.g
	return g.DroneDistance(s.Departure, s.Service) + g.DroneDistance(s.Service, s.Reunion)
}

// InsertRendezvous appends a sortie. None of the three customers may be the
// depot.
func (r *TruckDroneRoute) InsertRendezvous(departure, service, reunion int) error {
	s := Sortie{Departure: departure, Service: service, Reunion: reunion}
	if check.Enabled {
		g := r.truck.g
		if g == nil {
			return fmt.Errorf("insert rendezvous: %w", ErrNoGraph)
		}
		n := g.Size()
		for _, c := range [...]int{departure, service, reunion} {
			if c <= 0 || c >= n {
				return fmt.Errorf("insert rendezvous %v: customer %d: %w", s, c, ErrInvalidArgument)
			}
		}
	}
	r.sorties = append(r.sorties, s)
	r.droneCost += r.flight(s)
	return nil
}

// RemoveRendezvous drops sortie pos.
func (r *TruckDroneRoute) RemoveRendezvous(pos int) error {
	if check.Enabled {
		if r.truck.g == nil {
			return fmt.Errorf("remove rendezvous: %w", ErrNoGraph)
		}
		if pos < 0 || pos >= len(r.sorties) {
			return fmt.Errorf("remove rendezvous at %d of %d: %w", pos, len(r.sorties), ErrOutOfRange)
		}
	}
	r.droneCost -= r.flight(r.sorties[pos])
	r.sorties = slices.Delete(r.sorties, pos, pos+1)
	return nil
}

func (r *TruckDroneRoute) ManualCost() float64 {
	sum := r.truck.ManualCost()
	for _, s := range r.sorties {
		sum += r.flight(s)
	}
	return sum
}
