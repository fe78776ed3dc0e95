package customer

import (
	"errors"
	"fmt"
	"math"
	"time"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"

	"hetvrp/internal/geo"
)

// AutoSeed asks RandomCustomers to seed itself from the clock.
const AutoSeed uint64 = math.MaxUint64

var (
	ErrInvalidCount  = errors.New("customer: invalid count")
	ErrInvalidBox    = errors.New("customer: invalid box size")
	ErrInvalidDemand = errors.New("customer: invalid demand range")
)

// Set is an ordered, never-empty customer collection. Index 0 is the depot
// and indices 1..N are real customers. A Set is read-only once built.
type Set struct {
	customers []Customer
}

// NewSet prepends a zero-demand depot at depot to customers.
func NewSet(depot geo.Vec2, customers []Customer) *Set {
	cs := make([]Customer, 0, len(customers)+1)
	cs = append(cs, New(depot, 0))
	cs = append(cs, customers...)
	return &Set{customers: cs}
}

func (s *Set) Size() int           { return len(s.customers) }
func (s *Set) Node(i int) Customer { return s.customers[i] }
func (s *Set) Depot() Customer     { return s.customers[0] }

// Nodes returns a copy of every customer, depot first.
func (s *Set) Nodes() []Customer {
	return append([]Customer(nil), s.customers...)
}

// Positions returns the planar position of every customer, depot first.
func (s *Set) Positions() []geo.Vec2 {
	out := make([]geo.Vec2, len(s.customers))
	for i, c := range s.customers {
		out[i] = c.pos
	}
	return out
}

func (s *Set) String() string { return FormatList(s.customers) }

// RandomCustomers scatters count customers uniformly over a square box of
// side boxSize miles centered at center, with integer demands drawn from
// [minDemand, maxDemand]. The depot sits at the local origin. A fixed seed
// always yields the same set; AutoSeed draws a fresh one.
func RandomCustomers(count int, center geo.GeoVec2, boxSize float64, minDemand, maxDemand int, seed uint64) (*Set, error) {
	if count < 0 {
		return nil, fmt.Errorf("random customers: count %d: %w", count, ErrInvalidCount)
	}
	if boxSize < 0 || math.IsNaN(boxSize) || math.IsInf(boxSize, 0) {
		return nil, fmt.Errorf("random customers: box %g: %w", boxSize, ErrInvalidBox)
	}
	if minDemand < 0 || minDemand > maxDemand {
		return nil, fmt.Errorf("random customers: demand [%d, %d]: %w", minDemand, maxDemand, ErrInvalidDemand)
	}
	if seed == AutoSeed {
		seed = uint64(time.Now().UnixNano())
	}

	// All draws share one source so the whole sequence follows from seed.
	src := rand.NewSource(seed)
	rng := rand.New(src)

	circumference := 2 * math.Pi * geo.EarthRadiusMiles
	half := boxSize / 2
	halfLat := half * (360 / circumference)
	halfLon := half * (360 / (circumference * math.Cos(geo.Radians(center.Latitude))))

	latDist := distuv.Uniform{Min: -halfLat, Max: halfLat, Src: src}
	lonDist := distuv.Uniform{Min: -halfLon, Max: halfLon, Src: src}

	cs := make([]Customer, 0, count+1)
	cs = append(cs, New(geo.Vec2{}, 0))
	for i := 0; i < count; i++ {
		lat := latDist.Rand()
		lon := lonDist.Rand()
		loc := center.Add(geo.GeoVec2{Latitude: lat, Longitude: lon})
		demand := minDemand + rng.Intn(maxDemand-minDemand+1)
		cs = append(cs, New(geo.Project(loc, center), float64(demand)))
	}
	return &Set{customers: cs}, nil
}
