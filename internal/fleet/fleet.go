// Package fleet describes the vehicles available to an instance and the
// rates of the four cost categories. A Fleet is immutable once built.
package fleet

import (
	"errors"
	"fmt"
)

// ErrInvalidFleet is returned when a fleet's composition is impossible.
var ErrInvalidFleet = errors.New("fleet: invalid fleet")

// Kind is a vehicle category. Route topologies are keyed by the same values.
type Kind int

const (
	Base Kind = iota
	Autonomous
	Van
	Drone
	TruckDrone
	numKinds
)

var kindNames = [numKinds]string{"base", "autonomous", "van", "drone", "truck-drone"}

func (k Kind) valid() bool { return k >= 0 && k < numKinds }

func (k Kind) String() string {
	if !k.valid() {
		return fmt.Sprintf("kind(%d)", int(k))
	}
	return kindNames[k]
}

// Kinds lists every vehicle kind in declaration order.
func Kinds() []Kind { return []Kind{Base, Autonomous, Van, Drone, TruckDrone} }

// Category is one of the aggregate cost categories.
type Category int

const (
	Labor Category = iota
	Electric
	Fuel
	Emissions
	numCategories
)

var categoryNames = [numCategories]string{"labor", "electric", "fuel", "emissions"}

func (c Category) valid() bool { return c >= 0 && c < numCategories }

func (c Category) String() string {
	if !c.valid() {
		return fmt.Sprintf("category(%d)", int(c))
	}
	return categoryNames[c]
}

// Vehicle holds the attributes shared by every vehicle of one kind.
type Vehicle struct {
	Capacity float64 `yaml:"capacity"`
	MaxRange float64 `yaml:"max_range"`
	Cost     float64 `yaml:"cost"`
}

// CostData is the amount and rate of one cost category.
type CostData struct {
	Cost     float64 `yaml:"cost"`
	CostRate float64 `yaml:"cost_rate"`
}

// Costs groups the four cost categories.
type Costs struct {
	Labor     CostData `yaml:"labor"`
	Electric  CostData `yaml:"electric"`
	Fuel      CostData `yaml:"fuel"`
	Emissions CostData `yaml:"emissions"`
}

func (c Costs) array() [numCategories]CostData {
	return [numCategories]CostData{c.Labor, c.Electric, c.Fuel, c.Emissions}
}

// Config is the heterogeneous fleet composition.
type Config struct {
	AutoCount       int `yaml:"auto_count"`
	VanCount        int `yaml:"van_count"`
	DroneCount      int `yaml:"drone_count"`
	TruckDroneCount int `yaml:"truck_drone_count"`

	Costs Costs `yaml:"costs"`

	Auto       Vehicle `yaml:"auto"`
	Van        Vehicle `yaml:"van"`
	Drone      Vehicle `yaml:"drone"`
	TruckDrone Vehicle `yaml:"truck_drone"`
}

type Fleet struct {
	counts   [numKinds]int
	vehicles [numKinds]Vehicle
	costs    [numCategories]CostData
	total    int
	capacity float64
}

// New validates cfg and builds a heterogeneous fleet. Every truck-drone
// pairs with a van or drone chassis, so TruckDroneCount may not exceed
// VanCount+DroneCount.
func New(cfg Config) (*Fleet, error) {
	counts := [numKinds]int{0, cfg.AutoCount, cfg.VanCount, cfg.DroneCount, cfg.TruckDroneCount}
	for k, n := range counts {
		if n < 0 {
			return nil, fmt.Errorf("new fleet: negative %s count %d: %w", Kind(k), n, ErrInvalidFleet)
		}
	}
	if cfg.TruckDroneCount > cfg.VanCount+cfg.DroneCount {
		return nil, fmt.Errorf("new fleet: %d truck-drones but only %d vans and drones: %w",
			cfg.TruckDroneCount, cfg.VanCount+cfg.DroneCount, ErrInvalidFleet)
	}

	f := &Fleet{
		counts:   counts,
		vehicles: [numKinds]Vehicle{{}, cfg.Auto, cfg.Van, cfg.Drone, cfg.TruckDrone},
		costs:    cfg.Costs.array(),
		total:    cfg.AutoCount + cfg.VanCount + cfg.DroneCount,
	}
	for k := range counts {
		f.capacity += float64(counts[k]) * f.vehicles[k].Capacity
	}
	return f, nil
}

// NewHomogeneous builds a fleet of count identical base vehicles.
func NewHomogeneous(count int, costs Costs, v Vehicle) (*Fleet, error) {
	if count < 0 {
		return nil, fmt.Errorf("new homogeneous fleet: negative count %d: %w", count, ErrInvalidFleet)
	}
	f := &Fleet{
		costs:    costs.array(),
		total:    count,
		capacity: float64(count) * v.Capacity,
	}
	f.counts[Base] = count
	f.vehicles[Base] = v
	return f, nil
}

// FleetCount is the number of independent vehicles: autonomous, vans and
// drones for a heterogeneous fleet, or the base count for a homogeneous one.
// Truck-drones are not counted separately since each rides on a van or
// drone chassis.
func (f *Fleet) FleetCount() int { return f.total }

// Count is the number of vehicles of kind k, zero for an unknown kind.
func (f *Fleet) Count(k Kind) int {
	if !k.valid() {
		return 0
	}
	return f.counts[k]
}

func (f *Fleet) AutoCount() int       { return f.counts[Autonomous] }
func (f *Fleet) VanCount() int        { return f.counts[Van] }
func (f *Fleet) DroneCount() int      { return f.counts[Drone] }
func (f *Fleet) TruckDroneCount() int { return f.counts[TruckDrone] }
func (f *Fleet) BaseCount() int       { return f.counts[Base] }

// Vehicle is the attribute set of kind k, zero for an unknown kind.
func (f *Fleet) Vehicle(k Kind) Vehicle {
	if !k.valid() {
		return Vehicle{}
	}
	return f.vehicles[k]
}

// Cost and CostRate return zero for an unknown category.
func (f *Fleet) Cost(c Category) float64 {
	if !c.valid() {
		return 0
	}
	return f.costs[c].Cost
}

func (f *Fleet) CostRate(c Category) float64 {
	if !c.valid() {
		return 0
	}
	return f.costs[c].CostRate
}

// Capacity is the sum of per-kind capacity times count.
func (f *Fleet) Capacity() float64 { return f.capacity }

// DefaultConfig is the placeholder fleet used until an instance supplies
// its own.
func DefaultConfig() Config {
	flat := CostData{Cost: 10, CostRate: 1}
	return Config{
		AutoCount:       3,
		VanCount:        4,
		DroneCount:      2,
		TruckDroneCount: 2,
		Costs:           Costs{Labor: flat, Electric: flat, Fuel: flat, Emissions: flat},
		Auto:            Vehicle{Capacity: 496, MaxRange: 80, Cost: 7},
		Van:             Vehicle{Capacity: 2000, MaxRange: 200, Cost: 20},
		Drone:           Vehicle{Capacity: 5, MaxRange: 24, Cost: 1},
		TruckDrone:      Vehicle{Capacity: 2000, MaxRange: 200, Cost: 30},
	}
}
