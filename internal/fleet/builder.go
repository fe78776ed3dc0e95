package fleet

import "fmt"

// Builder assembles a fleet one vehicle at a time. Capacity is the sum of
// the individual vehicles added; the per-kind attributes reported by the
// built Fleet are those of the first vehicle of each kind. The same
// truck-drone constraint as New is enforced by Build.
type Builder struct {
	costs    Costs
	counts   [numKinds]int
	vehicles [numKinds]Vehicle
	capacity float64
	err      error
}

func NewBuilder(costs Costs) *Builder {
	return &Builder{costs: costs}
}

// Add appends one vehicle of kind k.
func (b *Builder) Add(k Kind, v Vehicle) *Builder {
	if b.err != nil {
		return b
	}
	if !k.valid() {
		b.err = fmt.Errorf("fleet builder: unknown %v: %w", k, ErrInvalidFleet)
		return b
	}
	if b.counts[k] == 0 {
		b.vehicles[k] = v
	}
	b.counts[k]++
	b.capacity += v.Capacity
	return b
}

func (b *Builder) Build() (*Fleet, error) {
	if b.err != nil {
		return nil, b.err
	}
	if b.counts[TruckDrone] > b.counts[Van]+b.counts[Drone] {
		return nil, fmt.Errorf("fleet builder: %d truck-drones but only %d vans and drones: %w",
			b.counts[TruckDrone], b.counts[Van]+b.counts[Drone], ErrInvalidFleet)
	}
	return &Fleet{
		counts:   b.counts,
		vehicles: b.vehicles,
		costs:    b.costs.array(),
		total:    b.counts[Base] + b.counts[Autonomous] + b.counts[Van] + b.counts[Drone],
		capacity: b.capacity,
	}, nil
}
