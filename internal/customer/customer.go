// Package customer models delivery customers and the ordered customer set a
// routing instance is built from. Index 0 of every set is the depot.
package customer

import (
	"fmt"

	"hetvrp/internal/geo"
)

// Customer is an immutable stop: a planar position and a demand. Identity is
// the customer's index in its Set.
type Customer struct {
	pos    geo.Vec2
	demand float64
}

func New(pos geo.Vec2, demand float64) Customer {
	return Customer{pos: pos, demand: demand}
}

func (c Customer) Pos() geo.Vec2   { return c.pos }
func (c Customer) Demand() float64 { return c.demand }
func (c Customer) String() string  { return fmt.Sprintf("(%v, %g)", c.pos, c.demand) }

// Distance measures a to b under metric m.
func Distance(m geo.Metric, a, b Customer) float64 {
	return m.Distance(a.pos, b.pos)
}
