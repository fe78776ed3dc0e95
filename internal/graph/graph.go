// Package graph precomputes the dense distance tables routes are costed
// against. A Graph is immutable after New and safe for concurrent readers.
package graph

import (
	"errors"

	"gonum.org/v1/gonum/mat"

	"hetvrp/internal/check"
	"hetvrp/internal/customer"
	"hetvrp/internal/geo"
)

// ErrNoCustomers is the panic value when a zero Graph is used in a checked build.
var ErrNoCustomers = errors.New("graph: no customers")

// Graph pairs a customer set with its Euclidean (drone) and Manhattan (van)
// distance matrices. The set must outlive the graph and every route on it.
type Graph struct {
	customers *customer.Set
	euclidean *mat.SymDense
	manhattan *mat.SymDense
}

// New builds both distance matrices over cs in O(N²).
func New(cs *customer.Set) *Graph {
	if cs == nil {
		panic(ErrNoCustomers)
	}
	return &Graph{
		customers: cs,
		euclidean: DistanceMatrix(cs, geo.Euclidean),
		manhattan: DistanceMatrix(cs, geo.Manhattan),
	}
}

// DistanceMatrix returns the symmetric matrix of m-distances between every
// pair of customers in cs, depot at row 0.
func DistanceMatrix(cs *customer.Set, m geo.Metric) *mat.SymDense {
	n := cs.Size()
	out := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			out.SetSym(i, j, customer.Distance(m, cs.Node(i), cs.Node(j)))
		}
	}
	return out
}

// DroneDistance is the Euclidean distance between customers a and b.
func (g *Graph) DroneDistance(a, b int) float64 { return g.euclidean.At(a, b) }

// VanDistance is the Manhattan distance between customers a and b.
func (g *Graph) VanDistance(a, b int) float64 { return g.manhattan.At(a, b) }

// Distance looks up a to b under m.
func (g *Graph) Distance(m geo.Metric, a, b int) float64 {
	if m == geo.Manhattan {
		return g.VanDistance(a, b)
	}
	return g.DroneDistance(a, b)
}

func (g *Graph) Customers() *customer.Set {
	g.mustHaveCustomers()
	return g.customers
}

// Size is the number of customers including the depot.
func (g *Graph) Size() int {
	g.mustHaveCustomers()
	return g.customers.Size()
}

func (g *Graph) mustHaveCustomers() {
	if check.Enabled && (g == nil || g.customers == nil) {
		panic(ErrNoCustomers)
	}
}
