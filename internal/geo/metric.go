package geo

import "math"

// Metric selects how the distance between two planar points is measured.
type Metric int

const (
	// Euclidean is straight-line distance, used for drones.
	Euclidean Metric = iota
	// Manhattan is axis-aligned street distance, used for ground vehicles.
	Manhattan
)

func (m Metric) String() string {
	switch m {
	case Euclidean:
		return "euclidean"
	case Manhattan:
		return "manhattan"
	}
	return "unknown"
}

// Distance measures a to b under m.
func (m Metric) Distance(a, b Vec2) float64 {
	if m == Manhattan {
		return ManhattanDistance(a, b)
	}
	return EuclideanDistance(a, b)
}

func EuclideanDistance(a, b Vec2) float64 { return math.Hypot(a.X-b.X, a.Y-b.Y) }

func ManhattanDistance(a, b Vec2) float64 { return math.Abs(a.X-b.X) + math.Abs(a.Y-b.Y) }
