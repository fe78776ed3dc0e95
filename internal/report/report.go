// Package report summarizes an instance against a fleet.
package report

import (
	"fmt"
	"strings"

	"github.com/montanaflynn/stats"

	"hetvrp/internal/fleet"
	"hetvrp/internal/graph"
)

// Spread describes a sample.
type Spread struct {
	Mean   float64
	StdDev float64
	Median float64
	P90    float64
	Max    float64
}

func spread(data stats.Float64Data) (Spread, error) {
	var s Spread
	var err error
	if s.Mean, err = stats.Mean(data); err != nil {
		return s, err
	}
	if s.StdDev, err = stats.StandardDeviation(data); err != nil {
		return s, err
	}
	if s.Median, err = stats.Median(data); err != nil {
		return s, err
	}
	if s.P90, err = stats.Percentile(data, 90); err != nil {
		return s, err
	}
	if s.Max, err = stats.Max(data); err != nil {
		return s, err
	}
	return s, nil
}

func (s Spread) String() string {
	return fmt.Sprintf("mean %.3f  sd %.3f  median %.3f  p90 %.3f  max %.3f", s.Mean, s.StdDev, s.Median, s.P90, s.Max)
}

// Summary is a snapshot of an instance. Distances are from the depot, in
// miles.
type Summary struct {
	Customers   int
	TotalDemand float64
	Demand      Spread
	// DroneDistance is the straight-line depot distance.
	DroneDistance Spread
	// VanDistance is the street-grid depot distance.
	VanDistance Spread
	// DroneReachable counts customers whose round trip fits the drone's
	// range.
	DroneReachable int
	// Utilization is total demand over fleet capacity.
	Utilization float64
}

// Summarize computes g's statistics. A depot-only graph yields a zero
// Summary.
func Summarize(g *graph.Graph, f *fleet.Fleet) (Summary, error) {
	n := g.Size() - 1
	sum := Summary{Customers: n}
	if n == 0 {
		return sum, nil
	}

	demand := make(stats.Float64Data, n)
	drone := make(stats.Float64Data, n)
	van := make(stats.Float64Data, n)
	droneRange := f.Vehicle(fleet.Drone).MaxRange
	for i := 1; i <= n; i++ {
		demand[i-1] = g.Customers().Node(i).Demand()
		drone[i-1] = g.DroneDistance(0, i)
		van[i-1] = g.VanDistance(0, i)
		if 2*drone[i-1] <= droneRange {
			sum.DroneReachable++
		}
	}

	var err error
	if sum.TotalDemand, err = stats.Sum(demand); err != nil {
		return sum, fmt.Errorf("summarize demand: %w", err)
	}
	if sum.Demand, err = spread(demand); err != nil {
		return sum, fmt.Errorf("summarize demand: %w", err)
	}
	if sum.DroneDistance, err = spread(drone); err != nil {
		return sum, fmt.Errorf("summarize drone distance: %w", err)
	}
	if sum.VanDistance, err = spread(van); err != nil {
		return sum, fmt.Errorf("summarize van distance: %w", err)
	}
	if c := f.Capacity(); c > 0 {
		sum.Utilization = sum.TotalDemand / c
	}
	return sum, nil
}

func (s Summary) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "customers       %d\n", s.Customers)
	fmt.Fprintf(&b, "total demand    %g (%.2f%% of fleet capacity)\n", s.TotalDemand, 100*s.Utilization)
	fmt.Fprintf(&b, "demand          %v\n", s.Demand)
	fmt.Fprintf(&b, "drone distance  %v\n", s.DroneDistance)
	fmt.Fprintf(&b, "van distance    %v\n", s.VanDistance)
	fmt.Fprintf(&b, "drone reachable %d\n", s.DroneReachable)
	return b.String()
}
