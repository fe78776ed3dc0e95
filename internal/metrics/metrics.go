package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

var (
	// Registry is the dedicated Prometheus registry for the harness
	Registry = prometheus.NewRegistry()

	// RouteOps counts route mutations by route kind, operation and outcome
	RouteOps = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "vrp_route_ops_total", Help: "Route mutations by kind, operation and result."},
		[]string{"kind", "op", "result"},
	)
	// SelfCheckRuns counts audit runs by route kind and verdict
	SelfCheckRuns = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "vrp_selfcheck_runs_total", Help: "Cost audits by route kind and verdict."},
		[]string{"kind", "verdict"},
	)
	// CostDrift is the largest |cost - manual cost| seen in the last audit
	CostDrift = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{Name: "vrp_cost_drift", Help: "Largest running-cost drift seen in the last audit."},
		[]string{"kind"},
	)
	// GraphBuild records distance matrix construction time in seconds
	GraphBuild = prometheus.NewHistogram(
		prometheus.HistogramOpts{Name: "vrp_graph_build_seconds", Help: "Graph construction time in seconds.", Buckets: prometheus.ExponentialBuckets(1e-5, 4, 10)},
	)
	// Instances counts instances by origin (generated, file, store) and
	// whether they were saved
	Instances = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "vrp_instances_total", Help: "Instances by origin."},
		[]string{"origin"},
	)
)

// RegisterDefault registers the collectors on Registry. Safe to call more
// than once.
func RegisterDefault() {
	regOnce.Do(func() {
		Registry.MustRegister(RouteOps)
		Registry.MustRegister(SelfCheckRuns)
		Registry.MustRegister(CostDrift)
		Registry.MustRegister(GraphBuild)
		Registry.MustRegister(Instances)
		// Go/process collectors on our registry
		Registry.MustRegister(collectors.NewGoCollector())
		Registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	})
}

var regOnce sync.Once

// Result labels an operation outcome.
func Result(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}
