// Package selfcheck audits the running route costs against full
// recomputation. It replays random insert and remove sequences on every
// route kind and reports the largest drift seen.
package selfcheck

import (
	"context"
	"fmt"
	"math"
	"time"

	"go.uber.org/zap"
	"golang.org/x/exp/rand"

	"hetvrp/internal/customer"
	"hetvrp/internal/fleet"
	"hetvrp/internal/geo"
	"hetvrp/internal/graph"
	"hetvrp/internal/metrics"
	"hetvrp/internal/route"
)

// Config sizes the audit. The zero value is replaced by DefaultConfig.
type Config struct {
	Customers int
	Center    geo.GeoVec2
	Box       float64
	MinDemand int
	MaxDemand int
	// Seed drives both the instance and the move sequence.
	Seed uint64
	// Rounds is how many fill-and-drain passes each route kind gets.
	Rounds int
}

func DefaultConfig() Config {
	return Config{
		Customers: 10,
		Center:    geo.GeoVec2{Latitude: 35.9606, Longitude: -83.9207},
		Box:       20,
		MinDemand: 1,
		MaxDemand: 6,
		Rounds:    1,
	}
}

// Result is the audit outcome for one route kind.
type Result struct {
	Kind     fleet.Kind
	Steps    int
	MaxDrift float64
	Err      error
}

func (r Result) Passed() bool { return r.Err == nil && r.MaxDrift < route.Tolerance }

// Report collects one Result per route kind, in fleet.Kinds order.
type Report struct {
	Graph   *graph.Graph
	Results []Result
}

func (r Report) Passed() bool {
	for _, res := range r.Results {
		if !res.Passed() {
			return false
		}
	}
	return true
}

// Run audits every route kind on a generated instance. It returns an error
// only when the instance cannot be built or ctx ends; failed audits are
// reported in the Report.
func Run(ctx context.Context, log *zap.Logger, cfg Config) (Report, error) {
	if cfg.Customers == 0 {
		seed := cfg.Seed
		cfg = DefaultConfig()
		cfg.Seed = seed
	}
	if cfg.Rounds < 1 {
		cfg.Rounds = 1
	}
	cs, err := customer.RandomCustomers(cfg.Customers, cfg.Center, cfg.Box, cfg.MinDemand, cfg.MaxDemand, cfg.Seed)
	if err != nil {
		return Report{}, fmt.Errorf("selfcheck: %w", err)
	}
	start := time.Now()
	g := graph.New(cs)
	metrics.GraphBuild.Observe(time.Since(start).Seconds())
	return RunGraph(ctx, log, g, cfg.Seed, cfg.Rounds)
}

// RunGraph audits every route kind on g.
func RunGraph(ctx context.Context, log *zap.Logger, g *graph.Graph, seed uint64, rounds int) (Report, error) {
	rep := Report{Graph: g}
	log = log.With(zap.Bool("checked", route.Checked()))
	for _, k := range fleet.Kinds() {
		if err := ctx.Err(); err != nil {
			return rep, err
		}
		a := newAuditor(k, g, seed+uint64(k))
		for i := 0; i < rounds && a.err == nil; i++ {
			a.round()
		}
		res := a.result()
		rep.Results = append(rep.Results, res)

		verdict := "pass"
		if !res.Passed() {
			verdict = "fail"
		}
		metrics.SelfCheckRuns.WithLabelValues(k.String(), verdict).Inc()
		metrics.CostDrift.WithLabelValues(k.String()).Set(res.MaxDrift)

		fields := []zap.Field{
			zap.Stringer("kind", k),
			zap.Int("steps", res.Steps),
			zap.Float64("max_drift", res.MaxDrift),
		}
		if res.Passed() {
			log.Debug("route audit passed", fields...)
		} else {
			log.Warn("route audit failed", append(fields, zap.Error(res.Err))...)
		}
	}
	return rep, nil
}

type auditor struct {
	kind  fleet.Kind
	g     *graph.Graph
	rng   *rand.Rand
	r     route.Route
	steps int
	drift float64
	err   error
}

func newAuditor(k fleet.Kind, g *graph.Graph, seed uint64) *auditor {
	return &auditor{kind: k, g: g, rng: rand.New(rand.NewSource(seed)), r: route.New(k, g)}
}

func (a *auditor) result() Result {
	return Result{Kind: a.kind, Steps: a.steps, MaxDrift: a.drift, Err: a.err}
}

// do applies one mutation and measures the drift it leaves behind.
func (a *auditor) do(op string, err error) bool {
	metrics.RouteOps.WithLabelValues(a.kind.String(), op, metrics.Result(err)).Inc()
	if err != nil {
		a.err = fmt.Errorf("step %d %s: %w", a.steps, op, err)
		return false
	}
	a.steps++
	a.drift = math.Max(a.drift, math.Abs(a.r.Cost()-a.r.ManualCost()))
	return true
}

// round fills the route with every customer in random order and drains it
// again in random order.
func (a *auditor) round() {
	order := a.rng.Perm(a.g.Size() - 1)
	switch r := a.r.(type) {
	case *route.DroneRoute:
		for _, c := range order {
			if !a.do("insert", r.Insert(c+1)) {
				return
			}
		}
		for r.Size() > 0 {
			if !a.do("remove", r.Remove(a.rng.Intn(r.Size()))) {
				return
			}
		}
	case *route.TruckDroneRoute:
		a.truckDroneRound(r, order)
	default:
		t := tour(r)
		for _, c := range order {
			if !a.do("insert", t.Insert(1+a.rng.Intn(t.Size()), c+1)) {
				return
			}
		}
		for t.Size() > 1 {
			if !a.do("remove", t.Remove(1+a.rng.Intn(t.Size()-1))) {
				return
			}
		}
	}
}

// truckDroneRound attaches a sortie i, i+1, i+2 after each truck insert
// until a quarter of the customers are served by drone, then tears down
// truck stops and sorties alternately.
func (a *auditor) truckDroneRound(r *route.TruckDroneRoute, order []int) {
	n := a.g.Size()
	quarter := (n - 1) / 4
	for i, c := range order {
		if !a.do("insert", r.Insert(1+a.rng.Intn(r.Size()), c+1)) {
			return
		}
		if r.RendezvousCount() < quarter && i+3 < n {
			if !a.do("insert_rendezvous", r.InsertRendezvous(i+1, i+2, i+3)) {
				return
			}
		}
	}
	for r.Size() > 1 || r.RendezvousCount() > 0 {
		if r.Size() > 1 {
			if !a.do("remove", r.Remove(1+a.rng.Intn(r.Size()-1))) {
				return
			}
		}
		if r.RendezvousCount() > 0 {
			if !a.do("remove_rendezvous", r.RemoveRendezvous(a.rng.Intn(r.RendezvousCount()))) {
				return
			}
		}
	}
}

// tour returns the circular tour behind base, autonomous and van routes.
func tour(r route.Route) *route.BaseRoute {
	switch r := r.(type) {
	case *route.AutonomousRoute:
		return &r.BaseRoute
	case *route.VanRoute:
		return &r.BaseRoute
	case *route.BaseRoute:
		return r
	}
	panic(fmt.Sprintf("selfcheck: no tour for %s route", r.Kind()))
}
