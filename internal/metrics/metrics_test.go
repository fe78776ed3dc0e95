package metrics

import (
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestRegisterDefaultIsIdempotent(t *testing.T) {
	RegisterDefault()
	RegisterDefault()

	RouteOps.WithLabelValues("van", "insert", "ok").Inc()
	families, err := Registry.Gather()
	if err != nil {
		t.Fatalf("Gather: %v", err)
	}
	names := map[string]bool{}
	for _, f := range families {
		names[f.GetName()] = true
	}
	for _, want := range []string{"vrp_route_ops_total", "go_goroutines"} {
		if !names[want] {
			t.Fatalf("%s not registered", want)
		}
	}
}

func TestCounters(t *testing.T) {
	c := SelfCheckRuns.WithLabelValues("drone", "pass")
	before := testutil.ToFloat64(c)
	c.Inc()
	if got := testutil.ToFloat64(c); got != before+1 {
		t.Fatalf("want %v, got %v", before+1, got)
	}

	CostDrift.WithLabelValues("base").Set(2e-9)
	if got := testutil.ToFloat64(CostDrift.WithLabelValues("base")); got != 2e-9 {
		t.Fatalf("want drift 2e-9, got %v", got)
	}
}

func TestResult(t *testing.T) {
	if got := Result(nil); got != "ok" {
		t.Fatalf("nil error -> ok expected, got %s", got)
	}
	if got := Result(errors.New("x")); got != "error" {
		t.Fatalf("non-nil error -> error expected, got %s", got)
	}
}
