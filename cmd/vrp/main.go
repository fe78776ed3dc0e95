// Command vrp builds a heterogeneous-fleet routing instance, reports on it
// and optionally audits route cost bookkeeping on it.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/kr/pretty"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"hetvrp/internal/buildinfo"
	"hetvrp/internal/config"
	"hetvrp/internal/customer"
	"hetvrp/internal/graph"
	"hetvrp/internal/metrics"
	"hetvrp/internal/report"
	"hetvrp/internal/selfcheck"
	"hetvrp/internal/store"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func newLogger(debug bool, w io.Writer) *zap.Logger {
	level := zap.InfoLevel
	enc := zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	if debug {
		level = zap.DebugLevel
		enc = zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
	}
	return zap.New(zapcore.NewCore(enc, zapcore.AddSync(w), level))
}

// run is main without the process exit so it can be driven from tests.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	opts, err := config.Parse(args, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	if opts.Version {
		fmt.Fprintln(stdout, buildinfo.String())
		return 0
	}

	log := newLogger(opts.Debug, stderr)
	defer func() { _ = log.Sync() }()
	if err := harness(ctx, opts, log, stdout); err != nil {
		log.Error("run failed", zap.Error(err))
		fmt.Fprintln(stderr, err)
		return 1
	}
	return 0
}

func harness(ctx context.Context, opts *config.Options, log *zap.Logger, stdout io.Writer) error {
	env, err := config.LoadEnv()
	if err != nil {
		return err
	}
	log.Debug("starting", zap.Any("build", buildinfo.Info()), zap.Any("search", opts.Search))

	f, err := config.LoadFleet(opts.Fleet)
	if err != nil {
		return err
	}
	log.Debug("fleet", zap.String("dump", pretty.Sprint(f)))

	metrics.RegisterDefault()
	var srv *http.Server
	serveErr := make(chan error, 1)
	if opts.MetricsAddr != "" {
		ln, err := net.Listen("tcp", opts.MetricsAddr)
		if err != nil {
			return fmt.Errorf("metrics listener: %w", err)
		}
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.HandlerFor(metrics.Registry, promhttp.HandlerOpts{}))
		srv = &http.Server{Handler: mux, ReadHeaderTimeout: 5 * time.Second}
		log.Info("metrics listening", zap.Stringer("addr", ln.Addr()))
		go func() {
			if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
				serveErr <- err
			}
		}()
	}

	var st store.Store
	if opts.InstanceID != "" || opts.Save {
		if st, err = store.Open(ctx, env.DatabaseURL, env.RedisURL, log); err != nil {
			return err
		}
		defer st.Close()
	}

	cs, name, origin, err := loadInstance(ctx, opts, st)
	if err != nil {
		return err
	}
	metrics.Instances.WithLabelValues(origin).Inc()
	log.Info("instance ready", zap.String("name", name), zap.String("origin", origin), zap.Int("size", cs.Size()))

	start := time.Now()
	g := graph.New(cs)
	metrics.GraphBuild.Observe(time.Since(start).Seconds())

	fmt.Fprintln(stdout, customer.FormatList(cs.Positions()))
	sum, err := report.Summarize(g, f)
	if err != nil {
		return err
	}
	fmt.Fprint(stdout, sum)

	if opts.Save {
		id, err := st.SaveInstance(ctx, name, cs)
		if err != nil {
			return err
		}
		fmt.Fprintf(stdout, "saved instance %s\n", id)
	}

	if opts.SelfCheck {
		rep, err := selfcheck.RunGraph(ctx, log, g, opts.Seed, 1)
		if err != nil {
			return err
		}
		for _, res := range rep.Results {
			verdict := "ok"
			if !res.Passed() {
				verdict = "FAIL"
			}
			fmt.Fprintf(stdout, "selfcheck %-11s %-4s steps %d drift %.3g\n", res.Kind, verdict, res.Steps, res.MaxDrift)
		}
		if !rep.Passed() {
			return errors.New("selfcheck failed")
		}
	}

	if srv != nil {
		log.Info("serving metrics until interrupted")
		select {
		case err := <-serveErr:
			return fmt.Errorf("metrics server: %w", err)
		case <-ctx.Done():
		}
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
	return nil
}

// loadInstance resolves the instance from a file, the store or the
// generator, in that order of precedence.
func loadInstance(ctx context.Context, opts *config.Options, st store.Store) (cs *customer.Set, name, origin string, err error) {
	switch {
	case opts.Instance != "":
		cs, err = config.LoadInstance(opts.Instance)
		return cs, filepath.Base(opts.Instance), "file", err
	case opts.InstanceID != "":
		in, err := st.LoadInstance(ctx, opts.InstanceID)
		if err != nil {
			return nil, "", "", err
		}
		return in.Customers, in.Name, "store", nil
	}
	cs, err = customer.RandomCustomers(opts.Customers, opts.Center, opts.Box, opts.MinDemand, opts.MaxDemand, opts.Seed)
	return cs, fmt.Sprintf("generated-%d", opts.Customers), "generated", err
}
