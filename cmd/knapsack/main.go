// SPDX-License-Identifier: MIT

// Command knapsack solves a 0/1 knapsack instance with hill climbing and a
// grey wolf optimizer side by side and prints both results.
//
// Usage:
//
//	knapsack --data items.csv --capacity 500 --iterations 1000
//	knapsack --kind strong --items 200 --seed 7 --trials 30 --chart out.png
//
// Every flag can also be set as KNAPSACK_<FLAG> (dashes become
// underscores) or in a YAML file given by --config.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/katalvlaran/knapsack/builder"
	"github.com/katalvlaran/knapsack/config"
	"github.com/katalvlaran/knapsack/core"
	"github.com/katalvlaran/knapsack/dataset"
	"github.com/katalvlaran/knapsack/gwo"
	"github.com/katalvlaran/knapsack/hillclimb"
	"github.com/katalvlaran/knapsack/logging"
	"github.com/katalvlaran/knapsack/metrics"
	"github.com/katalvlaran/knapsack/report"
	"github.com/katalvlaran/knapsack/runner"
)

// Random stream ids derived from the run seed.
const (
	streamInstance uint64 = iota + 1
	streamHillClimb
	streamGWO
	streamTrials
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, "knapsack:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cfg, err := config.Load(args, stderr)
	if errors.Is(err, pflag.ErrHelp) {
		return nil
	}
	if err != nil {
		return err
	}

	log, err := logging.New(cfg.Log)
	if err != nil {
		return err
	}
	defer log.Sync() //nolint:errcheck // stderr sync fails on some platforms

	seed := cfg.Seed
	if !cfg.Seeded() {
		seed = time.Now().UnixNano()
	}
	log.Info("starting", zap.Int64("seed", seed), zap.Strings("algorithms", cfg.Algorithms))

	inst, err := loadInstance(cfg, seed)
	if err != nil {
		return err
	}
	log.Info("instance ready",
		zap.Int("items", inst.Len()), zap.Int("capacity", inst.Capacity()),
		zap.Int("iterations", inst.MaxIterations()), zap.Int("total_weight", inst.TotalWeight()))
	if cfg.Save != "" {
		if err := dataset.Save(cfg.Save, dataset.FromInstance(inst)); err != nil {
			return err
		}
	}

	reg := prometheus.NewRegistry()
	rec := metrics.New(reg)
	ropts := []runner.Option{runner.WithLogger(log), runner.WithMetrics(rec)}

	engines, err := newEngines(ctx, cfg, seed, log)
	if err != nil {
		return err
	}
	results, err := runner.Compare(ctx, inst, engines, ropts...)
	if err != nil {
		return err
	}
	for i, res := range results {
		if i > 0 {
			fmt.Fprintln(stdout)
		}
		if err := report.WriteResult(stdout, inst, res); err != nil {
			return err
		}
		if cfg.ShowTrace {
			fmt.Fprintln(stdout)
			if err := report.WriteTrace(stdout, res); err != nil {
				return err
			}
		}
	}

	if cfg.Trials > 0 {
		if err := runTrials(ctx, cfg, inst, seed, stdout, ropts); err != nil {
			return err
		}
	}

	if cfg.Chart != "" {
		if err := report.Chart(cfg.Chart, fmt.Sprintf("%d items, capacity %d", inst.Len(), inst.Capacity()), results...); err != nil {
			return err
		}
		log.Info("chart written", zap.String("path", cfg.Chart))
	}
	if cfg.MetricsFile != "" {
		if err := metrics.WriteTextfile(reg, cfg.MetricsFile); err != nil {
			return err
		}
	}
	if cfg.MetricsAddr != "" {
		return serveMetrics(ctx, cfg.MetricsAddr, reg, log)
	}

	return nil
}

// loadInstance reads cfg.Data or generates an instance from the seed.
func loadInstance(cfg config.Config, seed int64) (*core.Instance, error) {
	iterations := cfg.Iterations
	if cfg.Data != "" {
		format, err := dataset.FormatOf(cfg.Data)
		if err != nil {
			return nil, err
		}
		d, err := dataset.Load(cfg.Data)
		if err != nil {
			return nil, err
		}
		// CSV rows carry items only.
		if format == dataset.CSV {
			if cfg.Capacity < 0 {
				return nil, fmt.Errorf("%w: --capacity is required for CSV dataset %s", config.ErrInvalidConfig, cfg.Data)
			}
			if iterations < 0 {
				iterations = builder.DefaultIterations
			}
		}
		return d.Instance(cfg.Capacity, iterations)
	}

	kind, err := builder.ParseKind(cfg.Kind)
	if err != nil {
		return nil, err
	}
	if iterations < 0 {
		iterations = builder.DefaultIterations
	}
	inst, err := builder.Generate(kind, cfg.Items,
		builder.WithSeed(core.DeriveSeed(seed, streamInstance)),
		builder.WithCapacityRatio(cfg.Ratio),
		builder.WithIterations(iterations))
	if err != nil {
		return nil, err
	}
	if cfg.Capacity >= 0 {
		return inst.WithCapacity(cfg.Capacity)
	}

	return inst, nil
}

// factory returns a runner.Factory for algorithm key alg.
func factory(cfg config.Config, alg string, log *zap.Logger) (runner.Factory, error) {
	switch alg {
	case config.AlgHillClimb:
		return func(ctx context.Context, rng *rand.Rand) core.Engine {
			return hillclimb.New(hillclimb.WithRand(rng), hillclimb.WithContext(ctx), hillclimb.WithLogger(log))
		}, nil
	case config.AlgGWO:
		transfer, err := gwo.ParseTransfer(cfg.Transfer)
		if err != nil {
			return nil, err
		}
		return func(ctx context.Context, rng *rand.Rand) core.Engine {
			return gwo.New(
				gwo.WithRand(rng), gwo.WithContext(ctx), gwo.WithLogger(log),
				gwo.WithWolves(cfg.Wolves), gwo.WithBound(cfg.Bound), gwo.WithTransfer(transfer))
		}, nil
	default:
		return nil, fmt.Errorf("unknown algorithm %q", alg)
	}
}

// newEngines builds one engine per requested algorithm, each on its own
// stream so that adding or removing an algorithm leaves the others intact.
func newEngines(ctx context.Context, cfg config.Config, seed int64, log *zap.Logger) ([]core.Engine, error) {
	streams := map[string]uint64{config.AlgHillClimb: streamHillClimb, config.AlgGWO: streamGWO}
	engines := make([]core.Engine, 0, len(cfg.Algorithms))
	for _, alg := range cfg.Algorithms {
		f, err := factory(cfg, alg, log)
		if err != nil {
			return nil, err
		}
		engines = append(engines, f(ctx, core.DeriveRand(seed, streams[alg])))
	}

	return engines, nil
}

// runTrials repeats every algorithm cfg.Trials times and prints one summary
// line each. Hits are counted against the best value any trial reached.
func runTrials(ctx context.Context, cfg config.Config, inst *core.Instance, seed int64, out io.Writer, ropts []runner.Option) error {
	batches := make([][]core.Result, 0, len(cfg.Algorithms))
	best := 0
	for k, alg := range cfg.Algorithms {
		f, err := factory(cfg, alg, zap.NewNop())
		if err != nil {
			return err
		}
		results, err := runner.Trials(ctx, inst, f, cfg.Trials, core.DeriveSeed(seed, streamTrials+uint64(k)), ropts...)
		if err != nil {
			return err
		}
		for _, r := range results {
			best = max(best, r.BestValue)
		}
		batches = append(batches, results)
	}

	summaries := make([]runner.Summary, len(batches))
	for i, b := range batches {
		summaries[i] = runner.Summarize(b, best)
	}
	fmt.Fprintln(out)

	return report.WriteSummaries(out, summaries...)
}

// serveMetrics exposes reg on addr until ctx is done.
func serveMetrics(ctx context.Context, addr string, reg *prometheus.Registry, log *zap.Logger) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", metrics.Handler(reg))
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()
	log.Info("serving metrics", zap.String("addr", addr))

	select {
	case err := <-errCh:
		return fmt.Errorf("metrics server: %w", err)
	case <-ctx.Done():
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	return srv.Shutdown(shutdownCtx)
}
