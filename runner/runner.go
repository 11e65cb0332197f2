// SPDX-License-Identifier: MIT

package runner

import (
	"context"
	"errors"
	"fmt"
	"math/rand"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/knapsack/core"
)

var (
	// ErrNoEngines indicates Compare was called without engines.
	ErrNoEngines = errors.New("runner: no engines")

	// ErrBadTrials indicates a non-positive trial count.
	ErrBadTrials = errors.New("runner: trial count must be positive")

	// ErrNilEngine indicates a nil engine or a factory returning nil.
	ErrNilEngine = errors.New("runner: nil engine")
)

// Factory builds a fresh engine for one trial. ctx is the trial group's
// context; engines that support cancellation should watch it. rng is an
// independent stream the engine may take ownership of.
type Factory func(ctx context.Context, rng *rand.Rand) core.Engine

// Compare solves inst with every engine concurrently and returns the
// results in engine order.
//
// Engines carry their own context, so a failing engine does not interrupt
// siblings that are already solving; cancel the context the engines were
// built with to stop them. An engine whose goroutine is scheduled after a
// failure is skipped. On failure the first error is returned tagged with
// the algorithm name, together with the partial results: slots of engines
// that succeeded are filled, the rest are zero.
func Compare(ctx context.Context, inst *core.Instance, engines []core.Engine, opts ...Option) ([]core.Result, error) {
	if inst == nil {
		return nil, fmt.Errorf("runner.Compare: %w", core.ErrNilInstance)
	}
	if len(engines) == 0 {
		return nil, ErrNoEngines
	}
	for i, e := range engines {
		if e == nil {
			return nil, fmt.Errorf("runner.Compare: engine %d: %w", i, ErrNilEngine)
		}
	}
	cfg := newConfig(opts...)

	results := make([]core.Result, len(engines))
	g, gctx := errgroup.WithContext(ctx)
	for i, e := range engines {
		g.Go(func() error {
			res, err := run(gctx, cfg, inst, e)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}

	return results, g.Wait()
}

// Trials runs n engines built by factory on inst, each with the random
// stream core.DeriveRand(seed, i). Results are returned in trial order and
// are reproducible for a given seed regardless of scheduling.
func Trials(ctx context.Context, inst *core.Instance, factory Factory, n int, seed int64, opts ...Option) ([]core.Result, error) {
	if inst == nil {
		return nil, fmt.Errorf("runner.Trials: %w", core.ErrNilInstance)
	}
	if n < 1 {
		return nil, fmt.Errorf("runner.Trials: n=%d: %w", n, ErrBadTrials)
	}
	cfg := newConfig(opts...)

	results := make([]core.Result, n)
	g, gctx := errgroup.WithContext(ctx)
	if cfg.parallelism > 0 {
		g.SetLimit(cfg.parallelism)
	}
	for i := 0; i < n; i++ {
		g.Go(func() error {
			e := factory(gctx, core.DeriveRand(seed, uint64(i)))
			if e == nil {
				return fmt.Errorf("runner.Trials: trial %d: %w", i, ErrNilEngine)
			}
			res, err := run(gctx, cfg, inst, e)
			if err != nil {
				return fmt.Errorf("trial %d: %w", i, err)
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}

// run solves inst with e unless ctx is already done, then logs and records
// the outcome.
func run(ctx context.Context, cfg config, inst *core.Instance, e core.Engine) (core.Result, error) {
	name := e.Name()
	log := cfg.logger.With(zap.String("algorithm", name))

	if err := ctx.Err(); err != nil {
		cfg.recorder.ObserveError(name)
		return core.Result{}, fmt.Errorf("%s: %w: %w", name, core.ErrCanceled, err)
	}

	res, err := e.Solve(inst)
	if err != nil {
		cfg.recorder.ObserveError(name)
		log.Error("run failed", zap.Error(err))
		return core.Result{}, fmt.Errorf("%s: %w", name, err)
	}

	cfg.recorder.Observe(res)
	log.Info("run finished",
		zap.Int("best_value", res.BestValue),
		zap.Int("best_weight", res.BestWeight),
		zap.Int("selected", len(res.Selected)),
		zap.Duration("elapsed", res.Elapsed))

	return res, nil
}
