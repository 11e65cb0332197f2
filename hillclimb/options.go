// SPDX-License-Identifier: MIT

// Package hillclimb - functional options.
//
// Contract:
//   - Options are functional (type Option func(*config)), applied in order,
//     later options override earlier ones.
//   - Option constructors panic on programmer error (nil rand, nil logger);
//     Solve never panics on user data.
//   - Determinism is explicit: WithSeed or WithRand; otherwise the solver
//     draws from a time-seeded stream.
package hillclimb

import (
	"context"
	"math/rand"

	"go.uber.org/zap"

	"github.com/katalvlaran/knapsack/core"
	"github.com/katalvlaran/knapsack/trace"
)

// Option customizes a Solver.
type Option func(*config)

type config struct {
	rng      *rand.Rand
	logger   *zap.Logger
	ctx      context.Context
	progress func(trace.Record)
}

func newConfig(opts ...Option) config {
	cfg := config{
		logger: zap.NewNop(),
		ctx:    context.Background(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.rng == nil {
		cfg.rng = core.TimeRand()
	}

	return cfg
}

// WithRand injects the random source. The solver takes ownership; do not
// share r with another goroutine.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("hillclimb: WithRand(nil)")
	}
	return func(c *config) { c.rng = r }
}

// WithSeed seeds a private deterministic random source.
func WithSeed(seed int64) Option {
	return func(c *config) { c.rng = core.NewRand(seed) }
}

// WithLogger sets the structured logger. The default discards everything.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("hillclimb: WithLogger(nil)")
	}
	return func(c *config) { c.logger = l }
}

// WithContext lets the caller stop a run. The context is polled once per
// iteration; a canceled run returns core.ErrCanceled and no result.
func WithContext(ctx context.Context) Option {
	if ctx == nil {
		panic("hillclimb: WithContext(nil)")
	}
	return func(c *config) { c.ctx = ctx }
}

// WithProgress registers fn to receive every trace record as it is
// appended. fn runs on the solver's goroutine and must not block for long.
func WithProgress(fn func(trace.Record)) Option {
	return func(c *config) { c.progress = fn }
}
