// SPDX-License-Identifier: MIT

package gwo

import (
	"context"
	"math/rand"

	"go.uber.org/zap"

	"github.com/katalvlaran/knapsack/core"
	"github.com/katalvlaran/knapsack/trace"
)

// Defaults.
const (
	// DefaultWolves is the pack size used when WithWolves is not given.
	DefaultWolves = 30

	// MinWolves is the smallest pack with three distinct leaders.
	MinWolves = 3

	// DefaultBound is the half-width of the initial position box [-b, b]^n.
	DefaultBound = 5.0

	// MaxBound is the largest accepted bound. Past it every initial
	// coordinate already saturates the transfer.
	MaxBound = expClamp
)

// Option customizes a Solver.
type Option func(*config)

type config struct {
	wolves   int
	bound    float64
	transfer Transfer
	rng      *rand.Rand
	logger   *zap.Logger
	ctx      context.Context
	progress func(trace.Record)
}

func newConfig(opts ...Option) config {
	cfg := config{
		wolves:   DefaultWolves,
		bound:    DefaultBound,
		transfer: Sigmoid,
		logger:   zap.NewNop(),
		ctx:      context.Background(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.rng == nil {
		cfg.rng = core.TimeRand()
	}

	return cfg
}

// WithWolves sets the pack size. Values below MinWolves are accepted here
// and rejected by Solve with ErrTooFewWolves.
func WithWolves(n int) Option {
	return func(c *config) { c.wolves = n }
}

// WithBound sets the half-width of the initial position box. Bounds outside
// (0, MaxBound] are rejected by Solve with ErrBadBound.
func WithBound(b float64) Option {
	return func(c *config) { c.bound = b }
}

// WithTransfer selects the discretization variant (Sigmoid by default).
func WithTransfer(t Transfer) Option {
	return func(c *config) { c.transfer = t }
}

// WithRand injects the random source. The solver takes ownership; do not
// share r with another goroutine.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("gwo: WithRand(nil)")
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
		panic("gwo: WithLogger(nil)")
	}
	return func(c *config) { c.logger = l }
}

// WithContext lets the caller stop a run. The context is polled once per
// iteration; a canceled run returns core.ErrCanceled and no result.
func WithContext(ctx context.Context) Option {
	if ctx == nil {
		panic("gwo: WithContext(nil)")
	}
	return func(c *config) { c.ctx = ctx }
}

// WithProgress registers fn to receive every trace record as it is appended.
func WithProgress(fn func(trace.Record)) Option {
	return func(c *config) { c.progress = fn }
}
