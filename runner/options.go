// SPDX-License-Identifier: MIT

package runner

import (
	"runtime"

	"go.uber.org/zap"

	"github.com/katalvlaran/knapsack/metrics"
)

// Option customizes Compare and Trials.
type Option func(*config)

type config struct {
	logger      *zap.Logger
	recorder    *metrics.Recorder
	parallelism int
}

func newConfig(opts ...Option) config {
	cfg := config{
		logger:      zap.NewNop(),
		parallelism: runtime.GOMAXPROCS(0),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithLogger sets the structured logger. Panics on nil.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("runner: WithLogger(nil)")
	}
	return func(c *config) { c.logger = l }
}

// WithMetrics records every finished run in r. A nil r disables recording.
func WithMetrics(r *metrics.Recorder) Option {
	return func(c *config) { c.recorder = r }
}

// WithParallelism caps concurrently running engines in Trials. Values
// below 1 mean no limit.
func WithParallelism(n int) Option {
	return func(c *config) { c.parallelism = n }
}
