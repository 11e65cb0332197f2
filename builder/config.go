// SPDX-License-Identifier: MIT
// Package: knapsack/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • nameFn     = DefaultNameFn       ("item1","item2",...)
//   • rng        = nil                 (stochastic generators require a seed)
//   • values     = [DefaultMinValue, DefaultMaxValue]
//   • weights    = [DefaultMinWeight, DefaultMaxWeight]
//   • ratio      = DefaultCapacityRatio
//   • iterations = DefaultIterations

package builder

import "math/rand"

// builderConfig aggregates all knobs used by generators.
// It is passed by VALUE to generators.
type builderConfig struct {
	nameFn NameFn
	// nil means "no randomness"; generators then fail with ErrNeedRandSource.
	rng *rand.Rand

	valueLo, valueHi   int
	weightLo, weightHi int
	ratio              float64
	iterations         int
}

// newBuilderConfig constructs a config with deterministic defaults and
// applies all options in order (last wins).
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		nameFn:     DefaultNameFn,
		valueLo:    DefaultMinValue,
		valueHi:    DefaultMaxValue,
		weightLo:   DefaultMinWeight,
		weightHi:   DefaultMaxWeight,
		ratio:      DefaultCapacityRatio,
		iterations: DefaultIterations,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
