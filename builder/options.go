// SPDX-License-Identifier: MIT
// Package: knapsack/builder
//
// options.go - functional options for the builder package.
//
// Contract:
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors PANIC on nil functions and nil RNGs; numeric
//     knobs are validated by the generators and reported as sentinel errors.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import (
	"math/rand"

	"github.com/katalvlaran/knapsack/core"
)

// BuilderOption customizes a generator by mutating a builderConfig before
// the instance is drawn.
// Complexity: applying N options costs O(N) time, O(1) space.
type BuilderOption func(*builderConfig)

// WithNameScheme sets the item name generator. Panics on nil.
func WithNameScheme(fn NameFn) BuilderOption {
	if fn == nil {
		panic("builder: WithNameScheme(nil)")
	}
	return func(c *builderConfig) {
		c.nameFn = fn
	}
}

// WithRand provides an explicit RNG. Panics on nil; prefer WithSeed for
// reproducible runs.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a private deterministic RNG.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = core.NewRand(seed)
	}
}

// WithValueRange sets the inclusive value range of Uncorrelated draws.
// Correlated generators derive values from weights and ignore it.
func WithValueRange(lo, hi int) BuilderOption {
	return func(c *builderConfig) {
		c.valueLo, c.valueHi = lo, hi
	}
}

// WithWeightRange sets the inclusive weight range of every generator.
func WithWeightRange(lo, hi int) BuilderOption {
	return func(c *builderConfig) {
		c.weightLo, c.weightHi = lo, hi
	}
}

// WithCapacityRatio sets capacity = ⌊ratio · Σweights⌋, ratio in (0, 1].
func WithCapacityRatio(ratio float64) BuilderOption {
	return func(c *builderConfig) {
		c.ratio = ratio
	}
}

// WithIterations sets the iteration budget stamped on the instance.
func WithIterations(n int) BuilderOption {
	return func(c *builderConfig) {
		c.iterations = n
	}
}
