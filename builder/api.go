// SPDX-License-Identifier: MIT
// Package: knapsack/builder
//
// api.go - public entry points for the builder package.
//
// Design contract:
//   - One worker: generate(method, n, cfg, valueFn). Every random generator
//     resolves its options, validates, draws weights then values, and sizes
//     the capacity from the drawn total weight.
//   - Determinism: same n, options and seed ⇒ identical instances.
//   - Safety: never panic; return sentinel errors wrapped with method context.

package builder

import (
	"fmt"
	"math"

	"github.com/katalvlaran/knapsack/core"
)

// Kind selects a random instance family.
type Kind int

const (
	// KindUncorrelated draws values independently of weights.
	KindUncorrelated Kind = iota
	// KindWeaklyCorrelated draws values near their weights.
	KindWeaklyCorrelated
	// KindStronglyCorrelated sets value = weight + constant.
	KindStronglyCorrelated
)

var kindNames = [...]string{
	KindUncorrelated:       "uncorrelated",
	KindWeaklyCorrelated:   "weakly-correlated",
	KindStronglyCorrelated: "strongly-correlated",
}

// String implements fmt.Stringer.
func (k Kind) String() string {
	if k >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}

	return fmt.Sprintf("Kind(%d)", int(k))
}

// ParseKind is the inverse of String. "weak" and "strong" are accepted too.
func ParseKind(s string) (Kind, error) {
	switch s {
	case "uncorrelated", "":
		return KindUncorrelated, nil
	case "weakly-correlated", "weak":
		return KindWeaklyCorrelated, nil
	case "strongly-correlated", "strong":
		return KindStronglyCorrelated, nil
	default:
		return 0, fmt.Errorf("builder: kind %q: %w", s, ErrUnknownKind)
	}
}

// Generate dispatches to the generator of kind.
func Generate(kind Kind, n int, opts ...BuilderOption) (*core.Instance, error) {
	switch kind {
	case KindUncorrelated:
		return Uncorrelated(n, opts...)
	case KindWeaklyCorrelated:
		return WeaklyCorrelated(n, opts...)
	case KindStronglyCorrelated:
		return StronglyCorrelated(n, opts...)
	default:
		return nil, builderErrorf(MethodGenerate, ErrUnknownKind, "%v", kind)
	}
}

// Uncorrelated draws n items with weights in the weight range and values
// independently in the value range.
//
// Complexity: O(n) time and space.
func Uncorrelated(n int, opts ...BuilderOption) (*core.Instance, error) {
	cfg := newBuilderConfig(opts...)
	if err := validateRange(MethodUncorrelated, "value", cfg.valueLo, cfg.valueHi); err != nil {
		return nil, err
	}

	return generate(MethodUncorrelated, n, cfg, UncorrelatedValueFn(cfg.valueLo, cfg.valueHi))
}

// WeaklyCorrelated draws values within ±maxWeight/10 of each weight,
// floored at 1. The value range is ignored.
//
// Complexity: O(n) time and space.
func WeaklyCorrelated(n int, opts ...BuilderOption) (*core.Instance, error) {
	cfg := newBuilderConfig(opts...)

	return generate(MethodWeaklyCorrelated, n, cfg, WeaklyCorrelatedValueFn(correlationSpread(cfg.weightHi)))
}

// StronglyCorrelated sets every value to weight + maxWeight/10. These are
// the hardest of the three families for local search. The value range is
// ignored.
//
// Complexity: O(n) time and space.
func StronglyCorrelated(n int, opts ...BuilderOption) (*core.Instance, error) {
	cfg := newBuilderConfig(opts...)

	return generate(MethodStronglyCorrelated, n, cfg, StronglyCorrelatedValueFn(correlationSpread(cfg.weightHi)))
}

// Fixed wraps explicit items into an instance with the given capacity.
// Only WithIterations is observed; no randomness is used.
func Fixed(capacity int, items []core.Item, opts ...BuilderOption) (*core.Instance, error) {
	cfg := newBuilderConfig(opts...)
	inst, err := core.FromItems(items, capacity, cfg.iterations)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", MethodFixed, err)
	}

	return inst, nil
}

// Textbook returns the classic three-item instance: A(60,10), B(100,20),
// C(120,30), capacity 50. Its optimum is {B, C} with value 220.
func Textbook(opts ...BuilderOption) (*core.Instance, error) {
	return Fixed(TextbookCapacity, []core.Item{
		{Name: "A", Value: 60, Weight: 10},
		{Name: "B", Value: 100, Weight: 20},
		{Name: "C", Value: 120, Weight: 30},
	}, opts...)
}

// generate validates cfg, draws n weights and values and sizes the capacity.
// Validation order: size, weight range, ratio, rng.
func generate(method string, n int, cfg builderConfig, valueOf ValueFn) (*core.Instance, error) {
	if err := validateMin(method, n); err != nil {
		return nil, err
	}
	if err := validateRange(method, "weight", cfg.weightLo, cfg.weightHi); err != nil {
		return nil, err
	}
	if err := validateRatio(method, cfg.ratio); err != nil {
		return nil, err
	}
	if cfg.rng == nil {
		return nil, builderErrorf(method, ErrNeedRandSource, "use WithSeed or WithRand")
	}

	var (
		names   = make([]string, n)
		values  = make([]int, n)
		weights = make([]int, n)
		total   int
	)
	for i := 0; i < n; i++ {
		names[i] = cfg.nameFn(i)
		weights[i] = uniformInt(cfg.rng, cfg.weightLo, cfg.weightHi)
		values[i] = valueOf(weights[i], cfg.rng)
		total += weights[i]
	}
	capacity := int(math.Floor(cfg.ratio * float64(total)))

	inst, err := core.NewInstance(names, values, weights, capacity, cfg.iterations)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", method, err)
	}

	return inst, nil
}
