// SPDX-License-Identifier: MIT

package builder

import "math/rand"

// ValueFn draws an item value for an item of the given weight.
// It must be deterministic for a given RNG state.
type ValueFn func(weight int, rng *rand.Rand) int

// UncorrelatedValueFn ignores the weight and draws uniformly in [lo, hi].
func UncorrelatedValueFn(lo, hi int) ValueFn {
	return func(_ int, rng *rand.Rand) int {
		return uniformInt(rng, lo, hi)
	}
}

// WeaklyCorrelatedValueFn draws weight + U[-spread, spread], floored at 1.
func WeaklyCorrelatedValueFn(spread int) ValueFn {
	return func(w int, rng *rand.Rand) int {
		v := w + uniformInt(rng, -spread, spread)
		if v < 1 {
			return 1
		}
		return v
	}
}

// StronglyCorrelatedValueFn returns weight + offset. It draws nothing.
func StronglyCorrelatedValueFn(offset int) ValueFn {
	return func(w int, _ *rand.Rand) int {
		return w + offset
	}
}

// uniformInt draws uniformly in [lo, hi]; lo == hi consumes no randomness.
func uniformInt(rng *rand.Rand, lo, hi int) int {
	if hi <= lo {
		return lo
	}

	return lo + rng.Intn(hi-lo+1)
}

// correlationSpread is maxWeight/correlationDivisor, at least 1.
func correlationSpread(maxWeight int) int {
	if s := maxWeight / correlationDivisor; s > 1 {
		return s
	}

	return 1
}
