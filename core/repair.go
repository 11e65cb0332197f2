// SPDX-License-Identifier: MIT

package core

import "math/rand"

// Repair makes s feasible in place by repeatedly excluding a uniformly
// random packed item until the weight fits the capacity. It stops early
// when nothing is left packed, so an instance whose every item is heavier
// than the capacity yields the empty (value 0, feasible) selection instead
// of looping.
//
// Returns the value and weight of the repaired selection.
//
// Complexity: O(n) to collect packed indices plus O(1) per removal.
func Repair(in *Instance, s Solution, rng *rand.Rand) (value, weight int) {
	value, weight = in.Evaluate(s)
	if weight <= in.capacity {
		return value, weight
	}

	packed := s.Indices()
	for weight > in.capacity && len(packed) > 0 {
		k := rng.Intn(len(packed))
		idx := packed[k]

		s[idx] = false
		value -= in.values[idx]
		weight -= in.weights[idx]

		// Swap-remove keeps the remaining candidates uniform.
		packed[k] = packed[len(packed)-1]
		packed = packed[:len(packed)-1]
	}

	return value, weight
}
