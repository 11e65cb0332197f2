// SPDX-License-Identifier: MIT

package core

// Evaluate returns the total value and total weight of the packed items.
// The weight may exceed the capacity; Evaluate does not judge feasibility.
// Bits beyond the instance length are ignored and missing bits count as 0.
//
// Complexity: O(n), no allocations.
func (in *Instance) Evaluate(s Solution) (value, weight int) {
	n := len(in.values)
	if len(s) < n {
		n = len(s)
	}
	for i := 0; i < n; i++ {
		if s[i] {
			value += in.values[i]
			weight += in.weights[i]
		}
	}

	return value, weight
}

// Feasible reports whether the packed weight fits the capacity.
func (in *Instance) Feasible(s Solution) bool {
	_, w := in.Evaluate(s)

	return w <= in.capacity
}

// Fitness is the feasibility-gated score: the total value when the
// selection fits, 0 otherwise. There is no partial credit for overweight
// selections, so every solver must compare candidates through Fitness.
func (in *Instance) Fitness(s Solution) int {
	v, w := in.Evaluate(s)
	if w > in.capacity {
		return 0
	}

	return v
}

// SelectedNames maps a solution back to item names in index order.
func (in *Instance) SelectedNames(s Solution) []string {
	out := make([]string, 0, s.Count())
	for i, b := range s {
		if b && i < len(in.names) {
			out = append(out, in.names[i])
		}
	}

	return out
}
