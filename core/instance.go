// SPDX-License-Identifier: MIT

package core

import "fmt"

const methodNewInstance = "NewInstance"

// Item is one selectable object. Items are immutable once an Instance holds them.
type Item struct {
	Name   string
	Value  int
	Weight int
}

// Instance is a validated 0/1 knapsack problem: ordered items, a capacity
// and the iteration budget the solvers run for.
//
// The item data is kept as index-aligned value/weight arrays so the hot
// loops of the solvers read plain ints. All accessors return copies.
type Instance struct {
	names         []string
	values        []int
	weights       []int
	capacity      int
	maxIterations int
}

// NewInstance validates the index-aligned item arrays and builds an Instance.
//
// Contract:
//   - len(names) == len(values) == len(weights) ≥ 1.
//   - capacity ≥ 0, maxIterations ≥ 0 (0 is a valid, empty run).
//   - every value and weight ≥ 0, every name non-empty and unique.
//
// Errors: the sentinels in errors.go; all satisfy errors.Is(err, ErrInvalidInstance).
//
// Complexity: O(n) time, O(n) space.
func NewInstance(names []string, values, weights []int, capacity, maxIterations int) (*Instance, error) {
	n := len(names)
	if len(values) != n || len(weights) != n {
		return nil, fmt.Errorf("%s: names=%d values=%d weights=%d: %w",
			methodNewInstance, n, len(values), len(weights), ErrLengthMismatch)
	}
	if n == 0 {
		return nil, fmt.Errorf("%s: %w", methodNewInstance, ErrNoItems)
	}
	if capacity < 0 {
		return nil, fmt.Errorf("%s: capacity=%d: %w", methodNewInstance, capacity, ErrNegativeCapacity)
	}
	if maxIterations < 0 {
		return nil, fmt.Errorf("%s: max iterations=%d: %w", methodNewInstance, maxIterations, ErrNegativeIterations)
	}

	seen := make(map[string]int, n)
	for i := 0; i < n; i++ {
		if names[i] == "" {
			return nil, fmt.Errorf("%s: item %d: %w", methodNewInstance, i, ErrEmptyName)
		}
		if first, dup := seen[names[i]]; dup {
			return nil, fmt.Errorf("%s: item %d %q also at %d: %w",
				methodNewInstance, i, names[i], first, ErrDuplicateName)
		}
		seen[names[i]] = i
		if values[i] < 0 {
			return nil, fmt.Errorf("%s: item %d %q value=%d: %w",
				methodNewInstance, i, names[i], values[i], ErrNegativeValue)
		}
		if weights[i] < 0 {
			return nil, fmt.Errorf("%s: item %d %q weight=%d: %w",
				methodNewInstance, i, names[i], weights[i], ErrNegativeWeight)
		}
	}

	return &Instance{
		names:         append([]string(nil), names...),
		values:        append([]int(nil), values...),
		weights:       append([]int(nil), weights...),
		capacity:      capacity,
		maxIterations: maxIterations,
	}, nil
}

// FromItems is NewInstance for a slice of Items.
func FromItems(items []Item, capacity, maxIterations int) (*Instance, error) {
	names := make([]string, len(items))
	values := make([]int, len(items))
	weights := make([]int, len(items))
	for i, it := range items {
		names[i], values[i], weights[i] = it.Name, it.Value, it.Weight
	}

	return NewInstance(names, values, weights, capacity, maxIterations)
}

// WithIterations returns a copy of the instance with a different budget.
func (in *Instance) WithIterations(maxIterations int) (*Instance, error) {
	return NewInstance(in.names, in.values, in.weights, in.capacity, maxIterations)
}

// WithCapacity returns a copy of the instance with a different capacity.
func (in *Instance) WithCapacity(capacity int) (*Instance, error) {
	return NewInstance(in.names, in.values, in.weights, capacity, in.maxIterations)
}

// Len returns the number of items n.
func (in *Instance) Len() int { return len(in.names) }

// Capacity returns the weight limit.
func (in *Instance) Capacity() int { return in.capacity }

// MaxIterations returns the iteration budget.
func (in *Instance) MaxIterations() int { return in.maxIterations }

// Item returns the i-th item. It panics if i is out of range.
func (in *Instance) Item(i int) Item {
	return Item{Name: in.names[i], Value: in.values[i], Weight: in.weights[i]}
}

// Items returns a copy of every item in order.
func (in *Instance) Items() []Item {
	out := make([]Item, len(in.names))
	for i := range in.names {
		out[i] = in.Item(i)
	}

	return out
}

// Names returns a copy of the item names in order.
func (in *Instance) Names() []string { return append([]string(nil), in.names...) }

// Values returns a copy of the item values in order.
func (in *Instance) Values() []int { return append([]int(nil), in.values...) }

// Weights returns a copy of the item weights in order.
func (in *Instance) Weights() []int { return append([]int(nil), in.weights...) }

// Value returns the value of item i without copying.
func (in *Instance) Value(i int) int { return in.values[i] }

// Weight returns the weight of item i without copying.
func (in *Instance) Weight(i int) int { return in.weights[i] }

// TotalWeight returns the weight of the all-ones selection.
func (in *Instance) TotalWeight() int {
	total := 0
	for _, w := range in.weights {
		total += w
	}

	return total
}
