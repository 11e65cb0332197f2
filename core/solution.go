// SPDX-License-Identifier: MIT

package core

import (
	"math/rand"
	"strings"
)

// Solution is a bit vector over the items of an Instance: s[i] reports
// whether item i is packed. Its length always equals Instance.Len().
type Solution []bool

// NewSolution returns the empty selection of length n.
func NewSolution(n int) Solution { return make(Solution, n) }

// RandomSolution draws every bit independently with probability 1/2.
//
// Complexity: O(n).
func RandomSolution(n int, rng *rand.Rand) Solution {
	s := make(Solution, n)
	for i := range s {
		s[i] = rng.Intn(2) == 1
	}

	return s
}

// Clone returns an independent copy; nil stays nil.
func (s Solution) Clone() Solution {
	if s == nil {
		return nil
	}
	out := make(Solution, len(s))
	copy(out, s)

	return out
}

// Count returns the number of packed items.
func (s Solution) Count() int {
	c := 0
	for _, b := range s {
		if b {
			c++
		}
	}

	return c
}

// Indices returns the packed item indices in ascending order.
func (s Solution) Indices() []int {
	out := make([]int, 0, s.Count())
	for i, b := range s {
		if b {
			out = append(out, i)
		}
	}

	return out
}

// String renders the vector as a string of 0s and 1s.
func (s Solution) String() string {
	var sb strings.Builder
	sb.Grow(len(s))
	for _, b := range s {
		if b {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}

	return sb.String()
}
