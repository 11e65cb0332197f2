// SPDX-License-Identifier: MIT

// Package core defines the 0/1 knapsack model shared by every solver in
// this module.
//
// What lives here:
//
//   - Item / Instance: immutable problem data. An Instance is only built
//     through NewInstance or FromItems, which validate everything up front
//     (lengths, empty set, negative numbers, duplicate names), so no solver
//     ever discovers a malformed instance mid-search.
//   - Solution: a bit vector (one bool per item). Solvers Clone a Solution
//     whenever they keep it as a best or leader snapshot; nothing is aliased.
//   - Fitness: Evaluate returns raw (value, weight); Fitness returns value
//     when weight ≤ capacity and 0 otherwise. Every comparison between
//     candidates goes through Fitness, never the raw value.
//   - Repair: random-removal repair of an overweight Solution.
//   - RNG helpers: seeded and derived *rand.Rand streams.
//   - Result / Engine: the common output and the capability every solver
//     implements.
//
// Errors:
//
//	ErrInvalidInstance    - parent of every instance validation error.
//	ErrLengthMismatch     - names/values/weights differ in length.
//	ErrNoItems            - zero items.
//	ErrNegativeCapacity   - capacity < 0.
//	ErrNegativeIterations - iteration budget < 0.
//	ErrNegativeValue      - an item value < 0.
//	ErrNegativeWeight     - an item weight < 0.
//	ErrEmptyName          - an item name is "".
//	ErrDuplicateName      - two items share a name.
//	ErrNilInstance        - a solver was handed a nil *Instance.
//	ErrCanceled           - the caller's context ended the search.
//
// Complexity:
//
//	Evaluate / Fitness: O(n). Repair: O(n + k) for k removals.
package core
