// SPDX-License-Identifier: MIT

// Package core - RNG utilities shared by the stochastic solvers.
//
// Policy:
//   - Same seed ⇒ identical draws ⇒ identical traces and selections.
//   - math/rand.Rand is NOT goroutine-safe. Never share one *rand.Rand
//     between solvers running concurrently; derive a stream per worker.
//   - Without an explicit seed a solver falls back to TimeRand, so repeated
//     interactive runs differ.
package core

import (
	"math/rand"
	"time"
)

// NewRand returns a deterministic *rand.Rand for seed.
//
// Complexity: O(1).
func NewRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// TimeRand returns a *rand.Rand seeded from the wall clock.
func TimeRand() *rand.Rand {
	return NewRand(time.Now().UnixNano())
}

// DeriveSeed mixes a parent seed and a stream identifier into a new seed.
// It applies the SplitMix64 finalizer so neighbouring streams (0, 1, 2, …)
// give uncorrelated children.
//
// Complexity: O(1).
func DeriveSeed(parent int64, stream uint64) int64 {
	var x uint64
	x = uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return int64(x)
}

// DeriveRand returns an independent deterministic stream for worker or
// trial number stream, derived from parent.
//
// Use during setup, not inside hot loops.
func DeriveRand(parent int64, stream uint64) *rand.Rand {
	return NewRand(DeriveSeed(parent, stream))
}
