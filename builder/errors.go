// SPDX-License-Identifier: MIT
// Package: knapsack/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers use errors.Is(err, ErrX) to branch on semantics.
//   • Generators attach method context with %w (see builderErrorf).
//   • Generators never panic; validation panics are confined to option
//     constructors (WithX...).

package builder

import (
	"errors"
	"fmt"
)

// ErrTooFewItems indicates that the requested item count is below MinItems.
var ErrTooFewItems = errors.New("builder: too few items")

// ErrBadRange indicates a draw range with a negative bound or lo > hi.
var ErrBadRange = errors.New("builder: invalid range")

// ErrBadRatio indicates a capacity ratio outside (0, 1].
var ErrBadRatio = errors.New("builder: capacity ratio out of range")

// ErrNeedRandSource indicates that a stochastic generator was called without
// WithSeed or WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrUnknownKind indicates an unsupported Kind value or name.
var ErrUnknownKind = errors.New("builder: unknown instance kind")

// builderErrorf prefixes err with the method context and a formatted detail,
// keeping err reachable through errors.Is.
//
// Complexity: O(len(format) + Σlen(args)).
func builderErrorf(method string, err error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), err)
}
