// SPDX-License-Identifier: MIT

package core

import (
	"errors"
	"fmt"
)

// ErrInvalidInstance is the parent of every instance validation sentinel.
// Use errors.Is(err, ErrInvalidInstance) to catch the whole class.
var ErrInvalidInstance = errors.New("core: invalid instance")

// Instance validation sentinels. Each one wraps ErrInvalidInstance.
var (
	// ErrLengthMismatch indicates names, values and weights differ in length.
	ErrLengthMismatch = fmt.Errorf("%w: names, values and weights differ in length", ErrInvalidInstance)

	// ErrNoItems indicates an instance without items.
	ErrNoItems = fmt.Errorf("%w: no items", ErrInvalidInstance)

	// ErrNegativeCapacity indicates capacity < 0.
	ErrNegativeCapacity = fmt.Errorf("%w: negative capacity", ErrInvalidInstance)

	// ErrNegativeIterations indicates an iteration budget < 0.
	ErrNegativeIterations = fmt.Errorf("%w: negative iteration budget", ErrInvalidInstance)

	// ErrNegativeValue indicates an item with value < 0.
	ErrNegativeValue = fmt.Errorf("%w: negative item value", ErrInvalidInstance)

	// ErrNegativeWeight indicates an item with weight < 0.
	ErrNegativeWeight = fmt.Errorf("%w: negative item weight", ErrInvalidInstance)

	// ErrEmptyName indicates an item with an empty name.
	ErrEmptyName = fmt.Errorf("%w: empty item name", ErrInvalidInstance)

	// ErrDuplicateName indicates two items share a name; selections are
	// reported by name, so names must be unique.
	ErrDuplicateName = fmt.Errorf("%w: duplicate item name", ErrInvalidInstance)
)

// ErrNilInstance is returned by solvers handed a nil *Instance.
var ErrNilInstance = errors.New("core: nil instance")

// ErrCanceled is returned when a caller's context stops a search between
// iterations. The context's own error is wrapped alongside it.
var ErrCanceled = errors.New("core: search canceled")

// Canceled wraps ctxErr so that both errors.Is(err, ErrCanceled) and
// errors.Is(err, context.Canceled) (or DeadlineExceeded) hold.
func Canceled(method string, iteration int, ctxErr error) error {
	return fmt.Errorf("%s: iteration %d: %w: %w", method, iteration, ErrCanceled, ctxErr)
}
