// SPDX-License-Identifier: MIT

package core

import (
	"time"

	"github.com/katalvlaran/knapsack/trace"
)

// Result is the outcome of one Solve call. It is owned by the caller; the
// solver keeps its own copy of the best solution.
type Result struct {
	// Algorithm is the solver's display name.
	Algorithm string

	// Selected lists the names of the packed items in index order.
	Selected []string

	// Trace holds one record per completed iteration.
	Trace trace.Trace

	// Elapsed is the wall time spent inside Solve.
	Elapsed time.Duration

	// Best is the best feasible solution found; BestValue == Fitness(Best).
	Best       Solution
	BestValue  int
	BestWeight int
}

// ElapsedSeconds returns Elapsed as fractional seconds.
func (r Result) ElapsedSeconds() float64 { return r.Elapsed.Seconds() }

// Engine is the capability shared by every knapsack solver. The caller
// picks the concrete engine up front; nothing dispatches at runtime.
type Engine interface {
	// Name returns a human-readable algorithm name.
	Name() string

	// Solve runs the whole search on inst and returns its Result.
	// A failed Solve returns no partial result.
	Solve(inst *Instance) (Result, error)
}
