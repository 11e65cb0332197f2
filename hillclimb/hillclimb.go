// SPDX-License-Identifier: MIT

// Package hillclimb solves 0/1 knapsack with single-trajectory hill climbing
// over the single-bit-flip neighborhood.
//
// Algorithm:
//  1. Draw every bit of the starting solution uniformly at random.
//  2. Repair: while overweight, drop a uniformly random packed item.
//  3. For MaxIterations steps flip one uniformly random bit and accept the
//     neighbor iff it is feasible and its value is strictly greater than
//     the current value. Equal or worse neighbors are never accepted.
//  4. Append one trace record per iteration whether or not the move was
//     accepted.
//
// Complexity: O(n) for setup and repair, O(1) per iteration (the flip is
// evaluated incrementally), O(n) extra space.
package hillclimb

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/katalvlaran/knapsack/core"
	"github.com/katalvlaran/knapsack/trace"
)

// Name is the algorithm's display name.
const Name = "Hill Climbing"

const methodSolve = "hillclimb.Solve"

// Solver runs hill climbing. A Solver is not safe for concurrent use;
// run independent Solvers on independent goroutines instead.
type Solver struct {
	cfg config

	best       core.Solution
	bestValue  int
	bestWeight int
}

var _ core.Engine = (*Solver)(nil)

// New returns a Solver configured by opts.
func New(opts ...Option) *Solver {
	return &Solver{cfg: newConfig(opts...)}
}

// Solve is shorthand for New(opts...).Solve(inst).
func Solve(inst *core.Instance, opts ...Option) (core.Result, error) {
	return New(opts...).Solve(inst)
}

// Name implements core.Engine.
func (s *Solver) Name() string { return Name }

// Best returns a copy of the best solution of the last successful Solve
// and its value. Before any Solve it returns (nil, 0).
func (s *Solver) Best() (core.Solution, int) {
	return s.best.Clone(), s.bestValue
}

// Solve runs the full iteration budget of inst and returns the best
// feasible solution found.
func (s *Solver) Solve(inst *core.Instance) (core.Result, error) {
	if inst == nil {
		return core.Result{}, fmt.Errorf("%s: %w", methodSolve, core.ErrNilInstance)
	}
	start := time.Now()

	var (
		rng      = s.cfg.rng
		log      = s.cfg.logger
		n        = inst.Len()
		capacity = inst.Capacity()
		iters    = inst.MaxIterations()
	)
	log.Debug("hill climbing started",
		zap.Int("items", n), zap.Int("capacity", capacity), zap.Int("iterations", iters))

	current := core.RandomSolution(n, rng)
	curValue, curWeight := core.Repair(inst, current, rng)

	best := current.Clone()
	bestValue, bestWeight := curValue, curWeight

	tr := trace.New(iters)
	for it := 0; it < iters; it++ {
		if err := s.cfg.ctx.Err(); err != nil {
			return core.Result{}, core.Canceled(methodSolve, it, err)
		}

		if n > 0 {
			k := rng.Intn(n)
			value, weight := curValue, curWeight
			if current[k] {
				value -= inst.Value(k)
				weight -= inst.Weight(k)
			} else {
				value += inst.Value(k)
				weight += inst.Weight(k)
			}

			if weight <= capacity && value > curValue {
				current[k] = !current[k]
				curValue, curWeight = value, weight
				if curValue > bestValue {
					copy(best, current)
					bestValue, bestWeight = curValue, curWeight
					log.Debug("hill climbing improved",
						zap.Int("iteration", it), zap.Int("best_value", bestValue), zap.Int("best_weight", bestWeight))
				}
			}
		}

		rec := tr.Add(bestValue, curValue, curWeight)
		if s.cfg.progress != nil {
			s.cfg.progress(rec)
		}
	}

	s.best, s.bestValue, s.bestWeight = best, bestValue, bestWeight
	elapsed := time.Since(start)
	log.Info("hill climbing finished",
		zap.Int("best_value", bestValue), zap.Int("best_weight", bestWeight),
		zap.Int("selected", best.Count()), zap.Duration("elapsed", elapsed))

	return core.Result{
		Algorithm:  Name,
		Selected:   inst.SelectedNames(best),
		Trace:      tr,
		Elapsed:    elapsed,
		Best:       best.Clone(),
		BestValue:  bestValue,
		BestWeight: bestWeight,
	}, nil
}
