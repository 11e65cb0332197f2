// SPDX-License-Identifier: MIT

// Package gwo solves 0/1 knapsack with a binary Grey Wolf Optimizer.
//
// The pack searches a continuous space; every wolf's position is mapped to
// a binary solution each iteration by a logistic transfer and independent
// Bernoulli draws (see Transfer). The three fittest wolves (alpha, beta,
// delta) pull every wolf towards them with the canonical GWO rule, applied
// per coordinate with fresh randomness per leader:
//
//	A = 2a·r1 − a,  C = 2·r2,  D = |C·L[j] − X[j]|,  X_L = L[j] − A·D
//	X'[j] = (X_alpha + X_beta + X_delta) / 3,        a = 2 − 2·it/MaxIterations
//
// Updates are synchronous: all new positions are computed from the previous
// positions and leaders before any wolf moves. Leaders are deep copies, so
// moving the pack never perturbs the leaders of the same iteration.
//
// Because discretization is random, a wolf's fitness can drop between
// iterations even when its position barely moves; the solver therefore
// keeps a running best that only changes on strict improvement.
//
// Complexity: O(MaxIterations · W · n) time, O(W · n) space.
package gwo

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"time"

	"go.uber.org/zap"

	"github.com/katalvlaran/knapsack/core"
	"github.com/katalvlaran/knapsack/trace"
)

// Name is the algorithm's display name.
const Name = "Grey Wolf Optimizer"

const methodSolve = "gwo.Solve"

var (
	// ErrTooFewWolves indicates a pack smaller than MinWolves.
	ErrTooFewWolves = errors.New("gwo: at least 3 wolves are required")

	// ErrBadBound indicates a position bound outside (0, MaxBound].
	ErrBadBound = errors.New("gwo: position bound must be in (0, 100]")

	// ErrUnknownTransfer indicates an unsupported Transfer value.
	ErrUnknownTransfer = errors.New("gwo: unknown transfer")
)

// Solver runs the Grey Wolf Optimizer. A Solver is not safe for concurrent
// use; run independent Solvers on independent goroutines instead.
type Solver struct {
	cfg config

	best       core.Solution
	bestValue  int
	bestWeight int
	leaders    [MinWolves]wolf
	solved     bool
}

var _ core.Engine = (*Solver)(nil)

// New returns a Solver configured by opts.
func New(opts ...Option) *Solver {
	return &Solver{cfg: newConfig(opts...)}
}

// Solve runs a pack of numWolves wolves on inst. Options given after
// numWolves may not override it.
func Solve(inst *core.Instance, numWolves int, opts ...Option) (core.Result, error) {
	all := make([]Option, 0, len(opts)+1)
	all = append(all, opts...)

	return New(append(all, WithWolves(numWolves))...).Solve(inst)
}

// Name implements core.Engine.
func (s *Solver) Name() string { return Name }

// Best returns a copy of the running best of the last successful Solve
// and its value. Before any Solve it returns (nil, 0).
func (s *Solver) Best() (core.Solution, int) {
	return s.best.Clone(), s.bestValue
}

// Leaders returns copies of alpha, beta and delta after the last
// successful Solve, or false if Solve has not completed.
func (s *Solver) Leaders() ([MinWolves]Leader, bool) {
	var out [MinWolves]Leader
	if !s.solved {
		return out, false
	}
	for k, w := range s.leaders {
		out[k] = w.leader()
	}

	return out, true
}

func (s *Solver) validate() error {
	if s.cfg.wolves < MinWolves {
		return fmt.Errorf("%s: wolves=%d < min=%d: %w", methodSolve, s.cfg.wolves, MinWolves, ErrTooFewWolves)
	}
	if !(s.cfg.bound > 0 && s.cfg.bound <= MaxBound) {
		return fmt.Errorf("%s: bound=%g not in (0, %g]: %w", methodSolve, s.cfg.bound, MaxBound, ErrBadBound)
	}
	if !s.cfg.transfer.valid() {
		return fmt.Errorf("%s: %v: %w", methodSolve, s.cfg.transfer, ErrUnknownTransfer)
	}

	return nil
}

// Solve runs the full iteration budget of inst and returns the running
// best feasible solution.
func (s *Solver) Solve(inst *core.Instance) (core.Result, error) {
	if inst == nil {
		return core.Result{}, fmt.Errorf("%s: %w", methodSolve, core.ErrNilInstance)
	}
	if err := s.validate(); err != nil {
		return core.Result{}, err
	}
	start := time.Now()

	var (
		rng    = s.cfg.rng
		log    = s.cfg.logger
		n      = inst.Len()
		iters  = inst.MaxIterations()
		wolves = s.cfg.wolves
	)
	log.Debug("grey wolf optimizer started",
		zap.Int("items", n), zap.Int("capacity", inst.Capacity()), zap.Int("iterations", iters),
		zap.Int("wolves", wolves), zap.Stringer("transfer", s.cfg.transfer))

	// Stage 1: random pack inside [-bound, bound]^n.
	pack := make([]wolf, wolves)
	for i := range pack {
		pos := make([]float64, n)
		for j := range pos {
			pos[j] = (2*rng.Float64() - 1) * s.cfg.bound
		}
		pack[i] = wolf{position: pos, solution: make(core.Solution, n)}
		s.discretize(inst, &pack[i], rng)
	}

	// Stage 2: leaders and running best. An overweight alpha is never
	// reported; the best then starts from the empty selection.
	leaders := selectLeaders(pack)
	best := core.NewSolution(n)
	bestValue, bestWeight := 0, 0
	if inst.Feasible(leaders[0].solution) {
		copy(best, leaders[0].solution)
		bestValue, bestWeight = leaders[0].fitness, leaders[0].weight
	}

	// Stage 3: synchronous position updates.
	next := make([][]float64, wolves)
	for i := range next {
		next[i] = make([]float64, n)
	}

	tr := trace.New(iters)
	for it := 0; it < iters; it++ {
		if err := s.cfg.ctx.Err(); err != nil {
			return core.Result{}, core.Canceled(methodSolve, it, err)
		}

		a := 2.0 - float64(it)*(2.0/float64(iters))
		advance(pack, next, &leaders, a, rng)
		for i := range pack {
			s.discretize(inst, &pack[i], rng)
		}

		leaders = selectLeaders(pack)
		if leaders[0].fitness > bestValue {
			copy(best, leaders[0].solution)
			bestValue, bestWeight = leaders[0].fitness, leaders[0].weight
			log.Debug("grey wolf optimizer improved",
				zap.Int("iteration", it), zap.Int("best_value", bestValue), zap.Int("best_weight", bestWeight))
		}

		rec := tr.Add(bestValue, leaders[0].fitness, leaders[0].weight)
		if s.cfg.progress != nil {
			s.cfg.progress(rec)
		}
	}

	s.best, s.bestValue, s.bestWeight = best, bestValue, bestWeight
	s.leaders, s.solved = leaders, true
	elapsed := time.Since(start)
	log.Info("grey wolf optimizer finished",
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

// advance moves the whole pack one step. Every next position is computed
// from the previous positions before any wolf is moved; next is scratch
// space of the same shape and receives the previous positions.
func advance(pack []wolf, next [][]float64, leaders *[MinWolves]wolf, a float64, rng *rand.Rand) {
	for i := range pack {
		move(pack[i].position, next[i], leaders, a, rng)
	}
	for i := range pack {
		pack[i].position, next[i] = next[i], pack[i].position
	}
}

// move writes the next position of a wolf at cur into dst. cur and the
// leaders are only read.
func move(cur, dst []float64, leaders *[MinWolves]wolf, a float64, rng *rand.Rand) {
	for j := range cur {
		sum := 0.0
		for k := range leaders {
			lp := leaders[k].position[j]
			r1, r2 := rng.Float64(), rng.Float64()
			A := 2*a*r1 - a
			C := 2 * r2
			D := math.Abs(C*lp - cur[j])
			sum += lp - A*D
		}
		dst[j] = sum / MinWolves
	}
}

// discretize re-derives w.solution from w.position, repairs it when the
// transfer asks for it, and refreshes fitness and weight.
func (s *Solver) discretize(inst *core.Instance, w *wolf, rng *rand.Rand) {
	t := s.cfg.transfer
	for j, x := range w.position {
		w.solution[j] = rng.Float64() < t.Probability(x)
	}

	var value, weight int
	if t.repairs() {
		value, weight = core.Repair(inst, w.solution, rng)
	} else {
		value, weight = inst.Evaluate(w.solution)
	}
	w.weight = weight
	w.fitness = value
	if weight > inst.Capacity() {
		w.fitness = 0
	}
}
