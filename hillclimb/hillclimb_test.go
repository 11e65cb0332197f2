// SPDX-License-Identifier: MIT
// Package hillclimb_test exercises the hill climbing engine end to end:
// feasibility at the boundary, trace shape, determinism under a seed and
// cancellation.
package hillclimb_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/knapsack/core"
	"github.com/katalvlaran/knapsack/hillclimb"
	"github.com/katalvlaran/knapsack/trace"
)

const (
	seedDet     = int64(20251019)
	textbookOpt = 220
)

func textbook(t require.TestingT, iterations int) *core.Instance {
	inst, err := core.NewInstance(
		[]string{"A", "B", "C"},
		[]int{60, 100, 120},
		[]int{10, 20, 30},
		50, iterations,
	)
	require.NoError(t, err)

	return inst
}

// wide builds a 40-item instance whose all-ones vector is far overweight,
// so the repair path always runs.
func wide(t require.TestingT, iterations int) *core.Instance {
	const n = 40
	items := make([]core.Item, n)
	for i := range items {
		items[i] = core.Item{
			Name:   string(rune('a'+i%26)) + string(rune('A'+i/26)),
			Value:  10 + (i*37)%50,
			Weight: 5 + (i*17)%30,
		}
	}
	inst, err := core.FromItems(items, 120, iterations)
	require.NoError(t, err)

	return inst
}

type HillClimbSuite struct {
	suite.Suite
}

func TestHillClimbSuite(t *testing.T) {
	suite.Run(t, new(HillClimbSuite))
}

// TestResultInvariants checks the boundary contract over many seeds.
func (s *HillClimbSuite) TestResultInvariants() {
	for _, inst := range []*core.Instance{textbook(s.T(), 50), wide(s.T(), 300)} {
		for seed := int64(0); seed < 25; seed++ {
			res, err := hillclimb.Solve(inst, hillclimb.WithSeed(seed))
			s.Require().NoError(err)

			s.Require().True(inst.Feasible(res.Best), "best must be feasible")
			s.Require().Equal(inst.Fitness(res.Best), res.BestValue, "tracked best drifted from recomputed fitness")
			_, w := inst.Evaluate(res.Best)
			s.Require().Equal(w, res.BestWeight)
			s.Require().Equal(inst.MaxIterations(), res.Trace.Len())
			s.Require().True(res.Trace.Monotone())
			s.Require().Equal(inst.SelectedNames(res.Best), res.Selected)
			s.Require().Equal(hillclimb.Name, res.Algorithm)

			last, ok := res.Trace.Last()
			s.Require().True(ok)
			s.Require().Equal(res.BestValue, last.BestValue)
		}
	}
}

// TestAcceptedStateIsFeasible checks every recorded current state.
func (s *HillClimbSuite) TestAcceptedStateIsFeasible() {
	inst := wide(s.T(), 200)
	res, err := hillclimb.Solve(inst, hillclimb.WithSeed(seedDet))
	s.Require().NoError(err)

	prev := -1
	for _, r := range res.Trace.Records() {
		s.Require().LessOrEqual(r.Weight, inst.Capacity())
		s.Require().GreaterOrEqual(r.Value, prev, "accepted value only moves up")
		s.Require().GreaterOrEqual(r.BestValue, r.Value)
		prev = r.Value
	}
}

// TestOnlyStrictImprovementsAccepted uses zero-value items, whose flips
// never change the value, to catch acceptance of equal moves.
func (s *HillClimbSuite) TestOnlyStrictImprovementsAccepted() {
	inst, err := core.FromItems([]core.Item{
		{Name: "free", Value: 0, Weight: 0},
		{Name: "dead", Value: 0, Weight: 7},
		{Name: "a", Value: 12, Weight: 9},
		{Name: "b", Value: 15, Weight: 11},
		{Name: "c", Value: 9, Weight: 6},
		{Name: "d", Value: 20, Weight: 14},
		{Name: "e", Value: 4, Weight: 3},
	}, 25, 400)
	s.Require().NoError(err)

	for seed := int64(0); seed < 20; seed++ {
		// Replay the start state: a random vector, then repair.
		rng := core.NewRand(seed)
		start := core.RandomSolution(inst.Len(), rng)
		prevValue, prevWeight := core.Repair(inst, start, rng)

		res, err := hillclimb.Solve(inst, hillclimb.WithSeed(seed))
		s.Require().NoError(err)
		s.Require().Equal(start[0], res.Best[0], "seed %d: zero-value item flipped", seed)
		s.Require().Equal(start[1], res.Best[1], "seed %d: zero-value item flipped", seed)

		accepted, increases := 0, 0
		for _, r := range res.Trace.Records() {
			if r.Value != prevValue || r.Weight != prevWeight {
				accepted++
			}
			if r.Value > prevValue {
				increases++
			}
			prevValue, prevWeight = r.Value, r.Weight
		}
		s.Require().Equal(increases, accepted, "seed %d: accepted a non-improving move", seed)
	}
}

func (s *HillClimbSuite) TestZeroIterations() {
	inst := wide(s.T(), 0)
	res, err := hillclimb.Solve(inst, hillclimb.WithSeed(seedDet))
	s.Require().NoError(err)
	s.Require().Zero(res.Trace.Len())
	s.Require().True(inst.Feasible(res.Best))
	s.Require().Len(res.Best, inst.Len())
}

func (s *HillClimbSuite) TestDeterministicUnderSeed() {
	inst := wide(s.T(), 250)
	a, err := hillclimb.Solve(inst, hillclimb.WithSeed(seedDet))
	s.Require().NoError(err)
	b, err := hillclimb.Solve(inst, hillclimb.WithRand(core.NewRand(seedDet)))
	s.Require().NoError(err)

	if diff := cmp.Diff(a.Trace.Lines(), b.Trace.Lines()); diff != "" {
		s.T().Fatalf("traces differ (-first +second):\n%s", diff)
	}
	s.Require().Equal(a.Selected, b.Selected)
	s.Require().Equal(a.Best, b.Best)
}

func (s *HillClimbSuite) TestTextbookOptimumReachable() {
	inst := textbook(s.T(), 50)
	hit := false
	for seed := int64(0); seed < 40; seed++ {
		res, err := hillclimb.Solve(inst, hillclimb.WithSeed(seed))
		s.Require().NoError(err)
		s.Require().LessOrEqual(res.BestValue, textbookOpt)
		if res.BestValue == textbookOpt {
			s.Require().Equal([]string{"B", "C"}, res.Selected)
			hit = true
		}
	}
	s.Require().True(hit, "220 must be reachable across seeded trials")
}

func (s *HillClimbSuite) TestDegenerateCapacity() {
	inst, err := core.NewInstance([]string{"x", "y", "z"}, []int{5, 6, 7}, []int{3, 4, 5}, 2, 30)
	s.Require().NoError(err)

	res, err := hillclimb.Solve(inst, hillclimb.WithSeed(3))
	s.Require().NoError(err)
	s.Require().Zero(res.BestValue)
	s.Require().Empty(res.Selected)
	s.Require().Equal(30, res.Trace.Len())
}

func (s *HillClimbSuite) TestAllItemsFit() {
	inst, err := core.NewInstance([]string{"x", "y"}, []int{5, 6}, []int{3, 4}, 100, 200)
	s.Require().NoError(err)

	res, err := hillclimb.Solve(inst, hillclimb.WithSeed(5))
	s.Require().NoError(err)
	s.Require().Equal(11, res.BestValue)
	s.Require().Equal([]string{"x", "y"}, res.Selected)
}

func (s *HillClimbSuite) TestSolverRetainsBest() {
	inst := textbook(s.T(), 50)
	solver := hillclimb.New(hillclimb.WithSeed(seedDet))

	sol, v := solver.Best()
	s.Require().Nil(sol)
	s.Require().Zero(v)

	res, err := solver.Solve(inst)
	s.Require().NoError(err)

	sol, v = solver.Best()
	s.Require().Equal(res.Best, sol)
	s.Require().Equal(res.BestValue, v)

	// Mutating the result must not reach the solver's state.
	if len(res.Best) > 0 {
		res.Best[0] = !res.Best[0]
	}
	again, _ := solver.Best()
	s.Require().Equal(sol, again)
}

func (s *HillClimbSuite) TestProgressSeesEveryRecord() {
	inst := textbook(s.T(), 17)
	var seen []trace.Record
	res, err := hillclimb.Solve(inst,
		hillclimb.WithSeed(seedDet),
		hillclimb.WithProgress(func(r trace.Record) { seen = append(seen, r) }))
	s.Require().NoError(err)
	s.Require().Equal(res.Trace.Records(), seen)
}

func (s *HillClimbSuite) TestCanceledContext() {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, err := hillclimb.Solve(textbook(s.T(), 10), hillclimb.WithContext(ctx))
	s.Require().ErrorIs(err, core.ErrCanceled)
	s.Require().True(errors.Is(err, context.Canceled))
	s.Require().Zero(res.Trace.Len())
	s.Require().Nil(res.Best)
}

func (s *HillClimbSuite) TestNilInstance() {
	_, err := hillclimb.Solve(nil)
	s.Require().ErrorIs(err, core.ErrNilInstance)
}

func TestOptions_PanicOnNil(t *testing.T) {
	require.Panics(t, func() { hillclimb.WithRand(nil) })
	require.Panics(t, func() { hillclimb.WithLogger(nil) })
	//nolint:staticcheck // nil context is the point of the test
	require.Panics(t, func() { hillclimb.WithContext(nil) })
}
