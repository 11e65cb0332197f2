// SPDX-License-Identifier: MIT
// Package gwo_test exercises the Grey Wolf Optimizer end to end.
package gwo_test

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/knapsack/core"
	"github.com/katalvlaran/knapsack/gwo"
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

// tight builds an instance where a random half-selection is almost always
// overweight, so the no-repair variant meets infeasible wolves constantly.
func tight(t require.TestingT, iterations int) *core.Instance {
	const n = 30
	items := make([]core.Item, n)
	for i := range items {
		items[i] = core.Item{
			Name:   "item" + string(rune('A'+i%26)) + string(rune('a'+i/26)),
			Value:  20 + (i*13)%40,
			Weight: 10 + (i*7)%25,
		}
	}
	inst, err := core.FromItems(items, 40, iterations)
	require.NoError(t, err)

	return inst
}

type GWOSuite struct {
	suite.Suite
}

func TestGWOSuite(t *testing.T) {
	suite.Run(t, new(GWOSuite))
}

func (s *GWOSuite) TestResultInvariants() {
	for _, tr := range []gwo.Transfer{gwo.Sigmoid, gwo.SteepRepair} {
		for _, inst := range []*core.Instance{textbook(s.T(), 50), tight(s.T(), 60)} {
			for seed := int64(0); seed < 8; seed++ {
				res, err := gwo.Solve(inst, 12, gwo.WithSeed(seed), gwo.WithTransfer(tr))
				s.Require().NoError(err)

				s.Require().True(inst.Feasible(res.Best), "best must be feasible (%v)", tr)
				s.Require().Equal(inst.Fitness(res.Best), res.BestValue)
				_, w := inst.Evaluate(res.Best)
				s.Require().Equal(w, res.BestWeight)
				s.Require().Equal(inst.MaxIterations(), res.Trace.Len())
				s.Require().True(res.Trace.Monotone())
				s.Require().Equal(inst.SelectedNames(res.Best), res.Selected)
				s.Require().Equal(gwo.Name, res.Algorithm)
			}
		}
	}
}

func (s *GWOSuite) TestZeroIterations() {
	for _, inst := range []*core.Instance{textbook(s.T(), 0), tight(s.T(), 0)} {
		res, err := gwo.Solve(inst, gwo.DefaultWolves, gwo.WithSeed(seedDet))
		s.Require().NoError(err)
		s.Require().Zero(res.Trace.Len())
		s.Require().True(inst.Feasible(res.Best))
		s.Require().Len(res.Best, inst.Len())
	}
}

func (s *GWOSuite) TestDeterministicUnderSeed() {
	inst := tight(s.T(), 40)
	a, err := gwo.Solve(inst, 10, gwo.WithSeed(seedDet))
	s.Require().NoError(err)
	b, err := gwo.New(gwo.WithWolves(10), gwo.WithRand(core.NewRand(seedDet))).Solve(inst)
	s.Require().NoError(err)

	if diff := cmp.Diff(a.Trace.Lines(), b.Trace.Lines()); diff != "" {
		s.T().Fatalf("traces differ (-first +second):\n%s", diff)
	}
	s.Require().Equal(a.Selected, b.Selected)
}

func (s *GWOSuite) TestTextbookOptimumReachable() {
	inst := textbook(s.T(), 50)
	for _, tr := range []gwo.Transfer{gwo.Sigmoid, gwo.SteepRepair} {
		hit := false
		for seed := int64(0); seed < 20; seed++ {
			res, err := gwo.Solve(inst, gwo.DefaultWolves, gwo.WithSeed(seed), gwo.WithTransfer(tr))
			s.Require().NoError(err)
			s.Require().LessOrEqual(res.BestValue, textbookOpt)
			if res.BestValue == textbookOpt {
				s.Require().Equal([]string{"B", "C"}, res.Selected)
				hit = true
			}
		}
		s.Require().True(hit, "220 must be reachable with %v", tr)
	}
}

func (s *GWOSuite) TestTooFewWolves() {
	for _, w := range []int{-1, 0, 1, 2} {
		_, err := gwo.Solve(textbook(s.T(), 5), w)
		s.Require().ErrorIs(err, gwo.ErrTooFewWolves, "wolves=%d", w)
	}
	_, err := gwo.Solve(textbook(s.T(), 5), gwo.MinWolves, gwo.WithSeed(1))
	s.Require().NoError(err)
}

func (s *GWOSuite) TestBadBound() {
	for _, b := range []float64{0, -1, math.Inf(1), math.NaN(), 1e308, gwo.MaxBound + 1} {
		_, err := gwo.New(gwo.WithBound(b)).Solve(textbook(s.T(), 5))
		s.Require().ErrorIs(err, gwo.ErrBadBound, "bound=%v", b)
	}

	// The widest accepted box still yields finite leaders and a feasible best.
	solver := gwo.New(gwo.WithBound(gwo.MaxBound), gwo.WithSeed(seedDet), gwo.WithWolves(8))
	inst := tight(s.T(), 30)
	res, err := solver.Solve(inst)
	s.Require().NoError(err)
	s.Require().True(inst.Feasible(res.Best))
	leaders, ok := solver.Leaders()
	s.Require().True(ok)
	for _, l := range leaders {
		for _, x := range l.Position {
			s.Require().False(math.IsNaN(x) || math.IsInf(x, 0), "leader coordinate %v", x)
		}
	}
}

func (s *GWOSuite) TestUnknownTransfer() {
	_, err := gwo.New(gwo.WithTransfer(gwo.Transfer(7))).Solve(textbook(s.T(), 5))
	s.Require().ErrorIs(err, gwo.ErrUnknownTransfer)
}

func (s *GWOSuite) TestLeadersAfterSolve() {
	solver := gwo.New(gwo.WithSeed(seedDet), gwo.WithWolves(9))
	_, ok := solver.Leaders()
	s.Require().False(ok)

	inst := tight(s.T(), 25)
	res, err := solver.Solve(inst)
	s.Require().NoError(err)

	leaders, ok := solver.Leaders()
	s.Require().True(ok)
	s.Require().GreaterOrEqual(leaders[0].Fitness, leaders[1].Fitness)
	s.Require().GreaterOrEqual(leaders[1].Fitness, leaders[2].Fitness)
	for _, l := range leaders {
		s.Require().Len(l.Position, inst.Len())
		s.Require().Equal(inst.Fitness(l.Solution), l.Fitness)
	}

	last, _ := res.Trace.Last()
	s.Require().Equal(leaders[0].Fitness, last.Value)
	s.Require().Equal(leaders[0].Weight, last.Weight)
	s.Require().GreaterOrEqual(res.BestValue, leaders[0].Fitness)

	best, v := solver.Best()
	s.Require().Equal(res.Best, best)
	s.Require().Equal(res.BestValue, v)
}

func (s *GWOSuite) TestProgressSeesEveryRecord() {
	var seen []trace.Record
	res, err := gwo.Solve(textbook(s.T(), 12), 5,
		gwo.WithSeed(seedDet),
		gwo.WithProgress(func(r trace.Record) { seen = append(seen, r) }))
	s.Require().NoError(err)
	s.Require().Equal(res.Trace.Records(), seen)
}

func (s *GWOSuite) TestCanceledContext() {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := gwo.Solve(textbook(s.T(), 10), 5, gwo.WithContext(ctx))
	s.Require().ErrorIs(err, core.ErrCanceled)
	s.Require().True(errors.Is(err, context.Canceled))
}

func (s *GWOSuite) TestNilInstance() {
	_, err := gwo.Solve(nil, 5)
	s.Require().ErrorIs(err, core.ErrNilInstance)
}

func TestSolve_NumWolvesWins(t *testing.T) {
	// A WithWolves in opts must not override the explicit argument.
	_, err := gwo.Solve(textbook(t, 3), 2, gwo.WithWolves(30))
	require.ErrorIs(t, err, gwo.ErrTooFewWolves)
}
