// SPDX-License-Identifier: MIT

package runner

import (
	"math"
	"time"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/knapsack/core"
)

// Summary condenses a batch of runs of one algorithm.
type Summary struct {
	Algorithm string
	Trials    int

	Mean   float64 // mean best value
	StdDev float64 // sample standard deviation; 0 for a single trial
	Median float64
	Min    int
	Max    int

	// Target is the value counted as a hit. When Summarize is given a
	// non-positive target it is the batch maximum.
	Target  int
	Hits    int
	HitRate float64

	MeanElapsed time.Duration
}

// Summarize computes best-value statistics over results. A run hits when
// its best value reaches target; a non-positive target means "the best
// value any run found". An empty batch yields the zero Summary.
//
// Complexity: O(n log n) time (median), O(n) space.
func Summarize(results []core.Result, target int) Summary {
	if len(results) == 0 {
		return Summary{}
	}

	values := make([]float64, len(results))
	var elapsed time.Duration
	for i, r := range results {
		values[i] = float64(r.BestValue)
		elapsed += r.Elapsed
	}

	s := Summary{
		Algorithm:   results[0].Algorithm,
		Trials:      len(results),
		Min:         int(floats.Min(values)),
		Max:         int(floats.Max(values)),
		MeanElapsed: elapsed / time.Duration(len(results)),
	}
	s.Mean, s.StdDev = stat.MeanStdDev(values, nil)
	if math.IsNaN(s.StdDev) {
		s.StdDev = 0
	}

	sorted := append([]float64(nil), values...)
	floats.Argsort(sorted, make([]int, len(sorted)))
	s.Median = stat.Quantile(0.5, stat.Empirical, sorted, nil)

	s.Target = target
	if target <= 0 {
		s.Target = s.Max
	}
	for _, r := range results {
		if r.BestValue >= s.Target {
			s.Hits++
		}
	}
	s.HitRate = float64(s.Hits) / float64(s.Trials)

	return s
}
