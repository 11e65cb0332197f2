// SPDX-License-Identifier: MIT

package report

import (
	"bufio"
	"fmt"
	"io"

	"github.com/katalvlaran/knapsack/runner"
)

// WriteSummaries prints one line per trial batch:
//
//	Hill Climbing: trials=20 mean=212.50 sd=9.10 median=220 min=180 max=220 hits=14/20 (target 220) time=0.0004s/run
func WriteSummaries(w io.Writer, summaries ...runner.Summary) error {
	bw := bufio.NewWriter(w)
	for _, s := range summaries {
		fmt.Fprintf(bw, "%s: trials=%d mean=%.2f sd=%.2f median=%.0f min=%d max=%d hits=%d/%d (target %d) time=%.4fs/run\n",
			s.Algorithm, s.Trials, s.Mean, s.StdDev, s.Median, s.Min, s.Max,
			s.Hits, s.Trials, s.Target, s.MeanElapsed.Seconds())
	}

	return bw.Flush()
}
