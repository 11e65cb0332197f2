// SPDX-License-Identifier: MIT

package report

import (
	"bufio"
	"fmt"
	"io"

	"github.com/katalvlaran/knapsack/core"
)

// WriteResult prints the result panel of one run:
//
//	Algorithm: Hill Climbing
//	Total value: 220
//	Total weight: 50/50
//	Selected items: 2
//	Time: 0.0013s
//
//	 1. B (100 - 20)
//	 2. C (120 - 30)
//
// Item lines read "name (value - weight)" in instance order.
func WriteResult(w io.Writer, inst *core.Instance, res core.Result) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "Algorithm: %s\n", res.Algorithm)
	fmt.Fprintf(bw, "Total value: %d\n", res.BestValue)
	fmt.Fprintf(bw, "Total weight: %d/%d\n", res.BestWeight, inst.Capacity())
	fmt.Fprintf(bw, "Selected items: %d\n", len(res.Selected))
	fmt.Fprintf(bw, "Time: %.4fs\n\n", res.ElapsedSeconds())

	index := make(map[string]int, inst.Len())
	for i, name := range inst.Names() {
		index[name] = i
	}
	for k, name := range res.Selected {
		i, ok := index[name]
		if !ok {
			return fmt.Errorf("report: selected item %q not in instance", name)
		}
		fmt.Fprintf(bw, "%2d. %s (%d - %d)\n", k+1, name, inst.Value(i), inst.Weight(i))
	}

	return bw.Flush()
}

// WriteTrace prints one line per trace record.
func WriteTrace(w io.Writer, res core.Result) error {
	bw := bufio.NewWriter(w)
	for _, line := range res.Trace.Lines() {
		bw.WriteString(line)
		bw.WriteByte('\n')
	}

	return bw.Flush()
}
