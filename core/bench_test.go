// SPDX-License-Identifier: MIT
// Package core_test provides benchmarks for fitness evaluation and repair.
package core_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/knapsack/core"
)

func benchInstance(b *testing.B, n int) *core.Instance {
	b.Helper()
	names := make([]string, n)
	values := make([]int, n)
	weights := make([]int, n)
	for i := range names {
		names[i] = fmt.Sprintf("item%d", i)
		values[i] = 1 + (i*37)%97
		weights[i] = 1 + (i*53)%89
	}
	inst, err := core.NewInstance(names, values, weights, n*20, 0)
	if err != nil {
		b.Fatal(err)
	}

	return inst
}

// BenchmarkEvaluate measures a full O(n) evaluation.
func BenchmarkEvaluate(b *testing.B) {
	for _, n := range []int{100, 1000} {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			inst := benchInstance(b, n)
			s := core.RandomSolution(n, core.NewRand(1))
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				_, _ = inst.Evaluate(s)
			}
		})
	}
}

// BenchmarkRepair measures repairing an all-ones vector.
func BenchmarkRepair(b *testing.B) {
	inst := benchInstance(b, 1000)
	rng := core.NewRand(1)
	s := core.NewSolution(inst.Len())
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for j := range s {
			s[j] = true
		}
		core.Repair(inst, s, rng)
	}
}
