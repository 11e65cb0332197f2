// SPDX-License-Identifier: MIT
package gwo_test

import (
	"fmt"

	"github.com/katalvlaran/knapsack/builder"
	"github.com/katalvlaran/knapsack/gwo"
)

// ExampleSolve runs a seeded pack with the repairing transfer.
func ExampleSolve() {
	inst, err := builder.StronglyCorrelated(50, builder.WithSeed(1), builder.WithIterations(40))
	if err != nil {
		fmt.Println(err)
		return
	}

	res, err := gwo.Solve(inst, 15, gwo.WithSeed(1), gwo.WithTransfer(gwo.SteepRepair))
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println("algorithm:", res.Algorithm)
	fmt.Println("iterations:", res.Trace.Len())
	fmt.Println("feasible:", inst.Feasible(res.Best))
	fmt.Println("best never drops:", res.Trace.Monotone())

	// Output:
	// algorithm: Grey Wolf Optimizer
	// iterations: 40
	// feasible: true
	// best never drops: true
}

// ExampleParseTransfer maps CLI strings to transfers.
func ExampleParseTransfer() {
	for _, s := range []string{"", "sigmoid", "steep-repair", "tanh"} {
		t, err := gwo.ParseTransfer(s)
		fmt.Println(t, err != nil)
	}

	// Output:
	// sigmoid false
	// sigmoid false
	// steep-repair false
	// sigmoid true
}
