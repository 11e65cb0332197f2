// SPDX-License-Identifier: MIT
// Package core_test verifies that an Instance is safe to share between
// goroutines that only evaluate it.
package core_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/knapsack/core"
)

// TestConcurrentEvaluate runs many readers against one instance, each with
// its own random stream and solution buffer (run with -race).
func TestConcurrentEvaluate(t *testing.T) {
	inst := textbook(t, 0)
	const workers = 32
	var wg sync.WaitGroup
	wg.Add(workers)

	values := make([]int, workers)
	for w := 0; w < workers; w++ {
		go func(id int) {
			defer wg.Done()
			rng := core.DeriveRand(99, uint64(id))
			for i := 0; i < 200; i++ {
				s := core.RandomSolution(inst.Len(), rng)
				core.Repair(inst, s, rng)
				if v := inst.Fitness(s); v > values[id] {
					values[id] = v
				}
			}
		}(w)
	}
	wg.Wait()

	for id, v := range values {
		require.LessOrEqual(t, v, 220, "worker %d", id)
		require.Positive(t, v, "worker %d", id)
	}
}
