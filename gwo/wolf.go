// SPDX-License-Identifier: MIT

package gwo

import (
	"sort"

	"github.com/katalvlaran/knapsack/core"
)

// wolf is one pack member: a continuous position, the binary solution
// derived from it and that solution's gated fitness and raw weight.
type wolf struct {
	position []float64
	solution core.Solution
	fitness  int
	weight   int
}

// clone deep-copies position and solution so that a leader never shares
// storage with a live pack slot.
func (w wolf) clone() wolf {
	return wolf{
		position: append([]float64(nil), w.position...),
		solution: w.solution.Clone(),
		fitness:  w.fitness,
		weight:   w.weight,
	}
}

// Leader is an exported snapshot of alpha, beta or delta.
type Leader struct {
	Position []float64
	Solution core.Solution
	Fitness  int
	Weight   int
}

func (w wolf) leader() Leader {
	c := w.clone()

	return Leader{Position: c.position, Solution: c.solution, Fitness: c.fitness, Weight: c.weight}
}

// selectLeaders returns copies of the three fittest wolves in descending
// fitness order. Ties keep population order (stable sort).
// The pack must hold at least MinWolves members.
//
// Complexity: O(W log W) time, O(W + 3n) space.
func selectLeaders(pack []wolf) [MinWolves]wolf {
	order := make([]int, len(pack))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return pack[order[a]].fitness > pack[order[b]].fitness
	})

	var out [MinWolves]wolf
	for k := range out {
		out[k] = pack[order[k]].clone()
	}

	return out
}
