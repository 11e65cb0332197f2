// SPDX-License-Identifier: MIT

package gwo

import (
	"fmt"
	"math"
)

// Transfer selects how a continuous coordinate becomes an inclusion
// probability, and whether discretized solutions are repaired.
type Transfer int

const (
	// Sigmoid maps x to 1/(1+e^-x) and keeps overweight solutions as they
	// are; the gated fitness scores them 0.
	Sigmoid Transfer = iota

	// SteepRepair maps x to 1/(1+e^(-10(x-0.5))) and then repairs every
	// overweight solution by random removal, like hill climbing does.
	SteepRepair
)

const (
	// expClamp bounds the exponent input; beyond it the probability is
	// exactly 0 or 1 and math.Exp is never asked to overflow.
	expClamp = 100.0

	steepSlope  = 10.0
	steepCenter = 0.5
)

// String implements fmt.Stringer.
func (t Transfer) String() string {
	switch t {
	case Sigmoid:
		return "sigmoid"
	case SteepRepair:
		return "steep-repair"
	default:
		return fmt.Sprintf("Transfer(%d)", int(t))
	}
}

// ParseTransfer is the inverse of String.
func ParseTransfer(s string) (Transfer, error) {
	switch s {
	case "sigmoid", "":
		return Sigmoid, nil
	case "steep-repair":
		return SteepRepair, nil
	default:
		return 0, fmt.Errorf("gwo: unknown transfer %q: %w", s, ErrUnknownTransfer)
	}
}

// Probability returns the inclusion probability of a coordinate x.
func (t Transfer) Probability(x float64) float64 {
	if t == SteepRepair {
		return logistic(steepSlope * (x - steepCenter))
	}

	return logistic(x)
}

// repairs reports whether discretized solutions are made feasible.
func (t Transfer) repairs() bool { return t == SteepRepair }

func (t Transfer) valid() bool { return t == Sigmoid || t == SteepRepair }

// logistic is 1/(1+e^-x) with the input clamped to ±expClamp. A NaN
// coordinate carries no direction and maps to 0.5.
func logistic(x float64) float64 {
	if math.IsNaN(x) {
		return 0.5
	}
	if x < -expClamp {
		return 0
	}
	if x > expClamp {
		return 1
	}

	return 1 / (1 + math.Exp(-x))
}
