// SPDX-License-Identifier: MIT

package builder

//-----------------------------------------------------------------------------
// Builder Method Name Constants
//   used to prefix errors with the generator name for context.
//-----------------------------------------------------------------------------

const (
	// MethodUncorrelated is the canonical name for the Uncorrelated generator.
	MethodUncorrelated = "Uncorrelated"
	// MethodWeaklyCorrelated is the canonical name for the WeaklyCorrelated generator.
	MethodWeaklyCorrelated = "WeaklyCorrelated"
	// MethodStronglyCorrelated is the canonical name for the StronglyCorrelated generator.
	MethodStronglyCorrelated = "StronglyCorrelated"
	// MethodFixed is the canonical name for the Fixed constructor.
	MethodFixed = "Fixed"
	// MethodGenerate is the canonical name for the Generate dispatcher.
	MethodGenerate = "Generate"
)

//-----------------------------------------------------------------------------
// Sizes and defaults
//-----------------------------------------------------------------------------

// MinItems is the smallest instance a generator will produce.
const MinItems = 1

// Default draw ranges, inclusive on both ends.
const (
	DefaultMinValue  = 1
	DefaultMaxValue  = 100
	DefaultMinWeight = 1
	DefaultMaxWeight = 100
)

// DefaultCapacityRatio sets capacity to half of the total weight, the
// classic setting where roughly half of the items fit.
const DefaultCapacityRatio = 0.5

// DefaultIterations is the iteration budget stamped on generated instances.
const DefaultIterations = 100

// correlationDivisor sets the correlation spread to maxWeight/10.
const correlationDivisor = 10

// Textbook instance: three items, capacity 50, optimum 220 by {B, C}.
const (
	TextbookCapacity = 50
	TextbookOptimum  = 220
)
