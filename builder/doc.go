// Package builder generates deterministic knapsack instances for tests,
// benchmarks and the command-line tool.
//
// The package offers the following key components:
//
//   - Generators:
//     – Uncorrelated:       values drawn independently of weights.
//     – WeaklyCorrelated:   values within ±maxWeight/10 of the weight.
//     – StronglyCorrelated: value = weight + maxWeight/10.
//     – Generate:           dispatch by Kind (ParseKind for CLI strings).
//     – Fixed, Textbook:    explicit items, no randomness.
//   - Configuration primitives:
//     – BuilderOption:      a function that mutates builderConfig before use.
//     – builderConfig:      holds RNG, name scheme, draw ranges, capacity ratio.
//   - Item name schemes (NameFn implementations):
//     – DefaultNameFn:      "item1","item2",….
//     – DecimalNameFn:      decimal strings ("0","1",…).
//     – ExcelColumnNameFn:  spreadsheet columns ("A","Z","AA",…).
//     – AlphanumericNameFn: base-36 strings.
//     – HexNameFn:          lowercase hexadecimal.
//     – PrefixedNameFn:     prefix + one-based index.
//   - Value distributions (ValueFn implementations).
//
// Capacity is ⌊ratio · Σweights⌋ for every random generator, so the same
// ratio yields comparably tight instances at any size.
//
// Guarantees:
//
//   - Random generators require WithSeed or WithRand (ErrNeedRandSource);
//     a given seed always yields the same instance.
//   - Fast-fail on nil option parameters via panics in option constructors.
//   - Numeric misconfiguration surfaces as sentinel errors wrapped with the
//     generator name (ErrTooFewItems, ErrBadRange, ErrBadRatio).
package builder
