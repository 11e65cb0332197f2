// SPDX-License-Identifier: MIT

// Package runner executes search engines side by side.
//
// Compare runs several engines on one instance concurrently and returns
// their results in argument order. Trials repeats one engine family n times
// on independent random streams derived from a single seed (SplitMix64, see
// core.DeriveSeed), and Summarize condenses the results with gonum/stat.
//
// Engines own their random sources and are not shared between goroutines;
// the instance is read-only and safely shared.
package runner
