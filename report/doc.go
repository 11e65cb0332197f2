// SPDX-License-Identifier: MIT

// Package report renders search results for people: a plain-text result
// panel and trace (WriteResult, WriteTrace), one-line trial summaries
// (WriteSummaries) and a convergence chart of best value per iteration
// (Chart) drawn with gonum/plot.
package report
