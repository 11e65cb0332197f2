// SPDX-License-Identifier: MIT

// Package dataset reads and writes knapsack item lists.
//
// Two formats are supported, chosen by file extension:
//
//	.csv          rows of name,value,weight; a header row is optional and
//	              may order the columns freely ("item", "price" and
//	              "profit" are accepted aliases)
//	.yaml / .yml  {capacity, max_iterations, items: [{name, value, weight}]}
//
// CSV files carry no capacity or iteration budget; callers supply them
// through Data.Instance.
package dataset
