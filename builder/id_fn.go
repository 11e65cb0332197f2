// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"
	"strconv"
)

// NameFn generates an item name from its zero-based index.
// It must be pure and injective: distinct indices yield distinct names,
// because instances reject duplicate names.
type NameFn func(idx int) string

// DefaultNameFn returns "item1", "item2", ... (one-based for display).
// Complexity: O(d) time where d = number of digits in idx.
// Panics if idx < 0.
func DefaultNameFn(idx int) string {
	return PrefixedNameFn("item")(idx)
}

// DecimalNameFn returns the decimal string of idx, e.g. 0→"0", 42→"42".
// Complexity: O(d) time, O(1) extra space. Never panics.
func DecimalNameFn(idx int) string {
	return strconv.Itoa(idx)
}

// AlphanumericNameFn returns a base-36 string for idx, e.g. 10→"a", 36→"10".
// Panics if idx < 0.
func AlphanumericNameFn(idx int) string {
	if idx < 0 {
		panic(fmt.Sprintf("AlphanumericNameFn: idx must be ≥ 0, got %d", idx))
	}

	return strconv.FormatInt(int64(idx), 36)
}

// ExcelColumnNameFn returns the spreadsheet column name for idx,
// e.g. 0→"A", 25→"Z", 26→"AA". Suits small textbook-style instances.
// Complexity: O(k) time where k ≈ log₂₆(idx).
// Panics if idx < 0.
func ExcelColumnNameFn(idx int) string {
	if idx < 0 {
		panic(fmt.Sprintf("ExcelColumnNameFn: idx must be ≥ 0, got %d", idx))
	}
	// build letters in reverse order
	var runes []rune
	for i := idx; i >= 0; i = i/26 - 1 {
		runes = append(runes, rune('A'+(i%26)))
	}
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}

	return string(runes)
}

// HexNameFn returns the lowercase hexadecimal representation of idx.
// Panics if idx < 0.
func HexNameFn(idx int) string {
	if idx < 0 {
		panic(fmt.Sprintf("HexNameFn: idx must be ≥ 0, got %d", idx))
	}

	return strconv.FormatInt(int64(idx), 16)
}

// PrefixedNameFn returns prefix + (idx+1), e.g. PrefixedNameFn("p")(0) = "p1".
// Panics (in the returned func) if idx < 0.
func PrefixedNameFn(prefix string) NameFn {
	return func(idx int) string {
		if idx < 0 {
			panic(fmt.Sprintf("PrefixedNameFn: idx must be ≥ 0, got %d", idx))
		}
		return prefix + strconv.Itoa(idx+1)
	}
}

// WithPrefixedNames sets the name scheme to PrefixedNameFn(prefix).
func WithPrefixedNames(prefix string) BuilderOption {
	return WithNameScheme(PrefixedNameFn(prefix))
}

// WithDefaultNames resets the name scheme to DefaultNameFn.
func WithDefaultNames() BuilderOption {
	return WithNameScheme(DefaultNameFn)
}

// WithExcelColumnNames sets the name scheme to ExcelColumnNameFn.
func WithExcelColumnNames() BuilderOption {
	return WithNameScheme(ExcelColumnNameFn)
}

// WithHexNames sets the name scheme to HexNameFn.
func WithHexNames() BuilderOption {
	return WithNameScheme(HexNameFn)
}

// WithAlphanumericNames sets the name scheme to AlphanumericNameFn.
func WithAlphanumericNames() BuilderOption {
	return WithNameScheme(AlphanumericNameFn)
}
