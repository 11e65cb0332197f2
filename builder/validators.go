// SPDX-License-Identifier: MIT

package builder

// validateMin ensures n ≥ MinItems.
func validateMin(method string, n int) error {
	if n < MinItems {
		return builderErrorf(method, ErrTooFewItems, "n must be ≥ %d, got %d", MinItems, n)
	}

	return nil
}

// validateRange ensures 0 ≤ lo ≤ hi for the named draw range.
func validateRange(method, what string, lo, hi int) error {
	if lo < 0 || hi < lo {
		return builderErrorf(method, ErrBadRange, "%s range must satisfy 0 ≤ lo ≤ hi, got [%d,%d]", what, lo, hi)
	}

	return nil
}

// validateRatio ensures the capacity ratio lies in (0, 1].
func validateRatio(method string, r float64) error {
	if !(r > 0 && r <= 1) {
		return builderErrorf(method, ErrBadRatio, "capacity ratio must be in (0,1], got %g", r)
	}

	return nil
}
