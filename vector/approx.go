// SPDX-License-Identifier: MIT

package vector

import (
	"fmt"
	"math"
)

// DefaultEpsilon is the library-wide tolerance used when callers omit one.
const DefaultEpsilon = 1e-6

const opApproxEqual = "ApproxEqual"

// ValidateTolerance returns ErrNegativeTolerance when tol < 0 or tol is NaN.
// Complexity: O(1).
func ValidateTolerance(tol float64) error {
	if tol < 0 || math.IsNaN(tol) {
		return ErrNegativeTolerance
	}

	return nil
}

// ApproxEqual reports whether u and v differ by at most tol in every component.
//
// Implementation:
//   - Stage 1: validate tol ≥ 0 and len(u) == len(v).
//   - Stage 2: walk components in order; a pair of NaNs counts as a match,
//     a single NaN never does.
//
// Errors:
//   - ErrNegativeTolerance, ErrDimensionMismatch (wrapped with the op tag).
//
// Complexity:
//   - Time O(n), Space O(1).
func ApproxEqual(u, v []float64, tol float64) (bool, error) {
	if err := ValidateTolerance(tol); err != nil {
		return false, fmt.Errorf("%s: %w", opApproxEqual, err)
	}
	if len(u) != len(v) {
		return false, fmt.Errorf("%s: %d vs %d: %w", opApproxEqual, len(u), len(v), ErrDimensionMismatch)
	}
	for i := range u {
		if !componentsMatch(u[i], v[i], tol) {
			return false, nil
		}
	}

	return true, nil
}

// componentsMatch is the NaN-aware scalar comparison behind ApproxEqual.
// Polar angles computed at the poles are NaN on purpose, so NaN == NaN here.
func componentsMatch(a, b, tol float64) bool {
	aNaN, bNaN := math.IsNaN(a), math.IsNaN(b)
	if aNaN || bNaN {
		return aNaN && bNaN
	}
	if a == b { // covers equal infinities
		return true
	}

	return math.Abs(a-b) <= tol
}
