// SPDX-License-Identifier: MIT

// Package vector provides fixed-size vector arithmetic for the geometry kernel.
//
// What & Why:
//
//	Vec2, Vec3 and Vec4 are plain value types (arrays of float64), so they are
//	copied on assignment, compared with ==, and never shared between callers.
//	Points are Vec4 values whose homogeneous coordinate is exactly 1; free
//	directions use Vec3 (or a Vec4 with w == 0 when mixed with points under a
//	4×4 transform).
//
// Tolerance:
//
//	Every approximate predicate takes an explicit non-negative tolerance.
//	DefaultEpsilon is the library-wide value used when callers have none.
//	Negative tolerances are rejected with ErrNegativeTolerance.
//
// Complexity:
//
//	All operations are O(1) on the fixed types and O(n) on slices.
package vector
