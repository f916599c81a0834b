// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All kernels MUST return these sentinels and tests MUST check them
// via errors.Is. No kernel should panic on user-triggered error conditions.
// Panics are reserved for programmer errors in option constructors.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency. Kernels wrap
// the sentinel with their op tag via matrixErrorf; callers still match with
// errors.Is.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil -> tolerance -> shape/square -> dimension mismatch -> singular.

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g., Add/Sub different shapes, or Mul where a.Cols != b.Rows.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the input wasn't
	// (Determinant, Minor, Cofactor, Adjoint, Inverse).
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrSingular is returned by Inverse when the determinant is exactly zero.
	ErrSingular = errors.New("matrix: singular matrix")

	// ErrNegativeTolerance signals a negative (or NaN) tolerance in Equal.
	ErrNegativeTolerance = errors.New("matrix: negative tolerance")

	// ErrNaNInf signals a NaN or ±Inf value was written under the finite-only policy.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrRagged indicates that column slices passed to NewFromColumns differ in length.
	ErrRagged = errors.New("matrix: ragged columns")
)
