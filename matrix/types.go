// SPDX-License-Identifier: MIT

// Package matrix: the public Matrix interface.
// Dense is the only implementation shipped here; kernels take the interface
// and fast-path *Dense.
package matrix

// Matrix represents a two-dimensional mutable array of float64 values.
//
// Complexity notes: all methods are expected O(1) except Clone (O(r*c)).
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	Rows() int

	// Cols returns the number of columns in the matrix.
	Cols() int

	// At retrieves the element at row i, column j.
	// Returns ErrOutOfRange if i or j is outside the matrix.
	At(i, j int) (float64, error)

	// Set assigns v at row i, column j.
	// Returns ErrOutOfRange on invalid indices, ErrNaNInf under the finite-only policy.
	Set(i, j int, v float64) error

	// Clone returns an independent deep copy.
	Clone() Matrix
}
