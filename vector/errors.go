// SPDX-License-Identifier: MIT
// Package vector: sentinel error set.
// Callers match these with errors.Is; operations wrap them with an op tag.

package vector

import "errors"

var (
	// ErrDimensionMismatch indicates vectors of unequal length were compared.
	ErrDimensionMismatch = errors.New("vector: dimension mismatch")

	// ErrNegativeTolerance indicates an approximate predicate got tol < 0.
	ErrNegativeTolerance = errors.New("vector: negative tolerance")
)
