// SPDX-License-Identifier: MIT
// Package shape: sentinel error set.
// All errors are raised synchronously at the point of detection and are
// wrapped with an op tag; match them with errors.Is.

package shape

import "errors"

var (
	// ErrDegenerateShape indicates coincident segment endpoints, a zero plane
	// normal, collinear triangle points or non-finite coordinates.
	ErrDegenerateShape = errors.New("shape: degenerate shape")

	// ErrNegativeTolerance indicates a tolerance < 0 (or NaN).
	ErrNegativeTolerance = errors.New("shape: negative tolerance")

	// ErrUnsupportedShapePair indicates no distance/intersection algorithm
	// exists for the two kinds.
	ErrUnsupportedShapePair = errors.New("shape: unsupported shape pair")

	// ErrInvalidKind indicates a kind that does not fit the constructor.
	ErrInvalidKind = errors.New("shape: invalid kind")

	// ErrNilShape indicates a nil Shape argument.
	ErrNilShape = errors.New("shape: nil shape")
)
