// SPDX-License-Identifier: MIT

package orient

import "errors"

var (
	// ErrZeroVector indicates a rotation was requested from or to a zero vector.
	ErrZeroVector = errors.New("orient: zero vector")

	// ErrNegativeTolerance indicates an approximate predicate got tol < 0.
	ErrNegativeTolerance = errors.New("orient: negative tolerance")
)
