// SPDX-License-Identifier: MIT

package mesh

import "errors"

var (
	// ErrNilSDF indicates a nil solid passed to FromSDF3.
	ErrNilSDF = errors.New("mesh: nil sdf")

	// ErrInvalidCells indicates a non-positive marching cubes resolution.
	ErrInvalidCells = errors.New("mesh: cells must be > 0")
)
