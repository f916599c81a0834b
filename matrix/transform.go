// SPDX-License-Identifier: MIT
// Package matrix - affine transform helpers for 4×4 homogeneous matrices.
//
// Points are vector.Vec4 with w == 1 and directions have w == 0; a transform
// built here keeps the bottom row (0, 0, 0, 1) so points stay points.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/lvgeom/vector"
)

const (
	opTransformPoint     = "TransformPoint"
	opTransformDirection = "TransformDirection"
)

// Translation returns the 4×4 matrix translating by t.
func Translation(t vector.Vec3) *Dense {
	m, _ := NewIdentity(4) // 4 > 0, cannot fail
	m.data[12], m.data[13], m.data[14] = t[0], t[1], t[2]

	return m
}

// Scaling returns the 4×4 matrix scaling each axis by s.
func Scaling(s vector.Vec3) *Dense {
	m, _ := NewIdentity(4)
	m.data[0], m.data[5], m.data[10] = s[0], s[1], s[2]

	return m
}

// TransformPoint applies the 4×4 matrix m to the affine point p.
// The result is re-projected only when m is projective (w' != 1).
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (m is not 4×4), ErrSingular (w' == 0).
func TransformPoint(m Matrix, p vector.Vec4) (vector.Vec4, error) {
	y, err := transform4(m, p)
	if err != nil {
		return vector.Vec4{}, matrixErrorf(opTransformPoint, err)
	}
	w := y[3]
	if w == 0 {
		return vector.Vec4{}, matrixErrorf(opTransformPoint, ErrSingular)
	}
	if w != 1 {
		return vector.Vec4{y[0] / w, y[1] / w, y[2] / w, 1}, nil
	}

	return vector.Vec4{y[0], y[1], y[2], 1}, nil
}

// TransformDirection applies the linear part of m to d, ignoring translation.
func TransformDirection(m Matrix, d vector.Vec3) (vector.Vec3, error) {
	y, err := transform4(m, d.Direction())
	if err != nil {
		return vector.Vec3{}, matrixErrorf(opTransformDirection, err)
	}

	return vector.Vec3{y[0], y[1], y[2]}, nil
}

func transform4(m Matrix, v vector.Vec4) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, err
	}
	if m.Rows() != 4 || m.Cols() != 4 {
		return nil, fmt.Errorf("%dx%d, want 4x4: %w", m.Rows(), m.Cols(), ErrDimensionMismatch)
	}

	return MulVec(m, v[:])
}
