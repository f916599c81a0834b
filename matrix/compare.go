// SPDX-License-Identifier: MIT

package matrix

import "github.com/katalvlaran/lvgeom/vector"

// Equal reports whether a and b have the same size and every pair of
// corresponding columns is vector.ApproxEqual within tol.
//
// Implementation:
//   - Stage 1: validate tol and non-nil operands.
//   - Stage 2: different sizes → false (not an error).
//   - Stage 3: compare column by column; NaN pairs match as in vector.ApproxEqual.
//
// Errors:
//   - ErrNilMatrix, ErrNegativeTolerance.
//
// Complexity:
//   - Time O(r*c), Space O(r).
func Equal(a, b Matrix, tol float64) (bool, error) {
	if err := ValidateTolerance(tol); err != nil {
		return false, matrixErrorf(opEqual, err)
	}
	if err := ValidateNotNil(a); err != nil {
		return false, matrixErrorf(opEqual, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return false, matrixErrorf(opEqual, err)
	}
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		return false, nil
	}

	for j := 0; j < a.Cols(); j++ {
		ca, err := column(a, j)
		if err != nil {
			return false, matrixErrorf(opEqual, err)
		}
		cb, err := column(b, j)
		if err != nil {
			return false, matrixErrorf(opEqual, err)
		}
		ok, err := vector.ApproxEqual(ca, cb, tol)
		if err != nil {
			return false, matrixErrorf(opEqual, err)
		}
		if !ok {
			return false, nil
		}
	}

	return true, nil
}

// EqualDefault is Equal with the tolerance resolved from opts
// (DefaultEpsilon unless WithEpsilon is given).
func EqualDefault(a, b Matrix, opts ...Option) (bool, error) {
	return Equal(a, b, gatherOptions(opts...).eps)
}

// IsIdentity reports whether m is square and within eps of I.
func IsIdentity(m Matrix, opts ...Option) (bool, error) {
	if err := ValidateNotNil(m); err != nil {
		return false, matrixErrorf(opEqual, err)
	}
	if m.Rows() != m.Cols() {
		return false, nil
	}
	id, err := NewIdentity(m.Rows())
	if err != nil {
		return false, err
	}

	return EqualDefault(m, id, opts...)
}

// column reads column j of any Matrix.
func column(m Matrix, j int) ([]float64, error) {
	if d, ok := asDense(m); ok {
		return d.Column(j)
	}
	out := make([]float64, m.Rows())
	var err error
	for i := range out {
		if out[i], err = m.At(i, j); err != nil {
			return nil, err
		}
	}

	return out, nil
}
