// SPDX-License-Identifier: MIT
// Package matrix provides universal operations on any Matrix implementation,
// including element-wise addition, subtraction, matrix multiplication,
// transpose, and scalar scaling. All functions perform strict
// fail-fast validation and return clear errors on dimension mismatches.
//
// Notes:
//   - Every kernel allocates a fresh *Dense; operands are never mutated.
//   - *Dense operands take a flat-slice fast path; other implementations
//     go through At/Set in a fixed i→j order.

package matrix

import "fmt"

// ZeroSum is the initial value for dot-product accumulation.
const ZeroSum = 0.0

// Operation name constants for unified error wrapping.
const (
	opAdd         = "Add"
	opSub         = "Sub"
	opScale       = "Scale"
	opMul         = "Mul"
	opMulVec      = "MulVec"
	opTranspose   = "Transpose"
	opOmit        = "Omit"
	opDeterminant = "Determinant"
	opMinor       = "Minor"
	opCofactor    = "Cofactor"
	opAdjoint     = "Adjoint"
	opInverse     = "Inverse"
	opEqual       = "Equal"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// asDense returns m as *Dense when possible, for fast paths.
func asDense(m Matrix) (*Dense, bool) {
	d, ok := m.(*Dense)

	return d, ok && d != nil
}

// addSub computes elementwise out = a + sign*b for sign ∈ {+1, -1}.
//
// Implementation:
//   - Stage 1: ValidateSameShape(a, b). Allocate result Dense(rows, cols).
//   - Stage 2: Fast-path if both are *Dense (identical layout, single flat loop);
//     otherwise fallback At/Set with fixed i→j order.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func addSub(a, b Matrix, sign float64, opTag string) (*Dense, error) {
	if err := ValidateSameShape(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	rows, cols := a.Rows(), a.Cols()
	res, err := NewDense(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	if da, okA := asDense(a); okA {
		if db, okB := asDense(b); okB {
			for idx := range res.data {
				res.data[idx] = da.data[idx] + sign*db.data[idx]
			}

			return res, nil
		}
	}

	var av, bv float64
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if av, err = a.At(i, j); err != nil {
				return nil, matrixErrorf(opTag, err)
			}
			if bv, err = b.At(i, j); err != nil {
				return nil, matrixErrorf(opTag, err)
			}
			if err = res.Set(i, j, av+sign*bv); err != nil {
				return nil, matrixErrorf(opTag, err)
			}
		}
	}

	return res, nil
}

// Add computes the element-wise sum C = A + B.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func Add(a, b Matrix) (*Dense, error) { return addSub(a, b, +1, opAdd) }

// Sub computes the element-wise difference C = A - B.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func Sub(a, b Matrix) (*Dense, error) { return addSub(a, b, -1, opSub) }

// Scale returns s·M element-wise.
func Scale(m Matrix, s float64) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	res, err := NewDense(m.Rows(), m.Cols())
	if err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	if d, ok := asDense(m); ok {
		for idx, v := range d.data {
			res.data[idx] = v * s
		}

		return res, nil
	}
	var v float64
	for i := 0; i < m.Rows(); i++ {
		for j := 0; j < m.Cols(); j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opScale, err)
			}
			if err = res.Set(i, j, v*s); err != nil {
				return nil, matrixErrorf(opScale, err)
			}
		}
	}

	return res, nil
}

// Mul performs standard matrix multiplication C = A × B.
//
// Implementation:
//   - Stage 1: Validate A,B (not nil) and inner dimensions (A.Cols == B.Rows).
//   - Stage 2: If A and B are *Dense, walk columns of B (j→k→i) so both the
//     result column and the A column are contiguous; otherwise use i→j→k.
//
// Returns:
//   - *Dense with shape rows(A) × cols(B).
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (cols(A) != rows(B)).
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func Mul(a, b Matrix) (*Dense, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	aRows, inner, bCols := a.Rows(), a.Cols(), b.Cols()
	res, err := NewDense(aRows, bCols)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	if da, okA := asDense(a); okA {
		if db, okB := asDense(b); okB {
			var bv float64
			for j := 0; j < bCols; j++ {
				resCol := res.data[j*aRows : (j+1)*aRows]
				for k := 0; k < inner; k++ {
					bv = db.data[j*inner+k]
					if bv == 0 {
						continue
					}
					aCol := da.data[k*aRows : (k+1)*aRows]
					for i := range resCol {
						resCol[i] += aCol[i] * bv
					}
				}
			}

			return res, nil
		}
	}

	var av, bv, acc float64
	for i := 0; i < aRows; i++ {
		for j := 0; j < bCols; j++ {
			acc = ZeroSum
			for k := 0; k < inner; k++ {
				if av, err = a.At(i, k); err != nil {
					return nil, matrixErrorf(opMul, err)
				}
				if bv, err = b.At(k, j); err != nil {
					return nil, matrixErrorf(opMul, err)
				}
				acc += av * bv
			}
			if err = res.Set(i, j, acc); err != nil {
				return nil, matrixErrorf(opMul, err)
			}
		}
	}

	return res, nil
}

// MulVec computes y = M·x for a vector x of length Cols(M).
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func MulVec(m Matrix, x []float64) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMulVec, err)
	}
	if err := ValidateVecLen(x, m.Cols()); err != nil {
		return nil, matrixErrorf(opMulVec, err)
	}
	rows, cols := m.Rows(), m.Cols()
	y := make([]float64, rows)
	if d, ok := asDense(m); ok {
		for j := 0; j < cols; j++ {
			xj := x[j]
			col := d.data[j*rows : (j+1)*rows]
			for i := range y {
				y[i] += col[i] * xj
			}
		}

		return y, nil
	}
	var v float64
	var err error
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opMulVec, err)
			}
			y[i] += v * x[j]
		}
	}

	return y, nil
}

// Transpose returns Mᵀ (cols×rows).
func Transpose(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	rows, cols := m.Rows(), m.Cols()
	res, err := NewDense(cols, rows)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	var v float64
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opTranspose, err)
			}
			res.data[i*cols+j] = v // res(j,i) in column-major
		}
	}

	return res, nil
}
