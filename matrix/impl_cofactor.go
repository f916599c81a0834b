// SPDX-License-Identifier: MIT
// Package matrix - cofactor algebra: Omit, Determinant, Minor, Cofactor,
// CofactorMatrix, Adjoint and Inverse.
//
// Purpose:
//   - Keep the classical textbook formulas: Laplace expansion along the first
//     column, adjugate = transpose(cofactor matrix), inverse = adjugate / det.
//   - Inputs are small transform matrices (≤ 4×4); the O(n!) expansion is
//     exact for integer-valued data and needs no pivoting policy.
//
// Notes:
//   - Every kernel except Omit requires a square input (ErrNonSquare).
//   - Inverse checks det == 0 exactly; near-singular inputs are returned as is.

package matrix

import "fmt"

// Omit returns a copy of m with the given row and column removed.
//
// Errors:
//   - ErrNilMatrix, ErrOutOfRange (bad index),
//     ErrInvalidDimensions (m has a single row or column, nothing would remain).
//
// Complexity:
//   - Time O(r*c), Space O((r-1)*(c-1)).
func Omit(m Matrix, row, col int) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opOmit, err)
	}
	rows, cols := m.Rows(), m.Cols()
	if row < 0 || row >= rows || col < 0 || col >= cols {
		return nil, matrixErrorf(opOmit, fmt.Errorf("(%d,%d): %w", row, col, ErrOutOfRange))
	}
	res, err := NewDense(rows-1, cols-1)
	if err != nil {
		return nil, matrixErrorf(opOmit, err)
	}

	var v float64
	ri := 0
	for i := 0; i < rows; i++ {
		if i == row {
			continue
		}
		rj := 0
		for j := 0; j < cols; j++ {
			if j == col {
				continue
			}
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opOmit, err)
			}
			res.data[rj*res.r+ri] = v
			rj++
		}
		ri++
	}

	return res, nil
}

// Determinant returns det(M) for a square matrix.
//
// Implementation:
//   - Stage 1: ValidateSquare.
//   - Stage 2: 1×1 and 2×2 use the direct formula.
//   - Stage 3: otherwise expand along the first column:
//     det = Σᵢ (-1)^i · M[i,0] · minor(i,0).
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare.
//
// Complexity:
//   - Time O(n!), Space O(n²) per recursion level.
func Determinant(m Matrix) (float64, error) {
	if err := ValidateSquare(m); err != nil {
		return 0, matrixErrorf(opDeterminant, err)
	}
	det, err := determinant(m)
	if err != nil {
		return 0, matrixErrorf(opDeterminant, err)
	}

	return det, nil
}

// determinant is the recursive body of Determinant; m is known to be square.
func determinant(m Matrix) (float64, error) {
	n := m.Rows()
	switch n {
	case 1:
		return m.At(0, 0)
	case 2:
		var v [4]float64
		for k := range v {
			x, err := m.At(k/2, k%2)
			if err != nil {
				return 0, err
			}
			v[k] = x
		}

		return v[0]*v[3] - v[1]*v[2], nil
	}

	var (
		det, aij, minor float64
		sub             *Dense
		err             error
	)
	for i := 0; i < n; i++ {
		if aij, err = m.At(i, 0); err != nil {
			return 0, err
		}
		if aij == 0 {
			continue // zero term contributes nothing
		}
		if sub, err = Omit(m, i, 0); err != nil {
			return 0, err
		}
		if minor, err = determinant(sub); err != nil {
			return 0, err
		}
		det += sign(i) * aij * minor
	}

	return det, nil
}

// sign returns (-1)^k.
func sign(k int) float64 {
	if k%2 == 0 {
		return 1
	}

	return -1
}

// Minor returns the determinant of m with row and col removed.
// The minor of a 1×1 matrix is 1 (determinant of the empty matrix).
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrOutOfRange.
func Minor(m Matrix, row, col int) (float64, error) {
	if err := ValidateSquare(m); err != nil {
		return 0, matrixErrorf(opMinor, err)
	}
	n := m.Rows()
	if row < 0 || row >= n || col < 0 || col >= n {
		return 0, matrixErrorf(opMinor, fmt.Errorf("(%d,%d): %w", row, col, ErrOutOfRange))
	}
	if n == 1 {
		return 1, nil
	}
	sub, err := Omit(m, row, col)
	if err != nil {
		return 0, matrixErrorf(opMinor, err)
	}
	det, err := determinant(sub)
	if err != nil {
		return 0, matrixErrorf(opMinor, err)
	}

	return det, nil
}

// Cofactor returns (-1)^(row+col) · Minor(m, row, col).
// Errors: as Minor.
func Cofactor(m Matrix, row, col int) (float64, error) {
	minor, err := Minor(m, row, col)
	if err != nil {
		return 0, matrixErrorf(opCofactor, err)
	}

	return sign(row+col) * minor, nil
}

// CofactorMatrix returns C with C[i,j] = Cofactor(m, i, j).
// Errors: ErrNilMatrix, ErrNonSquare.
// Complexity: O(n² · (n-1)!).
func CofactorMatrix(m Matrix) (*Dense, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opCofactor, err)
	}
	n := m.Rows()
	res, err := NewDense(n, n)
	if err != nil {
		return nil, matrixErrorf(opCofactor, err)
	}
	var c float64
	for j := 0; j < n; j++ {
		for i := 0; i < n; i++ {
			if c, err = Cofactor(m, i, j); err != nil {
				return nil, err
			}
			res.data[j*n+i] = c
		}
	}

	return res, nil
}

// Adjoint returns the adjugate transpose(CofactorMatrix(m)).
// Errors: ErrNilMatrix, ErrNonSquare.
func Adjoint(m Matrix) (*Dense, error) {
	c, err := CofactorMatrix(m)
	if err != nil {
		return nil, matrixErrorf(opAdjoint, err)
	}
	adj, err := Transpose(c)
	if err != nil {
		return nil, matrixErrorf(opAdjoint, err)
	}

	return adj, nil
}

// Inverse returns M⁻¹ = Adjoint(M) / det(M).
//
// Implementation:
//   - Stage 1: ValidateSquare.
//   - Stage 2: det == 0 → ErrSingular (exact comparison).
//   - Stage 3: scale the adjugate by 1/det element-wise.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrSingular.
//
// Complexity:
//   - Time O(n² · (n-1)!), Space O(n²).
func Inverse(m Matrix) (*Dense, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	det, err := determinant(m)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	if det == 0 {
		return nil, matrixErrorf(opInverse, ErrSingular)
	}
	adj, err := Adjoint(m)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	for idx := range adj.data {
		adj.data[idx] /= det
	}

	return adj, nil
}
