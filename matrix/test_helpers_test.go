// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   - Provide small, deterministic test fixtures and utilities for kernels.
//   - Keep all data finite and well-formed to avoid numeric-policy interference.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvgeom/matrix"
	"github.com/stretchr/testify/require"
)

// hide wraps any Matrix to hide its concrete type from type assertions,
// forcing the generic At/Set paths in kernels.
type hide struct{ matrix.Matrix }

// failAt wraps a Matrix whose At fails for one cell, as a custom backend might.
type failAt struct {
	matrix.Matrix
	row, col int
}

func (f failAt) At(i, j int) (float64, error) {
	if i == f.row && j == f.col {
		return 0, matrix.ErrOutOfRange
	}

	return f.Matrix.At(i, j)
}

// MustDense allocates an r×c *Dense or fails the test.
func MustDense(t testing.TB, r, c int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(r, c)
	require.NoError(t, err)

	return m
}

// FromRows builds a *Dense from a row-major literal or fails the test.
func FromRows(t testing.TB, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewFromRows(rows)
	require.NoError(t, err)

	return m
}

// FromCols builds a *Dense from column slices or fails the test.
func FromCols(t testing.TB, cols [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewFromColumns(cols)
	require.NoError(t, err)

	return m
}

// MustAt reads m(i,j) or fails the test.
func MustAt(t testing.TB, m matrix.Matrix, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err)

	return v
}

// RequireEqual asserts matrix.Equal(want, got, eps) holds.
func RequireEqual(t testing.TB, want, got matrix.Matrix, eps float64) {
	t.Helper()
	ok, err := matrix.Equal(want, got, eps)
	require.NoError(t, err)
	require.Truef(t, ok, "want:\n%v\ngot:\n%v", want, got)
}

// RandomFill fills m with values in [-1, 1) from a seeded source.
func RandomFill(t testing.TB, m *matrix.Dense, seed int64) {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	for i := 0; i < m.Rows(); i++ {
		for j := 0; j < m.Cols(); j++ {
			require.NoError(t, m.Set(i, j, 2*rng.Float64()-1))
		}
	}
}
