// SPDX-License-Identifier: MIT

// Package matrix offers small dense matrices for transform and geometry work.
//
// The matrix package provides:
//
//   - The Matrix interface and Dense, a column-major implementation whose
//     flat buffer can be uploaded directly as a GPU matrix uniform.
//   - Multiply, transpose, add/sub/scale and matrix-vector kernels.
//   - Determinant by cofactor (Laplace) expansion, minors, cofactors,
//     the adjugate (adjoint) and the classical adjugate inverse.
//   - Tolerance-based equality built on vector.ApproxEqual.
//   - Affine helpers (Translation, Scaling, TransformPoint) honouring the
//     w == 1 point convention.
//
// Determinant expansion is O(n!) on purpose: inputs are 2×2..4×4 transform
// matrices and the direct formula keeps results exact for integer data.
//
// All errors are sentinels from errors.go; match them with errors.Is.
package matrix
