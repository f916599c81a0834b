// SPDX-License-Identifier: MIT

// Package orient builds rotations that carry one direction or basis onto another.
//
// Quaternions are stored as Quat{x, y, z, w}; unit quaternions represent
// rotations and compose right-to-left like matrices: (b.Mul(a)).Rotate(v)
// applies a first, then b. The arithmetic is delegated to mgl64.Quat.
//
// Anti-parallel inputs have no unique rotation axis. RotationBetween then
// rotates by π about an axis orthogonal to the source vector, and OrientBasis
// rotates about the target X axis so the already aligned X stays put.
package orient
