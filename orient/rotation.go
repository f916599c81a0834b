// SPDX-License-Identifier: MIT

package orient

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvgeom/vector"
)

const (
	opRotationBetween = "RotationBetween"
	opOrientBasis     = "OrientBasis"
)

// Basis is a right-handed frame of three axes.
type Basis struct {
	X, Y, Z vector.Vec3
}

// StandardBasis is the orthonormal basis (x̂, ŷ, ẑ).
var StandardBasis = Basis{
	X: vector.Vec3{1, 0, 0},
	Y: vector.Vec3{0, 1, 0},
	Z: vector.Vec3{0, 0, 1},
}

// Rotate applies q to every axis of b.
func (b Basis) Rotate(q Quat) Basis {
	return Basis{X: q.Rotate(b.X), Y: q.Rotate(b.Y), Z: q.Rotate(b.Z)}
}

// RotationBetween returns the unit quaternion rotating û onto v̂.
//
// Implementation:
//   - Stage 1: normalize u and v; a zero input is ErrZeroVector.
//   - Stage 2: angle = acos(û·v̂) (clamped), axis = normalize(û×v̂).
//   - Stage 3: when û×v̂ is zero, parallel inputs give Identity and
//     anti-parallel inputs rotate by π about an axis orthogonal to û.
//
// Complexity:
//   - Time O(1), Space O(1).
func RotationBetween(u, v vector.Vec3) (Quat, error) {
	q, err := rotationBetween(u, v, vector.Vec3{})
	if err != nil {
		return Identity, fmt.Errorf("%s: %w", opRotationBetween, err)
	}

	return q, nil
}

// rotationBetween uses fallback as the π-rotation axis for anti-parallel
// inputs when it is non-zero and orthogonal to u.
func rotationBetween(u, v, fallback vector.Vec3) (Quat, error) {
	uHat, vHat := u.Normalize(), v.Normalize()
	if uHat.IsZero() || vHat.IsZero() {
		return Identity, ErrZeroVector
	}
	cos := vector.Clamp(uHat.Dot(vHat), -1, 1)
	axis := uHat.Cross(vHat)
	if axis.Len() > 0 {
		return FromAxisAngle(axis, math.Acos(cos)), nil
	}
	if cos > 0 {
		return Identity, nil
	}

	if f := fallback.Normalize(); !f.IsZero() && math.Abs(f.Dot(uHat)) < vector.DefaultEpsilon {
		return FromAxisAngle(f, math.Pi), nil
	}

	return FromAxisAngle(orthogonal(uHat), math.Pi), nil
}

// orthogonal returns a unit vector perpendicular to the unit vector u,
// crossing with the world axis least aligned with u.
func orthogonal(u vector.Vec3) vector.Vec3 {
	ax, ay, az := math.Abs(u[0]), math.Abs(u[1]), math.Abs(u[2])
	ref := vector.Vec3{1, 0, 0}
	switch {
	case ay <= ax && ay <= az:
		ref = vector.Vec3{0, 1, 0}
	case az <= ax && az <= ay:
		ref = vector.Vec3{0, 0, 1}
	}

	return u.Cross(ref).Normalize()
}

// OrientBasis returns the rotation carrying start onto end: first align the
// X axes, then rotate the already rotated start Y onto end Y.
// Without a start basis use StandardBasis.
//
// Errors:
//   - ErrZeroVector when any X or Y axis is zero.
func OrientBasis(start, end Basis) (Quat, error) {
	qx, err := rotationBetween(start.X, end.X, vector.Vec3{})
	if err != nil {
		return Identity, fmt.Errorf("%s: X: %w", opOrientBasis, err)
	}
	rotatedY := qx.Rotate(start.Y)
	qy, err := rotationBetween(rotatedY, end.Y, end.X)
	if err != nil {
		return Identity, fmt.Errorf("%s: Y: %w", opOrientBasis, err)
	}

	return qy.Mul(qx).Normalize(), nil
}

// Orient is OrientBasis from StandardBasis.
func Orient(end Basis) (Quat, error) {
	return OrientBasis(StandardBasis, end)
}
