// SPDX-License-Identifier: MIT

package orient

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/katalvlaran/lvgeom/matrix"
	"github.com/katalvlaran/lvgeom/vector"
)

const opApproxEqual = "ApproxEqual"

// Quat represents a quaternion (x, y, z, w).
// Arithmetic is carried out by mgl64.Quat; the array form keeps the
// (x, y, z, w) order and lets Quat share vector.ApproxEqual.
type Quat [4]float64

// Identity is the rotation that leaves every vector unchanged.
var Identity = fromMgl(mgl64.QuatIdent())

func (q Quat) mgl() mgl64.Quat {
	return mgl64.Quat{W: q[3], V: mgl64.Vec3{q[0], q[1], q[2]}}
}

func fromMgl(m mgl64.Quat) Quat {
	return Quat{m.V[0], m.V[1], m.V[2], m.W}
}

// FromAxisAngle returns the unit quaternion rotating by angle radians about axis.
// A zero axis yields Identity.
func FromAxisAngle(axis vector.Vec3, angle float64) Quat {
	a := axis.Normalize()
	if a.IsZero() {
		return Identity
	}

	return fromMgl(mgl64.QuatRotate(angle, mgl64.Vec3(a)))
}

// Mul returns the Hamilton product q·r (apply r first, then q).
func (q Quat) Mul(r Quat) Quat {
	return fromMgl(q.mgl().Mul(r.mgl()))
}

// Conjugate returns (-x, -y, -z, w), the inverse of a unit quaternion.
func (q Quat) Conjugate() Quat {
	return fromMgl(q.mgl().Conjugate())
}

func (q Quat) Len() float64 {
	return q.mgl().Len()
}

// Normalize returns q/|q|, or Identity when |q| == 0.
func (q Quat) Normalize() Quat {
	return fromMgl(q.mgl().Normalize())
}

// Rotate applies the rotation q to v (q is assumed unit length).
func (q Quat) Rotate(v vector.Vec3) vector.Vec3 {
	return vector.Vec3(q.mgl().Rotate(mgl64.Vec3(v)))
}

// AxisAngle decomposes a unit quaternion into a rotation axis and an angle
// in [0, π]. Identity returns the X axis and 0.
func (q Quat) AxisAngle() (vector.Vec3, float64) {
	n := q.Normalize()
	if n[3] < 0 {
		n = Quat{-n[0], -n[1], -n[2], -n[3]} // same rotation, shorter arc
	}
	axis := vector.Vec3{n[0], n[1], n[2]}
	s := axis.Len()
	if s == 0 {
		return vector.Vec3{1, 0, 0}, 0
	}

	return axis.Scale(1 / s), 2 * math.Atan2(s, n[3])
}

// ApproxEqual reports whether q and r represent the same rotation within tol.
// q and -q describe the same rotation and compare equal.
func (q Quat) ApproxEqual(r Quat, tol float64) (bool, error) {
	if err := vector.ValidateTolerance(tol); err != nil {
		return false, fmt.Errorf("%s: %w", opApproxEqual, ErrNegativeTolerance)
	}
	ok, err := vector.ApproxEqual(q[:], r[:], tol)
	if err != nil {
		return false, fmt.Errorf("%s: %w", opApproxEqual, err)
	}
	if ok {
		return true, nil
	}
	neg := Quat{-r[0], -r[1], -r[2], -r[3]}
	if ok, err = vector.ApproxEqual(q[:], neg[:], tol); err != nil {
		return false, fmt.Errorf("%s: %w", opApproxEqual, err)
	}

	return ok, nil
}

// Matrix returns the 4×4 column-major rotation matrix of q.
func (q Quat) Matrix() *matrix.Dense {
	c := q.mgl().Mat4() // column-major [16]float64

	m, _ := matrix.NewFromColumns([][]float64{c[0:4], c[4:8], c[8:12], c[12:16]})

	return m
}
