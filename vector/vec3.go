// SPDX-License-Identifier: MIT

package vector

import "math"

// Vec3 is a 3-component free vector (value type).
type Vec3 [3]float64

// Zero3 is the zero Vec3.
var Zero3 = Vec3{}

// Add returns a + b.
func (a Vec3) Add(b Vec3) Vec3 {
	return Vec3{a[0] + b[0], a[1] + b[1], a[2] + b[2]}
}

// Sub returns a - b.
func (a Vec3) Sub(b Vec3) Vec3 {
	return Vec3{a[0] - b[0], a[1] - b[1], a[2] - b[2]}
}

// Scale returns v * s.
func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{v[0] * s, v[1] * s, v[2] * s}
}

// Neg returns -v.
func (v Vec3) Neg() Vec3 {
	return Vec3{-v[0], -v[1], -v[2]}
}

// Dot returns the scalar product a·b.
func (a Vec3) Dot(b Vec3) float64 {
	return a[0]*b[0] + a[1]*b[1] + a[2]*b[2]
}

// Cross returns the vector product a×b (right-handed).
func (a Vec3) Cross(b Vec3) Vec3 {
	return Vec3{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	}
}

// LenSq returns |v|².
func (v Vec3) LenSq() float64 {
	return v.Dot(v)
}

// Len returns the Euclidean length |v|.
func (v Vec3) Len() float64 {
	return math.Sqrt(v.LenSq())
}

// Normalize returns v/|v|, or the zero vector when |v| == 0.
func (v Vec3) Normalize() Vec3 {
	l := v.Len()
	if l == 0 {
		return Vec3{}
	}

	return v.Scale(1 / l)
}

// IsZero reports whether every component is exactly zero.
func (v Vec3) IsZero() bool {
	return v == Vec3{}
}

// Distance returns |a - b|.
func (a Vec3) Distance(b Vec3) float64 {
	return a.Sub(b).Len()
}

// Lerp linearly interpolates from a (t=0) to b (t=1).
func (a Vec3) Lerp(b Vec3, t float64) Vec3 {
	return a.Add(b.Sub(a).Scale(t))
}

// ScalarProjection returns normalize(a)·b, the signed length of b along a.
func (a Vec3) ScalarProjection(b Vec3) float64 {
	return a.Normalize().Dot(b)
}

// AngleTo returns the unsigned angle between a and b in radians.
// The cosine is clamped to [-1, 1] so rounding never yields NaN;
// a zero operand still yields NaN because the angle is undefined.
func (a Vec3) AngleTo(b Vec3) float64 {
	denom := a.Len() * b.Len()
	if denom == 0 {
		return math.NaN()
	}

	return math.Acos(Clamp(a.Dot(b)/denom, -1, 1))
}

// Point lifts v into an affine point (w = 1).
func (v Vec3) Point() Vec4 {
	return Vec4{v[0], v[1], v[2], 1}
}

// Direction lifts v into a free homogeneous vector (w = 0).
func (v Vec3) Direction() Vec4 {
	return Vec4{v[0], v[1], v[2], 0}
}

// ApproxEqual reports whether a and b agree within tol per component.
func (a Vec3) ApproxEqual(b Vec3, tol float64) (bool, error) {
	return ApproxEqual(a[:], b[:], tol)
}
