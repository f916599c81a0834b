// SPDX-License-Identifier: MIT

package vector

import "math"

// Vec4 is a homogeneous 4-component vector (x, y, z, w).
// Affine points carry w == 1, free directions w == 0.
type Vec4 [4]float64

// Point returns the affine point (x, y, z, 1).
func Point(x, y, z float64) Vec4 {
	return Vec4{x, y, z, 1}
}

// Direction returns the free vector (x, y, z, 0).
func Direction(x, y, z float64) Vec4 {
	return Vec4{x, y, z, 0}
}

// XYZ drops the homogeneous coordinate.
func (v Vec4) XYZ() Vec3 {
	return Vec3{v[0], v[1], v[2]}
}

// W returns the homogeneous coordinate.
func (v Vec4) W() float64 { return v[3] }

// IsPoint reports whether v is an affine point (w exactly 1).
func (v Vec4) IsPoint() bool { return v[3] == 1 }

// Add returns a + b component-wise (including w).
func (a Vec4) Add(b Vec4) Vec4 {
	return Vec4{a[0] + b[0], a[1] + b[1], a[2] + b[2], a[3] + b[3]}
}

// Sub returns a - b component-wise (point - point yields a direction).
func (a Vec4) Sub(b Vec4) Vec4 {
	return Vec4{a[0] - b[0], a[1] - b[1], a[2] - b[2], a[3] - b[3]}
}

func (v Vec4) Scale(s float64) Vec4 {
	return Vec4{v[0] * s, v[1] * s, v[2] * s, v[3] * s}
}

func (a Vec4) Dot(b Vec4) float64 {
	return a[0]*b[0] + a[1]*b[1] + a[2]*b[2] + a[3]*b[3]
}

func (v Vec4) Len() float64 {
	return math.Sqrt(v.Dot(v))
}

// Normalize returns v/|v|, or the zero vector when |v| == 0.
func (v Vec4) Normalize() Vec4 {
	l := v.Len()
	if l == 0 {
		return Vec4{}
	}

	return v.Scale(1 / l)
}

// Distance returns the Euclidean distance between the xyz parts of a and b.
func (a Vec4) Distance(b Vec4) float64 {
	return a.XYZ().Distance(b.XYZ())
}

// Lerp interpolates all four components; two points stay a point.
func (a Vec4) Lerp(b Vec4, t float64) Vec4 {
	return a.Add(b.Sub(a).Scale(t))
}

// ApproxEqual reports whether a and b agree within tol per component.
func (a Vec4) ApproxEqual(b Vec4, tol float64) (bool, error) {
	return ApproxEqual(a[:], b[:], tol)
}
