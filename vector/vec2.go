// SPDX-License-Identifier: MIT

package vector

import "math"

// Vec2 is a 2-component vector (value type).
type Vec2 [2]float64

func (a Vec2) Add(b Vec2) Vec2 { return Vec2{a[0] + b[0], a[1] + b[1]} }

func (a Vec2) Sub(b Vec2) Vec2 { return Vec2{a[0] - b[0], a[1] - b[1]} }

func (v Vec2) Scale(s float64) Vec2 { return Vec2{v[0] * s, v[1] * s} }

func (a Vec2) Dot(b Vec2) float64 { return a[0]*b[0] + a[1]*b[1] }

// Cross returns the z component of the 3D cross product of a and b.
func (a Vec2) Cross(b Vec2) float64 { return a[0]*b[1] - a[1]*b[0] }

func (v Vec2) Len() float64 { return math.Hypot(v[0], v[1]) }

// Normalize returns v/|v|, or the zero vector when |v| == 0.
func (v Vec2) Normalize() Vec2 {
	l := v.Len()
	if l == 0 {
		return Vec2{}
	}

	return v.Scale(1 / l)
}

func (a Vec2) Distance(b Vec2) float64 { return a.Sub(b).Len() }

func (a Vec2) Lerp(b Vec2, t float64) Vec2 { return a.Add(b.Sub(a).Scale(t)) }

// ApproxEqual reports whether a and b agree within tol per component.
func (a Vec2) ApproxEqual(b Vec2, tol float64) (bool, error) {
	return ApproxEqual(a[:], b[:], tol)
}
