// SPDX-License-Identifier: MIT

package shape

import (
	"fmt"

	"github.com/katalvlaran/lvgeom/vector"
)

// Triangle is the closed planar region spanned by three points.
// The unit normal and the raw cross product (p2-p1)×(p3-p1) are derived at
// construction.
type Triangle struct {
	p1, p2, p3 vector.Vec3
	cross      vector.Vec3 // |cross| is twice the area
	normal     vector.Vec3 // cross normalized
}

// NewTriangle returns the triangle p1 p2 p3.
// Errors: ErrDegenerateShape when the points are collinear (exact) or not finite.
func NewTriangle(p1, p2, p3 vector.Vec3) (Triangle, error) {
	if !isFinite3(p1) || !isFinite3(p2) || !isFinite3(p3) {
		return Triangle{}, fmt.Errorf("%s: non-finite point: %w", opNewTriangle, ErrDegenerateShape)
	}
	n := p2.Sub(p1).Cross(p3.Sub(p1))
	if n.IsZero() {
		return Triangle{}, fmt.Errorf("%s: collinear points: %w", opNewTriangle, ErrDegenerateShape)
	}

	return Triangle{p1: p1, p2: p2, p3: p3, cross: n, normal: n.Normalize()}, nil
}

// NewTriangleFromEdges returns the triangle p, p+u, p+v.
func NewTriangleFromEdges(p, u, v vector.Vec3) (Triangle, error) {
	return NewTriangle(p, p.Add(u), p.Add(v))
}

func (t Triangle) Kind() Kind { return KindTriangle }

// Points returns the three vertices as points.
func (t Triangle) Points() [3]vector.Vec4 {
	return [3]vector.Vec4{t.p1.Point(), t.p2.Point(), t.p3.Point()}
}

// Normal returns the unit normal normalize((p2-p1)×(p3-p1)).
func (t Triangle) Normal() vector.Vec3 { return t.normal }

// Edges returns the edge vectors p2-p1 and p3-p1.
func (t Triangle) Edges() (u, v vector.Vec3) { return t.p2.Sub(t.p1), t.p3.Sub(t.p1) }

// Area returns |(p2-p1)×(p3-p1)| / 2.
func (t Triangle) Area() float64 { return t.cross.Len() / 2 }

// Plane returns the supporting plane.
func (t Triangle) Plane() Plane {
	return Plane{p: t.p1, n: t.normal, nHat: t.normal, d: -t.normal.Dot(t.p1)}
}

// Barycentric returns (w1, w2, w3) with w1+w2+w3 = 1 such that the
// projection of q onto the triangle's plane is w1·p1 + w2·p2 + w3·p3.
func (t Triangle) Barycentric(q vector.Vec4) (w1, w2, w3 float64) {
	return t.barycentric(q.XYZ())
}

func (t Triangle) barycentric(q vector.Vec3) (w1, w2, w3 float64) {
	u, v := t.Edges()
	w := q.Sub(t.p1)
	nn := t.cross.LenSq()
	w2 = w.Cross(v).Dot(t.cross) / nn
	w3 = u.Cross(w).Dot(t.cross) / nn

	return 1 - w2 - w3, w2, w3
}

// inside reports whether the projection of q onto the plane falls in the
// closed triangle.
func (t Triangle) inside(q vector.Vec3) bool {
	w1, w2, w3 := t.barycentric(q)

	return w1 >= 0 && w2 >= 0 && w3 >= 0
}

// sides returns the three edges as segments.
func (t Triangle) sides() [3]Linear {
	return [3]Linear{
		{kind: KindSegment, p1: t.p1, p2: t.p2},
		{kind: KindSegment, p1: t.p2, p2: t.p3},
		{kind: KindSegment, p1: t.p3, p2: t.p1},
	}
}

// ClosestPoint returns the point of the triangle nearest to q.
func (t Triangle) ClosestPoint(q vector.Vec4) vector.Vec4 {
	return t.closestPoint(q.XYZ()).Point()
}

func (t Triangle) closestPoint(q vector.Vec3) vector.Vec3 {
	if t.inside(q) {
		return t.Plane().project(q)
	}
	var (
		best  vector.Vec3
		bestD = -1.0
	)
	for _, s := range t.sides() {
		c := s.closestPoint(q)
		if d := c.Distance(q); bestD < 0 || d < bestD {
			best, bestD = c, d
		}
	}

	return best
}

// DistanceToPoint returns the distance from q to the nearest point of the triangle.
func (t Triangle) DistanceToPoint(q vector.Vec4) float64 {
	p := q.XYZ()

	return t.closestPoint(p).Distance(p)
}

// ContainsPoint reports whether q is within tol of the triangle.
func (t Triangle) ContainsPoint(q vector.Vec4, tol float64) (bool, error) {
	return containsWithin(t, q, tol)
}

// DistanceTo returns Distance(t, other).
func (t Triangle) DistanceTo(other Shape) (float64, error) { return Distance(t, other) }

// Intersection returns Intersect(t, other, tol).
func (t Triangle) Intersection(other Shape, tol float64) (Intersection, bool, error) {
	return Intersect(t, other, tol)
}

// Intersects returns Intersects(t, other, tol).
func (t Triangle) Intersects(other Shape, tol float64) (bool, error) {
	return Intersects(t, other, tol)
}

// ApproxEqual reports whether other is a triangle with the same vertex set
// within tol, in any order.
func (t Triangle) ApproxEqual(other Shape, tol float64) (bool, error) {
	if err := validateTolerance(tol); err != nil {
		return false, fmt.Errorf("%s: %w", opApproxEqual, err)
	}
	o, ok := other.(Triangle)
	if !ok {
		return false, nil
	}
	mine := [3]vector.Vec3{t.p1, t.p2, t.p3}
	theirs := [3]vector.Vec3{o.p1, o.p2, o.p3}
	for _, perm := range [6][3]int{{0, 1, 2}, {0, 2, 1}, {1, 0, 2}, {1, 2, 0}, {2, 0, 1}, {2, 1, 0}} {
		if near(mine[0], theirs[perm[0]], tol) && near(mine[1], theirs[perm[1]], tol) && near(mine[2], theirs[perm[2]], tol) {
			return true, nil
		}
	}

	return false, nil
}
