// SPDX-License-Identifier: MIT

package shape

import (
	"math"

	"github.com/katalvlaran/lvgeom/vector"
)

// triangleLinearClosest returns the mutually closest points pt on t and pl on l.
//
// Implementation:
//   - Stage 1: l crosses the plane inside both domains → the crossing point.
//   - Stage 2: otherwise the minimum involves the triangle boundary or a
//     finite end of l: each side against l, each end of l against t.
func triangleLinearClosest(t Triangle, l Linear) (pt, pl vector.Vec3) {
	if alpha, crosses := t.Plane().crossing(l); crosses && l.ContainsProjection(alpha) {
		if q := l.at(alpha); t.inside(q) {
			return q, q
		}
	}

	best := math.Inf(1)
	consider := func(p, q vector.Vec3) {
		if d := p.Distance(q); d < best {
			best, pt, pl = d, p, q
		}
	}
	for _, s := range t.sides() {
		consider(closestPoints(s, l))
	}
	for _, b := range l.bounds() {
		q := l.at(b)
		consider(t.closestPoint(q), q)
	}

	return pt, pl
}

// triangleLinearDistance is Distance for a triangle and a linear shape.
func triangleLinearDistance(t Triangle, l Linear) float64 {
	pt, pl := triangleLinearClosest(t, l)

	return pt.Distance(pl)
}

// triangleLinearIntersect is Intersect for a triangle and a linear shape.
//
// Implementation:
//   - Stage 1: closest pair farther apart than tol → none.
//   - Stage 2: l lies in the plane within tol → clip l to the triangle
//     (Cyrus–Beck against the three inward edge normals); the result is a
//     segment or, when the clip collapses, a point.
//   - Stage 3: otherwise the midpoint of the closest pair (the crossing
//     point itself when l pierces the triangle).
func triangleLinearIntersect(t Triangle, l Linear, tol float64) (Intersection, bool) {
	pt, pl := triangleLinearClosest(t, l)
	if pt.Distance(pl) > tol {
		return Intersection{}, false
	}
	plane := t.Plane()
	if plane.IsParallelTo(l) && math.Abs(plane.signed(l.p1)) <= tol {
		if x, ok := clipToTriangle(t, l); ok {
			return x, true
		}
	}

	return pointResult(midpoint(pt, pl)), true
}

// clipToTriangle clips the coplanar shape l to the prism over t.
// ok is false when the clipped interval is empty or unbounded.
func clipToTriangle(t Triangle, l Linear) (Intersection, bool) {
	lo, hi := l.domain()
	u := l.Direction()
	starts := [3]vector.Vec3{t.p1, t.p2, t.p3}
	for i, s := range t.sides() {
		// normal × edge points inward for every edge of t.
		m := t.normal.Cross(s.Direction())
		num := m.Dot(l.p1.Sub(starts[i]))
		den := m.Dot(u)
		if math.Abs(den) <= parallelEpsilon*m.Len()*u.Len() {
			if num < 0 {
				return Intersection{}, false
			}
			continue
		}
		alpha := -num / den
		if den > 0 {
			lo = math.Max(lo, alpha)
		} else {
			hi = math.Min(hi, alpha)
		}
	}
	if math.IsInf(lo, 0) || math.IsInf(hi, 0) || hi < lo {
		return Intersection{}, false
	}
	if hi == lo {
		return pointResult(l.at(lo)), true
	}
	seg, err := NewSegment(l.at(lo), l.at(hi))
	if err != nil {
		return pointResult(l.at(lo)), true
	}

	return shapeResult(seg), true
}

// signedVertices returns the signed plane distances of t's vertices.
func signedVertices(t Triangle, pl Plane) [3]float64 {
	return [3]float64{pl.signed(t.p1), pl.signed(t.p2), pl.signed(t.p3)}
}

// trianglePlaneDistance is Distance for a triangle and a plane: 0 when the
// vertices straddle or touch the plane, else the nearest vertex distance.
func trianglePlaneDistance(t Triangle, pl Plane) float64 {
	s := signedVertices(t, pl)
	lo := math.Min(s[0], math.Min(s[1], s[2]))
	hi := math.Max(s[0], math.Max(s[1], s[2]))
	if lo <= 0 && hi >= 0 {
		return 0
	}

	return math.Min(math.Abs(lo), math.Abs(hi))
}

// trianglePlaneIntersect is Intersect for a triangle and a plane.
//
// Implementation:
//   - Stage 1: distance > tol → none.
//   - Stage 2: every vertex within tol → the triangle itself.
//   - Stage 3: collect vertices within tol and strict edge crossings;
//     one distinct point → point, two → segment.
func trianglePlaneIntersect(t Triangle, pl Plane, tol float64) (Intersection, bool) {
	if trianglePlaneDistance(t, pl) > tol {
		return Intersection{}, false
	}
	s := signedVertices(t, pl)
	if math.Abs(s[0]) <= tol && math.Abs(s[1]) <= tol && math.Abs(s[2]) <= tol {
		return shapeResult(t), true
	}

	v := [3]vector.Vec3{t.p1, t.p2, t.p3}
	var pts []vector.Vec3
	add := func(p vector.Vec3) {
		for _, q := range pts {
			if near(p, q, tol) {
				return
			}
		}
		pts = append(pts, p)
	}
	for i := range v {
		if math.Abs(s[i]) <= tol {
			add(v[i])
		}
	}
	for i := range v {
		j := (i + 1) % 3
		if math.Abs(s[i]) > tol && math.Abs(s[j]) > tol && (s[i] < 0) != (s[j] < 0) {
			add(v[i].Lerp(v[j], s[i]/(s[i]-s[j])))
		}
	}

	switch len(pts) {
	case 0:
		// Unreachable when distance ≤ tol; report the nearest vertex.
		best := 0
		for i := range s {
			if math.Abs(s[i]) < math.Abs(s[best]) {
				best = i
			}
		}
		return pointResult(v[best]), true
	case 1:
		return pointResult(pts[0]), true
	default:
		seg, err := NewSegment(pts[0], pts[1])
		if err != nil {
			return pointResult(pts[0]), true
		}
		return shapeResult(seg), true
	}
}
