// SPDX-License-Identifier: MIT

package shape

import (
	"math"

	"github.com/katalvlaran/lvgeom/vector"
)

// planeLinearNearest returns the point of l nearest the plane and its
// distance: the crossing point (distance 0) when it lies in l's domain,
// any point when l is parallel, otherwise the nearer domain end.
func planeLinearNearest(pl Plane, l Linear) (vector.Vec3, float64) {
	alpha, crosses := pl.crossing(l)
	if !crosses {
		return l.p1, math.Abs(pl.signed(l.p1))
	}
	if l.ContainsProjection(alpha) {
		return l.at(alpha), 0
	}
	end := l.at(l.clampProjection(alpha))

	return end, math.Abs(pl.signed(end))
}

// planeLinearDistance is Distance for a plane and a linear shape.
func planeLinearDistance(pl Plane, l Linear) float64 {
	_, d := planeLinearNearest(pl, l)

	return d
}

// planeLinearIntersect is Intersect for a plane and a linear shape.
//
// Implementation:
//   - Stage 1: distance > tol → none.
//   - Stage 2: l parallel to the plane (and within tol of it) → l itself.
//   - Stage 3: crossing in the domain → the crossing point; otherwise the
//     domain end that lies within tol of the plane.
func planeLinearIntersect(pl Plane, l Linear, tol float64) (Intersection, bool) {
	p, d := planeLinearNearest(pl, l)
	if d > tol {
		return Intersection{}, false
	}
	if pl.IsParallelTo(l) {
		return shapeResult(l), true
	}

	return pointResult(p), true
}

// planeDistance is Distance for two planes: 0 unless they are parallel.
func planeDistance(a, b Plane) float64 {
	if !parallel(a.nHat, b.nHat) {
		return 0
	}

	return math.Abs(a.signed(b.p))
}

// planeIntersect is Intersect for two planes: the common line, or a itself
// when the planes coincide within tol.
//
// The line passes through
//
//	x₀ = (h₁ (n̂₂ × w) + h₂ (w × n̂₁)) / |w|²,  w = n̂₁ × n̂₂, hᵢ = -dᵢ
//
// which satisfies n̂₁·x₀ = h₁ and n̂₂·x₀ = h₂.
func planeIntersect(a, b Plane, tol float64) (Intersection, bool) {
	if planeDistance(a, b) > tol {
		return Intersection{}, false
	}
	if parallel(a.nHat, b.nHat) {
		return shapeResult(a), true
	}

	w := a.nHat.Cross(b.nHat)
	h1, h2 := -a.d, -b.d
	x0 := b.nHat.Cross(w).Scale(h1).Add(w.Cross(a.nHat).Scale(h2)).Scale(1 / w.LenSq())
	line, err := NewLine(x0, x0.Add(w))
	if err != nil {
		return Intersection{}, false
	}

	return shapeResult(line), true
}
