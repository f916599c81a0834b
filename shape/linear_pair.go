// SPDX-License-Identifier: MIT

package shape

import (
	"math"

	"github.com/katalvlaran/lvgeom/vector"
)

// skewCoefficients solves for the parameters of the mutually closest points
// of the infinite lines through a and b:
//
//	alpha = (û·z - (û·v̂)(v̂·z)) / (1 - (û·v̂)²) / |u|
//	beta  = ((û·v̂)(û·z) - v̂·z) / (1 - (û·v̂)²) / |v|
//
// with z = b.p1 - a.p1. 1 - (û·v̂)² is evaluated as |û×v̂|², which is the
// same quantity without cancellation. Undefined for parallel lines; callers
// branch on parallel first.
func skewCoefficients(a, b Linear) (alpha, beta float64) {
	u, v := a.Direction(), b.Direction()
	uHat, vHat := u.Normalize(), v.Normalize()
	z := b.p1.Sub(a.p1)

	dotUV := uHat.Dot(vHat)
	dotUZ := uHat.Dot(z)
	dotVZ := vHat.Dot(z)
	denom := uHat.Cross(vHat).LenSq()

	alpha = (dotUZ - dotUV*dotVZ) / denom / u.Len()
	beta = (dotUV*dotUZ - dotVZ) / denom / v.Len()

	return alpha, beta
}

// closestPoints returns the mutually closest points pa on a and pb on b.
//
// Implementation:
//   - Stage 1: for non-parallel shapes solve the skew coefficients; when both
//     lie in their domains the projected points are the answer.
//   - Stage 2: two parallel Lines: any point of b and its foot on a.
//   - Stage 3: otherwise the minimum lies on a domain bound of one shape:
//     try each finite end of a against b and each finite end of b against a.
//
// Complexity:
//   - Time O(1), Space O(1).
func closestPoints(a, b Linear) (pa, pb vector.Vec3) {
	isParallel := parallel(a.Direction().Normalize(), b.Direction().Normalize())
	if !isParallel {
		alpha, beta := skewCoefficients(a, b)
		if a.ContainsProjection(alpha) && b.ContainsProjection(beta) {
			return a.at(alpha), b.at(beta)
		}
	} else if a.kind == KindLine && b.kind == KindLine {
		return a.closestPoint(b.p1), b.p1
	}

	best := math.Inf(1)
	consider := func(p, q vector.Vec3) {
		if d := p.Distance(q); d < best {
			best, pa, pb = d, p, q
		}
	}
	for _, t := range a.bounds() {
		p := a.at(t)
		consider(p, b.closestPoint(p))
	}
	for _, t := range b.bounds() {
		q := b.at(t)
		consider(a.closestPoint(q), q)
	}

	return pa, pb
}

// linearDistance is Distance for two linear shapes.
func linearDistance(a, b Linear) float64 {
	pa, pb := closestPoints(a, b)

	return pa.Distance(pb)
}

// collinear reports whether a and b lie on one line within tol. Parallelism
// is an angular test (parallelEpsilon) independent of tol; tol bounds only
// the offset of b.p1 from a's line.
func collinear(a, b Linear, tol float64) bool {
	if !parallel(a.Direction().Normalize(), b.Direction().Normalize()) {
		return false
	}

	return a.lineDistance(b.p1) <= tol
}

// linearIntersect is Intersect for two linear shapes.
//
// Implementation:
//   - Stage 1: closest pair farther apart than tol → none.
//   - Stage 2: parallel and within tol of each other → overlap by variant:
//     a Line absorbs the other shape; otherwise intersect the parametric
//     intervals on a's axis and return the overlapping ray or segment.
//   - Stage 3: otherwise (skew, or collinear but only touching) → the
//     midpoint of the closest pair.
func linearIntersect(a, b Linear, tol float64) (Intersection, bool) {
	pa, pb := closestPoints(a, b)
	if pa.Distance(pb) > tol {
		return Intersection{}, false
	}
	if collinear(a, b, tol) {
		if x, ok := collinearOverlap(a, b); ok {
			return x, true
		}
	}

	return pointResult(midpoint(pa, pb)), true
}

// collinearOverlap characterises the overlap of two collinear shapes.
// ok is false when the overlap has no extent (touching ends), letting the
// caller fall back to a point.
func collinearOverlap(a, b Linear) (Intersection, bool) {
	if a.kind == KindLine {
		return shapeResult(b), true
	}
	if b.kind == KindLine {
		return shapeResult(a), true
	}

	lo, hi := a.domain()
	t1, t2 := a.project(b.p1), a.project(b.p2)
	var blo, bhi float64
	switch {
	case b.kind == KindSegment:
		blo, bhi = math.Min(t1, t2), math.Max(t1, t2)
	case t2 >= t1: // ray running along a
		blo, bhi = t1, math.Inf(1)
	default: // ray running against a
		blo, bhi = math.Inf(-1), t1
	}
	lo, hi = math.Max(lo, blo), math.Min(hi, bhi)
	if !(hi > lo) {
		return Intersection{}, false
	}

	if math.IsInf(hi, 1) {
		r, err := NewRay(a.at(lo), a.at(lo+1))
		if err != nil {
			return Intersection{}, false
		}

		return shapeResult(r), true
	}
	s, err := NewSegment(a.at(lo), a.at(hi))
	if err != nil {
		return Intersection{}, false
	}

	return shapeResult(s), true
}
