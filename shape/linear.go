// SPDX-License-Identifier: MIT

package shape

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvgeom/vector"
)

// Linear is a line-like shape through p1 and p2. Its kind fixes the
// parametric domain of p1 + alpha·(p2 - p1) that belongs to the shape:
//
//	Line    alpha ∈ (-∞, +∞)
//	Ray     alpha ∈ [0, +∞)
//	Segment alpha ∈ [0, 1]
//
// The zero value is not a valid shape; use NewLine, NewRay or NewSegment.
type Linear struct {
	kind   Kind
	p1, p2 vector.Vec3
}

// NewLinear builds a Line, Ray or Segment through p1 and p2.
//
// Errors:
//   - ErrInvalidKind when kind is not linear.
//   - ErrDegenerateShape when p1 == p2 (exact) or a coordinate is not finite.
func NewLinear(kind Kind, p1, p2 vector.Vec3) (Linear, error) {
	if !kind.IsLinear() {
		return Linear{}, fmt.Errorf("%s: %s: %w", opNewLinear, kind, ErrInvalidKind)
	}
	if !isFinite3(p1) || !isFinite3(p2) {
		return Linear{}, fmt.Errorf("%s: non-finite point: %w", opNewLinear, ErrDegenerateShape)
	}
	if p1 == p2 {
		return Linear{}, fmt.Errorf("%s: %s p1 == p2 %v: %w", opNewLinear, kind, p1, ErrDegenerateShape)
	}

	return Linear{kind: kind, p1: p1, p2: p2}, nil
}

// NewLine returns the infinite line through p1 and p2.
func NewLine(p1, p2 vector.Vec3) (Linear, error) { return NewLinear(KindLine, p1, p2) }

// NewRay returns the ray starting at origin and passing through through.
func NewRay(origin, through vector.Vec3) (Linear, error) {
	return NewLinear(KindRay, origin, through)
}

// NewSegment returns the closed segment [p1, p2].
func NewSegment(p1, p2 vector.Vec3) (Linear, error) { return NewLinear(KindSegment, p1, p2) }

func (l Linear) Kind() Kind { return l.kind }

// P1 returns the first defining point (the origin of a ray).
func (l Linear) P1() vector.Vec4 { return l.p1.Point() }

// P2 returns the second defining point.
func (l Linear) P2() vector.Vec4 { return l.p2.Point() }

// WithP1 returns a copy with p1 replaced, re-validating distinctness.
func (l Linear) WithP1(p vector.Vec3) (Linear, error) { return NewLinear(l.kind, p, l.p2) }

// WithP2 returns a copy with p2 replaced, re-validating distinctness.
func (l Linear) WithP2(p vector.Vec3) (Linear, error) { return NewLinear(l.kind, l.p1, p) }

// Direction returns p2 - p1 (not normalized).
func (l Linear) Direction() vector.Vec3 { return l.p2.Sub(l.p1) }

// Length returns |p2 - p1|; for a Segment this is its length.
func (l Linear) Length() float64 { return l.Direction().Len() }

// ContainsProjection reports whether alpha lies in the kind's parametric domain.
func (l Linear) ContainsProjection(alpha float64) bool {
	switch l.kind {
	case KindRay:
		return alpha >= 0
	case KindSegment:
		return alpha >= 0 && alpha <= 1
	default:
		return true
	}
}

// clampProjection returns the nearest alpha inside the domain.
func (l Linear) clampProjection(alpha float64) float64 {
	switch l.kind {
	case KindRay:
		return math.Max(0, alpha)
	case KindSegment:
		return vector.Clamp(alpha, 0, 1)
	default:
		return alpha
	}
}

// bounds returns the finite ends of the domain.
func (l Linear) bounds() []float64 {
	switch l.kind {
	case KindRay:
		return []float64{0}
	case KindSegment:
		return []float64{0, 1}
	default:
		return nil
	}
}

// domain returns the domain as an interval with infinite ends where unbounded.
func (l Linear) domain() (lo, hi float64) {
	switch l.kind {
	case KindRay:
		return 0, math.Inf(1)
	case KindSegment:
		return 0, 1
	default:
		return math.Inf(-1), math.Inf(1)
	}
}

// At returns p1 + alpha·(p2 - p1) as a point, ignoring the domain.
func (l Linear) At(alpha float64) vector.Vec4 { return l.at(alpha).Point() }

func (l Linear) at(alpha float64) vector.Vec3 {
	return l.p1.Add(l.Direction().Scale(alpha))
}

// Project returns the alpha of the orthogonal projection of p onto the
// infinite line, whether or not it lies in the domain.
func (l Linear) Project(p vector.Vec4) float64 { return l.project(p.XYZ()) }

func (l Linear) project(p vector.Vec3) float64 {
	u := l.Direction()

	return p.Sub(l.p1).Dot(u) / u.LenSq()
}

// ClosestPoint returns the point of the shape nearest to p.
func (l Linear) ClosestPoint(p vector.Vec4) vector.Vec4 {
	return l.closestPoint(p.XYZ()).Point()
}

func (l Linear) closestPoint(p vector.Vec3) vector.Vec3 {
	return l.at(l.clampProjection(l.project(p)))
}

// DistanceToPoint returns the distance from p to the shape: the
// perpendicular distance |v|·sin θ when the projection is in the domain,
// otherwise the distance to the nearest valid endpoint.
func (l Linear) DistanceToPoint(p vector.Vec4) float64 {
	return l.distanceToPoint(p.XYZ())
}

func (l Linear) distanceToPoint(p vector.Vec3) float64 {
	alpha := l.project(p)
	if l.ContainsProjection(alpha) {
		return p.Sub(l.p1).Cross(l.Direction().Normalize()).Len()
	}

	return p.Distance(l.at(l.clampProjection(alpha)))
}

// ContainsPoint reports whether p is within tol of the shape.
func (l Linear) ContainsPoint(p vector.Vec4, tol float64) (bool, error) {
	return containsWithin(l, p, tol)
}

// DistanceTo returns Distance(l, other).
func (l Linear) DistanceTo(other Shape) (float64, error) { return Distance(l, other) }

// Intersection returns Intersect(l, other, tol).
func (l Linear) Intersection(other Shape, tol float64) (Intersection, bool, error) {
	return Intersect(l, other, tol)
}

// Intersects returns Intersects(l, other, tol).
func (l Linear) Intersects(other Shape, tol float64) (bool, error) {
	return Intersects(l, other, tol)
}

// ApproxEqual reports whether other is a Linear of the same kind covering
// the same points within tol:
//   - Segment: same endpoints in either order.
//   - Ray: same origin and same unit direction.
//   - Line: both defining points of other lie on l.
func (l Linear) ApproxEqual(other Shape, tol float64) (bool, error) {
	if err := validateTolerance(tol); err != nil {
		return false, fmt.Errorf("%s: %w", opApproxEqual, err)
	}
	o, ok := other.(Linear)
	if !ok || o.kind != l.kind {
		return false, nil
	}
	switch l.kind {
	case KindSegment:
		return (near(l.p1, o.p1, tol) && near(l.p2, o.p2, tol)) ||
			(near(l.p1, o.p2, tol) && near(l.p2, o.p1, tol)), nil
	case KindRay:
		return near(l.p1, o.p1, tol) && near(l.Direction().Normalize(), o.Direction().Normalize(), tol), nil
	default:
		return l.lineDistance(o.p1) <= tol && l.lineDistance(o.p2) <= tol, nil
	}
}

// lineDistance is the distance from p to the infinite line through l.
func (l Linear) lineDistance(p vector.Vec3) float64 {
	return p.Sub(l.p1).Cross(l.Direction().Normalize()).Len()
}

func near(a, b vector.Vec3, tol float64) bool {
	ok, _ := a.ApproxEqual(b, tol)

	return ok
}
