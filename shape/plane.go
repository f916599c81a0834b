// SPDX-License-Identifier: MIT

package shape

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvgeom/vector"
)

// Plane is the infinite plane through p with normal n.
//
// d is derived state: d = -n̂·p with n̂ the unit normal, so that
// n̂·q + d is the signed distance of q. It is computed in NewPlane and never
// set independently; WithPoint and WithNormal rebuild the value.
type Plane struct {
	p    vector.Vec3
	n    vector.Vec3 // as given, never zero
	nHat vector.Vec3
	d    float64
}

// NewPlane returns the plane through p with normal n.
// Errors: ErrDegenerateShape when n is the zero vector or a coordinate is not finite.
func NewPlane(p, n vector.Vec3) (Plane, error) {
	if !isFinite3(p) || !isFinite3(n) {
		return Plane{}, fmt.Errorf("%s: non-finite input: %w", opNewPlane, ErrDegenerateShape)
	}
	if n.IsZero() {
		return Plane{}, fmt.Errorf("%s: zero normal: %w", opNewPlane, ErrDegenerateShape)
	}
	nHat := n.Normalize()

	return Plane{p: p, n: n, nHat: nHat, d: -nHat.Dot(p)}, nil
}

// NewPlaneFromPoints returns the plane through a, b, c with normal (b-a)×(c-a).
// Errors: ErrDegenerateShape when the points are collinear.
func NewPlaneFromPoints(a, b, c vector.Vec3) (Plane, error) {
	return NewPlane(a, b.Sub(a).Cross(c.Sub(a)))
}

func (pl Plane) Kind() Kind { return KindPlane }

// Point returns the defining point.
func (pl Plane) Point() vector.Vec4 { return pl.p.Point() }

// Normal returns the normal as given at construction.
func (pl Plane) Normal() vector.Vec3 { return pl.n }

// UnitNormal returns n̂.
func (pl Plane) UnitNormal() vector.Vec3 { return pl.nHat }

// D returns the plane constant: q is on the plane iff n̂·q + D ≈ 0.
func (pl Plane) D() float64 { return pl.d }

// WithPoint returns the plane through p with the same normal.
func (pl Plane) WithPoint(p vector.Vec3) (Plane, error) { return NewPlane(p, pl.n) }

// WithNormal returns the plane through the same point with normal n.
func (pl Plane) WithNormal(n vector.Vec3) (Plane, error) { return NewPlane(pl.p, n) }

// SignedDistance returns n̂·q + d: positive on the side n points to.
func (pl Plane) SignedDistance(q vector.Vec4) float64 { return pl.signed(q.XYZ()) }

func (pl Plane) signed(q vector.Vec3) float64 { return pl.nHat.Dot(q) + pl.d }

// DistanceToPoint returns |q - p|·|cos∠(q - p, n)|, the length of the
// projection of the point-to-plane vector onto n̂.
func (pl Plane) DistanceToPoint(q vector.Vec4) float64 {
	return math.Abs(pl.signed(q.XYZ()))
}

// ContainsPoint reports whether |n̂·q + d| ≤ tol.
func (pl Plane) ContainsPoint(q vector.Vec4, tol float64) (bool, error) {
	return containsWithin(pl, q, tol)
}

// Project returns the orthogonal projection of q onto the plane.
func (pl Plane) Project(q vector.Vec4) vector.Vec4 { return pl.project(q.XYZ()).Point() }

func (pl Plane) project(q vector.Vec3) vector.Vec3 {
	return q.Sub(pl.nHat.Scale(pl.signed(q)))
}

// IsParallelTo reports whether l runs parallel to the plane (n̂·û ≈ 0).
// The same test selects the parallel branch of Distance and Intersect.
func (pl Plane) IsParallelTo(l Linear) bool {
	_, crosses := pl.crossing(l)

	return !crosses
}

// crossing returns the alpha where l's infinite line meets the plane:
// alpha = n̂·(p - l.p1) / n̂·u. crosses is false when l is parallel.
func (pl Plane) crossing(l Linear) (alpha float64, crosses bool) {
	u := l.Direction()
	if math.Abs(pl.nHat.Dot(u.Normalize())) <= parallelEpsilon {
		return 0, false
	}

	return pl.nHat.Dot(pl.p.Sub(l.p1)) / pl.nHat.Dot(u), true
}

// DistanceTo returns Distance(pl, other).
func (pl Plane) DistanceTo(other Shape) (float64, error) { return Distance(pl, other) }

// Intersection returns Intersect(pl, other, tol).
func (pl Plane) Intersection(other Shape, tol float64) (Intersection, bool, error) {
	return Intersect(pl, other, tol)
}

// Intersects returns Intersects(pl, other, tol).
func (pl Plane) Intersects(other Shape, tol float64) (bool, error) {
	return Intersects(pl, other, tol)
}

// ApproxEqual reports whether other is a plane with a parallel normal
// (either orientation) whose point lies on pl, both within tol.
func (pl Plane) ApproxEqual(other Shape, tol float64) (bool, error) {
	if err := validateTolerance(tol); err != nil {
		return false, fmt.Errorf("%s: %w", opApproxEqual, err)
	}
	o, ok := other.(Plane)
	if !ok {
		return false, nil
	}

	return pl.nHat.Cross(o.nHat).Len() <= tol && math.Abs(pl.signed(o.p)) <= tol, nil
}
