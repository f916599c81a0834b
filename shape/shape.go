// SPDX-License-Identifier: MIT

package shape

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvgeom/vector"
)

// parallelEpsilon is the |sin θ| below which two unit directions (or a
// direction and a plane) are treated as parallel. It selects an algorithm
// branch only; tolerance-driven decisions use the caller's tol.
const parallelEpsilon = 1e-12

// Operation tags for error wrapping.
const (
	opDistance    = "Distance"
	opIntersect   = "Intersect"
	opContains    = "ContainsPoint"
	opApproxEqual = "ApproxEqual"
	opNewLinear   = "NewLinear"
	opNewPlane    = "NewPlane"
	opNewTriangle = "NewTriangle"
	opTransform   = "Transform"
)

// Shape is the capability contract every concrete shape implements.
type Shape interface {
	// Kind returns the variant tag.
	Kind() Kind

	// ContainsPoint reports whether p lies on the shape within tol.
	ContainsPoint(p vector.Vec4, tol float64) (bool, error)

	// DistanceToPoint returns the Euclidean distance from p to the shape.
	DistanceToPoint(p vector.Vec4) float64

	// DistanceTo returns the minimum distance to other.
	DistanceTo(other Shape) (float64, error)

	// Intersection returns the overlap with other within tol; ok is false
	// when the shapes do not meet.
	Intersection(other Shape, tol float64) (x Intersection, ok bool, err error)

	// Intersects reports whether Intersection would succeed.
	Intersects(other Shape, tol float64) (bool, error)

	// ApproxEqual reports whether other describes the same point set within tol.
	ApproxEqual(other Shape, tol float64) (bool, error)
}

// Compile-time conformance.
var (
	_ Shape = Linear{}
	_ Shape = Plane{}
	_ Shape = Triangle{}
)

// Intersection is the result of a successful Intersect.
// A point result has Shape == nil; a collinear/coplanar overlap carries the
// overlapping shape (a clone of an operand, or a new ray/segment/line).
type Intersection struct {
	Point vector.Vec4
	Shape Shape
}

// IsPoint reports whether the intersection is a single point.
func (x Intersection) IsPoint() bool { return x.Shape == nil }

func pointResult(p vector.Vec3) Intersection {
	return Intersection{Point: p.Point()}
}

func shapeResult(s Shape) Intersection {
	return Intersection{Shape: s}
}

// Distance returns the minimum Euclidean distance between a and b.
//
// Supported pairs (either order): Linear×Linear, Plane×Linear, Plane×Plane,
// Triangle×Linear, Triangle×Plane.
//
// Errors:
//   - ErrNilShape, ErrDegenerateShape, ErrUnsupportedShapePair.
func Distance(a, b Shape) (float64, error) {
	if a == nil || b == nil {
		return 0, fmt.Errorf("%s: %w", opDistance, ErrNilShape)
	}
	if err := validShapes(opDistance, a, b); err != nil {
		return 0, err
	}
	switch a := a.(type) {
	case Linear:
		switch b := b.(type) {
		case Linear:
			return linearDistance(a, b), nil
		case Plane:
			return planeLinearDistance(b, a), nil
		case Triangle:
			return triangleLinearDistance(b, a), nil
		}
	case Plane:
		switch b := b.(type) {
		case Linear:
			return planeLinearDistance(a, b), nil
		case Plane:
			return planeDistance(a, b), nil
		case Triangle:
			return trianglePlaneDistance(b, a), nil
		}
	case Triangle:
		switch b := b.(type) {
		case Linear:
			return triangleLinearDistance(a, b), nil
		case Plane:
			return trianglePlaneDistance(a, b), nil
		}
	}

	return 0, unsupported(opDistance, a, b)
}

// Intersect returns the intersection of a and b within tol.
//
// Implementation:
//   - Stage 1: validate tol and operands.
//   - Stage 2: Distance(a, b) > tol → no intersection.
//   - Stage 3: characterise the overlap per kind pair (point or sub-shape).
//
// Errors:
//   - ErrNegativeTolerance, ErrNilShape, ErrDegenerateShape,
//     ErrUnsupportedShapePair.
func Intersect(a, b Shape, tol float64) (Intersection, bool, error) {
	if err := validateTolerance(tol); err != nil {
		return Intersection{}, false, fmt.Errorf("%s: %w", opIntersect, err)
	}
	if a == nil || b == nil {
		return Intersection{}, false, fmt.Errorf("%s: %w", opIntersect, ErrNilShape)
	}
	if err := validShapes(opIntersect, a, b); err != nil {
		return Intersection{}, false, err
	}
	switch a := a.(type) {
	case Linear:
		switch b := b.(type) {
		case Linear:
			x, ok := linearIntersect(a, b, tol)
			return x, ok, nil
		case Plane:
			x, ok := planeLinearIntersect(b, a, tol)
			return x, ok, nil
		case Triangle:
			x, ok := triangleLinearIntersect(b, a, tol)
			return x, ok, nil
		}
	case Plane:
		switch b := b.(type) {
		case Linear:
			x, ok := planeLinearIntersect(a, b, tol)
			return x, ok, nil
		case Plane:
			x, ok := planeIntersect(a, b, tol)
			return x, ok, nil
		case Triangle:
			x, ok := trianglePlaneIntersect(b, a, tol)
			return x, ok, nil
		}
	case Triangle:
		switch b := b.(type) {
		case Linear:
			x, ok := triangleLinearIntersect(a, b, tol)
			return x, ok, nil
		case Plane:
			x, ok := trianglePlaneIntersect(a, b, tol)
			return x, ok, nil
		}
	}

	return Intersection{}, false, unsupported(opIntersect, a, b)
}

// Intersects is Intersect without the result: exactly ok of Intersect.
func Intersects(a, b Shape, tol float64) (bool, error) {
	_, ok, err := Intersect(a, b, tol)

	return ok, err
}

// validShape rejects values that bypassed the constructors, such as the
// zero Linear, Plane or Triangle.
func validShape(s Shape) bool {
	switch s := s.(type) {
	case Linear:
		return s.kind.IsLinear() && s.p1 != s.p2
	case Plane:
		return !s.nHat.IsZero()
	case Triangle:
		return !s.cross.IsZero()
	}

	return true
}

func validShapes(op string, shapes ...Shape) error {
	for _, s := range shapes {
		if !validShape(s) {
			return fmt.Errorf("%s: zero or unconstructed %T: %w", op, s, ErrDegenerateShape)
		}
	}

	return nil
}

func unsupported(op string, a, b Shape) error {
	return fmt.Errorf("%s: %s×%s: %w", op, a.Kind(), b.Kind(), ErrUnsupportedShapePair)
}

func validateTolerance(tol float64) error {
	if tol < 0 || math.IsNaN(tol) {
		return ErrNegativeTolerance
	}

	return nil
}

// containsWithin is the shared ContainsPoint body: distance ≤ tol.
func containsWithin(s Shape, p vector.Vec4, tol float64) (bool, error) {
	if err := validateTolerance(tol); err != nil {
		return false, fmt.Errorf("%s: %w", opContains, err)
	}

	return s.DistanceToPoint(p) <= tol, nil
}

func isFinite3(v vector.Vec3) bool {
	for _, c := range v {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return false
		}
	}

	return true
}

// parallel reports whether unit directions u and v are parallel or anti-parallel.
func parallel(uHat, vHat vector.Vec3) bool {
	return uHat.Cross(vHat).Len() <= parallelEpsilon
}

// midpoint returns the midpoint of a closest pair, the point reported for
// tolerance-level contacts. It is within half the pair distance of both shapes.
func midpoint(p, q vector.Vec3) vector.Vec3 {
	return p.Lerp(q, 0.5)
}
