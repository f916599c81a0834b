// SPDX-License-Identifier: MIT

package shape

import (
	"fmt"

	"github.com/katalvlaran/lvgeom/matrix"
	"github.com/katalvlaran/lvgeom/vector"
)

// Transform returns s mapped through the 4×4 affine matrix m.
// Points go through matrix.TransformPoint; a plane normal goes through the
// inverse transpose of m so it stays perpendicular to the mapped plane.
//
// Errors:
//   - ErrNilShape; matrix errors (ErrDimensionMismatch, ErrSingular);
//     ErrDegenerateShape when m collapses the shape.
func Transform(s Shape, m matrix.Matrix) (Shape, error) {
	if s == nil {
		return nil, fmt.Errorf("%s: %w", opTransform, ErrNilShape)
	}
	switch s := s.(type) {
	case Linear:
		pts, err := transformPoints(m, s.p1, s.p2)
		if err != nil {
			return nil, err
		}
		return wrapTransform(NewLinear(s.kind, pts[0], pts[1]))
	case Plane:
		pts, err := transformPoints(m, s.p)
		if err != nil {
			return nil, err
		}
		inv, err := matrix.Inverse(m)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", opTransform, err)
		}
		invT, err := matrix.Transpose(inv)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", opTransform, err)
		}
		n, err := matrix.TransformDirection(invT, s.n)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", opTransform, err)
		}
		return wrapTransform(NewPlane(pts[0], n))
	case Triangle:
		pts, err := transformPoints(m, s.p1, s.p2, s.p3)
		if err != nil {
			return nil, err
		}
		return wrapTransform(NewTriangle(pts[0], pts[1], pts[2]))
	}

	return nil, fmt.Errorf("%s: %s: %w", opTransform, s.Kind(), ErrInvalidKind)
}

func transformPoints(m matrix.Matrix, ps ...vector.Vec3) ([]vector.Vec3, error) {
	out := make([]vector.Vec3, len(ps))
	for i, p := range ps {
		q, err := matrix.TransformPoint(m, p.Point())
		if err != nil {
			return nil, fmt.Errorf("%s: %w", opTransform, err)
		}
		out[i] = q.XYZ()
	}

	return out, nil
}

func wrapTransform(s Shape, err error) (Shape, error) {
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opTransform, err)
	}

	return s, nil
}
