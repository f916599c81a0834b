// SPDX-License-Identifier: MIT
package shape_test

import (
	"testing"

	"github.com/katalvlaran/lvgeom/shape"
	"github.com/katalvlaran/lvgeom/vector"
	"github.com/stretchr/testify/require"
)

const eps = 1e-9

func mustLine(t testing.TB, p1, p2 vector.Vec3) shape.Linear {
	t.Helper()
	l, err := shape.NewLine(p1, p2)
	require.NoError(t, err)
	return l
}

func mustRay(t testing.TB, p1, p2 vector.Vec3) shape.Linear {
	t.Helper()
	r, err := shape.NewRay(p1, p2)
	require.NoError(t, err)
	return r
}

func mustSegment(t testing.TB, p1, p2 vector.Vec3) shape.Linear {
	t.Helper()
	s, err := shape.NewSegment(p1, p2)
	require.NoError(t, err)
	return s
}

func mustPlane(t testing.TB, p, n vector.Vec3) shape.Plane {
	t.Helper()
	pl, err := shape.NewPlane(p, n)
	require.NoError(t, err)
	return pl
}

func mustTriangle(t testing.TB, p1, p2, p3 vector.Vec3) shape.Triangle {
	t.Helper()
	tri, err := shape.NewTriangle(p1, p2, p3)
	require.NoError(t, err)
	return tri
}

// requirePoint fails unless x is a point result equal to want within tol.
func requirePoint(t testing.TB, want vector.Vec4, x shape.Intersection, tol float64) {
	t.Helper()
	require.Truef(t, x.IsPoint(), "want point, got shape %v", x.Shape)
	ok, err := want.ApproxEqual(x.Point, tol)
	require.NoError(t, err)
	require.Truef(t, ok, "want %v, got %v", want, x.Point)
}

// requireShape fails unless x carries a shape ApproxEqual to want.
func requireShape(t testing.TB, want shape.Shape, x shape.Intersection) {
	t.Helper()
	require.Falsef(t, x.IsPoint(), "want shape, got point %v", x.Point)
	require.Equal(t, want.Kind(), x.Shape.Kind())
	ok, err := want.ApproxEqual(x.Shape, eps)
	require.NoError(t, err)
	require.Truef(t, ok, "want %+v, got %+v", want, x.Shape)
}
