// SPDX-License-Identifier: MIT
package shape_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvgeom/shape"
	"github.com/katalvlaran/lvgeom/vector"
	"github.com/stretchr/testify/require"
)

// unitTri is the right triangle (0,0,0) (4,0,0) (0,4,0) in the z = 0 plane.
func unitTri(t testing.TB) shape.Triangle {
	return mustTriangle(t, vector.Vec3{0, 0, 0}, vector.Vec3{4, 0, 0}, vector.Vec3{0, 4, 0})
}

func TestNewTriangle_Errors(t *testing.T) {
	t.Parallel()

	_, err := shape.NewTriangle(vector.Vec3{0, 0, 0}, vector.Vec3{1, 1, 1}, vector.Vec3{3, 3, 3})
	require.ErrorIs(t, err, shape.ErrDegenerateShape)
	_, err = shape.NewTriangle(vector.Vec3{0, 0, 0}, vector.Vec3{0, 0, 0}, vector.Vec3{1, 0, 0})
	require.ErrorIs(t, err, shape.ErrDegenerateShape)
	_, err = shape.NewTriangle(vector.Vec3{math.NaN(), 0, 0}, vector.Vec3{0, 1, 0}, vector.Vec3{1, 0, 0})
	require.ErrorIs(t, err, shape.ErrDegenerateShape)
	_, err = shape.NewTriangleFromEdges(vector.Vec3{1, 1, 1}, vector.Vec3{1, 0, 0}, vector.Vec3{-2, 0, 0})
	require.ErrorIs(t, err, shape.ErrDegenerateShape)
}

func TestTriangle_Accessors(t *testing.T) {
	t.Parallel()

	tri := unitTri(t)
	require.Equal(t, shape.KindTriangle, tri.Kind())
	require.Equal(t, vector.Vec3{0, 0, 1}, tri.Normal())
	require.InDelta(t, 1.0, mustTriangle(t, vector.Vec3{1, 2, 3}, vector.Vec3{4, -1, 0}, vector.Vec3{2, 7, 5}).Normal().Len(), eps)
	require.InDelta(t, 8.0, tri.Area(), eps)
	u, v := tri.Edges()
	require.Equal(t, vector.Vec3{4, 0, 0}, u)
	require.Equal(t, vector.Vec3{0, 4, 0}, v)
	require.Equal(t, vector.Point(0, 4, 0), tri.Points()[2])
	require.Equal(t, vector.Vec3{0, 0, 1}, tri.Plane().UnitNormal())

	same, err := shape.NewTriangleFromEdges(vector.Vec3{0, 0, 0}, vector.Vec3{4, 0, 0}, vector.Vec3{0, 4, 0})
	require.NoError(t, err)
	require.Equal(t, tri, same)

	w1, w2, w3 := tri.Barycentric(vector.Point(1, 1, 5))
	require.InDelta(t, 0.5, w1, eps)
	require.InDelta(t, 0.25, w2, eps)
	require.InDelta(t, 0.25, w3, eps)
}

func TestTriangle_DistanceToPoint(t *testing.T) {
	t.Parallel()

	tri := unitTri(t)
	cases := []struct {
		name string
		p    vector.Vec4
		want float64
	}{
		{"above interior", vector.Point(1, 1, 3), 3},
		{"on interior", vector.Point(1, 1, 0), 0},
		{"past vertex", vector.Point(6, 0, 0), 2},
		{"behind corner", vector.Point(-1, -1, 0), math.Sqrt2},
		{"past hypotenuse", vector.Point(3, 3, 0), math.Sqrt2},
		{"below edge", vector.Point(2, -3, 4), 5},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.InDelta(t, tc.want, tri.DistanceToPoint(tc.p), eps)
			ok, err := tri.ContainsPoint(tc.p, eps)
			require.NoError(t, err)
			require.Equal(t, tc.want == 0, ok)
		})
	}
	require.Equal(t, vector.Point(2, 2, 0), tri.ClosestPoint(vector.Point(3, 3, 0)))
}

func TestTriangle_ApproxEqual(t *testing.T) {
	t.Parallel()

	tri := unitTri(t)
	perm := mustTriangle(t, vector.Vec3{0, 4, 0}, vector.Vec3{0, 0, 0}, vector.Vec3{4, 0, 0})
	ok, err := tri.ApproxEqual(perm, eps)
	require.NoError(t, err)
	require.True(t, ok)

	other := mustTriangle(t, vector.Vec3{0, 4, 0}, vector.Vec3{0, 0, 0}, vector.Vec3{5, 0, 0})
	ok, err = tri.ApproxEqual(other, eps)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestTriangle_Linear(t *testing.T) {
	t.Parallel()

	tri := unitTri(t)

	t.Run("line pierces interior", func(t *testing.T) {
		l := mustLine(t, vector.Vec3{1, 1, -1}, vector.Vec3{1, 1, 1})
		x, ok, err := tri.Intersection(l, eps)
		require.NoError(t, err)
		require.True(t, ok)
		requirePoint(t, vector.Point(1, 1, 0), x, eps)
	})
	t.Run("line misses", func(t *testing.T) {
		l := mustLine(t, vector.Vec3{5, 5, -1}, vector.Vec3{5, 5, 1})
		d, err := shape.Distance(l, tri)
		require.NoError(t, err)
		require.InDelta(t, 3*math.Sqrt2, d, eps)
		ok, err := shape.Intersects(l, tri, 0.1)
		require.NoError(t, err)
		require.False(t, ok)
	})
	t.Run("ray stops short", func(t *testing.T) {
		r := mustRay(t, vector.Vec3{1, 1, 2}, vector.Vec3{1, 1, 3})
		d, err := shape.Distance(tri, r)
		require.NoError(t, err)
		require.InDelta(t, 2.0, d, eps)
	})
	t.Run("coplanar segment clipped", func(t *testing.T) {
		s := mustSegment(t, vector.Vec3{-1, 1, 0}, vector.Vec3{5, 1, 0})
		x, ok, err := shape.Intersect(tri, s, eps)
		require.NoError(t, err)
		require.True(t, ok)
		requireShape(t, mustSegment(t, vector.Vec3{0, 1, 0}, vector.Vec3{3, 1, 0}), x)
	})
	t.Run("coplanar segment touching vertex", func(t *testing.T) {
		s := mustSegment(t, vector.Vec3{4, 0, 0}, vector.Vec3{6, 0, 0})
		x, ok, err := shape.Intersect(s, tri, eps)
		require.NoError(t, err)
		require.True(t, ok)
		requirePoint(t, vector.Point(4, 0, 0), x, eps)
	})
	t.Run("coplanar line outside", func(t *testing.T) {
		l := mustLine(t, vector.Vec3{0, 5, 0}, vector.Vec3{1, 5, 0})
		d, err := shape.Distance(tri, l)
		require.NoError(t, err)
		require.InDelta(t, 1.0, d, eps)
		_, ok, err := shape.Intersect(tri, l, 0.5)
		require.NoError(t, err)
		require.False(t, ok)
	})
}

func TestTriangle_Plane(t *testing.T) {
	t.Parallel()

	tri := unitTri(t)

	t.Run("coplanar", func(t *testing.T) {
		x, ok, err := shape.Intersect(tri, mustPlane(t, vector.Vec3{7, 7, 0}, vector.Vec3{0, 0, -1}), eps)
		require.NoError(t, err)
		require.True(t, ok)
		requireShape(t, tri, x)
	})
	t.Run("cut through", func(t *testing.T) {
		x, ok, err := shape.Intersect(mustPlane(t, vector.Vec3{1, 0, 0}, vector.Vec3{1, 0, 0}), tri, eps)
		require.NoError(t, err)
		require.True(t, ok)
		requireShape(t, mustSegment(t, vector.Vec3{1, 0, 0}, vector.Vec3{1, 3, 0}), x)
	})
	t.Run("touch vertex", func(t *testing.T) {
		pl := mustPlane(t, vector.Vec3{4, 0, 0}, vector.Vec3{1, 0, 0})
		d, err := shape.Distance(tri, pl)
		require.NoError(t, err)
		require.Equal(t, 0.0, d)
		x, ok, err := shape.Intersect(tri, pl, eps)
		require.NoError(t, err)
		require.True(t, ok)
		requirePoint(t, vector.Point(4, 0, 0), x, eps)
	})
	t.Run("miss", func(t *testing.T) {
		pl := mustPlane(t, vector.Vec3{5, 0, 0}, vector.Vec3{1, 0, 0})
		d, err := shape.Distance(tri, pl)
		require.NoError(t, err)
		require.InDelta(t, 1.0, d, eps)
		ok, err := shape.Intersects(tri, pl, 0.5)
		require.NoError(t, err)
		require.False(t, ok)
	})
}

func TestTriangle_TrianglePairUnsupported(t *testing.T) {
	t.Parallel()

	a := unitTri(t)
	b := mustTriangle(t, vector.Vec3{0, 0, 1}, vector.Vec3{1, 0, 1}, vector.Vec3{0, 1, 1})

	_, err := shape.Distance(a, b)
	require.ErrorIs(t, err, shape.ErrUnsupportedShapePair)
	_, _, err = a.Intersection(b, eps)
	require.ErrorIs(t, err, shape.ErrUnsupportedShapePair)
	_, err = a.Intersects(b, eps)
	require.ErrorIs(t, err, shape.ErrUnsupportedShapePair)
}
