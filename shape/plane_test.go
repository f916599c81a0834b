// SPDX-License-Identifier: MIT
package shape_test

import (
	"testing"

	"github.com/katalvlaran/lvgeom/shape"
	"github.com/katalvlaran/lvgeom/vector"
	"github.com/stretchr/testify/require"
)

func TestNewPlane_Errors(t *testing.T) {
	t.Parallel()

	_, err := shape.NewPlane(vector.Vec3{1, 1, 1}, vector.Vec3{})
	require.ErrorIs(t, err, shape.ErrDegenerateShape)

	_, err = shape.NewPlaneFromPoints(vector.Vec3{0, 0, 0}, vector.Vec3{1, 1, 1}, vector.Vec3{2, 2, 2})
	require.ErrorIs(t, err, shape.ErrDegenerateShape)

	pl, err := shape.NewPlaneFromPoints(vector.Vec3{0, 0, 0}, vector.Vec3{1, 0, 0}, vector.Vec3{0, 1, 0})
	require.NoError(t, err)
	require.Equal(t, vector.Vec3{0, 0, 1}, pl.Normal())
}

func TestPlane_Accessors(t *testing.T) {
	t.Parallel()

	pl := mustPlane(t, vector.Vec3{1, 1, 1}, vector.Vec3{0, 2, 0})
	require.Equal(t, shape.KindPlane, pl.Kind())
	require.Equal(t, vector.Point(1, 1, 1), pl.Point())
	require.Equal(t, vector.Vec3{0, 2, 0}, pl.Normal())
	require.Equal(t, vector.Vec3{0, 1, 0}, pl.UnitNormal())
	require.InDelta(t, -1.0, pl.D(), eps)
	require.InDelta(t, 3.0, pl.SignedDistance(vector.Point(0, 4, 0)), eps)
	require.InDelta(t, -2.0, pl.SignedDistance(vector.Point(9, -1, 9)), eps)
	require.InDelta(t, 2.0, pl.DistanceToPoint(vector.Point(9, -1, 9)), eps)
	require.Equal(t, vector.Point(3, 1, 7), pl.Project(vector.Point(3, 5, 7)))

	ok, err := pl.ContainsPoint(vector.Point(-4, 1, 8), eps)
	require.NoError(t, err)
	require.True(t, ok)
}

func TestPlane_WithRebuildsDerivedState(t *testing.T) {
	t.Parallel()

	pl := mustPlane(t, vector.Vec3{1, 1, 1}, vector.Vec3{0, 1, 0})

	moved, err := pl.WithPoint(vector.Vec3{0, 3, 0})
	require.NoError(t, err)
	require.InDelta(t, -3.0, moved.D(), eps)
	require.InDelta(t, -1.0, pl.D(), eps, "original is unchanged")

	turned, err := pl.WithNormal(vector.Vec3{1, 0, 0})
	require.NoError(t, err)
	require.InDelta(t, 1.0, turned.DistanceToPoint(vector.Point(2, 1, 1)), eps)

	_, err = pl.WithNormal(vector.Vec3{})
	require.ErrorIs(t, err, shape.ErrDegenerateShape)
}

func TestPlane_ApproxEqual(t *testing.T) {
	t.Parallel()

	pl := mustPlane(t, vector.Vec3{0, 0, 0}, vector.Vec3{0, 0, 1})

	ok, err := pl.ApproxEqual(mustPlane(t, vector.Vec3{3, 4, 0}, vector.Vec3{0, 0, -5}), eps)
	require.NoError(t, err)
	require.True(t, ok, "flipped normal, other point on the plane")

	ok, err = pl.ApproxEqual(mustPlane(t, vector.Vec3{0, 0, 1}, vector.Vec3{0, 0, 1}), eps)
	require.NoError(t, err)
	require.False(t, ok)

	ok, err = pl.ApproxEqual(mustLine(t, vector.Vec3{}, vector.Vec3{1, 0, 0}), eps)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestPlane_LineCrossing(t *testing.T) {
	t.Parallel()

	pl := mustPlane(t, vector.Vec3{1, 1, 1}, vector.Vec3{0, 1, 0})
	l := mustLine(t, vector.Vec3{2, 0, 2}, vector.Vec3{4, 2, 4})

	x, ok, err := pl.Intersection(l, 1e-4)
	require.NoError(t, err)
	require.True(t, ok)
	requirePoint(t, vector.Point(3, 1, 3), x, 1e-4)

	x, ok, err = shape.Intersect(l, pl, 1e-4)
	require.NoError(t, err)
	require.True(t, ok)
	requirePoint(t, vector.Point(3, 1, 3), x, 1e-4)
	require.False(t, pl.IsParallelTo(l))
}

func TestPlane_RayPointingAway(t *testing.T) {
	t.Parallel()

	pl := mustPlane(t, vector.Vec3{1, 1, 1}, vector.Vec3{0, 1, 0})
	r := mustRay(t, vector.Vec3{2, 1.1, 2}, vector.Vec3{3, 4, 5})

	_, ok, err := pl.Intersection(r, 1e-4)
	require.NoError(t, err)
	require.False(t, ok)

	d, err := pl.DistanceTo(r)
	require.NoError(t, err)
	require.InDelta(t, 0.1, d, eps)

	// widening the tolerance reaches the ray origin
	x, ok, err := pl.Intersection(r, 0.2)
	require.NoError(t, err)
	require.True(t, ok)
	requirePoint(t, vector.Point(2, 1.1, 2), x, eps)
}

func TestPlane_LinearCases(t *testing.T) {
	t.Parallel()

	pl := mustPlane(t, vector.Vec3{1, 1, 1}, vector.Vec3{0, 1, 0})

	t.Run("line in plane", func(t *testing.T) {
		l := mustLine(t, vector.Vec3{0, 1, 0}, vector.Vec3{1, 1, 0})
		require.True(t, pl.IsParallelTo(l))
		x, ok, err := shape.Intersect(pl, l, eps)
		require.NoError(t, err)
		require.True(t, ok)
		requireShape(t, l, x)
	})
	t.Run("parallel line above", func(t *testing.T) {
		l := mustLine(t, vector.Vec3{0, 3, 0}, vector.Vec3{1, 3, 0})
		d, err := shape.Distance(pl, l)
		require.NoError(t, err)
		require.InDelta(t, 2.0, d, eps)
		ok, err := shape.Intersects(pl, l, 1)
		require.NoError(t, err)
		require.False(t, ok)
	})
	t.Run("segment short of plane", func(t *testing.T) {
		s := mustSegment(t, vector.Vec3{0, 3, 0}, vector.Vec3{0, 2, 0})
		d, err := shape.Distance(s, pl)
		require.NoError(t, err)
		require.InDelta(t, 1.0, d, eps)
	})
	t.Run("segment through plane", func(t *testing.T) {
		s := mustSegment(t, vector.Vec3{0, 3, 0}, vector.Vec3{0, -1, 0})
		x, ok, err := shape.Intersect(s, pl, eps)
		require.NoError(t, err)
		require.True(t, ok)
		requirePoint(t, vector.Point(0, 1, 0), x, eps)
	})
}

func TestPlane_PlanePairs(t *testing.T) {
	t.Parallel()

	y1 := mustPlane(t, vector.Vec3{1, 1, 1}, vector.Vec3{0, 1, 0})

	t.Run("crossing planes", func(t *testing.T) {
		x2 := mustPlane(t, vector.Vec3{2, 0, 0}, vector.Vec3{1, 0, 0})
		d, err := shape.Distance(y1, x2)
		require.NoError(t, err)
		require.Equal(t, 0.0, d)

		x, ok, err := shape.Intersect(y1, x2, eps)
		require.NoError(t, err)
		require.True(t, ok)
		requireShape(t, mustLine(t, vector.Vec3{2, 1, 0}, vector.Vec3{2, 1, 1}), x)
	})
	t.Run("oblique planes", func(t *testing.T) {
		other := mustPlane(t, vector.Vec3{0, 0, 3}, vector.Vec3{1, 1, 1})
		x, ok, err := shape.Intersect(y1, other, eps)
		require.NoError(t, err)
		require.True(t, ok)
		require.Equal(t, shape.KindLine, x.Shape.Kind())
		l := x.Shape.(shape.Linear)
		for _, alpha := range []float64{-3, 0, 2.5} {
			p := l.At(alpha)
			require.InDelta(t, 0.0, y1.DistanceToPoint(p), 1e-9)
			require.InDelta(t, 0.0, other.DistanceToPoint(p), 1e-9)
		}
	})
	t.Run("parallel planes", func(t *testing.T) {
		y4 := mustPlane(t, vector.Vec3{0, 4, 0}, vector.Vec3{0, -2, 0})
		d, err := shape.Distance(y1, y4)
		require.NoError(t, err)
		require.InDelta(t, 3.0, d, eps)
		ok, err := shape.Intersects(y1, y4, 0.1)
		require.NoError(t, err)
		require.False(t, ok)
	})
	t.Run("coincident planes", func(t *testing.T) {
		same := mustPlane(t, vector.Vec3{5, 1, 5}, vector.Vec3{0, 3, 0})
		x, ok, err := shape.Intersect(y1, same, eps)
		require.NoError(t, err)
		require.True(t, ok)
		requireShape(t, same, x)
	})
}
