// SPDX-License-Identifier: MIT
package vector_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvgeom/vector"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tol = 1e-9

// requireVec3 fails the test unless got ≈ want within eps.
func requireVec3(t *testing.T, want, got vector.Vec3, eps float64) {
	t.Helper()
	ok, err := want.ApproxEqual(got, eps)
	require.NoError(t, err)
	require.Truef(t, ok, "want %v, got %v", want, got)
}

func TestVec3Basics(t *testing.T) {
	t.Parallel()

	a := vector.Vec3{1, 2, 3}
	b := vector.Vec3{4, 5, 6}

	assert.Equal(t, vector.Vec3{5, 7, 9}, a.Add(b))
	assert.Equal(t, vector.Vec3{-3, -3, -3}, a.Sub(b))
	assert.Equal(t, vector.Vec3{2, 4, 6}, a.Scale(2))
	assert.Equal(t, 32.0, a.Dot(b))
	assert.Equal(t, vector.Vec3{-3, 6, -3}, a.Cross(b))
	assert.InDelta(t, math.Sqrt(14), a.Len(), tol)
	assert.InDelta(t, math.Sqrt(27), a.Distance(b), tol)
	assert.InDelta(t, 1.0, a.Normalize().Len(), tol)
	assert.Equal(t, vector.Vec3{}, vector.Vec3{}.Normalize(), "zero vector normalizes to zero")
	assert.Equal(t, vector.Vec3{2.5, 3.5, 4.5}, a.Lerp(b, 0.5))
}

func TestScalarProjection(t *testing.T) {
	t.Parallel()

	got := vector.Vec3{10, 0, 0}.ScalarProjection(vector.Vec3{3, 4, 0})
	assert.InDelta(t, 3.0, got, tol)
}

func TestAngleTo(t *testing.T) {
	t.Parallel()

	assert.InDelta(t, math.Pi/2, vector.Vec3{1, 0, 0}.AngleTo(vector.Vec3{0, 2, 0}), tol)
	assert.InDelta(t, math.Pi, vector.Vec3{1, 0, 0}.AngleTo(vector.Vec3{-1, 0, 0}), tol)
	assert.True(t, math.IsNaN(vector.Vec3{}.AngleTo(vector.Vec3{1, 0, 0})))
}

func TestHomogeneous(t *testing.T) {
	t.Parallel()

	p := vector.Point(1, 2, 3)
	q := vector.Point(4, 6, 3)
	require.True(t, p.IsPoint())
	require.Equal(t, 0.0, q.Sub(p).W(), "point - point is a direction")
	require.Equal(t, 1.0, p.Lerp(q, 0.3).W(), "lerp between points keeps w = 1")
	require.InDelta(t, 5.0, p.Distance(q), tol)
	require.Equal(t, p, p.XYZ().Point())
	require.Equal(t, vector.Direction(1, 2, 3), p.XYZ().Direction())
}

func TestVec2(t *testing.T) {
	t.Parallel()

	a := vector.Vec2{3, 4}
	assert.InDelta(t, 5.0, a.Len(), tol)
	assert.InDelta(t, 1.0, a.Normalize().Len(), tol)
	assert.Equal(t, -4.0, a.Cross(vector.Vec2{0, 0}.Add(vector.Vec2{1, 0})))
	assert.Equal(t, 11.0, a.Dot(vector.Vec2{1, 2}))
	assert.InDelta(t, 5.0, a.Distance(vector.Vec2{}), tol)
}

func TestClamp(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 1.0, vector.Clamp(1.0000001, -1, 1))
	assert.Equal(t, -1.0, vector.Clamp(-3.0, -1, 1))
	assert.Equal(t, 0.25, vector.Clamp(0.25, 0, 1))
	assert.Equal(t, 3, vector.Clamp(7, 0, 3), "works for any ordered type")
}
