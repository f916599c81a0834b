// SPDX-License-Identifier: MIT

package mesh

import (
	"fmt"

	"github.com/deadsy/sdfx/render"
	"github.com/deadsy/sdfx/sdf"
	v3 "github.com/deadsy/sdfx/vec/v3"

	"github.com/katalvlaran/lvgeom/shape"
	"github.com/katalvlaran/lvgeom/vector"
)

const (
	opFromSDF3 = "FromSDF3"
	opRaycast  = "Raycast"
)

// FromV3 converts an sdfx vector.
func FromV3(v v3.Vec) vector.Vec3 { return vector.Vec3{v.X, v.Y, v.Z} }

// ToV3 converts to an sdfx vector.
func ToV3(v vector.Vec3) v3.Vec { return v3.Vec{X: v[0], Y: v[1], Z: v[2]} }

// FromSDF3 tessellates s with uniform marching cubes at the given
// resolution (cells along the longest bounding-box axis). Zero-area
// triangles emitted by the tessellator are dropped.
//
// Errors:
//   - ErrNilSDF, ErrInvalidCells.
func FromSDF3(s sdf.SDF3, cells int) ([]shape.Triangle, error) {
	if s == nil {
		return nil, fmt.Errorf("%s: %w", opFromSDF3, ErrNilSDF)
	}
	if cells <= 0 {
		return nil, fmt.Errorf("%s: %d: %w", opFromSDF3, cells, ErrInvalidCells)
	}

	raw := render.ToTriangles(s, render.NewMarchingCubesUniform(cells))
	out := make([]shape.Triangle, 0, len(raw))
	for _, tri := range raw {
		t, err := shape.NewTriangle(FromV3(tri[0]), FromV3(tri[1]), FromV3(tri[2]))
		if err != nil {
			continue // degenerate
		}
		out = append(out, t)
	}

	return out, nil
}

// Hit is the nearest contact found by Raycast.
type Hit struct {
	Index    int         // index into the triangle slice
	Point    vector.Vec4 // contact point
	Distance float64     // |Point - ray.P1()|
}

// Raycast returns the hit nearest to ray.P1() among tris, using
// shape.Intersect with tolerance tol. A coplanar overlap contributes its
// end nearest the origin. ok is false when nothing is hit.
//
// Complexity:
//   - Time O(len(tris)), Space O(1).
func Raycast(tris []shape.Triangle, ray shape.Linear, tol float64) (Hit, bool, error) {
	origin := ray.P1().XYZ()
	best := Hit{Index: -1}
	for i, t := range tris {
		x, ok, err := shape.Intersect(t, ray, tol)
		if err != nil {
			return Hit{}, false, fmt.Errorf("%s: triangle %d: %w", opRaycast, i, err)
		}
		if !ok {
			continue
		}
		p := nearestEnd(x, origin)
		if d := p.Distance(origin); best.Index < 0 || d < best.Distance {
			best = Hit{Index: i, Point: p.Point(), Distance: d}
		}
	}

	return best, best.Index >= 0, nil
}

// nearestEnd reduces an intersection to the single point nearest origin.
func nearestEnd(x shape.Intersection, origin vector.Vec3) vector.Vec3 {
	if x.IsPoint() {
		return x.Point.XYZ()
	}
	seg, ok := x.Shape.(shape.Linear)
	if !ok {
		return origin
	}

	return seg.ClosestPoint(origin.Point()).XYZ()
}
