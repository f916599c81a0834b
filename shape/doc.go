// SPDX-License-Identifier: MIT

// Package shape implements 3D shapes with distance, containment and
// intersection queries: infinite lines, rays, segments, planes and triangles.
//
// What & Why:
//
//	Every shape is an immutable value. Kind is a closed sum type and the
//	package-level Distance and Intersect functions dispatch on kind pairs
//	with a type switch; pairs with no algorithm return
//	ErrUnsupportedShapePair instead of a silently wrong answer.
//
// Consistency:
//
//	Intersect(a, b, tol) first computes Distance(a, b) and reports no
//	intersection when it exceeds tol; only then is the overlap
//	characterised (a point, or a sub-shape for collinear/coplanar cases).
//	So for every pair:
//
//	  Intersects(a, b, tol) == (Distance(a, b) <= tol)
//
//	and a point result is within tol of both shapes.
//
// Points are accepted and returned as vector.Vec4 with w == 1; geometric
// parameters are stored as vector.Vec3 internally.
package shape
