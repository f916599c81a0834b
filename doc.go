// Package lvgeom is a small geometry and linear-algebra kernel for 3D work:
// vectors, column-major matrices, quaternions and shapes with tolerance-aware
// distance, containment and intersection queries.
//
// 🚀 What is lvgeom?
//
//	A pure-Go library that brings together:
//		• Vectors: Vec2/Vec3/Vec4 values, approximate equality, reflect/refract/slerp
//		• Matrices: column-major Dense, determinant, cofactors, adjoint, inverse
//		• Orientation: quaternions, rotation between vectors, basis alignment
//		• Shapes: Line, Ray, Segment, Plane, Triangle with Distance and Intersect
//		• Meshes: sdfx solids tessellated into triangles, raycasting
//
// ✨ Guarantees
//
//   - Values are immutable; "With" methods rebuild and re-validate.
//   - Errors are sentinels wrapped with the failing op; match with errors.Is.
//   - Intersects(a, b, tol) is exactly Distance(a, b) <= tol for every pair.
//
// Under the hood, everything is organized under five subpackages:
//
//	vector/   Vec2, Vec3, Vec4 and tolerance comparison
//	matrix/   Dense, linear algebra, cofactor expansion, affine transforms
//	orient/   Quat, Basis, RotationBetween, OrientBasis
//	shape/    Linear, Plane, Triangle; Distance, Intersect, Transform
//	mesh/     FromSDF3, Raycast
//
// Quick example:
//
//	pl, _ := shape.NewPlane(vector.Vec3{1, 1, 1}, vector.Vec3{0, 1, 0})
//	l, _ := shape.NewLine(vector.Vec3{2, 0, 2}, vector.Vec3{4, 2, 4})
//	x, ok, _ := shape.Intersect(pl, l, 1e-6) // ok, x.Point == [3 1 3 1]
//
//	go get github.com/katalvlaran/lvgeom
package lvgeom
