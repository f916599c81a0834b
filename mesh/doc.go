// SPDX-License-Identifier: MIT

// Package mesh bridges signed-distance solids from github.com/deadsy/sdfx and
// the shape package: FromSDF3 tessellates a solid into shape.Triangle values
// with marching cubes, and Raycast finds the nearest triangle a linear shape
// meets. Coordinates cross the boundary through FromV3 and ToV3.
package mesh
