// SPDX-License-Identifier: MIT

package vector

import "math"

// Reflect returns the reflection of incident i about normal n:
// i - 2(n·i)n. n is expected to be unit length.
func Reflect(i, n Vec3) Vec3 {
	return i.Sub(n.Scale(2 * n.Dot(i)))
}

// Refract returns the refraction of incident i through a surface with unit
// normal n and ratio of indices eta. Total internal reflection (k < 0)
// yields the zero vector.
func Refract(i, n Vec3, eta float64) Vec3 {
	ni := n.Dot(i)
	k := 1 - eta*eta*(1-ni*ni)
	if k < 0 {
		return Vec3{}
	}

	return i.Scale(eta).Sub(n.Scale(eta*ni + math.Sqrt(k)))
}

// Slerp spherically interpolates the direction of u toward v and linearly
// interpolates the magnitude, alpha in [0, 1].
//
// Implementation:
//   - Stage 1: split u, v into unit directions and lengths.
//   - Stage 2: when the directions are parallel (|û×v̂| == 0) the rotation
//     axis is undefined, so fall back to Lerp.
//   - Stage 3: otherwise rotate û toward v̂ by alpha·θ in their common plane
//     and scale by the interpolated length.
//
// Complexity:
//   - Time O(1), Space O(1).
func Slerp(u, v Vec3, alpha float64) Vec3 {
	uLen, vLen := u.Len(), v.Len()
	uHat, vHat := u.Normalize(), v.Normalize()
	if uHat.Cross(vHat).Len() == 0 {
		return u.Lerp(v, alpha)
	}

	theta := math.Acos(Clamp(uHat.Dot(vHat), -1, 1))
	sinTheta := math.Sin(theta)
	wa := math.Sin((1-alpha)*theta) / sinTheta
	wb := math.Sin(alpha*theta) / sinTheta
	dir := uHat.Scale(wa).Add(vHat.Scale(wb))

	return dir.Scale(uLen + (vLen-uLen)*alpha)
}
