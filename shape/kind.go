// SPDX-License-Identifier: MIT

package shape

// Kind tags the concrete shape variant.
type Kind uint8

const (
	KindLine Kind = iota + 1
	KindRay
	KindSegment
	KindPlane
	KindTriangle
)

func (k Kind) String() string {
	switch k {
	case KindLine:
		return "Line"
	case KindRay:
		return "Ray"
	case KindSegment:
		return "Segment"
	case KindPlane:
		return "Plane"
	case KindTriangle:
		return "Triangle"
	default:
		return "Unknown"
	}
}

// IsLinear reports whether k is one of Line, Ray or Segment.
func (k Kind) IsLinear() bool {
	return k == KindLine || k == KindRay || k == KindSegment
}
