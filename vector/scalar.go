// SPDX-License-Identifier: MIT

package vector

import "golang.org/x/exp/constraints"

// Clamp limits x to [lo, hi]. lo must not exceed hi.
func Clamp[T constraints.Ordered](x, lo, hi T) T {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}

	return x
}
