// SPDX-License-Identifier: MIT

package converge

import "github.com/katalvlaran/twopointers/core"

// TrappedWater returns the volume of water held between bars of height h
// after rain. Heights are expected to be non-negative; empty input holds 0.
//
// leftMax and rightMax are the tallest bars seen so far from each end. The
// pointer on the lower side is always the one advanced: a taller bar exists
// on the other side, so the water level at the advanced position is its own
// side's running maximum.
//
// Time O(n), memory O(1).
func TrappedWater[T core.Number](h []T) T {
	var total, leftMax, rightMax T
	if len(h) == 0 {
		return total
	}
	left, right := 0, len(h)-1
	for left < right {
		if h[left] < h[right] {
			if h[left] >= leftMax {
				leftMax = h[left]
			} else {
				total += leftMax - h[left]
			}
			left++
		} else {
			if h[right] >= rightMax {
				rightMax = h[right]
			} else {
				total += rightMax - h[right]
			}
			right--
		}
	}

	return total
}
