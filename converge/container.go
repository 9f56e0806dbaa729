// SPDX-License-Identifier: MIT

package converge

import "github.com/katalvlaran/twopointers/core"

// MaxContainerArea returns the largest (j − i) × min(h[i], h[j]) over all
// i < j. Heights are expected to be non-negative.
//
// The scan always moves the shorter boundary inward. Moving the taller one
// shrinks the width while the bounding height stays capped by the shorter
// one, so it can never produce a larger area.
//
// Errors: ErrTooFewHeights (also core.ErrInvalidArgument) if len(h) < 2.
// Time O(n), memory O(1).
func MaxContainerArea[T core.Number](h []T) (T, error) {
	if len(h) < 2 {
		return 0, core.InvalidArgumentf(methodMaxContainerArea, ErrTooFewHeights, "got %d heights", len(h))
	}
	_, area := maxContainer(h)

	return area, nil
}

// MaxContainer is MaxContainerArea that also returns the boundary pair
// achieving the area (the first one reached by the scan on ties).
func MaxContainer[T core.Number](h []T) (core.Pair, T, error) {
	if len(h) < 2 {
		return core.Pair{}, 0, core.InvalidArgumentf(methodMaxContainer, ErrTooFewHeights, "got %d heights", len(h))
	}
	p, area := maxContainer(h)

	return p, area, nil
}

// maxContainer assumes len(h) ≥ 2.
func maxContainer[T core.Number](h []T) (core.Pair, T) {
	left, right := 0, len(h)-1
	best := core.Pair{Left: left, Right: right}
	maxArea := T(right-left) * min(h[left], h[right])
	for left < right {
		if area := T(right-left) * min(h[left], h[right]); area > maxArea {
			maxArea = area
			best = core.Pair{Left: left, Right: right}
		}
		if h[left] <= h[right] {
			left++
		} else {
			right--
		}
	}

	return best, maxArea
}
