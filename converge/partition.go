// SPDX-License-Identifier: MIT

package converge

import "github.com/katalvlaran/twopointers/core"

// PartitionAroundPivot rearranges s in place so that every element less than
// pivot precedes every element not less than pivot, and returns p, the start
// of the not-less-than region: s[:p] < pivot ≤ s[p:].
//
// left stops on the first element ≥ pivot, right on the last element < pivot;
// while left ≤ right such a misplaced pair is swapped and both move inward.
// Relative order inside either region is not preserved. pivot need not occur
// in s. Time O(n), memory O(1).
func PartitionAroundPivot[T core.Ordered](s []T, pivot T) int {
	left, right := 0, len(s)-1
	for left <= right {
		for left <= right && s[left] < pivot {
			left++
		}
		for left <= right && s[right] >= pivot {
			right--
		}
		if left < right {
			s[left], s[right] = s[right], s[left]
			left++
			right--
		}
	}

	return left
}

// PartitionThreeWay rearranges s in place into three bands and returns their
// boundaries: s[:lt] < pivot, s[lt:gt] == pivot, s[gt:] > pivot.
//
// lt and i move forward from the front while gt moves back from the end;
// the scan stops when i meets gt. Time O(n), memory O(1).
func PartitionThreeWay[T core.Ordered](s []T, pivot T) (lt, gt int) {
	i := 0
	gt = len(s)
	for i < gt {
		switch {
		case s[i] < pivot:
			s[lt], s[i] = s[i], s[lt]
			lt++
			i++
		case s[i] > pivot:
			gt--
			s[i], s[gt] = s[gt], s[i]
		default:
			i++
		}
	}

	return lt, gt
}
