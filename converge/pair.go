// SPDX-License-Identifier: MIT

package converge

import "github.com/katalvlaran/twopointers/core"

// PairWithSum returns positions (i, j), i < j, with s[i]+s[j] == target.
// s must be sorted in non-decreasing order.
//
// Moving left raises the sum and moving right lowers it; every pair skipped
// by a move is provably too small or too large, so a match is never lost.
// When several pairs qualify, the first one reached by the scan is returned;
// no particular one is promised.
//
// Returns ok == false when the pointers meet without a match.
// Time O(n), memory O(1).
func PairWithSum[T core.Number](s []T, target T) (p core.Pair, ok bool) {
	left, right := 0, len(s)-1
	for left < right {
		sum := s[left] + s[right]
		switch {
		case sum == target:
			return core.Pair{Left: left, Right: right}, true
		case sum < target:
			left++ // need a larger sum
		default:
			right-- // need a smaller sum
		}
	}

	return core.Pair{}, false
}

// PairsWithSum returns one position pair for every distinct value pair of a
// sorted s adding up to target. After a match both pointers skip their run of
// equal values, so [1,1,2,2] with target 3 yields a single pair.
// Time O(n), memory O(1) excluding the result.
func PairsWithSum[T core.Number](s []T, target T) []core.Pair {
	return appendPairs(nil, s, 0, len(s)-1, target)
}

// appendPairs runs the duplicate-skipping pair scan over s[left..right] and
// appends every match to dst.
func appendPairs[T core.Number](dst []core.Pair, s []T, left, right int, target T) []core.Pair {
	for left < right {
		sum := s[left] + s[right]
		switch {
		case sum < target:
			left++
		case sum > target:
			right--
		default:
			dst = append(dst, core.Pair{Left: left, Right: right})
			lv, rv := s[left], s[right]
			for left < right && s[left] == lv {
				left++
			}
			for left < right && s[right] == rv {
				right--
			}
		}
	}

	return dst
}
