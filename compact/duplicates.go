// SPDX-License-Identifier: MIT

package compact

import (
	"slices"

	"github.com/katalvlaran/twopointers/core"
)

// CompactDuplicates moves one copy of every value of a sorted s to the front,
// keeping their order, and returns how many there are. s[:n] holds the
// distinct values; s[n:] is stale. Empty input returns 0.
// Time O(n), memory O(1).
func CompactDuplicates[T comparable](s []T) int {
	return CompactDuplicatesFunc(s, func(a, b T) bool { return a == b })
}

// CompactDuplicatesFunc is CompactDuplicates with a caller-supplied equality.
// eq is only ever called on the last kept element and the element under fast.
func CompactDuplicatesFunc[T any](s []T, eq func(a, b T) bool) int {
	if len(s) == 0 {
		return 0
	}
	slow := 0
	for fast := 1; fast < len(s); fast++ {
		if !eq(s[fast], s[slow]) {
			slow++
			s[slow] = s[fast]
		}
	}

	return slow + 1
}

// CompactAtMost keeps at most k copies of every run of equal values of a
// sorted s, moving them to the front in order, and returns the kept count.
//
// An element is kept when fewer than k elements have been written or when it
// differs from the element written k positions back.
//
// Errors: ErrBadLimit (also core.ErrInvalidArgument) if k < 1.
// Time O(n), memory O(1).
func CompactAtMost[T comparable](s []T, k int) (int, error) {
	if k < 1 {
		return 0, core.InvalidArgumentf(methodCompactAtMost, ErrBadLimit, "k=%d", k)
	}
	slow := 0
	for fast := 0; fast < len(s); fast++ {
		if slow < k || s[fast] != s[slow-k] {
			s[slow] = s[fast]
			slow++
		}
	}

	return slow, nil
}

// Compacted returns the distinct values of a sorted s as a new slice, leaving
// s untouched. Memory O(n).
func Compacted[T comparable](s []T) []T {
	out := slices.Clone(s)
	n := CompactDuplicates(out)

	return out[:n:n]
}
