// SPDX-License-Identifier: MIT

package compact

import (
	"slices"

	"github.com/katalvlaran/twopointers/core"
)

// RelocateZeros moves every non-zero element of s to the front, preserving
// their relative order, and fills the remaining positions with zero. The
// number of zeros and of non-zeros is unchanged. Time O(n), memory O(1).
func RelocateZeros[T core.Number](s []T) {
	slow := 0
	for fast := 0; fast < len(s); fast++ {
		if s[fast] != 0 {
			s[slow] = s[fast]
			slow++
		}
	}
	clear(s[slow:])
}

// Relocated is RelocateZeros applied to a copy of s. Memory O(n).
func Relocated[T core.Number](s []T) []T {
	out := slices.Clone(s)
	RelocateZeros(out)

	return out
}
