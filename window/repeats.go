// SPDX-License-Identifier: MIT

package window

import "unicode/utf8"

// LongestWithoutRepeats returns the length, in symbols, of the longest
// substring of s in which no symbol occurs twice.
//
// When a symbol enters a second time, left advances past its earlier
// occurrence. Time O(n), memory O(min(n, σ)).
func LongestWithoutRepeats(s string) int {
	var (
		best     int
		counts   = newCounter[rune]()
		leftByte int
		size     int // symbols currently in the window
	)
	for _, r := range s {
		counts.add(r)
		size++
		for counts.count(r) > 1 {
			lr, w := utf8.DecodeRuneInString(s[leftByte:])
			counts.remove(lr)
			leftByte += w
			size--
		}
		best = max(best, size)
	}

	return best
}
