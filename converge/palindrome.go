// SPDX-License-Identifier: MIT

package converge

import (
	"unicode"
	"unicode/utf8"
)

// IsPalindrome reports whether s reads the same in both directions after
// dropping every symbol that is neither a letter nor a digit, comparing
// case-insensitively. Empty or all-noise input is a palindrome.
//
// Symbols are UTF-8 code points; invalid bytes decode as utf8.RuneError
// and are treated as noise. Time O(n), memory O(1).
func IsPalindrome(s string) bool {
	return IsPalindromeFunc(s, isAlnum)
}

// IsPalindromeFunc is IsPalindrome with a caller-supplied filter: only symbols
// for which keep returns true take part in the comparison.
func IsPalindromeFunc(s string, keep func(rune) bool) bool {
	// left is the byte offset of the next symbol, right the byte offset just
	// past the last one still under consideration.
	left, right := 0, len(s)
	for left < right {
		lr, lw := utf8.DecodeRuneInString(s[left:right])
		for left < right && !keep(lr) {
			left += lw
			lr, lw = utf8.DecodeRuneInString(s[left:right])
		}
		rr, rw := utf8.DecodeLastRuneInString(s[left:right])
		for left < right && !keep(rr) {
			right -= rw
			rr, rw = utf8.DecodeLastRuneInString(s[left:right])
		}
		if left+lw >= right {
			return true // zero or one symbol left
		}
		if !foldEqual(lr, rr) {
			return false
		}
		left += lw
		right -= rw
	}

	return true
}

// IsPalindromeSlice reports whether s equals its own reverse.
func IsPalindromeSlice[T comparable](s []T) bool {
	for left, right := 0, len(s)-1; left < right; left, right = left+1, right-1 {
		if s[left] != s[right] {
			return false
		}
	}

	return true
}

func isAlnum(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

// foldEqual reports whether a and b are equal under Unicode simple folding.
func foldEqual(a, b rune) bool {
	if a == b {
		return true
	}
	for f := unicode.SimpleFold(a); f != a; f = unicode.SimpleFold(f) {
		if f == b {
			return true
		}
	}

	return false
}
