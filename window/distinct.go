// SPDX-License-Identifier: MIT

package window

import (
	"unicode/utf8"

	"github.com/katalvlaran/twopointers/core"
)

// LongestAtMostKDistinct returns the length, in symbols, of the longest
// substring of s containing at most k distinct symbols. k == 0 yields 0.
//
// Errors: ErrNegativeBound (also core.ErrInvalidArgument) if k < 0.
func LongestAtMostKDistinct(s string, k int) (int, error) {
	span, err := longestSpan(methodLongestAtMostK, s, k)
	if err != nil {
		return 0, err
	}

	return span.Len(), nil
}

// LongestSpan returns the symbol span [Start, End) of the first longest
// substring of s with at most k distinct symbols. The span is empty when no
// symbol fits (k == 0 or empty s).
//
// Errors: ErrNegativeBound (also core.ErrInvalidArgument) if k < 0.
func LongestSpan(s string, k int) (core.Span, error) {
	return longestSpan(methodLongestSpan, s, k)
}

// longestSpan reports a negative k under the exported method's name.
func longestSpan(method, s string, k int) (core.Span, error) {
	if k < 0 {
		return core.Span{}, core.InvalidArgumentf(method, ErrNegativeBound, "k=%d", k)
	}
	var (
		best     core.Span
		counts   = newCounter[rune]()
		leftByte int // byte offset of the window's first symbol
		left     int // symbol position of the window's first symbol
		right    int // symbol position of the symbol being added
	)
	for _, r := range s {
		counts.add(r)
		for counts.distinct > k {
			lr, w := utf8.DecodeRuneInString(s[leftByte:])
			counts.remove(lr)
			leftByte += w
			left++
		}
		if right-left+1 > best.Len() {
			best = core.Span{Start: left, End: right + 1}
		}
		right++
	}

	return best, nil
}

// LongestAtMostKDistinctSlice is LongestAtMostKDistinct over a slice of
// arbitrary comparable symbols. It returns the length and the span.
func LongestAtMostKDistinctSlice[T comparable](s []T, k int) (int, core.Span, error) {
	if k < 0 {
		return 0, core.Span{}, core.InvalidArgumentf(methodLongestSpanSlice, ErrNegativeBound, "k=%d", k)
	}
	var (
		best   core.Span
		counts = newCounter[T]()
		left   int
	)
	for right, sym := range s {
		counts.add(sym)
		for counts.distinct > k {
			counts.remove(s[left])
			left++
		}
		if right-left+1 > best.Len() {
			best = core.Span{Start: left, End: right + 1}
		}
	}

	return best.Len(), best, nil
}
