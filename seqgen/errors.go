// SPDX-License-Identifier: MIT

package seqgen

import "errors"

// ErrBadSize indicates a negative length was requested.
var ErrBadSize = errors.New("seqgen: invalid size")

// ErrOptionViolation indicates the resolved options cannot serve the
// requested generator (e.g. a height range entirely below zero).
var ErrOptionViolation = errors.New("seqgen: invalid option value")

// Method names used as error prefixes.
const (
	methodInts       = "Ints"
	methodSortedInts = "SortedInts"
	methodHeights    = "Heights"
	methodText       = "Text"
	methodPalindrome = "Palindrome"
)
