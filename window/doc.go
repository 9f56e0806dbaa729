// SPDX-License-Identifier: MIT

// Package window implements the dynamic sliding-window scan: two bounds move
// forward over a sequence, right extending the window one symbol at a time
// and left contracting it only as far as needed to restore an invariant.
//
// What:
//
//   - LongestAtMostKDistinct        longest substring with ≤ k distinct symbols.
//   - LongestSpan                   same, returning where the window sits.
//   - LongestAtMostKDistinctSlice   same over any []T of comparable symbols.
//   - LongestWithoutRepeats         longest substring with no repeated symbol.
//
// Symbols of a string are UTF-8 code points; lengths and spans count symbols,
// not bytes.
//
// The window contents are tracked by a frequency map plus a distinct-count
// scalar updated incrementally on every move, so no step rescans the
// alphabet. The counter is built fresh for every call.
//
// Complexity: O(n) time (each bound moves at most n times), O(min(n, σ))
// memory where σ is the alphabet size.
//
// Errors:
//
//   - ErrNegativeBound: k < 0. Also matches core.ErrInvalidArgument.
package window
