// SPDX-License-Identifier: MIT

// Package core holds the small set of types shared by every two-pointer
// package in github.com/katalvlaran/twopointers.
//
// What:
//
//   - Number and Ordered constrain the element types the algorithms accept.
//   - Pair is an (Left, Right) index pair produced by opposite-direction scans.
//   - Span is a half-open [Start, End) window produced by sliding-window scans.
//   - ErrInvalidArgument is the root sentinel for every shape violation.
//
// Errors:
//
//   - ErrInvalidArgument: a documented precondition on the input shape was
//     violated (too few elements, negative bound, ...). Package sentinels such
//     as converge.ErrTooFewHeights wrap it, so both match with errors.Is.
//
// Nothing in core carries state between calls.
package core
