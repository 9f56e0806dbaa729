// SPDX-License-Identifier: MIT

// Package compact implements same-direction (fast/slow) two-pointer scans
// that rewrite a slice in place.
//
// fast visits every position exactly once; slow is the write cursor and
// advances only when the element under fast qualifies. Invariant:
// 0 ≤ slow ≤ fast < len(s). The slice length never changes; the functions
// return the new logical length and the tail beyond it is stale.
//
// In place (O(1) auxiliary, caller holds exclusive access):
//
//   - CompactDuplicates, CompactDuplicatesFunc  unique run of a sorted slice.
//   - CompactAtMost                             keep at most k of each run.
//   - RelocateZeros                             stable non-zeros first, zeros last.
//   - FilterValue, FilterFunc                   drop matching elements.
//
// Copying (O(n) auxiliary, input untouched):
//
//   - Compacted, Relocated, Filtered return a fresh slice holding the result.
//
// Preconditions that are not checked: CompactDuplicates, CompactDuplicatesFunc
// and CompactAtMost expect equal values to be adjacent (sorted input).
//
// Errors:
//
//   - ErrBadLimit: CompactAtMost with k < 1. Also matches core.ErrInvalidArgument.
package compact
