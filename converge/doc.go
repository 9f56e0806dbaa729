// SPDX-License-Identifier: MIT

// Package converge implements opposite-direction two-pointer scans: two
// indices start at the two ends of a sequence and move monotonically toward
// each other until they meet or cross.
//
// What:
//
//   - PairWithSum, PairsWithSum     pair(s) of a sorted slice adding up to a target.
//   - IsPalindrome, IsPalindromeFunc symmetry of a string ignoring non-alphanumerics.
//   - MaxContainerArea, MaxContainer largest width × min(height) between two boundaries.
//   - TrappedWater                   rain volume held between bars.
//   - ZeroSumTriplets, TripletsWithSum duplicate-free triplets adding up to a target.
//   - PartitionAroundPivot, PartitionThreeWay in-place split around a pivot value.
//
// Invariant:
//
//	0 ≤ left ≤ right < len(s) at every step; left only increases, right
//	only decreases. PartitionAroundPivot runs while left ≤ right, every other
//	scan stops as soon as left ≥ right.
//
// Preconditions that are not checked:
//
//   - PairWithSum / PairsWithSum need s sorted in non-decreasing order;
//     unsorted input gives an unspecified (but non-panicking) result.
//   - Heights are expected to be non-negative.
//   - Integer sums may overflow T exactly as the + operator does. For
//     unsigned T, TripletsWithSum and ZeroSumTriplets therefore match sums
//     modulo 2^bits: ZeroSumTriplets([]uint8{255, 1, 0}) reports {0, 1, 255}.
//
// Complexity:
//
//   - ZeroSumTriplets / TripletsWithSum: O(n²) time, O(n) auxiliary (sorted copy).
//   - Everything else: O(n) time, O(1) auxiliary.
//
// Errors:
//
//   - ErrTooFewHeights: MaxContainerArea / MaxContainer got fewer than two
//     heights. Also matches core.ErrInvalidArgument.
//
// Mutation: only PartitionAroundPivot and PartitionThreeWay write to their
// input, and the caller must hold exclusive access for the call.
package converge
