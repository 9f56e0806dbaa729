// SPDX-License-Identifier: MIT

// Package twopointers is a small library of linear scans over ordered
// sequences that use two movable indices instead of nested loops.
//
// What is in here?
//
//	Three algorithm families, one package each:
//		• converge/: opposite-direction scans: pair sum, palindrome,
//		              container area, trapped rain water, triplets, pivot partition
//		• compact/ : same-direction fast/slow scans: duplicate compaction,
//		              zero relocation, value filtering
//		• window/  : sliding window: longest substring with ≤ k distinct symbols
//
//	Plus:
//		• core/    : shared constraints (Number, Ordered), Pair, Span, ErrInvalidArgument
//		• seqgen/  : deterministic fixture generator for tests and benchmarks
//		• cmd/twoptr: command-line wrapper exposing every scan as a subcommand
//
// Guarantees
//
//   - Every scan is a single synchronous pass: no goroutines, no I/O, no state
//     kept between calls.
//   - O(n) time for everything except triplets (O(n²)); O(1) auxiliary memory
//     for in-place scans, O(k) or O(n) where documented.
//   - Shape violations return an error matching core.ErrInvalidArgument;
//     order preconditions (sorted input) are the caller's obligation and are
//     never checked.
//   - Mutating functions need exclusive access to their slice for the call;
//     read-only functions are safe to call concurrently.
//
// Quick example:
//
//	p, ok := converge.PairWithSum([]int{2, 7, 11, 15}, 9) // (0,1) true
//	n := compact.CompactDuplicates(s)                      // s[:n] unique
//	l, _ := window.LongestAtMostKDistinct("eceba", 2)      // 3
//
//	go get github.com/katalvlaran/twopointers
package twopointers
