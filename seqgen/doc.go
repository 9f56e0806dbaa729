// SPDX-License-Identifier: MIT

// Package seqgen builds deterministic input sequences for the two-pointer
// packages: random integer runs, sorted runs, height profiles and text.
//
// What:
//
//   - Ints, SortedInts, Heights return []int of a requested length.
//   - Text and Palindrome return strings drawn from a configurable alphabet.
//
// Why:
//
//   - Property tests compare every scan against a brute-force reference on
//     many generated inputs; the inputs must be reproducible per seed.
//   - Benchmarks need large inputs without fixture files.
//
// Options:
//
//   - WithSeed(seed)       deterministic RNG from a seed (default seed 1).
//   - WithRand(r)          caller-owned RNG, shared across calls.
//   - WithRange(lo, hi)    inclusive value range for integer generators.
//   - WithAlphabet(a)      symbols used by Text and Palindrome.
//
// Option constructors panic on meaningless input (nil RNG, lo > hi, empty
// alphabet). Generators never panic; they return ErrBadSize or
// ErrOptionViolation, both of which also match core.ErrInvalidArgument.
//
// Complexity: every generator is O(n) time and O(n) memory, SortedInts is
// O(n log n).
package seqgen
