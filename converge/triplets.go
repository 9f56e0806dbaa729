// SPDX-License-Identifier: MIT

package converge

import (
	"slices"

	"github.com/katalvlaran/twopointers/core"
)

// Triplet holds three values in ascending order.
type Triplet[T core.Number] [3]T

// Sum returns t[0] + t[1] + t[2].
func (t Triplet[T]) Sum() T {
	return t[0] + t[1] + t[2]
}

// ZeroSumTriplets returns every distinct value triplet of s summing to zero.
// See TripletsWithSum.
func ZeroSumTriplets[T core.Number](s []T) []Triplet[T] {
	return TripletsWithSum(s, 0)
}

// TripletsWithSum returns every distinct value triplet a ≤ b ≤ c drawn from
// three different positions of s with a + b + c == target.
//
// s is copied and the copy sorted; the caller's slice is left untouched. An
// outer index fixes a, skipping values equal to its predecessor, and an inner
// opposite-direction scan finds (b, c), skipping runs of equal values after
// each match. No value triplet is reported twice, even when duplicate inputs
// allow several position combinations. Results are in ascending lexicographic
// order.
//
// Sums are computed in T: for unsigned T they wrap, so a triplet matches when
// its sum equals target modulo 2^bits.
//
// Time O(n²), memory O(n) for the sorted copy excluding the result.
func TripletsWithSum[T core.Number](s []T, target T) []Triplet[T] {
	n := len(s)
	if n < 3 {
		return nil
	}
	sorted := make([]T, n)
	copy(sorted, s)
	slices.Sort(sorted)

	var (
		out   []Triplet[T]
		pairs []core.Pair
	)
	for i := 0; i < n-2; i++ {
		if i > 0 && sorted[i] == sorted[i-1] {
			continue
		}
		pairs = appendPairs(pairs[:0], sorted, i+1, n-1, target-sorted[i])
		for _, p := range pairs {
			out = append(out, Triplet[T]{sorted[i], sorted[p.Left], sorted[p.Right]})
		}
	}

	return out
}
