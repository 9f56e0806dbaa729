// SPDX-License-Identifier: MIT

package compact

import "slices"

// FilterValue removes every occurrence of v from s in place and returns the
// new logical length n. s[:n] keeps the surviving elements in their original
// order; s[n:] is stale. Time O(n), memory O(1).
func FilterValue[T comparable](s []T, v T) int {
	return FilterFunc(s, func(x T) bool { return x != v })
}

// FilterFunc keeps, in order, the elements for which keep returns true and
// returns how many were kept. keep is called once per element.
func FilterFunc[T any](s []T, keep func(T) bool) int {
	slow := 0
	for fast := 0; fast < len(s); fast++ {
		if keep(s[fast]) {
			s[slow] = s[fast]
			slow++
		}
	}

	return slow
}

// Filtered returns a new slice holding s without any occurrence of v,
// leaving s untouched. Memory O(n).
func Filtered[T comparable](s []T, v T) []T {
	out := slices.Clone(s)
	n := FilterValue(out, v)

	return out[:n:n]
}
