// SPDX-License-Identifier: MIT

package seqgen

import "github.com/katalvlaran/twopointers/core"

// Text returns n symbols drawn uniformly from the configured alphabet.
func Text(n int, opts ...Option) (string, error) {
	if n < 0 {
		return "", core.InvalidArgumentf(methodText, ErrBadSize, "n=%d", n)
	}
	cfg := newConfig(opts...)
	out := make([]rune, n)
	for i := range out {
		out[i] = cfg.alphabet[cfg.rng.Intn(len(cfg.alphabet))]
	}

	return string(out), nil
}

// Palindrome returns n symbols reading the same in both directions.
// The first half is random; the second half mirrors it.
func Palindrome(n int, opts ...Option) (string, error) {
	if n < 0 {
		return "", core.InvalidArgumentf(methodPalindrome, ErrBadSize, "n=%d", n)
	}
	cfg := newConfig(opts...)
	out := make([]rune, n)
	for l, r := 0, n-1; l <= r; l, r = l+1, r-1 {
		sym := cfg.alphabet[cfg.rng.Intn(len(cfg.alphabet))]
		out[l], out[r] = sym, sym
	}

	return string(out), nil
}
