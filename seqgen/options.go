// SPDX-License-Identifier: MIT

package seqgen

import "math/rand"

// Option customizes a generator by mutating a config before generation.
type Option func(*config)

// WithSeed seeds a private RNG; the same seed always yields the same output.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand uses r for every draw. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("seqgen: WithRand(nil)")
	}
	return func(c *config) {
		c.rng = r
	}
}

// WithRange sets the inclusive value range for integer generators.
// Panics if lo > hi.
func WithRange(lo, hi int) Option {
	if lo > hi {
		panic("seqgen: WithRange(lo > hi)")
	}
	return func(c *config) {
		c.lo, c.hi = lo, hi
	}
}

// WithAlphabet sets the symbols drawn by Text and Palindrome.
// Panics on an empty alphabet.
func WithAlphabet(alphabet string) Option {
	if alphabet == "" {
		panic("seqgen: WithAlphabet(\"\")")
	}
	return func(c *config) {
		c.alphabet = []rune(alphabet)
	}
}
