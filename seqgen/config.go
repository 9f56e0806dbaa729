// SPDX-License-Identifier: MIT

package seqgen

import (
	"math"
	"math/rand"
)

// config aggregates every knob; passed by value once resolved.
type config struct {
	rng      *rand.Rand
	lo, hi   int
	alphabet []rune
}

const (
	defaultSeed     = int64(1)
	defaultLo       = -50
	defaultHi       = 50
	defaultAlphabet = "abc"
)

// newConfig applies opts in order over deterministic defaults.
func newConfig(opts ...Option) config {
	cfg := config{
		lo:       defaultLo,
		hi:       defaultHi,
		alphabet: []rune(defaultAlphabet),
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.rng == nil {
		cfg.rng = rand.New(rand.NewSource(defaultSeed))
	}

	return cfg
}

// intn draws uniformly from [lo, hi]. Widths that do not fit in int, up to
// the whole int range, are drawn in unsigned arithmetic.
func (c config) intn(lo, hi int) int {
	width := uint(hi) - uint(lo) + 1
	if width != 0 && width <= math.MaxInt {
		return lo + c.rng.Intn(int(width))
	}

	return int(uint(lo) + c.uintn(width))
}

// uintn draws uniformly from [0, n), or from every uint when n == 0.
func (c config) uintn(n uint) uint {
	if n == 0 {
		return uint(c.rng.Uint64())
	}
	// Reject the low values that would bias v % n.
	threshold := -n % n
	for {
		if v := uint(c.rng.Uint64()); v >= threshold {
			return v % n
		}
	}
}
