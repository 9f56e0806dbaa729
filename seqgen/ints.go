// SPDX-License-Identifier: MIT

package seqgen

import (
	"sort"

	"github.com/katalvlaran/twopointers/core"
)

// Ints returns n integers drawn uniformly from the configured range.
func Ints(n int, opts ...Option) ([]int, error) {
	if n < 0 {
		return nil, core.InvalidArgumentf(methodInts, ErrBadSize, "n=%d", n)
	}
	cfg := newConfig(opts...)

	return draw(cfg, n, cfg.lo, cfg.hi), nil
}

// SortedInts returns Ints(n) sorted in non-decreasing order, the input shape
// required by converge.PairWithSum and compact.CompactDuplicates.
func SortedInts(n int, opts ...Option) ([]int, error) {
	if n < 0 {
		return nil, core.InvalidArgumentf(methodSortedInts, ErrBadSize, "n=%d", n)
	}
	cfg := newConfig(opts...)
	out := draw(cfg, n, cfg.lo, cfg.hi)
	sort.Ints(out)

	return out, nil
}

// Heights returns n non-negative heights. The lower bound of the configured
// range is clamped to zero; a range entirely below zero is rejected.
func Heights(n int, opts ...Option) ([]int, error) {
	if n < 0 {
		return nil, core.InvalidArgumentf(methodHeights, ErrBadSize, "n=%d", n)
	}
	cfg := newConfig(opts...)
	if cfg.hi < 0 {
		return nil, core.InvalidArgumentf(methodHeights, ErrOptionViolation, "range [%d,%d] has no height", cfg.lo, cfg.hi)
	}
	lo := cfg.lo
	if lo < 0 {
		lo = 0
	}

	return draw(cfg, n, lo, cfg.hi), nil
}

func draw(cfg config, n, lo, hi int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = cfg.intn(lo, hi)
	}

	return out
}
