// SPDX-License-Identifier: MIT

package window_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/twopointers/core"
	"github.com/katalvlaran/twopointers/window"
)

func TestLongestAtMostKDistinct(t *testing.T) {
	cases := []struct {
		name string
		s    string
		k    int
		want int
	}{
		{"Classic", "eceba", 2, 3},
		{"Repeated", "aa", 1, 2},
		{"TailRun", "abaccc", 2, 4},
		{"WholeString", "abcabc", 3, 6},
		{"BoundAboveAlphabet", "abc", 10, 3},
		{"KZero", "abc", 0, 0},
		{"KZeroEmpty", "", 0, 0},
		{"Empty", "", 2, 0},
		{"OneDistinct", "aabbbcc", 1, 3},
		{"Unicode", "ééàéb", 2, 4},
		{"CJK", "日本日本語", 2, 4},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := window.LongestAtMostKDistinct(tc.s, tc.k)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestLongestAtMostKDistinct_NegativeBound(t *testing.T) {
	_, err := window.LongestAtMostKDistinct("abc", -1)
	assert.ErrorIs(t, err, window.ErrNegativeBound)
	assert.ErrorIs(t, err, core.ErrInvalidArgument)
	assert.True(t, strings.HasPrefix(err.Error(), "LongestAtMostKDistinct: "), err.Error())

	_, err = window.LongestSpan("abc", -3)
	assert.ErrorIs(t, err, window.ErrNegativeBound)
	assert.True(t, strings.HasPrefix(err.Error(), "LongestSpan: "), err.Error())

	_, _, err = window.LongestAtMostKDistinctSlice([]int{1}, -1)
	assert.ErrorIs(t, err, window.ErrNegativeBound)
	assert.ErrorIs(t, err, core.ErrInvalidArgument)
}

func TestLongestSpan(t *testing.T) {
	span, err := window.LongestSpan("eceba", 2)
	require.NoError(t, err)
	assert.Equal(t, core.Span{Start: 0, End: 3}, span)

	span, err = window.LongestSpan("abaccc", 2)
	require.NoError(t, err)
	assert.Equal(t, core.Span{Start: 2, End: 6}, span)

	// Positions count symbols, not bytes.
	span, err = window.LongestSpan("xyéé", 1)
	require.NoError(t, err)
	assert.Equal(t, core.Span{Start: 2, End: 4}, span)

	span, err = window.LongestSpan("abc", 0)
	require.NoError(t, err)
	assert.True(t, span.Empty())
}

func TestLongestAtMostKDistinctSlice(t *testing.T) {
	n, span, err := window.LongestAtMostKDistinctSlice([]int{1, 2, 1, 2, 3}, 2)
	require.NoError(t, err)
	assert.Equal(t, 4, n)
	assert.Equal(t, core.Span{Start: 0, End: 4}, span)

	n, _, err = window.LongestAtMostKDistinctSlice([]string{"GET", "GET", "PUT", "GET", "DELETE"}, 1)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	n, span, err = window.LongestAtMostKDistinctSlice[int](nil, 3)
	require.NoError(t, err)
	assert.Zero(t, n)
	assert.True(t, span.Empty())
}

func TestLongestWithoutRepeats(t *testing.T) {
	cases := []struct {
		s    string
		want int
	}{
		{"abcabcbb", 3},
		{"bbbbb", 1},
		{"pwwkew", 3},
		{"", 0},
		{"a", 1},
		{"dvdf", 3},
		{"abba", 2},
		{"日本日本語", 3},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, window.LongestWithoutRepeats(tc.s), "LongestWithoutRepeats(%q)", tc.s)
	}
}
