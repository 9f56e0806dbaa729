// SPDX-License-Identifier: MIT

package core

import (
	"errors"
	"fmt"

	"golang.org/x/exp/constraints"
)

// ErrInvalidArgument indicates that a documented precondition on the shape
// of an input was violated and cannot be tolerated silently.
var ErrInvalidArgument = errors.New("core: invalid argument")

// Number is the element constraint for arithmetic scans (sums, areas, volumes).
type Number interface {
	constraints.Integer | constraints.Float
}

// Ordered is the element constraint for comparison-only scans (partitioning).
type Ordered interface {
	constraints.Ordered
}

// Pair is a pair of positions into one sequence, Left ≤ Right.
type Pair struct {
	Left  int
	Right int
}

// String renders the pair as "(left,right)".
func (p Pair) String() string {
	return fmt.Sprintf("(%d,%d)", p.Left, p.Right)
}

// Width returns Right − Left.
func (p Pair) Width() int {
	return p.Right - p.Left
}

// Span is a half-open window [Start, End) over a sequence of symbols.
type Span struct {
	Start int
	End   int
}

// Len returns the number of symbols covered by the span.
func (s Span) Len() int {
	return s.End - s.Start
}

// Empty reports whether the span covers no symbol.
func (s Span) Empty() bool {
	return s.End <= s.Start
}

// InvalidArgumentf builds an error that matches both sentinel and
// ErrInvalidArgument under errors.Is, prefixed with the calling method.
//
// Example:
//
//	return core.InvalidArgumentf("MaxContainerArea", ErrTooFewHeights, "got %d heights", n)
func InvalidArgumentf(method string, sentinel error, format string, args ...interface{}) error {
	inner := fmt.Sprintf(format, args...)
	switch {
	case sentinel == nil:
		sentinel = ErrInvalidArgument
	case !errors.Is(sentinel, ErrInvalidArgument):
		return fmt.Errorf("%s: %s: %w: %w", method, inner, sentinel, ErrInvalidArgument)
	}

	return fmt.Errorf("%s: %s: %w", method, inner, sentinel)
}
