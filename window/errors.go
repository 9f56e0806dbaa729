// SPDX-License-Identifier: MIT

package window

import "errors"

// ErrNegativeBound indicates a negative distinct-symbol bound.
var ErrNegativeBound = errors.New("window: distinct bound must be non-negative")

const (
	methodLongestAtMostK   = "LongestAtMostKDistinct"
	methodLongestSpan      = "LongestSpan"
	methodLongestSpanSlice = "LongestAtMostKDistinctSlice"
)
