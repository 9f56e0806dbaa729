// SPDX-License-Identifier: MIT

package converge

import "errors"

// ErrTooFewHeights indicates a container query on fewer than two heights.
var ErrTooFewHeights = errors.New("converge: at least two heights are required")

const (
	methodMaxContainerArea = "MaxContainerArea"
	methodMaxContainer     = "MaxContainer"
)
