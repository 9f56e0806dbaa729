// SPDX-License-Identifier: MIT

package compact

import "errors"

// ErrBadLimit indicates a run limit below one.
var ErrBadLimit = errors.New("compact: run limit must be at least 1")

const methodCompactAtMost = "CompactAtMost"
