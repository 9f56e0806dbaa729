// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/twopointers/core"
)

// parseNumbers decodes a YAML flow sequence such as "[2, 7, 11, 15]". The
// brackets may be omitted: "2,7,11,15" is read the same way. An empty
// argument is the empty sequence. A malformed argument matches
// core.ErrInvalidArgument.
func parseNumbers(arg string) ([]float64, error) {
	arg = strings.TrimSpace(arg)
	if arg == "" {
		return []float64{}, nil
	}
	if !strings.HasPrefix(arg, "[") {
		arg = "[" + arg + "]"
	}
	var out []float64
	if err := yaml.Unmarshal([]byte(arg), &out); err != nil {
		return nil, fmt.Errorf("parse sequence %q: %w: %w", arg, err, core.ErrInvalidArgument)
	}
	if out == nil {
		out = []float64{}
	}

	return out, nil
}
