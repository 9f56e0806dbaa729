// SPDX-License-Identifier: MIT

package main

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// render writes v to w in the configured encoding.
func render(w io.Writer, format string, v interface{}) error {
	switch format {
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}

		return enc.Close()
	default:
		enc := json.NewEncoder(w)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("encode json: %w", err)
		}

		return nil
	}
}

type pairResult struct {
	Found bool `json:"found" yaml:"found"`
	Left  int  `json:"left" yaml:"left"`
	Right int  `json:"right" yaml:"right"`
}

type palindromeResult struct {
	Palindrome bool `json:"palindrome" yaml:"palindrome"`
}

type containerResult struct {
	Area  float64 `json:"area" yaml:"area"`
	Left  int     `json:"left" yaml:"left"`
	Right int     `json:"right" yaml:"right"`
}

type waterResult struct {
	Volume float64 `json:"volume" yaml:"volume"`
}

type tripletsResult struct {
	Triplets [][3]float64 `json:"triplets" yaml:"triplets"`
}

type partitionResult struct {
	Boundary int       `json:"boundary" yaml:"boundary"`
	Sequence []float64 `json:"sequence" yaml:"sequence"`
}

type compactResult struct {
	Count  int       `json:"count" yaml:"count"`
	Unique []float64 `json:"unique" yaml:"unique"`
}

type sequenceResult struct {
	Sequence []float64 `json:"sequence" yaml:"sequence"`
}

type filterResult struct {
	Length   int       `json:"length" yaml:"length"`
	Sequence []float64 `json:"sequence" yaml:"sequence"`
}

type windowResult struct {
	Length int `json:"length" yaml:"length"`
	Start  int `json:"start" yaml:"start"`
	End    int `json:"end" yaml:"end"`
}

type genResult struct {
	Kind     string `json:"kind" yaml:"kind"`
	Sequence []int  `json:"sequence,omitempty" yaml:"sequence,omitempty"`
	Text     string `json:"text,omitempty" yaml:"text,omitempty"`
}
