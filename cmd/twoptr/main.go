// SPDX-License-Identifier: MIT

// Command twoptr runs the two-pointer scans from the command line.
//
//	twoptr pair '[2, 7, 11, 15]' --target 9
//	twoptr water 0,1,0,2,1,0,1,3,2,1,2,1
//	twoptr window eceba --k 2 --output yaml
//
// Sequences are YAML flow sequences; results are printed as JSON or YAML.
// The exit status is 2 for invalid arguments and 1 for any other failure.
package main

import (
	"errors"
	"os"

	"github.com/katalvlaran/twopointers/core"
)

func main() {
	root := newRootCmd(os.Stdout, os.Stderr)
	if err := root.Execute(); err != nil {
		if errors.Is(err, core.ErrInvalidArgument) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}
