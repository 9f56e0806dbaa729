// SPDX-License-Identifier: MIT

package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/twopointers/core"
	"github.com/katalvlaran/twopointers/seqgen"
)

func (a *app) genCmd() *cobra.Command {
	var (
		n        int
		seed     int64
		lo, hi   int
		alphabet string
	)
	cmd := &cobra.Command{
		Use:       "gen KIND",
		Short:     "Emit a deterministic fixture: ints, sorted, heights, text or palindrome",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"ints", "sorted", "heights", "text", "palindrome"},
		RunE: func(_ *cobra.Command, args []string) error {
			if lo > hi {
				return core.InvalidArgumentf("gen", nil, "lo=%d > hi=%d", lo, hi)
			}
			if alphabet == "" {
				return core.InvalidArgumentf("gen", nil, "empty alphabet")
			}
			opts := []seqgen.Option{seqgen.WithSeed(seed), seqgen.WithRange(lo, hi), seqgen.WithAlphabet(alphabet)}
			a.log.Debug("gen", "kind", args[0], "n", n, "seed", seed)

			res := genResult{Kind: args[0]}
			var err error
			switch args[0] {
			case "ints":
				res.Sequence, err = seqgen.Ints(n, opts...)
			case "sorted":
				res.Sequence, err = seqgen.SortedInts(n, opts...)
			case "heights":
				res.Sequence, err = seqgen.Heights(n, opts...)
			case "text":
				res.Text, err = seqgen.Text(n, opts...)
			case "palindrome":
				res.Text, err = seqgen.Palindrome(n, opts...)
			default:
				return core.InvalidArgumentf("gen", nil, "unknown kind %q", args[0])
			}
			if err != nil {
				return err
			}

			return a.render(res)
		},
	}
	f := cmd.Flags()
	f.IntVar(&n, "n", 10, "length")
	f.Int64Var(&seed, "seed", 1, "RNG seed")
	f.IntVar(&lo, "lo", -50, "smallest value")
	f.IntVar(&hi, "hi", 50, "largest value")
	f.StringVar(&alphabet, "alphabet", "abc", "symbols for text kinds")

	return cmd
}
