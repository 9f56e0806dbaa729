// SPDX-License-Identifier: MIT

package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/twopointers/compact"
	"github.com/katalvlaran/twopointers/converge"
	"github.com/katalvlaran/twopointers/window"
)

func (a *app) pairCmd() *cobra.Command {
	var target float64
	cmd := &cobra.Command{
		Use:   "pair SORTED",
		Short: "Find two entries of a sorted sequence adding up to --target",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			s, err := parseNumbers(args[0])
			if err != nil {
				return err
			}
			a.log.Debug("pair", "n", len(s), "target", target)
			p, ok := converge.PairWithSum(s, target)

			return a.render(pairResult{Found: ok, Left: p.Left, Right: p.Right})
		},
	}
	cmd.Flags().Float64Var(&target, "target", 0, "sum to look for")

	return cmd
}

func (a *app) palindromeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "palindrome TEXT",
		Short: "Check whether TEXT is a palindrome ignoring case and non-alphanumerics",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			a.log.Debug("palindrome", "bytes", len(args[0]))

			return a.render(palindromeResult{Palindrome: converge.IsPalindrome(args[0])})
		},
	}
}

func (a *app) containerCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "container HEIGHTS",
		Short: "Largest area between two boundaries",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			h, err := parseNumbers(args[0])
			if err != nil {
				return err
			}
			a.log.Debug("container", "n", len(h))
			p, area, err := converge.MaxContainer(h)
			if err != nil {
				return err
			}

			return a.render(containerResult{Area: area, Left: p.Left, Right: p.Right})
		},
	}
}

func (a *app) waterCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "water HEIGHTS",
		Short: "Volume of rain trapped between bars",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			h, err := parseNumbers(args[0])
			if err != nil {
				return err
			}
			a.log.Debug("water", "n", len(h))

			return a.render(waterResult{Volume: converge.TrappedWater(h)})
		},
	}
}

func (a *app) tripletsCmd() *cobra.Command {
	var target float64
	cmd := &cobra.Command{
		Use:   "triplets SEQUENCE",
		Short: "Distinct triplets adding up to --target (default 0)",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			s, err := parseNumbers(args[0])
			if err != nil {
				return err
			}
			a.log.Debug("triplets", "n", len(s), "target", target)
			found := converge.TripletsWithSum(s, target)
			out := make([][3]float64, len(found))
			for i, tr := range found {
				out[i] = tr
			}

			return a.render(tripletsResult{Triplets: out})
		},
	}
	cmd.Flags().Float64Var(&target, "target", 0, "sum to look for")

	return cmd
}

func (a *app) partitionCmd() *cobra.Command {
	var pivot float64
	var threeWay bool
	cmd := &cobra.Command{
		Use:   "partition SEQUENCE",
		Short: "Move entries below --pivot in front of the rest",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			s, err := parseNumbers(args[0])
			if err != nil {
				return err
			}
			a.log.Debug("partition", "n", len(s), "pivot", pivot, "three_way", threeWay)
			var boundary int
			if threeWay {
				boundary, _ = converge.PartitionThreeWay(s, pivot)
			} else {
				boundary = converge.PartitionAroundPivot(s, pivot)
			}

			return a.render(partitionResult{Boundary: boundary, Sequence: s})
		},
	}
	cmd.Flags().Float64Var(&pivot, "pivot", 0, "pivot value")
	cmd.Flags().BoolVar(&threeWay, "three-way", false, "also group entries equal to the pivot")

	return cmd
}

func (a *app) compactCmd() *cobra.Command {
	var atMost int
	cmd := &cobra.Command{
		Use:   "compact SORTED",
		Short: "Drop repeated values of a sorted sequence",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := parseNumbers(args[0])
			if err != nil {
				return err
			}
			a.log.Debug("compact", "n", len(s), "at_most", atMost)
			n := 0
			if cmd.Flags().Changed("at-most") {
				if n, err = compact.CompactAtMost(s, atMost); err != nil {
					return err
				}
			} else {
				n = compact.CompactDuplicates(s)
			}

			return a.render(compactResult{Count: n, Unique: s[:n]})
		},
	}
	cmd.Flags().IntVar(&atMost, "at-most", 1, "keep at most this many copies of each value")

	return cmd
}

func (a *app) zerosCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "zeros SEQUENCE",
		Short: "Move zeros to the end keeping the order of the other entries",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			s, err := parseNumbers(args[0])
			if err != nil {
				return err
			}
			a.log.Debug("zeros", "n", len(s))
			compact.RelocateZeros(s)

			return a.render(sequenceResult{Sequence: s})
		},
	}
}

func (a *app) filterCmd() *cobra.Command {
	var value float64
	cmd := &cobra.Command{
		Use:   "filter SEQUENCE",
		Short: "Remove every occurrence of --value",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			s, err := parseNumbers(args[0])
			if err != nil {
				return err
			}
			a.log.Debug("filter", "n", len(s), "value", value)
			n := compact.FilterValue(s, value)

			return a.render(filterResult{Length: n, Sequence: s[:n]})
		},
	}
	cmd.Flags().Float64Var(&value, "value", 0, "value to remove")

	return cmd
}

func (a *app) windowCmd() *cobra.Command {
	var k int
	var unique bool
	cmd := &cobra.Command{
		Use:   "window TEXT",
		Short: "Longest substring with at most --k distinct symbols",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			a.log.Debug("window", "bytes", len(args[0]), "k", k, "unique", unique)
			if unique {
				n := window.LongestWithoutRepeats(args[0])

				return a.render(windowResult{Length: n})
			}
			span, err := window.LongestSpan(args[0], k)
			if err != nil {
				return err
			}

			return a.render(windowResult{Length: span.Len(), Start: span.Start, End: span.End})
		},
	}
	cmd.Flags().IntVar(&k, "k", 2, "distinct symbol bound")
	cmd.Flags().BoolVar(&unique, "unique", false, "longest substring without repeated symbols instead")

	return cmd
}
