// SPDX-License-Identifier: MIT

package main

import (
	"io"
	"log/slog"

	"github.com/spf13/cobra"
)

// app carries the resolved configuration and outputs shared by subcommands.
type app struct {
	cfgPath  string
	output   string
	logLevel string

	cfg    Config
	log    *slog.Logger
	stdout io.Writer
	stderr io.Writer
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	a := &app{stdout: stdout, stderr: stderr}

	root := &cobra.Command{
		Use:           "twoptr",
		Short:         "Two-pointer scans over sequences and strings",
		Long:          `twoptr exposes pair search, palindrome checks, container and rainwater volumes, triplet search, partitioning, in-place compaction and sliding-window scans as subcommands.`,
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	pf := root.PersistentFlags()
	pf.StringVar(&a.cfgPath, "config", "", "YAML config file")
	pf.StringVarP(&a.output, "output", "o", "", "result encoding: json or yaml")
	pf.StringVar(&a.logLevel, "log-level", "", "debug, info, warn or error")

	root.AddCommand(
		a.pairCmd(),
		a.palindromeCmd(),
		a.containerCmd(),
		a.waterCmd(),
		a.tripletsCmd(),
		a.partitionCmd(),
		a.compactCmd(),
		a.zerosCmd(),
		a.filterCmd(),
		a.windowCmd(),
		a.genCmd(),
	)

	return root
}

// setup resolves the config (file, environment, then flags) and builds the logger.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := loadConfig(a.cfgPath)
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("output") {
		cfg.Output = a.output
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = a.logLevel
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg
	a.log = slog.New(slog.NewTextHandler(a.stderr, &slog.HandlerOptions{Level: cfg.slogLevel()}))
	a.log.Debug("config resolved", "output", cfg.Output, "log_level", cfg.LogLevel, "file", a.cfgPath)

	return nil
}

func (a *app) render(v interface{}) error {
	return render(a.stdout, a.cfg.Output, v)
}
