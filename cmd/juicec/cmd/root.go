package cmd

import (
	"github.com/spf13/cobra"
)

var (
	// Version information, set by build flags.
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// colorMode is the --color tri-state flag: "auto", "always", or "never".
var colorMode string

var rootCmd = &cobra.Command{
	Use:     "juicec",
	Short:   "Compiler for the juice source language",
	Version: Version,
	Long: `juicec lexes, parses, type-checks and compiles juice source files
down to an LLVM-backed object file or executable.

Each pipeline stage is individually inspectable through its own
subcommand: dump-tokens, dump-ast, dump-typed-ast, emit-ir, build, and run.`,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&colorMode, "color", "auto", "diagnostic coloring: auto, always, never")
}
