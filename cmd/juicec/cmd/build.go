package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jtlang/juicec/internal/driver"
	"github.com/jtlang/juicec/internal/irgen"
)

var (
	buildOutput string
	buildTarget string
)

var buildCmd = &cobra.Command{
	Use:   "build <file>",
	Short: "Type-check and emit a native object file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := buildOutput
		if out == "" {
			out = moduleNameFor(args[0]) + ".o"
		}

		if driver.ShouldSkip(out, args[0]) {
			return nil
		}

		tm, _, diags, err := checkFile(args[0])
		if err != nil {
			return err
		}
		if tm == nil || diags.HadError() {
			return reportAndExit(diags)
		}

		g := irgen.Generate(tm, moduleNameFor(args[0]))
		defer g.Dispose()

		if err := g.EmitObject(out, buildTarget); err != nil {
			return fmt.Errorf("emitting object file: %w", err)
		}
		return reportAndExit(diags)
	},
}

func init() {
	rootCmd.AddCommand(buildCmd)
	buildCmd.Flags().StringVarP(&buildOutput, "output", "o", "", "object file path (default <name>.o)")
	buildCmd.Flags().StringVar(&buildTarget, "target", "", "override the target triple")
}
