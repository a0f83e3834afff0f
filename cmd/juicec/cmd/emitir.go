package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jtlang/juicec/internal/irgen"
)

var emitIROutput string

var emitIRCmd = &cobra.Command{
	Use:   "emit-ir <file>",
	Short: "Type-check and print textual LLVM IR for a source file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		tm, _, diags, err := checkFile(args[0])
		if err != nil {
			return err
		}
		if tm == nil || diags.HadError() {
			return reportAndExit(diags)
		}

		g := irgen.Generate(tm, moduleNameFor(args[0]))
		defer g.Dispose()

		if emitIROutput == "" || emitIROutput == "-" {
			fmt.Print(g.String())
		} else if err := os.WriteFile(emitIROutput, []byte(g.String()), 0644); err != nil {
			return fmt.Errorf("writing %q: %w", emitIROutput, err)
		}
		return reportAndExit(diags)
	},
}

func init() {
	rootCmd.AddCommand(emitIRCmd)
	emitIRCmd.Flags().StringVarP(&emitIROutput, "output", "o", "", "write IR to this file instead of stdout")
}
