package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jtlang/juicec/internal/typedast"
)

// dumpTypedASTCmd exposes the typed AST named among the pipeline's
// producible outputs; it is distinct from dump-ast (the untyped tree) and
// only succeeds once type checking has, which dumpAST's action deliberately
// does not require.
var dumpTypedASTCmd = &cobra.Command{
	Use:   "dump-typed-ast <file>",
	Short: "Print the type-checked syntax tree for a source file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		tm, _, diags, err := checkFile(args[0])
		if err != nil {
			return err
		}
		if tm != nil {
			fmt.Print(typedast.Dump(tm))
		}
		return reportAndExit(diags)
	},
}

func init() {
	rootCmd.AddCommand(dumpTypedASTCmd)
}
