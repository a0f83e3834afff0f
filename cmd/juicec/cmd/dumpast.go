package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jtlang/juicec/internal/ast"
)

var dumpASTCmd = &cobra.Command{
	Use:   "dump-ast <file>",
	Short: "Print the untyped syntax tree for a source file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		mod, buf, diags, err := parseFile(args[0])
		if err != nil {
			return err
		}
		fmt.Print(ast.Dump(mod, buf))
		return reportAndExit(diags)
	},
}

func init() {
	rootCmd.AddCommand(dumpASTCmd)
}
