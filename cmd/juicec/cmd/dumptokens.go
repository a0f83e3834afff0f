package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jtlang/juicec/internal/diag"
)

var dumpTokensCmd = &cobra.Command{
	Use:   "dump-tokens <file>",
	Short: "Print the token stream for a source file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		buf, err := loadSource(args[0])
		if err != nil {
			return err
		}
		diags := diag.New(buf)
		for _, tok := range lexAll(buf, diags) {
			fmt.Printf("%-14s %q\n", tok.Kind, tok.Lexeme(buf))
		}
		return reportAndExit(diags)
	},
}

func init() {
	rootCmd.AddCommand(dumpTokensCmd)
}
