package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// replCmd is a stub: an interactive REPL is out of scope for this
// compiler, per the juice C++ original's Driver/REPLDriver being named but
// not required to exist in full here.
var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Interactive REPL (not implemented)",
	RunE: func(cmd *cobra.Command, args []string) error {
		return fmt.Errorf("repl: not implemented")
	},
}

func init() {
	rootCmd.AddCommand(replCmd)
}
