package cmd

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/spf13/cobra"

	"github.com/jtlang/juicec/internal/driver"
	"github.com/jtlang/juicec/internal/irgen"
	"github.com/jtlang/juicec/internal/link"
)

var (
	runOutput string
	runLinker string
)

var runCmd = &cobra.Command{
	Use:   "run <file>",
	Short: "Compile a source file to an executable and run it",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := moduleNameFor(args[0])
		objPath := name + ".o"
		exePath := runOutput
		if exePath == "" {
			exePath = name
		}

		if !driver.ShouldSkip(objPath, args[0]) {
			tm, _, diags, err := checkFile(args[0])
			if err != nil {
				return err
			}
			if tm == nil || diags.HadError() {
				return reportAndExit(diags)
			}

			g := irgen.Generate(tm, name)
			defer g.Dispose()

			if err := g.EmitObject(objPath, ""); err != nil {
				return fmt.Errorf("emitting object file: %w", err)
			}
			if err := reportAndExit(diags); err != nil {
				return err
			}
		}

		opts := link.Options{Linker: runLinker, SDKPath: link.MacOSSDKPath()}
		if err := link.Link(objPath, exePath, opts); err != nil {
			return err
		}

		bin, err := exec.LookPath(exePath)
		if err != nil {
			bin = "./" + exePath
		}
		c := exec.Command(bin)
		c.Stdout = os.Stdout
		c.Stderr = os.Stderr
		c.Stdin = os.Stdin
		return c.Run()
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().StringVarP(&runOutput, "output", "o", "", "executable path (default <name>)")
	runCmd.Flags().StringVar(&runLinker, "linker", "", "linker binary to invoke (default cc)")
}
