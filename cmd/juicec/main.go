package main

import (
	"os"

	"github.com/jtlang/juicec/cmd/juicec/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
