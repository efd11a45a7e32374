package main

import (
	"os"

	"github.com/pterm/pterm"

	"github.com/arthur-debert/boxes/internal/cli"
)

func main() {
	rootCmd := cli.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}
}
