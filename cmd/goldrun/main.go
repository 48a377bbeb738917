package main

import (
	"errors"
	"fmt"
	"os"

	"goldrun/internal/cli"
	"goldrun/internal/cli/commands"
)

var version = "dev"

func main() {
	rootCmd := commands.NewRootCommand(version, os.Stdout, os.Stderr)

	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, cli.ErrExitFailure) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}
