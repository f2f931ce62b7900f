// Package main is the entry point for the quantify CLI.
package main

import (
	"os"

	"quantify/cmd/cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
