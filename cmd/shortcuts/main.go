// Package main is the entry point for the shortcuts CLI.
package main

import (
	"fmt"
	"os"

	"shortcuts/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
