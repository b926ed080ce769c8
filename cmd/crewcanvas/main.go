package main

import (
	"fmt"
	"os"

	"github.com/crewstudio/crewcanvas/pkg/cli"
)

// main is the entry point for the crewcanvas CLI.
func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
