package main

import (
	"os"

	"github.com/mecaneer23/todo/cmd/cli"
	"github.com/mecaneer23/todo/cmd/tui"
)

func main() {
	// If no arguments (or just the program name) are provided, run the TUI
	// with configured defaults. Otherwise, run the CLI (which will handle
	// the arguments, including launching the TUI on a specific file).
	if len(os.Args) <= 1 {
		tui.RunTUI()
	} else {
		cli.RunCLI()
	}
}
