// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/mecaneer23/todo/internal/config"
	"github.com/mecaneer23/todo/internal/store"
	"github.com/mecaneer23/todo/internal/todo"
)

// entryColors maps entry colors to fatih/color printers for the CLI.
var entryColors = map[todo.Color]*color.Color{
	todo.Red:     color.New(color.FgRed),
	todo.Green:   color.New(color.FgGreen),
	todo.Yellow:  color.New(color.FgYellow),
	todo.Blue:    color.New(color.FgBlue),
	todo.Magenta: color.New(color.FgMagenta),
	todo.Cyan:    color.New(color.FgCyan),
	todo.White:   color.New(color.FgWhite),
}

var flagFile string

// resolveListFile picks the target file: positional argument, --file flag,
// then the configured default.
func resolveListFile(positional string) (string, error) {
	if positional != "" {
		return config.ResolvePath(positional)
	}
	if flagFile != "" {
		return config.ResolvePath(flagFile)
	}
	cfg, err := config.LoadConfig()
	if err != nil {
		return "", err
	}
	return config.ResolvePath(cfg.File)
}

func loadListOrExit(positional string) (string, *todo.List) {
	filename, err := resolveListFile(positional)
	if err != nil {
		errorColor.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	list, err := store.Load(filename)
	if err != nil {
		errorColor.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return filename, list
}

func saveListOrExit(filename string, list *todo.List) {
	if err := store.Save(filename, list); err != nil {
		errorColor.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var listCmd = &cobra.Command{
	Use:     "list [file]",
	Aliases: []string{"ls"},
	Short:   "Print the list with checkboxes and colors",
	Args:    cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		positional := ""
		if len(args) == 1 {
			positional = args[0]
		}
		filename, list := loadListOrExit(positional)

		if list.Len() == 0 {
			fmt.Printf("%s is empty.\n", filename)
			return
		}
		headerColor.Println(filename)
		for i, e := range list.Entries() {
			printer, ok := entryColors[e.Color]
			if !ok {
				printer = entryColors[todo.White]
			}
			fmt.Printf("%3d  %s", i+1, strings.Repeat(" ", e.Indent))
			printer.Println(e.SimpleBox() + e.Text)
		}
	},
}

var addCmd = &cobra.Command{
	Use:     "add <text>...",
	Short:   "Append an entry to the list",
	Example: "  todo add buy milk\n  todo add -f work.txt review the schedule",
	Args:    cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		filename, list := loadListOrExit("")
		entry := todo.NewEntry(strings.Join(args, " "))
		list.Append(entry)
		saveListOrExit(filename, list)
		successColor.Printf("Added entry %d: %s\n", list.Len(), entry.Text)
	},
}

var doneCmd = &cobra.Command{
	Use:     "done <n>",
	Short:   "Toggle completion of entry n (1-based, see 'todo list')",
	Example: "  todo done 3\n  todo done -f work.txt 1",
	Args:    cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		n, err := strconv.Atoi(args[0])
		if err != nil || n < 1 {
			errorColor.Fprintf(os.Stderr, "Error: invalid entry number %q\n", args[0])
			os.Exit(1)
		}
		filename, list := loadListOrExit("")
		if n > list.Len() {
			errorColor.Fprintf(os.Stderr, "Error: entry %d does not exist (%d entries)\n", n, list.Len())
			os.Exit(1)
		}
		if !list.At(n - 1).HasBox() {
			errorColor.Fprintf(os.Stderr, "Error: entry %d is a note and has no checkbox\n", n)
			os.Exit(1)
		}
		list.Toggle(n - 1)
		saveListOrExit(filename, list)
		e := list.At(n - 1)
		successColor.Printf("%s%s\n", e.SimpleBox(), e.Text)
	},
}

func init() {
	for _, cmd := range []*cobra.Command{listCmd, addCmd, doneCmd} {
		cmd.Flags().StringVarP(&flagFile, "file", "f", "", "list file (default from config)")
	}
}
