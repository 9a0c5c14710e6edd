// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mecaneer23/todo/internal/config"
	"github.com/mecaneer23/todo/internal/logger"
	"github.com/mecaneer23/todo/internal/store"
	"github.com/mecaneer23/todo/internal/ui"
)

// RunTUI starts the interactive list on the configured defaults. It is the
// no-argument entry point.
func RunTUI() {
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(1)
	}

	opts, err := OptionsFromConfig(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	Run(opts)
}

// OptionsFromConfig resolves the configured file path and loads the list.
func OptionsFromConfig(cfg config.Config) (ui.Options, error) {
	filename, err := config.ResolvePath(cfg.File)
	if err != nil {
		return ui.Options{}, err
	}
	list, err := store.Load(filename)
	if err != nil {
		return ui.Options{}, err
	}
	return ui.Options{
		Filename:      filename,
		Header:        cfg.Header,
		Autosave:      cfg.Autosave,
		Strikethrough: cfg.Strikethrough,
		HelpFile:      cfg.HelpFile,
		Indent:        cfg.Indent,
		List:          list,
	}, nil
}

// Run initializes and runs the Bubble Tea TUI application on the given
// options.
func Run(opts ui.Options) {
	logger.InitLogger(true)
	logger.Info("starting TUI", "file", opts.Filename, "entries", opts.List.Len())

	m := ui.InitialModel(opts)
	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Alas, there's been an error: %v\n", err)
		os.Exit(1)
	}
}
