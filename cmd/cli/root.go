// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/mecaneer23/todo/cmd/tui"
	"github.com/mecaneer23/todo/internal/config"
	"github.com/mecaneer23/todo/internal/logger"
)

var (
	errorColor   = color.New(color.FgRed)
	successColor = color.New(color.FgGreen)
	headerColor  = color.New(color.FgCyan, color.Bold)
)

var rootCmd = &cobra.Command{
	Use:   "todo [file]",
	Short: "An interactive terminal todo list",
	Long: `A full-screen terminal list manager for a flat todo file.

Running without a subcommand opens the interactive list. Entries are stored
one per line with a completion marker ("-" pending, "+" done), an optional
color digit, and an indent level. Defaults for the file, header, autosave,
and strikethrough behavior come from ~/.config/todo/config.yaml.`,
	Args: cobra.MaximumNArgs(1),
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := config.EnsureConfigDir(); err != nil {
			return fmt.Errorf("failed to ensure config directory: %w", err)
		}
		return nil
	},
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.LoadConfig()
		if err != nil {
			errorColor.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
			os.Exit(1)
		}

		if len(args) == 1 {
			cfg.File = args[0]
		}
		if cmd.Flags().Changed("header") {
			cfg.Header = flagHeader
		}
		if cmd.Flags().Changed("autosave") {
			cfg.Autosave = flagAutosave
		}
		if cmd.Flags().Changed("strikethrough") {
			cfg.Strikethrough = flagStrikethrough
		}
		if cmd.Flags().Changed("help-file") {
			cfg.HelpFile = flagHelpFile
		}

		opts, err := tui.OptionsFromConfig(cfg)
		if err != nil {
			errorColor.Fprintf(os.Stderr, "%v\n", err)
			os.Exit(1)
		}
		tui.Run(opts)
	},
}

var (
	flagHeader        string
	flagAutosave      bool
	flagStrikethrough bool
	flagHelpFile      string
)

func RunCLI() {
	logger.InitLogger(false)
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().StringVar(&flagHeader, "header", "", "header text shown above the list")
	rootCmd.Flags().BoolVar(&flagAutosave, "autosave", true, "write the file after every change")
	rootCmd.Flags().BoolVar(&flagStrikethrough, "strikethrough", false, "strike out completed entries")
	rootCmd.Flags().StringVar(&flagHelpFile, "help-file", "", "markdown file holding the controls table")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(doneCmd)
}
