// SPDX-License-Identifier: Apache-2.0

// This file defines the keyboard bindings for the TUI application.
// It maps keys to actions and provides descriptions for the help footer.

package ui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the keybindings for the application.
type KeyMap struct {
	// Navigation keys
	Up     key.Binding // Move cursor up
	Down   key.Binding // Move cursor down
	PgUp   key.Binding // Page up in the list
	PgDown key.Binding // Page down in the list
	Home   key.Binding // Jump to top of list
	End    key.Binding // Jump to bottom of list

	// General UI control
	Quit  key.Binding // Exit the application
	Enter key.Binding // Confirm selection
	Esc   key.Binding // Cancel/go back
	Yes   key.Binding // Confirm in prompts
	No    key.Binding // Deny in prompts

	// Entry actions
	Toggle      key.Binding // Toggle completion of the current entry
	InsertBelow key.Binding // Add a new entry below the cursor
	InsertAbove key.Binding // Add a new entry above the cursor
	Delete      key.Binding // Remove the current entry
	Edit        key.Binding // Edit the current entry's text
	MoveUp      key.Binding // Swap the current entry with the one above
	MoveDown    key.Binding // Swap the current entry with the one below
	ColorPick   key.Binding // Open the color picker
	ColorCycle  key.Binding // Cycle the current entry's color
	Indent      key.Binding // Indent the current entry
	Dedent      key.Binding // Dedent the current entry
	Copy        key.Binding // Copy the current entry
	Paste       key.Binding // Paste the copied entry below the cursor

	// Misc actions
	Save key.Binding // Write the list to disk
	Help key.Binding // Show the controls overlay
}

// DefaultKeyMap provides the default keybindings.
var DefaultKeyMap = KeyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "down"),
	),
	PgUp: key.NewBinding(
		key.WithKeys("pgup"),
		key.WithHelp("pgup", "page up"),
	),
	PgDown: key.NewBinding(
		key.WithKeys("pgdown"),
		key.WithHelp("pgdn", "page down"),
	),
	Home: key.NewBinding(
		key.WithKeys("home", "g"),
		key.WithHelp("home/g", "top"),
	),
	End: key.NewBinding(
		key.WithKeys("end", "G"),
		key.WithHelp("end/G", "bottom"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "esc", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
	Enter: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "confirm"),
	),
	Esc: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "cancel"),
	),
	Yes: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "yes"),
	),
	No: key.NewBinding(
		key.WithKeys("n"),
		key.WithHelp("n", "no"),
	),

	Toggle: key.NewBinding(
		key.WithKeys("enter", " "),
		key.WithHelp("enter/space", "toggle"),
	),
	InsertBelow: key.NewBinding(
		key.WithKeys("o"),
		key.WithHelp("o", "new entry"),
	),
	InsertAbove: key.NewBinding(
		key.WithKeys("O"),
		key.WithHelp("O", "new entry above"),
	),
	Delete: key.NewBinding(
		key.WithKeys("d", "delete"),
		key.WithHelp("d", "delete"),
	),
	Edit: key.NewBinding(
		key.WithKeys("e", "i"),
		key.WithHelp("e", "edit"),
	),
	MoveUp: key.NewBinding(
		key.WithKeys("shift+up", "K"),
		key.WithHelp("K", "move up"),
	),
	MoveDown: key.NewBinding(
		key.WithKeys("shift+down", "J"),
		key.WithHelp("J", "move down"),
	),
	ColorPick: key.NewBinding(
		key.WithKeys("c"),
		key.WithHelp("c", "color"),
	),
	ColorCycle: key.NewBinding(
		key.WithKeys("C"),
		key.WithHelp("C", "cycle color"),
	),
	Indent: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "indent"),
	),
	Dedent: key.NewBinding(
		key.WithKeys("shift+tab"),
		key.WithHelp("shift+tab", "dedent"),
	),
	Copy: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "copy"),
	),
	Paste: key.NewBinding(
		key.WithKeys("p"),
		key.WithHelp("p", "paste"),
	),

	Save: key.NewBinding(
		key.WithKeys("s", "ctrl+s"),
		key.WithHelp("s", "save"),
	),
	Help: key.NewBinding(
		key.WithKeys("?", "h"),
		key.WithHelp("?", "help"),
	),
}
