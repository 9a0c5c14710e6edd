// SPDX-License-Identifier: Apache-2.0

package ui

import (
	"github.com/charmbracelet/bubbles/textinput"

	"github.com/mecaneer23/todo/internal/todo"
)

// --- Form Creation ---

// newEntryInput builds the single-line textinput used for both inserting
// and editing entries.
func newEntryInput(value string, width int) textinput.Model {
	t := textinput.New()
	t.Placeholder = "Entry text"
	t.CharLimit = 256
	t.Width = inputWidth(width)
	t.Prompt = cursorStyle.Render("> ")
	t.SetValue(value)
	return t
}

// inputWidth keeps the form usable on narrow terminals while leaving room
// for the prompt on wide ones.
func inputWidth(terminalWidth int) int {
	w := terminalWidth - 4
	if w < 20 {
		w = 20
	}
	if w > 80 {
		w = 80
	}
	return w
}

// entryFromInput turns committed form text into a pending entry at the
// given indent level.
func entryFromInput(text string, indent int) todo.Entry {
	e := todo.NewEntry(text)
	e.Indent = indent
	return e
}

// colorPickerEntries lists the picker rows in display order.
func colorPickerEntries() []todo.Color {
	return todo.Colors
}
