// SPDX-License-Identifier: Apache-2.0

package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/mecaneer23/todo/internal/todo"
)

var (
	headerStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("62"))
	errorStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	alertStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	cursorStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("5"))
	selectedStyle   = lipgloss.NewStyle().Reverse(true)
	dimStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	overlayStyle    = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("238")).
			Padding(0, 1)

	// Footer / Status Bar Styles
	footerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("250"))

	footerKeyStyle = lipgloss.NewStyle().
			Inherit(footerStyle).
			Foreground(lipgloss.Color("39"))

	footerSeparatorStyle = lipgloss.NewStyle().
				Inherit(footerStyle).
				Foreground(lipgloss.Color("240"))
)

// entryColorStyles maps file-format colors to terminal foreground styles.
// The numeric values line up with the standard ANSI palette.
var entryColorStyles = map[todo.Color]lipgloss.Style{
	todo.Red:     lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	todo.Green:   lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	todo.Yellow:  lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	todo.Blue:    lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	todo.Magenta: lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
	todo.Cyan:    lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	todo.White:   lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
}

// entryStyle returns the style for an entry, layering strikethrough on top
// of the color for completed entries when enabled.
func entryStyle(e todo.Entry, strikethrough bool) lipgloss.Style {
	style, ok := entryColorStyles[e.Color]
	if !ok {
		style = entryColorStyles[todo.White]
	}
	if strikethrough && e.Done() {
		style = style.Strikethrough(true)
	}
	return style
}
