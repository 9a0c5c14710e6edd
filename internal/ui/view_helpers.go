// SPDX-License-Identifier: Apache-2.0

package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/lipgloss"

	"github.com/mecaneer23/todo/internal/todo"
)

// --- View ---

func (m model) View() string {
	if !m.ready {
		return "Loading..."
	}

	var body, footer string
	switch m.currentState {
	case stateColorPicker:
		body, footer = m.renderColorPickerView()
	case stateHelp:
		body, footer = m.renderHelpView()
	default:
		body, footer = m.renderListView()
	}

	header := headerStyle.Render(padRight(m.opts.Header, m.width))
	return lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
}

// --- State-Specific View Renderers ---
// These methods generate the body and footer content for specific UI
// states. View combines them with the header.

// renderListView draws the scrolling entry list. In insert/edit states the
// textinput is drawn inline at the affected row.
func (m model) renderListView() (string, string) {
	lines := make([]string, 0, m.list.Len()+1)
	for i, e := range m.list.Entries() {
		if m.currentState == stateEdit && i == m.editIndex {
			lines = append(lines, strings.Repeat(" ", e.Indent)+m.input.View())
			continue
		}
		lines = append(lines, m.renderEntry(i, e))
	}
	if m.currentState == stateInsert {
		inputLine := strings.Repeat(" ", m.insertIndent) + m.input.View()
		at := todo.Clamp(m.insertAt, 0, len(lines)+1)
		lines = append(lines[:at], append([]string{inputLine}, lines[at:]...)...)
	}
	if len(lines) == 0 {
		lines = append(lines, dimStyle.Render("  (empty list; press o to add an entry)"))
	}

	vp := m.viewport
	vp.SetContent(strings.Join(lines, "\n"))
	scrollTo(&vp, m.cursorLine())

	return vp.View(), m.renderFooter()
}

// cursorLine returns the content line the cursor occupies.
func (m model) cursorLine() int {
	if m.currentState == stateInsert && m.insertAt <= m.cursor {
		return m.cursor + 1
	}
	return m.cursor
}

// scrollTo adjusts a viewport's offset so the given line is visible.
func scrollTo(vp *viewport.Model, line int) {
	if line < vp.YOffset {
		vp.SetYOffset(line)
	} else if line >= vp.YOffset+vp.Height {
		vp.SetYOffset(line - vp.Height + 1)
	}
}

// renderEntry draws a single list row: cursor marker, indent, checkbox, and
// colored (possibly struck-through) text. The row under the cursor is shown
// in reverse video instead of its color, like the original highlight pair.
func (m model) renderEntry(i int, e todo.Entry) string {
	indent := strings.Repeat(" ", e.Indent)
	if i == m.cursor && m.currentState == stateList {
		style := selectedStyle
		if m.opts.Strikethrough && e.Done() {
			style = style.Strikethrough(true)
		}
		return style.Render("> " + indent + e.SimpleBox() + e.Text)
	}
	text := entryStyle(e, m.opts.Strikethrough).Render(e.SimpleBox() + e.Text)
	return "  " + indent + text
}

func (m model) renderColorPickerView() (string, string) {
	var b strings.Builder
	b.WriteString("Pick a color:\n\n")
	for i, c := range colorPickerEntries() {
		marker := "  "
		if i == m.colorCursor {
			marker = cursorStyle.Render("> ")
		}
		label := entryColorStyles[c].Render(fmt.Sprintf("%d %s", int(c), c))
		b.WriteString(fmt.Sprintf("%s%s\n", marker, label))
	}
	body := overlayStyle.Render(b.String())
	footer := m.renderKeyHints([][2]string{
		{"↑/k ↓/j", "move"}, {"1-7", "direct"}, {"enter", "apply"}, {"esc", "cancel"},
	})
	return body, footer
}

func (m model) renderHelpView() (string, string) {
	body := overlayStyle.Render(m.helpViewport.View())
	footer := m.renderKeyHints([][2]string{
		{"↑/k ↓/j", "scroll"}, {"q/esc", "close"},
	})
	return body, footer
}

// renderFooter shows an alert when present, the quit-confirm prompt in that
// state, and the key hint line otherwise.
func (m model) renderFooter() string {
	switch {
	case m.currentState == stateQuitConfirm:
		return "\n" + alertStyle.Render("Save changes before quitting? ") +
			footerKeyStyle.Render("y") + footerStyle.Render("es / ") +
			footerKeyStyle.Render("n") + footerStyle.Render("o / ") +
			footerKeyStyle.Render("esc") + footerStyle.Render(" cancel")
	case m.currentState == stateInsert, m.currentState == stateEdit:
		return "\n" + m.renderKeyHints([][2]string{
			{"enter", "confirm"}, {"esc", "cancel"},
		})
	case m.alert != "":
		return "\n" + alertStyle.Render(m.alert)
	case m.lastError != nil:
		return "\n" + errorStyle.Render(m.lastError.Error())
	default:
		hints := make([][2]string, 0, len(m.helpBindings()))
		for _, b := range m.helpBindings() {
			hints = append(hints, [2]string{b.Help().Key, b.Help().Desc})
		}
		return "\n" + m.renderKeyHints(hints)
	}
}

// renderKeyHints formats "key desc | key desc" footer lines.
func (m model) renderKeyHints(hints [][2]string) string {
	parts := make([]string, 0, len(hints))
	for _, h := range hints {
		parts = append(parts, footerKeyStyle.Render(h[0])+" "+footerStyle.Render(h[1]))
	}
	return strings.Join(parts, footerSeparatorStyle.Render(" | "))
}

// padRight extends s with spaces to the given width so the header bar spans
// the full terminal.
func padRight(s string, width int) string {
	w := lipgloss.Width(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}
