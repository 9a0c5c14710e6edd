// SPDX-License-Identifier: Apache-2.0

package ui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// --- Update Handlers ---
// These methods handle key presses and logic for specific UI states.

func (m *model) handleListKeys(msg tea.KeyMsg) []tea.Cmd {
	var cmds []tea.Cmd

	switch {
	case key.Matches(msg, m.keymap.Up):
		m.cursor = m.list.Clamp(m.cursor - 1)
	case key.Matches(msg, m.keymap.Down):
		m.cursor = m.list.Clamp(m.cursor + 1)
	case key.Matches(msg, m.keymap.Home):
		m.cursor = 0
		m.viewport.GotoTop()
	case key.Matches(msg, m.keymap.End):
		m.cursor = m.list.Clamp(m.list.Len() - 1)
		m.viewport.GotoBottom()
	case key.Matches(msg, m.keymap.PgUp):
		m.cursor = m.list.Clamp(m.cursor - m.viewport.Height)
	case key.Matches(msg, m.keymap.PgDown):
		m.cursor = m.list.Clamp(m.cursor + m.viewport.Height)

	case key.Matches(msg, m.keymap.Toggle):
		if m.list.Len() > 0 {
			if !m.list.At(m.cursor).HasBox() {
				m.alert = "note entries have no checkbox"
				break
			}
			m.list.Toggle(m.cursor)
			cmds = append(cmds, m.mutated())
		}

	case key.Matches(msg, m.keymap.InsertBelow):
		cmds = append(cmds, m.openInsertForm(m.cursor+1)...)
	case key.Matches(msg, m.keymap.InsertAbove):
		cmds = append(cmds, m.openInsertForm(m.cursor)...)

	case key.Matches(msg, m.keymap.Edit):
		if m.list.Len() > 0 {
			cmds = append(cmds, m.openEditForm(m.cursor)...)
		}

	case key.Matches(msg, m.keymap.Delete):
		if m.list.Len() > 0 {
			m.list.Remove(m.cursor)
			m.cursor = m.list.Clamp(m.cursor)
			cmds = append(cmds, m.mutated())
		}

	case key.Matches(msg, m.keymap.MoveUp):
		if m.list.Len() > 0 {
			if next := m.list.MoveUp(m.cursor); next != m.cursor {
				m.cursor = next
				cmds = append(cmds, m.mutated())
			}
		}
	case key.Matches(msg, m.keymap.MoveDown):
		if m.list.Len() > 0 {
			if next := m.list.MoveDown(m.cursor); next != m.cursor {
				m.cursor = next
				cmds = append(cmds, m.mutated())
			}
		}

	case key.Matches(msg, m.keymap.ColorPick):
		if m.list.Len() > 0 {
			m.colorCursor = int(m.list.At(m.cursor).Color) - 1
			m.currentState = stateColorPicker
		}
	case key.Matches(msg, m.keymap.ColorCycle):
		if m.list.Len() > 0 {
			m.list.CycleColor(m.cursor)
			cmds = append(cmds, m.mutated())
		}

	case key.Matches(msg, m.keymap.Indent):
		if m.list.Len() > 0 {
			m.list.Indent(m.cursor, m.opts.Indent)
			cmds = append(cmds, m.mutated())
		}
	case key.Matches(msg, m.keymap.Dedent):
		if m.list.Len() > 0 {
			before := m.list.At(m.cursor).Indent
			m.list.Dedent(m.cursor, m.opts.Indent)
			if m.list.At(m.cursor).Indent != before {
				cmds = append(cmds, m.mutated())
			}
		}

	case key.Matches(msg, m.keymap.Copy):
		if m.list.Len() > 0 {
			m.copied = m.list.At(m.cursor)
			m.hasCopied = true
			cmds = append(cmds, copyToClipboardCmd(m.copied.Text))
		}
	case key.Matches(msg, m.keymap.Paste):
		cmds = append(cmds, pasteFromClipboardCmd(m.copied, m.hasCopied))

	case key.Matches(msg, m.keymap.Save):
		cmds = append(cmds, saveFileCmd(m.opts.Filename, m.list, m.revision))

	case key.Matches(msg, m.keymap.Help):
		cmds = append(cmds, loadHelpCmd(m.opts.HelpFile))

	case key.Matches(msg, m.keymap.Quit):
		cmds = append(cmds, m.quit())
	}

	return cmds
}

// openInsertForm prepares the textinput for a new entry at index at. The
// new entry inherits the indent of the entry above it, matching how lists
// are usually grown.
func (m *model) openInsertForm(at int) []tea.Cmd {
	m.insertAt = at
	m.insertIndent = 0
	if above := at - 1; above >= 0 && above < m.list.Len() {
		m.insertIndent = m.list.At(above).Indent
	}
	m.input = newEntryInput("", m.width)
	m.currentState = stateInsert
	return []tea.Cmd{m.input.Focus()}
}

// openEditForm prepares the textinput pre-filled with the entry's text.
func (m *model) openEditForm(at int) []tea.Cmd {
	m.editIndex = at
	m.input = newEntryInput(m.list.At(at).Text, m.width)
	m.currentState = stateEdit
	return []tea.Cmd{m.input.Focus()}
}

// handleInputKeys drives the insert/edit textinput. Enter commits, Esc
// cancels; anything else is forwarded to the input.
func (m *model) handleInputKeys(msg tea.KeyMsg) []tea.Cmd {
	var cmds []tea.Cmd

	switch {
	case key.Matches(msg, m.keymap.Enter):
		text := m.input.Value()
		if m.currentState == stateInsert {
			if text != "" {
				e := entryFromInput(text, m.insertIndent)
				m.list.Insert(m.insertAt, e)
				m.cursor = m.list.Clamp(m.insertAt)
				cmds = append(cmds, m.mutated())
			}
		} else {
			if text != m.list.At(m.editIndex).Text {
				m.list.SetText(m.editIndex, text)
				cmds = append(cmds, m.mutated())
			}
		}
		m.currentState = stateList
	case key.Matches(msg, m.keymap.Esc):
		m.currentState = stateList
	default:
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		cmds = append(cmds, cmd)
	}

	return cmds
}

func (m *model) handleColorPickerKeys(msg tea.KeyMsg) []tea.Cmd {
	var cmds []tea.Cmd

	if c, ok := matchesDigitColor(msg); ok {
		m.list.SetColor(m.cursor, c)
		m.currentState = stateList
		return append(cmds, m.mutated())
	}

	switch {
	case key.Matches(msg, m.keymap.Up):
		if m.colorCursor > 0 {
			m.colorCursor--
		}
	case key.Matches(msg, m.keymap.Down):
		if m.colorCursor < len(colorPickerEntries())-1 {
			m.colorCursor++
		}
	case key.Matches(msg, m.keymap.Enter):
		m.list.SetColor(m.cursor, colorPickerEntries()[m.colorCursor])
		m.currentState = stateList
		cmds = append(cmds, m.mutated())
	case key.Matches(msg, m.keymap.Esc), key.Matches(msg, m.keymap.Quit):
		m.currentState = stateList
	}

	return cmds
}

func (m *model) handleHelpKeys(msg tea.KeyMsg) []tea.Cmd {
	var cmds []tea.Cmd

	switch {
	case key.Matches(msg, m.keymap.Quit), key.Matches(msg, m.keymap.Esc),
		key.Matches(msg, m.keymap.Help):
		m.currentState = stateList
	default:
		var cmd tea.Cmd
		m.helpViewport, cmd = m.helpViewport.Update(msg)
		cmds = append(cmds, cmd)
	}

	return cmds
}

func (m *model) handleQuitConfirmKeys(msg tea.KeyMsg) []tea.Cmd {
	var cmds []tea.Cmd

	switch {
	case key.Matches(msg, m.keymap.Yes):
		m.pendingQuit = true
		cmds = append(cmds, saveFileCmd(m.opts.Filename, m.list, m.revision))
	case key.Matches(msg, m.keymap.No):
		cmds = append(cmds, tea.Quit)
	case key.Matches(msg, m.keymap.Esc):
		m.currentState = stateList
	}

	return cmds
}
