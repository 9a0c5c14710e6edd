// SPDX-License-Identifier: Apache-2.0

// Package ui's commands.go file contains Bubble Tea commands that perform
// asynchronous operations in the TUI: writing the list file, talking to the
// system clipboard, and loading the help file. Each command runs in its own
// goroutine and communicates back by returning a message.

package ui

import (
	"slices"
	"strings"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mecaneer23/todo/internal/help"
	"github.com/mecaneer23/todo/internal/logger"
	"github.com/mecaneer23/todo/internal/store"
	"github.com/mecaneer23/todo/internal/todo"
)

// saveFileCmd writes the encoded list to filename. The entries are
// snapshotted here, before the goroutine starts, so later edits to the
// model cannot leak into the write.
func saveFileCmd(filename string, l *todo.List, revision int) tea.Cmd {
	contents := todo.NewList(slices.Clone(l.Entries()))
	return func() tea.Msg {
		err := store.Save(filename, contents)
		if err != nil {
			logger.Error("save failed", "file", filename, "error", err)
		}
		return fileSavedMsg{revision: revision, err: err}
	}
}

// copyToClipboardCmd pushes the copied entry text to the system clipboard.
func copyToClipboardCmd(text string) tea.Cmd {
	return func() tea.Msg {
		return clipboardCopiedMsg{err: clipboard.WriteAll(text)}
	}
}

// pasteFromClipboardCmd reads the system clipboard. When the clipboard
// matches the internally copied entry, that entry is pasted verbatim so its
// color and checkbox survive; otherwise each clipboard line becomes a new
// pending entry. With no clipboard available the internal buffer is used.
func pasteFromClipboardCmd(copied todo.Entry, hasCopied bool) tea.Cmd {
	return func() tea.Msg {
		pasted, err := clipboard.ReadAll()
		if err != nil {
			if !hasCopied {
				return clipboardPastedMsg{err: err}
			}
			return clipboardPastedMsg{entries: []todo.Entry{copied}, internal: true}
		}
		return clipboardPastedMsg{entries: entriesFromPaste(pasted, copied, hasCopied)}
	}
}

// entriesFromPaste turns clipboard text into entries to insert. A blank
// clipboard yields nothing, so the caller reports "nothing to paste" instead
// of inserting an empty entry.
func entriesFromPaste(pasted string, copied todo.Entry, hasCopied bool) []todo.Entry {
	pasted = strings.TrimSpace(pasted)
	if pasted == "" {
		return nil
	}
	if hasCopied && copied.Text == pasted {
		return []todo.Entry{copied}
	}
	var entries []todo.Entry
	for _, line := range strings.Split(pasted, "\n") {
		entries = append(entries, todo.NewEntry(line))
	}
	return entries
}

// loadHelpCmd parses the controls table out of the configured help file.
func loadHelpCmd(filename string) tea.Cmd {
	return func() tea.Msg {
		lines, err := help.ControlsTable(filename)
		return helpLoadedMsg{lines: lines, err: err}
	}
}
