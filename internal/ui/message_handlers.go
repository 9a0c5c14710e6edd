// SPDX-License-Identifier: Apache-2.0

package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// --- Message Handlers ---
// These methods handle specific message types received by the model's
// Update function.

func (m *model) handleWindowSizeMsg(msg tea.WindowSizeMsg) tea.Cmd {
	m.width = msg.Width
	m.height = msg.Height

	bodyHeight := m.height - headerHeight - footerHeight
	if bodyHeight < 1 {
		bodyHeight = 1
	}

	if !m.ready {
		m.viewport = viewport.New(m.width, bodyHeight)
		m.helpViewport = viewport.New(m.width, bodyHeight)
		m.ready = true
	} else {
		m.viewport.Width = m.width
		m.viewport.Height = bodyHeight
		m.helpViewport.Width = m.width
		m.helpViewport.Height = bodyHeight
	}
	if len(m.helpLines) > 0 {
		m.helpViewport.SetContent(strings.Join(m.helpLines, "\n"))
	}
	return nil
}

func (m *model) handleFileSavedMsg(msg fileSavedMsg) tea.Cmd {
	if msg.err != nil {
		m.lastError = msg.err
		m.alert = fmt.Sprintf("save failed: %v", msg.err)
		m.pendingQuit = false
		if m.currentState == stateQuitConfirm {
			m.currentState = stateList
		}
		return nil
	}
	if msg.revision > m.savedRevision {
		m.savedRevision = msg.revision
	}
	m.lastError = nil
	if m.pendingQuit {
		return tea.Quit
	}
	return nil
}

func (m *model) handleClipboardCopiedMsg(msg clipboardCopiedMsg) tea.Cmd {
	if msg.err != nil {
		// Not fatal: paste still works from the internal buffer.
		m.alert = "copied internally; system clipboard unavailable"
	} else {
		m.alert = "copied"
	}
	return nil
}

func (m *model) handleClipboardPastedMsg(msg clipboardPastedMsg) tea.Cmd {
	if msg.err != nil {
		m.alert = "nothing to paste; system clipboard unavailable"
		return nil
	}
	if len(msg.entries) == 0 {
		m.alert = "nothing to paste"
		return nil
	}
	at := m.cursor + 1
	if m.list.Len() == 0 {
		at = 0
	}
	for i, e := range msg.entries {
		m.list.Insert(at+i, e)
	}
	m.cursor = m.list.Clamp(at + len(msg.entries) - 1)
	if msg.internal {
		m.alert = "pasted from internal buffer"
	}
	return m.mutated()
}

func (m *model) handleHelpLoadedMsg(msg helpLoadedMsg) tea.Cmd {
	if msg.err != nil {
		m.alert = fmt.Sprintf("help unavailable: %v", msg.err)
		return nil
	}
	m.helpLines = msg.lines
	// The content must live on the persistent viewport, not a per-render
	// copy, or the scroll keys have nothing to move through.
	m.helpViewport.SetContent(strings.Join(m.helpLines, "\n"))
	m.helpViewport.GotoTop()
	m.currentState = stateHelp
	return nil
}
