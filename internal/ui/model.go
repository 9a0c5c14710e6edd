// SPDX-License-Identifier: Apache-2.0

package ui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mecaneer23/todo/internal/todo"
)

// Options carries everything the TUI needs to start: the already-loaded
// list plus the effective settings after merging config file and flags.
type Options struct {
	Filename      string
	Header        string
	Autosave      bool
	Strikethrough bool
	HelpFile      string
	Indent        int
	List          *todo.List
}

type model struct {
	list *todo.List
	opts Options

	cursor       int
	currentState state

	// revision counts mutations; a save captures the revision it wrote so
	// the dirty flag is only cleared when no newer edit exists.
	revision      int
	savedRevision int

	alert     string
	lastError error

	// Insert/edit form state
	input        textinput.Model
	insertAt     int
	insertIndent int
	editIndex    int

	// Color picker state
	colorCursor int

	// Internal copy buffer; mirrors what was last pushed to the clipboard.
	copied    todo.Entry
	hasCopied bool

	// Help overlay state
	helpLines []string

	pendingQuit bool

	keymap       KeyMap
	viewport     viewport.Model
	helpViewport viewport.Model
	ready        bool
	width        int
	height       int
}

// InitialModel builds the starting model for the TUI.
func InitialModel(opts Options) model {
	l := opts.List
	if l == nil {
		l = todo.NewList(nil)
	}
	if opts.Indent <= 0 {
		opts.Indent = todo.DefaultIndent
	}
	return model{
		list:   l,
		opts:   opts,
		keymap: DefaultKeyMap,
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

// dirty reports whether the list has edits not yet written to disk.
func (m *model) dirty() bool {
	return m.revision != m.savedRevision
}

// mutated records an edit and returns a save command when autosave is on.
func (m *model) mutated() tea.Cmd {
	m.revision++
	if m.opts.Autosave {
		return saveFileCmd(m.opts.Filename, m.list, m.revision)
	}
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		cmds = append(cmds, m.handleWindowSizeMsg(msg))

	case tea.KeyMsg:
		// Any keypress clears a lingering footer alert.
		m.alert = ""
		switch m.currentState {
		case stateList:
			cmds = append(cmds, m.handleListKeys(msg)...)
		case stateInsert, stateEdit:
			cmds = append(cmds, m.handleInputKeys(msg)...)
		case stateColorPicker:
			cmds = append(cmds, m.handleColorPickerKeys(msg)...)
		case stateHelp:
			cmds = append(cmds, m.handleHelpKeys(msg)...)
		case stateQuitConfirm:
			cmds = append(cmds, m.handleQuitConfirmKeys(msg)...)
		}

	case fileSavedMsg:
		cmds = append(cmds, m.handleFileSavedMsg(msg))
	case clipboardCopiedMsg:
		cmds = append(cmds, m.handleClipboardCopiedMsg(msg))
	case clipboardPastedMsg:
		cmds = append(cmds, m.handleClipboardPastedMsg(msg))
	case helpLoadedMsg:
		cmds = append(cmds, m.handleHelpLoadedMsg(msg))
	}

	return m, tea.Batch(cmds...)
}

// quit decides between quitting immediately, saving first, and asking.
func (m *model) quit() tea.Cmd {
	if !m.dirty() {
		return tea.Quit
	}
	if m.opts.Autosave {
		m.pendingQuit = true
		return saveFileCmd(m.opts.Filename, m.list, m.revision)
	}
	m.currentState = stateQuitConfirm
	return nil
}

// matchesDigitColor maps keys 1-7 to the corresponding entry color.
func matchesDigitColor(msg tea.KeyMsg) (todo.Color, bool) {
	s := msg.String()
	if len(s) == 1 && s[0] >= '1' && s[0] <= '7' {
		return todo.Color(s[0] - '0'), true
	}
	return 0, false
}

// helpBindings are the keys summarized in the list footer.
func (m *model) helpBindings() []key.Binding {
	return []key.Binding{
		m.keymap.Up,
		m.keymap.Down,
		m.keymap.Toggle,
		m.keymap.InsertBelow,
		m.keymap.Edit,
		m.keymap.Delete,
		m.keymap.ColorPick,
		m.keymap.Help,
		m.keymap.Quit,
	}
}
