// SPDX-License-Identifier: Apache-2.0

// Package ui's messages.go file defines the message types used in the
// Bubble Tea Model-View-Update architecture. These messages carry the
// results of asynchronous work (file saves, clipboard access, help file
// parsing) back into the Update loop.

package ui

import "github.com/mecaneer23/todo/internal/todo"

// fileSavedMsg reports the outcome of a save command. revision identifies
// which state of the list was written so a save that raced with newer edits
// does not clear the dirty flag.
type fileSavedMsg struct {
	revision int
	err      error
}

// clipboardCopiedMsg reports whether the entry text reached the system
// clipboard. A failure is not an error; the internal buffer still works.
type clipboardCopiedMsg struct{ err error }

// clipboardPastedMsg carries entries to insert below the cursor. internal
// is true when the system clipboard was unavailable and the entries came
// from the in-process copy buffer.
type clipboardPastedMsg struct {
	entries  []todo.Entry
	internal bool
	err      error
}

// helpLoadedMsg carries the parsed controls table for the help overlay.
type helpLoadedMsg struct {
	lines []string
	err   error
}
