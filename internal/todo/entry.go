// SPDX-License-Identifier: Apache-2.0

// Package todo holds the in-memory list model: entries with a checkbox
// state, a foreground color, and an indent level, plus the operations the
// TUI and CLI perform on an ordered list of them.
package todo

import (
	"fmt"
	"strings"
)

// Checkbox is the completion marker of an entry. Entries without a checkbox
// are plain notes and are never toggled.
type Checkbox int

const (
	CheckboxNone Checkbox = iota
	CheckboxPending
	CheckboxDone
)

func (c Checkbox) String() string {
	switch c {
	case CheckboxPending:
		return "-"
	case CheckboxDone:
		return "+"
	default:
		return ""
	}
}

// Color is the foreground color of an entry. The numeric values match the
// digits used in the file format (standard terminal colors 1-7).
type Color int

const (
	Red     Color = 1
	Green   Color = 2
	Yellow  Color = 3
	Blue    Color = 4
	Magenta Color = 5
	Cyan    Color = 6
	White   Color = 7
)

// Colors lists all valid colors in cycling order.
var Colors = []Color{Red, Green, Yellow, Blue, Magenta, Cyan, White}

func (c Color) String() string {
	switch c {
	case Red:
		return "red"
	case Green:
		return "green"
	case Yellow:
		return "yellow"
	case Blue:
		return "blue"
	case Magenta:
		return "magenta"
	case Cyan:
		return "cyan"
	case White:
		return "white"
	default:
		return fmt.Sprintf("color(%d)", int(c))
	}
}

// Valid reports whether c is one of the seven file-format colors.
func (c Color) Valid() bool {
	return c >= Red && c <= White
}

// Next returns the color after c in cycling order, wrapping at white.
func (c Color) Next() Color {
	if c >= White || c < Red {
		return Red
	}
	return c + 1
}

// Entry is a single line of the list.
type Entry struct {
	Text     string
	Checkbox Checkbox
	Color    Color
	Indent   int // leading spaces
}

// NewEntry returns a pending entry with default color and the given text.
func NewEntry(text string) Entry {
	return Entry{Text: text, Checkbox: CheckboxPending, Color: White}
}

// ParseEntry decodes one line of the file format:
//
//	[indent][box char "+"|"-"][color digit + " "][" "][text]
//
// The parse is a forgiving pointer scan: a missing box char means the line
// is a note, and a digit only counts as a color when it is immediately
// followed by a space.
func ParseEntry(line string) Entry {
	e := Entry{Checkbox: CheckboxNone, Color: White}
	trimmed := strings.TrimLeft(line, " ")
	e.Indent = len(line) - len(trimmed)

	p := e.Indent
	if p < len(line) {
		switch line[p] {
		case '-':
			e.Checkbox = CheckboxPending
			p++
		case '+':
			e.Checkbox = CheckboxDone
			p++
		}
	}
	if p+1 < len(line) && line[p] >= '1' && line[p] <= '7' && line[p+1] == ' ' {
		e.Color = Color(line[p] - '0')
		p += 2
	}
	if p < len(line) && line[p] == ' ' {
		p++
	}
	e.Text = line[p:]

	if e.Text == "" && e.Checkbox == CheckboxNone {
		// An all-marker line still represents a pending entry.
		e.Checkbox = CheckboxPending
	}
	return e
}

// String encodes the entry back into the file format. The box char is only
// written for checkbox entries with text, the color digit only for
// non-default colors, and the separating space only when either was written.
func (e Entry) String() string {
	var b strings.Builder
	b.WriteString(strings.Repeat(" ", e.Indent))
	hasBox := e.Checkbox != CheckboxNone && e.Text != ""
	if hasBox {
		b.WriteString(e.Checkbox.String())
	}
	if e.Color != White {
		fmt.Fprintf(&b, "%d", int(e.Color))
	}
	if hasBox || e.Color != White {
		b.WriteString(" ")
	}
	b.WriteString(e.Text)
	return b.String()
}

// Done reports whether the entry is a completed checkbox entry.
func (e Entry) Done() bool {
	return e.Checkbox == CheckboxDone
}

// HasBox reports whether the entry carries a checkbox at all.
func (e Entry) HasBox() bool {
	return e.Checkbox != CheckboxNone
}

// Toggle flips a pending entry to done and vice versa. Notes are unchanged.
func (e *Entry) Toggle() {
	switch e.Checkbox {
	case CheckboxPending:
		e.Checkbox = CheckboxDone
	case CheckboxDone:
		e.Checkbox = CheckboxPending
	}
}

// SimpleBox returns the plain-text checkbox prefix used by the CLI.
func (e Entry) SimpleBox() string {
	switch e.Checkbox {
	case CheckboxDone:
		return "[x] "
	case CheckboxPending:
		return "[ ] "
	default:
		return ""
	}
}
