// SPDX-License-Identifier: Apache-2.0

package todo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseEntry(t *testing.T) {
	tests := []struct {
		name string
		line string
		want Entry
	}{
		{
			name: "pending entry",
			line: "- buy milk",
			want: Entry{Text: "buy milk", Checkbox: CheckboxPending, Color: White},
		},
		{
			name: "completed entry",
			line: "+ call the plumber",
			want: Entry{Text: "call the plumber", Checkbox: CheckboxDone, Color: White},
		},
		{
			name: "colored entry",
			line: "-1 urgent",
			want: Entry{Text: "urgent", Checkbox: CheckboxPending, Color: Red},
		},
		{
			name: "note without checkbox",
			line: "a plain note",
			want: Entry{Text: "a plain note", Checkbox: CheckboxNone, Color: White},
		},
		{
			name: "indented entry",
			line: "  - subtask",
			want: Entry{Text: "subtask", Checkbox: CheckboxPending, Color: White, Indent: 2},
		},
		{
			name: "indented colored note",
			line: "    3 yellow note",
			want: Entry{Text: "yellow note", Checkbox: CheckboxNone, Color: Yellow, Indent: 4},
		},
		{
			name: "digit followed by space is a color even mid-sentence",
			line: "- 7 dwarves",
			want: Entry{Text: "dwarves", Checkbox: CheckboxPending, Color: White},
		},
		{
			name: "digit not followed by space stays text",
			line: "- 2026 goals",
			want: Entry{Text: "2026 goals", Checkbox: CheckboxPending, Color: White},
		},
		{
			name: "zero is not a color",
			line: "- 0 items",
			want: Entry{Text: "0 items", Checkbox: CheckboxPending, Color: White},
		},
		{
			name: "empty line becomes an empty pending entry",
			line: "",
			want: Entry{Checkbox: CheckboxPending, Color: White},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseEntry(tt.line))
		})
	}
}

func TestEntryString(t *testing.T) {
	tests := []struct {
		name string
		e    Entry
		want string
	}{
		{
			name: "pending",
			e:    Entry{Text: "buy milk", Checkbox: CheckboxPending, Color: White},
			want: "- buy milk",
		},
		{
			name: "done with color",
			e:    Entry{Text: "urgent", Checkbox: CheckboxDone, Color: Red},
			want: "+1 urgent",
		},
		{
			name: "note with default color has no markers",
			e:    Entry{Text: "a plain note", Checkbox: CheckboxNone, Color: White},
			want: "a plain note",
		},
		{
			name: "colored note keeps the digit",
			e:    Entry{Text: "greenish", Checkbox: CheckboxNone, Color: Green},
			want: "2 greenish",
		},
		{
			name: "indent",
			e:    Entry{Text: "subtask", Checkbox: CheckboxPending, Color: White, Indent: 2},
			want: "  - subtask",
		},
		{
			name: "empty text suppresses the box char",
			e:    Entry{Checkbox: CheckboxPending, Color: White},
			want: "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.e.String())
		})
	}
}

func TestParseEntryRoundTrip(t *testing.T) {
	lines := []string{
		"- buy milk",
		"+ call the plumber",
		"-1 urgent",
		"+6 cyan done",
		"a plain note",
		"2 greenish note",
		"  - subtask",
		"    +4 deep blue",
	}
	for _, line := range lines {
		assert.Equal(t, line, ParseEntry(line).String(), "round trip of %q", line)
	}
}

func TestEntryToggle(t *testing.T) {
	e := NewEntry("task")
	assert.False(t, e.Done())

	e.Toggle()
	assert.True(t, e.Done())
	e.Toggle()
	assert.False(t, e.Done())

	note := Entry{Text: "note", Checkbox: CheckboxNone, Color: White}
	note.Toggle()
	assert.Equal(t, CheckboxNone, note.Checkbox, "notes are never toggled")
}

func TestColorNext(t *testing.T) {
	assert.Equal(t, Green, Red.Next())
	assert.Equal(t, White, Cyan.Next())
	assert.Equal(t, Red, White.Next(), "cycle wraps at white")
}

func TestColorValid(t *testing.T) {
	for _, c := range Colors {
		assert.True(t, c.Valid())
	}
	assert.False(t, Color(0).Valid())
	assert.False(t, Color(8).Valid())
}
