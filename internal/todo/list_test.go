// SPDX-License-Identifier: Apache-2.0

package todo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleList() *List {
	return NewList([]Entry{
		NewEntry("first"),
		NewEntry("second"),
		NewEntry("third"),
	})
}

func texts(l *List) []string {
	out := make([]string, 0, l.Len())
	for _, e := range l.Entries() {
		out = append(out, e.Text)
	}
	return out
}

func TestListInsert(t *testing.T) {
	l := sampleList()
	l.Insert(1, NewEntry("between"))
	assert.Equal(t, []string{"first", "between", "second", "third"}, texts(l))

	l.Insert(-5, NewEntry("front"))
	assert.Equal(t, "front", l.At(0).Text)

	l.Insert(100, NewEntry("back"))
	assert.Equal(t, "back", l.At(l.Len()-1).Text)
}

func TestListRemove(t *testing.T) {
	l := sampleList()
	l.Remove(1)
	assert.Equal(t, []string{"first", "third"}, texts(l))

	// Out-of-range removals are no-ops.
	l.Remove(-1)
	l.Remove(5)
	assert.Equal(t, 2, l.Len())
}

func TestListMove(t *testing.T) {
	l := sampleList()

	assert.Equal(t, 0, l.MoveUp(1))
	assert.Equal(t, []string{"second", "first", "third"}, texts(l))

	assert.Equal(t, 0, l.MoveUp(0), "top entry stays put")

	assert.Equal(t, 2, l.MoveDown(1))
	assert.Equal(t, []string{"second", "third", "first"}, texts(l))

	assert.Equal(t, 2, l.MoveDown(2), "bottom entry stays put")
}

func TestListToggleAndColor(t *testing.T) {
	l := sampleList()

	l.Toggle(0)
	assert.True(t, l.At(0).Done())

	l.CycleColor(0)
	assert.Equal(t, Red, l.At(0).Color, "white cycles to red")
	l.CycleColor(0)
	assert.Equal(t, Green, l.At(0).Color)

	l.SetColor(1, Magenta)
	assert.Equal(t, Magenta, l.At(1).Color)

	l.SetColor(1, Color(9))
	assert.Equal(t, Magenta, l.At(1).Color, "invalid colors are rejected")
}

func TestListIndent(t *testing.T) {
	l := sampleList()

	l.Indent(0, DefaultIndent)
	l.Indent(0, DefaultIndent)
	assert.Equal(t, 4, l.At(0).Indent)

	l.Dedent(0, DefaultIndent)
	assert.Equal(t, 2, l.At(0).Indent)

	l.Dedent(1, DefaultIndent)
	assert.Equal(t, 0, l.At(1).Indent, "dedent stops at column zero")
}

func TestListSetText(t *testing.T) {
	l := sampleList()
	l.SetText(2, "renamed")
	require.Equal(t, "renamed", l.At(2).Text)
	// Checkbox and color survive a text edit.
	assert.Equal(t, CheckboxPending, l.At(2).Checkbox)
}

func TestClamp(t *testing.T) {
	l := sampleList()
	assert.Equal(t, 0, l.Clamp(-3))
	assert.Equal(t, 1, l.Clamp(1))
	assert.Equal(t, 2, l.Clamp(99))

	empty := NewList(nil)
	assert.Equal(t, 0, empty.Clamp(5))
	assert.Equal(t, 0, empty.Clamp(-5))
}
