// SPDX-License-Identifier: Apache-2.0

package todo

// DefaultIndent is the number of spaces added per indent level.
const DefaultIndent = 2

// List is an ordered sequence of entries. The zero value is an empty list.
type List struct {
	entries []Entry
}

// NewList builds a list from existing entries.
func NewList(entries []Entry) *List {
	return &List{entries: entries}
}

// Len returns the number of entries.
func (l *List) Len() int {
	return len(l.entries)
}

// At returns the entry at index i. It panics on an out-of-range index, so
// callers clamp their cursor first.
func (l *List) At(i int) Entry {
	return l.entries[i]
}

// Entries returns the backing slice. Callers must not mutate it.
func (l *List) Entries() []Entry {
	return l.entries
}

// Insert places e at index i, shifting later entries down. Indices outside
// the valid range are clamped.
func (l *List) Insert(i int, e Entry) {
	if i < 0 {
		i = 0
	}
	if i > len(l.entries) {
		i = len(l.entries)
	}
	l.entries = append(l.entries, Entry{})
	copy(l.entries[i+1:], l.entries[i:])
	l.entries[i] = e
}

// Append adds e at the end of the list.
func (l *List) Append(e Entry) {
	l.entries = append(l.entries, e)
}

// Remove deletes the entry at index i. Out-of-range indices are a no-op.
func (l *List) Remove(i int) {
	if i < 0 || i >= len(l.entries) {
		return
	}
	l.entries = append(l.entries[:i], l.entries[i+1:]...)
}

// Swap exchanges the entries at i and j. Out-of-range indices are a no-op.
func (l *List) Swap(i, j int) {
	if i < 0 || j < 0 || i >= len(l.entries) || j >= len(l.entries) {
		return
	}
	l.entries[i], l.entries[j] = l.entries[j], l.entries[i]
}

// MoveUp swaps entry i with its predecessor and returns the new index.
func (l *List) MoveUp(i int) int {
	if i <= 0 || i >= len(l.entries) {
		return i
	}
	l.Swap(i, i-1)
	return i - 1
}

// MoveDown swaps entry i with its successor and returns the new index.
func (l *List) MoveDown(i int) int {
	if i < 0 || i >= len(l.entries)-1 {
		return i
	}
	l.Swap(i, i+1)
	return i + 1
}

// Toggle flips the checkbox of entry i.
func (l *List) Toggle(i int) {
	if i < 0 || i >= len(l.entries) {
		return
	}
	l.entries[i].Toggle()
}

// SetText replaces the text of entry i.
func (l *List) SetText(i int, text string) {
	if i < 0 || i >= len(l.entries) {
		return
	}
	l.entries[i].Text = text
}

// SetColor assigns a color to entry i.
func (l *List) SetColor(i int, c Color) {
	if i < 0 || i >= len(l.entries) || !c.Valid() {
		return
	}
	l.entries[i].Color = c
}

// CycleColor advances entry i to the next color in order.
func (l *List) CycleColor(i int) {
	if i < 0 || i >= len(l.entries) {
		return
	}
	l.entries[i].Color = l.entries[i].Color.Next()
}

// Indent shifts entry i one level to the right.
func (l *List) Indent(i, width int) {
	if i < 0 || i >= len(l.entries) {
		return
	}
	l.entries[i].Indent += width
}

// Dedent shifts entry i one level to the left, stopping at column zero.
func (l *List) Dedent(i, width int) {
	if i < 0 || i >= len(l.entries) {
		return
	}
	if l.entries[i].Indent >= width {
		l.entries[i].Indent -= width
	}
}

// Clamp keeps a cursor within [0, Len). An empty list clamps to zero.
func (l *List) Clamp(cursor int) int {
	return Clamp(cursor, 0, len(l.entries))
}

// Clamp keeps n within [minimum, maximum).
func Clamp(n, minimum, maximum int) int {
	if n < minimum {
		return minimum
	}
	if n > maximum-1 {
		n = maximum - 1
	}
	if n < minimum {
		return minimum
	}
	return n
}
