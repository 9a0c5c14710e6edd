// SPDX-License-Identifier: Apache-2.0

package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mecaneer23/todo/internal/todo"
)

func TestLoadMissingFile(t *testing.T) {
	l, err := Load(filepath.Join(t.TempDir(), "nope.txt"))
	require.NoError(t, err, "a missing file starts an empty list")
	assert.Equal(t, 0, l.Len())
}

func TestLoadUnreadableFile(t *testing.T) {
	dir := t.TempDir()
	// A directory where a file is expected produces a read error.
	_, err := Load(dir)
	assert.Error(t, err)
}

func TestParseSkipsBlankLines(t *testing.T) {
	l := Parse("- one\n\n   \n+ two\n")
	require.Equal(t, 2, l.Len())
	assert.Equal(t, "one", l.At(0).Text)
	assert.True(t, l.At(1).Done())
}

func TestSaveLoadRoundTrip(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "todo.txt")
	l := todo.NewList([]todo.Entry{
		{Text: "buy milk", Checkbox: todo.CheckboxPending, Color: todo.White},
		{Text: "urgent", Checkbox: todo.CheckboxDone, Color: todo.Red},
		{Text: "a note", Checkbox: todo.CheckboxNone, Color: todo.White},
		{Text: "subtask", Checkbox: todo.CheckboxPending, Color: todo.White, Indent: 2},
	})

	require.NoError(t, Save(filename, l))

	loaded, err := Load(filename)
	require.NoError(t, err)
	assert.Equal(t, l.Entries(), loaded.Entries())
}

func TestSaveCreatesFile(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "new.txt")
	require.NoError(t, Save(filename, todo.NewList(nil)))

	data, err := os.ReadFile(filename)
	require.NoError(t, err)
	assert.Empty(t, string(data))
}

func TestSaveUnwritableDir(t *testing.T) {
	err := Save(filepath.Join(t.TempDir(), "missing", "todo.txt"), todo.NewList(nil))
	assert.Error(t, err)
}

func TestSaveDoesNotTruncateOnFailure(t *testing.T) {
	dir := t.TempDir()
	filename := filepath.Join(dir, "todo.txt")
	require.NoError(t, os.WriteFile(filename, []byte("- keep me\n"), 0644))

	// Make the directory read-only so the temp file cannot be created.
	require.NoError(t, os.Chmod(dir, 0555))
	t.Cleanup(func() { _ = os.Chmod(dir, 0755) })

	err := Save(filename, todo.NewList([]todo.Entry{todo.NewEntry("replacement")}))
	if err == nil {
		t.Skip("running as root; read-only directory is not enforced")
	}

	data, readErr := os.ReadFile(filename)
	require.NoError(t, readErr)
	assert.Equal(t, "- keep me\n", string(data))
}

func TestEncode(t *testing.T) {
	l := Parse("- one\n+2 two\nnote\n")
	assert.Equal(t, "- one\n+2 two\nnote\n", Encode(l))
}
