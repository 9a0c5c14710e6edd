// SPDX-License-Identifier: Apache-2.0

package help

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleReadme = `# sample

Some intro text.

## Controls

| Key | Action |
| --- | ------ |
| <kbd>j</kbd> | Move down |
| <kbd>q</kbd>/<kbd>esc</kbd> | Quit |

## Another section

Not part of the table.
`

func writeHelpFile(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "README.md")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0644))
	return path
}

func TestControlsTable(t *testing.T) {
	lines, err := ControlsTable(writeHelpFile(t, sampleReadme))
	require.NoError(t, err)
	require.Len(t, lines, 3, "header row plus two bindings; separator dropped")

	assert.Equal(t, "Key    Action", lines[0])
	assert.Equal(t, "j      Move down", lines[1])
	assert.Equal(t, "q/esc  Quit", lines[2])
}

func TestControlsTableStopsAtTableEnd(t *testing.T) {
	lines, err := ControlsTable(writeHelpFile(t, sampleReadme))
	require.NoError(t, err)
	for _, line := range lines {
		assert.NotContains(t, line, "Another section")
	}
}

func TestControlsTableAlignsWideCells(t *testing.T) {
	md := `## Controls

| Key | Action |
| --- | ------ |
| <kbd>↑</kbd>/<kbd>k</kbd> | Up |
| <kbd>q</kbd> | Quit |
`
	lines, err := ControlsTable(writeHelpFile(t, md))
	require.NoError(t, err)
	require.Len(t, lines, 3)

	assert.Equal(t, "Key  Action", lines[0])
	assert.Equal(t, "↑/k  Up", lines[1])
	assert.Equal(t, "q    Quit", lines[2])
}

func TestControlsTableHeadingMatchesExactly(t *testing.T) {
	md := `## Controlsext

| Key | Action |
| --- | ------ |
| j | Down |
`
	_, err := ControlsTable(writeHelpFile(t, md))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "## Controls")
}

func TestControlsTableMissingFile(t *testing.T) {
	_, err := ControlsTable(filepath.Join(t.TempDir(), "nope.md"))
	assert.Error(t, err)
}

func TestControlsTableMissingHeading(t *testing.T) {
	_, err := ControlsTable(writeHelpFile(t, "# no controls here\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "## Controls")
}

func TestControlsTableHeadingWithoutTable(t *testing.T) {
	_, err := ControlsTable(writeHelpFile(t, "## Controls\n\njust prose\n"))
	assert.Error(t, err)
}
