// SPDX-License-Identifier: Apache-2.0

package config

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mecaneer23/todo/internal/todo"
)

// useTempConfigDir points os.UserConfigDir at a scratch directory.
func useTempConfigDir(t *testing.T) string {
	t.Helper()
	if runtime.GOOS != "linux" && runtime.GOOS != "darwin" {
		t.Skip("config dir redirection relies on XDG_CONFIG_HOME")
	}
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	if runtime.GOOS == "darwin" {
		t.Setenv("HOME", dir)
	}
	return dir
}

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, "~/todo.txt", cfg.File)
	assert.Equal(t, "TODO", cfg.Header)
	assert.True(t, cfg.Autosave)
	assert.False(t, cfg.Strikethrough)
	assert.Equal(t, "README.md", cfg.HelpFile)
	assert.Equal(t, todo.DefaultIndent, cfg.Indent)
}

func TestLoadConfigMissingFileUsesDefaults(t *testing.T) {
	useTempConfigDir(t)

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadConfigPartialFileKeepsDefaults(t *testing.T) {
	useTempConfigDir(t)

	require.NoError(t, EnsureConfigDir())
	path, err := DefaultConfigPath()
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, []byte("header: Groceries\nautosave: false\n"), 0640))

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "Groceries", cfg.Header)
	assert.False(t, cfg.Autosave, "explicit false overrides the default")
	assert.Equal(t, "~/todo.txt", cfg.File, "absent keys keep defaults")
	assert.Equal(t, todo.DefaultIndent, cfg.Indent)
}

func TestLoadConfigInvalidYAML(t *testing.T) {
	useTempConfigDir(t)

	require.NoError(t, EnsureConfigDir())
	path, err := DefaultConfigPath()
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, []byte("{not yaml"), 0640))

	_, err = LoadConfig()
	assert.Error(t, err)
}

func TestSaveConfigRoundTrip(t *testing.T) {
	useTempConfigDir(t)

	want := Config{
		File:          "~/lists/work.txt",
		Header:        "WORK",
		Autosave:      false,
		Strikethrough: true,
		HelpFile:      "HELP.md",
		Indent:        4,
	}
	require.NoError(t, SaveConfig(want))

	got, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestResolvePath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	got, err := ResolvePath("~/todo.txt")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "todo.txt"), got)

	got, err = ResolvePath("/absolute/todo.txt")
	require.NoError(t, err)
	assert.Equal(t, "/absolute/todo.txt", got)

	got, err = ResolvePath("relative.txt")
	require.NoError(t, err)
	assert.Equal(t, "relative.txt", got)
}
