// SPDX-License-Identifier: Apache-2.0

// Package store reads and writes the flat-file list format: one entry per
// line, encoded by internal/todo. A missing file yields an empty list; it is
// created on first save.
package store

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mecaneer23/todo/internal/todo"
)

// Load reads filename and decodes it into a list. A file that does not
// exist is not an error; it returns an empty list.
func Load(filename string) (*todo.List, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		if os.IsNotExist(err) {
			return todo.NewList(nil), nil
		}
		return nil, fmt.Errorf("failed to read list file %s: %w", filename, err)
	}
	return Parse(string(data)), nil
}

// Parse decodes file contents into a list. Blank lines are skipped.
func Parse(data string) *todo.List {
	var entries []todo.Entry
	for _, line := range strings.Split(data, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		entries = append(entries, todo.ParseEntry(line))
	}
	return todo.NewList(entries)
}

// Encode serializes the list back into file contents.
func Encode(l *todo.List) string {
	var b strings.Builder
	for _, e := range l.Entries() {
		b.WriteString(e.String())
		b.WriteString("\n")
	}
	return b.String()
}

// Save writes the list to filename atomically: the contents go to a
// temporary file in the same directory which is then renamed over the
// target, so a failed write never truncates an existing list.
func Save(filename string, l *todo.List) error {
	dir := filepath.Dir(filename)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(filename)+".tmp*")
	if err != nil {
		return fmt.Errorf("failed to create temp file in %s: %w", dir, err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.WriteString(Encode(l)); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write %s: %w", tmpName, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to close %s: %w", tmpName, err)
	}
	if err := os.Rename(tmpName, filename); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to replace %s: %w", filename, err)
	}
	return nil
}
