// SPDX-License-Identifier: Apache-2.0

// Package help extracts the controls table from a markdown help file and
// lays it out as aligned plain-text lines for the TUI help overlay.
package help

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ControlsHeading is the markdown heading the controls table must follow.
const ControlsHeading = "## Controls"

var kbdPattern = regexp.MustCompile(`</?kbd>`)

// ControlsTable reads the help file and returns the rows of the controls
// table as aligned plain-text lines: header row first, then one line per
// binding. The markdown separator row is dropped.
func ControlsTable(filename string) ([]string, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read help file %s: %w", filename, err)
	}
	rows, err := tableRows(string(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return alignRows(rows), nil
}

// tableRows finds the controls heading and collects the cell contents of
// the markdown table that follows it.
func tableRows(data string) ([][]string, error) {
	lines := strings.Split(data, "\n")
	start := -1
	for i, line := range lines {
		if strings.TrimSpace(line) == ControlsHeading {
			start = i + 1
			break
		}
	}
	if start == -1 {
		return nil, fmt.Errorf("no %q heading found", ControlsHeading)
	}

	var rows [][]string
	for _, line := range lines[start:] {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			if len(rows) > 0 {
				break
			}
			continue
		}
		if !strings.HasPrefix(trimmed, "|") {
			if len(rows) > 0 {
				break
			}
			continue
		}
		if isSeparatorRow(trimmed) {
			continue
		}
		rows = append(rows, splitRow(trimmed))
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("no table found under %q heading", ControlsHeading)
	}
	return rows, nil
}

// isSeparatorRow matches the |---|---| row under a markdown table header.
func isSeparatorRow(line string) bool {
	stripped := strings.Trim(line, "| ")
	if stripped == "" {
		return false
	}
	for _, r := range stripped {
		if r != '-' && r != ':' && r != '|' && r != ' ' {
			return false
		}
	}
	return true
}

func splitRow(line string) []string {
	line = kbdPattern.ReplaceAllString(line, "")
	cells := strings.Split(strings.Trim(line, "|"), "|")
	for i := range cells {
		cells[i] = strings.TrimSpace(cells[i])
	}
	return cells
}

// alignRows pads every cell to its column width so the overlay can print
// the rows as-is.
func alignRows(rows [][]string) []string {
	columns := 0
	for _, row := range rows {
		if len(row) > columns {
			columns = len(row)
		}
	}
	// Column widths are display widths, not byte counts, so cells like
	// "↑/k" line up with their ASCII neighbors.
	widths := make([]int, columns)
	for _, row := range rows {
		for i, cell := range row {
			if w := lipgloss.Width(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}

	out := make([]string, 0, len(rows))
	for _, row := range rows {
		var b strings.Builder
		for i := 0; i < columns; i++ {
			cell := ""
			if i < len(row) {
				cell = row[i]
			}
			b.WriteString(cell)
			if i < columns-1 {
				b.WriteString(strings.Repeat(" ", widths[i]-lipgloss.Width(cell)+2))
			}
		}
		out = append(out, strings.TrimRight(b.String(), " "))
	}
	return out
}
