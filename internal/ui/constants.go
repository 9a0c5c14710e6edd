// SPDX-License-Identifier: Apache-2.0

package ui

// state represents the different views or modes of the TUI.
type state int

const (
	stateList state = iota
	stateInsert
	stateEdit
	stateColorPicker
	stateHelp
	stateQuitConfirm
)

const (
	headerHeight = 1 // Height reserved for the main title header.
	footerHeight = 2 // Blank line plus key hints / alert line.
)
