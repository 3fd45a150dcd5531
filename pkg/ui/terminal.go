package ui

import "golang.org/x/term"

// DefaultHeight is used when the terminal size cannot be determined, for
// example when output is piped.
const DefaultHeight = 24

// getSize allows tests to stub the terminal size query.
var getSize = term.GetSize

// VisibleRows reports the height of the terminal behind fd.
func VisibleRows(fd int) int {
	_, height, err := getSize(fd)
	if err != nil || height <= 0 {
		return DefaultHeight
	}
	return height
}

// RowBudget converts a terminal height into the number of table rows a frame
// may use. One line is kept for the header; frames end without a newline, so
// header plus budget fills the terminal exactly.
func RowBudget(height int) int {
	return max(height-1, 1)
}

// IsTerminal reports whether fd is an interactive terminal.
func IsTerminal(fd int) bool {
	return term.IsTerminal(fd)
}
