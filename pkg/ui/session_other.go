//go:build !linux
// +build !linux

package ui

import (
	"fmt"
	"io"
)

// PrepareTerminal hides the cursor while the dashboard runs. Echo
// suppression is only implemented on Linux.
func PrepareTerminal(out io.Writer, outFD, inFD int) (func(), error) {
	if !IsTerminal(outFD) {
		return func() {}, nil
	}
	fmt.Fprint(out, "\033[?25l")
	return func() { fmt.Fprint(out, "\033[?25h") }, nil
}
