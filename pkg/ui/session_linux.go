//go:build linux
// +build linux

package ui

import (
	"fmt"
	"io"

	"golang.org/x/sys/unix"
)

// PrepareTerminal hides the cursor and stops stdin echo while the dashboard
// runs. The returned func undoes both. Non-terminals are left alone; a failure
// to silence echo is reported but the cursor is still hidden.
func PrepareTerminal(out io.Writer, outFD, inFD int) (func(), error) {
	if !IsTerminal(outFD) {
		return func() {}, nil
	}

	undoEcho := func() {}
	var err error
	if IsTerminal(inFD) {
		if undo, echoErr := disableInputEcho(inFD); echoErr != nil {
			err = fmt.Errorf("suppressing stdin echo: %w", echoErr)
		} else {
			undoEcho = undo
		}
	}

	fmt.Fprint(out, "\033[?25l") // hide cursor
	return func() {
		undoEcho()
		fmt.Fprint(out, "\033[?25h") // show cursor
	}, err
}

// disableInputEcho clears ECHO on the input terminal. Frames are redrawn in
// place on the main screen, so an echoed keystroke would shift every line
// after it until the next cursor rewind. The returned func puts the saved
// termios back.
func disableInputEcho(fd int) (func(), error) {
	saved, err := unix.IoctlGetTermios(fd, unix.TCGETS)
	if err != nil {
		return nil, fmt.Errorf("reading termios: %w", err)
	}
	if saved.Lflag&unix.ECHO == 0 {
		return func() {}, nil
	}

	quiet := *saved
	quiet.Lflag &^= unix.ECHO
	if err := unix.IoctlSetTermios(fd, unix.TCSETS, &quiet); err != nil {
		return nil, fmt.Errorf("writing termios: %w", err)
	}
	return func() { _ = unix.IoctlSetTermios(fd, unix.TCSETS, saved) }, nil
}
