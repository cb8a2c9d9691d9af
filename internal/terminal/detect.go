// Package terminal provides terminal detection utilities.
package terminal

import (
	"io"

	"golang.org/x/term"
)

// IsTerminal reports whether w is a file descriptor attached to a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(interface{ Fd() uintptr })
	return ok && term.IsTerminal(int(f.Fd()))
}
