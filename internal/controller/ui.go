// Package controller provides the user-facing progress UIs for long
// sampling runs: a Bubble Tea progress bar on interactive terminals and a
// plain-text fallback everywhere else.
package controller

import (
	"io"
	"os"

	"github.com/spf13/cobra"
)

// UI reports progress of a sampling run.
type UI interface {
	// Start begins a run of total steps.
	Start(total int) error
	// Progress reports that done steps have completed. Safe to call from
	// any goroutine.
	Progress(done int)
	// Close finishes the run and releases the terminal.
	Close()
}

// NewUI creates a UI for the command's output. When useTTY is true it
// returns the Bubble Tea progress bar, otherwise the plain writer UI.
func NewUI(cmd *cobra.Command, useTTY bool) UI {
	if useTTY {
		return NewTUI(cmd.OutOrStdout())
	}
	return NewSimpleUI(cmd)
}

// IsTTY reports whether w is an interactive terminal rather than a file or
// pipe.
func IsTTY(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	info, err := file.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice != 0
}
