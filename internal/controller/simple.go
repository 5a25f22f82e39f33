package controller

import "github.com/spf13/cobra"

// SimpleUI is the non-interactive UI: one line at the start, silence while
// running, so piped output stays clean.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI printing through the command.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// Start announces the run.
func (s *SimpleUI) Start(total int) error {
	s.cmd.Printf("sampling %d mutations\n", total)
	return nil
}

// Progress is a no-op for the plain UI.
func (s *SimpleUI) Progress(int) {}

// Close is a no-op for the plain UI.
func (s *SimpleUI) Close() {}
