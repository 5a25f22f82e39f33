package controller

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
)

func TestNewUIFactory(t *testing.T) {
	cmd := &cobra.Command{}
	cmd.SetOut(&bytes.Buffer{})

	_, isTUI := NewUI(cmd, true).(*TUI)
	require.True(t, isTUI, "TTY mode must produce the Bubble Tea UI")

	_, isSimple := NewUI(cmd, false).(*SimpleUI)
	require.True(t, isSimple, "non-TTY mode must produce the plain UI")
}

func TestIsTTY(t *testing.T) {
	require.False(t, IsTTY(&bytes.Buffer{}), "a buffer is not a terminal")

	f, err := os.Create(filepath.Join(t.TempDir(), "out"))
	require.NoError(t, err)
	defer f.Close()
	require.False(t, IsTTY(f), "a regular file is not a terminal")
}

func TestSimpleUI(t *testing.T) {
	var out bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&out)

	ui := NewSimpleUI(cmd)
	require.NoError(t, ui.Start(500))
	ui.Progress(100)
	ui.Close()

	require.Contains(t, out.String(), "sampling 500 mutations")
}
