package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRootHelpListsCommands(t *testing.T) {
	out, err := execute(t, "--help")
	require.NoError(t, err)

	require.Contains(t, out, "morph")
	require.Contains(t, out, "dist")
	require.Contains(t, out, "shrink")
	require.Contains(t, out, "version")
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	require.Contains(t, out, "morph dev")
}

func TestConfigFlagIsHonored(t *testing.T) {
	path := filepath.Join(t.TempDir(), "morph.yml")
	require.NoError(t, os.WriteFile(path, []byte("samples: 64\nplain: true\n"), 0o644))

	out, err := execute(t, "--config", path, "dist", "bool", "--seed", "3")
	require.NoError(t, err)

	require.Contains(t, out, "sampling 64 mutations")
}
