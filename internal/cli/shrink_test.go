package cli

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestShrinkFindsLimit(t *testing.T) {
	out, err := execute(t, "shrink", "--start", "1000000", "--limit", "10", "--seed", "9")
	require.NoError(t, err)

	require.Contains(t, out, "smallest failing input: 10")
	require.Contains(t, out, "10 is not below 10")
}

func TestShrinkPropertyHolds(t *testing.T) {
	// A start value below the limit satisfies the property, and the
	// mutation budget is tiny so the harness is unlikely to escape it...
	// with limit high enough it cannot fail at all.
	out, err := execute(t, "shrink", "--start", "5", "--limit", "9223372036854775807", "--seed", "9")
	require.NoError(t, err)

	require.Contains(t, out, "property held")
}

func TestShrinkVerboseLogs(t *testing.T) {
	out, err := execute(t, "shrink", "--start", "100000", "--limit", "10", "--seed", "10", "-v")
	require.NoError(t, err)

	require.Contains(t, out, "property failed")
	require.Contains(t, out, "msg=")
}
