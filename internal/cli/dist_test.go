package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mouse-blink/morph/internal/domain"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cmd := newRootCmd()
	cmd.AddCommand(newDistCmd(), newShrinkCmd(), newVersionCmd())

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

func TestDistBool(t *testing.T) {
	out, err := execute(t, "dist", "bool", "--plain",
		"--samples", "2000", "--seed", "5", "--parallel", "2")
	require.NoError(t, err)

	require.Contains(t, out, "sampling 2000 mutations")
	require.Contains(t, out, "BUCKET")
	require.Contains(t, out, "true")
	require.Contains(t, out, "false")
	require.Contains(t, out, "2000")
}

func TestDistUint8Buckets(t *testing.T) {
	out, err := execute(t, "dist", "u8", "--plain", "--samples", "3000", "--seed", "6")
	require.NoError(t, err)

	// A uniform byte redraw must populate the top power-of-two bucket.
	require.Contains(t, out, "2^7")
	require.Contains(t, out, "3000")
}

func TestDistRuneBuckets(t *testing.T) {
	out, err := execute(t, "dist", "rune", "--plain", "--samples", "3000", "--seed", "7")
	require.NoError(t, err)

	require.Contains(t, out, "printable ascii")
	require.Contains(t, out, "plane 0")
}

func TestDistShrinkMode(t *testing.T) {
	out, err := execute(t, "dist", "u16", "--plain", "--samples", "2000", "--seed", "8",
		"--start", "60000", "--shrink")
	require.NoError(t, err)

	// Values walk all the way down to zero before the sampler resets them.
	require.Contains(t, out, "zero")
	require.Contains(t, out, "TOTAL")
}

func TestDistUnknownMutator(t *testing.T) {
	_, err := execute(t, "dist", "complex128", "--plain", "--samples", "10")
	require.Error(t, err)
	require.Contains(t, err.Error(), "unknown mutator")
}

func TestDistRequiresMutatorArg(t *testing.T) {
	_, err := execute(t, "dist")
	require.Error(t, err)
}

func TestBucketInt(t *testing.T) {
	require.Equal(t, "zero", bucketInt(uint8(0)))
	require.Equal(t, "2^0", bucketInt(uint8(1)))
	require.Equal(t, "2^7", bucketInt(uint8(255)))
	require.Equal(t, "2^7", bucketInt(uint8(128)))
	require.Equal(t, "-2^3", bucketInt(int8(-9)))
	require.Equal(t, "-2^63", bucketInt(int64(-1<<63)))
}

func TestBucketRune(t *testing.T) {
	require.Equal(t, "printable ascii", bucketRune('a'))
	require.Equal(t, "plane 0", bucketRune('\n'))
	require.Equal(t, "plane 0", bucketRune(0xFFFF))
	require.Equal(t, "plane 1", bucketRune(0x10010))
	require.Equal(t, "planes 4-16", bucketRune(0x10FFFF))
}

func TestRenderDistributionSorted(t *testing.T) {
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)

	renderDistribution(cmd, domain.Distribution{"rare": 1, "common": 99})

	s := out.String()
	require.Contains(t, s, "common")
	require.Contains(t, s, "rare")
	require.Less(t, strings.Index(s, "common"), strings.Index(s, "rare"),
		"buckets must be sorted by count, descending")
	require.Contains(t, s, "100")
}
