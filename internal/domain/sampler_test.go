package domain

import (
	"errors"
	"sync/atomic"
	"testing"

	"github.com/mouse-blink/morph"
	"github.com/mouse-blink/morph/mutators"
	"github.com/stretchr/testify/require"
)

func TestSampleCountsEverySample(t *testing.T) {
	dist, err := Sample(mutators.Bool(), false, func(v bool) string {
		if v {
			return "true"
		}
		return "false"
	}, Options{Samples: 1000, Workers: 4, Seed: 9})
	require.NoError(t, err)

	require.Equal(t, 1000, dist.Total())
	require.Greater(t, dist["true"], 0)
	require.Greater(t, dist["false"], 0)
}

func TestSampleSingleWorkerDeterministic(t *testing.T) {
	run := func() Distribution {
		dist, err := Sample(mutators.Int[uint8](), uint8(0), func(v uint8) string {
			if v < 128 {
				return "low"
			}
			return "high"
		}, Options{Samples: 500, Workers: 1, Seed: 11})
		require.NoError(t, err)
		return dist
	}

	require.Equal(t, run(), run())
}

func TestSampleResetsExhaustedValue(t *testing.T) {
	// In shrink mode the integer mutator exhausts at zero; the sampler must
	// reset to the start value and keep drawing instead of stopping early.
	dist, err := Sample(mutators.Int[uint8](), uint8(200), func(v uint8) string {
		return "any"
	}, Options{Samples: 2000, Workers: 2, Seed: 13, Shrink: true})
	require.NoError(t, err)

	require.Greater(t, dist["any"], 1000, "most iterations should produce a value")
	require.LessOrEqual(t, dist.Total(), 2000)
}

func TestSamplePropagatesMutatorError(t *testing.T) {
	boom := errors.New("boom")
	m := morph.Func(func(c *morph.Candidates, v *int) error { return boom })

	_, err := Sample(m, 0, func(int) string { return "x" }, Options{Samples: 100, Workers: 4})
	require.ErrorIs(t, err, boom)
}

func TestSampleReportsProgress(t *testing.T) {
	var last atomic.Int64
	_, err := Sample(mutators.Bool(), false, func(bool) string { return "b" }, Options{
		Samples: 5000,
		Workers: 3,
		Seed:    17,
		Progress: func(done int) {
			last.Store(int64(done))
		},
	})
	require.NoError(t, err)
	require.Equal(t, int64(5000), last.Load())
}

func TestSampleNoSamples(t *testing.T) {
	dist, err := Sample(mutators.Bool(), false, func(bool) string { return "b" }, Options{})
	require.NoError(t, err)
	require.Empty(t, dist)
}
