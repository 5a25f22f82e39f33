package mutators

import (
	"testing"

	"github.com/mouse-blink/morph"
	"github.com/stretchr/testify/require"
)

func TestDefaultResolvesBuiltins(t *testing.T) {
	m, err := Default[uint16]()
	require.NoError(t, err)

	s := morph.NewSession().Seed(1)
	changed := false
	var v uint16
	for _it := 0; _it < 8; _it++ {
		require.NoError(t, morph.MutateWith(s, m, &v))
		if v != 0 {
			changed = true
		}
	}
	require.True(t, changed)
}

func TestDefaultUnregistered(t *testing.T) {
	type custom struct{ a, b int }

	_, err := Default[custom]()
	require.Error(t, err)
}

func TestMutateWorksForAllRegisteredBuiltins(t *testing.T) {
	s := morph.NewSession().Seed(2)

	var b bool
	require.NoError(t, morph.Mutate(s, &b))

	var i8 int8
	require.NoError(t, morph.Mutate(s, &i8))

	var u64 uint64
	require.NoError(t, morph.Mutate(s, &u64))

	var f float64
	require.NoError(t, morph.Mutate(s, &f))

	var r rune // alias of int32, resolved through the int32 default
	require.NoError(t, morph.Mutate(s, &r))
}
