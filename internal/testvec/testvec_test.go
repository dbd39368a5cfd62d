package testvec

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSourceReproducible(t *testing.T) {
	a, b := New(42), New(42)
	require.Equal(t, uint64(42), a.Seed())

	for i := 0; i < 16; i++ {
		require.Equal(t, a.Block(), b.Block())
		require.Equal(t, a.Key(), b.Key())
	}

	c := New(43)
	require.NotEqual(t, New(42).Block(), c.Block())
}

func TestSourceTimeSeed(t *testing.T) {
	s := New(0)
	require.NotZero(t, s.Seed())
}
