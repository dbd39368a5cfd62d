package sm4

import (
	"math/bits"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

// TestTablesNotInitialized checks that the accelerated transform is refused
// until InitTables has run.
func TestTablesNotInitialized(t *testing.T) {
	resetTables()
	defer InitTables()

	_, err := LoadTables()
	require.ErrorIs(t, err, ErrNotInitialized)

	_, err = TableEngine()
	require.ErrorIs(t, err, ErrNotInitialized)

	// Without tables the cipher.Block adapter still works on the direct
	// transform.
	c, err := NewCipher(stdPlain.Bytes())
	require.NoError(t, err)
	dst := make([]byte, BlockSize)
	c.Encrypt(dst, stdPlain.Bytes())
	require.Equal(t, stdCiph.Bytes(), dst)

	tb := InitTables()
	require.NoError(t, tb.ready())

	loaded, err := LoadTables()
	require.NoError(t, err)
	require.Same(t, tb, loaded)
}

func TestInitTablesIdempotent(t *testing.T) {
	const n = 8

	var (
		wg  sync.WaitGroup
		got [n]*Tables
	)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			got[i] = InitTables()
		}(i)
	}
	wg.Wait()

	for i := 1; i < n; i++ {
		require.Same(t, got[0], got[i])
	}
}

func TestTableLayout(t *testing.T) {
	tb := InitTables()
	for b := 0; b < 256; b++ {
		base := tb.t0[b]
		require.Equal(t, l(uint32(sBox[b])<<24), base)
		require.Equal(t, bits.RotateLeft32(base, 8), tb.t1[b])
		require.Equal(t, bits.RotateLeft32(base, 16), tb.t2[b])
		require.Equal(t, bits.RotateLeft32(base, 24), tb.t3[b])
	}
}

// TestTransformEquivalenceBytes exhaustively compares both transforms on every
// byte value in every byte position.
func TestTransformEquivalenceBytes(t *testing.T) {
	tb := InitTables()
	for pos := 0; pos < 4; pos++ {
		for b := 0; b < 256; b++ {
			v := uint32(b) << (8 * pos)
			if got, want := tb.Transform(v), Direct.Transform(v); got != want {
				t.Fatalf("T(%08x): table %08x, direct %08x",
					v, got, want)
			}
		}
	}
}

func TestTransformEquivalenceWords(t *testing.T) {
	tb := InitTables()
	rapid.Check(t, func(rt *rapid.T) {
		v := rapid.Uint32().Draw(rt, "v")
		require.Equal(rt, Direct.Transform(v), tb.Transform(v))
	})
}

func TestLinearDiffusion(t *testing.T) {
	// L and L' are linear over xor.
	rapid.Check(t, func(rt *rapid.T) {
		a := rapid.Uint32().Draw(rt, "a")
		b := rapid.Uint32().Draw(rt, "b")
		require.Equal(rt, l(a)^l(b), l(a^b))
		require.Equal(rt, lAp(a)^lAp(b), lAp(a^b))
	})

	require.Equal(t, uint32(0), l(0))
	require.Equal(t, uint32(0), lAp(0))
	require.Equal(t, uint32(1|1<<2|1<<10|1<<18|1<<24), l(1))
	require.Equal(t, uint32(1|1<<13|1<<23), lAp(1))
}

func TestTau(t *testing.T) {
	require.Equal(t, uint32(0xd6d6d6d6), tau(0))
	require.Equal(t, uint32(0x48484848), tau(0xffffffff))
	require.Equal(t, uint32(0xd690e9fe), tau(0x00010203))

	// The S-box is a permutation of the byte values.
	var seen [256]bool
	for _, s := range sBox {
		require.False(t, seen[s], "duplicate s-box value %02x", s)
		seen[s] = true
	}
}

func TestUnbuiltTablesTransform(t *testing.T) {
	var nilTables *Tables
	for _, tb := range []*Tables{new(Tables), nilTables} {
		require.PanicsWithValue(t, ErrNotInitialized, func() {
			tb.Transform(0x01234567)
		})
	}

	// A caller-built engine around unbuilt tables must not produce a
	// ciphertext either.
	rk := GenerateRoundKeys(stdKey)
	e := &Engine{tr: new(Tables)}
	require.PanicsWithValue(t, ErrNotInitialized, func() {
		e.EncryptBlock(stdPlain, &rk)
	})
}
