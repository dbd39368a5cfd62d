package sm4

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseBlock(t *testing.T) {
	tests := []struct {
		in      string
		want    Block
		wantErr bool
	}{
		{"0123456789abcdeffedcba9876543210", stdPlain, false},
		{"01234567 89abcdef fedcba98 76543210", stdPlain, false},
		{"0x0123456789ABCDEFFEDCBA9876543210", stdPlain, false},
		{"0123456789abcdeffedcba98765432", Block{}, true},
		{"0123456789abcdeffedcba987654321011", Block{}, true},
		{"zz23456789abcdeffedcba9876543210", Block{}, true},
		{"0x01234567 0x89abcdef 0xfedcba98 0x76543210", stdPlain, false},
		{"0X01234567 89abcdef 0xfedcba98 76543210", stdPlain, false},
	}

	for _, tc := range tests {
		got, err := ParseBlock(tc.in)
		if tc.wantErr {
			require.Error(t, err, tc.in)
			continue
		}
		require.NoError(t, err, tc.in)
		require.Equal(t, tc.want, got)
	}

	_, err := ParseKey("00112233")
	require.ErrorIs(t, err, ErrInvalidLength)
}

func TestParseWrongDigitCount(t *testing.T) {
	const digits = "0123456789abcdeffedcba9876543210"

	for _, in := range []string{
		digits[:30],
		digits[:31],
		digits + "1",
		digits + "11",
		"0x01234567 0x89abcdef 0xfedcba98 0x7654321",
		"",
	} {
		_, err := ParseBlock(in)
		require.ErrorIs(t, err, ErrInvalidLength, "block %q", in)

		_, err = ParseKey(in)
		require.ErrorIs(t, err, ErrInvalidLength, "key %q", in)
	}
}

func TestBlockBytes(t *testing.T) {
	p := stdPlain.Bytes()
	require.Equal(t, []byte{
		0x01, 0x23, 0x45, 0x67, 0x89, 0xab, 0xcd, 0xef,
		0xfe, 0xdc, 0xba, 0x98, 0x76, 0x54, 0x32, 0x10,
	}, p)

	b, err := BlockFromBytes(p)
	require.NoError(t, err)
	require.Equal(t, stdPlain, b)

	k, err := KeyFromBytes(p)
	require.NoError(t, err)
	require.Equal(t, stdKey, k)
	require.Equal(t, stdPlain.String(), k.String())
}
