package endian

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func permutations(digits []byte) []string {
	if len(digits) == 1 {
		return []string{string(digits)}
	}

	var out []string
	for i := range digits {
		rest := make([]byte, 0, len(digits)-1)
		rest = append(rest, digits[:i]...)
		rest = append(rest, digits[i+1:]...)
		for _, p := range permutations(rest) {
			out = append(out, string(digits[i])+p)
		}
	}

	return out
}

func TestFromSeed_AllPermutations(t *testing.T) {
	// For every declared permutation, storing the digit bytes in declared
	// order and reading through the permutation must recover the value
	// whose significance bytes are exactly those digits.
	for _, wo := range permutations([]byte("0123")) {
		order, err := FromSeed(wo, "10")
		require.NoError(t, err, "word order %q", wo)

		stored := []byte(wo)
		for i := range stored {
			stored[i] -= '0'
		}
		// Each stored byte i has significance wo[i]-'0' and value wo[i]-'0',
		// so the assembled word is always 0x03020100.
		require.Equal(t, uint32(0x03020100), order.Uint32(stored), "word order %q", wo)
	}
}

func TestFromSeed_ShortOrders(t *testing.T) {
	for _, so := range []string{"10", "01"} {
		order, err := FromSeed("3210", so)
		require.NoError(t, err)

		stored := []byte{so[0] - '0', so[1] - '0'}
		require.Equal(t, uint16(0x0100), order.Uint16(stored), "short order %q", so)
	}
}

func TestFromSeed_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		word  string
		short string
	}{
		{"short word order", "321", "10"},
		{"repeated digit", "3211", "10"},
		{"bad digit", "321x", "10"},
		{"short short order", "3210", "1"},
		{"bad short digit", "3210", "12"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FromSeed(tt.word, tt.short)
			require.Error(t, err)
		})
	}
}

func TestOrder_BigEndianValues(t *testing.T) {
	require := require.New(t)

	require.Equal(uint32(0x01020304), BigEndian.Uint32([]byte{1, 2, 3, 4}))
	require.Equal(uint32(0x04030201), LittleEndian.Uint32([]byte{1, 2, 3, 4}))
	require.Equal(int32(-1), BigEndian.Int32([]byte{0xff, 0xff, 0xff, 0xff}))
	require.Equal(uint16(0x0102), BigEndian.Uint16([]byte{1, 2}))
	require.Equal(int16(-2), BigEndian.Int16([]byte{0xff, 0xfe}))
	require.Equal(float32(1.0), BigEndian.Float32([]byte{0x3f, 0x80, 0x00, 0x00}))
}

func TestOrder_Reversed(t *testing.T) {
	require := require.New(t)

	b := []byte{1, 2, 3, 4}
	require.Equal(LittleEndian.Uint32(b), BigEndian.Reversed().Uint32(b))
	require.Equal(BigEndian.Uint16([]byte{1, 2}), LittleEndian.Reversed().Uint16([]byte{1, 2}))
}
