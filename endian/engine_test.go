package endian

import (
	"encoding/binary"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/require"
)

func TestCheckEndianness(t *testing.T) {
	require := require.New(t)

	result := CheckEndianness()

	var testValue uint16 = 0x0102
	testBytes := (*[2]byte)(unsafe.Pointer(&testValue))

	switch testBytes[0] {
	case 0x01:
		require.Equal(binary.BigEndian, result)
	case 0x02:
		require.Equal(binary.LittleEndian, result)
	default:
		t.Fatal("unexpected byte layout")
	}
}

func TestNativeWordOrder(t *testing.T) {
	require := require.New(t)

	order := nativeWordOrder()

	// The probe must yield a bijection over {0,1,2,3}.
	seen := map[int]bool{}
	for _, v := range order {
		require.GreaterOrEqual(v, 0)
		require.LessOrEqual(v, 3)
		require.False(seen[v])
		seen[v] = true
	}

	// Reconstructing 0x03020100 through the reported order must succeed.
	var u [4]byte
	for i := 0; i < 4; i++ {
		u[i] = byte(order[i])
	}
	require.Equal(uint32(0x03020100), *(*uint32)(unsafe.Pointer(&u[0])))
}
