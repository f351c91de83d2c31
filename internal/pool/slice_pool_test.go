package pool

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetByteSlice(t *testing.T) {
	buf, cleanup := GetByteSlice(100)
	require.Len(t, buf, 100)
	cleanup()

	// A second get after cleanup reuses capacity.
	buf2, cleanup2 := GetByteSlice(50)
	require.Len(t, buf2, 50)
	cleanup2()
}

func TestGetInt32Slice(t *testing.T) {
	s, cleanup := GetInt32Slice(256)
	defer cleanup()

	require.Len(t, s, 256)
}
