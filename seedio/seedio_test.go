package seedio

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
	"github.com/stretchr/testify/require"
)

var payload = []byte("000001V 010009502.3")

func TestOpen_Plain(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "vol.seed")
	require.NoError(t, os.WriteFile(path, payload, 0o644))

	v, err := Open(path)
	require.NoError(t, err)
	defer v.Close()

	require.True(t, v.Seekable())
	require.NotNil(t, v.File())

	data, err := io.ReadAll(v)
	require.NoError(t, err)
	require.Equal(t, payload, data)
}

func TestOpen_Gzip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "vol.seed.gz")

	f, err := os.Create(path)
	require.NoError(t, err)
	zw := gzip.NewWriter(f)
	_, err = zw.Write(payload)
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	require.NoError(t, f.Close())

	v, err := Open(path)
	require.NoError(t, err)
	defer v.Close()

	require.False(t, v.Seekable())
	require.Nil(t, v.File())

	data, err := io.ReadAll(v)
	require.NoError(t, err)
	require.Equal(t, payload, data)
}

func TestOpen_Zstd(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "vol.seed.zst")

	f, err := os.Create(path)
	require.NoError(t, err)
	zw, err := zstd.NewWriter(f)
	require.NoError(t, err)
	_, err = zw.Write(payload)
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	require.NoError(t, f.Close())

	v, err := Open(path)
	require.NoError(t, err)
	defer v.Close()

	require.False(t, v.Seekable())

	data, err := io.ReadAll(v)
	require.NoError(t, err)
	require.Equal(t, payload, data)
}

func TestOpen_LZ4(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "vol.seed.lz4")

	f, err := os.Create(path)
	require.NoError(t, err)
	zw := lz4.NewWriter(f)
	_, err = zw.Write(payload)
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	require.NoError(t, f.Close())

	v, err := Open(path)
	require.NoError(t, err)
	defer v.Close()

	data, err := io.ReadAll(v)
	require.NoError(t, err)
	require.Equal(t, payload, data)
}

func TestOpen_Missing(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "nope.seed"))
	require.Error(t, err)
}
