//go:build cgozstd

package seedio

import (
	"io"

	"github.com/valyala/gozstd"
)

// newZstdReader wraps r in the cgo zstd decoder, which trades a cgo
// dependency for faster decompression of large volumes.
func newZstdReader(r io.Reader) (io.Reader, func() error, error) {
	zr := gozstd.NewReader(r)

	closer := func() error {
		zr.Release()
		return nil
	}

	return zr, closer, nil
}
