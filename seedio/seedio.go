// Package seedio opens SEED volume files for reading, transparently
// decompressing the archive formats volumes are commonly distributed in
// (.gz, .zst, .lz4).
//
// A decompressed stream is not seekable; callers that extract waveforms
// from a compressed volume must retain record payloads while reading (see
// seed.WithKeepData).
package seedio

import (
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/pierrec/lz4/v4"
)

// Volume is an open SEED volume.
type Volume struct {
	io.Reader
	file   *os.File
	closer func() error
}

// Seekable reports whether the volume supports random access to record
// payloads.
func (v *Volume) Seekable() bool {
	_, ok := v.Reader.(io.ReadSeeker)
	return ok
}

// File returns the underlying file when the volume is uncompressed, or nil.
func (v *Volume) File() *os.File {
	if v.Seekable() {
		return v.file
	}

	return nil
}

// Close releases the decompressor, if any, and the underlying file.
func (v *Volume) Close() error {
	var err error
	if v.closer != nil {
		err = v.closer()
	}
	if cerr := v.file.Close(); err == nil {
		err = cerr
	}

	return err
}

// Open opens a SEED volume, choosing a decompressor from the file name
// extension.
func Open(path string) (*Volume, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	switch {
	case strings.HasSuffix(path, ".gz"):
		zr, err := gzip.NewReader(f)
		if err != nil {
			f.Close()
			return nil, err
		}
		return &Volume{Reader: zr, file: f, closer: zr.Close}, nil

	case strings.HasSuffix(path, ".zst"):
		zr, closer, err := newZstdReader(f)
		if err != nil {
			f.Close()
			return nil, err
		}
		return &Volume{Reader: zr, file: f, closer: closer}, nil

	case strings.HasSuffix(path, ".lz4"):
		return &Volume{Reader: lz4.NewReader(f), file: f}, nil
	}

	return &Volume{Reader: f, file: f}, nil
}
