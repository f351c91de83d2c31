// Package codec decompresses SEED sample payloads into host-endian sample
// arrays.
//
// The supported encodings are fixed-width integers (16, 24 and 32 bit),
// IEEE single-precision floats, and the Steim-1 and Steim-2 block
// differential codecs. All decoders are pure functions over the payload
// bytes and a byte-order permutation; none of them retains state.
//
// A payload that decodes to fewer samples than the data header claims is a
// recoverable condition, never an error. The Steim decoders zero-fill the
// trailing samples and log a warning; the fixed-width decoders return the
// shorter count without a warning and write nothing past it.
package codec

import (
	"fmt"

	"github.com/projectida/seedcss/endian"
	"github.com/projectida/seedcss/errs"
)

// Decode decompresses data into out, which must hold nsamples values, and
// returns the number of samples actually decoded. A decoded count short of
// nsamples is not an error; an unsupported format is. For the integer and
// Steim formats the remainder of out holds zeros; for float32 it is left
// unchanged.
func Decode(format Format, data []byte, o endian.Order, nsamples int, out []float32) (int, error) {
	if nsamples > len(out) {
		nsamples = len(out)
	}

	switch format {
	case FormatInt16, FormatInt24, FormatInt32, FormatSteim1, FormatSteim2:
		idata := make([]int32, nsamples)
		n, err := DecodeInts(format, data, o, nsamples, idata)
		if err != nil {
			return 0, err
		}
		for i := 0; i < nsamples; i++ {
			out[i] = float32(idata[i])
		}

		return n, nil

	case FormatFloat32:
		return decodeFloat32(data, o, nsamples, out), nil
	}

	return 0, fmt.Errorf("%w: cannot decompress format %d", errs.ErrEncoding,
		format)
}

// DecodeInts is the integer-output form of Decode, for the integer and
// Steim encodings. On a short decode the Steim decoders zero-fill the rest
// of out; the fixed-width decoders leave it unchanged.
func DecodeInts(format Format, data []byte, o endian.Order, nsamples int, out []int32) (int, error) {
	if nsamples > len(out) {
		nsamples = len(out)
	}

	switch format {
	case FormatInt16:
		return decodeInt16(data, o, nsamples, out), nil
	case FormatInt24:
		return decodeInt24(data, o, nsamples, out), nil
	case FormatInt32:
		return decodeInt32(data, o, nsamples, out), nil
	case FormatSteim1:
		return decodeSteim1(data, o, nsamples, out), nil
	case FormatSteim2:
		return decodeSteim2(data, o, nsamples, out), nil
	}

	return 0, fmt.Errorf("%w: cannot decompress format %d", errs.ErrEncoding,
		format)
}
