package codec

import "github.com/projectida/seedcss/endian"

// decodeInt16 unpacks 16-bit signed samples.
func decodeInt16(data []byte, o endian.Order, nsamples int, out []int32) int {
	if nsamples > len(data)/2 {
		nsamples = len(data) / 2
	}
	for i := 0; i < nsamples; i++ {
		out[i] = int32(o.Int16(data[2*i:]))
	}

	return nsamples
}

// decodeInt24 unpacks 24-bit samples: the three stored bytes occupy the low
// three significance positions of a 32-bit word whose high byte is set to
// zero.
func decodeInt24(data []byte, o endian.Order, nsamples int, out []int32) int {
	if nsamples > len(data)/3 {
		nsamples = len(data) / 3
	}
	for i := 0; i < nsamples; i++ {
		b := data[3*i : 3*i+3]
		var v uint32
		bi := 0
		for j := 0; j < 4; j++ {
			if sig := o.Significance(j); sig != 3 {
				v |= uint32(b[bi]) << (8 * uint(sig))
				bi++
			}
		}
		out[i] = int32(v)
	}

	return nsamples
}

// decodeInt32 unpacks 32-bit signed samples.
func decodeInt32(data []byte, o endian.Order, nsamples int, out []int32) int {
	if nsamples > len(data)/4 {
		nsamples = len(data) / 4
	}
	for i := 0; i < nsamples; i++ {
		out[i] = o.Int32(data[4*i:])
	}

	return nsamples
}

// decodeFloat32 unpacks IEEE single-precision samples.
func decodeFloat32(data []byte, o endian.Order, nsamples int, out []float32) int {
	if nsamples > len(data)/4 {
		nsamples = len(data) / 4
	}
	for i := 0; i < nsamples; i++ {
		out[i] = o.Float32(data[4*i:])
	}

	return nsamples
}
