package codec

import "github.com/projectida/seedcss/endian"

// Steim-1 and Steim-2 block-differential decoders.
//
// Both codecs pack samples as differences in 64-byte frames of sixteen
// 32-bit slots. Slot 0 is a control word whose sixteen 2-bit nibbles
// classify the remaining slots; frame 0 slots 1 and 2 carry the absolute
// initial and final sample values (the final value is only an integrity
// aid). The decoders accumulate differences onto a running value seeded
// from the initial sample minus the first decoded difference, so the first
// emitted sample equals the stored initial value.

const (
	steimFrameSize = 64
	steimFrameSlots = 16
)

// steimState carries the running accumulation shared by both codecs.
type steimState struct {
	out     []int32
	nwant   int
	count   int
	last    int32
	initial int32
	first   bool
}

func (s *steimState) push(diff int32) {
	if s.first {
		s.last = s.initial - diff
		s.first = false
	}
	s.last += diff
	if s.count < s.nwant {
		s.out[s.count] = s.last
	}
	s.count++
}

func (s *steimState) finish(codec string) int {
	for i := s.count; i < s.nwant; i++ {
		s.out[i] = 0
	}
	if s.count < s.nwant {
		log.Warnf("%s decompress sample count error: decoded %d of %d",
			codec, s.count, s.nwant)
	}

	return s.count
}

// decodeSteim1 decompresses a Steim-1 payload.
func decodeSteim1(data []byte, o endian.Order, nsamples int, out []int32) int {
	st := &steimState{out: out, nwant: nsamples, first: true}
	numFrames := len(data) / steimFrameSize
	if numFrames > 0 {
		st.initial = o.Int32(data[4:8])
	}

	for i := 0; i < numFrames; i++ {
		frame := data[i*steimFrameSize:]
		ctrl := o.Uint32(frame[0:4])

		for j := 1; j < steimFrameSlots; j++ {
			slot := frame[4*j : 4*j+4]
			switch (ctrl >> (2 * uint(15-j))) & 3 {
			case 1: // four 8-bit differences
				for k := 0; k < 4; k++ {
					st.push(int32(int8(slot[k])))
				}
			case 2: // two 16-bit differences
				st.push(int32(o.Int16(slot[0:2])))
				st.push(int32(o.Int16(slot[2:4])))
			case 3: // one 32-bit difference
				st.push(o.Int32(slot))
			case 0: // not data
			}
		}
	}

	return st.finish("Steim1")
}

// steim2Packing describes how a 32-bit Steim-2 slot subdivides its low 30
// bits: count differences of width bits after discarding pre high bits.
type steim2Packing struct {
	count int
	width uint
	pre   uint
}

// steim2Packings is indexed by [control nibble - 2][dnib]. A zero entry
// means the dnib is not a valid packing for that nibble.
var steim2Packings = [2][4]steim2Packing{
	// nibble 2: large differences
	{
		1: {count: 1, width: 30, pre: 2},
		2: {count: 2, width: 15, pre: 2},
		3: {count: 3, width: 10, pre: 2},
	},
	// nibble 3: small differences
	{
		0: {count: 5, width: 6, pre: 2},
		1: {count: 6, width: 5, pre: 2},
		2: {count: 7, width: 4, pre: 4},
	},
}

// decodeSteim2 decompresses a Steim-2 payload.
func decodeSteim2(data []byte, o endian.Order, nsamples int, out []int32) int {
	st := &steimState{out: out, nwant: nsamples, first: true}
	numFrames := len(data) / steimFrameSize
	if numFrames > 0 {
		st.initial = o.Int32(data[4:8])
	}

	for i := 0; i < numFrames; i++ {
		frame := data[i*steimFrameSize:]
		ctrl := o.Uint32(frame[0:4])

		for j := 1; j < steimFrameSlots; j++ {
			slot := frame[4*j : 4*j+4]
			nibble := (ctrl >> (2 * uint(15-j))) & 3
			switch nibble {
			case 1: // four 8-bit differences, as in Steim-1
				for k := 0; k < 4; k++ {
					st.push(int32(int8(slot[k])))
				}
			case 2, 3:
				word := o.Int32(slot)
				dnib := (word >> 30) & 3
				p := steim2Packings[nibble-2][dnib]
				if p.count == 0 {
					continue
				}
				ci := word << p.pre
				for k := 0; k < p.count; k++ {
					st.push(ci >> (32 - p.width))
					ci <<= p.width
				}
			case 0: // not data
			}
		}
	}

	return st.finish("Steim2")
}
