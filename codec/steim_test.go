package codec

import (
	"encoding/binary"
	"math/rand"
	"testing"

	"github.com/projectida/seedcss/endian"
	"github.com/stretchr/testify/require"
)

// frameBuilder assembles Steim frames slot by slot.
type frameBuilder struct {
	bo    binary.ByteOrder
	buf   []byte
	ctrl  uint32
	slot  int
	frame []byte
}

func newFrameBuilder(bo binary.ByteOrder) *frameBuilder {
	return &frameBuilder{bo: bo, frame: make([]byte, 64), slot: 1}
}

func (f *frameBuilder) addSlot(nibble uint32, word []byte) {
	copy(f.frame[4*f.slot:], word)
	f.ctrl |= nibble << (2 * uint(15-f.slot))
	f.slot++
	if f.slot == 16 {
		f.flush()
	}
}

func (f *frameBuilder) flush() {
	f.bo.PutUint32(f.frame[0:4], f.ctrl)
	f.buf = append(f.buf, f.frame...)
	f.frame = make([]byte, 64)
	f.ctrl = 0
	f.slot = 1
}

func (f *frameBuilder) bytes() []byte {
	if f.slot > 1 {
		f.flush()
	}

	return f.buf
}

func (f *frameBuilder) u32(v uint32) []byte {
	b := make([]byte, 4)
	f.bo.PutUint32(b, v)

	return b
}

func asUint16(v int16) uint16 {
	return uint16(v)
}

func asUint32(v int32) uint32 {
	return uint32(v)
}

// accumulate reproduces the decoder contract: first difference seeds the
// running value at the initial sample.
func accumulate(initial int32, diffs []int32) []int32 {
	out := make([]int32, len(diffs))
	last := initial - diffs[0]
	for i, d := range diffs {
		last += d
		out[i] = last
	}

	return out
}

func TestDecodeSteim1_AllClasses(t *testing.T) {
	for _, tc := range []struct {
		name string
		bo   binary.ByteOrder
		o    endian.Order
	}{
		{"big-endian", binary.BigEndian, endian.BigEndian},
		{"little-endian", binary.LittleEndian, endian.LittleEndian},
	} {
		t.Run(tc.name, func(t *testing.T) {
			diffs := []int32{0, 1, -2, 3, 1000, -2000, 70000, -1}

			f := newFrameBuilder(tc.bo)
			want := accumulate(100, diffs)
			f.addSlot(0, f.u32(uint32(100)))               // X0
			f.addSlot(0, f.u32(uint32(want[len(want)-1]))) // Xn
			// four 8-bit differences
			f.addSlot(1, []byte{0, 1, 0xfe, 3})
			// two 16-bit differences
			w := make([]byte, 4)
			tc.bo.PutUint16(w[0:2], asUint16(1000))
			tc.bo.PutUint16(w[2:4], asUint16(-2000))
			f.addSlot(2, w)
			// one 32-bit difference each
			f.addSlot(3, f.u32(asUint32(70000)))
			f.addSlot(3, f.u32(asUint32(-1)))

			out := make([]int32, len(diffs))
			n := decodeSteim1(f.bytes(), tc.o, len(diffs), out)
			require.Equal(t, len(diffs), n)
			require.Equal(t, want, out)
		})
	}
}

// steim2Word packs diffs of width bits into one 32-bit word under the given
// dnib.
func steim2Word(dnib uint32, width uint, diffs []int32) uint32 {
	word := dnib << 30
	// the packed differences end at bit 0; 7x4-bit packings leave bits
	// 28-29 unused
	shift := width * uint(len(diffs)-1)
	for _, d := range diffs {
		word |= (uint32(d) & (1<<width - 1)) << shift
		shift -= width
	}

	return word
}

func TestDecodeSteim2_AllPackings(t *testing.T) {
	bo := binary.BigEndian
	o := endian.BigEndian

	var diffs []int32
	f := newFrameBuilder(bo)

	addPacked := func(dnib uint32, width uint, d []int32) {
		nibble := uint32(2)
		if width <= 6 {
			nibble = 3
		}
		f.addSlot(nibble, f.u32(steim2Word(dnib, width, d)))
		diffs = append(diffs, d...)
	}

	f.addSlot(0, f.u32(asUint32(-5))) // X0, patched below
	f.addSlot(0, f.u32(0))            // Xn, unused by the decoder

	// four 8-bit differences (same as Steim-1)
	f.addSlot(1, []byte{0, 5, 0xfb, 20})
	diffs = append(diffs, 0, 5, -5, 20)

	addPacked(1, 30, []int32{123456})                // one 30-bit
	addPacked(2, 15, []int32{-9000, 9000})           // two 15-bit
	addPacked(3, 10, []int32{-500, 0, 511})          // three 10-bit
	addPacked(2, 4, []int32{-8, 7, 1, -1, 2, -2, 0}) // seven 4-bit
	addPacked(1, 5, []int32{-16, 15, 3, -3, 8, -8})  // six 5-bit
	addPacked(0, 6, []int32{-32, 31, 12, -12, 5})    // five 6-bit

	payload := f.bytes()
	want := accumulate(-5, diffs)
	// X0 is the first sample value
	bo.PutUint32(payload[4:8], uint32(want[0]))

	out := make([]int32, len(diffs))
	n := decodeSteim2(payload, o, len(diffs), out)
	require.Equal(t, len(diffs), n)
	require.Equal(t, want, out)
}

func TestDecodeSteim1_RoundTripRandom(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	samples := make([]int32, 400)
	val := int32(0)
	for i := range samples {
		val += int32(rng.Intn(200) - 100)
		samples[i] = val
	}

	// pack every difference as one 32-bit slot
	f := newFrameBuilder(binary.BigEndian)
	f.addSlot(0, f.u32(uint32(samples[0])))
	f.addSlot(0, f.u32(uint32(samples[len(samples)-1])))
	prev := samples[0]
	f.addSlot(3, f.u32(asUint32(0))) // first difference
	for i := 1; i < len(samples); i++ {
		f.addSlot(3, f.u32(uint32(samples[i]-prev)))
		prev = samples[i]
	}

	out := make([]int32, len(samples))
	n := decodeSteim1(f.bytes(), endian.BigEndian, len(samples), out)
	require.Equal(t, len(samples), n)
	require.Equal(t, samples, out)
}

func TestDecodeSteim_ShortPayloadZeroFills(t *testing.T) {
	f := newFrameBuilder(binary.BigEndian)
	f.addSlot(0, f.u32(uint32(7)))
	f.addSlot(0, f.u32(0))
	f.addSlot(1, []byte{0, 1, 1, 1})

	out := make([]int32, 8)
	n := decodeSteim1(f.bytes(), endian.BigEndian, 8, out)
	require.Equal(t, 4, n)
	require.Equal(t, []int32{7, 8, 9, 10, 0, 0, 0, 0}, out)
}
