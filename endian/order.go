package endian

import (
	"strings"
	"unsafe"
)

// Order maps bytes as stored in a SEED volume onto host memory. W and S are
// permutations for 32-bit and 16-bit words: host byte W[i] receives stored
// byte i, so loading the permuted buffer as a native word reconstructs the
// declared value.
//
// Invariant: W is a bijection over {0,1,2,3} and S over {0,1}.
type Order struct {
	W [4]int
	S [2]int
}

// BigEndian and LittleEndian are the two orders that occur in practice.
// BigEndian ("3210"/"10") is the fallback for invalid declarations.
var (
	BigEndian    = mustFromSeed("3210", "10")
	LittleEndian = mustFromSeed("0123", "01")
)

// FromSeed builds the permutations for a declared SEED word order and short
// order. A declaration of the wrong length, or one that is not a permutation
// of the expected digits, is rejected; callers fall back to BigEndian.
func FromSeed(wordOrder, shortOrder string) (Order, error) {
	var o Order

	if len(wordOrder) != 4 || !strings.ContainsRune(wordOrder, '0') ||
		!strings.ContainsRune(wordOrder, '1') ||
		!strings.ContainsRune(wordOrder, '2') ||
		!strings.ContainsRune(wordOrder, '3') {
		return o, errInvalidWordOrder(wordOrder)
	}
	if len(shortOrder) != 2 || !strings.ContainsRune(shortOrder, '0') ||
		!strings.ContainsRune(shortOrder, '1') {
		return o, errInvalidShortOrder(shortOrder)
	}

	native := nativeWordOrder()
	for i := 0; i < 4; i++ {
		k := int(wordOrder[i] - '0')
		for j := 0; j < 4; j++ {
			if native[j] == k {
				o.W[i] = j
				break
			}
		}
	}

	shortNative := nativeShortOrder()
	for i := 0; i < 2; i++ {
		k := int(shortOrder[i] - '0')
		for j := 0; j < 2; j++ {
			if shortNative[j] == k {
				o.S[i] = j
			}
		}
	}

	return o, nil
}

func mustFromSeed(wordOrder, shortOrder string) Order {
	o, err := FromSeed(wordOrder, shortOrder)
	if err != nil {
		panic(err)
	}

	return o
}

// Reversed returns the order obtained by flipping the byte significance of
// both words. Data headers written in the wrong byte order are recovered by
// reparsing with the reversed order.
func (o Order) Reversed() Order {
	var r Order
	r.W[0], r.W[1], r.W[2], r.W[3] = o.W[3], o.W[2], o.W[1], o.W[0]
	r.S[0], r.S[1] = o.S[1], o.S[0]

	return r
}

// Significance reports the significance (0 = least, 3 = most) of stored
// byte i under this order.
func (o Order) Significance(i int) int {
	return nativeWordOrder()[o.W[i]]
}

// Uint32 assembles a host-order 32-bit word from the first four stored
// bytes of b.
func (o Order) Uint32(b []byte) uint32 {
	var u [4]byte
	u[o.W[0]] = b[0]
	u[o.W[1]] = b[1]
	u[o.W[2]] = b[2]
	u[o.W[3]] = b[3]

	return *(*uint32)(unsafe.Pointer(&u[0]))
}

// Int32 assembles a signed host-order 32-bit word.
func (o Order) Int32(b []byte) int32 {
	u := o.Uint32(b)
	return *(*int32)(unsafe.Pointer(&u))
}

// Float32 assembles an IEEE single-precision value.
func (o Order) Float32(b []byte) float32 {
	u := o.Uint32(b)
	return *(*float32)(unsafe.Pointer(&u))
}

// Uint16 assembles a host-order 16-bit word from the first two stored
// bytes of b.
func (o Order) Uint16(b []byte) uint16 {
	var u [2]byte
	u[o.S[0]] = b[0]
	u[o.S[1]] = b[1]

	return *(*uint16)(unsafe.Pointer(&u[0]))
}

// Int16 assembles a signed host-order 16-bit word.
func (o Order) Int16(b []byte) int16 {
	u := o.Uint16(b)
	return *(*int16)(unsafe.Pointer(&u))
}
