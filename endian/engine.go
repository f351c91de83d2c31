// Package endian provides byte order utilities for decoding SEED words.
//
// SEED volumes declare the byte order of multi-byte fields per station
// (blockette 50) or per record (blockette 1000) as a digit string naming the
// significance of each stored byte: "3210" is big-endian, "0123" is
// little-endian, and the format in principle permits any permutation. This
// package probes the host layout once and builds, for a declared SEED order,
// the permutation that reassembles stored bytes into host-order 16- and
// 32-bit words.
//
// # Basic Usage
//
//	order, err := endian.FromSeed("3210", "10")
//	if err != nil { ... }
//	v := order.Uint32(buf[0:4])
//
// The returned Order values are immutable and safe for concurrent use.
package endian

import (
	"encoding/binary"
	"unsafe"
)

// EndianEngine combines ByteOrder and AppendByteOrder from encoding/binary
// into a single interface. It is satisfied by binary.LittleEndian and
// binary.BigEndian and is used where a plain host-facing byte order is
// enough, such as writing waveform files.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// CheckEndianness uses a fixed integer value to determine the host's byte
// order.
func CheckEndianness() binary.ByteOrder {
	// 0x0100 is 256. For a little-endian system, the LSB (0x00) is first.
	var i uint16 = 0x0100

	b := (*[2]byte)(unsafe.Pointer(&i))
	if b[0] == 0x01 {
		return binary.BigEndian
	}

	return binary.LittleEndian
}

func IsNativeLittleEndian() bool {
	return CheckEndianness() == binary.LittleEndian
}

func IsNativeBigEndian() bool {
	return CheckEndianness() == binary.BigEndian
}

// NativeEngine returns the engine matching the host byte order.
func NativeEngine() EndianEngine {
	if IsNativeBigEndian() {
		return binary.BigEndian
	}

	return binary.LittleEndian
}

// nativeWordOrder reports the significance (0 = least) of each host byte of
// a 32-bit word: it is the probe that matches the bytes {0,1,2,3} against
// the integer 0x03020100 (50462976).
func nativeWordOrder() [4]int {
	var u uint32 = 0x03020100
	b := (*[4]byte)(unsafe.Pointer(&u))

	var order [4]int
	for i := 0; i < 4; i++ {
		order[i] = int(b[i])
	}

	return order
}

// nativeShortOrder is the 16-bit companion of nativeWordOrder.
func nativeShortOrder() [2]int {
	var u uint16 = 0x0100
	b := (*[2]byte)(unsafe.Pointer(&u))

	return [2]int{int(b[0]), int(b[1])}
}
