// Package seedtest builds synthetic SEED volumes for tests: logical
// control records with ASCII blockette images, mini-SEED data records, and
// Steim-compressed payloads.
package seedtest

import (
	"encoding/binary"
	"fmt"
)

// Volume accumulates fixed-length logical records.
type Volume struct {
	reclen int
	seq    int
	buf    []byte
}

// NewVolume creates a builder for logical records of reclen bytes.
func NewVolume(reclen int) *Volume {
	return &Volume{reclen: reclen, seq: 1}
}

// AddControl appends one control record of the given type holding the
// concatenated blockette images, spilling into continuation records when
// the content exceeds one record.
func (v *Volume) AddControl(typ byte, blockettes ...string) {
	content := ""
	for _, b := range blockettes {
		content += b
	}

	cont := byte(' ')
	for {
		chunk := content
		if max := v.reclen - 8; len(chunk) > max {
			chunk = chunk[:max]
		}
		content = content[len(chunk):]

		rec := make([]byte, 0, v.reclen)
		rec = append(rec, fmt.Sprintf("%06d%c%c", v.seq, typ, cont)...)
		v.seq++
		rec = append(rec, chunk...)
		for len(rec) < v.reclen {
			rec = append(rec, ' ')
		}
		v.buf = append(v.buf, rec...)

		if len(content) == 0 {
			break
		}
		cont = '*'
	}
}

// AddRecord appends a raw logical record, typically a data record built
// with DataRecord.
func (v *Volume) AddRecord(rec []byte) {
	if len(rec) != v.reclen {
		panic(fmt.Sprintf("record length %d != %d", len(rec), v.reclen))
	}
	v.seq++
	v.buf = append(v.buf, rec...)
}

// Bytes returns the volume image.
func (v *Volume) Bytes() []byte {
	return v.buf
}

// Blockette frames a control blockette image: 3-digit type, 4-digit total
// length, body.
func Blockette(btype int, body string) string {
	return fmt.Sprintf("%03d%04d%s", btype, len(body)+7, body)
}

// B10Body builds a Volume Identifier Blockette body with the given logical
// record length exponent.
func B10Body(lreclenExp int) string {
	return fmt.Sprintf("02.3%02d~~~TEST~~", lreclenExp)
}

// B30Body builds a Data Format Dictionary Blockette body.
func B30Body(code int, name string, family int, keys ...string) string {
	body := fmt.Sprintf("%s~%04d%03d%02d", name, code, family, len(keys))
	for _, k := range keys {
		body += k + "~"
	}

	return body
}

// B33Body builds a Generic Abbreviation Blockette body.
func B33Body(code int, description string) string {
	return fmt.Sprintf("%03d%s~", code, description)
}

// B34Body builds a Units Abbreviations Blockette body.
func B34Body(code int, name, description string) string {
	return fmt.Sprintf("%03d%s~%s~", code, name, description)
}

// B50Body builds a Station Identifier Blockette body, including the
// version 2.3 trailing network code.
func B50Body(sta, net, name, wordOrder, shortOrder, start, end string) string {
	return fmt.Sprintf("%-5.5s%10.4f%11.4f%7.1f%4d%3d%s~%03d%s%s%s~%s~N%-2.2s",
		sta, 37.9304, 58.1189, 678.0, 1, 0, name, 1, wordOrder, shortOrder,
		start, end, net)
}

// B52Body builds a Channel Identifier Blockette body.
func B52Body(loc, chanCode string, instrument, signalUnits, formatCode int,
	rate, drift float64, start string) string {

	return fmt.Sprintf("%-2.2s%-3.3s    %03d~%03d%03d%10.4f%11.4f%7.1f%5.1f%5.1f%5.1f%04d%02d%10.4f%10.4E%04d~%s~~N",
		loc, chanCode, instrument, signalUnits, 0, 37.9304, 58.1189, 678.0,
		0.0, 0.0, -90.0, formatCode, 12, rate, drift, 0, start)
}

// PZ is one pole or zero for B43Body and B53Body.
type PZ struct {
	Re, Im float64
}

func pzList(pz []PZ) string {
	s := fmt.Sprintf("%03d", len(pz))
	for _, p := range pz {
		s += fmt.Sprintf("%12.5E%12.5E%12.5E%12.5E", p.Re, p.Im, 0.0, 0.0)
	}

	return s
}

// B53Body builds a Response (Poles & Zeros) Blockette body.
func B53Body(typ string, stage, inUnits, outUnits int, a0, normFreq float64,
	zeros, poles []PZ) string {

	return fmt.Sprintf("%1s%02d%03d%03d%12.5E%11.5E", typ, stage, inUnits,
		outUnits, a0, normFreq) + pzList(zeros) + pzList(poles)
}

// B43Body builds a Response (Poles & Zeros) Dictionary Blockette body.
func B43Body(code int, name, typ string, inUnits, outUnits int, a0,
	normFreq float64, zeros, poles []PZ) string {

	return fmt.Sprintf("%04d%s~%1s%03d%03d%12.5E%12.5E", code, name, typ,
		inUnits, outUnits, a0, normFreq) + pzList(zeros) + pzList(poles)
}

// B57Body builds a Decimation Blockette body.
func B57Body(stage int, inputRate float64, factor, offset int, delay,
	correction float64) string {

	return fmt.Sprintf("%02d%10.4f%5d%5d%11.4E%11.4E", stage, inputRate,
		factor, offset, delay, correction)
}

// B58Body builds a Channel Sensitivity/Gain Blockette body with no
// calibration history.
func B58Body(stage int, sensitivity, frequency float64) string {
	return fmt.Sprintf("%02d%12.5E%12.5E%02d", stage, sensitivity, frequency, 0)
}

// B60Body builds a Response Reference Blockette body.
func B60Body(stages map[int][]int, order []int) string {
	body := fmt.Sprintf("%02d", len(order))
	for _, stage := range order {
		codes := stages[stage]
		body += fmt.Sprintf("%02d%02d", stage, len(codes))
		for _, code := range codes {
			body += fmt.Sprintf("%04d", code)
		}
	}

	return body
}

// B61Body builds a FIR Response Blockette body.
func B61Body(stage int, name, symmetry string, inUnits, outUnits int,
	coef []float64) string {

	body := fmt.Sprintf("%02d%s~%1s%03d%03d%04d", stage, name, symmetry,
		inUnits, outUnits, len(coef))
	for _, c := range coef {
		body += fmt.Sprintf("%14.7E", c)
	}

	return body
}

// DataSpec describes one mini-SEED data record.
type DataSpec struct {
	Seqno    int
	Quality  byte // defaults to 'D'
	Sta      string
	Loc      string
	Chan     string
	Net      string
	Year     int
	Doy      int
	Hour     int
	Minute   int
	Second   int
	Frac     int // 0.0001-second ticks
	Nsamples int
	Factor   int
	Mult     int
	Format   byte
	RecExp   int // record length as a power of 2

	// HeaderBig selects the byte order of the fixed header and blockette
	// framing; PayloadBig is the order blockette 1000 declares for the
	// sample payload. Mini-SEED commonly pairs a big-endian header with a
	// little-endian payload.
	HeaderBig  bool
	PayloadBig bool
	Payload    []byte
}

func (s *DataSpec) byteOrder() binary.ByteOrder {
	if s.HeaderBig {
		return binary.BigEndian
	}

	return binary.LittleEndian
}

// DataRecord builds a complete data record of 2^RecExp bytes: the 48-byte
// fixed header, one blockette 1000 at offset 48, and the payload at offset
// 64.
func DataRecord(s DataSpec) []byte {
	bo := s.byteOrder()
	reclen := 1 << uint(s.RecExp)
	rec := make([]byte, reclen)

	quality := s.Quality
	if quality == 0 {
		quality = 'D'
	}
	copy(rec[0:6], fmt.Sprintf("%06d", s.Seqno))
	rec[6] = quality
	rec[7] = ' '
	copy(rec[8:13], fmt.Sprintf("%-5s", s.Sta))
	copy(rec[13:15], fmt.Sprintf("%-2s", s.Loc))
	copy(rec[15:18], fmt.Sprintf("%-3s", s.Chan))
	copy(rec[18:20], fmt.Sprintf("%-2s", s.Net))

	// BTIME
	bo.PutUint16(rec[20:22], uint16(s.Year))
	bo.PutUint16(rec[22:24], uint16(s.Doy))
	rec[24] = byte(s.Hour)
	rec[25] = byte(s.Minute)
	rec[26] = byte(s.Second)
	bo.PutUint16(rec[28:30], uint16(s.Frac))

	bo.PutUint16(rec[30:32], uint16(s.Nsamples))
	bo.PutUint16(rec[32:34], uint16(int16(s.Factor)))
	bo.PutUint16(rec[34:36], uint16(int16(s.Mult)))
	rec[39] = 1 // one data blockette
	bo.PutUint32(rec[40:44], 0)
	bo.PutUint16(rec[44:46], 64) // data offset
	bo.PutUint16(rec[46:48], 48) // first blockette offset

	// blockette 1000
	bo.PutUint16(rec[48:50], 1000)
	bo.PutUint16(rec[50:52], 0)
	rec[52] = s.Format
	if s.PayloadBig {
		rec[53] = 1
	}
	rec[54] = byte(s.RecExp)

	copy(rec[64:], s.Payload)

	return rec
}

// SteimPayload packs samples into Steim frames using only 8-bit difference
// slots, padded with skip frames to nbytes. Successive differences must fit
// in a signed byte. The encoding is valid Steim-1 and Steim-2.
func SteimPayload(samples []int32, bo binary.ByteOrder, nbytes int) []byte {
	diffs := make([]int32, len(samples))
	for i := 1; i < len(samples); i++ {
		d := samples[i] - samples[i-1]
		if d < -128 || d > 127 {
			panic("difference does not fit an 8-bit Steim slot")
		}
		diffs[i] = d
	}

	payload := make([]byte, 0, nbytes)
	di := 0
	frame := 0
	for di < len(diffs) {
		var ctrl uint32
		buf := make([]byte, 64)
		slot := 1

		if frame == 0 {
			// X0 and Xn
			bo.PutUint32(buf[4:8], uint32(samples[0]))
			bo.PutUint32(buf[8:12], uint32(samples[len(samples)-1]))
			slot = 3
		}
		for ; slot < 16 && di < len(diffs); slot++ {
			n := len(diffs) - di
			if n > 4 {
				n = 4
			}
			if n < 4 {
				// a class-1 slot holds exactly four differences
				panic("sample count must put four differences in each slot")
			}
			for k := 0; k < 4; k++ {
				buf[4*slot+k] = byte(int8(diffs[di]))
				di++
			}
			ctrl |= 1 << (2 * uint(15-slot))
		}
		bo.PutUint32(buf[0:4], ctrl)
		payload = append(payload, buf...)
		frame++
	}

	for len(payload) < nbytes {
		payload = append(payload, make([]byte, 64)...)
	}

	return payload[:nbytes]
}

// Int32Payload packs samples as 32-bit integers.
func Int32Payload(samples []int32, bo binary.ByteOrder) []byte {
	out := make([]byte, 4*len(samples))
	for i, v := range samples {
		bo.PutUint32(out[4*i:], uint32(v))
	}

	return out
}

// Int16Payload packs samples as 16-bit integers.
func Int16Payload(samples []int16, bo binary.ByteOrder) []byte {
	out := make([]byte, 2*len(samples))
	for i, v := range samples {
		bo.PutUint16(out[2*i:], uint16(v))
	}

	return out
}

// Ramp returns n samples stepping by delta.
func Ramp(n int, delta int32) []int32 {
	out := make([]int32, n)
	for i := 1; i < n; i++ {
		out[i] = out[i-1] + delta
	}

	return out
}
