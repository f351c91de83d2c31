package seed

import (
	"fmt"

	"github.com/projectida/seedcss/endian"
	"github.com/projectida/seedcss/errs"
)

// DataHeader is the fixed section of a data record header. The first 8
// bytes (sequence number, quality indicator, reserved byte) are consumed by
// the framer; parseDataHeader handles the remaining 40.
type DataHeader struct {
	Seqno    int
	Quality  byte // data header/quality indicator: D, R, Q or M
	Station  string
	Location string
	Channel  string
	Network  string
	Start    Time
	Nsamples int

	// SampleRateFactor > 0 counts samples per second, < 0 seconds per
	// sample; the multiplier scales (> 0) or divides (< 0).
	SampleRateFactor     int
	SampleRateMultiplier int

	Activity   byte
	IOFlags    byte
	DataQual   byte
	NumBlk     int // number of data blockettes that follow
	Correction int // time correction in 0.0001-second ticks
	Offset     int // beginning of data
	Boffset    int // offset to the first data blockette
}

// parseDataHeader parses the last 40 bytes of the 48-byte fixed header.
func parseDataHeader(b []byte, o endian.Order) (DataHeader, error) {
	var h DataHeader

	if len(b) < 40 {
		return h, fmt.Errorf("%w: short data header", errs.ErrLength)
	}

	h.Station = trimBytes(b[0:5])
	h.Location = trimBytes(b[5:7])
	h.Channel = trimBytes(b[7:10])
	h.Network = trimBytes(b[10:12])

	var err error
	if h.Start, err = parseBTime(b[12:22], o); err != nil {
		return h, err
	}

	h.Nsamples = int(o.Uint16(b[22:24]))
	h.SampleRateFactor = int(o.Int16(b[24:26]))
	h.SampleRateMultiplier = int(o.Int16(b[26:28]))

	h.Activity = b[28]
	h.IOFlags = b[29]
	h.DataQual = b[30]
	h.NumBlk = int(b[31])
	h.Correction = int(o.Int32(b[32:36]))
	h.Offset = int(o.Uint16(b[36:38]))
	h.Boffset = int(o.Uint16(b[38:40]))

	return h, nil
}

// SampleRate resolves the factor/multiplier pair into samples per second.
func (h *DataHeader) SampleRate() float64 {
	var rate float64

	switch {
	case h.SampleRateFactor == 0:
		return 0
	case h.SampleRateFactor > 0:
		rate = float64(h.SampleRateFactor)
	default:
		rate = -1.0 / float64(h.SampleRateFactor)
	}

	switch {
	case h.SampleRateMultiplier > 0:
		rate *= float64(h.SampleRateMultiplier)
	case h.SampleRateMultiplier < 0:
		rate /= -float64(h.SampleRateMultiplier)
	}

	return rate
}

// StartTime returns the record start epoch. The 0.0001-second correction is
// added only when the activity flag's "time correction applied" bit is
// clear.
func (h *DataHeader) StartTime() float64 {
	if h.Activity&0x02 == 0 {
		return h.Start.Epoch() + float64(h.Correction)/10000.0
	}

	return h.Start.Epoch()
}

// EndTime returns the epoch of the last sample.
func (h *DataHeader) EndTime() float64 {
	return h.StartTime() + float64(h.Nsamples-1)/h.SampleRate()
}
