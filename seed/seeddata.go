package seed

import (
	"io"
	"math"
	"strings"

	"github.com/projectida/seedcss/codec"
	"github.com/projectida/seedcss/internal/pool"
)

// SeedData holds the data records of one continuous time series: a
// non-empty run of records sharing station, network, channel, location,
// sample rate and quality, contiguous in time. Calib is the scaling from
// counts to nanometres of displacement; Calper is the calibration period in
// seconds. Channel is a read-only view of the channel metadata, nil when
// the volume carries none.
type SeedData struct {
	Calib   float64
	Calper  float64
	Channel *Channel
	Records []*DataRecord
}

// Nsamples returns the total sample count over all member records.
func (s *SeedData) Nsamples() int {
	n := 0
	for _, r := range s.Records {
		n += r.Header.Nsamples
	}

	return n
}

// SampRate returns the segment sample rate.
func (s *SeedData) SampRate() float64 {
	if len(s.Records) > 0 {
		return s.Records[0].SampleRate
	}

	return 0
}

// StartTime returns the epoch of the first sample.
func (s *SeedData) StartTime() float64 {
	if len(s.Records) > 0 {
		return s.Records[0].Header.StartTime()
	}

	return 0
}

// EndTime returns the epoch of the last sample.
func (s *SeedData) EndTime() float64 {
	if rate := s.SampRate(); rate != 0 {
		return s.StartTime() + float64(s.Nsamples()-1)/rate
	}

	return 0
}

// Header returns the data header of the first record, which carries the
// identity of the whole segment.
func (s *SeedData) Header() *DataHeader {
	return &s.Records[0].Header
}

// ReadData decodes the segment's samples into out by seeking to each member
// record's payload in the source. It returns the number of samples decoded.
// A record whose decoded count disagrees with its header is reported with a
// warning, not an error.
func (s *SeedData) ReadData(in io.ReadSeeker, out []float32) (int, error) {
	nsamp := 0
	for _, rec := range s.Records {
		if nsamp+rec.Header.Nsamples > len(out) {
			break
		}
		if _, err := in.Seek(rec.FileOffset, io.SeekStart); err != nil {
			return nsamp, err
		}

		buf, cleanup := pool.GetByteSlice(rec.DataLength)
		if _, err := io.ReadFull(in, buf); err != nil {
			cleanup()
			return nsamp, err
		}

		n, err := codec.Decode(rec.Format, buf, rec.Order,
			rec.Header.Nsamples, out[nsamp:])
		cleanup()
		if err != nil {
			return nsamp, err
		}
		s.warnShortDecode(rec, n)
		nsamp += n
	}

	return nsamp, nil
}

// DecodeData decodes the segment's samples from the payloads retained in
// keep-data mode.
func (s *SeedData) DecodeData(out []float32) (int, error) {
	nsamp := 0
	for _, rec := range s.Records {
		if nsamp+rec.Header.Nsamples > len(out) {
			break
		}
		n, err := rec.Decode(out[nsamp:])
		if err != nil {
			return nsamp, err
		}
		s.warnShortDecode(rec, n)
		nsamp += n
	}

	return nsamp, nil
}

func (s *SeedData) warnShortDecode(rec *DataRecord, n int) {
	if n != rec.Header.Nsamples {
		log.Warnf("decoded nsamples != header.nsamples. seqno: %d sta: %s "+
			"chan: %s loc: %s", rec.Header.Seqno, rec.Header.Station,
			rec.Header.Channel, rec.Header.Location)
	}
}

// newSeedData creates a segment seeded with one record and resolves its
// calib and calper from the channel's stage-0 sensitivity. A channel whose
// input signal units describe velocity or acceleration has its sensitivity
// converted to displacement before the calib is formed.
func (r *Reader) newSeedData(dr *DataRecord) *SeedData {
	sd := &SeedData{Records: []*DataRecord{dr}}

	channel := r.findChannel(&dr.Header)
	if channel == nil {
		return sd
	}
	sd.Channel = channel.Clone()

	b58 := channel.B58Stage(0)
	if b58 == nil || b58.Sensitivity == 0 || b58.Frequency == 0 {
		return sd
	}

	sd.Calib = 1.0e9 / (b58.Sensitivity * r.displacementFactor(channel, b58))
	sd.Calper = 1.0 / b58.Frequency

	return sd
}

// displacementFactor returns the factor converting the channel's stage-0
// sensitivity to a displacement sensitivity: 2πf for velocity units,
// (2πf)² for acceleration, 1 otherwise. The unit kind comes from the B34
// description named by the channel's signal units.
func (r *Reader) displacementFactor(channel *Channel, b58 *Blockette58) float64 {
	b34 := r.dictionary.B34(channel.B52.SignalUnits)
	if b34 == nil {
		return 1.0
	}

	desc := strings.ToUpper(b34.Description)
	switch {
	case strings.Contains(desc, "VEL"):
		return 2.0 * math.Pi * b58.Frequency
	case strings.Contains(desc, "ACCEL"):
		return 4.0 * math.Pi * math.Pi * b58.Frequency * b58.Frequency
	}

	return 1.0
}
