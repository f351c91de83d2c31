package seed

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/projectida/seedcss/codec"
	"github.com/projectida/seedcss/endian"
	"github.com/projectida/seedcss/errs"
	"github.com/projectida/seedcss/internal/options"
)

// ExceptionMask selects which soft framer errors are elevated to
// caller-visible failures. With a bit clear the error stays soft: a bad
// control blockette length, or a data record with no resolvable format,
// sets the matching state flag and skips the rest of the current logical
// record; a field format error sets the FMT flag and reading resumes at the
// next blockette; a malformed record sequence number or record type is
// logged as a warning, sets no flag, and reading continues.
type ExceptionMask byte

const (
	// ExceptFmt elevates field format errors.
	ExceptFmt ExceptionMask = 0x01
	// ExceptHdr elevates malformed control headers.
	ExceptHdr ExceptionMask = 0x02
	// ExceptLen elevates short-blockette errors.
	ExceptLen ExceptionMask = 0x04
	// ExceptSeqno elevates non-integer record sequence numbers.
	ExceptSeqno ExceptionMask = 0x08
)

const defaultRecordLength = 4096

// Reader is a SEED input stream framer. It frames fixed-length logical
// records, parses control blockettes, maintains the station table and the
// abbreviation dictionary, and assembles data records into continuous
// SeedData segments with one object of look-ahead.
type Reader struct {
	in io.Reader

	lreclen       int
	logicalOffset int
	recordIndex   int
	absOffset     int64

	ctrlTypes string
	dataTypes string

	recordType byte
	recordCont byte
	seqno      int

	raw      bool
	keepData bool
	bits     ExceptionMask
	state    ExceptionMask

	readingData bool
	queue       []any

	stations   []*Station
	dictionary *Dictionary
}

// ReaderOption configures a Reader.
type ReaderOption = options.Option[*Reader]

// WithRawMode makes Next yield individual *DataRecord values instead of
// grouped *SeedData segments, and keeps records with no samples.
func WithRawMode() ReaderOption {
	return options.NoError(func(r *Reader) { r.raw = true })
}

// WithKeepData retains each record's compressed payload in memory instead
// of recording only its file offset. Required when the source is not
// seekable, such as a compressed volume.
func WithKeepData() ReaderOption {
	return options.NoError(func(r *Reader) { r.keepData = true })
}

// WithExceptions sets the mask of soft errors that become failures.
func WithExceptions(mask ExceptionMask) ReaderOption {
	return options.NoError(func(r *Reader) { r.bits = mask })
}

// WithControlTypes overrides the record type codes treated as control
// headers (default "VAST").
func WithControlTypes(types string) ReaderOption {
	return options.NoError(func(r *Reader) { r.ctrlTypes = types })
}

// WithDataTypes overrides the record type codes treated as data/quality
// headers (default "DRQM").
func WithDataTypes(types string) ReaderOption {
	return options.NoError(func(r *Reader) { r.dataTypes = types })
}

// NewReader creates a SEED reader over in. The logical record length starts
// at 4096 bytes and follows the volume blockettes thereafter.
func NewReader(in io.Reader, opts ...ReaderOption) (*Reader, error) {
	r := &Reader{
		in:         in,
		lreclen:    defaultRecordLength,
		ctrlTypes:  "VAST",
		dataTypes:  "DRQM",
		dictionary: NewDictionary(),
	}
	if err := options.Apply(r, opts...); err != nil {
		return nil, err
	}

	return r, nil
}

// Stations returns the stations collected so far, in volume order.
func (r *Reader) Stations() []*Station { return r.stations }

// Dictionary returns the reader's abbreviation dictionary.
func (r *Reader) Dictionary() *Dictionary { return r.dictionary }

// State returns the accumulated soft-error flags.
func (r *Reader) State() ExceptionMask { return r.state }

// Good reports whether no soft error has been recorded.
func (r *Reader) Good() bool { return r.state == 0 }

// RecordType returns the type code of the current logical record.
func (r *Reader) RecordType() byte { return r.recordType }

// RecordContinuation returns the continuation flag of the current logical
// record.
func (r *Reader) RecordContinuation() byte { return r.recordCont }

// RecordSequenceNumber returns the sequence number of the current logical
// record.
func (r *Reader) RecordSequenceNumber() int { return r.seqno }

// LogicalRecordLength returns the current logical record length.
func (r *Reader) LogicalRecordLength() int { return r.lreclen }

// Next returns the next object from the volume: a control Blockette, a
// *SeedData segment, or (in raw mode) a *DataRecord. It returns (nil, nil)
// at the end of the volume.
//
// Outside raw mode, data records with no samples or a non-positive sample
// rate are dropped.
func (r *Reader) Next() (any, error) {
	var obj any
	var err error

	if !r.raw {
		for {
			obj, err = r.nextObject()
			if err != nil || obj == nil {
				return nil, err
			}
			dr, ok := obj.(*DataRecord)
			if !ok || (dr.Header.Nsamples > 0 && dr.SampleRate > 0) {
				break
			}
		}
	} else {
		obj, err = r.nextObject()
		if err != nil || obj == nil {
			return nil, err
		}
	}

	if dr, ok := obj.(*DataRecord); ok && !r.raw {
		return r.groupSeedData(dr)
	}

	return obj, nil
}

// nextObject returns the next queued object or reads one, applying the
// exception mask to soft errors.
func (r *Reader) nextObject() (any, error) {
	if len(r.queue) > 0 {
		obj := r.queue[0]
		r.queue = r.queue[1:]

		return obj, nil
	}
	r.state = 0

	for {
		obj, err := r.readObject()
		switch {
		case err == nil:
			return obj, nil

		case errors.Is(err, io.EOF):
			return nil, nil

		case errors.Is(err, errs.ErrSkipRecord):
			if err := r.skipRecord(); err != nil {
				return nil, err
			}

		case errors.Is(err, errs.ErrLength):
			r.state |= ExceptLen
			if r.bits&ExceptLen != 0 {
				return nil, err
			}
			if err := r.skipRecord(); err != nil {
				return nil, err
			}

		case errors.Is(err, errs.ErrHeader):
			r.state |= ExceptHdr
			if r.bits&ExceptHdr != 0 {
				return nil, err
			}
			if err := r.skipRecord(); err != nil {
				return nil, err
			}

		case errors.Is(err, errs.ErrSeqno):
			return nil, err

		case errors.Is(err, errs.ErrFormat):
			r.state |= ExceptFmt
			if r.bits&ExceptFmt != 0 {
				return nil, err
			}
			// skip to the next blockette

		default:
			return nil, err
		}
	}
}

// readBytes reads n bytes, transparently consuming the 8-byte control
// header of each logical record crossed.
func (r *Reader) readBytes(n int) ([]byte, error) {
	buf := make([]byte, n)
	if err := r.fillBytes(buf); err != nil {
		return nil, err
	}

	return buf, nil
}

func (r *Reader) fillBytes(buf []byte) error {
	n := len(buf)
	if r.logicalOffset+n > r.lreclen {
		part := r.lreclen - r.logicalOffset
		if err := r.rawRead(buf[:part]); err != nil {
			return err
		}
		if err := r.readRecordHeader(); err != nil {
			return err
		}
		n -= part
		for n > r.lreclen-8 {
			if err := r.rawRead(buf[part : part+r.lreclen-8]); err != nil {
				return err
			}
			part += r.lreclen - 8
			if err := r.readRecordHeader(); err != nil {
				return err
			}
			n -= r.lreclen - 8
		}
		if n > 0 {
			if err := r.rawRead(buf[part:]); err != nil {
				return err
			}
			r.logicalOffset += n
		}

		return nil
	}

	if r.logicalOffset == 0 {
		// at a logical record boundary: read the control header first
		if err := r.readRecordHeader(); err != nil {
			return err
		}
	}
	if err := r.rawRead(buf); err != nil {
		return err
	}
	r.logicalOffset += n

	return nil
}

// rawRead fills buf from the underlying stream. io.EOF is returned only
// when nothing was read; a partial read is a short-read failure.
func (r *Reader) rawRead(buf []byte) error {
	if len(buf) == 0 {
		return nil
	}
	n, err := io.ReadFull(r.in, buf)
	r.absOffset += int64(n)
	if err == io.ErrUnexpectedEOF {
		return fmt.Errorf("%w: %d of %d bytes", errs.ErrShortRead, n, len(buf))
	}

	return err
}

// skipRecord discards the remainder of the current logical record.
func (r *Reader) skipRecord() error {
	n := r.lreclen - r.logicalOffset
	if n > 0 && r.logicalOffset > 0 {
		if _, err := io.CopyN(io.Discard, r.in, int64(n)); err != nil {
			if err == io.EOF {
				return nil
			}
			return err
		}
		r.absOffset += int64(n)
	}
	r.logicalOffset = 0

	return nil
}

// readRecordHeader reads and classifies the 8-byte logical record control
// header: a 6-byte ASCII sequence number, a type code and a continuation
// flag.
func (r *Reader) readRecordHeader() error {
	var hdr [8]byte
	if err := r.rawRead(hdr[:]); err != nil {
		return err
	}
	r.logicalOffset = 8
	r.recordIndex++

	if seqno, err := parseInt(string(hdr[0:6])); err != nil {
		msg := fmt.Sprintf("bad record sequence number for record %d",
			r.recordIndex)
		if r.bits&ExceptSeqno != 0 {
			return fmt.Errorf("%w: %s", errs.ErrSeqno, msg)
		}
		log.Warnf("%s", msg)
		r.seqno = -1
	} else {
		r.seqno = seqno
	}

	r.recordType = hdr[6]
	r.recordCont = hdr[7]

	switch {
	case r.recordType == ' ':
		return fmt.Errorf("%w: record type", errs.ErrSkipRecord)
	case strings.IndexByte(r.ctrlTypes, r.recordType) >= 0:
		r.readingData = false
	case strings.IndexByte(r.dataTypes, r.recordType) >= 0:
		r.readingData = true
	case !r.readingData && r.recordCont == '*':
		// continuation of a control record
	default:
		msg := fmt.Sprintf("unknown header type (byte 7): %q", r.recordType)
		if r.bits&ExceptHdr != 0 {
			return fmt.Errorf("%w: %s", errs.ErrHeader, msg)
		}
		log.Warnf("%s", msg)
	}

	return nil
}

// readObject reads the next blockette or data record from the stream.
func (r *Reader) readObject() (any, error) {
	// With fewer than 7 bytes remaining there is no room for another
	// blockette; skip to the next logical record.
	if r.lreclen-r.logicalOffset < 7 {
		return nil, fmt.Errorf("%w: EOR", errs.ErrSkipRecord)
	}

	head, err := r.readBytes(3)
	if err != nil {
		// end of stream at an object boundary is a clean end of volume;
		// everything else propagates
		return nil, err
	}

	if r.readingData {
		return r.readDataRecord(head)
	}

	if string(head) == "   " {
		return nil, fmt.Errorf("%w: blockette type", errs.ErrSkipRecord)
	}

	btype, err := parseInt(string(head))
	if err != nil {
		return nil, fmt.Errorf("%w: blockette type %q", errs.ErrFormat, head)
	}

	lenBytes, err := r.readBytes(4)
	if err != nil {
		return nil, err
	}
	blen, err := parseInt(string(lenBytes))
	if err != nil {
		return nil, fmt.Errorf("%w: %03d:bad length", errs.ErrLength, btype)
	}
	if blen < 7 {
		return nil, fmt.Errorf("%w: %03d:bad length %d", errs.ErrLength,
			btype, blen)
	}

	body, err := r.readBytes(blen - 7)
	if err != nil {
		return nil, err
	}

	blockette, err := parseControlBlockette(btype, string(body))
	if err != nil {
		return nil, err
	}
	if _, unknown := blockette.(*UnknownBlockette); unknown {
		if r.bits&ExceptFmt != 0 {
			return nil, fmt.Errorf("%w: unknown blockette type %d",
				errs.ErrFormat, btype)
		}
		r.state |= ExceptFmt
	}
	r.registerBlockette(blockette)

	return blockette, nil
}

// registerBlockette applies a control blockette's side effects: record
// length updates, station and channel assembly, dictionary registration,
// and volume resets.
func (r *Reader) registerBlockette(blockette Blockette) {
	switch b := blockette.(type) {
	case *Blockette5:
		r.setRecordLength(b.LogicalRecordLength)
		r.resetVolume()
	case *Blockette8:
		r.setRecordLength(b.LogicalRecordLength)
	case *Blockette10:
		r.setRecordLength(b.LogicalRecordLength)
		r.resetVolume()
	case *Blockette11, *Blockette12:
		r.resetVolume()

	case *Blockette50:
		// a later station with the same identity replaces the previous one
		for i, sta := range r.stations {
			if sta.B50.Station == b.Station && sta.B50.Network == b.Network {
				r.stations = append(r.stations[:i], r.stations[i+1:]...)
				break
			}
		}
		r.stations = append(r.stations, NewStation(b))

	case *Blockette60:
		if len(r.stations) == 0 {
			log.Warnf("Blockette60 found before Blockette50")
			return
		}
		sta := r.stations[len(r.stations)-1]
		for _, expanded := range r.expandBlockette60(b) {
			sta.Add(expanded)
		}

	case DictionaryBlockette:
		r.dictionary.Add(b)

	case *Blockette51, *Blockette52, *Blockette53, *Blockette54,
		*Blockette55, *Blockette56, *Blockette57, *Blockette58,
		*Blockette59, *Blockette61, *Blockette62:
		if len(r.stations) == 0 {
			log.Warnf("Blockette%d found before Blockette50",
				blockette.BlocketteType())
			return
		}
		r.stations[len(r.stations)-1].Add(blockette)
	}
}

// setRecordLength applies a logical record length exponent from a volume
// blockette.
func (r *Reader) setRecordLength(exponent int) {
	if exponent > 0 && exponent < 31 {
		r.lreclen = 1 << uint(exponent)
	}
}

// resetVolume releases the station table and dictionary at a new volume
// blockette.
func (r *Reader) resetVolume() {
	r.dictionary.Clear()
	r.stations = nil
}

// expandBlockette60 resolves each (stage, lookup code) pair of a response
// reference blockette against the dictionary, cloning the first matching
// dictionary blockette in the family {41, 43, 44, 45, 46, 47, 48} into the
// corresponding station-level response blockette.
func (r *Reader) expandBlockette60(b60 *Blockette60) []Blockette {
	var out []Blockette
	d := r.dictionary

	for _, stage := range b60.Stages {
		for _, code := range stage.Codes {
			switch {
			case d.B41(code) != nil:
				out = append(out, newBlockette61FromB41(stage.Stage, d.B41(code)))
			case d.B43(code) != nil:
				out = append(out, newBlockette53FromB43(stage.Stage, d.B43(code)))
			case d.B44(code) != nil:
				out = append(out, newBlockette54FromB44(stage.Stage, d.B44(code)))
			case d.B45(code) != nil:
				out = append(out, newBlockette55FromB45(stage.Stage, d.B45(code)))
			case d.B46(code) != nil:
				out = append(out, newBlockette56FromB46(stage.Stage, d.B46(code)))
			case d.B47(code) != nil:
				out = append(out, newBlockette57FromB47(stage.Stage, d.B47(code)))
			case d.B48(code) != nil:
				out = append(out, newBlockette58FromB48(stage.Stage, d.B48(code)))
			default:
				log.Warnf("Cannot find dictionary blockette b60.lookup_code: %d",
					code)
			}
		}
	}

	return out
}

// stationOrder returns the declared byte order of a station, falling back
// to big-endian when the station is unknown or its declaration is invalid.
func (r *Reader) stationOrder(sta, net string) endian.Order {
	for _, s := range r.stations {
		if s.B50.Station == sta && s.B50.Network == net {
			order, err := endian.FromSeed(s.B50.WordOrder, s.B50.ShortOrder)
			if err != nil {
				log.Warnf("invalid blockette50 word order for %s/%s", net, sta)
				return endian.BigEndian
			}
			return order
		}
	}

	// no blockette 50: assume big-endian
	return endian.BigEndian
}

// findChannel locates the channel a data header refers to.
func (r *Reader) findChannel(h *DataHeader) *Channel {
	for _, s := range r.stations {
		if s.B50.Network == h.Network && s.B50.Station == h.Station {
			if c := s.FindChannel(h.Channel, h.Location); c != nil {
				return c
			}
		}
	}

	return nil
}

// readDataRecord completes a data record whose first 3 bytes have been
// read.
func (r *Reader) readDataRecord(head []byte) (*DataRecord, error) {
	var headerBytes []byte
	var rtype byte
	var seqno int

	if r.logicalOffset > 11 {
		// not the first data record in the logical volume: the 8-byte
		// prefix was not consumed as a logical record header
		rest, err := r.readBytes(4)
		if err != nil {
			return nil, err
		}
		prefix := append(append([]byte{}, head...), rest...)
		rtype = prefix[6]
		if rtype == ' ' {
			return nil, fmt.Errorf("%w: data record type", errs.ErrSkipRecord)
		}
		if seqno, err = parseInt(string(prefix[0:6])); err != nil {
			msg := "bad record sequence number for data record"
			if r.bits&ExceptSeqno != 0 {
				return nil, fmt.Errorf("%w: %s", errs.ErrSeqno, msg)
			}
			log.Warnf("%s", msg)
			seqno = -1
		}
		if _, err := r.readBytes(1); err != nil { // reserved byte
			return nil, err
		}
		if headerBytes, err = r.readBytes(40); err != nil {
			return nil, err
		}
	} else {
		// the 8-byte prefix was the logical record header
		rest, err := r.readBytes(37)
		if err != nil {
			return nil, err
		}
		headerBytes = append(append([]byte{}, head...), rest...)
		rtype = r.recordType
		seqno = r.seqno
	}

	sta := trimBytes(headerBytes[0:5])
	net := trimBytes(headerBytes[10:12])
	order := r.stationOrder(sta, net)

	header, err := parseDataHeader(headerBytes, order)
	if err != nil {
		return nil, err
	}

	dr := &DataRecord{
		Order:  order,
		RecLen: r.lreclen,
		Header: header,
	}
	dr.Header.Seqno = seqno
	dr.Header.Quality = rtype
	dr.SampleRate = dr.Header.SampleRate()

	logicalPos := r.logicalOffset - 48
	dr.RecordOffset = r.absOffset - 48
	dr.FileOffset = dr.RecordOffset + int64(dr.Header.Offset)

	recordLen := r.lreclen
	var b1000 *Blockette1000

	// skip to the beginning of the first data blockette
	if skip := dr.Header.Boffset - 48; skip > 0 {
		if _, err := r.readBytes(skip); err != nil {
			return nil, err
		}
	}

	for i := 0; i < dr.Header.NumBlk; i++ {
		prefix, err := r.readBytes(4)
		if err != nil {
			return nil, err
		}

		btype := int(order.Uint16(prefix[0:2]))
		if btype == 59395 {
			// 1000 with the wrong byte order: a mini-SEED header that was
			// not written big-endian. Reverse the order and reparse the
			// header with the corrected permutation.
			order = order.Reversed()
			dr.Order = order
			if dr.Header, err = parseDataHeader(headerBytes, order); err != nil {
				return nil, err
			}
			dr.Header.Seqno = seqno
			dr.Header.Quality = rtype
			dr.SampleRate = dr.Header.SampleRate()
			dr.FileOffset = dr.RecordOffset + int64(dr.Header.Offset)
			btype = 1000
		}
		next := int(order.Uint16(prefix[2:4]))

		fixedLen := dataBlocketteLength(btype)
		if fixedLen == 0 {
			log.Warnf("Unknown data blockette type: %d", btype)
		} else {
			body, err := r.readBytes(fixedLen - 4)
			if err != nil {
				return nil, err
			}
			if btype == 2000 && len(body) >= 2 {
				// variable length: the stored total length extends the
				// fixed prefix
				if total := int(order.Uint16(body[0:2])); total > fixedLen {
					extra, err := r.readBytes(total - fixedLen)
					if err != nil {
						return nil, err
					}
					body = append(body, extra...)
				}
			}
			db, err := parseDataBlockette(btype, body, order)
			if err != nil {
				if errors.Is(err, errs.ErrLength) && r.bits&ExceptLen != 0 {
					return nil, err
				}
				log.Warnf("blockette %d: %v", btype, err)
				db = nil
			}
			if db != nil {
				dr.Blockettes = append(dr.Blockettes, db)
			}

			switch b := db.(type) {
			case *Blockette1000:
				b1000 = b
				if b.RecLen > 0 && b.RecLen < 31 {
					recordLen = 1 << uint(b.RecLen)
				}
				dr.RecLen = recordLen
				if b.WordOrder != 0 {
					order = endian.BigEndian
				} else {
					order = endian.LittleEndian
				}
				dr.Order = order
				dr.Format = codec.Format(b.Format)
			case *Blockette100:
				dr.SampleRate = b.SampleRate
			}
		}

		if next > 0 {
			// skip to the next blockette; next is relative to the start of
			// the data record
			if n := logicalPos + next - r.logicalOffset; n > 0 {
				if _, err := r.readBytes(n); err != nil {
					return nil, err
				}
			}
		}
	}
	dr.Header.NumBlk = len(dr.Blockettes)
	dr.DataLength = recordLen - dr.Header.Offset

	// position at the payload and read or skip it
	if n := logicalPos + dr.Header.Offset - r.logicalOffset; n > 0 {
		if _, err := r.readBytes(n); err != nil {
			return nil, err
		}
	}
	if r.keepData {
		data, err := r.readBytes(dr.DataLength)
		if err != nil {
			return nil, err
		}
		dr.Data = data
	} else {
		if err := r.discard(dr.DataLength); err != nil {
			return nil, err
		}
	}

	if err := r.resolveFormat(dr, b1000); err != nil {
		return nil, err
	}

	return dr, nil
}

// discard advances past n payload bytes without retaining them.
func (r *Reader) discard(n int) error {
	if n <= 0 {
		return nil
	}
	if _, err := io.CopyN(io.Discard, r.in, int64(n)); err != nil {
		if err == io.EOF {
			return fmt.Errorf("%w: truncated data record", errs.ErrShortRead)
		}
		return err
	}
	r.absOffset += int64(n)
	r.logicalOffset += n

	return nil
}

// resolveFormat fills the record's clock drift and encoding format. The
// format comes from blockette 1000 when present, otherwise from the data
// format dictionary entry named by the channel's blockette 52.
func (r *Reader) resolveFormat(dr *DataRecord, b1000 *Blockette1000) error {
	channel := r.findChannel(&dr.Header)

	if channel != nil && channel.B52.ClockDrift > 0 {
		dr.ClockDrift = channel.B52.ClockDrift
	} else {
		dr.ClockDrift = 0.0001
	}

	if b1000 != nil {
		dr.Format = codec.Format(b1000.Format)
		return nil
	}

	var b30 *Blockette30
	if channel != nil {
		b30 = r.dictionary.B30(channel.B52.FormatCode)
	}
	if b30 == nil {
		return fmt.Errorf("%w: data header with no B1000 for %s/%s/%s "+
			"encountered before corresponding B30 blockette", errs.ErrHeader,
			dr.Header.Network, dr.Header.Station, dr.Header.Channel)
	}

	name := strings.ToUpper(b30.Name)
	switch {
	case strings.Contains(name, "16-BIT"):
		dr.Format = codec.FormatInt16
	case strings.Contains(name, "24-BIT"):
		dr.Format = codec.FormatInt24
	case strings.Contains(name, "32-BI"):
		dr.Format = codec.FormatInt32
	case strings.Contains(name, "SUN I"):
		dr.Format = codec.FormatFloat32
	case strings.Contains(name, "STEIM1"), strings.Contains(name, "STEIM-1"),
		strings.Contains(name, "STEIM 1"):
		dr.Format = codec.FormatSteim1
	case strings.Contains(name, "STEIM2"), strings.Contains(name, "STEIM-2"),
		strings.Contains(name, "STEIM 2"), strings.Contains(name, "STEIM INT"):
		dr.Format = codec.FormatSteim2
	default:
		log.Warnf("Cannot determine encoding format: %s", b30.Name)
	}

	return nil
}

// groupSeedData collects the data records that follow dr for the same
// station and network, sorts them by channel, location, sample rate and
// start time, and splits them into continuous SeedData segments. The first
// segment is returned; the rest, and the look-ahead object that ended the
// run, are queued.
func (r *Reader) groupSeedData(dr *DataRecord) (any, error) {
	records := []*DataRecord{dr}
	var lookahead any

	for {
		obj, err := r.nextObject()
		if err != nil {
			return nil, err
		}
		if obj == nil {
			break
		}
		next, ok := obj.(*DataRecord)
		if !ok || next.Header.Station != dr.Header.Station ||
			next.Header.Network != dr.Header.Network {
			lookahead = obj
			break
		}
		if next.Header.Nsamples > 0 {
			records = append(records, next)
		}
	}

	sort.SliceStable(records, func(i, j int) bool {
		a, b := records[i], records[j]
		if a.Header.Channel != b.Header.Channel {
			return a.Header.Channel < b.Header.Channel
		}
		if a.Header.Location != b.Header.Location {
			return a.Header.Location < b.Header.Location
		}
		if a.SampleRate != b.SampleRate {
			return a.SampleRate < b.SampleRate
		}

		return a.Header.Start.Epoch() < b.Header.Start.Epoch()
	})

	// collect runs of records that are continuous on one channel
	sd := r.newSeedData(records[0])
	r.queue = append(r.queue, sd)

	for i := 1; i < len(records); i++ {
		prev, cur := records[i-1], records[i]
		tnext := prev.Header.StartTime() +
			float64(prev.Header.Nsamples)/prev.SampleRate
		diff := cur.Header.StartTime() - tnext
		if diff < 0 {
			diff = -diff
		}

		if prev.Header.Channel == cur.Header.Channel &&
			prev.Header.Location == cur.Header.Location &&
			prev.SampleRate == cur.SampleRate &&
			prev.Header.Quality == cur.Header.Quality &&
			(diff < 0.5/prev.SampleRate ||
				diff <= float64(prev.Header.Nsamples)*prev.ClockDrift) {
			sd.Records = append(sd.Records, cur)
		} else {
			sd = r.newSeedData(cur)
			r.queue = append(r.queue, sd)
		}
	}

	if lookahead != nil {
		r.queue = append(r.queue, lookahead)
	}

	obj := r.queue[0]
	r.queue = r.queue[1:]

	return obj, nil
}
