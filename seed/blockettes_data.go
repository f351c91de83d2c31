package seed

import (
	"fmt"

	"github.com/projectida/seedcss/endian"
	"github.com/projectida/seedcss/errs"
)

// DataBlockette is implemented by the binary blockettes chained inside data
// records. FixedLength reports the total blockette length in bytes including
// the 4-byte type/next prefix; the record parser uses it to advance to the
// payload of variable-position chains.
type DataBlockette interface {
	Blockette
	FixedLength() int
}

// dataBlocketteLength reports the fixed length of a data blockette type, or
// 0 when the type is unknown. Blockette 2000 is variable; its stored length
// field governs.
func dataBlocketteLength(btype int) int {
	switch btype {
	case 100:
		return 12
	case 200:
		return 52
	case 201:
		return 60
	case 300:
		return 60
	case 310:
		return 60
	case 320:
		return 64
	case 390:
		return 28
	case 395:
		return 16
	case 400:
		return 16
	case 405:
		return 6
	case 500:
		return 200
	case 1000:
		return 8
	case 1001:
		return 8
	case 2000:
		return 15 // fixed prefix only; the length field extends it
	}

	return 0
}

// parseDataBlockette parses the body of a data blockette (the 2-byte type
// and 2-byte next offset already consumed).
func parseDataBlockette(btype int, body []byte, o endian.Order) (DataBlockette, error) {
	switch btype {
	case 100:
		return parseBlockette100(body, o)
	case 200:
		return parseBlockette200(body, o)
	case 201:
		return parseBlockette201(body, o)
	case 300:
		return parseBlockette300(body, o)
	case 310:
		return parseBlockette310(body, o)
	case 320:
		return parseBlockette320(body, o)
	case 390:
		return parseBlockette390(body, o)
	case 395:
		return parseBlockette395(body, o)
	case 400:
		return parseBlockette400(body, o)
	case 405:
		return parseBlockette405(body, o)
	case 500:
		return parseBlockette500(body, o)
	case 1000:
		return parseBlockette1000(body, o)
	case 1001:
		return parseBlockette1001(body, o)
	case 2000:
		return parseBlockette2000(body, o)
	}

	return nil, fmt.Errorf("%w: unknown data blockette type %d",
		errs.ErrFormat, btype)
}

func shortDataBlockette(what string) error {
	return fmt.Errorf("%w: short %s blockette", errs.ErrLength, what)
}

// Blockette100 is the Sample Rate Blockette. Its sample rate overrides the
// data header's factor/multiplier rate.
type Blockette100 struct {
	SampleRate float64
	Flags      byte
}

func (b *Blockette100) BlocketteType() int { return 100 }
func (b *Blockette100) FixedLength() int   { return 12 }

func parseBlockette100(body []byte, o endian.Order) (*Blockette100, error) {
	if len(body) < 8 {
		return nil, shortDataBlockette("Sample Rate")
	}

	return &Blockette100{
		SampleRate: float64(o.Float32(body[0:4])),
		Flags:      body[4],
	}, nil
}

// Blockette200 is the Generic Event Detection Blockette.
type Blockette200 struct {
	Amplitude  float32
	Period     float32
	Background float32
	Flags      byte
	Time       Time
	Name       string
}

func (b *Blockette200) BlocketteType() int { return 200 }
func (b *Blockette200) FixedLength() int   { return 52 }

func parseBlockette200(body []byte, o endian.Order) (*Blockette200, error) {
	if len(body) < 48 {
		return nil, shortDataBlockette("Generic Event Detection")
	}

	t, err := parseBTime(body[14:24], o)
	if err != nil {
		return nil, err
	}

	return &Blockette200{
		Amplitude:  o.Float32(body[0:4]),
		Period:     o.Float32(body[4:8]),
		Background: o.Float32(body[8:12]),
		Flags:      body[12],
		Time:       t,
		Name:       trimBytes(body[24:48]),
	}, nil
}

// Blockette201 is the Murdock Event Detection Blockette.
type Blockette201 struct {
	Amplitude  float32
	Period     float32
	Background float32
	Flags      byte
	Time       Time
	SNR        [6]byte
	LookBack   byte
	Algorithm  byte
	Name       string
}

func (b *Blockette201) BlocketteType() int { return 201 }
func (b *Blockette201) FixedLength() int   { return 60 }

func parseBlockette201(body []byte, o endian.Order) (*Blockette201, error) {
	if len(body) < 56 {
		return nil, shortDataBlockette("Murdock Event Detection")
	}

	t, err := parseBTime(body[14:24], o)
	if err != nil {
		return nil, err
	}

	b := &Blockette201{
		Amplitude:  o.Float32(body[0:4]),
		Period:     o.Float32(body[4:8]),
		Background: o.Float32(body[8:12]),
		Flags:      body[12],
		Time:       t,
		LookBack:   body[30],
		Algorithm:  body[31],
		Name:       trimBytes(body[32:56]),
	}
	copy(b.SNR[:], body[24:30])

	return b, nil
}

// Blockette300 is the Step Calibration Blockette.
type Blockette300 struct {
	Time      Time
	NumSteps  int
	Flags     byte
	Step      uint32 // step duration in 0.0001-second ticks
	Interval  uint32
	Amplitude float32
	Channel   string
	RefAmp    uint32
	Coupling  string
	Rolloff   string
}

func (b *Blockette300) BlocketteType() int { return 300 }
func (b *Blockette300) FixedLength() int   { return 60 }

func parseBlockette300(body []byte, o endian.Order) (*Blockette300, error) {
	if len(body) < 56 {
		return nil, shortDataBlockette("Step Calibration")
	}

	t, err := parseBTime(body[0:10], o)
	if err != nil {
		return nil, err
	}

	return &Blockette300{
		Time:      t,
		NumSteps:  int(body[10]),
		Flags:     body[11],
		Step:      o.Uint32(body[12:16]),
		Interval:  o.Uint32(body[16:20]),
		Amplitude: o.Float32(body[20:24]),
		Channel:   trimBytes(body[24:27]),
		RefAmp:    o.Uint32(body[28:32]),
		Coupling:  trimBytes(body[32:44]),
		Rolloff:   trimBytes(body[44:56]),
	}, nil
}

// Blockette310 is the Sine Calibration Blockette.
type Blockette310 struct {
	Time      Time
	Flags     byte
	Duration  uint32
	Period    float32
	Amplitude float32
	Channel   string
	RefAmp    uint32
	Coupling  string
	Rolloff   string
}

func (b *Blockette310) BlocketteType() int { return 310 }
func (b *Blockette310) FixedLength() int   { return 60 }

func parseBlockette310(body []byte, o endian.Order) (*Blockette310, error) {
	if len(body) < 56 {
		return nil, shortDataBlockette("Sine Calibration")
	}

	t, err := parseBTime(body[0:10], o)
	if err != nil {
		return nil, err
	}

	return &Blockette310{
		Time:      t,
		Flags:     body[11],
		Duration:  o.Uint32(body[12:16]),
		Period:    o.Float32(body[16:20]),
		Amplitude: o.Float32(body[20:24]),
		Channel:   trimBytes(body[24:27]),
		RefAmp:    o.Uint32(body[28:32]),
		Coupling:  trimBytes(body[32:44]),
		Rolloff:   trimBytes(body[44:56]),
	}, nil
}

// Blockette320 is the Pseudo-random Calibration Blockette.
type Blockette320 struct {
	Time      Time
	Flags     byte
	Duration  uint32
	Amplitude float32
	Channel   string
	RefAmp    uint32
	Coupling  string
	Rolloff   string
	Noise     string
}

func (b *Blockette320) BlocketteType() int { return 320 }
func (b *Blockette320) FixedLength() int   { return 64 }

func parseBlockette320(body []byte, o endian.Order) (*Blockette320, error) {
	if len(body) < 60 {
		return nil, shortDataBlockette("Pseudo-random Calibration")
	}

	t, err := parseBTime(body[0:10], o)
	if err != nil {
		return nil, err
	}

	return &Blockette320{
		Time:      t,
		Flags:     body[11],
		Duration:  o.Uint32(body[12:16]),
		Amplitude: o.Float32(body[16:20]),
		Channel:   trimBytes(body[20:23]),
		RefAmp:    o.Uint32(body[24:28]),
		Coupling:  trimBytes(body[28:40]),
		Rolloff:   trimBytes(body[40:52]),
		Noise:     trimBytes(body[52:60]),
	}, nil
}

// Blockette390 is the Generic Calibration Blockette.
type Blockette390 struct {
	Time      Time
	Flags     byte
	Duration  uint32
	Amplitude float32
	Channel   string
}

func (b *Blockette390) BlocketteType() int { return 390 }
func (b *Blockette390) FixedLength() int   { return 28 }

func parseBlockette390(body []byte, o endian.Order) (*Blockette390, error) {
	if len(body) < 24 {
		return nil, shortDataBlockette("Generic Calibration")
	}

	t, err := parseBTime(body[0:10], o)
	if err != nil {
		return nil, err
	}

	return &Blockette390{
		Time:      t,
		Flags:     body[11],
		Duration:  o.Uint32(body[12:16]),
		Amplitude: o.Float32(body[16:20]),
		Channel:   trimBytes(body[20:23]),
	}, nil
}

// Blockette395 is the Calibration Abort Blockette.
type Blockette395 struct {
	EndTime Time
}

func (b *Blockette395) BlocketteType() int { return 395 }
func (b *Blockette395) FixedLength() int   { return 16 }

func parseBlockette395(body []byte, o endian.Order) (*Blockette395, error) {
	if len(body) < 12 {
		return nil, shortDataBlockette("Calibration Abort")
	}

	t, err := parseBTime(body[0:10], o)
	if err != nil {
		return nil, err
	}

	return &Blockette395{EndTime: t}, nil
}

// Blockette400 is the Beam Blockette.
type Blockette400 struct {
	Azimuth  float32
	Slowness float32
	Config   int // blockette 35 lookup
}

func (b *Blockette400) BlocketteType() int { return 400 }
func (b *Blockette400) FixedLength() int   { return 16 }

func parseBlockette400(body []byte, o endian.Order) (*Blockette400, error) {
	if len(body) < 12 {
		return nil, shortDataBlockette("Beam")
	}

	return &Blockette400{
		Azimuth:  o.Float32(body[0:4]),
		Slowness: o.Float32(body[4:8]),
		Config:   int(o.Uint16(body[8:10])),
	}, nil
}

// Blockette405 is the Beam Delay Blockette.
type Blockette405 struct {
	Delay int // in 0.0001-second ticks
}

func (b *Blockette405) BlocketteType() int { return 405 }
func (b *Blockette405) FixedLength() int   { return 6 }

func parseBlockette405(body []byte, o endian.Order) (*Blockette405, error) {
	if len(body) < 2 {
		return nil, shortDataBlockette("Beam Delay")
	}

	return &Blockette405{Delay: int(o.Uint16(body[0:2]))}, nil
}

// Blockette500 is the Timing Blockette.
type Blockette500 struct {
	Correction float32 // VCO correction
	Time       Time
	MicroSec   int
	Quality    int
	Count      uint32
	Type       string
	Model      string
	Status     string
}

func (b *Blockette500) BlocketteType() int { return 500 }
func (b *Blockette500) FixedLength() int   { return 200 }

func parseBlockette500(body []byte, o endian.Order) (*Blockette500, error) {
	if len(body) < 196 {
		return nil, shortDataBlockette("Timing")
	}

	t, err := parseBTime(body[4:14], o)
	if err != nil {
		return nil, err
	}

	return &Blockette500{
		Correction: o.Float32(body[0:4]),
		Time:       t,
		MicroSec:   int(int8(body[14])),
		Quality:    int(body[15]),
		Count:      o.Uint32(body[16:20]),
		Type:       trimBytes(body[20:36]),
		Model:      trimBytes(body[36:68]),
		Status:     trimBytes(body[68:196]),
	}, nil
}

// Blockette1000 is the Data Only SEED Blockette. It declares the encoding
// format, byte order and record length of its data record.
type Blockette1000 struct {
	Format    byte
	WordOrder byte // 0: little-endian, 1: big-endian
	RecLen    int  // data record length as a power of 2
}

func (b *Blockette1000) BlocketteType() int { return 1000 }
func (b *Blockette1000) FixedLength() int   { return 8 }

func parseBlockette1000(body []byte, o endian.Order) (*Blockette1000, error) {
	if len(body) < 4 {
		return nil, shortDataBlockette("Data Only SEED")
	}

	return &Blockette1000{
		Format:    body[0],
		WordOrder: body[1],
		RecLen:    int(body[2]),
	}, nil
}

// Blockette1001 is the Data Extension Blockette.
type Blockette1001 struct {
	Timing   int
	MicroSec int
	Count    int // frame count
}

func (b *Blockette1001) BlocketteType() int { return 1001 }
func (b *Blockette1001) FixedLength() int   { return 8 }

func parseBlockette1001(body []byte, o endian.Order) (*Blockette1001, error) {
	if len(body) < 4 {
		return nil, shortDataBlockette("Data Extension")
	}

	return &Blockette1001{
		Timing:   int(body[0]),
		MicroSec: int(int8(body[1])),
		Count:    int(body[2]),
	}, nil
}

// Blockette2000 is the Variable Length Opaque Data Blockette.
type Blockette2000 struct {
	Length    int // total blockette length in bytes
	Offset    int // offset to the opaque data
	Record    uint32
	BigEndian byte
	Flags     byte
	NumFields int
	Fields    string
	Data      []byte
}

func (b *Blockette2000) BlocketteType() int { return 2000 }
func (b *Blockette2000) FixedLength() int   { return b.Length }

func parseBlockette2000(body []byte, o endian.Order) (*Blockette2000, error) {
	if len(body) < 11 {
		return nil, shortDataBlockette("Variable Length Opaque Data")
	}

	b := &Blockette2000{
		Length:    int(o.Uint16(body[0:2])),
		Offset:    int(o.Uint16(body[2:4])),
		Record:    o.Uint32(body[4:8]),
		BigEndian: body[8],
		Flags:     body[9],
		NumFields: int(body[10]),
	}
	if len(body) < b.Length-4 {
		return nil, shortDataBlockette("Variable Length Opaque Data")
	}
	if b.Offset > b.Length {
		return nil, fmt.Errorf("%w: opaque data offset %d > blockette length %d",
			errs.ErrLength, b.Offset, b.Length)
	}

	// A blockette with no header fields has an empty field list; do not
	// index into the field area.
	if b.NumFields > 0 {
		end := 11 + b.NumFields
		if end > len(body) {
			end = len(body)
		}
		b.Fields = string(body[11:end])
	}
	if dataLen := b.Length - b.Offset; dataLen > 0 && b.Offset >= 4 {
		b.Data = append([]byte(nil), body[b.Offset-4:b.Offset-4+dataLen]...)
	}

	return b, nil
}
