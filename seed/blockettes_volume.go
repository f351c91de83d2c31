package seed

import "strings"

// Blockette5 is the Field Volume Identifier Blockette.
type Blockette5 struct {
	VersionOfFormat     string // SEED version number ##.#
	LogicalRecordLength int    // expressed as a power of 2
	BeginningTime       Time
}

func (b *Blockette5) BlocketteType() int { return 5 }

func parseBlockette5(body string) (*Blockette5, error) {
	b := &Blockette5{}
	r := newFieldReader(body, "005")

	var err error
	if b.VersionOfFormat, err = r.trimmed(4); err != nil {
		return nil, err
	}
	if b.LogicalRecordLength, err = r.intField(2, "logical_record_length"); err != nil {
		return nil, err
	}
	if b.BeginningTime, err = r.timeField("beginning_time"); err != nil {
		return nil, err
	}

	return b, nil
}

// Blockette8 is the Telemetry Volume Identifier Blockette.
type Blockette8 struct {
	VersionOfFormat     string
	LogicalRecordLength int // expressed as a power of 2
	Station             string
	Location            string
	Channel             string
	BeginningTime       Time
	EndTime             Time
	StationDate         Time
	ChannelDate         Time
	Network             string
}

func (b *Blockette8) BlocketteType() int { return 8 }

func parseBlockette8(body string) (*Blockette8, error) {
	b := &Blockette8{}
	r := newFieldReader(body, "008")

	var err error
	if b.VersionOfFormat, err = r.trimmed(4); err != nil {
		return nil, err
	}
	if b.LogicalRecordLength, err = r.intField(2, "logical_record_length"); err != nil {
		return nil, err
	}
	if b.Station, err = r.trimmed(5); err != nil {
		return nil, err
	}
	if b.Location, err = r.trimmed(2); err != nil {
		return nil, err
	}
	if b.Channel, err = r.trimmed(3); err != nil {
		return nil, err
	}
	if b.BeginningTime, err = r.timeField("beginning_time"); err != nil {
		return nil, err
	}
	if b.EndTime, err = r.timeField("end_time"); err != nil {
		return nil, err
	}
	if b.StationDate, err = r.timeField("station_date"); err != nil {
		return nil, err
	}
	if b.ChannelDate, err = r.timeField("channel_date"); err != nil {
		return nil, err
	}
	if b.Network, err = r.trimmed(2); err != nil {
		return nil, err
	}

	return b, nil
}

// Blockette10 is the Volume Identifier Blockette.
type Blockette10 struct {
	VersionOfFormat     string
	LogicalRecordLength int // expressed as a power of 2
	BeginningTime       Time
	EndTime             Time
	VolumeTime          Time
	Organization        string
	Label               string
}

func (b *Blockette10) BlocketteType() int { return 10 }

func parseBlockette10(body string) (*Blockette10, error) {
	b := &Blockette10{}
	r := newFieldReader(body, "010")

	var err error
	if b.VersionOfFormat, err = r.trimmed(4); err != nil {
		return nil, err
	}
	if b.LogicalRecordLength, err = r.intField(2, "logical_record_length"); err != nil {
		return nil, err
	}
	if b.BeginningTime, err = r.timeField("beginning_time"); err != nil {
		return nil, err
	}
	if b.EndTime, err = r.timeField("end_time"); err != nil {
		return nil, err
	}
	if b.VolumeTime, err = r.timeField("volume_time"); err != nil {
		return nil, err
	}
	var v string
	if v, err = r.variable(); err != nil {
		return nil, err
	}
	b.Organization = strings.TrimSpace(v)
	if v, err = r.variable(); err != nil {
		return nil, err
	}
	b.Label = strings.TrimSpace(v)

	return b, nil
}

// Blockette11 is the Volume Station Header Index Blockette.
type Blockette11 struct {
	Station []string // station identification codes
	Seqno   []int    // sequence number of each station header
}

func (b *Blockette11) BlocketteType() int { return 11 }

func parseBlockette11(body string) (*Blockette11, error) {
	b := &Blockette11{}
	r := newFieldReader(body, "011")

	num, err := r.intField(3, "numStations")
	if err != nil {
		return nil, err
	}
	for i := 0; i < num; i++ {
		sta, err := r.trimmed(5)
		if err != nil {
			return nil, err
		}
		seqno, err := r.intField(6, "seqno")
		if err != nil {
			return nil, err
		}
		b.Station = append(b.Station, sta)
		b.Seqno = append(b.Seqno, seqno)
	}

	return b, nil
}

// Blockette12 is the Volume Time Span Index Blockette.
type Blockette12 struct {
	Beg   []Time
	End   []Time
	Seqno []int
}

func (b *Blockette12) BlocketteType() int { return 12 }

func parseBlockette12(body string) (*Blockette12, error) {
	b := &Blockette12{}
	r := newFieldReader(body, "012")

	num, err := r.intField(4, "numSpans")
	if err != nil {
		return nil, err
	}
	for i := 0; i < num; i++ {
		beg, err := r.timeField("beginning_span")
		if err != nil {
			return nil, err
		}
		end, err := r.timeField("end_span")
		if err != nil {
			return nil, err
		}
		seqno, err := r.intField(6, "seqno")
		if err != nil {
			return nil, err
		}
		b.Beg = append(b.Beg, beg)
		b.End = append(b.End, end)
		b.Seqno = append(b.Seqno, seqno)
	}

	return b, nil
}
