package seed

// Blockette70 is the Time Span Identifier Blockette.
type Blockette70 struct {
	Flag string
	Beg  Time
	End  Time
}

func (b *Blockette70) BlocketteType() int { return 70 }

func parseBlockette70(body string) (*Blockette70, error) {
	b := &Blockette70{}
	r := newFieldReader(body, "070")

	var err error
	if b.Flag, err = r.fixed(1); err != nil {
		return nil, err
	}
	if b.Beg, err = r.timeField("beginning_time"); err != nil {
		return nil, err
	}
	if b.End, err = r.timeField("end_time"); err != nil {
		return nil, err
	}

	return b, nil
}

// Blockette71 is the Hypocenter Information Blockette.
type Blockette71 struct {
	OriginTime      Time
	SourceCode      int
	Latitude        float64
	Longitude       float64
	Depth           float64
	Magnitude       []float64
	MagType         []string
	MagSource       []int
	SeismicRegion   int    // version >= 2.3
	SeismicLocation int    // version >= 2.3
	RegionName      string // version >= 2.3
}

func (b *Blockette71) BlocketteType() int { return 71 }

func parseBlockette71(body string) (*Blockette71, error) {
	b := &Blockette71{}
	r := newFieldReader(body, "071")

	var err error
	if b.OriginTime, err = r.timeField("origin_time"); err != nil {
		return nil, err
	}
	if b.SourceCode, err = r.intField(2, "sourceCode"); err != nil {
		return nil, err
	}
	if b.Latitude, err = r.floatField(10, "latitude"); err != nil {
		return nil, err
	}
	if b.Longitude, err = r.floatField(11, "longitude"); err != nil {
		return nil, err
	}
	if b.Depth, err = r.floatField(7, "depth"); err != nil {
		return nil, err
	}
	num, err := r.intField(2, "numMagnitudes")
	if err != nil {
		return nil, err
	}
	for i := 0; i < num; i++ {
		mag, err := r.floatField(5, "magnitude")
		if err != nil {
			return nil, err
		}
		typ, err := r.variable()
		if err != nil {
			return nil, err
		}
		src, err := r.intField(2, "magSource")
		if err != nil {
			return nil, err
		}
		b.Magnitude = append(b.Magnitude, mag)
		b.MagType = append(b.MagType, typ)
		b.MagSource = append(b.MagSource, src)
	}
	if r.remaining() >= 7 {
		// version >= 2.3
		if b.SeismicRegion, err = r.intField(3, "seismicRegion"); err != nil {
			return nil, err
		}
		if b.SeismicLocation, err = r.intField(4, "seismicLocation"); err != nil {
			return nil, err
		}
		if b.RegionName, err = r.variable(); err != nil {
			return nil, err
		}
	}

	return b, nil
}

// Blockette72 is the Event Phases Blockette.
type Blockette72 struct {
	Station   string
	Location  string
	Channel   string
	Time      Time
	Amplitude float64
	Period    float64
	SNR       float64
	PhaseName string
	Source    int    // version >= 2.3
	Network   string // version >= 2.3
}

func (b *Blockette72) BlocketteType() int { return 72 }

func parseBlockette72(body string) (*Blockette72, error) {
	b := &Blockette72{}
	r := newFieldReader(body, "072")

	var err error
	if b.Station, err = r.trimmed(5); err != nil {
		return nil, err
	}
	if b.Location, err = r.trimmed(2); err != nil {
		return nil, err
	}
	if b.Channel, err = r.trimmed(3); err != nil {
		return nil, err
	}
	if b.Time, err = r.timeField("arrival_time"); err != nil {
		return nil, err
	}
	if b.Amplitude, err = r.floatField(10, "amplitude"); err != nil {
		return nil, err
	}
	if b.Period, err = r.floatField(10, "period"); err != nil {
		return nil, err
	}
	if b.SNR, err = r.floatField(10, "snr"); err != nil {
		return nil, err
	}
	if b.PhaseName, err = r.variable(); err != nil {
		return nil, err
	}
	if r.remaining() >= 4 {
		// version >= 2.3
		if b.Source, err = r.intField(2, "source"); err != nil {
			return nil, err
		}
		if b.Network, err = r.trimmed(2); err != nil {
			return nil, err
		}
	}

	return b, nil
}

// Blockette73 is the Time Span Data Start Index Blockette.
type Blockette73 struct {
	Station   []string
	Location  []string
	Channel   []string
	Time      []Time
	Seqno     []int
	Subseqno  []int
}

func (b *Blockette73) BlocketteType() int { return 73 }

func parseBlockette73(body string) (*Blockette73, error) {
	b := &Blockette73{}
	r := newFieldReader(body, "073")

	num, err := r.intField(4, "num data")
	if err != nil {
		return nil, err
	}
	for i := 0; i < num; i++ {
		sta, err := r.trimmed(5)
		if err != nil {
			return nil, err
		}
		loc, err := r.trimmed(2)
		if err != nil {
			return nil, err
		}
		chanid, err := r.trimmed(3)
		if err != nil {
			return nil, err
		}
		t, err := r.timeField("time")
		if err != nil {
			return nil, err
		}
		seqno, err := r.intField(6, "seqno")
		if err != nil {
			return nil, err
		}
		subseqno, err := r.intField(2, "subseqno")
		if err != nil {
			return nil, err
		}
		b.Station = append(b.Station, sta)
		b.Location = append(b.Location, loc)
		b.Channel = append(b.Channel, chanid)
		b.Time = append(b.Time, t)
		b.Seqno = append(b.Seqno, seqno)
		b.Subseqno = append(b.Subseqno, subseqno)
	}

	return b, nil
}

// Blockette74 is the Time Series Index Blockette.
type Blockette74 struct {
	Station       string
	Location      string
	Channel       string
	StartTime     Time
	StartSeqno    int
	StartSubseqno int
	EndTime       Time
	EndSeqno      int
	EndSubseqno   int
	AccelTime     []Time
	AccelSeqno    []int
	AccelSubseqno []int
	Network       string // version >= 2.3
}

func (b *Blockette74) BlocketteType() int { return 74 }

func parseBlockette74(body string) (*Blockette74, error) {
	b := &Blockette74{}
	r := newFieldReader(body, "074")

	var err error
	if b.Station, err = r.trimmed(5); err != nil {
		return nil, err
	}
	if b.Location, err = r.trimmed(2); err != nil {
		return nil, err
	}
	if b.Channel, err = r.trimmed(3); err != nil {
		return nil, err
	}
	if b.StartTime, err = r.timeField("series_start_time"); err != nil {
		return nil, err
	}
	if b.StartSeqno, err = r.intField(6, "startSeqno"); err != nil {
		return nil, err
	}
	if b.StartSubseqno, err = r.intField(2, "startSubseqno"); err != nil {
		return nil, err
	}
	if b.EndTime, err = r.timeField("series_end_time"); err != nil {
		return nil, err
	}
	if b.EndSeqno, err = r.intField(6, "endSeqno"); err != nil {
		return nil, err
	}
	if b.EndSubseqno, err = r.intField(2, "endSubseqno"); err != nil {
		return nil, err
	}
	num, err := r.intField(3, "numAccels")
	if err != nil {
		return nil, err
	}
	for i := 0; i < num; i++ {
		t, err := r.timeField("record_time")
		if err != nil {
			return nil, err
		}
		seqno, err := r.intField(6, "accelSeqno")
		if err != nil {
			return nil, err
		}
		subseqno, err := r.intField(2, "accelSubseqno")
		if err != nil {
			return nil, err
		}
		b.AccelTime = append(b.AccelTime, t)
		b.AccelSeqno = append(b.AccelSeqno, seqno)
		b.AccelSubseqno = append(b.AccelSubseqno, subseqno)
	}
	if r.remaining() >= 2 {
		if b.Network, err = r.trimmed(2); err != nil {
			return nil, err
		}
	}

	return b, nil
}
