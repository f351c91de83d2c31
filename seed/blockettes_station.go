package seed

// Blockette50 is the Station Identifier Blockette.
type Blockette50 struct {
	Station     string
	Latitude    float64
	Longitude   float64
	Elevation   float64
	NumChannels int
	NumComments int
	Name        string // site name
	NetworkID   int
	WordOrder   string // 32 bit word order, such as "3210"
	ShortOrder  string // 16 bit word order, such as "10"
	Start       Time
	End         Time
	Update      string
	Network     string // network code, present in version >= 2.3
}

func (b *Blockette50) BlocketteType() int { return 50 }

func parseBlockette50(body string) (*Blockette50, error) {
	b := &Blockette50{WordOrder: "3210", ShortOrder: "10"}
	r := newFieldReader(body, "050")

	var err error
	if b.Station, err = r.trimmed(5); err != nil {
		return nil, err
	}
	if b.Latitude, err = r.floatField(10, "latitude"); err != nil {
		return nil, err
	}
	if b.Longitude, err = r.floatField(11, "longitude"); err != nil {
		return nil, err
	}
	if b.Elevation, err = r.floatField(7, "elevation"); err != nil {
		return nil, err
	}
	if b.NumChannels, err = r.intField(4, "numChannels"); err != nil {
		return nil, err
	}
	if b.NumComments, err = r.intField(3, "numComments"); err != nil {
		return nil, err
	}
	if b.Name, err = r.variable(); err != nil {
		return nil, err
	}
	if b.NetworkID, err = r.intField(3, "networkId"); err != nil {
		return nil, err
	}
	if b.WordOrder, err = r.fixed(4); err != nil {
		return nil, err
	}
	if b.ShortOrder, err = r.fixed(2); err != nil {
		return nil, err
	}
	if b.Start, err = r.timeField("start_date"); err != nil {
		return nil, err
	}
	if b.End, err = r.timeField("end_date"); err != nil {
		return nil, err
	}
	if b.Update, err = r.fixed(1); err != nil {
		return nil, err
	}
	// The 2-char network code trails the update flag in version >= 2.3
	// only; probe the total length to decide.
	if r.remaining() >= 2 {
		if b.Network, err = r.trimmed(2); err != nil {
			return nil, err
		}
	}

	return b, nil
}

// Blockette51 is the Station Comment Blockette.
type Blockette51 struct {
	Beg          Time
	End          Time
	CommentCode  int
	CommentLevel int
}

func (b *Blockette51) BlocketteType() int { return 51 }

func parseBlockette51(body string) (*Blockette51, error) {
	b := &Blockette51{}
	r := newFieldReader(body, "051")

	var err error
	if b.Beg, err = r.timeField("beginning_time"); err != nil {
		return nil, err
	}
	if b.End, err = r.timeField("end_time"); err != nil {
		return nil, err
	}
	if b.CommentCode, err = r.intField(4, "commentCode"); err != nil {
		return nil, err
	}
	if b.CommentLevel, err = r.intField(6, "commentLevel"); err != nil {
		return nil, err
	}

	return b, nil
}

// Blockette52 is the Channel Identifier Blockette.
type Blockette52 struct {
	Location     string
	Channel      string
	Subchannel   int
	Instrument   int // B33 key of the instrument description
	Comment      string
	SignalUnits  int // B34 key of the response signal units
	CalibUnits   int // B34 key of the calibration input units
	Latitude     float64
	Longitude    float64
	Elevation    float64
	LocalDepth   float64
	Azimuth      float64
	Dip          float64
	FormatCode   int // B30 key of the data format
	RecLen       int // data record length as a power of 2
	SampleRate   float64
	ClockDrift   float64 // max clock drift (seconds per sample)
	NumComments  int
	ChannelFlags string
	Start        Time
	End          Time
	Update       string
}

func (b *Blockette52) BlocketteType() int { return 52 }

func parseBlockette52(body string) (*Blockette52, error) {
	b := &Blockette52{}
	r := newFieldReader(body, "052")

	var err error
	if b.Location, err = r.trimmed(2); err != nil {
		return nil, err
	}
	if b.Channel, err = r.trimmed(3); err != nil {
		return nil, err
	}
	if b.Subchannel, err = r.intField(4, "subchannel"); err != nil {
		return nil, err
	}
	if b.Instrument, err = r.intField(3, "instrument"); err != nil {
		return nil, err
	}
	if b.Comment, err = r.variable(); err != nil {
		return nil, err
	}
	if b.SignalUnits, err = r.intField(3, "signalUnits"); err != nil {
		return nil, err
	}
	if b.CalibUnits, err = r.intField(3, "calibUnits"); err != nil {
		return nil, err
	}
	if b.Latitude, err = r.floatField(10, "latitude"); err != nil {
		return nil, err
	}
	if b.Longitude, err = r.floatField(11, "longitude"); err != nil {
		return nil, err
	}
	if b.Elevation, err = r.floatField(7, "elevation"); err != nil {
		return nil, err
	}
	if b.LocalDepth, err = r.floatField(5, "localDepth"); err != nil {
		return nil, err
	}
	if b.Azimuth, err = r.floatField(5, "azimuth"); err != nil {
		return nil, err
	}
	if b.Dip, err = r.floatField(5, "dip"); err != nil {
		return nil, err
	}
	if b.FormatCode, err = r.intField(4, "formatCode"); err != nil {
		return nil, err
	}
	if b.RecLen, err = r.intField(2, "reclen"); err != nil {
		return nil, err
	}
	if b.SampleRate, err = r.floatField(10, "sampleRate"); err != nil {
		return nil, err
	}
	if b.ClockDrift, err = r.floatField(10, "clockDrift"); err != nil {
		return nil, err
	}
	if b.NumComments, err = r.intField(4, "numComments"); err != nil {
		return nil, err
	}
	if b.ChannelFlags, err = r.variable(); err != nil {
		return nil, err
	}
	if b.Start, err = r.timeField("start_date"); err != nil {
		return nil, err
	}
	if b.End, err = r.timeField("end_date"); err != nil {
		return nil, err
	}
	if b.Update, err = r.fixed(1); err != nil {
		return nil, err
	}

	return b, nil
}
