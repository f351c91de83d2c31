package seed

// Channel holds one Blockette52 and the response-stage blockettes (53-62)
// declared after it, in declaration order.
type Channel struct {
	B52      *Blockette52
	Response []Blockette
}

// Add appends a response blockette (53-62) to the channel.
func (c *Channel) Add(b Blockette) {
	if b == nil {
		return
	}
	switch b.(type) {
	case *Blockette53, *Blockette54, *Blockette55, *Blockette56,
		*Blockette57, *Blockette58, *Blockette59, *Blockette60,
		*Blockette61, *Blockette62:
		c.Response = append(c.Response, b)
	}
}

// B58Stage returns the first Blockette58 with the given stage, or nil.
func (c *Channel) B58Stage(stage int) *Blockette58 {
	for _, b := range c.Response {
		if b58, ok := b.(*Blockette58); ok && b58.Stage == stage {
			return b58
		}
	}

	return nil
}

// Clone returns a deep-enough copy of the channel: the response list is
// copied, the immutable blockettes are shared.
func (c *Channel) Clone() *Channel {
	return &Channel{
		B52:      c.B52,
		Response: append([]Blockette(nil), c.Response...),
	}
}

// Station holds one Blockette50, the station comments declared after it, and
// its channels in declaration order. Identity is (network, station); a later
// Blockette50 with the same identity replaces the previous station.
type Station struct {
	B50      *Blockette50
	Comments []*Blockette51
	Channels []*Channel
}

// NewStation creates a station owning the given Blockette50.
func NewStation(b50 *Blockette50) *Station {
	return &Station{B50: b50}
}

// Add attaches a blockette of type 51-62 to the station. A Blockette52
// starts a new channel; response blockettes attach to the current channel.
func (s *Station) Add(b Blockette) {
	if b == nil {
		return
	}
	switch b := b.(type) {
	case *Blockette51:
		s.Comments = append(s.Comments, b)
	case *Blockette52:
		s.Channels = append(s.Channels, &Channel{B52: b})
	default:
		if len(s.Channels) == 0 {
			log.Warnf("Blockette%d found before Blockette52",
				b.BlocketteType())
			return
		}
		s.Channels[len(s.Channels)-1].Add(b)
	}
}

// FindChannel returns the channel matching a channel code and location
// identifier, or nil.
func (s *Station) FindChannel(channel, location string) *Channel {
	for _, c := range s.Channels {
		if c.B52.Channel == channel && c.B52.Location == location {
			return c
		}
	}

	return nil
}
