// Package convert drives the end-to-end SEED to CSS conversion: it reads a
// SEED volume, maps its stations and channels onto affiliation, site,
// sitechan, sensor and instrument rows, writes the synthesised response
// files, and optionally decodes the waveforms into per-segment sample files
// described by wfdisc rows.
package convert

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"

	"github.com/projectida/seedcss/css"
	"github.com/projectida/seedcss/internal/options"
	"github.com/projectida/seedcss/resp"
	"github.com/projectida/seedcss/seed"
	"github.com/projectida/seedcss/seedio"
)

// endtimeNull is the CSS null value for an open-ended interval.
const endtimeNull = 9999999999.999

// now is replaced in tests to pin load dates.
var now = time.Now

// Converter holds the parameters of one conversion run.
type Converter struct {
	seedFile    string
	dir         string
	prefix      string
	respDir     string
	geoTableDir string
	update      bool
	getData     bool
}

// Option configures a Converter.
type Option = options.Option[*Converter]

// WithDir sets the output directory for the CSS tables (default ".").
func WithDir(dir string) Option {
	return options.NoError(func(c *Converter) { c.dir = dir })
}

// WithPrefix sets the CSS file prefix (default "out").
func WithPrefix(prefix string) Option {
	return options.NoError(func(c *Converter) { c.prefix = prefix })
}

// WithRespDir sets the response file directory (default ".").
func WithRespDir(dir string) Option {
	return options.NoError(func(c *Converter) { c.respDir = dir })
}

// WithGeoTableDir sets the geo-table base directory. When set, tables go to
// <base>/static and responses to <base>/response.
func WithGeoTableDir(dir string) Option {
	return options.NoError(func(c *Converter) { c.geoTableDir = dir })
}

// WithUpdate selects update mode: existing rows are loaded first and new
// rows appended only when they do not conflict on identity keys. The
// default is true; false overwrites existing files.
func WithUpdate(update bool) Option {
	return options.NoError(func(c *Converter) { c.update = update })
}

// WithGetData selects whether waveforms are decoded and written along with
// wfdisc rows (default true).
func WithGetData(getData bool) Option {
	return options.NoError(func(c *Converter) { c.getData = getData })
}

// New creates a converter for one SEED volume.
func New(seedFile string, opts ...Option) (*Converter, error) {
	c := &Converter{
		seedFile: seedFile,
		dir:      ".",
		prefix:   "out",
		respDir:  ".",
		update:   true,
		getData:  true,
	}
	if err := options.Apply(c, opts...); err != nil {
		return nil, err
	}
	if c.geoTableDir != "" {
		c.dir = filepath.Join(c.geoTableDir, "static")
		c.respDir = filepath.Join(c.geoTableDir, "response")
	}

	return c, nil
}

// Convert runs the conversion. Any failure writing an output aborts the run
// with the partial outputs left in place.
func (c *Converter) Convert() error {
	vol, err := seedio.Open(c.seedFile)
	if err != nil {
		return err
	}
	defer vol.Close()

	readerOpts := []seed.ReaderOption{}
	if c.getData {
		// retain payloads so waveforms decode in the same pass, which also
		// covers non-seekable compressed volumes
		readerOpts = append(readerOpts, seed.WithKeepData())
	}
	r, err := seed.NewReader(vol, readerOpts...)
	if err != nil {
		return err
	}

	t := newTables()
	if c.update {
		if err := t.load(c.dir, c.prefix); err != nil {
			return err
		}
	}

	var segments []*seed.SeedData
	for {
		obj, err := r.Next()
		if err != nil {
			return err
		}
		if obj == nil {
			break
		}
		if sd, ok := obj.(*seed.SeedData); ok {
			segments = append(segments, sd)
		}
	}

	for _, sta := range r.Stations() {
		c.addStation(t, sta, r.Dictionary())
	}

	if c.getData {
		for _, sd := range segments {
			if err := c.writeSegment(t, sd); err != nil {
				return err
			}
		}
	}

	return t.write(c.dir, c.prefix, c.getData)
}

// addStation maps one station onto affiliation, site, sitechan, sensor and
// instrument rows.
func (c *Converter) addStation(t *tables, sta *seed.Station, d *seed.Dictionary) {
	lddate := css.Lddate(now())
	b50 := sta.B50

	t.addAffiliation(css.Affiliation{
		Net:    b50.Network,
		Sta:    b50.Station,
		Lddate: lddate,
	})

	ondate := dateOf(b50.Start)
	t.addSite(css.Site{
		Sta:     b50.Station,
		Ondate:  ondate,
		Offdate: dateOrNull(b50.End),
		Lat:     b50.Latitude,
		Lon:     b50.Longitude,
		Elev:    b50.Elevation / 1000.0, // CSS wants km
		Staname: b50.Name,
		Statype: "ss",
		Refsta:  b50.Station,
		Dnorth:  0,
		Deast:   0,
		Lddate:  lddate,
	})

	for _, ch := range sta.Channels {
		c.addChannel(t, sta, ch, d, lddate)
	}
}

func (c *Converter) addChannel(t *tables, sta *seed.Station, ch *seed.Channel,
	d *seed.Dictionary, lddate string) {

	b50, b52 := sta.B50, ch.B52
	ondate := dateOf(b52.Start)

	chanid, fresh := t.addSitechan(css.Sitechan{
		Sta:     b50.Station,
		Chan:    b52.Channel,
		Ondate:  ondate,
		Offdate: dateOrNull(b52.End),
		Ctype:   "n",
		Edepth:  b52.LocalDepth / 1000.0,
		Hang:    b52.Azimuth,
		Vang:    90.0 + b52.Dip, // SEED dip is from horizontal, CSS from vertical
		Descrip: instrumentName(d, b52),
		Lddate:  lddate,
	})
	if !fresh {
		log.Debugf("sitechan %s/%s/%d already present", b50.Station,
			b52.Channel, ondate)
	}

	cssResp := resp.CSSResponse(sta, ch, d)
	if cssResp == "" {
		return
	}

	insname := instrumentName(d, b52)
	calib, calper := channelCalib(ch, d)
	inid, respFile, fresh := t.addInstrument(css.Instrument{
		Insname:  insname,
		Instype:  instype(insname),
		Band:     bandCode(b52),
		Digital:  "d",
		Samprate: b52.SampleRate,
		Ncalib:   calib,
		Ncalper:  calper,
		Dir:      c.respDir,
		Dfile:    respFileName(b50.Station, b52.Channel, ondate),
		Rsptype:  rspType(ch),
		Lddate:   lddate,
	}, cssResp)

	if fresh {
		if err := c.writeRespFile(respFile, cssResp); err != nil {
			log.Errorf("writing response file %s: %v", respFile, err)
		}
	}

	start := b52.Start.Epoch()
	endtime := endtimeNull
	if !b52.End.IsZero() {
		endtime = b52.End.Epoch()
	}
	t.addSensor(css.Sensor{
		Sta:      b50.Station,
		Chan:     b52.Channel,
		Time:     start,
		Endtime:  endtime,
		Inid:     inid,
		Chanid:   chanid,
		Jdate:    css.Jdate(start),
		Calratio: 1.0,
		Calper:   calper,
		Tshift:   0,
		Instant:  "y",
		Lddate:   lddate,
	})
}

// writeSegment decodes one continuous segment into a per-segment sample
// file and adds its wfdisc row.
func (c *Converter) writeSegment(t *tables, sd *seed.SeedData) error {
	h := sd.Header()
	nsamp := sd.Nsamples()
	data := make([]float32, nsamp)

	n, err := sd.DecodeData(data)
	if err != nil {
		return err
	}
	if n != nsamp {
		log.Warnf("segment %s/%s decoded %d of %d samples", h.Station,
			h.Channel, n, nsamp)
	}

	start := sd.StartTime()
	dfile := segmentFileName(h.Station, h.Channel, start)
	if err := writeFloats(filepath.Join(c.dir, dfile), data); err != nil {
		return err
	}

	chanid := t.sitechanID(h.Station, h.Channel)
	instype := "-"
	if sd.Channel != nil {
		// the sitechan of the channel epoch is the better join
		if id := t.sitechanIDAt(h.Station, h.Channel, dateOf(sd.Channel.B52.Start)); id != 0 {
			chanid = id
		}
	}

	t.addWfdisc(css.Wfdisc{
		Sta:      h.Station,
		Chan:     h.Channel,
		Time:     start,
		Chanid:   chanidOrNull(chanid),
		Jdate:    css.Jdate(start),
		Endtime:  sd.EndTime(),
		Nsamp:    nsamp,
		Samprate: sd.SampRate(),
		Calib:    sd.Calib,
		Calper:   sd.Calper,
		Instype:  instype,
		Segtype:  "o",
		Datatype: hostDatatype(),
		Clip:     "-",
		Dir:      ".",
		Dfile:    dfile,
		Foff:     0,
		Commid:   -1,
		Lddate:   css.Lddate(now()),
	})

	return nil
}

func (c *Converter) writeRespFile(name, content string) error {
	if err := os.MkdirAll(c.respDir, 0o755); err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(c.respDir, name), []byte(content), 0o644)
}

// channelCalib resolves the channel's stage-0 sensitivity into nanometres
// per count and the calibration period, converting velocity and
// acceleration sensitivities to displacement.
func channelCalib(ch *seed.Channel, d *seed.Dictionary) (float64, float64) {
	b58 := ch.B58Stage(0)
	if b58 == nil || b58.Sensitivity == 0 || b58.Frequency == 0 {
		return 0, 0
	}

	factor := 1.0
	if b34 := d.B34(ch.B52.SignalUnits); b34 != nil {
		desc := strings.ToUpper(b34.Description)
		switch {
		case strings.Contains(desc, "VEL"):
			factor = 2.0 * math.Pi * b58.Frequency
		case strings.Contains(desc, "ACCEL"):
			factor = 4.0 * math.Pi * math.Pi * b58.Frequency * b58.Frequency
		}
	}

	return 1.0e9 / (b58.Sensitivity * factor), 1.0 / b58.Frequency
}

func instrumentName(d *seed.Dictionary, b52 *seed.Blockette52) string {
	if b33 := d.B33(b52.Instrument); b33 != nil {
		return b33.Description
	}

	return "-"
}

func instype(insname string) string {
	if insname == "" || insname == "-" {
		return "-"
	}
	if len(insname) > 6 {
		return insname[:6]
	}

	return insname
}

// bandCode derives the instrument band column from the first letter of the
// channel code.
func bandCode(b52 *seed.Blockette52) string {
	if len(b52.Channel) > 0 {
		return strings.ToLower(b52.Channel[0:1])
	}

	return "-"
}

// rspType names the dominant response representation of the cascade.
func rspType(ch *seed.Channel) string {
	hasFIR := false
	hasFAP := false
	for _, b := range ch.Response {
		switch b.(type) {
		case *seed.Blockette53:
			return "paz"
		case *seed.Blockette54, *seed.Blockette61:
			hasFIR = true
		case *seed.Blockette55:
			hasFAP = true
		}
	}
	if hasFIR {
		return "fir"
	}
	if hasFAP {
		return "fap"
	}

	return "-"
}

// respFileName builds the stable response file name for a channel epoch, so
// reruns produce identical paths.
func respFileName(sta, chanCode string, ondate int) string {
	return fmt.Sprintf("%s.%s.%d", sta, chanCode, ondate)
}

// segmentFileName builds the stable waveform file name for a segment.
func segmentFileName(sta, chanCode string, start float64) string {
	t := time.Unix(int64(start), 0).UTC()

	return fmt.Sprintf("%s.%s.%d.%02d%02d%02d.w", sta, chanCode,
		css.Jdate(start), t.Hour(), t.Minute(), t.Second())
}

func dateOf(t seed.Time) int {
	if t.IsZero() {
		return -1
	}

	return t.Year*1000 + t.Doy
}

func dateOrNull(t seed.Time) int {
	if t.IsZero() {
		return -1
	}

	return dateOf(t)
}

func chanidOrNull(chanid int) int {
	if chanid == 0 {
		return -1
	}

	return chanid
}

// respHash fingerprints a synthesised response so identical responses share
// one instrument row across channels and reruns.
func respHash(cssResp string) uint64 {
	return xxhash.Sum64String(cssResp)
}
