package convert

import (
	"encoding/binary"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/klauspost/compress/gzip"

	"github.com/projectida/seedcss/css"
	"github.com/projectida/seedcss/endian"
	"github.com/projectida/seedcss/internal/seedtest"
	"github.com/stretchr/testify/require"
)

func init() {
	now = func() time.Time {
		return time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)
	}
}

// testVolume builds a volume with one station (II/ABKT), one BHZ channel
// with a velocity PAZ response, and two contiguous data records.
func testVolume() []byte {
	v := seedtest.NewVolume(4096)
	v.AddControl('V', seedtest.Blockette(10, seedtest.B10Body(12)))
	v.AddControl('A',
		seedtest.Blockette(33, seedtest.B33Body(3, "Streckeisen STS-2 Seismometer")),
		seedtest.Blockette(34, seedtest.B34Body(4, "M/S", "Velocity in Meters Per Second")),
		seedtest.Blockette(34, seedtest.B34Body(5, "COUNTS", "Digital Counts")),
	)
	v.AddControl('S',
		seedtest.Blockette(50, seedtest.B50Body("ABKT", "II",
			"Alibek, Turkmenistan", "3210", "10", "2019,001", "")),
		seedtest.Blockette(52, seedtest.B52Body("", "BHZ", 3, 4, 1, 40.0,
			0.0001, "2019,001")),
		seedtest.Blockette(53, seedtest.B53Body("A", 1, 4, 5, 1.0, 1.0,
			[]seedtest.PZ{{Re: 0, Im: 0}},
			[]seedtest.PZ{{Re: -0.037, Im: 0.037}, {Re: -0.037, Im: -0.037}})),
		seedtest.Blockette(58, seedtest.B58Body(0, 6.28e8, 1.0)),
	)

	for i := 0; i < 2; i++ {
		payload := seedtest.Int32Payload(seedtest.Ramp(40, int32(i+1)),
			binary.BigEndian)
		v.AddRecord(seedtest.DataRecord(seedtest.DataSpec{
			Seqno: 4 + i, Sta: "ABKT", Chan: "BHZ", Net: "II",
			Year: 2020, Doy: 100, Second: i,
			Nsamples: 40, Factor: 40, Mult: 1,
			Format: 3, RecExp: 12, HeaderBig: true, PayloadBig: true,
			Payload: payload,
		}))
	}

	return v.Bytes()
}

func writeVolume(t *testing.T, dir string, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, testVolume(), 0o644))

	return path
}

func readLines(t *testing.T, path string) []string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var lines []string
	for _, line := range strings.Split(string(data), "\n") {
		if strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}

	return lines
}

func TestConvert_EndToEnd(t *testing.T) {
	dir := t.TempDir()
	seedPath := writeVolume(t, dir, "test.seed")

	c, err := New(seedPath, WithDir(dir), WithPrefix("local"),
		WithRespDir(filepath.Join(dir, "response")))
	require.NoError(t, err)
	require.NoError(t, c.Convert())

	// affiliation
	lines := readLines(t, filepath.Join(dir, "local.affiliation"))
	require.Len(t, lines, 1)
	aff, err := css.ParseAffiliation(lines[0])
	require.NoError(t, err)
	require.Equal(t, "II", aff.Net)
	require.Equal(t, "ABKT", aff.Sta)

	// site
	lines = readLines(t, filepath.Join(dir, "local.site"))
	require.Len(t, lines, 1)
	site, err := css.ParseSite(lines[0])
	require.NoError(t, err)
	require.Equal(t, "ABKT", site.Sta)
	require.Equal(t, 2019001, site.Ondate)
	require.Equal(t, -1, site.Offdate)

	// sitechan
	lines = readLines(t, filepath.Join(dir, "local.sitechan"))
	require.Len(t, lines, 1)
	sc, err := css.ParseSitechan(lines[0])
	require.NoError(t, err)
	require.Equal(t, "BHZ", sc.Chan)
	require.Equal(t, 1, sc.Chanid)

	// sensor joins the sitechan and the instrument
	lines = readLines(t, filepath.Join(dir, "local.sensor"))
	require.Len(t, lines, 1)
	sensor, err := css.ParseSensor(lines[0])
	require.NoError(t, err)
	require.Equal(t, sc.Chanid, sensor.Chanid)

	// instrument points at the written response file
	lines = readLines(t, filepath.Join(dir, "local.instrument"))
	require.Len(t, lines, 1)
	inst, err := css.ParseInstrument(lines[0])
	require.NoError(t, err)
	require.Equal(t, sensor.Inid, inst.Inid)
	require.Equal(t, "paz", inst.Rsptype)

	respData, err := os.ReadFile(filepath.Join(dir, "response", inst.Dfile))
	require.NoError(t, err)
	require.Contains(t, string(respData), "instrument paz")

	// wfdisc: the two contiguous records form one segment of 80 samples
	lines = readLines(t, filepath.Join(dir, "local.wfdisc"))
	require.Len(t, lines, 1)
	wf, err := css.ParseWfdisc(lines[0])
	require.NoError(t, err)
	require.Equal(t, 80, wf.Nsamp)
	require.InDelta(t, 40.0, wf.Samprate, 1e-9)
	require.InDelta(t, 1586390400.0, wf.Time, 1e-5)
	require.Greater(t, wf.Calib, 0.0)

	wave, err := os.ReadFile(filepath.Join(dir, wf.Dfile))
	require.NoError(t, err)
	require.Len(t, wave, 80*4)

	// first sample of the second record
	engine := endian.NativeEngine()
	require.Equal(t, float32(0), floatAt(engine, wave, 0))
	require.Equal(t, float32(0), floatAt(engine, wave, 40))
	require.Equal(t, float32(39), floatAt(engine, wave, 39))
}

func floatAt(engine endian.EndianEngine, buf []byte, i int) float32 {
	bits := engine.Uint32(buf[4*i : 4*i+4])

	return math.Float32frombits(bits)
}

func TestConvert_UpdateIsIdempotent(t *testing.T) {
	dir := t.TempDir()
	seedPath := writeVolume(t, dir, "test.seed")

	for i := 0; i < 2; i++ {
		c, err := New(seedPath, WithDir(dir), WithPrefix("local"),
			WithRespDir(filepath.Join(dir, "response")), WithUpdate(true),
			WithGetData(false))
		require.NoError(t, err)
		require.NoError(t, c.Convert())
	}

	require.Len(t, readLines(t, filepath.Join(dir, "local.affiliation")), 1)
	require.Len(t, readLines(t, filepath.Join(dir, "local.site")), 1)
	require.Len(t, readLines(t, filepath.Join(dir, "local.sitechan")), 1)
	require.Len(t, readLines(t, filepath.Join(dir, "local.sensor")), 1)
	require.Len(t, readLines(t, filepath.Join(dir, "local.instrument")), 1)

	// the rerun reuses the loaded row and its chanid; no second id is
	// allocated
	sc, err := css.ParseSitechan(readLines(t, filepath.Join(dir, "local.sitechan"))[0])
	require.NoError(t, err)
	require.Equal(t, 1, sc.Chanid)
}

func TestConvert_GzippedVolume(t *testing.T) {
	dir := t.TempDir()
	gzPath := filepath.Join(dir, "test.seed.gz")

	f, err := os.Create(gzPath)
	require.NoError(t, err)
	zw := gzip.NewWriter(f)
	_, err = zw.Write(testVolume())
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	require.NoError(t, f.Close())

	c, err := New(gzPath, WithDir(dir), WithPrefix("gz"),
		WithRespDir(filepath.Join(dir, "response")))
	require.NoError(t, err)
	require.NoError(t, c.Convert())

	lines := readLines(t, filepath.Join(dir, "gz.wfdisc"))
	require.Len(t, lines, 1)
}

func TestConvert_GeoTableDir(t *testing.T) {
	base := t.TempDir()
	seedPath := writeVolume(t, base, "test.seed")

	c, err := New(seedPath, WithGeoTableDir(base), WithPrefix("local"),
		WithGetData(false))
	require.NoError(t, err)
	require.NoError(t, c.Convert())

	require.FileExists(t, filepath.Join(base, "static", "local.site"))
	require.DirExists(t, filepath.Join(base, "response"))
}

func TestSegmentFileName_Stable(t *testing.T) {
	a := segmentFileName("ABKT", "BHZ", 1586390400)
	b := segmentFileName("ABKT", "BHZ", 1586390400)
	require.Equal(t, a, b)
	require.Equal(t, "ABKT.BHZ.2020100.000000.w", a)
}
