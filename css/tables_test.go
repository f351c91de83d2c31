package css

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestJdate(t *testing.T) {
	// 2020-04-09 is day 100 of 2020
	require.Equal(t, 2020100, Jdate(1586390400))
	require.Equal(t, 1970001, Jdate(0))
}

func TestLddate(t *testing.T) {
	ts := time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)
	require.Equal(t, "03/15/24 10:30:00", Lddate(ts))
	require.Len(t, Lddate(ts), 17)
}

func TestAffiliationRoundTrip(t *testing.T) {
	a := Affiliation{Net: "II", Sta: "ABKT", Lddate: "03/15/24 10:30:00"}
	row := a.Row()

	got, err := ParseAffiliation(row)
	require.NoError(t, err)
	require.Equal(t, a, got)
}

func TestSiteRoundTrip(t *testing.T) {
	s := Site{
		Sta: "ABKT", Ondate: 2019001, Offdate: -1,
		Lat: 37.9304, Lon: 58.1189, Elev: 0.678,
		Staname: "Alibek, Turkmenistan", Statype: "ss", Refsta: "ABKT",
		Dnorth: 0, Deast: 0, Lddate: "03/15/24 10:30:00",
	}
	row := s.Row()

	got, err := ParseSite(row)
	require.NoError(t, err)
	require.Equal(t, s, got)
}

func TestSitechanRoundTrip(t *testing.T) {
	s := Sitechan{
		Sta: "ABKT", Chan: "BHZ", Ondate: 2019001, Chanid: 7, Offdate: -1,
		Ctype: "n", Edepth: 0.005, Hang: 0, Vang: 0,
		Descrip: "Streckeisen STS-2", Lddate: "03/15/24 10:30:00",
	}
	row := s.Row()

	got, err := ParseSitechan(row)
	require.NoError(t, err)
	require.Equal(t, s, got)
}

func TestSensorRoundTrip(t *testing.T) {
	s := Sensor{
		Sta: "ABKT", Chan: "BHZ", Time: 1546300800.0,
		Endtime: 9999999999.999, Inid: 3, Chanid: 7, Jdate: 2019001,
		Calratio: 1, Calper: 1, Tshift: 0, Instant: "y",
		Lddate: "03/15/24 10:30:00",
	}
	row := s.Row()

	got, err := ParseSensor(row)
	require.NoError(t, err)
	require.Equal(t, s, got)
}

func TestInstrumentRoundTrip(t *testing.T) {
	i := Instrument{
		Inid: 3, Insname: "Streckeisen STS-2 Seismometer", Instype: "Streck",
		Band: "b", Digital: "d", Samprate: 40, Ncalib: 0.2533,
		Ncalper: 1, Dir: "/data/response", Dfile: "ABKT.BHZ.2019001",
		Rsptype: "paz", Lddate: "03/15/24 10:30:00",
	}
	row := i.Row()

	got, err := ParseInstrument(row)
	require.NoError(t, err)
	require.Equal(t, i, got)
}

func TestWfdiscRoundTrip(t *testing.T) {
	w := Wfdisc{
		Sta: "ABKT", Chan: "BHZ", Time: 1586304000.0, Wfid: 1, Chanid: 7,
		Jdate: 2020100, Endtime: 1586304024.975, Nsamp: 1000, Samprate: 40,
		Calib: 0.2533, Calper: 1, Instype: "Streck", Segtype: "o",
		Datatype: "f4", Clip: "-", Dir: ".", Dfile: "ABKT.BHZ.2020100.000000.w",
		Foff: 0, Commid: -1, Lddate: "03/15/24 10:30:00",
	}
	row := w.Row()

	got, err := ParseWfdisc(row)
	require.NoError(t, err)
	require.Equal(t, w, got)
}

func TestReadLines_SkipsBlank(t *testing.T) {
	in := strings.NewReader("a\n\n  \nb\n")
	var lines []string
	err := ReadLines(in, func(line string) error {
		lines = append(lines, line)
		return nil
	})
	require.NoError(t, err)
	require.Equal(t, []string{"a", "b"}, lines)
}
