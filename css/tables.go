// Package css models the CSS 3.0 relational flat-file schema used as the
// conversion output: affiliation, site, sitechan, sensor, instrument and
// wfdisc rows in their fixed-width external representation, plus the
// update-mode readers that load existing tables from disk.
package css

import (
	"fmt"
	"time"
)

// Jdate converts an epoch to the CSS julian date (YYYYDDD).
func Jdate(epoch float64) int {
	t := time.Unix(int64(epoch), 0).UTC()

	return t.Year()*1000 + t.YearDay()
}

// Lddate formats a load date in the 17-character CSS form.
func Lddate(t time.Time) string {
	return t.UTC().Format("01/02/06 15:04:05")
}

// Affiliation is one row of the network affiliation table, keyed by
// (net, sta).
type Affiliation struct {
	Net    string
	Sta    string
	Lddate string
}

// Row renders the fixed-width external form.
func (a *Affiliation) Row() string {
	return fmt.Sprintf("%-8.8s %-6.6s %-17.17s", a.Net, a.Sta, a.Lddate)
}

// Site is one row of the site table, keyed by (sta, ondate).
type Site struct {
	Sta     string
	Ondate  int
	Offdate int
	Lat     float64
	Lon     float64
	Elev    float64
	Staname string
	Statype string
	Refsta  string
	Dnorth  float64
	Deast   float64
	Lddate  string
}

// Row renders the fixed-width external form.
func (s *Site) Row() string {
	return fmt.Sprintf("%-6.6s %8d %8d %9.4f %9.4f %9.4f %-50.50s %-4.4s %-6.6s %9.4f %9.4f %-17.17s",
		s.Sta, s.Ondate, s.Offdate, s.Lat, s.Lon, s.Elev, s.Staname,
		s.Statype, s.Refsta, s.Dnorth, s.Deast, s.Lddate)
}

// Sitechan is one row of the sitechan table, keyed by (sta, chan, ondate).
// Chanid is an integer surrogate key.
type Sitechan struct {
	Sta     string
	Chan    string
	Ondate  int
	Chanid  int
	Offdate int
	Ctype   string
	Edepth  float64
	Hang    float64
	Vang    float64
	Descrip string
	Lddate  string
}

// Row renders the fixed-width external form.
func (s *Sitechan) Row() string {
	return fmt.Sprintf("%-6.6s %-8.8s %8d %8d %8d %-4.4s %9.4f %6.1f %6.1f %-50.50s %-17.17s",
		s.Sta, s.Chan, s.Ondate, s.Chanid, s.Offdate, s.Ctype, s.Edepth,
		s.Hang, s.Vang, s.Descrip, s.Lddate)
}

// Sensor is one row of the sensor table, joining a sitechan (chanid) to an
// instrument (inid) over a time interval.
type Sensor struct {
	Sta      string
	Chan     string
	Time     float64
	Endtime  float64
	Inid     int
	Chanid   int
	Jdate    int
	Calratio float64
	Calper   float64
	Tshift   float64
	Instant  string
	Lddate   string
}

// Row renders the fixed-width external form.
func (s *Sensor) Row() string {
	return fmt.Sprintf("%-6.6s %-8.8s %17.5f %17.5f %8d %8d %8d %16.6f %16.6f %6.2f %-1.1s %-17.17s",
		s.Sta, s.Chan, s.Time, s.Endtime, s.Inid, s.Chanid, s.Jdate,
		s.Calratio, s.Calper, s.Tshift, s.Instant, s.Lddate)
}

// Instrument is one row of the instrument table: one distinct response,
// keyed by the integer surrogate inid, pointing at its response file.
type Instrument struct {
	Inid    int
	Insname string
	Instype string
	Band    string
	Digital string
	Samprate float64
	Ncalib  float64
	Ncalper float64
	Dir     string
	Dfile   string
	Rsptype string
	Lddate  string
}

// Row renders the fixed-width external form.
func (i *Instrument) Row() string {
	return fmt.Sprintf("%8d %-50.50s %-6.6s %-1.1s %-1.1s %11.7f %16.6f %16.6f %-64.64s %-32.32s %-6.6s %-17.17s",
		i.Inid, i.Insname, i.Instype, i.Band, i.Digital, i.Samprate,
		i.Ncalib, i.Ncalper, i.Dir, i.Dfile, i.Rsptype, i.Lddate)
}

// Wfdisc is one row of the waveform descriptor table, locating one
// continuous waveform segment.
type Wfdisc struct {
	Sta      string
	Chan     string
	Time     float64
	Wfid     int
	Chanid   int
	Jdate    int
	Endtime  float64
	Nsamp    int
	Samprate float64
	Calib    float64
	Calper   float64
	Instype  string
	Segtype  string
	Datatype string
	Clip     string
	Dir      string
	Dfile    string
	Foff     int
	Commid   int
	Lddate   string
}

// Row renders the fixed-width external form.
func (w *Wfdisc) Row() string {
	return fmt.Sprintf("%-6.6s %-8.8s %17.5f %8d %8d %8d %17.5f %8d %11.7f %16.6f %16.6f %-6.6s %-1.1s %-2.2s %-1.1s %-64.64s %-32.32s %10d %8d %-17.17s",
		w.Sta, w.Chan, w.Time, w.Wfid, w.Chanid, w.Jdate, w.Endtime,
		w.Nsamp, w.Samprate, w.Calib, w.Calper, w.Instype, w.Segtype,
		w.Datatype, w.Clip, w.Dir, w.Dfile, w.Foff, w.Commid, w.Lddate)
}
