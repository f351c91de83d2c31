package css

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/projectida/seedcss/errs"
)

// rowReader is a cursor over one fixed-width table line. Each field
// consumes its declared width plus the single separating space.
type rowReader struct {
	line string
	pos  int
}

func (r *rowReader) str(n int) string {
	if r.pos >= len(r.line) {
		return ""
	}
	end := r.pos + n
	if end > len(r.line) {
		end = len(r.line)
	}
	s := r.line[r.pos:end]
	r.pos = end + 1 // skip the separator

	return strings.TrimSpace(s)
}

func (r *rowReader) int(n int) (int, error) {
	s := r.str(n)
	if s == "" {
		return 0, fmt.Errorf("%w: empty integer column", errs.ErrFormat)
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", errs.ErrFormat, s)
	}

	return v, nil
}

func (r *rowReader) float(n int) (float64, error) {
	s := r.str(n)
	if s == "" {
		return 0, fmt.Errorf("%w: empty float column", errs.ErrFormat)
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", errs.ErrFormat, s)
	}

	return v, nil
}

// ParseAffiliation parses one affiliation row.
func ParseAffiliation(line string) (Affiliation, error) {
	r := &rowReader{line: line}
	a := Affiliation{
		Net: r.str(8),
		Sta: r.str(6),
	}
	a.Lddate = r.str(17)
	if a.Net == "" || a.Sta == "" {
		return a, fmt.Errorf("%w: short affiliation row", errs.ErrFormat)
	}

	return a, nil
}

// ParseSite parses one site row.
func ParseSite(line string) (Site, error) {
	var err error
	r := &rowReader{line: line}
	s := Site{Sta: r.str(6)}

	if s.Ondate, err = r.int(8); err != nil {
		return s, err
	}
	if s.Offdate, err = r.int(8); err != nil {
		return s, err
	}
	if s.Lat, err = r.float(9); err != nil {
		return s, err
	}
	if s.Lon, err = r.float(9); err != nil {
		return s, err
	}
	if s.Elev, err = r.float(9); err != nil {
		return s, err
	}
	s.Staname = r.str(50)
	s.Statype = r.str(4)
	s.Refsta = r.str(6)
	if s.Dnorth, err = r.float(9); err != nil {
		return s, err
	}
	if s.Deast, err = r.float(9); err != nil {
		return s, err
	}
	s.Lddate = r.str(17)

	return s, nil
}

// ParseSitechan parses one sitechan row.
func ParseSitechan(line string) (Sitechan, error) {
	var err error
	r := &rowReader{line: line}
	s := Sitechan{Sta: r.str(6), Chan: r.str(8)}

	if s.Ondate, err = r.int(8); err != nil {
		return s, err
	}
	if s.Chanid, err = r.int(8); err != nil {
		return s, err
	}
	if s.Offdate, err = r.int(8); err != nil {
		return s, err
	}
	s.Ctype = r.str(4)
	if s.Edepth, err = r.float(9); err != nil {
		return s, err
	}
	if s.Hang, err = r.float(6); err != nil {
		return s, err
	}
	if s.Vang, err = r.float(6); err != nil {
		return s, err
	}
	s.Descrip = r.str(50)
	s.Lddate = r.str(17)

	return s, nil
}

// ParseSensor parses one sensor row.
func ParseSensor(line string) (Sensor, error) {
	var err error
	r := &rowReader{line: line}
	s := Sensor{Sta: r.str(6), Chan: r.str(8)}

	if s.Time, err = r.float(17); err != nil {
		return s, err
	}
	if s.Endtime, err = r.float(17); err != nil {
		return s, err
	}
	if s.Inid, err = r.int(8); err != nil {
		return s, err
	}
	if s.Chanid, err = r.int(8); err != nil {
		return s, err
	}
	if s.Jdate, err = r.int(8); err != nil {
		return s, err
	}
	if s.Calratio, err = r.float(16); err != nil {
		return s, err
	}
	if s.Calper, err = r.float(16); err != nil {
		return s, err
	}
	if s.Tshift, err = r.float(6); err != nil {
		return s, err
	}
	s.Instant = r.str(1)
	s.Lddate = r.str(17)

	return s, nil
}

// ParseInstrument parses one instrument row.
func ParseInstrument(line string) (Instrument, error) {
	var err error
	r := &rowReader{line: line}
	i := Instrument{}

	if i.Inid, err = r.int(8); err != nil {
		return i, err
	}
	i.Insname = r.str(50)
	i.Instype = r.str(6)
	i.Band = r.str(1)
	i.Digital = r.str(1)
	if i.Samprate, err = r.float(11); err != nil {
		return i, err
	}
	if i.Ncalib, err = r.float(16); err != nil {
		return i, err
	}
	if i.Ncalper, err = r.float(16); err != nil {
		return i, err
	}
	i.Dir = r.str(64)
	i.Dfile = r.str(32)
	i.Rsptype = r.str(6)
	i.Lddate = r.str(17)

	return i, nil
}

// ParseWfdisc parses one wfdisc row.
func ParseWfdisc(line string) (Wfdisc, error) {
	var err error
	r := &rowReader{line: line}
	w := Wfdisc{Sta: r.str(6), Chan: r.str(8)}

	if w.Time, err = r.float(17); err != nil {
		return w, err
	}
	if w.Wfid, err = r.int(8); err != nil {
		return w, err
	}
	if w.Chanid, err = r.int(8); err != nil {
		return w, err
	}
	if w.Jdate, err = r.int(8); err != nil {
		return w, err
	}
	if w.Endtime, err = r.float(17); err != nil {
		return w, err
	}
	if w.Nsamp, err = r.int(8); err != nil {
		return w, err
	}
	if w.Samprate, err = r.float(11); err != nil {
		return w, err
	}
	if w.Calib, err = r.float(16); err != nil {
		return w, err
	}
	if w.Calper, err = r.float(16); err != nil {
		return w, err
	}
	w.Instype = r.str(6)
	w.Segtype = r.str(1)
	w.Datatype = r.str(2)
	w.Clip = r.str(1)
	w.Dir = r.str(64)
	w.Dfile = r.str(32)
	if w.Foff, err = r.int(10); err != nil {
		return w, err
	}
	if w.Commid, err = r.int(8); err != nil {
		return w, err
	}
	w.Lddate = r.str(17)

	return w, nil
}

// ReadLines invokes fn for each non-empty line of in; parse failures are
// reported once per line through the returned error of fn.
func ReadLines(in io.Reader, fn func(line string) error) error {
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 4096), 1024*1024)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		if err := fn(line); err != nil {
			return err
		}
	}

	return scanner.Err()
}
