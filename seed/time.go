package seed

import (
	"fmt"

	"github.com/projectida/seedcss/endian"
	"github.com/projectida/seedcss/errs"
)

// Time is a time value parsed from a SEED volume. The ASCII form is
// YYYY,DDD,HH,MM,SS.FFFF and may be truncated after any field; the binary
// form (BTIME) is 10 bytes. Seconds carries both the integer and the
// fractional part.
type Time struct {
	Year    int
	Doy     int // day of year, 1-366
	Hour    int
	Minute  int
	Seconds float64
}

// ParseTime parses an ASCII SEED time. The string may be empty (a station
// off-date) or truncated to date, date+hour, and so on. A comma is accepted
// in place of the decimal point in the seconds field. name identifies the
// containing field in errors.
func ParseTime(s, name string) (Time, error) {
	var t Time

	n := len(s)
	if n == 0 {
		return t, nil
	}
	if n < 4 {
		return t, fmt.Errorf("%w: short time string: %s", errs.ErrFormat, name)
	}

	var err error
	if t.Year, err = parseInt(s[0:4]); err != nil {
		return t, timeFormatErr(name)
	}
	if n >= 8 {
		if t.Doy, err = parseInt(s[5:8]); err != nil {
			return t, timeFormatErr(name)
		}
	}
	if n >= 11 {
		if t.Hour, err = parseInt(s[9:11]); err != nil {
			return t, timeFormatErr(name)
		}
	}
	if n >= 14 {
		if t.Minute, err = parseInt(s[12:14]); err != nil {
			return t, timeFormatErr(name)
		}
	}
	if n >= 17 {
		// allow ',' instead of '.'
		sec := s[15:]
		if len(sec) > 2 && (sec[2] == '.' || sec[2] == ',') {
			sec = sec[0:2] + "." + sec[3:]
		}
		if t.Seconds, err = parseFloat(sec); err != nil {
			return t, timeFormatErr(name)
		}
	}

	return t, nil
}

func timeFormatErr(name string) error {
	return fmt.Errorf("%w: time format error: %s", errs.ErrFormat, name)
}

// parseBTime parses the 10-byte binary time of data headers and data
// blockettes: 2-byte year, 2-byte day of year, hour, minute and second
// bytes, an unused byte, and a 2-byte count of 0.0001-second ticks.
func parseBTime(b []byte, o endian.Order) (Time, error) {
	var t Time

	if len(b) < 10 {
		return t, fmt.Errorf("%w: short binary time", errs.ErrFormat)
	}

	t.Year = int(o.Uint16(b[0:2]))
	t.Doy = int(o.Uint16(b[2:4]))
	t.Hour = int(b[4])
	t.Minute = int(b[5])
	t.Seconds = float64(b[6]) + float64(o.Uint16(b[8:10]))/10000.0

	return t, nil
}

// String formats the time as YYYY/DDD HH:MM:SS.SSSS.
func (t Time) String() string {
	return fmt.Sprintf("%04d/%03d %02d:%02d:%7.4f",
		t.Year, t.Doy, t.Hour, t.Minute, t.Seconds)
}

// IsZero reports whether the time is unset, as parsed from an empty field.
func (t Time) IsZero() bool {
	return t.Year == 0 && t.Doy == 0 && t.Hour == 0 && t.Minute == 0 &&
		t.Seconds == 0
}

func isLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// Epoch returns the time as UTC seconds since 1970-01-01.
func (t Time) Epoch() float64 {
	yr := t.Year
	days := 0.0

	switch {
	case yr > 1970:
		for yr--; yr >= 1970; yr-- {
			if isLeapYear(yr) {
				days += 366
			} else {
				days += 365
			}
		}
	case yr < 1970:
		for ; yr < 1970; yr++ {
			if isLeapYear(yr) {
				days -= 366
			} else {
				days -= 365
			}
		}
	}

	return (days+float64(t.Doy-1))*86400.0 + 3600.0*float64(t.Hour) +
		60.0*float64(t.Minute) + t.Seconds
}
