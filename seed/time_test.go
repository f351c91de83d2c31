package seed

import (
	"testing"

	"github.com/projectida/seedcss/endian"
	"github.com/stretchr/testify/require"
)

func TestParseTime(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want Time
	}{
		{"empty off-date", "", Time{}},
		{"date only", "2020,100", Time{Year: 2020, Doy: 100}},
		{"date and hour", "2020,100,07", Time{Year: 2020, Doy: 100, Hour: 7}},
		{"date hour minute", "2020,100,07,30", Time{Year: 2020, Doy: 100, Hour: 7, Minute: 30}},
		{"full", "2020,100,07,30,15.2500", Time{Year: 2020, Doy: 100, Hour: 7, Minute: 30, Seconds: 15.25}},
		{"comma decimal point", "2020,100,07,30,15,2500", Time{Year: 2020, Doy: 100, Hour: 7, Minute: 30, Seconds: 15.25}},
		{"year only", "1987", Time{Year: 1987}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseTime(tt.in, "test.time")
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestParseTime_Errors(t *testing.T) {
	for _, in := range []string{"20", "abcd,100", "2020,1x0"} {
		_, err := ParseTime(in, "test.time")
		require.Error(t, err, "input %q", in)
	}
}

func TestParseBTime(t *testing.T) {
	// 2020, day 100, 07:30:15.2500 in big-endian BTIME
	b := []byte{0x07, 0xe4, 0x00, 0x64, 7, 30, 15, 0, 0x09, 0xc4}
	got, err := parseBTime(b, endian.BigEndian)
	require.NoError(t, err)
	require.Equal(t, 2020, got.Year)
	require.Equal(t, 100, got.Doy)
	require.Equal(t, 7, got.Hour)
	require.Equal(t, 30, got.Minute)
	require.InDelta(t, 15.25, got.Seconds, 1e-9)

	_, err = parseBTime(b[:8], endian.BigEndian)
	require.Error(t, err)
}

func TestTimeEpoch(t *testing.T) {
	tests := []struct {
		name string
		in   Time
		want float64
	}{
		{"epoch origin", Time{Year: 1970, Doy: 1}, 0},
		{"day 100 of 2020", Time{Year: 2020, Doy: 100}, 1586390400},
		{"with time of day", Time{Year: 2020, Doy: 100, Hour: 1, Minute: 2, Seconds: 3.5}, 1586390400 + 3723.5},
		{"before 1970", Time{Year: 1969, Doy: 365}, -86400},
		{"leap century", Time{Year: 2001, Doy: 1}, 978307200},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.InDelta(t, tt.want, tt.in.Epoch(), 1e-6)
		})
	}
}

func TestIsLeapYear(t *testing.T) {
	require.True(t, isLeapYear(2000))
	require.True(t, isLeapYear(2020))
	require.False(t, isLeapYear(1900))
	require.False(t, isLeapYear(2019))
}

func TestTimeString(t *testing.T) {
	tm := Time{Year: 2020, Doy: 100, Hour: 7, Minute: 5, Seconds: 1.25}
	require.Equal(t, "2020/100 07:05: 1.2500", tm.String())
}
