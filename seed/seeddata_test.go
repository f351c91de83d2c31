package seed

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/projectida/seedcss/internal/seedtest"
	"github.com/stretchr/testify/require"
)

func TestSeedData_ReadDataSeeks(t *testing.T) {
	// two contiguous records read without retained payloads; ReadData seeks
	// to each record's payload in the source
	a := seedtest.Int32Payload(seedtest.Ramp(40, 1), binary.BigEndian)
	b := seedtest.Int32Payload(seedtest.Ramp(40, 1), binary.BigEndian)
	v := seedtest.NewVolume(4096)
	v.AddRecord(abktRecord(1, 40, 0, 0, 0, 0, 3, a))
	v.AddRecord(abktRecord(2, 40, 0, 0, 1, 0, 3, b))
	volume := v.Bytes()

	r, err := NewReader(bytes.NewReader(volume))
	require.NoError(t, err)

	obj, err := r.Next()
	require.NoError(t, err)
	sd, ok := obj.(*SeedData)
	require.True(t, ok)
	require.Nil(t, sd.Records[0].Data)
	require.Equal(t, int64(64), sd.Records[0].FileOffset)
	require.Equal(t, int64(4096+64), sd.Records[1].FileOffset)

	out := make([]float32, 80)
	n, err := sd.ReadData(bytes.NewReader(volume), out)
	require.NoError(t, err)
	require.Equal(t, 80, n)
	require.Equal(t, float32(39), out[39])
	require.Equal(t, float32(0), out[40])
	require.Equal(t, float32(39), out[79])
}

func TestSeedData_Times(t *testing.T) {
	payload := seedtest.Int32Payload(seedtest.Ramp(40, 1), binary.BigEndian)
	v := seedtest.NewVolume(4096)
	v.AddRecord(abktRecord(1, 40, 0, 0, 0, 0, 3, payload))

	r, err := NewReader(bytes.NewReader(v.Bytes()), WithKeepData())
	require.NoError(t, err)

	obj, err := r.Next()
	require.NoError(t, err)
	sd := obj.(*SeedData)

	require.InDelta(t, sd.StartTime()+39.0/40.0, sd.EndTime(), 1e-9)
	require.Equal(t, "ABKT", sd.Header().Station)
}

func TestEpochMonotoneAcrossStream(t *testing.T) {
	// SeedTime.epoch is monotone non-decreasing across a record stream
	v := seedtest.NewVolume(4096)
	for i := 0; i < 4; i++ {
		payload := seedtest.Int32Payload(seedtest.Ramp(40, 1), binary.BigEndian)
		v.AddRecord(abktRecord(i+1, 40, 0, 0, i, 0, 3, payload))
	}

	r, err := NewReader(bytes.NewReader(v.Bytes()), WithRawMode(), WithKeepData())
	require.NoError(t, err)

	last := -1.0
	for {
		obj, err := r.Next()
		require.NoError(t, err)
		if obj == nil {
			break
		}
		dr := obj.(*DataRecord)
		epoch := dr.Header.Start.Epoch()
		require.GreaterOrEqual(t, epoch, last)
		last = epoch
	}
}
