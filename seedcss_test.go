package seedcss

import (
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"github.com/projectida/seedcss/convert"
	"github.com/projectida/seedcss/internal/seedtest"
	"github.com/stretchr/testify/require"
)

func TestConvert(t *testing.T) {
	dir := t.TempDir()

	v := seedtest.NewVolume(4096)
	payload := seedtest.Int32Payload(seedtest.Ramp(40, 1), binary.BigEndian)
	v.AddRecord(seedtest.DataRecord(seedtest.DataSpec{
		Seqno: 1, Sta: "ABKT", Chan: "BHZ", Net: "II",
		Year: 2020, Doy: 100, Nsamples: 40, Factor: 40, Mult: 1,
		Format: 3, RecExp: 12, HeaderBig: true, PayloadBig: true,
		Payload: payload,
	}))

	seedPath := filepath.Join(dir, "mini.seed")
	require.NoError(t, os.WriteFile(seedPath, v.Bytes(), 0o644))

	err := Convert(seedPath,
		convert.WithDir(dir),
		convert.WithPrefix("out"),
		convert.WithRespDir(dir))
	require.NoError(t, err)

	require.FileExists(t, filepath.Join(dir, "out.wfdisc"))
	require.FileExists(t, filepath.Join(dir, "out.affiliation"))
}
