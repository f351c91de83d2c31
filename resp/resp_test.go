package resp

import (
	"bufio"
	"math"
	"strconv"
	"strings"
	"testing"

	"github.com/projectida/seedcss/seed"
	"github.com/stretchr/testify/require"
)

// fixture builds a station with one BHZ channel whose response is the given
// blockette list, plus the units dictionary entries the synthesiser needs.
func fixture(response ...seed.Blockette) (*seed.Station, *seed.Channel, *seed.Dictionary) {
	d := seed.NewDictionary()
	d.Add(&seed.Blockette33{Code: 3, Description: "Streckeisen STS-2 Seismometer"})
	d.Add(&seed.Blockette34{Code: 4, Name: "M/S", Description: "Velocity in Meters Per Second"})
	d.Add(&seed.Blockette34{Code: 5, Name: "COUNTS", Description: "Digital Counts"})
	d.Add(&seed.Blockette34{Code: 6, Name: "M/S**2", Description: "Acceleration"})

	sta := seed.NewStation(&seed.Blockette50{Station: "ABKT", Network: "II"})
	ch := &seed.Channel{B52: &seed.Blockette52{
		Channel: "BHZ", Instrument: 3, SignalUnits: 4, SampleRate: 40.0,
	}}
	for _, b := range response {
		ch.Add(b)
	}
	sta.Channels = append(sta.Channels, ch)

	return sta, ch, d
}

// parsePAZ extracts A0 and the pole/zero lists from the first paz stanza.
func parsePAZ(t *testing.T, text string) (a0 float64, poles, zeros [][2]float64) {
	t.Helper()

	scanner := bufio.NewScanner(strings.NewReader(text))
	for scanner.Scan() {
		if strings.Contains(scanner.Text(), "paz") {
			break
		}
	}
	readFloat := func() float64 {
		require.True(t, scanner.Scan())
		f, err := strconv.ParseFloat(strings.Fields(scanner.Text())[0], 64)
		require.NoError(t, err)
		return f
	}
	readPair := func() [2]float64 {
		require.True(t, scanner.Scan())
		fields := strings.Fields(scanner.Text())
		require.GreaterOrEqual(t, len(fields), 2)
		re, err := strconv.ParseFloat(fields[0], 64)
		require.NoError(t, err)
		im, err := strconv.ParseFloat(fields[1], 64)
		require.NoError(t, err)
		return [2]float64{re, im}
	}

	a0 = readFloat()
	npoles := int(readFloat())
	for i := 0; i < npoles; i++ {
		poles = append(poles, readPair())
	}
	nzeros := int(readFloat())
	for i := 0; i < nzeros; i++ {
		zeros = append(zeros, readPair())
	}

	return a0, poles, zeros
}

func velocityB53() *seed.Blockette53 {
	return &seed.Blockette53{
		RespType:    "A",
		Stage:       1,
		InputUnits:  4, // M/S
		OutputUnits: 5,
		A0Norm:      1.0,
		NormFreq:    1.0,
		Zeros:       []seed.Complex{{Re: 0, Im: 0}},
		ZeroErrors:  []seed.Complex{{}},
		Poles: []seed.Complex{
			{Re: -0.037, Im: 0.037},
			{Re: -0.037, Im: -0.037},
			{Re: -251.33, Im: 0},
		},
		PoleErrors: []seed.Complex{{}, {}, {}},
	}
}

func TestCSSResponse_VelocityCascade(t *testing.T) {
	sta, ch, d := fixture(
		velocityB53(),
		&seed.Blockette58{Stage: 0, Sensitivity: 6.28e8, Frequency: 1.0},
	)

	text := CSSResponse(sta, ch, d)

	require.Contains(t, text, "# Displacement response for II station ABKT")
	require.Contains(t, text, "# Seismometer type      = Streckeisen STS-2 Seismometer")
	require.Contains(t, text, " theoretical  1   instrument paz")

	a0, poles, zeros := parsePAZ(t, text)

	// the velocity input adds one zero at the origin
	require.Len(t, zeros, 2)
	require.Len(t, poles, 3)
	require.Equal(t, [2]float64{0, 0}, zeros[1])

	// A0 makes the response magnitude 1 at the normalisation frequency
	s := complex(0, 2*math.Pi*1.0)
	num := complex(1, 0)
	for _, z := range zeros {
		num *= s - complex(z[0], z[1])
	}
	den := complex(1, 0)
	for _, p := range poles {
		den *= s - complex(p[0], p[1])
	}
	want := cmplxAbs(den) / cmplxAbs(num)
	require.InDelta(t, want, a0, want*1e-4)
}

func cmplxAbs(c complex128) float64 {
	return math.Hypot(real(c), imag(c))
}

func TestCSSResponse_DisplacementRoundTrip(t *testing.T) {
	// displacement input units add no zeros; the rendered poles and zeros
	// reproduce the blockette exactly
	b53 := velocityB53()
	b53.InputUnits = 7 // M
	sta, ch, d := fixture(b53,
		&seed.Blockette58{Stage: 0, Sensitivity: 6.28e8, Frequency: 1.0})
	d.Add(&seed.Blockette34{Code: 7, Name: "M", Description: "Displacement in Meters"})

	_, poles, zeros := parsePAZ(t, CSSResponse(sta, ch, d))
	require.Len(t, zeros, 1)
	require.Len(t, poles, 3)
	for i, p := range b53.Poles {
		require.InDelta(t, p.Re, poles[i][0], 1e-9)
		require.InDelta(t, p.Im, poles[i][1], 1e-9)
	}
	require.InDelta(t, b53.Zeros[0].Re, zeros[0][0], 1e-9)
	require.InDelta(t, b53.Zeros[0].Im, zeros[0][1], 1e-9)
}

func TestCSSResponse_TypeBScalesByTwoPi(t *testing.T) {
	b53 := velocityB53()
	b53.RespType = "B"
	sta, ch, d := fixture(b53,
		&seed.Blockette58{Stage: 0, Sensitivity: 6.28e8, Frequency: 1.0})

	_, poles, _ := parsePAZ(t, CSSResponse(sta, ch, d))
	require.InDelta(t, -0.037*2*math.Pi, poles[0][0], 1e-7)
	require.InDelta(t, 0.037*2*math.Pi, poles[0][1], 1e-7)
}

func TestCSSResponse_DictionaryEquivalence(t *testing.T) {
	// a B53 synthesised from a dictionary B43 renders identically to the
	// directly declared one
	direct := velocityB53()
	sta, ch, d := fixture(direct,
		&seed.Blockette58{Stage: 0, Sensitivity: 6.28e8, Frequency: 1.0})

	fromDict := *direct
	fromDict.FromB43 = true
	sta2, ch2, d2 := fixture(&fromDict,
		&seed.Blockette58{Stage: 0, Sensitivity: 6.28e8, Frequency: 1.0})

	require.Equal(t, CSSResponse(sta, ch, d), CSSResponse(sta2, ch2, d2))
}

func TestCSSResponse_FIRSymmetry(t *testing.T) {
	tests := []struct {
		symmetry string
		coef     []float64
		wantLen  int
	}{
		{"A", []float64{0.1, 0.2, 0.3}, 3},
		{"B", []float64{0.1, 0.2, 0.4}, 5},
		{"C", []float64{0.1, 0.2, 0.4}, 6},
	}
	for _, tt := range tests {
		t.Run(tt.symmetry, func(t *testing.T) {
			sta, ch, d := fixture(
				&seed.Blockette61{
					Stage: 2, Name: "FIR_X", SymmetryCode: tt.symmetry,
					InputUnits: 5, OutputUnits: 5, Coef: tt.coef,
				},
				&seed.Blockette57{Stage: 2, InputSampleRate: 160.0,
					DecimationFactor: 4},
			)

			text := CSSResponse(sta, ch, d)
			require.Contains(t, text, " theoretical  2   instrument fir")

			// count coefficient rows after the declared count line
			lines := strings.Split(text, "\n")
			idx := -1
			for i, line := range lines {
				if strings.TrimSpace(line) == strconv.Itoa(tt.wantLen) {
					idx = i
					break
				}
			}
			require.GreaterOrEqual(t, idx, 0, "coefficient count %d not found",
				tt.wantLen)

			// symmetric expansions mirror the first coefficient to the end
			if tt.symmetry != "A" {
				first := strings.Fields(lines[idx+1])[0]
				last := strings.Fields(lines[idx+tt.wantLen])[0]
				require.Equal(t, first, last)
			}
		})
	}
}

func TestCSSResponse_FAPBlock(t *testing.T) {
	sta, ch, d := fixture(&seed.Blockette55{
		Stage: 1, InputUnits: 4, OutputUnits: 5,
		Frequency:  []float64{0.1, 1.0, 10.0},
		Amplitude:  []float64{0.5, 1.0, 0.7},
		AmpError:   []float64{0, 0, 0},
		Phase:      []float64{10, 0, -10},
		PhaseError: []float64{0, 0, 0},
	})

	text := CSSResponse(sta, ch, d)
	require.Contains(t, text, " theoretical  1   instrument fap")
	require.Contains(t, text, "3\n")
}

func TestCSSResponse_DecimationDecoratesHeader(t *testing.T) {
	sta, ch, d := fixture(
		velocityB53(),
		&seed.Blockette57{Stage: 1, InputSampleRate: 160.0,
			DecimationFactor: 4, DecimationOffset: 0, Delay: 0.1,
			Correction: 0.1},
		&seed.Blockette58{Stage: 0, Sensitivity: 6.28e8, Frequency: 1.0},
	)

	text := CSSResponse(sta, ch, d)
	require.Contains(t, text, "#     Response decimation factor:     4")
	require.Contains(t, text, "#     Response input sampling rate:   160")
}

func TestCSSResponse_ScaledSensitivityPrologue(t *testing.T) {
	sta, ch, d := fixture(
		velocityB53(),
		&seed.Blockette58{Stage: 1, Sensitivity: 1500.0, Frequency: 1.0},
		&seed.Blockette58{Stage: 2, Sensitivity: 2.0, Frequency: 1.0},
		&seed.Blockette58{Stage: 0, Sensitivity: 3000.0, Frequency: 1.0},
	)

	text := CSSResponse(sta, ch, d)
	// the prologue reports the product of the non-zero stages
	require.Contains(t, text, "0.0000 counts/(nm/s)")
	require.Contains(t, text, "#     Sensitivity:                    1.500000E+03")
}
