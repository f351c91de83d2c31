// Package resp synthesises CSS response files from SEED response stages.
//
// For one channel, the response stages (blockettes 53, 54, 55, 57, 58 and
// 61, including the equivalents expanded from the dictionary families via
// blockette 60) are rendered in declaration order into the CSS text format:
// a commented prologue with the human-readable stage metadata followed by
// the "theoretical N instrument|digitizer paz|fir|fap" data stanzas.
package resp

import (
	"fmt"
	"math"
	"math/cmplx"
	"strings"

	"github.com/projectida/seedcss/seed"
)

// CSSResponse renders the channel's response cascade as a CSS response
// file.
func CSSResponse(sta *seed.Station, ch *seed.Channel, d *seed.Dictionary) string {
	var startHeader, header, data strings.Builder

	a0NormFreq := 1.0
	scaledSens := 1.0
	sensitivityFreq := 0.0
	digitizer := ""
	b53Type := ""
	stage := 0

	for i := 0; i < len(ch.Response); i++ {
		switch b := ch.Response[i].(type) {
		case *seed.Blockette53:
			b53Type = b.RespType
			process53(d, &header, &data, b)
			stage = b.Stage
			a0NormFreq = b.NormFreq

		case *seed.Blockette54:
			// some generators split numerator and denominator across two
			// consecutive blockettes; merge them
			var b54b *seed.Blockette54
			if i < len(ch.Response)-1 {
				b54b, _ = ch.Response[i+1].(*seed.Blockette54)
			}
			process54(d, &header, &data, b, b54b, ch)
			stage = b.Stage
			if b54b != nil {
				i++
			}

		case *seed.Blockette55:
			process55(d, &header, &data, b, a0NormFreq)
			stage = b.Stage

		case *seed.Blockette57:
			process57(&header, b)
			stage = b.Stage

		case *seed.Blockette58:
			process58(&header, b, stage, &scaledSens, sensitivityFreq)
			stage = b.Stage
			if b.Stage == 0 {
				writeStartHeader(&startHeader, sta, ch, d, digitizer,
					a0NormFreq, scaledSens, sensitivityFreq)
			} else if sensitivityFreq == 0 {
				sensitivityFreq = b.Frequency
			}

		case *seed.Blockette61:
			process61(d, &header, &data, b, b53Type, ch)
			stage = b.Stage
			digitizer = b.Name
		}
	}

	return startHeader.String() + header.String() + data.String()
}

func writeStartHeader(w *strings.Builder, sta *seed.Station, ch *seed.Channel,
	d *seed.Dictionary, digitizer string, a0NormFreq, scaledSens,
	sensitivityFreq float64) {

	fmt.Fprintf(w, "# Displacement response for %s station %s\n#\n",
		sta.B50.Network, sta.B50.Station)

	insname := ""
	if b33 := d.B33(ch.B52.Instrument); b33 != nil {
		insname = b33.Description
	}
	fmt.Fprintf(w, "# Seismometer type      = %s\n", insname)
	fmt.Fprintf(w, "# Digitizer type        = %s\n", digitizer)
	fmt.Fprintf(w, "# Data sample rate      = %g s/s\n#\n#\n", ch.B52.SampleRate)
	fmt.Fprintf(w, "# One zero has been added to convert velocity to displacement,\n")
	fmt.Fprintf(w, "# and two zeros have been added to convert acceleration to displacement.\n")
	fmt.Fprintf(w, "# Normalization A0 is calculated for displacement at %g Hz.\n#\n", a0NormFreq)
	fmt.Fprintf(w, "# Following comments are extracted for reference purpose.\n")
	fmt.Fprintf(w, "#----------------------------------------------------\n")
	fmt.Fprintf(w, "# The sensitivity of channel is %6.4f counts/(nm/s)\n", scaledSens*1.0e-9)
	fmt.Fprintf(w, "# at frequency of %4.2f Hz\n#\n", sensitivityFreq)
}

// unitName resolves a B34 lookup code to its unit name.
func unitName(d *seed.Dictionary, code int) string {
	if b34 := d.B34(code); b34 != nil {
		return b34.Name
	}

	return ""
}

// process53 emits a CSS poles-and-zeros block. A transfer function of type
// "B" (analog, Hz) has each pole and zero multiplied by 2π; input units of
// a displacement derivative add one (velocity) or two (acceleration) zeros
// at the origin. A0 is recomputed analytically at the normalisation
// frequency from the extended pole/zero set.
func process53(d *seed.Dictionary, header, data *strings.Builder, b53 *seed.Blockette53) {
	fac := 1.0
	if b53.RespType == "B" {
		fac = 2.0 * math.Pi
	}

	poles := make([]complex128, len(b53.Poles))
	for j, p := range b53.Poles {
		poles[j] = complex(p.Re*fac, p.Im*fac)
	}

	zeros := make([]complex128, len(b53.Zeros))
	for j, z := range b53.Zeros {
		zeros[j] = complex(z.Re*fac, z.Im*fac)
	}
	zeroErrors := append([]seed.Complex(nil), b53.ZeroErrors...)

	switch strings.ToUpper(unitName(d, b53.InputUnits)) {
	case "M/S":
		zeros = append(zeros, 0)
		zeroErrors = append(zeroErrors, seed.Complex{})
	case "M/S**2":
		zeros = append(zeros, 0, 0)
		zeroErrors = append(zeroErrors, seed.Complex{}, seed.Complex{})
	}

	a0 := computeA0(poles, zeros, b53.NormFreq)

	fmt.Fprintf(header, "#  stage-%d\n", b53.Stage)
	fmt.Fprintf(header, "#     Response type:                  A Laplace Transform (Rad/sec)\n")
	fmt.Fprintf(header, "#     Response in units:              %s\n", unitName(d, b53.InputUnits))
	fmt.Fprintf(header, "#     Response out units:             %s\n", unitName(d, b53.OutputUnits))
	fmt.Fprintf(header, "#     A0 normalization factor:        %12E\n", a0)
	fmt.Fprintf(header, "#     N normalization frequency:      %12E\n", b53.NormFreq)

	if len(zeros) == 0 && len(poles) == 0 {
		return
	}

	if b53.RespType == "D" {
		fmt.Fprintf(data, " theoretical  %d    digitizer paz\n", b53.Stage)
	} else {
		fmt.Fprintf(data, " theoretical  %d   instrument paz\n", b53.Stage)
	}
	fmt.Fprintf(data, "%13E\n", a0)

	fmt.Fprintf(data, "%d\n", len(poles))
	for j, p := range poles {
		fmt.Fprintf(data, "%13E   %13E    %8E   %8E\n",
			real(p), imag(p), b53.PoleErrors[j].Re, b53.PoleErrors[j].Im)
	}
	fmt.Fprintf(data, "%d\n", len(zeros))
	for j, z := range zeros {
		fmt.Fprintf(data, "%13E   %13E    %8E   %8E\n",
			real(z), imag(z), zeroErrors[j].Re, zeroErrors[j].Im)
	}
}

// computeA0 evaluates the normalisation factor that makes the magnitude of
// the poles-and-zeros response equal 1 at the normalisation frequency:
// the magnitude of the pole product over the zero product at s = j·2πf.
func computeA0(poles, zeros []complex128, normFreq float64) float64 {
	s := complex(0, 2.0*math.Pi*normFreq)

	num := complex(1, 0)
	for _, z := range zeros {
		num *= s - z
	}
	den := complex(1, 0)
	for _, p := range poles {
		den *= s - p
	}

	return cmplx.Abs(den) / cmplx.Abs(num)
}

// firInputRate finds the stage input sample rate from the channel's first
// decimation blockette.
func firInputRate(ch *seed.Channel) (float64, bool) {
	for _, b := range ch.Response {
		if b57, ok := b.(*seed.Blockette57); ok {
			return b57.InputSampleRate, true
		}
	}

	return 0, false
}

// process54 emits one CSS FIR block, merging the optional continuation
// blockette b54b.
func process54(d *seed.Dictionary, header, data *strings.Builder,
	b54, b54b *seed.Blockette54, ch *seed.Channel) {

	fmt.Fprintf(header, "#  stage-%d\n", b54.Stage)
	if b54.RespType == "A" {
		fmt.Fprintf(header, "#     Response type:                  A  Laplace Transform (Rad/sec)\n")
	} else {
		fmt.Fprintf(header, "#     Response type:                  %s\n", b54.RespType)
	}
	fmt.Fprintf(header, "#     Response in units:              %s\n", unitName(d, b54.InputUnits))
	fmt.Fprintf(header, "#     Response out units:             %s\n", unitName(d, b54.OutputUnits))

	numN := len(b54.Numerator)
	numD := len(b54.Denominator)
	if b54b != nil {
		numN += len(b54b.Numerator)
		numD += len(b54b.Denominator)
	}
	if numN == 0 && numD == 0 {
		return
	}

	if b54.RespType == "D" {
		fmt.Fprintf(data, " theoretical  %d    digitizer fir\n", b54.Stage)
	} else {
		fmt.Fprintf(data, " theoretical  %d   instrument fir\n", b54.Stage)
	}

	rate, ok := firInputRate(ch)
	if !ok {
		log.Warnf("missing blockette 057")
		return
	}
	fmt.Fprintf(data, "%g\n", rate)

	fmt.Fprintf(data, "%d\n", numN)
	for j := range b54.Numerator {
		fmt.Fprintf(data, "%13E    %13E\n", b54.Numerator[j], b54.NumError[j])
	}
	if b54b != nil {
		for j := range b54b.Numerator {
			fmt.Fprintf(data, "%13E    %13E\n", b54b.Numerator[j], b54b.NumError[j])
		}
	}
	fmt.Fprintf(data, "%d\n", numD)
	for j := range b54.Denominator {
		fmt.Fprintf(data, "%13E    %13E\n", b54.Denominator[j], b54.DenError[j])
	}
	if b54b != nil {
		for j := range b54b.Denominator {
			fmt.Fprintf(data, "%13E    %13E\n", b54b.Denominator[j], b54b.DenError[j])
		}
	}
}

// process55 emits a CSS FAP block of frequency/amplitude/phase triplets
// with errors.
func process55(d *seed.Dictionary, header, data *strings.Builder,
	b55 *seed.Blockette55, normFreq float64) {

	inputUnits := unitName(d, b55.InputUnits)
	outputUnits := unitName(d, b55.OutputUnits)

	fmt.Fprintf(header, "#  stage-%d\n", b55.Stage)
	fmt.Fprintf(header, "#     Response in units:              %s\n", inputUnits)
	fmt.Fprintf(header, "#     Response out units:             %s\n", outputUnits)

	if len(b55.Frequency) == 0 {
		return
	}
	fmt.Fprintf(data, " theoretical  %d   instrument fap\n", b55.Stage)
	fmt.Fprintf(data, "%d\n", len(b55.Frequency))
	for i := range b55.Frequency {
		fmt.Fprintf(data, "%13E  %13E  %13E   %8E  %8E\n",
			b55.Frequency[i], b55.Amplitude[i], b55.Phase[i],
			b55.AmpError[i], b55.PhaseError[i])
	}
}

// process57 decorates the prior stage's header block with the decimation
// parameters.
func process57(header *strings.Builder, b57 *seed.Blockette57) {
	fmt.Fprintf(header, "#     Response input sampling rate:   %g\n", b57.InputSampleRate)
	fmt.Fprintf(header, "#     Response decimation factor:     %d\n", b57.DecimationFactor)
	fmt.Fprintf(header, "#     Response decimation offset:     %d\n", b57.DecimationOffset)
	fmt.Fprintf(header, "#     Response delay:                 %12E\n", b57.Delay)
	fmt.Fprintf(header, "#     Response correction:            %12E\n", b57.Correction)
}

// process58 reports per-stage sensitivity and accumulates the scaled
// sensitivity product over the non-zero stages.
func process58(header *strings.Builder, b58 *seed.Blockette58, stage int,
	scaledSens *float64, sensitivityFreq float64) {

	if b58.Stage == 0 {
		return
	}
	*scaledSens *= b58.Sensitivity

	if b58.Stage != stage {
		fmt.Fprintf(header, "#  stage-%d\n", b58.Stage)
	}
	fmt.Fprintf(header, "#     Sensitivity:                    %12E\n", b58.Sensitivity)
	fmt.Fprintf(header, "#     Frequency of sensitivity:       %12E\n#\n", sensitivityFreq)
}

// process61 expands a FIR blockette per its symmetry code and emits the
// coefficients: "A" as-is, "B" mirrored around the last coefficient (odd
// total), "C" mirrored around the midpoint (even total).
func process61(d *seed.Dictionary, header, data *strings.Builder,
	b61 *seed.Blockette61, b53Type string, ch *seed.Channel) {

	fmt.Fprintf(header, "#  stage-%d\n", b61.Stage)
	fmt.Fprintf(header, "#     Response type:                  %s Laplace Transform (Rad/sec)\n", b53Type)
	fmt.Fprintf(header, "#     Response in units:              %s\n", unitName(d, b61.InputUnits))
	fmt.Fprintf(header, "#     Response out units:             %s\n", unitName(d, b61.OutputUnits))

	var fir []float64
	n := len(b61.Coef)
	switch b61.SymmetryCode {
	case "A":
		fir = append(fir, b61.Coef...)
	case "B":
		fir = make([]float64, 2*n-1)
		for j := 0; j < n-1; j++ {
			fir[j] = b61.Coef[j]
			fir[len(fir)-1-j] = b61.Coef[j]
		}
		fir[n-1] = b61.Coef[n-1]
	case "C":
		fir = make([]float64, 2*n)
		for j := 0; j < n; j++ {
			fir[j] = b61.Coef[j]
			fir[len(fir)-1-j] = b61.Coef[j]
		}
	}
	if len(fir) == 0 {
		return
	}

	rate, ok := firInputRate(ch)
	if !ok {
		log.Warnf("missing blockette 057")
		return
	}

	if b53Type == "D" {
		fmt.Fprintf(data, " theoretical  %d    digitizer fir\n", b61.Stage)
	} else {
		fmt.Fprintf(data, " theoretical  %d   instrument fir\n", b61.Stage)
	}
	fmt.Fprintf(data, "%g\n", rate)
	fmt.Fprintf(data, "%d\n", len(fir))
	for _, c := range fir {
		fmt.Fprintf(data, "%13E    0.00E+00\n", c)
	}
	fmt.Fprintf(data, "0\n")
}
