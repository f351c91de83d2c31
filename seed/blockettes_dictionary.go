package seed

// Blockette30 is the Data Format Dictionary Blockette.
type Blockette30 struct {
	Code       int
	Name       string // short descriptive name
	FamilyType int
	Keys       []string // decoder keys
}

func (b *Blockette30) BlocketteType() int { return 30 }
func (b *Blockette30) LookupCode() int    { return b.Code }

func parseBlockette30(body string) (*Blockette30, error) {
	b := &Blockette30{}
	r := newFieldReader(body, "030")

	var err error
	if b.Name, err = r.variable(); err != nil {
		return nil, err
	}
	if b.Code, err = r.intField(4, "code"); err != nil {
		return nil, err
	}
	if b.FamilyType, err = r.intField(3, "familyType"); err != nil {
		return nil, err
	}
	numKeys, err := r.intField(2, "numKeys")
	if err != nil {
		return nil, err
	}
	for i := 0; i < numKeys; i++ {
		v, err := r.variable()
		if err != nil {
			return nil, err
		}
		b.Keys = append(b.Keys, v)
	}

	return b, nil
}

// Blockette31 is the Comment Description Blockette.
type Blockette31 struct {
	Code      int
	ClassCode string
	Comment   string
	Units     int
}

func (b *Blockette31) BlocketteType() int { return 31 }
func (b *Blockette31) LookupCode() int    { return b.Code }

func parseBlockette31(body string) (*Blockette31, error) {
	b := &Blockette31{}
	r := newFieldReader(body, "031")

	var err error
	if b.Code, err = r.intField(4, "commentCode"); err != nil {
		return nil, err
	}
	if b.ClassCode, err = r.fixed(1); err != nil {
		return nil, err
	}
	if b.Comment, err = r.variable(); err != nil {
		return nil, err
	}
	if b.Units, err = r.intField(3, "units"); err != nil {
		return nil, err
	}

	return b, nil
}

// Blockette32 is the Cited Source Dictionary Blockette.
type Blockette32 struct {
	Code      int
	Author    string
	Catalog   string // date published / catalog
	Publisher string
}

func (b *Blockette32) BlocketteType() int { return 32 }
func (b *Blockette32) LookupCode() int    { return b.Code }

func parseBlockette32(body string) (*Blockette32, error) {
	b := &Blockette32{}
	r := newFieldReader(body, "032")

	var err error
	if b.Code, err = r.intField(2, "lookupCode"); err != nil {
		return nil, err
	}
	if b.Author, err = r.variable(); err != nil {
		return nil, err
	}
	if b.Catalog, err = r.variable(); err != nil {
		return nil, err
	}
	if b.Publisher, err = r.variable(); err != nil {
		return nil, err
	}

	return b, nil
}

// Blockette33 is the Generic Abbreviation Blockette.
type Blockette33 struct {
	Code        int
	Description string
}

func (b *Blockette33) BlocketteType() int { return 33 }
func (b *Blockette33) LookupCode() int    { return b.Code }

func parseBlockette33(body string) (*Blockette33, error) {
	b := &Blockette33{}
	r := newFieldReader(body, "033")

	var err error
	if b.Code, err = r.intField(3, "lookUpCode"); err != nil {
		return nil, err
	}
	if b.Description, err = r.variable(); err != nil {
		return nil, err
	}

	return b, nil
}

// Blockette34 is the Units Abbreviations Blockette.
type Blockette34 struct {
	Code        int
	Name        string // unit name, such as "M/S"
	Description string
}

func (b *Blockette34) BlocketteType() int { return 34 }
func (b *Blockette34) LookupCode() int    { return b.Code }

func parseBlockette34(body string) (*Blockette34, error) {
	b := &Blockette34{}
	r := newFieldReader(body, "034")

	var err error
	if b.Code, err = r.intField(3, "lookUpCode"); err != nil {
		return nil, err
	}
	if b.Name, err = r.variable(); err != nil {
		return nil, err
	}
	if b.Description, err = r.variable(); err != nil {
		return nil, err
	}

	return b, nil
}

// Blockette35 is the Beam Configuration Blockette.
type Blockette35 struct {
	Code       int
	Station    []string
	Location   []string
	Channel    []string
	Subchannel []int
	Weight     []float64
}

func (b *Blockette35) BlocketteType() int { return 35 }
func (b *Blockette35) LookupCode() int    { return b.Code }

func parseBlockette35(body string) (*Blockette35, error) {
	b := &Blockette35{}
	r := newFieldReader(body, "035")

	var err error
	if b.Code, err = r.intField(3, "lookUpCode"); err != nil {
		return nil, err
	}
	num, err := r.intField(4, "numComponents")
	if err != nil {
		return nil, err
	}
	for i := 0; i < num; i++ {
		sta, err := r.trimmed(5)
		if err != nil {
			return nil, err
		}
		loc, err := r.trimmed(2)
		if err != nil {
			return nil, err
		}
		chan_, err := r.trimmed(3)
		if err != nil {
			return nil, err
		}
		sub, err := r.intField(4, "subchannel")
		if err != nil {
			return nil, err
		}
		weight, err := r.floatField(5, "weight")
		if err != nil {
			return nil, err
		}
		b.Station = append(b.Station, sta)
		b.Location = append(b.Location, loc)
		b.Channel = append(b.Channel, chan_)
		b.Subchannel = append(b.Subchannel, sub)
		b.Weight = append(b.Weight, weight)
	}

	return b, nil
}

// Blockette41 is the FIR Dictionary Blockette.
type Blockette41 struct {
	Code         int
	Name         string
	SymmetryCode string
	InputUnits   int
	OutputUnits  int
	Coef         []float64
}

func (b *Blockette41) BlocketteType() int { return 41 }
func (b *Blockette41) LookupCode() int    { return b.Code }

func parseBlockette41(body string) (*Blockette41, error) {
	b := &Blockette41{}
	r := newFieldReader(body, "041")

	var err error
	if b.Code, err = r.intField(4, "lookupCode"); err != nil {
		return nil, err
	}
	if b.Name, err = r.variable(); err != nil {
		return nil, err
	}
	if b.SymmetryCode, err = r.fixed(1); err != nil {
		return nil, err
	}
	if b.InputUnits, err = r.intField(3, "inputUnits"); err != nil {
		return nil, err
	}
	if b.OutputUnits, err = r.intField(3, "outputUnits"); err != nil {
		return nil, err
	}
	num, err := r.intField(4, "numFactors")
	if err != nil {
		return nil, err
	}
	for i := 0; i < num; i++ {
		c, err := r.floatField(14, "coefficient")
		if err != nil {
			return nil, err
		}
		b.Coef = append(b.Coef, c)
	}

	return b, nil
}

// Blockette42 is the Response (Polynomial) Dictionary Blockette.
type Blockette42 struct {
	Code         int
	Name         string
	TransferType string
	InputUnits   int
	OutputUnits  int
	PolyType     string
	FreqUnits    string
	MinFreq      float64
	MaxFreq      float64
	MinApprox    float64
	MaxApprox    float64
	MaxError     float64
	Coef         []float64
	Error        []float64
}

func (b *Blockette42) BlocketteType() int { return 42 }
func (b *Blockette42) LookupCode() int    { return b.Code }

func parseBlockette42(body string) (*Blockette42, error) {
	b := &Blockette42{}
	r := newFieldReader(body, "042")

	var err error
	if b.Code, err = r.intField(4, "lookupCode"); err != nil {
		return nil, err
	}
	if b.Name, err = r.variable(); err != nil {
		return nil, err
	}
	if b.TransferType, err = r.fixed(1); err != nil {
		return nil, err
	}
	if b.InputUnits, err = r.intField(3, "inputUnits"); err != nil {
		return nil, err
	}
	if b.OutputUnits, err = r.intField(3, "outputUnits"); err != nil {
		return nil, err
	}
	if b.PolyType, err = r.fixed(1); err != nil {
		return nil, err
	}
	if b.FreqUnits, err = r.fixed(1); err != nil {
		return nil, err
	}
	if b.MinFreq, err = r.floatField(12, "minFreq"); err != nil {
		return nil, err
	}
	if b.MaxFreq, err = r.floatField(12, "maxFreq"); err != nil {
		return nil, err
	}
	if b.MinApprox, err = r.floatField(12, "minApprox"); err != nil {
		return nil, err
	}
	if b.MaxApprox, err = r.floatField(12, "maxApprox"); err != nil {
		return nil, err
	}
	if b.MaxError, err = r.floatField(12, "maxError"); err != nil {
		return nil, err
	}
	num, err := r.intField(3, "numFactors")
	if err != nil {
		return nil, err
	}
	for i := 0; i < num; i++ {
		c, err := r.floatField(12, "coefficient")
		if err != nil {
			return nil, err
		}
		e, err := r.floatField(12, "error")
		if err != nil {
			return nil, err
		}
		b.Coef = append(b.Coef, c)
		b.Error = append(b.Error, e)
	}

	return b, nil
}

// Blockette43 is the Response (Poles & Zeros) Dictionary Blockette.
type Blockette43 struct {
	Code        int
	Name        string
	RespType    string // transfer function type
	InputUnits  int
	OutputUnits int
	A0Norm      float64 // 1.0 if none
	NormFreq    float64
	Zeros       []Complex
	ZeroErrors  []Complex
	Poles       []Complex
	PoleErrors  []Complex
}

// Complex is a real/imaginary pair of a pole or zero and its error bounds.
type Complex struct {
	Re float64
	Im float64
}

func (b *Blockette43) BlocketteType() int { return 43 }
func (b *Blockette43) LookupCode() int    { return b.Code }

// parsePoleZeroList reads count (re, im, reErr, imErr) quadruples.
func (r *fieldReader) parsePoleZeroList(count int, what string) ([]Complex, []Complex, error) {
	var vals, errors []Complex
	for i := 0; i < count; i++ {
		re, err := r.floatField(12, "real "+what)
		if err != nil {
			return nil, nil, err
		}
		im, err := r.floatField(12, "imag "+what)
		if err != nil {
			return nil, nil, err
		}
		ree, err := r.floatField(12, "real "+what+"-error")
		if err != nil {
			return nil, nil, err
		}
		ime, err := r.floatField(12, "imag "+what+"-error")
		if err != nil {
			return nil, nil, err
		}
		vals = append(vals, Complex{re, im})
		errors = append(errors, Complex{ree, ime})
	}

	return vals, errors, nil
}

func parseBlockette43(body string) (*Blockette43, error) {
	b := &Blockette43{}
	r := newFieldReader(body, "043")

	var err error
	if b.Code, err = r.intField(4, "lookUpCode"); err != nil {
		return nil, err
	}
	if b.Name, err = r.variable(); err != nil {
		return nil, err
	}
	if b.RespType, err = r.fixed(1); err != nil {
		return nil, err
	}
	if b.InputUnits, err = r.intField(3, "inputUnits"); err != nil {
		return nil, err
	}
	if b.OutputUnits, err = r.intField(3, "outputUnits"); err != nil {
		return nil, err
	}
	if b.A0Norm, err = r.floatField(12, "a0Norm"); err != nil {
		return nil, err
	}
	if b.NormFreq, err = r.floatField(12, "normFreq"); err != nil {
		return nil, err
	}
	numZeros, err := r.intField(3, "numZeros")
	if err != nil {
		return nil, err
	}
	if b.Zeros, b.ZeroErrors, err = r.parsePoleZeroList(numZeros, "zero"); err != nil {
		return nil, err
	}
	numPoles, err := r.intField(3, "numPoles")
	if err != nil {
		return nil, err
	}
	if b.Poles, b.PoleErrors, err = r.parsePoleZeroList(numPoles, "pole"); err != nil {
		return nil, err
	}

	return b, nil
}

// Blockette44 is the Response (Coefficients) Dictionary Blockette.
type Blockette44 struct {
	Code        int
	Name        string
	RespType    string
	InputUnits  int
	OutputUnits int
	Numerator   []float64
	NumError    []float64
	Denominator []float64
	DenError    []float64
}

func (b *Blockette44) BlocketteType() int { return 44 }
func (b *Blockette44) LookupCode() int    { return b.Code }

// parseCoefList reads count (value, error) pairs of width w.
func (r *fieldReader) parseCoefList(count, w int, what string) ([]float64, []float64, error) {
	var vals, errors []float64
	for i := 0; i < count; i++ {
		v, err := r.floatField(w, what)
		if err != nil {
			return nil, nil, err
		}
		e, err := r.floatField(w, what+"-error")
		if err != nil {
			return nil, nil, err
		}
		vals = append(vals, v)
		errors = append(errors, e)
	}

	return vals, errors, nil
}

func parseBlockette44(body string) (*Blockette44, error) {
	b := &Blockette44{}
	r := newFieldReader(body, "044")

	var err error
	if b.Code, err = r.intField(4, "lookupCode"); err != nil {
		return nil, err
	}
	if b.Name, err = r.variable(); err != nil {
		return nil, err
	}
	if b.RespType, err = r.fixed(1); err != nil {
		return nil, err
	}
	if b.InputUnits, err = r.intField(3, "inputUnits"); err != nil {
		return nil, err
	}
	if b.OutputUnits, err = r.intField(3, "outputUnits"); err != nil {
		return nil, err
	}
	numN, err := r.intField(4, "num numerators")
	if err != nil {
		return nil, err
	}
	if b.Numerator, b.NumError, err = r.parseCoefList(numN, 12, "numerator"); err != nil {
		return nil, err
	}
	numD, err := r.intField(4, "num denominators")
	if err != nil {
		return nil, err
	}
	if b.Denominator, b.DenError, err = r.parseCoefList(numD, 12, "denominator"); err != nil {
		return nil, err
	}

	return b, nil
}

// Blockette45 is the Response List Dictionary Blockette.
type Blockette45 struct {
	Code        int
	Name        string
	InputUnits  int
	OutputUnits int
	Frequency   []float64
	Amplitude   []float64
	AmpError    []float64
	Phase       []float64
	PhaseError  []float64
}

func (b *Blockette45) BlocketteType() int { return 45 }
func (b *Blockette45) LookupCode() int    { return b.Code }

// parseFAPList reads count (freq, amp, ampErr, phase, phaseErr) rows into b.
func (r *fieldReader) parseFAPList(count int) (freq, amp, ampErr, phase, phaseErr []float64, err error) {
	for i := 0; i < count; i++ {
		var f, a, ae, p, pe float64
		if f, err = r.floatField(12, "frequency"); err != nil {
			return
		}
		if a, err = r.floatField(12, "amplitude"); err != nil {
			return
		}
		if ae, err = r.floatField(12, "ampError"); err != nil {
			return
		}
		if p, err = r.floatField(12, "phase"); err != nil {
			return
		}
		if pe, err = r.floatField(12, "phaseError"); err != nil {
			return
		}
		freq = append(freq, f)
		amp = append(amp, a)
		ampErr = append(ampErr, ae)
		phase = append(phase, p)
		phaseErr = append(phaseErr, pe)
	}

	return
}

func parseBlockette45(body string) (*Blockette45, error) {
	b := &Blockette45{}
	r := newFieldReader(body, "045")

	var err error
	if b.Code, err = r.intField(4, "lookupCode"); err != nil {
		return nil, err
	}
	if b.Name, err = r.variable(); err != nil {
		return nil, err
	}
	if b.InputUnits, err = r.intField(3, "inputUnits"); err != nil {
		return nil, err
	}
	if b.OutputUnits, err = r.intField(3, "outputUnits"); err != nil {
		return nil, err
	}
	num, err := r.intField(4, "num responses")
	if err != nil {
		return nil, err
	}
	b.Frequency, b.Amplitude, b.AmpError, b.Phase, b.PhaseError, err = r.parseFAPList(num)
	if err != nil {
		return nil, err
	}

	return b, nil
}

// Blockette46 is the Generic Response Dictionary Blockette.
type Blockette46 struct {
	Code        int
	Name        string
	InputUnits  int
	OutputUnits int
	CornerFreq  []float64
	CornerSlope []float64
}

func (b *Blockette46) BlocketteType() int { return 46 }
func (b *Blockette46) LookupCode() int    { return b.Code }

func parseBlockette46(body string) (*Blockette46, error) {
	b := &Blockette46{}
	r := newFieldReader(body, "046")

	var err error
	if b.Code, err = r.intField(4, "lookupCode"); err != nil {
		return nil, err
	}
	if b.Name, err = r.variable(); err != nil {
		return nil, err
	}
	if b.InputUnits, err = r.intField(3, "inputUnits"); err != nil {
		return nil, err
	}
	if b.OutputUnits, err = r.intField(3, "outputUnits"); err != nil {
		return nil, err
	}
	num, err := r.intField(4, "num responses")
	if err != nil {
		return nil, err
	}
	for i := 0; i < num; i++ {
		f, err := r.floatField(12, "cornerFreq")
		if err != nil {
			return nil, err
		}
		s, err := r.floatField(12, "cornerSlope")
		if err != nil {
			return nil, err
		}
		b.CornerFreq = append(b.CornerFreq, f)
		b.CornerSlope = append(b.CornerSlope, s)
	}

	return b, nil
}

// Blockette47 is the Decimation Dictionary Blockette.
type Blockette47 struct {
	Code             int
	Name             string
	InputSampleRate  float64
	DecimationFactor int
	DecimationOffset int
	Delay            float64 // estimated delay (seconds)
	Correction       float64 // correction applied (seconds)
}

func (b *Blockette47) BlocketteType() int { return 47 }
func (b *Blockette47) LookupCode() int    { return b.Code }

func parseBlockette47(body string) (*Blockette47, error) {
	b := &Blockette47{}
	r := newFieldReader(body, "047")

	var err error
	if b.Code, err = r.intField(4, "lookupCode"); err != nil {
		return nil, err
	}
	if b.Name, err = r.variable(); err != nil {
		return nil, err
	}
	if b.InputSampleRate, err = r.floatField(10, "inputSampleRate"); err != nil {
		return nil, err
	}
	if b.DecimationFactor, err = r.intField(5, "decimationFactor"); err != nil {
		return nil, err
	}
	if b.DecimationOffset, err = r.intField(5, "decimationOffset"); err != nil {
		return nil, err
	}
	if b.Delay, err = r.floatField(11, "delay"); err != nil {
		return nil, err
	}
	if b.Correction, err = r.floatField(11, "correction"); err != nil {
		return nil, err
	}

	return b, nil
}

// Blockette48 is the Channel Sensitivity/Gain Dictionary Blockette.
type Blockette48 struct {
	Code           int
	Name           string
	Sensitivity    float64
	Frequency      float64
	CalSensitivity []float64
	CalFrequency   []float64
	CalTime        []Time
}

func (b *Blockette48) BlocketteType() int { return 48 }
func (b *Blockette48) LookupCode() int    { return b.Code }

// parseCalHistory reads count (sensitivity, frequency, time) rows.
func (r *fieldReader) parseCalHistory(count int) (sens, freq []float64, times []Time, err error) {
	for i := 0; i < count; i++ {
		var s, f float64
		var t Time
		if s, err = r.floatField(12, "calSensitivity"); err != nil {
			return
		}
		if f, err = r.floatField(12, "calFrequency"); err != nil {
			return
		}
		if t, err = r.timeField("time"); err != nil {
			return
		}
		sens = append(sens, s)
		freq = append(freq, f)
		times = append(times, t)
	}

	return
}

func parseBlockette48(body string) (*Blockette48, error) {
	b := &Blockette48{}
	r := newFieldReader(body, "048")

	var err error
	if b.Code, err = r.intField(4, "lookupCode"); err != nil {
		return nil, err
	}
	if b.Name, err = r.variable(); err != nil {
		return nil, err
	}
	if b.Sensitivity, err = r.floatField(12, "sensitivity"); err != nil {
		return nil, err
	}
	if b.Frequency, err = r.floatField(12, "frequency"); err != nil {
		return nil, err
	}
	num, err := r.intField(2, "num histories")
	if err != nil {
		return nil, err
	}
	b.CalSensitivity, b.CalFrequency, b.CalTime, err = r.parseCalHistory(num)
	if err != nil {
		return nil, err
	}

	return b, nil
}
