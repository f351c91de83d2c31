package seed

// Blockette53 is the Response (Poles & Zeros) Blockette. A Blockette53 may
// also be synthesised from a dictionary Blockette43 referenced by a
// Blockette60; FromB43 records that origin.
type Blockette53 struct {
	RespType    string // transfer function type: A, B or D
	Stage       int
	InputUnits  int
	OutputUnits int
	A0Norm      float64 // 1.0 if none
	NormFreq    float64
	Zeros       []Complex
	ZeroErrors  []Complex
	Poles       []Complex
	PoleErrors  []Complex
	FromB43     bool
}

func (b *Blockette53) BlocketteType() int { return 53 }

func parseBlockette53(body string) (*Blockette53, error) {
	b := &Blockette53{}
	r := newFieldReader(body, "053")

	var err error
	if b.RespType, err = r.fixed(1); err != nil {
		return nil, err
	}
	if b.Stage, err = r.intField(2, "stage"); err != nil {
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
	if b.NormFreq, err = r.floatField(11, "normFreq"); err != nil {
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

// newBlockette53FromB43 clones a dictionary Blockette43 into a stage-tagged
// Blockette53.
func newBlockette53FromB43(stage int, d *Blockette43) *Blockette53 {
	return &Blockette53{
		RespType:    d.RespType,
		Stage:       stage,
		InputUnits:  d.InputUnits,
		OutputUnits: d.OutputUnits,
		A0Norm:      d.A0Norm,
		NormFreq:    d.NormFreq,
		Zeros:       append([]Complex(nil), d.Zeros...),
		ZeroErrors:  append([]Complex(nil), d.ZeroErrors...),
		Poles:       append([]Complex(nil), d.Poles...),
		PoleErrors:  append([]Complex(nil), d.PoleErrors...),
		FromB43:     true,
	}
}

// Blockette54 is the Response (Coefficients) Blockette.
type Blockette54 struct {
	RespType    string
	Stage       int
	InputUnits  int
	OutputUnits int
	Numerator   []float64
	NumError    []float64
	Denominator []float64
	DenError    []float64
	FromB44     bool
}

func (b *Blockette54) BlocketteType() int { return 54 }

func parseBlockette54(body string) (*Blockette54, error) {
	b := &Blockette54{}
	r := newFieldReader(body, "054")

	var err error
	if b.RespType, err = r.fixed(1); err != nil {
		return nil, err
	}
	if b.Stage, err = r.intField(2, "stage"); err != nil {
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

func newBlockette54FromB44(stage int, d *Blockette44) *Blockette54 {
	return &Blockette54{
		RespType:    d.RespType,
		Stage:       stage,
		InputUnits:  d.InputUnits,
		OutputUnits: d.OutputUnits,
		Numerator:   append([]float64(nil), d.Numerator...),
		NumError:    append([]float64(nil), d.NumError...),
		Denominator: append([]float64(nil), d.Denominator...),
		DenError:    append([]float64(nil), d.DenError...),
		FromB44:     true,
	}
}

// Blockette55 is the Response List Blockette.
type Blockette55 struct {
	Stage       int
	InputUnits  int
	OutputUnits int
	Frequency   []float64
	Amplitude   []float64
	AmpError    []float64
	Phase       []float64
	PhaseError  []float64
	FromB45     bool
}

func (b *Blockette55) BlocketteType() int { return 55 }

func parseBlockette55(body string) (*Blockette55, error) {
	b := &Blockette55{}
	r := newFieldReader(body, "055")

	var err error
	if b.Stage, err = r.intField(2, "stage"); err != nil {
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

func newBlockette55FromB45(stage int, d *Blockette45) *Blockette55 {
	return &Blockette55{
		Stage:       stage,
		InputUnits:  d.InputUnits,
		OutputUnits: d.OutputUnits,
		Frequency:   append([]float64(nil), d.Frequency...),
		Amplitude:   append([]float64(nil), d.Amplitude...),
		AmpError:    append([]float64(nil), d.AmpError...),
		Phase:       append([]float64(nil), d.Phase...),
		PhaseError:  append([]float64(nil), d.PhaseError...),
		FromB45:     true,
	}
}

// Blockette56 is the Generic Response Blockette.
type Blockette56 struct {
	Stage       int
	InputUnits  int
	OutputUnits int
	CornerFreq  []float64
	CornerSlope []float64
	FromB46     bool
}

func (b *Blockette56) BlocketteType() int { return 56 }

func parseBlockette56(body string) (*Blockette56, error) {
	b := &Blockette56{}
	r := newFieldReader(body, "056")

	var err error
	if b.Stage, err = r.intField(2, "stage"); err != nil {
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

func newBlockette56FromB46(stage int, d *Blockette46) *Blockette56 {
	return &Blockette56{
		Stage:       stage,
		InputUnits:  d.InputUnits,
		OutputUnits: d.OutputUnits,
		CornerFreq:  append([]float64(nil), d.CornerFreq...),
		CornerSlope: append([]float64(nil), d.CornerSlope...),
		FromB46:     true,
	}
}

// Blockette57 is the Decimation Blockette.
type Blockette57 struct {
	Stage            int
	InputSampleRate  float64
	DecimationFactor int
	DecimationOffset int
	Delay            float64
	Correction       float64
	FromB47          bool
}

func (b *Blockette57) BlocketteType() int { return 57 }

func parseBlockette57(body string) (*Blockette57, error) {
	b := &Blockette57{}
	r := newFieldReader(body, "057")

	var err error
	if b.Stage, err = r.intField(2, "stage"); err != nil {
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

func newBlockette57FromB47(stage int, d *Blockette47) *Blockette57 {
	return &Blockette57{
		Stage:            stage,
		InputSampleRate:  d.InputSampleRate,
		DecimationFactor: d.DecimationFactor,
		DecimationOffset: d.DecimationOffset,
		Delay:            d.Delay,
		Correction:       d.Correction,
		FromB47:          true,
	}
}

// Blockette58 is the Channel Sensitivity/Gain Blockette. Stage 0 carries the
// overall channel sensitivity.
type Blockette58 struct {
	Stage          int
	Sensitivity    float64
	Frequency      float64
	CalSensitivity []float64
	CalFrequency   []float64
	CalTime        []Time
	FromB48        bool
}

func (b *Blockette58) BlocketteType() int { return 58 }

func parseBlockette58(body string) (*Blockette58, error) {
	b := &Blockette58{}
	r := newFieldReader(body, "058")

	var err error
	if b.Stage, err = r.intField(2, "stage"); err != nil {
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

func newBlockette58FromB48(stage int, d *Blockette48) *Blockette58 {
	return &Blockette58{
		Stage:          stage,
		Sensitivity:    d.Sensitivity,
		Frequency:      d.Frequency,
		CalSensitivity: append([]float64(nil), d.CalSensitivity...),
		CalFrequency:   append([]float64(nil), d.CalFrequency...),
		CalTime:        append([]Time(nil), d.CalTime...),
		FromB48:        true,
	}
}

// Blockette59 is the Channel Comment Blockette.
type Blockette59 struct {
	Beg          Time
	End          Time
	CommentCode  int
	CommentLevel int
}

func (b *Blockette59) BlocketteType() int { return 59 }

func parseBlockette59(body string) (*Blockette59, error) {
	b := &Blockette59{}
	r := newFieldReader(body, "059")

	var err error
	if b.Beg, err = r.timeField("beginning_time"); err != nil {
		return nil, err
	}
	if b.End, err = r.timeField("end_time"); err != nil {
		return nil, err
	}
	if b.CommentCode, err = r.intField(4, "commentCode"); err != nil {
		return nil, err
	}
	if b.CommentLevel, err = r.intField(6, "commentLevel"); err != nil {
		return nil, err
	}

	return b, nil
}

// ResponseStage is one stage entry of a Blockette60: a stage number and the
// dictionary lookup keys of its responses.
type ResponseStage struct {
	Stage int
	Codes []int
}

// Blockette60 is the Response Reference Blockette. The framer expands it
// against the dictionary into the equivalent station-level response
// blockettes.
type Blockette60 struct {
	Stages []ResponseStage
}

func (b *Blockette60) BlocketteType() int { return 60 }

func parseBlockette60(body string) (*Blockette60, error) {
	b := &Blockette60{}
	r := newFieldReader(body, "060")

	numStages, err := r.intField(2, "numStages")
	if err != nil {
		return nil, err
	}
	for i := 0; i < numStages; i++ {
		var rs ResponseStage
		if rs.Stage, err = r.intField(2, "stage"); err != nil {
			return nil, err
		}
		num, err := r.intField(2, "numResponses")
		if err != nil {
			return nil, err
		}
		for k := 0; k < num; k++ {
			code, err := r.intField(4, "lookupCode")
			if err != nil {
				return nil, err
			}
			rs.Codes = append(rs.Codes, code)
		}
		b.Stages = append(b.Stages, rs)
	}

	return b, nil
}

// Blockette61 is the FIR Response Blockette.
type Blockette61 struct {
	Stage        int
	Name         string
	SymmetryCode string // A: as-is, B: odd mirror, C: even mirror
	InputUnits   int
	OutputUnits  int
	Coef         []float64
	FromB41      bool
}

func (b *Blockette61) BlocketteType() int { return 61 }

func parseBlockette61(body string) (*Blockette61, error) {
	b := &Blockette61{}
	r := newFieldReader(body, "061")

	var err error
	if b.Stage, err = r.intField(2, "stage"); err != nil {
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

func newBlockette61FromB41(stage int, d *Blockette41) *Blockette61 {
	return &Blockette61{
		Stage:        stage,
		Name:         d.Name,
		SymmetryCode: d.SymmetryCode,
		InputUnits:   d.InputUnits,
		OutputUnits:  d.OutputUnits,
		Coef:         append([]float64(nil), d.Coef...),
		FromB41:      true,
	}
}

// Blockette62 is the Response (Polynomial) Blockette.
type Blockette62 struct {
	TransferType string
	Stage        int
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

func (b *Blockette62) BlocketteType() int { return 62 }

func parseBlockette62(body string) (*Blockette62, error) {
	b := &Blockette62{}
	r := newFieldReader(body, "062")

	var err error
	if b.TransferType, err = r.fixed(1); err != nil {
		return nil, err
	}
	if b.Stage, err = r.intField(2, "stage"); err != nil {
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
