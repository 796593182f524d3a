// Average and related radiation patterns of Rec. ITU-R F.1245-3 for
// point-to-point fixed wireless system antennas, 1 GHz to 86 GHz.
package antenna

import (
	"fmt"
	"math"

	"github.com/wiless/ituantenna/param"
)

// Calculation options of Rec. ITU-R F.1245-3.
const (
	F1245Rec2 = "Rec. 2"
	F1245Rec3 = "Rec. 3"
)

var f1245Schema = param.Schema{
	{Name: pOperFreqMHz, Category: param.Mandatory,
		Kinds: []param.Kind{param.Number}, Range: &param.Range{Min: 1000, Max: 86000}},
	{Name: pCalcOpt, Category: param.Mandatory,
		Kinds: []param.Kind{param.String}, Allowed: []string{F1245Rec2, F1245Rec3}},
	{Name: pMaxGainDbi, Category: param.Optional,
		Kinds: []param.Kind{param.Number}, Range: &param.Range{Min: -29.9, Max: 89.9}},
	{Name: pDiameterM, Category: param.Optional,
		Kinds: []param.Kind{param.Number}, Range: &param.Range{Min: 0.001, Max: 99.999}},
}

type f1245Input struct {
	OperFreqMHz float64 `mapstructure:"oper_freq_mhz"`
	CalcOpt     string  `mapstructure:"calc_opt"`
	MaxGainDbi  float64 `mapstructure:"max_gain_dbi"`
	DiameterM   float64 `mapstructure:"diameter_m"`
}

type f1245State struct {
	freqMHz  float64
	freqBand string
	calcOpt  string
	dToL     float64
	gmax     float64
	g1       float64
	phiM     float64
}

// ITUF1245 models a point-to-point dish antenna per Rec. ITU-R F.1245-3.
type ITUF1245 struct {
	params param.Set
	st     *f1245State
}

func NewITUF1245() *ITUF1245 { return &ITUF1245{} }

func (m *ITUF1245) Name() string { return "ITUF1245" }

func (m *ITUF1245) Params() param.Set { return m.params.Clone() }

func (m *ITUF1245) SetParams(raw Fields) error {
	vp, err := f1245Schema.Validate(raw)
	if err != nil {
		return err
	}
	st, err := deriveF1245(vp)
	if err != nil {
		return err
	}
	m.params, m.st = vp, st
	return nil
}

func deriveF1245(vp param.Set) (*f1245State, error) {
	var in f1245Input
	if err := decodeParams(vp, &in); err != nil {
		return nil, err
	}
	hasDiam := vp.Has(pDiameterM)
	hasGain := vp.Has(pMaxGainDbi)
	if !hasDiam && !hasGain {
		return nil, inconsistent("ITUF1245",
			"missing required parameter! At least one of the following parameters must be provided: %s, %s",
			pMaxGainDbi, pDiameterM)
	}

	st := &f1245State{freqMHz: in.OperFreqMHz, calcOpt: in.CalcOpt}
	if in.OperFreqMHz < 70000 {
		st.freqBand = band1To70GHz
	} else {
		st.freqBand = band70To86GHz
	}

	// NOTE 2 of Recommends 4: either quantity determines the other.
	switch {
	case hasDiam:
		st.dToL = in.DiameterM / wavelengthM(in.OperFreqMHz)
		if hasGain {
			st.gmax = in.MaxGainDbi
		} else {
			st.gmax = gmaxFromDToL(st.dToL)
		}
	default:
		st.dToL = dToLFromGmax(in.MaxGainDbi)
		st.gmax = in.MaxGainDbi
	}

	st.g1 = 2 + 15*math.Log10(st.dToL)
	if st.gmax < st.g1 {
		return nil, inconsistent("ITUF1245",
			"max gain %.2f dBi below first side-lobe gain G1=%.2f dBi; phi_m undefined", st.gmax, st.g1)
	}
	st.phiM = 20 / st.dToL * math.Sqrt(st.gmax-st.g1)
	return st, nil
}

func (m *ITUF1245) Gain(dir Fields) (float64, bool, error) {
	if m.st == nil {
		return 0, false, errNotSet(pOperFreqMHz)
	}
	phi, err := dir.number(pOffAxisAngle)
	if err != nil {
		return 0, false, err
	}
	return m.st.gainAt(Wrap0To180(phi)), true, nil
}

func (s *f1245State) gainAt(phi float64) float64 {
	if phi == 0 {
		return s.gmax
	}
	if s.calcOpt == F1245Rec2 {
		return s.gainRec2(phi)
	}
	return s.gainRec3(phi)
}

// gainRec2 is the average pattern envelope of Recommends 2.
func (s *f1245State) gainRec2(phi float64) float64 {
	farEdge := 48.0
	if s.freqBand == band70To86GHz {
		farEdge = 120.0
	}
	if s.dToL > 100 {
		phiR := 12.02 * math.Pow(s.dToL, -0.6)
		flatEdge := math.Max(s.phiM, phiR)
		farFloor := -13.0
		if s.freqBand == band70To86GHz {
			farFloor = -23.0
		}
		switch {
		case phi < s.phiM:
			return s.gmax - 2.5e-3*math.Pow(s.dToL*phi, 2)
		case phi < flatEdge:
			return s.g1
		case phi < farEdge:
			return 29 - 25*math.Log10(phi)
		default:
			return farFloor
		}
	}
	farFloor := -3 - 5*math.Log10(s.dToL)
	if s.freqBand == band70To86GHz {
		farFloor = -13 - 5*math.Log10(s.dToL)
	}
	switch {
	case phi < s.phiM:
		return s.gmax - 2.5e-3*math.Pow(s.dToL*phi, 2)
	case phi < farEdge:
		return 39 - 5*math.Log10(s.dToL) - 25*math.Log10(phi)
	default:
		return farFloor
	}
}

// gainRec3 is the side-lobe modulated pattern of Recommends 3. The
// modulation term F(phi) rides on every band past the main lobe.
func (s *f1245State) gainRec3(phi float64) float64 {
	farEdge := 48.0
	if s.freqBand == band70To86GHz {
		farEdge = 120.0
	}

	var phiR float64
	if s.dToL > 100 {
		phiR = 15.85 * math.Pow(s.dToL, -0.6)
	} else {
		phiR = 39.8 * math.Pow(s.dToL, -0.8)
	}
	sinArg := 3 * math.Pi * phi / (2 * phiR) * math.Pi / 180
	fPhi := 10 * math.Log10(0.9*math.Pow(math.Sin(sinArg), 2)+0.1)
	gA := s.gmax - 2.5e-3*math.Pow(s.dToL*phi, 2)
	gB := s.g1 + fPhi

	if s.dToL > 100 {
		farFloor := -10.0
		if s.freqBand == band70To86GHz {
			farFloor = -20.0
		}
		switch {
		case phi < phiR:
			return math.Max(gA, gB)
		case phi < farEdge:
			return 32 - 25*math.Log10(phi) + fPhi
		default:
			return farFloor + fPhi
		}
	}
	farFloor := -5 * math.Log10(s.dToL)
	if s.freqBand == band70To86GHz {
		farFloor = -10 - 5*math.Log10(s.dToL)
	}
	switch {
	case phi < phiR:
		return math.Max(gA, gB)
	case phi < farEdge:
		return 42 - 5*math.Log10(s.dToL) - 25*math.Log10(phi) + fPhi
	default:
		return farFloor + fPhi
	}
}

func (m *ITUF1245) Specs() (*Specification, error) {
	if m.st == nil {
		return nil, errNotSet(pOperFreqMHz)
	}
	st := m.st
	phi3 := 35 / st.dToL // Recommends 4
	fToB := st.gainAt(0) - st.gainAt(180)
	spec := &Specification{
		Name:         "ITU-R F.1245-3",
		Make:         "ITU",
		Frequency:    fmtNum(st.freqMHz),
		HWidth:       fmtNum(round2(phi3)),
		VWidth:       fmtNum(round2(phi3)),
		FrontToBack:  fmtNum(round2(fToB)),
		GainDbi:      round2(st.gmax),
		TiltDeg:      0,
		Polarization: notAvailable,
		Comment:      fmt.Sprintf("Ant. diam to wavelength ratio: %.2f", st.dToL),
		Params:       m.params.Clone(),
	}
	cut := func(a float64) (float64, bool) { return st.gainAt(Wrap0To180(a)), true }
	spec.HPattern = sampleCut(st.gmax, cut)
	spec.VPattern = sampleCut(st.gmax, cut)
	return spec, nil
}
