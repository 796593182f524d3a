// Reference radiation pattern of Rec. ITU-R F.699-8 for fixed wireless
// system antennas, 100 MHz to 86 GHz.
package antenna

import (
	"fmt"
	"math"

	"github.com/wiless/ituantenna/param"
)

// Frequency-band labels used by the dish-type models.
const (
	bandBelow1GHz = "0.1-1 GHz"
	band1To70GHz  = "1-70 GHz"
	band70To86GHz = "70-86 GHz"
)

var f699Schema = param.Schema{
	{Name: pOperFreqMHz, Category: param.Mandatory,
		Kinds: []param.Kind{param.Number}, Range: &param.Range{Min: 100, Max: 86000}},
	{Name: pDiameterM, Category: param.Optional,
		Kinds: []param.Kind{param.Number}, Range: &param.Range{Min: 0.001, Max: 99.999}},
	{Name: pMaxGainDbi, Category: param.Optional,
		Kinds: []param.Kind{param.Number}, Range: &param.Range{Min: -29.9, Max: 89.9}},
	{Name: pBeamwidthDeg, Category: param.Optional,
		Kinds: []param.Kind{param.Number}, Range: &param.Range{Min: 0.001, Max: 179.999}},
}

type f699Input struct {
	OperFreqMHz  float64 `mapstructure:"oper_freq_mhz"`
	DiameterM    float64 `mapstructure:"diameter_m"`
	MaxGainDbi   float64 `mapstructure:"max_gain_dbi"`
	BeamwidthDeg float64 `mapstructure:"beamwidth_deg"`
}

// f699State is the fully derived state rebuilt on every SetParams.
type f699State struct {
	freqMHz  float64
	freqBand string
	dToL     float64
	gmax     float64
	g1       float64
	phiM     float64
}

// ITUF699 models a point-to-point dish antenna per Rec. ITU-R F.699-8.
type ITUF699 struct {
	params param.Set
	st     *f699State
}

func NewITUF699() *ITUF699 { return &ITUF699{} }

func (m *ITUF699) Name() string { return "ITUF699" }

func (m *ITUF699) Params() param.Set { return m.params.Clone() }

func (m *ITUF699) SetParams(raw Fields) error {
	vp, err := f699Schema.Validate(raw)
	if err != nil {
		return err
	}
	st, err := deriveF699(vp)
	if err != nil {
		return err
	}
	m.params, m.st = vp, st
	return nil
}

// deriveF699 resolves D/lambda and the maximum gain from whichever of
// diameter, gain and beamwidth were supplied (F.699-8 Recommends 3 and 4).
func deriveF699(vp param.Set) (*f699State, error) {
	var in f699Input
	if err := decodeParams(vp, &in); err != nil {
		return nil, err
	}
	hasDiam := vp.Has(pDiameterM)
	hasGain := vp.Has(pMaxGainDbi)
	hasBW := vp.Has(pBeamwidthDeg)

	st := &f699State{freqMHz: in.OperFreqMHz}
	switch {
	case in.OperFreqMHz <= 1000:
		st.freqBand = bandBelow1GHz
	case in.OperFreqMHz <= 70000:
		st.freqBand = band1To70GHz
	default:
		st.freqBand = band70To86GHz
	}

	switch {
	case hasDiam:
		st.dToL = in.DiameterM / wavelengthM(in.OperFreqMHz)
		if hasGain {
			st.gmax = in.MaxGainDbi
		} else {
			st.gmax = gmaxFromDToL(st.dToL)
		}
	case hasGain:
		// Gain wins over beamwidth when both are supplied.
		st.dToL = dToLFromGmax(in.MaxGainDbi)
		st.gmax = in.MaxGainDbi
	case hasBW:
		st.dToL = dToLFromBeamwidth(in.BeamwidthDeg)
		st.gmax = gmaxFromBeamwidth(in.BeamwidthDeg)
	default:
		return nil, inconsistent("ITUF699",
			"missing required parameter! At least one of the following parameters must be provided: %s, %s, %s",
			pMaxGainDbi, pDiameterM, pBeamwidthDeg)
	}

	if st.freqBand == bandBelow1GHz && st.dToL < 0.63 {
		return nil, inconsistent("ITUF699",
			"Rec. ITU-R F.699-8 applies only for D/lambda > 0.63, got %.3f", st.dToL)
	}
	st.g1 = 2 + 15*math.Log10(st.dToL)
	if st.gmax < st.g1 {
		return nil, inconsistent("ITUF699",
			"max gain %.2f dBi below first side-lobe gain G1=%.2f dBi; phi_m undefined", st.gmax, st.g1)
	}
	st.phiM = 20 / st.dToL * math.Sqrt(st.gmax-st.g1)
	return st, nil
}

func (m *ITUF699) Gain(dir Fields) (float64, bool, error) {
	if m.st == nil {
		return 0, false, errNotSet(pOperFreqMHz)
	}
	phi, err := dir.number(pOffAxisAngle)
	if err != nil {
		return 0, false, err
	}
	return m.st.gainAt(Wrap0To180(phi)), true, nil
}

// gainAt evaluates the piecewise envelope at an off-axis angle in [0,180].
// Band boundaries are half open, upper band winning the shared edge.
func (s *f699State) gainAt(phi float64) float64 {
	if phi == 0 {
		return s.gmax
	}
	if s.freqBand == bandBelow1GHz {
		return s.gainRec23(phi)
	}
	if s.dToL > 100 {
		return s.gainRec21(phi)
	}
	return s.gainRec22(phi)
}

// gainRec21 implements Recommends 2.1 (D/lambda > 100).
func (s *f699State) gainRec21(phi float64) float64 {
	phiR := 15.85 * math.Pow(s.dToL, -0.6)
	farEdge, farFloor := 48.0, -10.0
	if s.freqBand == band70To86GHz {
		farEdge, farFloor = 120.0, -20.0
	}
	switch {
	case phi < s.phiM:
		return s.gmax - 2.5e-3*math.Pow(s.dToL*phi, 2)
	case phi < phiR:
		return s.g1
	case phi < farEdge:
		return 32 - 25*math.Log10(phi)
	default:
		return farFloor
	}
}

// gainRec22 implements Recommends 2.2 (D/lambda <= 100).
func (s *f699State) gainRec22(phi float64) float64 {
	phiR := 100 / s.dToL
	farEdge := 48.0
	farFloor := 10 - 10*math.Log10(s.dToL)
	if s.freqBand == band70To86GHz {
		farEdge = 120.0
		farFloor = -10 * math.Log10(s.dToL)
	}
	switch {
	case phi < s.phiM:
		return s.gmax - 2.5e-3*math.Pow(s.dToL*phi, 2)
	case phi < phiR:
		return s.g1
	case phi < farEdge:
		return 52 - 10*math.Log10(s.dToL) - 25*math.Log10(phi)
	default:
		return farFloor
	}
}

// gainRec23 implements Recommends 2.3 (0.1-1 GHz, D/lambda > 0.63).
func (s *f699State) gainRec23(phi float64) float64 {
	phiS := 144.5 * math.Pow(s.dToL, -0.2)
	switch {
	case phi < s.phiM:
		return s.gmax - 2.5e-3*math.Pow(s.dToL*phi, 2)
	case phi < 100/s.dToL:
		return s.g1
	case phi < phiS:
		return 52 - 10*math.Log10(s.dToL) - 25*math.Log10(phi)
	default:
		return -2 - 5*math.Log10(s.dToL)
	}
}

func (m *ITUF699) Specs() (*Specification, error) {
	if m.st == nil {
		return nil, errNotSet(pOperFreqMHz)
	}
	st := m.st
	phi3 := beamwidthFromGmax(st.gmax)
	spec := &Specification{
		Name:         "ITU-R F.699-8",
		Make:         "ITU",
		Frequency:    fmtNum(st.freqMHz),
		HWidth:       fmtNum(round2(phi3)),
		VWidth:       fmtNum(round2(phi3)),
		FrontToBack:  notAvailable,
		GainDbi:      round2(st.gmax),
		TiltDeg:      0,
		Polarization: notAvailable,
		Comment:      fmt.Sprintf("Ant. diam to wavelength ratio: %.2f", st.dToL),
		Params:       m.params.Clone(),
	}
	// Circularly symmetric dish: the vertical cut repeats the horizontal.
	cut := func(a float64) (float64, bool) { return st.gainAt(Wrap0To180(a)), true }
	spec.HPattern = sampleCut(st.gmax, cut)
	spec.VPattern = sampleCut(st.gmax, cut)
	return spec, nil
}
