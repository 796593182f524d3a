// Reference earth station pattern of Rec. ITU-R S.465-6 for coordination
// and interference assessment, 2 to 31 GHz.
package antenna

import (
	"fmt"
	"math"

	"github.com/wiless/ituantenna/param"
)

var s465Schema = param.Schema{
	{Name: pOperFreqMHz, Category: param.Optional,
		Kinds: []param.Kind{param.Number}, Range: &param.Range{Min: 2000, Max: 31000}},
	{Name: pDiameterM, Category: param.Optional,
		Kinds: []param.Kind{param.Number}, Range: &param.Range{Min: 0.001, Max: 99.999}},
	{Name: pDToL, Category: param.Optional,
		Kinds: []param.Kind{param.Number}, Range: &param.Range{Min: 0.001, Max: 10000}},
}

type s465State struct {
	freqMHz float64
	hasFreq bool
	dToL    float64
}

// ITUS465 models a fixed-satellite earth station antenna per
// Rec. ITU-R S.465-6.
type ITUS465 struct {
	params param.Set
	st     *s465State
}

func NewITUS465() *ITUS465 { return &ITUS465{} }

func (m *ITUS465) Name() string { return "ITUS465" }

func (m *ITUS465) Params() param.Set { return m.params.Clone() }

func (m *ITUS465) SetParams(raw Fields) error {
	vp, err := s465Schema.Validate(raw)
	if err != nil {
		return err
	}
	st, err := deriveS465("ITUS465", vp)
	if err != nil {
		return err
	}
	m.params, m.st = vp, st
	return nil
}

// deriveS465 resolves D/lambda from whichever of frequency, diameter and
// d_to_l were supplied. An explicit d_to_l always wins; diameter alone or
// frequency alone cannot determine the ratio. Shared with ITUS580, which
// uses the same parameter set with narrower ranges.
func deriveS465(model string, vp param.Set) (*s465State, error) {
	hasFreq := vp.Has(pOperFreqMHz)
	hasDiam := vp.Has(pDiameterM)
	hasDToL := vp.Has(pDToL)

	st := &s465State{hasFreq: hasFreq}
	if hasFreq {
		st.freqMHz, _ = vp.Float(pOperFreqMHz)
	}
	switch {
	case hasDToL:
		st.dToL, _ = vp.Float(pDToL)
	case hasFreq && hasDiam:
		diam, _ := vp.Float(pDiameterM)
		st.dToL = diam / wavelengthM(st.freqMHz)
	case hasDiam:
		return nil, inconsistent(model,
			"missing required parameter! At least one of the following parameters must also be provided: %s, %s",
			pOperFreqMHz, pDToL)
	case hasFreq:
		return nil, inconsistent(model,
			"missing required parameter! At least one of the following parameters must also be provided: %s, %s",
			pDiameterM, pDToL)
	default:
		return nil, inconsistent(model,
			"missing required parameter! At least one of the following parameters must be provided: %s, %s, %s",
			pOperFreqMHz, pDiameterM, pDToL)
	}
	return st, nil
}

// phiMin is the smallest angle the pattern is defined for, Recommends 2
// and NOTE 5.
func (s *s465State) phiMin() float64 {
	switch {
	case s.dToL >= 50:
		return math.Max(1, 100/s.dToL)
	case s.dToL >= 33.3:
		return math.Max(2, 114*math.Pow(s.dToL, -1.09))
	default:
		return 2.5
	}
}

func (m *ITUS465) Gain(dir Fields) (float64, bool, error) {
	if m.st == nil {
		return 0, false, errNotSet(pDToL)
	}
	phi, err := dir.number(pOffAxisAngle)
	if err != nil {
		return 0, false, err
	}
	g, ok := m.st.gainAt(Wrap0To180(phi))
	return g, ok, nil
}

// gainAt returns ok=false inside the main lobe, where the envelope of
// Recommends 2 does not apply.
func (s *s465State) gainAt(phi float64) (float64, bool) {
	switch {
	case phi < s.phiMin():
		return 0, false
	case phi < 48:
		return 32 - 25*math.Log10(phi), true
	default:
		return -10, true
	}
}

func (m *ITUS465) Specs() (*Specification, error) {
	if m.st == nil {
		return nil, errNotSet(pDToL)
	}
	return s465Specs("ITU-R S.465-6", m.st, m.st.gainAt, m.params), nil
}

// s465Specs builds the MSI-style sheet shared by the two earth station
// models: the reference gain is the envelope value at phi_min.
func s465Specs(name string, st *s465State, gain func(float64) (float64, bool), vp param.Set) *Specification {
	phiMin := st.phiMin()
	gmax, _ := gain(phiMin)
	gmax = round2(gmax)

	freq := notAvailable
	if st.hasFreq {
		freq = fmtNum(st.freqMHz)
	}
	spec := &Specification{
		Name:         name,
		Make:         "ITU",
		Frequency:    freq,
		HWidth:       notAvailable,
		VWidth:       notAvailable,
		FrontToBack:  notAvailable,
		GainDbi:      gmax,
		TiltDeg:      0,
		Polarization: notAvailable,
		Comment: fmt.Sprintf("D/lambda: %.2f. Gain relates to +/-%.2f deg.",
			st.dToL, phiMin),
		Params: vp.Clone(),
	}
	cut := func(a float64) (float64, bool) { return gain(Wrap0To180(a)) }
	spec.HPattern = sampleCut(gmax, cut)
	spec.VPattern = sampleCut(gmax, cut)
	return spec
}
