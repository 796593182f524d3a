// Design objective pattern of Rec. ITU-R S.580-6 for earth station
// antennas operating with geostationary satellites. Beyond 20 degrees the
// envelope falls back to Rec. ITU-R S.465-6.
package antenna

import (
	"math"

	"github.com/wiless/ituantenna/param"
)

var s580Schema = param.Schema{
	// S.580-6 itself does not limit the frequency; the range mirrors the
	// diameter bound below.
	{Name: pOperFreqMHz, Category: param.Optional,
		Kinds: []param.Kind{param.Number}, Range: &param.Range{Min: 1000, Max: 100000}},
	// 15 m is D/lambda=50 at 1 GHz
	{Name: pDiameterM, Category: param.Optional,
		Kinds: []param.Kind{param.Number}, Range: &param.Range{Min: 0.001, Max: 14.999}},
	{Name: pDToL, Category: param.Optional,
		Kinds: []param.Kind{param.Number}, Range: &param.Range{Min: 50, Max: 10000}},
}

// ITUS580 models a geostationary earth station antenna per
// Rec. ITU-R S.580-6.
type ITUS580 struct {
	params param.Set
	st     *s465State
}

func NewITUS580() *ITUS580 { return &ITUS580{} }

func (m *ITUS580) Name() string { return "ITUS580" }

func (m *ITUS580) Params() param.Set { return m.params.Clone() }

func (m *ITUS580) SetParams(raw Fields) error {
	vp, err := s580Schema.Validate(raw)
	if err != nil {
		return err
	}
	st, err := deriveS465("ITUS580", vp)
	if err != nil {
		return err
	}
	// A d_to_l derived from diameter and frequency can still land below
	// the S.580-6 applicability bound.
	if st.dToL < 50 {
		return inconsistent("ITUS580",
			"invalid parameter value! %s must be >= 50. Resulting value: %.2f", pDToL, st.dToL)
	}
	m.params, m.st = vp, st
	return nil
}

func (m *ITUS580) Gain(dir Fields) (float64, bool, error) {
	if m.st == nil {
		return 0, false, errNotSet(pDToL)
	}
	phi, err := dir.number(pOffAxisAngle)
	if err != nil {
		return 0, false, err
	}
	g, ok := s580GainAt(m.st, Wrap0To180(phi))
	return g, ok, nil
}

// s580GainAt applies Recommends 1 out to 20 degrees, bridges to the
// S.465-6 envelope through 26.3 degrees per NOTE 5, then follows it.
func s580GainAt(st *s465State, phi float64) (float64, bool) {
	phiMin := math.Max(1, 100/st.dToL)
	switch {
	case phi < phiMin:
		return 0, false
	case phi <= 20:
		return 29 - 25*math.Log10(phi), true
	case phi <= 26.3:
		g, _ := st.gainAt(phi)
		return math.Min(-3.5, g), true
	default:
		return st.gainAt(phi)
	}
}

func (m *ITUS580) Specs() (*Specification, error) {
	if m.st == nil {
		return nil, errNotSet(pDToL)
	}
	gain := func(phi float64) (float64, bool) { return s580GainAt(m.st, phi) }
	return s465Specs("ITU-R S.580-6", m.st, gain, m.params), nil
}
