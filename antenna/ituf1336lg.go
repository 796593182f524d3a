// Low-gain circularly symmetric pattern of Rec. ITU-R F.1336-5
// Recommends 4 (1-3 GHz, peak side lobes, gain below about 20 dBi).
package antenna

import (
	"math"

	"github.com/wiless/ituantenna/param"
)

var f1336lgSchema = param.Schema{
	{Name: pOperFreqMHz, Category: param.Mandatory,
		Kinds: []param.Kind{param.Number}, Range: &param.Range{Min: 1000, Max: 3000}},
	{Name: pMaxGainDbi, Category: param.Mandatory,
		Kinds: []param.Kind{param.Number}, Range: &param.Range{Min: -29.9, Max: 20}},
}

type f1336lgState struct {
	freqMHz float64
	gmax    float64
	phi3    float64
	phi1    float64
	phi2    float64
}

// ITUF1336lg models a low-gain antenna per Rec. ITU-R F.1336-5 Recommends 4.
type ITUF1336lg struct {
	params param.Set
	st     *f1336lgState
}

func NewITUF1336lg() *ITUF1336lg { return &ITUF1336lg{} }

func (m *ITUF1336lg) Name() string { return "ITUF1336lg" }

func (m *ITUF1336lg) Params() param.Set { return m.params.Clone() }

func (m *ITUF1336lg) SetParams(raw Fields) error {
	vp, err := f1336lgSchema.Validate(raw)
	if err != nil {
		return err
	}
	var in struct {
		OperFreqMHz float64 `mapstructure:"oper_freq_mhz"`
		MaxGainDbi  float64 `mapstructure:"max_gain_dbi"`
	}
	if err := decodeParams(vp, &in); err != nil {
		return err
	}
	st := &f1336lgState{freqMHz: in.OperFreqMHz, gmax: in.MaxGainDbi}
	st.phi3 = math.Sqrt(27000 * math.Pow(10, -0.1*st.gmax))
	st.phi1 = 1.9 * st.phi3
	st.phi2 = st.phi1 * math.Pow(10, (st.gmax-6)/32)
	m.params, m.st = vp, st
	return nil
}

func (m *ITUF1336lg) Gain(dir Fields) (float64, bool, error) {
	if m.st == nil {
		return 0, false, errNotSet(pOperFreqMHz)
	}
	theta, err := dir.number(pOffAxisAngle)
	if err != nil {
		return 0, false, err
	}
	return m.st.gainAt(Wrap0To180(theta)), true, nil
}

func (s *f1336lgState) gainAt(theta float64) float64 {
	switch {
	case theta < 1.08*s.phi3:
		return s.gmax - 12*math.Pow(theta/s.phi3, 2)
	case theta < s.phi1:
		return s.gmax - 14
	case theta < s.phi2:
		return s.gmax - 14 - 32*math.Log10(theta/s.phi1)
	default:
		return -8
	}
}

func (m *ITUF1336lg) Specs() (*Specification, error) {
	if m.st == nil {
		return nil, errNotSet(pOperFreqMHz)
	}
	st := m.st
	spec := &Specification{
		Name:         "ITU-R F.1336-5 Low-Gain",
		Make:         "ITU",
		Frequency:    fmtNum(st.freqMHz),
		HWidth:       fmtNum(round2(st.phi3)),
		VWidth:       fmtNum(round2(st.phi3)),
		FrontToBack:  notAvailable,
		GainDbi:      st.gmax,
		TiltDeg:      0,
		Polarization: notAvailable,
		Params:       m.params.Clone(),
	}
	cut := func(a float64) (float64, bool) { return st.gainAt(Wrap0To180(a)), true }
	spec.HPattern = sampleCut(st.gmax, cut)
	spec.VPattern = sampleCut(st.gmax, cut)
	return spec, nil
}
