// Omnidirectional pattern of Rec. ITU-R F.1336-5 Recommends 2
// (0.4-70 GHz, peak and average side lobes, optional electrical tilt).
package antenna

import (
	"fmt"
	"math"

	"github.com/wiless/ituantenna/param"
)

var f1336oSchema = param.Schema{
	{Name: pOperFreqMHz, Category: param.Mandatory,
		Kinds: []param.Kind{param.Number}, Range: &param.Range{Min: 400, Max: 70000}},
	{Name: pMaxGainDbi, Category: param.Mandatory,
		Kinds: []param.Kind{param.Number}, Range: &param.Range{Min: -29.9, Max: 59.9}},
	{Name: pPatternType, Category: param.Mandatory,
		Kinds: []param.Kind{param.String}, Allowed: []string{PatternAverage, PatternPeak}},
	{Name: pPerformanceType, Category: param.Mandatory,
		Kinds: []param.Kind{param.String}, Allowed: []string{PerformanceTypical, PerformanceImproved}},
	{Name: pTiltType, Category: param.Mandatory,
		Kinds: []param.Kind{param.String}, Allowed: []string{TiltNone, TiltElectrical}},
	{Name: pTiltAngleDeg, Category: param.Conditional,
		Kinds: []param.Kind{param.Number}, Range: &param.Range{Min: -89.9, Max: 89.9},
		DependsOn: []param.Dependency{{Param: pTiltType, Op: param.Ne, Value: TiltNone}}},
	{Name: pBeamwidthElDeg, Category: param.Optional,
		Kinds: []param.Kind{param.Number}, Range: &param.Range{Min: 0.1, Max: 179.9}},
	{Name: pK, Category: param.Optional,
		Kinds: []param.Kind{param.Float}, Range: &param.Range{Min: 0.001, Max: 0.999}},
}

type f1336oState struct {
	freqMHz     float64
	gmax        float64
	patternType string
	perfType    string
	tiltType    string
	tiltDeg     float64
	theta3      float64
	k           float64
}

// ITUF1336o models an omnidirectional antenna per Rec. ITU-R F.1336-5.
type ITUF1336o struct {
	params param.Set
	st     *f1336oState
}

func NewITUF1336o() *ITUF1336o { return &ITUF1336o{} }

func (m *ITUF1336o) Name() string { return "ITUF1336o" }

func (m *ITUF1336o) Params() param.Set { return m.params.Clone() }

func (m *ITUF1336o) SetParams(raw Fields) error {
	vp, err := f1336oSchema.Validate(raw)
	if err != nil {
		return err
	}
	st, err := deriveF1336o(vp)
	if err != nil {
		return err
	}
	m.params, m.st = vp, st
	return nil
}

func deriveF1336o(vp param.Set) (*f1336oState, error) {
	var in struct {
		OperFreqMHz    float64 `mapstructure:"oper_freq_mhz"`
		MaxGainDbi     float64 `mapstructure:"max_gain_dbi"`
		PatternType    string  `mapstructure:"pattern_type"`
		PerfType       string  `mapstructure:"performance_type"`
		TiltType       string  `mapstructure:"tilt_type"`
		TiltAngleDeg   float64 `mapstructure:"tilt_angle_deg"`
		BeamwidthElDeg float64 `mapstructure:"beamwidth_el_deg"`
		K              float64 `mapstructure:"k"`
	}
	if err := decodeParams(vp, &in); err != nil {
		return nil, err
	}
	st := &f1336oState{
		freqMHz:     in.OperFreqMHz,
		gmax:        in.MaxGainDbi,
		patternType: in.PatternType,
		perfType:    in.PerfType,
		tiltType:    in.TiltType,
	}
	if vp.Has(pBeamwidthElDeg) {
		st.theta3 = in.BeamwidthElDeg
	} else {
		// Formula (23b)
		st.theta3 = 107.6 * math.Pow(10, -0.1*st.gmax)
	}
	if vp.Has(pTiltAngleDeg) && st.tiltType != TiltNone {
		st.tiltDeg = in.TiltAngleDeg
	}
	if vp.Has(pK) {
		st.k = in.K
	} else if st.perfType == PerformanceTypical && st.freqMHz <= 3000 {
		st.k = 0.7 // Recommends 2.3
	} else {
		st.k = 0 // Recommends 2.4
	}
	return st, nil
}

func (m *ITUF1336o) Gain(dir Fields) (float64, bool, error) {
	if m.st == nil {
		return 0, false, errNotSet(pOperFreqMHz)
	}
	elevation, err := dir.number(pElevation)
	if err != nil {
		return 0, false, err
	}
	return m.st.gainAt(Wrap90To90(elevation)), true, nil
}

// gainAt evaluates the vertical pattern at an elevation measured from the
// horizontal plane; the tilt offset of Recommends 2.5 is applied first.
func (s *f1336oState) gainAt(thetaH float64) float64 {
	theta := s.tilted(thetaH)
	if s.patternType == PatternPeak {
		return s.gainPeak(theta)
	}
	return s.gainAverage(theta)
}

// tilted maps the apparent elevation onto the electrically tilted pattern,
// formula (1e). Downward tilt angles are positive.
func (s *f1336oState) tilted(thetaH float64) float64 {
	if s.tiltType == TiltNone || s.tiltDeg == 0 {
		return thetaH
	}
	beta := s.tiltDeg
	thetaHBeta := thetaH + beta
	if thetaHBeta >= 0 {
		return 90 * thetaHBeta / (90 + beta)
	}
	return 90 * thetaHBeta / (90 - beta)
}

// gainPeak implements Recommends 2.1.
func (s *f1336oState) gainPeak(theta float64) float64 {
	theta4 := s.theta3 * math.Sqrt(1-1/1.2*math.Log10(s.k+1))
	abs := math.Abs(theta)
	switch {
	case abs < theta4:
		return s.gmax - 12*math.Pow(theta/s.theta3, 2)
	case abs < s.theta3:
		return s.gmax - 12 + 10*math.Log10(s.k+1)
	default:
		return s.gmax - 12 + 10*math.Log10(math.Pow(abs/s.theta3, -1.5)+s.k)
	}
}

// gainAverage implements Recommends 2.2.
func (s *f1336oState) gainAverage(theta float64) float64 {
	theta5 := s.theta3 * math.Sqrt(1.25+1/1.2*math.Log10(s.k+1))
	abs := math.Abs(theta)
	switch {
	case abs < s.theta3:
		return s.gmax - 12*math.Pow(theta/s.theta3, 2)
	case abs < theta5:
		return s.gmax - 15 + 10*math.Log10(s.k+1)
	default:
		return s.gmax - 15 + 10*math.Log10(math.Pow(abs/s.theta3, -1.5)+s.k)
	}
}

func (m *ITUF1336o) Specs() (*Specification, error) {
	if m.st == nil {
		return nil, errNotSet(pOperFreqMHz)
	}
	st := m.st
	spec := &Specification{
		Name:         "ITU-R F.1336-5 Omnidirectional",
		Make:         "ITU",
		Frequency:    fmtNum(st.freqMHz),
		HWidth:       "360",
		VWidth:       fmtNum(round2(st.theta3)),
		FrontToBack:  notAvailable,
		GainDbi:      st.gmax,
		TiltDeg:      st.tiltDeg,
		Polarization: notAvailable,
		Comment: fmt.Sprintf("Side-lobe: %s/%s, tilting: %s, k=%v",
			st.patternType, st.perfType, st.tiltType, st.k),
		Params: m.params.Clone(),
	}
	// Omni in azimuth: the horizontal cut is flat at the boresight value.
	spec.HPattern = sampleCut(st.gmax, func(float64) (float64, bool) {
		return st.gainAt(0), true
	})
	spec.VPattern = sampleCut(st.gmax, func(a float64) (float64, bool) {
		return st.gainAt(Wrap90To90(a)), true
	})
	return spec, nil
}
