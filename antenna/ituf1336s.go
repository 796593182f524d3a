// Sectoral pattern of Rec. ITU-R F.1336-5 Recommends 3 (0.4-70 GHz, peak
// and average side lobes, mechanical/electrical tilt, azimuth+elevation
// compositional model).
package antenna

import (
	"fmt"
	"math"

	"github.com/wiless/ituantenna/param"
)

const (
	bandLow6GHz  = "0.4-6 GHz"
	band6To70GHz = "6-70 GHz"
)

var f1336sSchema = param.Schema{
	{Name: pOperFreqMHz, Category: param.Mandatory,
		Kinds: []param.Kind{param.Number}, Range: &param.Range{Min: 400, Max: 70000}},
	{Name: pMaxGainDbi, Category: param.Mandatory,
		Kinds: []param.Kind{param.Number}, Range: &param.Range{Min: -29.9, Max: 59.9}},
	{Name: pBeamwidthAzDeg, Category: param.Mandatory,
		Kinds: []param.Kind{param.Number}, Range: &param.Range{Min: 0.1, Max: 359.9}},
	{Name: pPatternType, Category: param.Mandatory,
		Kinds: []param.Kind{param.String}, Allowed: []string{PatternAverage, PatternPeak}},
	{Name: pPerformanceType, Category: param.Mandatory,
		Kinds: []param.Kind{param.String}, Allowed: []string{PerformanceTypical, PerformanceImproved}},
	{Name: pTiltType, Category: param.Mandatory,
		Kinds: []param.Kind{param.String}, Allowed: []string{TiltNone, TiltMechanical, TiltElectrical}},
	{Name: pTiltAngleDeg, Category: param.Conditional,
		Kinds: []param.Kind{param.Number}, Range: &param.Range{Min: -89.9, Max: 89.9},
		DependsOn: []param.Dependency{{Param: pTiltType, Op: param.Ne, Value: TiltNone}}},
	// Formula (3e) only holds for sectors up to 120 degrees; wider sectors
	// must supply the elevation beamwidth themselves.
	{Name: pBeamwidthElDeg, Category: param.Conditional,
		Kinds: []param.Kind{param.Number}, Range: &param.Range{Min: 0.1, Max: 179.9},
		DependsOn: []param.Dependency{{Param: pBeamwidthAzDeg, Op: param.Gt, Value: 120}}},
	{Name: pKp, Category: param.Optional,
		Kinds: []param.Kind{param.Float}, Range: &param.Range{Min: 0.001, Max: 0.999}},
	{Name: pKa, Category: param.Optional,
		Kinds: []param.Kind{param.Float}, Range: &param.Range{Min: 0.001, Max: 0.999}},
	{Name: pKh, Category: param.Optional,
		Kinds: []param.Kind{param.Float}, Range: &param.Range{Min: 0.001, Max: 0.999}},
	{Name: pKv, Category: param.Optional,
		Kinds: []param.Kind{param.Float}, Range: &param.Range{Min: 0.001, Max: 0.999}},
}

type f1336sState struct {
	freqMHz     float64
	freqRange   string
	gmax        float64
	phi3        float64 // azimuth 3 dB beamwidth
	theta3      float64 // elevation 3 dB beamwidth
	patternType string
	perfType    string
	tiltType    string
	tiltDeg     float64
	kp, ka      float64
	kh, kv      float64
}

// ITUF1336s models a sectoral antenna per Rec. ITU-R F.1336-5.
type ITUF1336s struct {
	params param.Set
	st     *f1336sState
}

func NewITUF1336s() *ITUF1336s { return &ITUF1336s{} }

func (m *ITUF1336s) Name() string { return "ITUF1336s" }

func (m *ITUF1336s) Params() param.Set { return m.params.Clone() }

func (m *ITUF1336s) SetParams(raw Fields) error {
	vp, err := f1336sSchema.Validate(raw)
	if err != nil {
		return err
	}
	st, err := deriveF1336s(vp)
	if err != nil {
		return err
	}
	m.params, m.st = vp, st
	return nil
}

func deriveF1336s(vp param.Set) (*f1336sState, error) {
	var in struct {
		OperFreqMHz    float64 `mapstructure:"oper_freq_mhz"`
		MaxGainDbi     float64 `mapstructure:"max_gain_dbi"`
		BeamwidthAzDeg float64 `mapstructure:"beamwidth_az_deg"`
		PatternType    string  `mapstructure:"pattern_type"`
		PerfType       string  `mapstructure:"performance_type"`
		TiltType       string  `mapstructure:"tilt_type"`
		TiltAngleDeg   float64 `mapstructure:"tilt_angle_deg"`
		BeamwidthElDeg float64 `mapstructure:"beamwidth_el_deg"`
		Kp             float64 `mapstructure:"k_p"`
		Ka             float64 `mapstructure:"k_a"`
		Kh             float64 `mapstructure:"k_h"`
		Kv             float64 `mapstructure:"k_v"`
	}
	if err := decodeParams(vp, &in); err != nil {
		return nil, err
	}
	st := &f1336sState{
		freqMHz:     in.OperFreqMHz,
		gmax:        in.MaxGainDbi,
		phi3:        in.BeamwidthAzDeg,
		patternType: in.PatternType,
		perfType:    in.PerfType,
		tiltType:    in.TiltType,
	}
	if in.OperFreqMHz <= 6000 {
		st.freqRange = bandLow6GHz
	} else {
		st.freqRange = band6To70GHz
	}
	if vp.Has(pTiltAngleDeg) && st.tiltType != TiltNone {
		st.tiltDeg = in.TiltAngleDeg
	}
	if vp.Has(pBeamwidthElDeg) {
		st.theta3 = in.BeamwidthElDeg
	} else {
		// Recommends 3.3, formula (3e)
		st.theta3 = 31000 * math.Pow(10, -0.1*st.gmax) / st.phi3
	}
	st.kp, st.ka = 0.7, 0.7
	if vp.Has(pKp) {
		st.kp = in.Kp
	}
	if vp.Has(pKa) {
		st.ka = in.Ka
	}
	if vp.Has(pKh) {
		st.kh = in.Kh
	} else if st.perfType == PerformanceTypical {
		st.kh = 0.8
	} else {
		st.kh = 0.7
	}
	if vp.Has(pKv) {
		st.kv = in.Kv
	} else if st.perfType == PerformanceTypical {
		st.kv = 0.7
	} else {
		st.kv = 0.3
	}
	return st, nil
}

func (m *ITUF1336s) Gain(dir Fields) (float64, bool, error) {
	if m.st == nil {
		return 0, false, errNotSet(pOperFreqMHz)
	}
	azimuth, err := dir.number(pAzimuth)
	if err != nil {
		return 0, false, err
	}
	elevation, err := dir.number(pElevation)
	if err != nil {
		return 0, false, err
	}
	phiH := Wrap180To180(azimuth)
	thetaH := Wrap90To90(elevation)
	return m.st.gainAt(phiH, thetaH), true, nil
}

func (s *f1336sState) gainAt(phiH, thetaH float64) float64 {
	phi, theta := s.tilted(phiH, thetaH)
	if s.freqRange == bandLow6GHz {
		if s.patternType == PatternAverage {
			return s.gainAverageLow(phi, theta)
		}
		return s.gainPeakLow(phi, theta)
	}
	if s.patternType == PatternAverage {
		return s.gainAverageHigh(phi, theta)
	}
	return s.gainPeakHigh(phi, theta)
}

// tilted rotates the query direction into the tilted antenna frame:
// formulas (3b)/(3c) for mechanical tilt, with theta replaced per (1e) for
// electrical tilt. Downward tilt angles are positive.
func (s *f1336sState) tilted(phiH, thetaH float64) (phi, theta float64) {
	if s.tiltType == TiltNone && s.tiltDeg == 0 {
		return phiH, thetaH
	}
	beta := s.tiltDeg

	sinThetaH := math.Sin(radian(thetaH))
	cosThetaH := math.Cos(radian(thetaH))
	cosPhiH := math.Cos(radian(phiH))
	sinBeta := math.Sin(radian(beta))
	cosBeta := math.Cos(radian(beta))

	asinArg := clamp1(sinThetaH*cosBeta + cosThetaH*cosPhiH*sinBeta)
	theta = degree(math.Asin(asinArg))
	cosTheta := math.Cos(radian(theta))
	acosArg := clamp1((-sinThetaH*sinBeta + cosThetaH*cosPhiH*cosBeta) / cosTheta)
	phi = degree(math.Acos(acosArg))

	if s.tiltType == TiltElectrical {
		thetaHBeta := thetaH + beta
		if thetaHBeta >= 0 {
			theta = 90 * thetaHBeta / (90 + beta)
		} else {
			theta = 90 * thetaHBeta / (90 - beta)
		}
	}
	return phi, theta
}

// ----- 0.4-6 GHz compositional model (Recommends 3.1) -----

// gainPeakLow implements Recommends 3.1.1: the vertical contribution is
// compressed by the horizontal ratio R before summing in dB.
func (s *f1336sState) gainPeakLow(phi, theta float64) float64 {
	xh := math.Abs(phi) / s.phi3
	xv := math.Abs(theta) / s.theta3
	r := (s.ghrPeak(xh) - s.ghrPeak(180/s.phi3)) /
		(s.ghrPeak(0) - s.ghrPeak(180/s.phi3))
	return s.gmax + s.ghrPeak(xh) + r*s.gvrPeak(xv)
}

func (s *f1336sState) gainAverageLow(phi, theta float64) float64 {
	xh := math.Abs(phi) / s.phi3
	xv := math.Abs(theta) / s.theta3
	r := (s.ghrAverage(xh) - s.ghrAverage(180/s.phi3)) /
		(s.ghrAverage(0) - s.ghrAverage(180/s.phi3))
	return s.gmax + s.ghrAverage(xh) + r*s.gvrAverage(xv)
}

// g180Peak is the relative minimum gain, Recommends 3.1.1.1.
func (s *f1336sState) g180Peak() float64 {
	return -12 + 10*math.Log10(1+8*s.kp) - 15*math.Log10(180/s.theta3)
}

// ghrPeak is the relative horizontal pattern, formula (2b2), floored at G180.
func (s *f1336sState) ghrPeak(xh float64) float64 {
	lambdaKh := 3 * (1 - math.Pow(0.5, -s.kh))
	var g float64
	if xh <= 0.5 {
		g = -12 * xh * xh
	} else {
		g = -12*math.Pow(xh, 2-s.kh) - lambdaKh
	}
	return math.Max(g, s.g180Peak())
}

// cPeak is the attenuation incline factor of Recommends 3.1.1.3.
func (s *f1336sState) cPeak() float64 {
	num := math.Pow(180/s.theta3, 1.5) * (math.Pow(4, -1.5) + s.kv)
	return math.Log10(num/(1+8*s.kp)) / math.Log10(22.5/s.theta3)
}

// gvrPeak is the relative vertical pattern, formula (2b3).
func (s *f1336sState) gvrPeak(xv float64) float64 {
	xk := math.Sqrt(1 - 0.36*s.kv)
	c := s.cPeak()
	lambdaKv := 12 - c*math.Log10(4) - 10*math.Log10(math.Pow(4, -1.5)+s.kv)
	switch {
	case xv < xk:
		return -12 * xv * xv
	case xv < 4:
		return -12 + 10*math.Log10(math.Pow(xv, -1.5)+s.kv)
	case xv < 90/s.theta3:
		return -lambdaKv - c*math.Log10(xv)
	default:
		return s.g180Peak()
	}
}

func (s *f1336sState) g180Average() float64 {
	return -15 + 10*math.Log10(1+8*s.ka) - 15*math.Log10(180/s.theta3)
}

func (s *f1336sState) ghrAverage(xh float64) float64 {
	lambdaKh := 3 * (1 - math.Pow(0.5, -s.kh))
	var g float64
	if xh <= 0.5 {
		g = -12 * xh * xh
	} else {
		g = -12*math.Pow(xh, 2-s.kh) - lambdaKh
	}
	return math.Max(g, s.g180Average())
}

func (s *f1336sState) cAverage() float64 {
	num := math.Pow(180/s.theta3, 1.5) * (math.Pow(4, -1.5) + s.kv)
	return math.Log10(num/(1+8*s.ka)) / math.Log10(22.5/s.theta3)
}

// gvrAverage is the relative vertical pattern, formula (2c3).
func (s *f1336sState) gvrAverage(xv float64) float64 {
	xk := math.Sqrt(1.33 - 0.33*s.kv)
	c := s.cAverage()
	lambdaKv := 12 - c*math.Log10(4) - 10*math.Log10(math.Pow(4, -1.5)+s.kv)
	switch {
	case xv < xk:
		return -12 * xv * xv
	case xv < 4:
		return -15 + 10*math.Log10(math.Pow(xv, -1.5)+s.kv)
	case xv < 90/s.theta3:
		return -lambdaKv - 3 - c*math.Log10(xv)
	default:
		return s.g180Average()
	}
}

// ----- 6-70 GHz model (Recommends 3.2) -----

func (s *f1336sState) gainPeakHigh(phi, theta float64) float64 {
	x := psi(phi, theta) / s.psiAlpha(phi, theta)
	if x < 1 {
		return s.gmax - 12*x*x
	}
	return s.gmax - 12 - 15*math.Log10(x)
}

func (s *f1336sState) gainAverageHigh(phi, theta float64) float64 {
	x := psi(phi, theta) / s.psiAlpha(phi, theta)
	if x < 1.152 {
		return s.gmax - 12*x*x
	}
	return s.gmax - 15 - 15*math.Log10(x)
}

// psi is the total off-boresight angle, formula (2d4).
func psi(phi, theta float64) float64 {
	return degree(math.Acos(clamp1(math.Cos(radian(phi)) * math.Cos(radian(theta)))))
}

// alpha is the direction of the cut through the beam, formula (2d2).
func alpha(phi, theta float64) float64 {
	return degree(math.Atan2(math.Tan(radian(theta)), math.Sin(radian(phi))))
}

// psiAlpha is the equivalent beamwidth along alpha, formula (2d3).
func (s *f1336sState) psiAlpha(phi, theta float64) float64 {
	p := psi(phi, theta)
	if p <= 90 {
		a := radian(alpha(phi, theta))
		return 1 / math.Hypot(math.Cos(a)/s.phi3, math.Sin(a)/s.theta3)
	}
	phi3m := s.phi3m(phi)
	t := radian(theta)
	return 1 / math.Hypot(math.Cos(t)/phi3m, math.Sin(t)/s.theta3)
}

// phi3m is the equivalent azimuth beamwidth beyond the sector edge,
// Recommends 3.2.1/3.2.2.
func (s *f1336sState) phi3m(phi float64) float64 {
	phiTh := s.phi3
	if s.patternType == PatternAverage {
		phiTh = 1.152 * s.phi3
	}
	abs := math.Abs(phi)
	if abs <= phiTh {
		return s.phi3
	}
	x := radian((abs - phiTh) / (180 - phiTh) * 90)
	return 1 / math.Hypot(math.Cos(x)/s.phi3, math.Sin(x)/s.theta3)
}

func (m *ITUF1336s) Specs() (*Specification, error) {
	if m.st == nil {
		return nil, errNotSet(pOperFreqMHz)
	}
	st := m.st
	spec := &Specification{
		Name:         "ITU-R F.1336-5 Sectoral",
		Make:         "ITU",
		Frequency:    st.freqRange,
		HWidth:       fmtNum(st.phi3),
		VWidth:       fmtNum(round2(st.theta3)),
		FrontToBack:  notAvailable,
		GainDbi:      st.gmax,
		TiltDeg:      st.tiltDeg,
		Polarization: notAvailable,
		Comment: fmt.Sprintf("Side-lobe: %s/%s, tilting: %s, kp=%v, ka=%v, kh=%v, kv=%v",
			st.patternType, st.perfType, st.tiltType, st.kp, st.ka, st.kh, st.kv),
		Params: m.params.Clone(),
	}
	spec.HPattern = sampleCut(st.gmax, func(a float64) (float64, bool) {
		return st.gainAt(Wrap180To180(a), 0), true
	})
	spec.VPattern = sampleCut(st.gmax, func(a float64) (float64, bool) {
		// the azimuth must point back while the elevation sweep does
		az := 0.0
		if a > 90 && a < 270 {
			az = 180
		}
		return st.gainAt(az, Wrap90To90(a)), true
	})
	return spec, nil
}

func radian(degree float64) float64 { return degree * math.Pi / 180 }

func degree(radian float64) float64 { return radian * 180 / math.Pi }

func clamp1(v float64) float64 {
	return math.Max(-1, math.Min(1, v))
}
