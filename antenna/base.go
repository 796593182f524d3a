package antenna

import (
	"math"

	ms "github.com/mitchellh/mapstructure"

	"github.com/wiless/ituantenna/param"
)

// Canonical parameter and gain-query key names shared by the families.
const (
	pOperFreqMHz     = "oper_freq_mhz"
	pDiameterM       = "diameter_m"
	pMaxGainDbi      = "max_gain_dbi"
	pBeamwidthDeg    = "beamwidth_deg"
	pBeamwidthAzDeg  = "beamwidth_az_deg"
	pBeamwidthElDeg  = "beamwidth_el_deg"
	pDToL            = "d_to_l"
	pCalcOpt         = "calc_opt"
	pPatternType     = "pattern_type"
	pPerformanceType = "performance_type"
	pTiltType        = "tilt_type"
	pTiltAngleDeg    = "tilt_angle_deg"
	pK               = "k"
	pKp              = "k_p"
	pKa              = "k_a"
	pKh              = "k_h"
	pKv              = "k_v"

	pOffAxisAngle = "off_axis_angle"
	pAzimuth      = "azimuth"
	pElevation    = "elevation"
)

// Categorical parameter values.
const (
	PatternAverage      = "average"
	PatternPeak         = "peak"
	PerformanceTypical  = "typical"
	PerformanceImproved = "improved"
	TiltNone            = "none"
	TiltMechanical      = "mechanical"
	TiltElectrical      = "electrical"
)

// decodeParams fills a typed per-family parameter struct from a validated
// set. Ints coming through the generic map decode into float fields.
func decodeParams(s param.Set, out interface{}) error {
	dec, err := ms.NewDecoder(&ms.DecoderConfig{
		Result:           out,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return err
	}
	return dec.Decode(map[string]interface{}(s))
}

// D/lambda and gain interconversions of Rec. ITU-R F.699-8 Recommends 3/4,
// shared with F.1245 (NOTE 2 of its Recommends 4).

func dToLFromGmax(gmax float64) float64 {
	return math.Pow(10, (gmax-7.7)/20)
}

func gmaxFromDToL(dToL float64) float64 {
	return 20*math.Log10(dToL) + 7.7
}

func dToLFromBeamwidth(beamwidthDeg float64) float64 {
	return 70 / beamwidthDeg
}

func gmaxFromBeamwidth(beamwidthDeg float64) float64 {
	return 44.5 - 20*math.Log10(beamwidthDeg)
}

func beamwidthFromGmax(gmax float64) float64 {
	return math.Pow(10, (44.5-gmax)/20)
}
