package antenna_test

import (
	"errors"
	"math"
	"testing"

	"github.com/wiless/ituantenna/antenna"
	"github.com/wiless/ituantenna/param"
)

func newF1245(t *testing.T, fields antenna.Fields) antenna.Model {
	t.Helper()
	m := antenna.NewITUF1245()
	if err := m.SetParams(fields); err != nil {
		t.Fatal(err)
	}
	return m
}

func TestF1245MandatoryCalcOpt(t *testing.T) {
	m := antenna.NewITUF1245()
	err := m.SetParams(antenna.Fields{"oper_freq_mhz": 23000, "max_gain_dbi": 42})
	var miss *param.MissingError
	if !errors.As(err, &miss) || miss.Param != "calc_opt" {
		t.Fatalf("got %v, want MissingError for calc_opt", err)
	}
}

func TestF1245InvalidCalcOpt(t *testing.T) {
	m := antenna.NewITUF1245()
	err := m.SetParams(antenna.Fields{
		"oper_freq_mhz": 23000, "max_gain_dbi": 42, "calc_opt": "Rec. 9"})
	var ce *param.ChoiceError
	if !errors.As(err, &ce) {
		t.Fatalf("got %v, want ChoiceError", err)
	}
}

func TestF1245RequiresGainOrDiameter(t *testing.T) {
	m := antenna.NewITUF1245()
	err := m.SetParams(antenna.Fields{"oper_freq_mhz": 23000, "calc_opt": antenna.F1245Rec2})
	var ce *antenna.ConsistencyError
	if !errors.As(err, &ce) {
		t.Fatalf("got %v, want ConsistencyError", err)
	}
}

func TestF1245Rec2Envelope(t *testing.T) {
	// 50 dBi puts D/lambda above 100, selecting the large-antenna envelope
	m := newF1245(t, antenna.Fields{
		"oper_freq_mhz": 23000, "calc_opt": antenna.F1245Rec2, "max_gain_dbi": 50})
	if g := gainAt(t, m, 0); g != 50 {
		t.Errorf("boresight gain = %v", g)
	}
	// Far side lobes: 29 - 25 log10(phi), then the -13 floor
	if g := gainAt(t, m, 40); math.Abs(g-(29-25*math.Log10(40))) > 1e-9 {
		t.Errorf("gain(40) = %v", g)
	}
	if g := gainAt(t, m, 100); g != -13 {
		t.Errorf("gain(100) = %v, want -13 floor", g)
	}
}

func TestF1245Rec2Continuity(t *testing.T) {
	m := newF1245(t, antenna.Fields{
		"oper_freq_mhz": 23000, "calc_opt": antenna.F1245Rec2, "diameter_m": 2.0})
	dToL := 2.0 / (299.792458 / 23000)
	gmax := 20*math.Log10(dToL) + 7.7
	g1 := 2 + 15*math.Log10(dToL)
	phiM := 20 / dToL * math.Sqrt(gmax-g1)

	const eps = 1e-6
	// The main lobe meets G1 at phi_m exactly; the 48 deg splice rounds to
	// the floor within 0.05 dB.
	for _, edge := range []float64{phiM, 48} {
		below := gainAt(t, m, edge-eps)
		above := gainAt(t, m, edge)
		if d := math.Abs(below - above); d > 0.1 {
			t.Errorf("step of %.3f dB at %.3f deg", d, edge)
		}
	}
}

func TestF1245Rec3Modulation(t *testing.T) {
	m := newF1245(t, antenna.Fields{
		"oper_freq_mhz": 23000, "calc_opt": antenna.F1245Rec3, "max_gain_dbi": 42})
	rec2 := newF1245(t, antenna.Fields{
		"oper_freq_mhz": 23000, "calc_opt": antenna.F1245Rec2, "max_gain_dbi": 42})

	if g := gainAt(t, m, 0); g != 42 {
		t.Errorf("boresight gain = %v", g)
	}
	// The modulated envelope of Recommends 3 stays within 10 dB of the
	// average envelope of Recommends 2 plus its 3 dB offset out to 48 deg,
	// and must differ somewhere: the two options are distinct curves.
	same := true
	for phi := 1.0; phi < 48; phi++ {
		if gainAt(t, m, phi) != gainAt(t, rec2, phi) {
			same = false
			break
		}
	}
	if same {
		t.Error("Rec. 3 pattern identical to Rec. 2")
	}
}

func TestF1245GainBelowG1(t *testing.T) {
	m := antenna.NewITUF1245()
	// D/lambda ~ 767 makes G1 ~ 45.2 dBi, above the requested 20 dBi
	err := m.SetParams(antenna.Fields{
		"oper_freq_mhz": 23000, "calc_opt": antenna.F1245Rec2,
		"diameter_m": 10.0, "max_gain_dbi": 20})
	var ce *antenna.ConsistencyError
	if !errors.As(err, &ce) {
		t.Fatalf("got %v, want ConsistencyError", err)
	}
}

func TestF1245Specs(t *testing.T) {
	m := newF1245(t, antenna.Fields{
		"oper_freq_mhz": 23000, "calc_opt": antenna.F1245Rec2, "max_gain_dbi": 42})
	spec, err := m.Specs()
	if err != nil {
		t.Fatal(err)
	}
	if len(spec.HPattern.LossDb) != antenna.PatternPoints {
		t.Fatalf("pattern length %d", len(spec.HPattern.LossDb))
	}
	if spec.FrontToBack == "n/a" || spec.FrontToBack == "" {
		t.Errorf("front-to-back missing: %q", spec.FrontToBack)
	}
	if spec.Name != "ITU-R F.1245-3" {
		t.Errorf("name = %q", spec.Name)
	}
}
