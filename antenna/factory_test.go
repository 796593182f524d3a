package antenna_test

import (
	"testing"

	"github.com/wiless/ituantenna/antenna"
)

func TestFactoryKnownModels(t *testing.T) {
	for _, name := range antenna.Names() {
		m, err := antenna.New(name)
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		if m.Name() != name {
			t.Errorf("New(%q).Name() = %q", name, m.Name())
		}
	}
}

func TestFactoryUnknownModel(t *testing.T) {
	if _, err := antenna.New("ITUX000"); err == nil {
		t.Fatal("want error for unknown model")
	}
}

// Every family reports 361-point deterministic patterns once configured.
func TestAllFamiliesPatternShape(t *testing.T) {
	configs := map[string]antenna.Fields{
		"ITUF699":    {"oper_freq_mhz": 23000, "max_gain_dbi": 40},
		"ITUF1245":   {"oper_freq_mhz": 23000, "calc_opt": antenna.F1245Rec2, "max_gain_dbi": 42},
		"ITUF1336lg": {"oper_freq_mhz": 2000, "max_gain_dbi": 12},
		"ITUF1336o": {"oper_freq_mhz": 2400, "max_gain_dbi": 8,
			"pattern_type": antenna.PatternPeak, "performance_type": antenna.PerformanceTypical,
			"tilt_type": antenna.TiltNone},
		"ITUF1336s": {"oper_freq_mhz": 2600, "max_gain_dbi": 15, "beamwidth_az_deg": 65,
			"pattern_type": antenna.PatternPeak, "performance_type": antenna.PerformanceTypical,
			"tilt_type": antenna.TiltNone},
		"ITUS465": {"d_to_l": 80},
		"ITUS580": {"d_to_l": 100},
	}
	for _, name := range antenna.Names() {
		fields, ok := configs[name]
		if !ok {
			t.Fatalf("no config for %s", name)
		}
		m, err := antenna.New(name)
		if err != nil {
			t.Fatal(err)
		}
		if err := m.SetParams(fields); err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		spec, err := m.Specs()
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		for _, cut := range []antenna.PatternCut{spec.HPattern, spec.VPattern} {
			if len(cut.AngleDeg) != antenna.PatternPoints || len(cut.LossDb) != antenna.PatternPoints {
				t.Errorf("%s: cut lengths %d/%d", name, len(cut.AngleDeg), len(cut.LossDb))
			}
		}
	}
}
