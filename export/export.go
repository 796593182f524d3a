// Package export writes antenna pattern specifications to CSV, JSON, YAML
// and MSI Planet files. Undefined pattern samples are carried as the
// literal "n/a" in every format.
package export

import (
	"fmt"
	"math"

	"github.com/wiless/ituantenna/antenna"
)

// Exporter writes one specification to the named file.
type Exporter interface {
	Export(spec *antenna.Specification, filename string) error
}

// ForFormat maps a format name (csv, json, yaml, msi) to its exporter.
func ForFormat(format string) (Exporter, error) {
	switch format {
	case "csv":
		return CSV{}, nil
	case "json":
		return JSON{}, nil
	case "yaml":
		return YAML{}, nil
	case "msi":
		return MSI{}, nil
	default:
		return nil, fmt.Errorf("unknown export format %q", format)
	}
}

// document is the serializable view of a Specification shared by the JSON
// and YAML exporters. Field order matches the MSI frontmatter.
type document struct {
	Name         string      `json:"name" yaml:"name"`
	Make         string      `json:"make" yaml:"make"`
	Frequency    string      `json:"frequency" yaml:"frequency"`
	HWidth       string      `json:"h_width" yaml:"h_width"`
	VWidth       string      `json:"v_width" yaml:"v_width"`
	FrontToBack  string      `json:"front_to_back" yaml:"front_to_back"`
	Gain         float64     `json:"gain" yaml:"gain"`
	Tilt         float64     `json:"tilt" yaml:"tilt"`
	Polarization string      `json:"polarization" yaml:"polarization"`
	Comment      string      `json:"comment" yaml:"comment"`
	HPattern     hPatternDoc `json:"h_pattern_datapoint" yaml:"h_pattern_datapoint"`
	VPattern     vPatternDoc `json:"v_pattern_datapoint" yaml:"v_pattern_datapoint"`
}

type hPatternDoc struct {
	Phi  []float64     `json:"phi" yaml:"phi"`
	Loss []interface{} `json:"loss" yaml:"loss"`
}

type vPatternDoc struct {
	Theta []float64     `json:"theta" yaml:"theta"`
	Loss  []interface{} `json:"loss" yaml:"loss"`
}

func newDocument(spec *antenna.Specification) document {
	return document{
		Name:         spec.Name,
		Make:         spec.Make,
		Frequency:    spec.Frequency,
		HWidth:       spec.HWidth,
		VWidth:       spec.VWidth,
		FrontToBack:  spec.FrontToBack,
		Gain:         spec.GainDbi,
		Tilt:         spec.TiltDeg,
		Polarization: spec.Polarization,
		Comment:      spec.Comment,
		HPattern:     hPatternDoc{Phi: spec.HPattern.AngleDeg, Loss: lossValues(spec.HPattern)},
		VPattern:     vPatternDoc{Theta: spec.VPattern.AngleDeg, Loss: lossValues(spec.VPattern)},
	}
}

// lossValues converts a cut's loss vector to serializable values, mapping
// NaN to "n/a". NaN itself is not representable in JSON.
func lossValues(cut antenna.PatternCut) []interface{} {
	out := make([]interface{}, len(cut.LossDb))
	for i, v := range cut.LossDb {
		if math.IsNaN(v) {
			out[i] = "n/a"
		} else {
			out[i] = v
		}
	}
	return out
}
