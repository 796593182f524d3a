// Package plot emits Matlab/Octave scripts that draw the horizontal and
// vertical pattern cuts of a specification as polar diagrams.
package plot

import (
	"fmt"
	"math"

	"github.com/wiless/vlib"
	"gonum.org/v1/gonum/floats"

	"github.com/wiless/ituantenna/antenna"
)

// Patterns writes <name>.m with both cuts of spec plotted side by side.
// Undefined samples stay NaN and leave gaps in the curves.
func Patterns(spec *antenna.Specification, name string) error {
	matlab := vlib.NewMatlab(name)
	matlab.Silent = true
	matlab.Json = false

	hgain := gainCut(spec.GainDbi, spec.HPattern)
	vgain := gainCut(spec.GainDbi, spec.VPattern)
	angles := make([]float64, antenna.PatternPoints)
	floats.Span(angles, 0, 2*math.Pi)

	matlab.Export("theta", vlib.VectorF(angles))
	matlab.Export("hgain", hgain)
	matlab.Export("vgain", vgain)

	lo, hi := gainLimits(hgain, vgain)
	matlab.Command(fmt.Sprintf("rlim=[%0.2f %0.2f];", lo, hi))
	matlab.Command("subplot(1,2,1);polar(theta,max(hgain,rlim(1)));title('Horizontal');")
	matlab.Command("subplot(1,2,2);polar(theta,max(vgain,rlim(1)));title('Vertical');")
	matlab.Command(fmt.Sprintf("suptitle('%s');", spec.Name))
	matlab.Close()
	return nil
}

// gainCut converts the stored loss samples back to absolute gain in dBi.
func gainCut(gmax float64, cut antenna.PatternCut) vlib.VectorF {
	g := vlib.NewVectorF(len(cut.LossDb))
	for i, l := range cut.LossDb {
		g[i] = gmax - l
	}
	return g
}

// gainLimits finds the radial axis range over both cuts, skipping NaN.
func gainLimits(cuts ...vlib.VectorF) (lo, hi float64) {
	var finite []float64
	for _, c := range cuts {
		for _, v := range c {
			if !math.IsNaN(v) {
				finite = append(finite, v)
			}
		}
	}
	if len(finite) == 0 {
		return 0, 1
	}
	return floats.Min(finite), floats.Max(finite)
}
