package antenna

import (
	"math"
	"strconv"

	"github.com/wiless/vlib"

	"github.com/wiless/ituantenna/param"
)

// PatternPoints is the number of sampled directions per plane: integer
// degrees 0..360 inclusive.
const PatternPoints = 361

// PatternCut is one sampled plane of the radiation pattern. LossDb holds
// the attenuation relative to the pattern's reported maximum gain, rounded
// to 2 decimals; NaN marks directions where the Recommendation defines no
// gain. Consumers must not substitute values for NaN samples.
type PatternCut struct {
	AngleDeg vlib.VectorF
	LossDb   vlib.VectorF
}

// Specification is the full antenna description handed to display and
// export collaborators. The frontmatter follows the MSI Planet file fields;
// entries the model cannot fill carry the literal "n/a". Params is the
// validated parameter set the pattern was produced from.
type Specification struct {
	Name         string
	Make         string
	Frequency    string
	HWidth       string
	VWidth       string
	FrontToBack  string
	GainDbi      float64
	TiltDeg      float64
	Polarization string
	Comment      string
	HPattern     PatternCut
	VPattern     PatternCut
	Params       param.Set
}

const notAvailable = "n/a"

// patternAngles returns the 0..360 degree sample grid.
func patternAngles() vlib.VectorF {
	a := vlib.NewVectorF(PatternPoints)
	for i := 0; i < PatternPoints; i++ {
		a[i] = float64(i)
	}
	return a
}

// sampleCut evaluates gain at every integer degree and stores the loss
// relative to gmax. An undefined gain sample stays NaN in the output.
func sampleCut(gmax float64, gain func(angleDeg float64) (float64, bool)) PatternCut {
	loss := vlib.NewVectorF(PatternPoints)
	for i := 0; i < PatternPoints; i++ {
		g, ok := gain(float64(i))
		if !ok {
			loss[i] = math.NaN()
			continue
		}
		loss[i] = round2(gmax - g)
	}
	return PatternCut{AngleDeg: patternAngles(), LossDb: loss}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// fmtNum renders frontmatter numbers the compact way the MSI files expect.
func fmtNum(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
