package export

import (
	"bufio"
	"fmt"
	"os"

	"github.com/wiless/ituantenna/antenna"
)

// MSI writes the specification in MSI Planet format as read by planning
// tools. The pattern sections carry 360 points each; the duplicate sample
// at 360 degrees is dropped.
type MSI struct{}

func (MSI) Export(spec *antenna.Specification, filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()

	doc := newDocument(spec)
	w := bufio.NewWriter(f)
	fmt.Fprintf(w, "NAME %s\n", doc.Name)
	fmt.Fprintf(w, "MAKE %s\n", doc.Make)
	fmt.Fprintf(w, "FREQUENCY %s MHz\n", doc.Frequency)
	fmt.Fprintf(w, "H_WIDTH %s Deg.\n", doc.HWidth)
	fmt.Fprintf(w, "V_WIDTH %s Deg.\n", doc.VWidth)
	fmt.Fprintf(w, "FRONT_TO_BACK %s dB\n", doc.FrontToBack)
	fmt.Fprintf(w, "GAIN %s dBi\n", formatFloat(doc.Gain))
	fmt.Fprintf(w, "TILT %s Deg.\n", formatFloat(doc.Tilt))
	fmt.Fprintf(w, "POLARIZATION %s\n", doc.Polarization)
	fmt.Fprintf(w, "COMMENT %s\n", doc.Comment)

	fmt.Fprintln(w, "HORIZONTAL 360")
	writeSection(w, doc.HPattern.Phi, doc.HPattern.Loss)
	fmt.Fprintln(w, "VERTICAL 360")
	writeSection(w, doc.VPattern.Theta, doc.VPattern.Loss)
	return w.Flush()
}

func writeSection(w *bufio.Writer, angles []float64, loss []interface{}) {
	for i, a := range angles {
		if a >= 360 {
			continue
		}
		fmt.Fprintf(w, "%s %s\n", formatFloat(a), formatValue(loss[i]))
	}
}
