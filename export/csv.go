package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/wiless/ituantenna/antenna"
)

// CSV writes the specification as key,value rows. The pattern arrays are
// flattened to one row per array with the dotted key in the first cell.
type CSV struct{}

func (CSV) Export(spec *antenna.Specification, filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()

	doc := newDocument(spec)
	w := csv.NewWriter(f)
	rows := [][]string{
		{"name", doc.Name},
		{"make", doc.Make},
		{"frequency", doc.Frequency},
		{"h_width", doc.HWidth},
		{"v_width", doc.VWidth},
		{"front_to_back", doc.FrontToBack},
		{"gain", formatFloat(doc.Gain)},
		{"tilt", formatFloat(doc.Tilt)},
		{"polarization", doc.Polarization},
		{"comment", doc.Comment},
		angleRow("h_pattern_datapoint.phi", doc.HPattern.Phi),
		lossRow("h_pattern_datapoint.loss", doc.HPattern.Loss),
		angleRow("v_pattern_datapoint.theta", doc.VPattern.Theta),
		lossRow("v_pattern_datapoint.loss", doc.VPattern.Loss),
	}
	if err := w.WriteAll(rows); err != nil {
		return err
	}
	w.Flush()
	return w.Error()
}

func angleRow(key string, angles []float64) []string {
	row := make([]string, 0, len(angles)+1)
	row = append(row, key)
	for _, a := range angles {
		row = append(row, formatFloat(a))
	}
	return row
}

func lossRow(key string, loss []interface{}) []string {
	row := make([]string, 0, len(loss)+1)
	row = append(row, key)
	for _, v := range loss {
		row = append(row, formatValue(v))
	}
	return row
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func formatValue(v interface{}) string {
	if f, ok := v.(float64); ok {
		return formatFloat(f)
	}
	return fmt.Sprint(v)
}
