package export_test

import (
	"bufio"
	"encoding/json"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/wiless/ituantenna/antenna"
	"github.com/wiless/ituantenna/export"
)

// testSpec has undefined samples near boresight, exercising the "n/a"
// substitution in every format.
func testSpec(t *testing.T) *antenna.Specification {
	t.Helper()
	m := antenna.NewITUS465()
	if err := m.SetParams(antenna.Fields{"d_to_l": 80}); err != nil {
		t.Fatal(err)
	}
	spec, err := m.Specs()
	if err != nil {
		t.Fatal(err)
	}
	return spec
}

func tempFile(t *testing.T, name string) string {
	t.Helper()
	dir, err := ioutil.TempDir("", "export")
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.RemoveAll(dir) })
	return filepath.Join(dir, name)
}

func TestForFormat(t *testing.T) {
	for _, f := range []string{"csv", "json", "yaml", "msi"} {
		if _, err := export.ForFormat(f); err != nil {
			t.Errorf("%s: %v", f, err)
		}
	}
	if _, err := export.ForFormat("xml"); err == nil {
		t.Error("want error for unknown format")
	}
}

func TestJSONExport(t *testing.T) {
	fname := tempFile(t, "pattern.json")
	if err := (export.JSON{}).Export(testSpec(t), fname); err != nil {
		t.Fatal(err)
	}
	b, err := ioutil.ReadFile(fname)
	if err != nil {
		t.Fatal(err)
	}
	var doc struct {
		Name     string `json:"name"`
		HPattern struct {
			Phi  []float64     `json:"phi"`
			Loss []interface{} `json:"loss"`
		} `json:"h_pattern_datapoint"`
	}
	if err := json.Unmarshal(b, &doc); err != nil {
		t.Fatal(err)
	}
	if doc.Name != "ITU-R S.465-6" {
		t.Errorf("name = %q", doc.Name)
	}
	if len(doc.HPattern.Loss) != antenna.PatternPoints {
		t.Fatalf("loss length %d", len(doc.HPattern.Loss))
	}
	if doc.HPattern.Loss[0] != "n/a" {
		t.Errorf("loss[0] = %v, want n/a", doc.HPattern.Loss[0])
	}
	if _, ok := doc.HPattern.Loss[90].(float64); !ok {
		t.Errorf("loss[90] = %v, want a number", doc.HPattern.Loss[90])
	}
}

func TestYAMLExport(t *testing.T) {
	fname := tempFile(t, "pattern.yaml")
	if err := (export.YAML{}).Export(testSpec(t), fname); err != nil {
		t.Fatal(err)
	}
	b, err := ioutil.ReadFile(fname)
	if err != nil {
		t.Fatal(err)
	}
	var doc map[string]interface{}
	if err := yaml.Unmarshal(b, &doc); err != nil {
		t.Fatal(err)
	}
	if doc["name"] != "ITU-R S.465-6" {
		t.Errorf("name = %v", doc["name"])
	}
	if doc["frequency"] != "n/a" {
		t.Errorf("frequency = %v", doc["frequency"])
	}
}

func TestCSVExport(t *testing.T) {
	fname := tempFile(t, "pattern.csv")
	if err := (export.CSV{}).Export(testSpec(t), fname); err != nil {
		t.Fatal(err)
	}
	b, err := ioutil.ReadFile(fname)
	if err != nil {
		t.Fatal(err)
	}
	content := string(b)
	for _, key := range []string{"name,ITU-R S.465-6", "h_pattern_datapoint.phi",
		"h_pattern_datapoint.loss", "v_pattern_datapoint.theta"} {
		if !strings.Contains(content, key) {
			t.Errorf("missing %q", key)
		}
	}
	if !strings.Contains(content, "n/a") {
		t.Error("undefined samples not rendered as n/a")
	}
}

func TestMSIExport(t *testing.T) {
	fname := tempFile(t, "pattern.msi")
	if err := (export.MSI{}).Export(testSpec(t), fname); err != nil {
		t.Fatal(err)
	}
	f, err := os.Open(fname)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	var lines []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		t.Fatal(err)
	}

	if !strings.HasPrefix(lines[0], "NAME ") {
		t.Errorf("first line %q", lines[0])
	}
	var hAt, vAt int
	for i, l := range lines {
		if l == "HORIZONTAL 360" {
			hAt = i
		}
		if l == "VERTICAL 360" {
			vAt = i
		}
	}
	if hAt == 0 || vAt == 0 {
		t.Fatal("missing section headers")
	}
	// 360 points per section: the duplicate 360 deg sample is dropped
	if n := vAt - hAt - 1; n != 360 {
		t.Errorf("horizontal section has %d points", n)
	}
	if n := len(lines) - vAt - 1; n != 360 {
		t.Errorf("vertical section has %d points", n)
	}
	if !strings.HasPrefix(lines[hAt+1], "0 ") {
		t.Errorf("first pattern line %q", lines[hAt+1])
	}
}
