package param_test

import (
	"errors"
	"testing"

	"github.com/wiless/ituantenna/param"
)

var testSchema = param.Schema{
	{Name: "freq", Category: param.Mandatory,
		Kinds: []param.Kind{param.Number}, Range: &param.Range{Min: 100, Max: 86000}},
	{Name: "mode", Category: param.Mandatory,
		Kinds: []param.Kind{param.String}, Allowed: []string{"peak", "average"}},
	{Name: "diameter", Category: param.Optional,
		Kinds: []param.Kind{param.Number}, Range: &param.Range{Min: 0.001, Max: 99.999}},
	{Name: "tilt", Category: param.Conditional,
		Kinds: []param.Kind{param.Number}, Range: &param.Range{Min: -89.9, Max: 89.9},
		DependsOn: []param.Dependency{{Param: "mode", Op: param.Ne, Value: "peak"}}},
	{Name: "ratio", Category: param.Optional,
		Kinds: []param.Kind{param.Float}, Range: &param.Range{Min: 0.001, Max: 0.999}},
}

func valid() map[string]interface{} {
	return map[string]interface{}{"freq": 23000, "mode": "peak"}
}

func TestValidateMinimal(t *testing.T) {
	set, err := testSchema.Validate(valid())
	if err != nil {
		t.Fatal(err)
	}
	if len(set) != 2 {
		t.Errorf("got %d keys, want 2: %v", len(set), set)
	}
	if f, ok := set.Float("freq"); !ok || f != 23000 {
		t.Errorf("freq = %v,%v", f, ok)
	}
}

func TestValidateMissingMandatory(t *testing.T) {
	for _, name := range []string{"freq", "mode"} {
		raw := valid()
		delete(raw, name)
		_, err := testSchema.Validate(raw)
		var miss *param.MissingError
		if !errors.As(err, &miss) {
			t.Fatalf("omitting %s: got %v, want MissingError", name, err)
		}
		if miss.Param != name {
			t.Errorf("omitting %s: error names %s", name, miss.Param)
		}
	}
}

func TestValidateTypeMismatch(t *testing.T) {
	raw := valid()
	raw["freq"] = "5000"
	_, err := testSchema.Validate(raw)
	var te *param.TypeError
	if !errors.As(err, &te) {
		t.Fatalf("got %v, want TypeError", err)
	}
	if te.Param != "freq" {
		t.Errorf("error names %s, want freq", te.Param)
	}
}

func TestValidateOutOfRange(t *testing.T) {
	raw := valid()
	raw["freq"] = 50
	_, err := testSchema.Validate(raw)
	var re *param.RangeError
	if !errors.As(err, &re) {
		t.Fatalf("got %v, want RangeError", err)
	}
	if re.Got != 50 || re.Min != 100 {
		t.Errorf("got %+v", re)
	}
}

func TestValidateInvalidChoice(t *testing.T) {
	raw := valid()
	raw["mode"] = "sharp"
	_, err := testSchema.Validate(raw)
	var ce *param.ChoiceError
	if !errors.As(err, &ce) {
		t.Fatalf("got %v, want ChoiceError", err)
	}
}

func TestValidateConditional(t *testing.T) {
	raw := valid()
	raw["mode"] = "average" // triggers the tilt dependency
	_, err := testSchema.Validate(raw)
	var miss *param.MissingError
	if !errors.As(err, &miss) {
		t.Fatalf("got %v, want MissingError", err)
	}
	if miss.Param != "tilt" || miss.Because != "mode" {
		t.Errorf("got %+v", miss)
	}

	raw["tilt"] = -5
	set, err := testSchema.Validate(raw)
	if err != nil {
		t.Fatal(err)
	}
	if f, ok := set.Float("tilt"); !ok || f != -5 {
		t.Errorf("tilt = %v,%v", f, ok)
	}
}

func TestValidateConditionalNotTriggered(t *testing.T) {
	// mode=peak leaves tilt optional
	set, err := testSchema.Validate(valid())
	if err != nil {
		t.Fatal(err)
	}
	if set.Has("tilt") {
		t.Error("tilt present without being supplied")
	}
}

func TestValidateFloatKind(t *testing.T) {
	raw := valid()
	raw["ratio"] = 1 // int where a float is required
	_, err := testSchema.Validate(raw)
	var te *param.TypeError
	if !errors.As(err, &te) {
		t.Fatalf("got %v, want TypeError", err)
	}

	raw["ratio"] = 0.5
	if _, err := testSchema.Validate(raw); err != nil {
		t.Fatal(err)
	}
}

func TestValidateDropsUnknownKeys(t *testing.T) {
	raw := valid()
	raw["colour"] = "red"
	set, err := testSchema.Validate(raw)
	if err != nil {
		t.Fatal(err)
	}
	if set.Has("colour") {
		t.Error("unknown key kept in validated set")
	}
}

func TestValidateAtomic(t *testing.T) {
	raw := valid()
	raw["diameter"] = 200.0 // out of range, after freq/mode pass
	set, err := testSchema.Validate(raw)
	if err == nil {
		t.Fatal("want error")
	}
	if set != nil {
		t.Errorf("partial set returned on error: %v", set)
	}
}
