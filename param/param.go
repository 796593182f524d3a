// Package param implements the declarative parameter tables used by the
// antenna models and the generic validator that turns caller input into a
// consistent parameter set.
package param

// Category tells how a schema entry is enforced.
type Category int

const (
	Mandatory Category = iota
	Optional
	Conditional
)

// Kind is a coarse value type accepted by a rule.
type Kind int

const (
	// Number accepts ints and floats.
	Number Kind = iota
	// Float accepts floats only.
	Float
	// String accepts strings.
	String
)

func (k Kind) String() string {
	switch k {
	case Number:
		return "number"
	case Float:
		return "float"
	case String:
		return "string"
	}
	return "unknown"
}

// Op is the comparator of a Dependency. Dependencies stay declarative so
// schemas remain inspectable and serializable.
type Op int

const (
	Eq Op = iota
	Ne
	Gt
)

// Dependency makes a Conditional rule required when the named parameter's
// raw value satisfies the comparator.
type Dependency struct {
	Param string
	Op    Op
	Value interface{}
}

// Range is an inclusive numeric bound.
type Range struct {
	Min, Max float64
}

// Rule describes a single accepted parameter.
type Rule struct {
	Name      string
	Category  Category
	Kinds     []Kind
	Range     *Range
	Allowed   []string
	DependsOn []Dependency
}

// Schema is an ordered rule list. Order only fixes which error is reported
// first; it has no effect on the accepted sets.
type Schema []Rule

// Set is a validated parameter mapping. It is always built fresh by
// Validate and never mutated afterwards.
type Set map[string]interface{}

// Float returns the numeric value stored under name, or (0,false) if the
// parameter is absent.
func (s Set) Float(name string) (float64, bool) {
	v, ok := s[name]
	if !ok {
		return 0, false
	}
	return numeric(v)
}

// Str returns the string value stored under name, or ("",false) if absent.
func (s Set) Str(name string) (string, bool) {
	v, ok := s[name]
	if !ok {
		return "", false
	}
	str, ok := v.(string)
	return str, ok
}

// Has reports whether the parameter was supplied.
func (s Set) Has(name string) bool {
	_, ok := s[name]
	return ok
}

// Clone returns a copy of the set, used to hand it out without aliasing the
// model's own state.
func (s Set) Clone() Set {
	out := make(Set, len(s))
	for k, v := range s {
		out[k] = v
	}
	return out
}

func numeric(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	}
	return 0, false
}

func isFloat(v interface{}) bool {
	switch v.(type) {
	case float64, float32:
		return true
	}
	return false
}

func kindOK(kinds []Kind, v interface{}) bool {
	for _, k := range kinds {
		switch k {
		case Number:
			if _, ok := numeric(v); ok {
				return true
			}
		case Float:
			if isFloat(v) {
				return true
			}
		case String:
			if _, ok := v.(string); ok {
				return true
			}
		}
	}
	return false
}

func (d Dependency) satisfied(raw map[string]interface{}) bool {
	v, ok := raw[d.Param]
	if !ok {
		return false
	}
	switch d.Op {
	case Eq:
		return equalValue(v, d.Value)
	case Ne:
		return !equalValue(v, d.Value)
	case Gt:
		a, aok := numeric(v)
		b, bok := numeric(d.Value)
		return aok && bok && a > b
	}
	return false
}

func equalValue(a, b interface{}) bool {
	if an, ok := numeric(a); ok {
		if bn, ok := numeric(b); ok {
			return an == bn
		}
		return false
	}
	return a == b
}
