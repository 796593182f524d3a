package param

import "fmt"

// MissingError reports an absent mandatory parameter, an absent
// dependency-triggered conditional parameter, or a missing gain query key.
type MissingError struct {
	Param string
	// Because and BecauseValue name the triggering dependency for
	// conditional parameters; both are empty otherwise.
	Because      string
	BecauseValue interface{}
}

func (e *MissingError) Error() string {
	if e.Because != "" {
		return fmt.Sprintf("missing required parameter '%s' because '%s' is set to '%v'",
			e.Param, e.Because, e.BecauseValue)
	}
	return fmt.Sprintf("missing required parameter '%s'", e.Param)
}

// TypeError reports a supplied value of the wrong kind.
type TypeError struct {
	Param string
	Want  []Kind
	Got   interface{}
}

func (e *TypeError) Error() string {
	return fmt.Sprintf("'%s' must be of type %v but got %T", e.Param, e.Want, e.Got)
}

// RangeError reports a numeric value outside its inclusive bounds.
type RangeError struct {
	Param    string
	Min, Max float64
	Got      float64
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("'%s' must be in range [%v, %v] but got %v", e.Param, e.Min, e.Max, e.Got)
}

// ChoiceError reports a value outside the allowed set.
type ChoiceError struct {
	Param   string
	Allowed []string
	Got     interface{}
}

func (e *ChoiceError) Error() string {
	return fmt.Sprintf("'%s' must be one of %v but got '%v'", e.Param, e.Allowed, e.Got)
}
