// Package antenna implements the reference radiation-pattern models of
// ITU-R Recommendations F.699, F.1245, F.1336 (low-gain, omnidirectional,
// sectoral), S.465 and S.580 for spectrum-sharing and interference studies.
package antenna

import (
	"fmt"

	"github.com/wiless/ituantenna/param"
)

// Fields carries keyword style arguments to SetParams and Gain.
type Fields map[string]interface{}

// Model is the contract every antenna family implements.
//
// SetParams validates raw input against the family schema, derives the
// dependent parameters and commits both atomically; on error the previous
// state is untouched. Gain reports the antenna gain in dBi for the
// family-specific direction keys; defined=false with a nil error marks a
// direction the governing Recommendation leaves undefined. Specs recomputes
// and returns the full pattern specification; it never serves stale data.
type Model interface {
	Name() string
	SetParams(raw Fields) error
	Params() param.Set
	Gain(dir Fields) (dbi float64, defined bool, err error)
	Specs() (*Specification, error)
}

// ConsistencyError reports a cross-parameter requirement that the static
// schema cannot express, raised from a family's derive hook.
type ConsistencyError struct {
	Model string
	Msg   string
}

func (e *ConsistencyError) Error() string {
	return fmt.Sprintf("%s: %s", e.Model, e.Msg)
}

func inconsistent(model, format string, args ...interface{}) error {
	return &ConsistencyError{Model: model, Msg: fmt.Sprintf(format, args...)}
}

// number extracts a required numeric gain-query key from dir.
func (f Fields) number(key string) (float64, error) {
	v, ok := f[key]
	if !ok {
		return 0, &param.MissingError{Param: key}
	}
	switch n := v.(type) {
	case float64:
		return n, nil
	case float32:
		return float64(n), nil
	case int:
		return float64(n), nil
	case int64:
		return float64(n), nil
	}
	return 0, &param.TypeError{Param: key, Want: []param.Kind{param.Number}, Got: v}
}

// errNotSet is the failure returned by gain and pattern queries invoked
// before any successful SetParams. It belongs to the missing-parameter
// class: the named parameter is the family's leading mandatory one.
func errNotSet(firstParam string) error {
	return &param.MissingError{Param: firstParam}
}

// Wrap0To180 folds any angle in degrees onto the off-axis range [0, 180].
func Wrap0To180(degree float64) float64 {
	if degree >= 0 && degree <= 180 {
		return degree
	}
	if degree < 0 {
		degree = -degree
	}
	if degree >= 360 {
		degree = modDeg(degree)
	}
	if degree > 180 {
		degree = 360 - degree
	}
	return degree
}

// Wrap180To180 folds any angle in degrees onto the azimuth range (-180, 180].
func Wrap180To180(degree float64) float64 {
	if degree >= -180 && degree <= 180 {
		return degree
	}
	degree = modDeg(degree)
	if degree > 180 {
		degree -= 360
	}
	return degree
}

// Wrap90To90 folds any angle in degrees onto the elevation range [-90, 90]
// by mirroring across the zenith and nadir.
func Wrap90To90(degree float64) float64 {
	for degree > 90 || degree < -90 {
		if degree > 90 {
			degree = 180 - degree
		} else {
			degree = -180 - degree
		}
	}
	return degree
}

// modDeg wraps onto [0, 360).
func modDeg(degree float64) float64 {
	degree -= 360 * float64(int(degree/360))
	if degree < 0 {
		degree += 360
	}
	return degree
}

// wavelengthM is the free-space wavelength in metres for a frequency in MHz.
func wavelengthM(freqMHz float64) float64 {
	return 299.792458 / freqMHz
}
