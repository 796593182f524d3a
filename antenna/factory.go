package antenna

import "fmt"

// New returns a fresh, unconfigured model for the given name. Names match
// the Recommendation identifiers: ITUF699, ITUF1245, ITUF1336lg, ITUF1336o,
// ITUF1336s, ITUS465, ITUS580.
func New(name string) (Model, error) {
	switch name {
	case "ITUF699":
		return NewITUF699(), nil
	case "ITUF1245":
		return NewITUF1245(), nil
	case "ITUF1336lg":
		return NewITUF1336lg(), nil
	case "ITUF1336o":
		return NewITUF1336o(), nil
	case "ITUF1336s":
		return NewITUF1336s(), nil
	case "ITUS465":
		return NewITUS465(), nil
	case "ITUS580":
		return NewITUS580(), nil
	default:
		return nil, fmt.Errorf("unknown antenna model %q", name)
	}
}

// Names lists the supported model identifiers in a stable order.
func Names() []string {
	return []string{"ITUF699", "ITUF1245", "ITUF1336lg", "ITUF1336o",
		"ITUF1336s", "ITUS465", "ITUS580"}
}
