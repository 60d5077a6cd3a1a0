package flowscale

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownKind is returned when a name or code does not denote a Kind.
var ErrUnknownKind = errors.New("flowscale: unknown scale kind")

// Kind selects one of the handful known scales. The numeric values are
// stored in settings and must not change.
type Kind int

const (
	Linear  Kind = 1
	Log     Kind = 2
	Ln      Kind = 3
	Arcsinh Kind = 4
	Biexp   Kind = 5
)

// Sentinels returned by Label and Description for unknown kinds.
const (
	UnknownLabel       = "Unknown"
	UnknownDescription = "Error"
)

var kindInfo = map[Kind]struct {
	name, label, description string
}{
	Linear:  {"linear", "Linear", "Linear scale, values are displayed unchanged"},
	Log:     {"log", "Log", "Decimal logarithmic scale, for positive values only"},
	Ln:      {"ln", "Ln", "Natural logarithmic scale, for positive values only"},
	Arcsinh: {"arcsinh", "Arcsinh", "Inverse hyperbolic sine scale, linear around zero"},
	Biexp:   {"biexp", "Biexponential", "Symmetric logarithmic scale with a linear region around zero"},
}

// Valid reports whether k is a known kind.
func (k Kind) Valid() bool {
	_, ok := kindInfo[k]
	return ok
}

// String returns the short name of k.
func (k Kind) String() string {
	if info, ok := kindInfo[k]; ok {
		return info.name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Label returns a human readable label for k or UnknownLabel.
func Label(k Kind) string {
	if info, ok := kindInfo[k]; ok {
		return info.label
	}
	return UnknownLabel
}

// Description returns a one sentence description of k or UnknownDescription.
func Description(k Kind) string {
	if info, ok := kindInfo[k]; ok {
		return info.description
	}
	return UnknownDescription
}

// ParseKind looks up the kind whose short name or label is s.
// Case is ignored.
func ParseKind(s string) (Kind, error) {
	s = strings.TrimSpace(s)
	for k, info := range kindInfo {
		if strings.EqualFold(s, info.name) || strings.EqualFold(s, info.label) {
			return k, nil
		}
	}
	return 0, fmt.Errorf("%w %q", ErrUnknownKind, s)
}
