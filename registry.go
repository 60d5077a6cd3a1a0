package flowscale

import (
	"fmt"
	"strings"
)

// A Registry maps kind codes to Scales. A Registry is immutable once
// constructed and may be used concurrently.
type Registry struct {
	scales  map[Kind]Scale
	exposed []Kind
}

// Default is the registry used by ScaleOf and ArgumentOf.
var Default = NewRegistry()

// allKinds lists every implemented kind in code order.
var allKinds = []Kind{Linear, Log, Ln, Arcsinh, Biexp}

// NewRegistry returns a registry holding one Scale per known kind.
//
// Ln and Biexp are available through Scale but are not offered for
// selection by Kinds.
func NewRegistry() *Registry {
	r := &Registry{
		scales:  make(map[Kind]Scale, len(allKinds)),
		exposed: []Kind{Linear, Log, Arcsinh},
	}
	for _, k := range allKinds {
		r.scales[k] = newScale(k)
	}
	return r
}

func newScale(k Kind) Scale {
	switch k {
	case Linear:
		return LinearScale{}
	case Log:
		return LogScale{}
	case Ln:
		return LnScale{}
	case Arcsinh:
		return ArcsinhScale{}
	case Biexp:
		return BiexpScale{}
	default:
		panic(fmt.Sprintf("flowscale: no scale for %s", k))
	}
}

// Kinds returns the kinds offered for selection, in display order.
func (r *Registry) Kinds() []Kind {
	return append([]Kind(nil), r.exposed...)
}

// AllKinds returns every kind r has a Scale for, in code order.
func (r *Registry) AllKinds() []Kind {
	return append([]Kind(nil), allKinds...)
}

// Scale returns the scale of kind k or nil if k is unknown.
func (r *Registry) Scale(k Kind) Scale {
	return r.scales[k]
}

// Label returns the label of k or UnknownLabel.
func (r *Registry) Label(k Kind) string { return Label(k) }

// Description returns the description of k or UnknownDescription.
func (r *Registry) Description(k Kind) string { return Description(k) }

// Argument parses raw into an argument for a scale of kind k.
// The result is nil without error if raw is empty or if k takes no
// argument (this includes unknown kinds).
func (r *Registry) Argument(k Kind, raw string) (*Argument, error) {
	if strings.TrimSpace(raw) == "" || !takesArgument(k) {
		return nil, nil
	}
	arg, err := ParseArgument(raw)
	if err != nil {
		return nil, fmt.Errorf("%s argument: %w", k, err)
	}
	return arg, nil
}

func takesArgument(k Kind) bool {
	return k == Arcsinh || k == Biexp
}

// ScaleOf returns Default.Scale(k).
func ScaleOf(k Kind) Scale { return Default.Scale(k) }

// ArgumentOf returns Default.Argument(k, raw).
func ArgumentOf(k Kind, raw string) (*Argument, error) { return Default.Argument(k, raw) }
