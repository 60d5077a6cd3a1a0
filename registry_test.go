package flowscale

import (
	"errors"
	"reflect"
	"testing"
)

func TestKinds(t *testing.T) {
	r := NewRegistry()
	if got, want := r.Kinds(), []Kind{Linear, Log, Arcsinh}; !reflect.DeepEqual(got, want) {
		t.Errorf("Kinds() = %v, want %v", got, want)
	}
	if got, want := r.AllKinds(), []Kind{Linear, Log, Ln, Arcsinh, Biexp}; !reflect.DeepEqual(got, want) {
		t.Errorf("AllKinds() = %v, want %v", got, want)
	}

	// Callers must not be able to modify the registry.
	r.Kinds()[0] = Biexp
	if r.Kinds()[0] != Linear {
		t.Errorf("Kinds() shares its backing array")
	}
}

func TestScale(t *testing.T) {
	r := NewRegistry()
	for _, k := range r.AllKinds() {
		s := r.Scale(k)
		if s == nil {
			t.Errorf("Scale(%s) = nil", k)
			continue
		}
		if s.Kind() != k {
			t.Errorf("Scale(%s).Kind() = %s", k, s.Kind())
		}
		if s != r.Scale(k) {
			t.Errorf("Scale(%s) is not a singleton", k)
		}
	}
	for _, k := range []Kind{0, -1, 6, 99} {
		if s := r.Scale(k); s != nil {
			t.Errorf("Scale(%d) = %v, want nil", k, s)
		}
	}
	if ScaleOf(Log) != (LogScale{}) {
		t.Errorf("ScaleOf(Log) = %v", ScaleOf(Log))
	}
}

func TestRegistryArgument(t *testing.T) {
	r := NewRegistry()
	for _, tc := range []struct {
		kind  Kind
		raw   string
		width float64 // 0 means nil argument expected
		err   bool
	}{
		{Arcsinh, "", 0, false},
		{Arcsinh, "   ", 0, false},
		{Arcsinh, "200", 200, false},
		{Biexp, "50", 50, false},
		{Linear, "200", 0, false},
		{Log, "200", 0, false},
		{Ln, "200", 0, false},
		{Kind(42), "200", 0, false},
		{Linear, "garbage", 0, false},
		{Arcsinh, "garbage", 0, true},
		{Biexp, "-1", 0, true},
	} {
		arg, err := r.Argument(tc.kind, tc.raw)
		switch {
		case tc.err:
			if !errors.Is(err, ErrInvalidArgument) {
				t.Errorf("Argument(%s, %q) error = %v, want ErrInvalidArgument", tc.kind, tc.raw, err)
			}
		case err != nil:
			t.Errorf("Argument(%s, %q): unexpected error %v", tc.kind, tc.raw, err)
		case tc.width == 0 && arg != nil:
			t.Errorf("Argument(%s, %q) = %s, want nil", tc.kind, tc.raw, arg)
		case tc.width != 0 && (arg == nil || arg.Width() != tc.width):
			t.Errorf("Argument(%s, %q) = %s, want %g", tc.kind, tc.raw, arg, tc.width)
		}
	}

	if arg, err := ArgumentOf(Arcsinh, "150"); err != nil || arg.Width() != 150 {
		t.Errorf("ArgumentOf(Arcsinh, \"150\") = %s, %v", arg, err)
	}
}

func TestLabelAndDescription(t *testing.T) {
	r := NewRegistry()
	for _, k := range r.AllKinds() {
		if l := r.Label(k); l == "" || l == UnknownLabel {
			t.Errorf("Label(%s) = %q", k, l)
		}
		if d := r.Description(k); d == "" || d == UnknownDescription {
			t.Errorf("Description(%s) = %q", k, d)
		}
	}
	if l := r.Label(0); l != UnknownLabel {
		t.Errorf("Label(0) = %q, want %q", l, UnknownLabel)
	}
	if d := r.Description(17); d != UnknownDescription {
		t.Errorf("Description(17) = %q, want %q", d, UnknownDescription)
	}
}

func TestParseKind(t *testing.T) {
	for _, tc := range []struct {
		in   string
		want Kind
	}{
		{"linear", Linear},
		{"LOG", Log},
		{"ln", Ln},
		{" Arcsinh ", Arcsinh},
		{"biexp", Biexp},
		{"Biexponential", Biexp},
	} {
		got, err := ParseKind(tc.in)
		if err != nil || got != tc.want {
			t.Errorf("ParseKind(%q) = %s, %v, want %s", tc.in, got, err, tc.want)
		}
	}
	if _, err := ParseKind("logicle"); !errors.Is(err, ErrUnknownKind) {
		t.Errorf("ParseKind(\"logicle\") error = %v, want ErrUnknownKind", err)
	}
}

func TestKindString(t *testing.T) {
	if got := Arcsinh.String(); got != "arcsinh" {
		t.Errorf("Arcsinh.String() = %q", got)
	}
	if got := Kind(9).String(); got != "Kind(9)" {
		t.Errorf("Kind(9).String() = %q", got)
	}
	if Kind(0).Valid() || !Ln.Valid() {
		t.Errorf("Valid() wrong for 0 or Ln")
	}
}
