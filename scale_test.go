package flowscale

import (
	"errors"
	"math"
	"strconv"
	"testing"
)

var nan = math.NaN()

var intervallUpdateTests = []struct {
	old  Interval
	x    float64
	want Interval
}{
	{Interval{3, 6}, 4, Interval{3, 6}},
	{Interval{3, 6}, 2, Interval{2, 6}},
	{Interval{3, 6}, 7, Interval{3, 7}},
	{Interval{nan, nan}, nan, Interval{nan, nan}},
	{Interval{nan, nan}, 5, Interval{5, 5}},
	{Interval{5, 5}, nan, Interval{5, 5}},
}

func TestIntervalUpdate(t *testing.T) {
	for i, tc := range intervallUpdateTests {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			got := tc.old
			got.Update(tc.x)
			if !got.Equal(tc.want) {
				t.Errorf("%v update %v = %v, want %v",
					tc.old, tc.x, got, tc.want)
			}
		})
	}
}

func TestIntervalValid(t *testing.T) {
	for _, tc := range []struct {
		i    Interval
		want bool
	}{
		{Interval{1, 2}, true},
		{Interval{2, 2}, false},
		{Interval{3, 2}, false},
		{Interval{nan, 2}, false},
		{UnsetInterval(), false},
	} {
		if got := tc.i.Valid(); got != tc.want {
			t.Errorf("%v.Valid() = %t, want %t", tc.i, got, tc.want)
		}
	}
}

func TestParseArgument(t *testing.T) {
	for _, tc := range []struct {
		in   string
		want float64
		err  bool
	}{
		{"200", 200, false},
		{" 150.5 ", 150.5, false},
		{"1e3", 1000, false},
		{"", 0, true},
		{"abc", 0, true},
		{"0", 0, true},
		{"-5", 0, true},
		{"NaN", 0, true},
		{"Inf", 0, true},
	} {
		arg, err := ParseArgument(tc.in)
		if tc.err {
			if err == nil || !errors.Is(err, ErrInvalidArgument) {
				t.Errorf("ParseArgument(%q) = %v, %v, want ErrInvalidArgument", tc.in, arg, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseArgument(%q): unexpected error %v", tc.in, err)
			continue
		}
		if arg.Width() != tc.want {
			t.Errorf("ParseArgument(%q).Width() = %g, want %g", tc.in, arg.Width(), tc.want)
		}
	}
}

func TestNilArgument(t *testing.T) {
	var a *Argument
	if !math.IsNaN(a.Width()) {
		t.Errorf("nil Width() = %g, want NaN", a.Width())
	}
	if got := a.String(); got != "<nil>" {
		t.Errorf("nil String() = %q", got)
	}
	if got := widthOr(a, 7); got != 7 {
		t.Errorf("widthOr(nil, 7) = %g", got)
	}
}
