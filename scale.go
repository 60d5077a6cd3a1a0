package flowscale

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"gonum.org/v1/plot"
)

// ----------------------------------------------------------------------------
// Scale

// Scale is a one-dimensional, strictly monotonic transformation between
// raw instrument values and display space.
//
// Scales are stateless: all methods are pure functions and a Scale may
// be shared freely between goroutines.
type Scale interface {
	// Kind returns the kind of the scale.
	Kind() Kind

	// Value transforms the raw value x to display space. Scales which
	// take no argument ignore arg, the others use their default if arg
	// is nil. Log scales return NaN or -Inf for x <= 0.
	Value(x float64, arg *Argument) float64

	// Inverse is the inverse of Value: Inverse(Value(x, arg), arg) == x
	// up to rounding.
	Inverse(y float64, arg *Argument) float64

	// Unbin returns the raw value of bin index bin if numBins bins
	// divide the transformed range [Value(min), Value(max)] evenly.
	// Unbin(0, ...) is min and Unbin(numBins, numBins, ...) is max.
	Unbin(bin, numBins int, min, max float64, arg *Argument) float64

	// CacheKey is a stable identifier of the scale suitable as part of
	// a memoization key.
	CacheKey() string

	// Ticker returns a ticker suitable for an axis using this scale.
	Ticker(arg *Argument) plot.Ticker
}

// unbin implements Scale.Unbin for s by linear interpolation in
// transformed space.
func unbin(s Scale, bin, numBins int, min, max float64, arg *Argument) float64 {
	switch {
	case numBins <= 0:
		return math.NaN()
	case bin == 0:
		return min
	case bin == numBins:
		return max
	}

	f := float64(bin) / float64(numBins)
	lo, hi := s.Value(min, arg), s.Value(max, arg)
	return s.Inverse(lo+f*(hi-lo), arg)
}

// Normalizer adapts a Scale to plot.Normalizer so that it can be used as
// the Scale of a plot.Axis.
type Normalizer struct {
	Scale Scale
	Arg   *Argument
}

var _ plot.Normalizer = Normalizer{}

// Normalize maps x to its relative position in [min, max] measured in
// transformed space.
func (n Normalizer) Normalize(min, max, x float64) float64 {
	lo, hi := n.Scale.Value(min, n.Arg), n.Scale.Value(max, n.Arg)
	return (n.Scale.Value(x, n.Arg) - lo) / (hi - lo)
}

// ----------------------------------------------------------------------------
// Argument

// ErrInvalidArgument is returned for scale arguments which cannot be parsed
// or are out of range.
var ErrInvalidArgument = errors.New("flowscale: invalid scale argument")

// An Argument parameterizes a Scale, e.g. the cofactor of an Arcsinh scale.
// Arguments are immutable. A nil *Argument is the absent argument.
type Argument struct {
	width float64
}

// NewArgument returns an argument of the given width which must be finite
// and strictly positive.
func NewArgument(width float64) (*Argument, error) {
	if math.IsNaN(width) || math.IsInf(width, 0) || width <= 0 {
		return nil, fmt.Errorf("%w: width %g", ErrInvalidArgument, width)
	}
	return &Argument{width: width}, nil
}

// ParseArgument parses s, e.g. "200", into an argument.
func ParseArgument(s string) (*Argument, error) {
	w, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidArgument, err)
	}
	return NewArgument(w)
}

// Width returns the width, or NaN for the nil argument.
func (a *Argument) Width() float64 {
	if a == nil {
		return math.NaN()
	}
	return a.width
}

func (a *Argument) String() string {
	if a == nil {
		return "<nil>"
	}
	return strconv.FormatFloat(a.width, 'g', -1, 64)
}

// widthOr returns the width of a or def if a is nil.
func widthOr(a *Argument, def float64) float64 {
	if a == nil {
		return def
	}
	return a.width
}

// ----------------------------------------------------------------------------
// Interval

// Interval represents a (potentially degenerate) real interval.
// Both edges of the interval may be NaN indicating this edge is not
// determined yet.
type Interval struct {
	Min, Max float64
}

// UnsetInterval returns the interval [NaN, NaN].
func UnsetInterval() Interval {
	return Interval{math.NaN(), math.NaN()}
}

// Update expands i to include x. NaNs are ignored.
func (i *Interval) Update(x ...float64) {
	for _, v := range x {
		if math.IsNaN(v) {
			continue
		}
		if !(i.Min <= v) {
			i.Min = v
		}
		if !(i.Max >= v) {
			i.Max = v
		}
	}
}

// Valid reports whether both edges are set and Min < Max.
func (i Interval) Valid() bool {
	return i.Min < i.Max
}

// Equal reports whether i and j are the same interval, treating unset
// edges as equal.
func (i Interval) Equal(j Interval) bool {
	eq := func(a, b float64) bool {
		if math.IsNaN(a) {
			return math.IsNaN(b)
		}
		return a == b
	}
	return eq(i.Min, j.Min) && eq(i.Max, j.Max)
}

func (i Interval) String() string {
	return fmt.Sprintf("[%g:%g]", i.Min, i.Max)
}
