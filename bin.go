package flowscale

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/vdobler/flowscale/data"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// ErrInvalidBinning is returned by Histogram if the binning is not usable,
// e.g. because its range is unset or outside the domain of its scale.
var ErrInvalidBinning = errors.New("flowscale: invalid binning")

// Binning divides a range of raw values into Bins bins of equal width in
// the transformed space of Scale.
type Binning struct {
	Scale Scale
	Arg   *Argument // Arg is passed to all methods of Scale.
	Bins  int

	// Range is the covered range of raw values. Bins are half open,
	// the last bin does not contain Range.Max.
	Range Interval
}

// NewBinning returns a Binning with unset range.
func NewBinning(s Scale, arg *Argument, bins int) *Binning {
	return &Binning{
		Scale: s,
		Arg:   arg,
		Bins:  bins,
		Range: UnsetInterval(),
	}
}

// Learn expands the range of b to cover all values in v which lie in
// the domain of the scale.
func (b *Binning) Learn(v data.Valuer) {
	min, max := data.Range(b.domain(v))
	if min <= max {
		b.Range.Update(min, max)
	}
}

// domain returns the finite values of v which have a finite transform.
func (b *Binning) domain(v data.Valuer) data.Values {
	vs := data.Finite(v)
	n := 0
	for _, x := range vs {
		t := b.Scale.Value(x, b.Arg)
		if math.IsNaN(t) || math.IsInf(t, 0) {
			continue
		}
		vs[n] = x
		n++
	}
	return vs[:n]
}

// transformed returns the transformed range of b.
func (b *Binning) transformed() (lo, hi float64, ok bool) {
	if b.Scale == nil || b.Bins <= 0 || !b.Range.Valid() {
		return 0, 0, false
	}
	lo, hi = b.Scale.Value(b.Range.Min, b.Arg), b.Scale.Value(b.Range.Max, b.Arg)
	if math.IsInf(lo, 0) || math.IsInf(hi, 0) || !(lo < hi) {
		return 0, 0, false
	}
	return lo, hi, true
}

// Bin returns the index of the bin containing x. It reports false if x
// lies outside of b's range or if b is unusable.
func (b *Binning) Bin(x float64) (int, bool) {
	lo, hi, ok := b.transformed()
	if !ok || !(x >= b.Range.Min && x < b.Range.Max) {
		return 0, false
	}
	f := (b.Scale.Value(x, b.Arg) - lo) / (hi - lo)
	i := int(math.Floor(f * float64(b.Bins)))
	if i < 0 {
		i = 0
	} else if i >= b.Bins {
		i = b.Bins - 1
	}
	return i, true
}

// Unbin returns the raw value at the lower edge of bin i. Unbin(b.Bins)
// is the upper edge of the last bin.
func (b *Binning) Unbin(i int) float64 {
	return b.Scale.Unbin(i, b.Bins, b.Range.Min, b.Range.Max, b.Arg)
}

// Edges returns the Bins+1 raw values delimiting the bins or nil if b
// is unusable.
func (b *Binning) Edges() []float64 {
	lo, hi, ok := b.transformed()
	if !ok {
		return nil
	}
	edges := floats.Span(make([]float64, b.Bins+1), lo, hi)
	for i, t := range edges {
		edges[i] = b.Scale.Inverse(t, b.Arg)
	}
	edges[0], edges[b.Bins] = b.Range.Min, b.Range.Max
	return edges
}

// Partition returns a label for the bin containing x, e.g. "[10, 100)".
// Values outside of b's range get the labels "(-∞, min)" and "[max, ∞)".
func (b *Binning) Partition(x float64) string {
	min, max := b.Range.Min, b.Range.Max
	if x < min {
		return fmt.Sprintf("(-∞, %g)", min)
	}
	if x >= max {
		return fmt.Sprintf("[%g, ∞)", max)
	}
	i, ok := b.Bin(x)
	if !ok {
		return "NaN"
	}
	return fmt.Sprintf("[%g, %g)", b.Unbin(i), b.Unbin(i+1))
}

// Counts is the result of binning a set of values.
type Counts struct {
	Bins  []int // Bins contains the number of values per bin.
	Under int   // Under counts the values below the range.
	Over  int   // Over counts the values at or above the end of the range.
}

// Total returns the number of counted values.
func (c Counts) Total() int {
	n := c.Under + c.Over
	for _, k := range c.Bins {
		n += k
	}
	return n
}

// Histogram counts the finite values of v per bin. The bins are delimited
// by b.Edges.
func (b *Binning) Histogram(v data.Valuer) (Counts, error) {
	edges := b.Edges()
	if edges == nil {
		return Counts{}, fmt.Errorf("%w: %d %s bins over %s",
			ErrInvalidBinning, b.Bins, kindOf(b.Scale), b.Range)
	}

	var c Counts
	in := make([]float64, 0, v.Len())
	for _, x := range data.Finite(v) {
		switch {
		case x < b.Range.Min:
			c.Under++
		case x >= b.Range.Max:
			c.Over++
		default:
			in = append(in, x)
		}
	}
	sort.Float64s(in)

	hist := stat.Histogram(nil, edges, in, nil)
	c.Bins = make([]int, len(hist))
	for i, h := range hist {
		c.Bins[i] = int(h)
	}
	return c, nil
}

func kindOf(s Scale) Kind {
	if s == nil {
		return 0
	}
	return s.Kind()
}
