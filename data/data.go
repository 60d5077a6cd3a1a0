// Package data contains the interface to the measured values of a
// single channel and a prototypical implementation.
package data

import "math"

// Valuer wraps the Len and Value methods.
type Valuer interface {
	// Len returns the number of events.
	Len() int

	// Value returns the value of event i.
	Value(i int) float64
}

// Range returns the minimum and maximum value in v. NaNs are skipped.
// If v contains no values Range returns (+Inf, -Inf).
func Range(v Valuer) (min, max float64) {
	min, max = math.Inf(1), math.Inf(-1)
	for i := 0; i < v.Len(); i++ {
		x := v.Value(i)
		if math.IsNaN(x) {
			continue
		}
		min, max = math.Min(min, x), math.Max(max, x)
	}
	return min, max
}

// Finite returns a copy of the finite values in v.
func Finite(v Valuer) Values {
	vs := make(Values, 0, v.Len())
	for i := 0; i < v.Len(); i++ {
		x := v.Value(i)
		if math.IsNaN(x) || math.IsInf(x, 0) {
			continue
		}
		vs = append(vs, x)
	}
	return vs
}

// Values implements the Valuer interface.
type Values []float64

func (v Values) Len() int            { return len(v) }
func (v Values) Value(i int) float64 { return v[i] }
