// Scale Transformations
//
// The transformations follow the display scales of the usual flow
// cytometry analysis software.
package flowscale

import (
	"math"

	"gonum.org/v1/plot"
)

// Default arguments of the parameterized scales.
const (
	// DefaultCofactor is the cofactor of an Arcsinh scale without argument.
	DefaultCofactor = 5

	// DefaultBiexpWidth is the width of the linear region of a Biexp scale
	// without argument.
	DefaultBiexpWidth = 100
)

// LinearScale is the identity.
type LinearScale struct{}

func (LinearScale) Kind() Kind                             { return Linear }
func (LinearScale) Value(x float64, _ *Argument) float64   { return x }
func (LinearScale) Inverse(y float64, _ *Argument) float64 { return y }
func (LinearScale) CacheKey() string                       { return "linear" }
func (LinearScale) Ticker(_ *Argument) plot.Ticker         { return plot.DefaultTicks{} }

// Unbin returns min + bin/numBins*(max-min).
func (s LinearScale) Unbin(bin, numBins int, min, max float64, arg *Argument) float64 {
	return unbin(s, bin, numBins, min, max, arg)
}

// LogScale is the decimal logarithm.
type LogScale struct{}

func (LogScale) Kind() Kind       { return Log }
func (LogScale) CacheKey() string { return "log10" }

// Value returns ln(x)/ln(10). The change of base keeps exact powers of ten
// exact, e.g. Value(100) == 2.
func (LogScale) Value(x float64, _ *Argument) float64 {
	return math.Log(x) / math.Ln10
}

// Inverse returns 10^y.
func (LogScale) Inverse(y float64, _ *Argument) float64 {
	return math.Pow(10, y)
}

// Unbin interpolates the decimal exponent between log10(min) and
// log10(max).
func (s LogScale) Unbin(bin, numBins int, min, max float64, arg *Argument) float64 {
	return unbin(s, bin, numBins, min, max, arg)
}

func (LogScale) Ticker(_ *Argument) plot.Ticker { return plot.LogTicks{} }

// LnScale is the natural logarithm.
type LnScale struct{}

func (LnScale) Kind() Kind                             { return Ln }
func (LnScale) Value(x float64, _ *Argument) float64   { return math.Log(x) }
func (LnScale) Inverse(y float64, _ *Argument) float64 { return math.Exp(y) }
func (LnScale) CacheKey() string                       { return "ln" }
func (LnScale) Ticker(_ *Argument) plot.Ticker         { return plot.LogTicks{} }

func (s LnScale) Unbin(bin, numBins int, min, max float64, arg *Argument) float64 {
	return unbin(s, bin, numBins, min, max, arg)
}

// ArcsinhScale computes asinh(x/c) where the cofactor c is the width of
// the argument. It is approximately linear for |x| < c and logarithmic
// beyond.
type ArcsinhScale struct{}

func (ArcsinhScale) Kind() Kind       { return Arcsinh }
func (ArcsinhScale) CacheKey() string { return "arcsinh" }

func (ArcsinhScale) Value(x float64, arg *Argument) float64 {
	return math.Asinh(x / widthOr(arg, DefaultCofactor))
}

func (ArcsinhScale) Inverse(y float64, arg *Argument) float64 {
	return widthOr(arg, DefaultCofactor) * math.Sinh(y)
}

func (s ArcsinhScale) Unbin(bin, numBins int, min, max float64, arg *Argument) float64 {
	return unbin(s, bin, numBins, min, max, arg)
}

func (ArcsinhScale) Ticker(arg *Argument) plot.Ticker {
	return SymLogTicks{Linear: widthOr(arg, DefaultCofactor)}
}

// BiexpScale is a symmetric logarithm sign(x)*log10(1+|x|/w). It is linear
// in a region of width w around 0 and decimal logarithmic for |x| >> w.
type BiexpScale struct{}

func (BiexpScale) Kind() Kind       { return Biexp }
func (BiexpScale) CacheKey() string { return "biexp" }

func (BiexpScale) Value(x float64, arg *Argument) float64 {
	w := widthOr(arg, DefaultBiexpWidth)
	return math.Copysign(math.Log1p(math.Abs(x)/w)/math.Ln10, x)
}

func (BiexpScale) Inverse(y float64, arg *Argument) float64 {
	w := widthOr(arg, DefaultBiexpWidth)
	return math.Copysign(w*math.Expm1(math.Abs(y)*math.Ln10), y)
}

func (s BiexpScale) Unbin(bin, numBins int, min, max float64, arg *Argument) float64 {
	return unbin(s, bin, numBins, min, max, arg)
}

func (BiexpScale) Ticker(arg *Argument) plot.Ticker {
	return SymLogTicks{Linear: widthOr(arg, DefaultBiexpWidth)}
}
