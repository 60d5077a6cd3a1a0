// Package flowscale provides the scale transformations used to display
// flow cytometry data.
//
// It tries to play well with gonum.org/v1/plot: every Scale provides a
// plot.Ticker and can be turned into a plot.Normalizer.
//
// Scales
//
// A Scale maps a raw instrument value to a display coordinate and back.
// Package flowscale knows about the following kinds of scales:
//   - Linear    The identity.
//   - Log       Decimal logarithm, for strictly positive data.
//   - Ln        Natural logarithm, for strictly positive data.
//   - Arcsinh   asinh(x/c), linear around 0 and logarithmic for |x| >> c.
//   - Biexp     A symmetric log scale with a linear region of width w.
//
// Arcsinh and Biexp accept an Argument (the cofactor c or the width w),
// the other scales ignore it. A nil *Argument means "no argument" and
// selects the scale's default.
//
// Binning
//
// Histograms and density plots discretize an axis into a number of bins of
// equal width in transformed space. Binning does this and Scale.Unbin
// inverts it: the raw value belonging to a bin index.
//
// Registry
//
// A Registry maps the integer kind codes stored in settings to the Scale
// singletons and parses argument strings. Default is the registry used by
// ScaleOf and ArgumentOf.
package flowscale
