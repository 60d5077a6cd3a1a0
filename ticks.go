package flowscale

import (
	"math"
	"strconv"

	"gonum.org/v1/plot"
)

// SymLogTicks is a plot.Ticker for scales which are linear around zero
// and logarithmic far away from it, like Arcsinh and Biexp.
//
// Major ticks are placed at 0 and at ±10^k, minor ticks at ±m*10^k for
// m = 2..9. Decades well inside the linear region are skipped.
type SymLogTicks struct {
	// Linear is the width of the linear region. Decades below
	// Linear/10 do not get ticks. Zero means no lower limit besides
	// the one implied by min and max.
	Linear float64
}

var _ plot.Ticker = SymLogTicks{}

// Ticks returns the ticks in [min, max].
func (t SymLogTicks) Ticks(min, max float64) []plot.Tick {
	if !(min < max) {
		return nil
	}

	var ticks []plot.Tick
	add := func(v float64, major bool) {
		if v < min || v > max {
			return
		}
		tick := plot.Tick{Value: v}
		if major {
			tick.Label = strconv.FormatFloat(v, 'g', -1, 64)
		}
		ticks = append(ticks, tick)
	}

	// Largest decade needed.
	top := math.Max(math.Abs(min), math.Abs(max))
	hiExp := int(math.Ceil(math.Log10(top)))

	// Smallest decade worth ticking.
	floor := t.Linear / 10
	if floor <= 0 {
		floor = math.Min(math.Abs(min), math.Abs(max))
		if min < 0 && max > 0 || floor == 0 {
			floor = top / 1e6
		}
	}
	loExp := int(math.Ceil(math.Log10(floor) - 1e-9))
	if loExp > hiExp {
		loExp = hiExp
	}

	// Negative side, from far left towards zero.
	for e := hiExp; e >= loExp; e-- {
		dec := math.Pow(10, float64(e))
		for m := 9; m >= 2; m-- {
			add(-float64(m)*dec, false)
		}
		add(-dec, true)
	}
	add(0, true)
	for e := loExp; e <= hiExp; e++ {
		dec := math.Pow(10, float64(e))
		add(dec, true)
		for m := 2; m <= 9; m++ {
			add(float64(m)*dec, false)
		}
	}

	return ticks
}
