package spectrum

import (
	"fmt"
	"math"

	"github.com/gaurav-prasanna/nkpipe/core"
	"github.com/gaurav-prasanna/nkpipe/core/units"
)

// Selection is the contiguous slice of a curve between the samples nearest
// to a requested window. Curve is in nanometres.
type Selection struct {
	Start int
	End   int
	Curve core.Curve
}

// SelectRange finds the samples whose wavelengths are closest to lower and
// upper (both nm) and returns the half-open slice [Start, End) of c.
//
// Matching is by nearest value, so a sample just outside the nominal
// window can be included. On ties the first index wins.
func SelectRange(c core.Curve, lower, upper float64) (Selection, error) {
	empty := Selection{Curve: core.Curve{Unit: units.Nanometer, Wavelength: []float64{}, Values: []float64{}}}

	if err := c.Validate(); err != nil {
		return empty, fmt.Errorf("%w: %v", ErrLengthMismatch, err)
	}
	if c.Len() == 0 {
		return empty, fmt.Errorf("%w: input is empty", ErrNoData)
	}

	wl := units.Convert(c.Wavelength, c.Unit, units.Nanometer)
	start := nearest(wl, lower)
	end := nearest(wl, upper)

	sel := Selection{Start: start, End: end, Curve: empty.Curve}
	if end > start {
		sel.Curve = core.Curve{
			Unit:       units.Nanometer,
			Wavelength: wl[start:end],
			Values:     append([]float64(nil), c.Values[start:end]...),
		}
	}
	return sel, nil
}

// nearest returns the index of the element of xs closest to target.
func nearest(xs []float64, target float64) int {
	best := 0
	bestDist := math.Inf(1)
	for i, x := range xs {
		if d := math.Abs(x - target); d < bestDist {
			best, bestDist = i, d
		}
	}
	return best
}
