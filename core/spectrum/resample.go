// Package spectrum cuts optical-constant curves to the working wavelength
// domain and resamples them onto a uniform nanometre grid.
package spectrum

import (
	"errors"
	"fmt"

	"github.com/gaurav-prasanna/nkpipe/core"
	"github.com/gaurav-prasanna/nkpipe/core/units"
)

// Native samples outside [DomainMin, DomainMax] nm are never used for
// interpolation, whatever grid the caller asks for.
const (
	DomainMin = 250.0
	DomainMax = 450.0
)

var (
	// ErrNoData means there were no usable samples. The accompanying curve
	// is the all-zero grid returned by NoData.
	ErrNoData = errors.New("no data points")

	// ErrLengthMismatch means wavelength and value sequences differ in length.
	ErrLengthMismatch = errors.New("wavelength and value lengths differ")

	// ErrInvalidWindow means the requested grid is empty or has a bad step.
	ErrInvalidWindow = errors.New("invalid resampling window")
)

// Grid returns the target wavelengths lower, lower+step, ... <= upper in nm.
func Grid(w core.Window) ([]float64, error) {
	if err := w.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidWindow, err)
	}
	grid := make([]float64, w.Size())
	for i := range grid {
		grid[i] = float64(w.Lower + i*w.Step)
	}
	return grid, nil
}

// NoData returns the all-zero curve of the given size.
func NoData(size int) core.Curve {
	return core.Curve{
		Unit:       units.Micrometer,
		Wavelength: make([]float64, size),
		Values:     make([]float64, size),
	}
}

// Resample restricts c to the fixed [DomainMin, DomainMax] nm domain and
// linearly interpolates it onto the grid described by w. Grid points
// outside the span of the retained samples are linearly extrapolated.
//
// The returned curve is in micrometres and always has w.Size() samples.
// When no usable samples exist it is the NoData grid and the error wraps
// ErrNoData (or ErrLengthMismatch for misaligned input).
func Resample(c core.Curve, w core.Window) (core.Curve, error) {
	grid, err := Grid(w)
	if err != nil {
		return core.Curve{}, err
	}
	size := len(grid)

	if err := c.Validate(); err != nil {
		return NoData(size), fmt.Errorf("%w: %v", ErrLengthMismatch, err)
	}

	wl := units.Convert(c.Wavelength, c.Unit, units.Nanometer)
	if len(wl) == 0 {
		return NoData(size), fmt.Errorf("%w: input is empty", ErrNoData)
	}

	var cutX, cutY []float64
	for i, x := range wl {
		if x >= DomainMin && x <= DomainMax {
			cutX = append(cutX, x)
			cutY = append(cutY, c.Values[i])
		}
	}
	if len(cutX) == 0 {
		return NoData(size), fmt.Errorf("%w: none in %g-%g nm", ErrNoData, DomainMin, DomainMax)
	}

	interp := newLinear(cutX, cutY)
	values := make([]float64, size)
	for i, x := range grid {
		values[i] = interp.At(x)
	}

	return core.Curve{
		Unit:       units.Micrometer,
		Wavelength: units.ToMicrometers(grid),
		Values:     values,
	}, nil
}
