// Package units converts wavelength sequences between micrometres and
// nanometres. All conversions return new slices; inputs are never modified.
package units

import (
	vecmath "github.com/cwbudde/algo-vecmath"
)

// Unit identifies the unit a wavelength sequence is expressed in.
type Unit int

const (
	Micrometer Unit = iota
	Nanometer
)

const nmPerUM = 1000.0

func (u Unit) String() string {
	switch u {
	case Micrometer:
		return "um"
	case Nanometer:
		return "nm"
	default:
		return "unknown"
	}
}

// Nanometers converts a single micrometre value to nanometres.
func Nanometers(um float64) float64 {
	return um * nmPerUM
}

// Micrometers converts a single nanometre value to micrometres.
func Micrometers(nm float64) float64 {
	return nm / nmPerUM
}

// ToNanometers returns a copy of w scaled from micrometres to nanometres.
func ToNanometers(w []float64) []float64 {
	out := make([]float64, len(w))
	if len(w) == 0 {
		return out
	}
	vecmath.ScaleBlock(out, w, nmPerUM)
	return out
}

// ToMicrometers returns a copy of w scaled from nanometres to micrometres.
// Division (not multiplication by 0.001) keeps it the exact inverse of
// ToNanometers for values that survive the forward scaling unrounded.
func ToMicrometers(w []float64) []float64 {
	out := make([]float64, len(w))
	for i, v := range w {
		out[i] = Micrometers(v)
	}
	return out
}

// Convert returns w expressed in the target unit.
func Convert(w []float64, from, to Unit) []float64 {
	switch {
	case from == to:
		out := make([]float64, len(w))
		copy(out, w)
		return out
	case from == Micrometer && to == Nanometer:
		return ToNanometers(w)
	default:
		return ToMicrometers(w)
	}
}
