package spectrum

import (
	"cmp"
	"slices"
	"sort"
)

type point struct {
	x, y float64
}

// linear is a piecewise-linear interpolant that extrapolates past its ends
// by extending the first and last segments.
type linear struct {
	x, y []float64
}

// newLinear builds an interpolant from unsorted samples. Samples sharing an
// abscissa collapse to the one that occurs last in the input.
func newLinear(x, y []float64) *linear {
	pts := make([]point, len(x))
	for i := range x {
		pts[i] = point{x[i], y[i]}
	}
	slices.SortStableFunc(pts, func(a, b point) int { return cmp.Compare(a.x, b.x) })

	l := &linear{
		x: make([]float64, 0, len(pts)),
		y: make([]float64, 0, len(pts)),
	}
	for _, p := range pts {
		if n := len(l.x); n > 0 && l.x[n-1] == p.x {
			l.y[n-1] = p.y
			continue
		}
		l.x = append(l.x, p.x)
		l.y = append(l.y, p.y)
	}
	return l
}

// At evaluates the interpolant at t. A single sample gives a constant.
func (l *linear) At(t float64) float64 {
	n := len(l.x)
	switch n {
	case 0:
		return 0
	case 1:
		return l.y[0]
	}

	i := sort.SearchFloat64s(l.x, t)
	if i < n && l.x[i] == t {
		return l.y[i]
	}

	// Segment [lo, lo+1] containing t, or the edge segment outside the span.
	lo := i - 1
	if lo < 0 {
		lo = 0
	}
	if lo > n-2 {
		lo = n - 2
	}

	x0, x1 := l.x[lo], l.x[lo+1]
	y0, y1 := l.y[lo], l.y[lo+1]
	return y0 + (t-x0)*(y1-y0)/(x1-x0)
}
