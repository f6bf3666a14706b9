package spectrum

import (
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/gaurav-prasanna/nkpipe/core"
	"github.com/gaurav-prasanna/nkpipe/core/units"
)

const tol = 1e-9

func closeEnough(a, b float64) bool {
	return math.Abs(a-b) <= tol*math.Max(1, math.Abs(b))
}

func allZero(xs []float64) bool {
	for _, x := range xs {
		if x != 0 {
			return false
		}
	}
	return true
}

func TestResampleEmptyInputIsNoData(t *testing.T) {
	got, err := Resample(core.NewCurve(nil, nil), core.DefaultWindow())
	if !errors.Is(err, ErrNoData) {
		t.Fatalf("err = %v, want ErrNoData", err)
	}
	if len(got.Wavelength) != 201 || len(got.Values) != 201 {
		t.Fatalf("len = %d/%d, want 201", len(got.Wavelength), len(got.Values))
	}
	if !allZero(got.Wavelength) || !allZero(got.Values) {
		t.Error("sentinel is not all zero")
	}
	if !got.IsZero() {
		t.Error("IsZero() = false for sentinel")
	}
}

func TestResampleNothingInDomain(t *testing.T) {
	c := core.NewCurve([]float64{0.5, 0.6, 0.7}, []float64{1, 2, 3})
	got, err := Resample(c, core.DefaultWindow())
	if !errors.Is(err, ErrNoData) {
		t.Fatalf("err = %v, want ErrNoData", err)
	}
	if len(got.Wavelength) != 201 || !allZero(got.Wavelength) || !allZero(got.Values) {
		t.Error("expected 201-point all-zero sentinel")
	}
}

func TestResampleGridSize(t *testing.T) {
	windows := []core.Window{
		{Lower: 250, Upper: 450, Step: 1},
		{Lower: 250, Upper: 450, Step: 7},
		{Lower: 300, Upper: 400, Step: 5},
		{Lower: 260, Upper: 260, Step: 1},
	}
	inputs := []int{1, 2, 3, 10, 150}

	for _, w := range windows {
		for _, n := range inputs {
			t.Run(fmt.Sprintf("%d-%d/%d_n%d", w.Lower, w.Upper, w.Step, n), func(t *testing.T) {
				wl := make([]float64, n)
				v := make([]float64, n)
				for i := range wl {
					wl[i] = 0.26 + 0.18*float64(i)/float64(max(n-1, 1))
					v[i] = float64(i)
				}
				got, err := Resample(core.NewCurve(wl, v), w)
				if err != nil {
					t.Fatal(err)
				}
				want := (w.Upper-w.Lower)/w.Step + 1
				if len(got.Wavelength) != want || len(got.Values) != want {
					t.Fatalf("len = %d/%d, want %d", len(got.Wavelength), len(got.Values), want)
				}
				if !closeEnough(got.Wavelength[0], float64(w.Lower)/1000) {
					t.Errorf("first grid point = %v", got.Wavelength[0])
				}
			})
		}
	}
}

func TestResampleLinearDataWithExtrapolation(t *testing.T) {
	line := func(nm float64) float64 { return 2 + 0.01*(nm-250) }

	var wl, v []float64
	for nm := 260.0; nm <= 440; nm += 20 {
		wl = append(wl, nm/1000)
		v = append(v, line(nm))
	}

	got, err := Resample(core.NewCurve(wl, v), core.DefaultWindow())
	if err != nil {
		t.Fatal(err)
	}
	if got.Unit != units.Micrometer {
		t.Errorf("unit = %v, want um", got.Unit)
	}
	for i, um := range got.Wavelength {
		nm := 250 + float64(i)
		if !closeEnough(um, nm/1000) {
			t.Fatalf("wavelength[%d] = %v, want %v", i, um, nm/1000)
		}
		if !closeEnough(got.Values[i], line(nm)) {
			t.Errorf("value at %v nm = %v, want %v", nm, got.Values[i], line(nm))
		}
	}
}

func TestResampleMaskIsFixed(t *testing.T) {
	// 200 and 500 nm are outside the fixed domain and must not pull the line.
	c := core.NewCurve(
		[]float64{0.2, 0.26, 0.44, 0.5},
		[]float64{50, 1, 2, 50},
	)
	got, err := Resample(c, core.Window{Lower: 300, Upper: 400, Step: 50})
	if err != nil {
		t.Fatal(err)
	}
	want := []float64{1 + 40.0/180, 1 + 90.0/180, 1 + 140.0/180}
	for i := range want {
		if !closeEnough(got.Values[i], want[i]) {
			t.Errorf("values[%d] = %v, want %v", i, got.Values[i], want[i])
		}
	}
}

func TestResampleExtrapolatesBeyondMaskedSpan(t *testing.T) {
	c := core.NewCurve([]float64{0.3, 0.4}, []float64{1, 2})
	got, err := Resample(c, core.Window{Lower: 250, Upper: 450, Step: 100})
	if err != nil {
		t.Fatal(err)
	}
	want := []float64{0.5, 1.5, 2.5}
	for i := range want {
		if !closeEnough(got.Values[i], want[i]) {
			t.Errorf("values[%d] = %v, want %v", i, got.Values[i], want[i])
		}
	}
}

func TestResampleSinglePointIsConstant(t *testing.T) {
	got, err := Resample(core.NewCurve([]float64{0.35}, []float64{1.7}), core.DefaultWindow())
	if err != nil {
		t.Fatal(err)
	}
	for i, v := range got.Values {
		if v != 1.7 {
			t.Fatalf("values[%d] = %v, want 1.7", i, v)
		}
	}
}

func TestResampleDuplicatesKeepLast(t *testing.T) {
	c := core.NewCurve([]float64{0.3, 0.3, 0.4}, []float64{1, 3, 5})
	got, err := Resample(c, core.Window{Lower: 300, Upper: 400, Step: 50})
	if err != nil {
		t.Fatal(err)
	}
	want := []float64{3, 4, 5}
	for i := range want {
		if !closeEnough(got.Values[i], want[i]) {
			t.Errorf("values[%d] = %v, want %v", i, got.Values[i], want[i])
		}
	}
}

func TestResampleUnsortedInput(t *testing.T) {
	wl := []float64{0.4, 0.3, 0.35}
	v := []float64{3, 1, 2}
	got, err := Resample(core.NewCurve(wl, v), core.Window{Lower: 300, Upper: 400, Step: 25})
	if err != nil {
		t.Fatal(err)
	}
	want := []float64{1, 1.5, 2, 2.5, 3}
	for i := range want {
		if !closeEnough(got.Values[i], want[i]) {
			t.Errorf("values[%d] = %v, want %v", i, got.Values[i], want[i])
		}
	}
	if wl[0] != 0.4 || v[0] != 3 {
		t.Error("input curve was modified")
	}
}

func TestResampleNanometerInput(t *testing.T) {
	c := core.Curve{Unit: units.Nanometer, Wavelength: []float64{300, 400}, Values: []float64{1, 2}}
	got, err := Resample(c, core.Window{Lower: 350, Upper: 350, Step: 1})
	if err != nil {
		t.Fatal(err)
	}
	if !closeEnough(got.Values[0], 1.5) || !closeEnough(got.Wavelength[0], 0.35) {
		t.Errorf("got %+v", got)
	}
}

func TestResampleLengthMismatch(t *testing.T) {
	got, err := Resample(core.NewCurve([]float64{0.3, 0.4}, []float64{1}), core.DefaultWindow())
	if !errors.Is(err, ErrLengthMismatch) {
		t.Fatalf("err = %v, want ErrLengthMismatch", err)
	}
	if len(got.Wavelength) != 201 || !got.IsZero() {
		t.Error("expected sentinel grid")
	}
}

func TestResampleInvalidWindow(t *testing.T) {
	for _, w := range []core.Window{{Lower: 250, Upper: 450, Step: 0}, {Lower: 250, Upper: 450, Step: -1}, {Lower: 450, Upper: 250, Step: 1}} {
		if _, err := Resample(core.NewCurve([]float64{0.3}, []float64{1}), w); !errors.Is(err, ErrInvalidWindow) {
			t.Errorf("window %+v: err = %v, want ErrInvalidWindow", w, err)
		}
	}
}

func TestGridRejectsOversizedWindows(t *testing.T) {
	windows := []core.Window{
		{Lower: math.MinInt, Upper: 450, Step: 1},
		{Lower: math.MinInt, Upper: math.MaxInt, Step: math.MaxInt},
		{Lower: 0, Upper: core.MaxWindowSize, Step: 1},
	}
	for _, w := range windows {
		if _, err := Grid(w); !errors.Is(err, ErrInvalidWindow) {
			t.Errorf("window %+v: err = %v, want ErrInvalidWindow", w, err)
		}
		if n := w.Size(); n != 0 {
			t.Errorf("window %+v: size = %d, want 0", w, n)
		}
	}
}

func TestGridNearIntLimit(t *testing.T) {
	tests := []struct {
		w    core.Window
		want int
	}{
		{core.Window{Lower: math.MaxInt - 3, Upper: math.MaxInt, Step: 2}, 2},
		{core.Window{Lower: math.MaxInt - 4, Upper: math.MaxInt, Step: 2}, 3},
		{core.Window{Lower: math.MinInt, Upper: math.MinInt + 10, Step: 5}, 3},
	}
	for _, tt := range tests {
		grid, err := Grid(tt.w)
		if err != nil {
			t.Fatalf("window %+v: %v", tt.w, err)
		}
		if len(grid) != tt.want || tt.w.Size() != tt.want {
			t.Errorf("window %+v: got %d points, size %d, want %d", tt.w, len(grid), tt.w.Size(), tt.want)
		}
		for i := 1; i < len(grid); i++ {
			if grid[i] < grid[i-1] {
				t.Errorf("window %+v: grid not ascending: %v", tt.w, grid)
			}
		}
	}
}

func TestGridLargestWindow(t *testing.T) {
	w := core.Window{Lower: 0, Upper: core.MaxWindowSize - 1, Step: 1}
	grid, err := Grid(w)
	if err != nil {
		t.Fatal(err)
	}
	if len(grid) != core.MaxWindowSize || grid[len(grid)-1] != float64(core.MaxWindowSize-1) {
		t.Errorf("got %d points ending at %g", len(grid), grid[len(grid)-1])
	}
}

func TestSelectRange(t *testing.T) {
	c := core.NewCurve([]float64{0.30, 0.35, 0.40}, []float64{1, 2, 3})

	sel, err := SelectRange(c, 250, 450)
	if err != nil {
		t.Fatal(err)
	}
	if sel.Start != 0 || sel.End != 2 {
		t.Fatalf("indices = [%d:%d), want [0:2)", sel.Start, sel.End)
	}
	if sel.Curve.Unit != units.Nanometer {
		t.Errorf("unit = %v, want nm", sel.Curve.Unit)
	}
	wantWL := []float64{300, 350}
	wantV := []float64{1, 2}
	if sel.Curve.Len() != 2 {
		t.Fatalf("len = %d, want 2", sel.Curve.Len())
	}
	for i := range wantWL {
		if !closeEnough(sel.Curve.Wavelength[i], wantWL[i]) || sel.Curve.Values[i] != wantV[i] {
			t.Errorf("[%d] = (%v, %v)", i, sel.Curve.Wavelength[i], sel.Curve.Values[i])
		}
	}
}

func TestSelectRangeNearestMatch(t *testing.T) {
	// 0.245 um is outside [250, 450) but is the nearest sample to 250.
	c := core.NewCurve([]float64{0.2, 0.245, 0.3, 0.46, 0.5}, []float64{0, 1, 2, 3, 4})
	sel, err := SelectRange(c, 250, 450)
	if err != nil {
		t.Fatal(err)
	}
	if sel.Start != 1 || sel.End != 3 {
		t.Errorf("indices = [%d:%d), want [1:3)", sel.Start, sel.End)
	}
}

func TestSelectRangeTiesPickFirst(t *testing.T) {
	c := core.NewCurve([]float64{0.2, 0.3, 0.4}, []float64{1, 2, 3})
	sel, err := SelectRange(c, 250, 400)
	if err != nil {
		t.Fatal(err)
	}
	if sel.Start != 0 {
		t.Errorf("start = %d, want 0", sel.Start)
	}
}

func TestSelectRangeErrors(t *testing.T) {
	sel, err := SelectRange(core.NewCurve(nil, nil), 250, 450)
	if !errors.Is(err, ErrNoData) {
		t.Errorf("err = %v, want ErrNoData", err)
	}
	if sel.Curve.Len() != 0 || len(sel.Curve.Values) != 0 {
		t.Error("expected empty selection")
	}

	if _, err := SelectRange(core.NewCurve([]float64{0.3}, nil), 250, 450); !errors.Is(err, ErrLengthMismatch) {
		t.Errorf("err = %v, want ErrLengthMismatch", err)
	}
}

func TestSelectRangeReversedBoundsIsEmpty(t *testing.T) {
	c := core.NewCurve([]float64{0.3, 0.35, 0.4}, []float64{1, 2, 3})
	sel, err := SelectRange(c, 450, 250)
	if err != nil {
		t.Fatal(err)
	}
	if sel.Curve.Len() != 0 {
		t.Errorf("len = %d, want 0", sel.Curve.Len())
	}
}

func ExampleResample() {
	c := core.NewCurve([]float64{0.3, 0.4}, []float64{2.0, 2.2})
	out, _ := Resample(c, core.Window{Lower: 250, Upper: 450, Step: 50})
	for i := range out.Values {
		fmt.Printf("%.0f nm: %.2f\n", units.Nanometers(out.Wavelength[i]), out.Values[i])
	}
	// Output:
	// 250 nm: 1.90
	// 300 nm: 2.00
	// 350 nm: 2.10
	// 400 nm: 2.20
	// 450 nm: 2.30
}
