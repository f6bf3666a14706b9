// Package plot draws n and k curves against wavelength as a one-page PDF
// chart using gofpdf.
package plot

import (
	"bytes"
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/gaurav-prasanna/nkpipe/core"
	"github.com/gaurav-prasanna/nkpipe/core/units"
	"github.com/jung-kurt/gofpdf"
)

// ErrEmpty is returned when neither curve has a finite point to draw.
var ErrEmpty = errors.New("nothing to plot")

// DefaultTitle is used when Plot is called with an empty title.
const DefaultTitle = "Refractive Index (n) and Extinction Coefficient (k) vs Wavelength"

// Chart frame on an A4 landscape page, in mm.
const (
	frameX = 30.0
	frameY = 25.0
	frameW = 235.0
	frameH = 150.0
	ticks  = 5
)

type rgb struct{ r, g, b int }

var (
	nColor = rgb{31, 119, 180}
	kColor = rgb{255, 127, 14}
)

// PDFPlotter renders curves to PDF bytes.
type PDFPlotter struct{}

// NewPDFPlotter creates a PDFPlotter.
func NewPDFPlotter() *PDFPlotter {
	return &PDFPlotter{}
}

type series struct {
	label string
	color rgb
	x, y  []float64
}

// Plot draws n and k on shared axes, wavelength in nm. A k curve with no
// samples is left out of the chart.
func (p *PDFPlotter) Plot(title string, n, k core.Curve) ([]byte, error) {
	if title == "" {
		title = DefaultTitle
	}

	var all []series
	for _, s := range []struct {
		label string
		color rgb
		c     core.Curve
	}{{"n", nColor, n}, {"k", kColor, k}} {
		if s.c.Len() == 0 {
			continue
		}
		if err := s.c.Validate(); err != nil {
			return nil, fmt.Errorf("%s curve: %w", s.label, err)
		}
		all = append(all, series{
			label: s.label,
			color: s.color,
			x:     units.Convert(s.c.Wavelength, s.c.Unit, units.Nanometer),
			y:     s.c.Values,
		})
	}

	xr, yr, ok := bounds(all)
	if !ok {
		return nil, ErrEmpty
	}

	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetXY(frameX, 10)
	pdf.CellFormat(frameW, 8, title, "", 0, "C", false, 0, "")

	drawAxes(pdf, xr, yr)

	for _, s := range all {
		drawSeries(pdf, s, xr, yr)
	}
	drawLegend(pdf, all)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("writing PDF: %w", err)
	}
	return buf.Bytes(), nil
}

type span struct{ min, max float64 }

func (s span) scale(v, origin, length float64) float64 {
	return origin + (v-s.min)/(s.max-s.min)*length
}

// bounds returns the data ranges over all finite points, padded so a flat
// curve still gets a visible axis.
func bounds(all []series) (span, span, bool) {
	xr := span{math.Inf(1), math.Inf(-1)}
	yr := span{math.Inf(1), math.Inf(-1)}
	found := false
	for _, s := range all {
		for i := range s.x {
			if !finite(s.x[i]) || !finite(s.y[i]) {
				continue
			}
			found = true
			xr.min, xr.max = math.Min(xr.min, s.x[i]), math.Max(xr.max, s.x[i])
			yr.min, yr.max = math.Min(yr.min, s.y[i]), math.Max(yr.max, s.y[i])
		}
	}
	if !found {
		return xr, yr, false
	}
	if xr.max == xr.min {
		xr.min, xr.max = xr.min-1, xr.max+1
	}
	pad := (yr.max - yr.min) * 0.05
	if pad == 0 {
		pad = math.Max(math.Abs(yr.max)*0.05, 0.05)
	}
	yr.min, yr.max = yr.min-pad, yr.max+pad
	return xr, yr, true
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func drawAxes(pdf *gofpdf.Fpdf, xr, yr span) {
	pdf.SetDrawColor(0, 0, 0)
	pdf.SetLineWidth(0.3)
	pdf.Rect(frameX, frameY, frameW, frameH, "D")

	pdf.SetFont("Helvetica", "", 8)
	pdf.SetDrawColor(220, 220, 220)
	pdf.SetLineWidth(0.1)
	for i := 0; i <= ticks; i++ {
		f := float64(i) / ticks

		x := frameX + f*frameW
		pdf.Line(x, frameY, x, frameY+frameH)
		label := tickLabel(xr.min + f*(xr.max-xr.min))
		pdf.Text(x-pdf.GetStringWidth(label)/2, frameY+frameH+5, label)

		y := frameY + frameH - f*frameH
		pdf.Line(frameX, y, frameX+frameW, y)
		label = tickLabel(yr.min + f*(yr.max-yr.min))
		pdf.Text(frameX-pdf.GetStringWidth(label)-2, y+1, label)
	}

	pdf.SetFont("Helvetica", "", 10)
	xlabel := "Wavelength (nm)"
	pdf.Text(frameX+frameW/2-pdf.GetStringWidth(xlabel)/2, frameY+frameH+12, xlabel)
	pdf.TransformBegin()
	pdf.TransformRotate(90, frameX-16, frameY+frameH/2)
	pdf.Text(frameX-16, frameY+frameH/2, "n, k")
	pdf.TransformEnd()
}

func drawSeries(pdf *gofpdf.Fpdf, s series, xr, yr span) {
	pdf.SetDrawColor(s.color.r, s.color.g, s.color.b)
	pdf.SetLineWidth(0.4)

	prevOK := false
	var px, py float64
	for i := range s.x {
		if !finite(s.x[i]) || !finite(s.y[i]) {
			prevOK = false
			continue
		}
		x := xr.scale(s.x[i], frameX, frameW)
		y := frameY + frameH - (yr.scale(s.y[i], 0, frameH))
		if prevOK {
			pdf.Line(px, py, x, y)
		} else if len(s.x) == 1 {
			pdf.Circle(x, y, 0.6, "D")
		}
		px, py, prevOK = x, y, true
	}
}

func drawLegend(pdf *gofpdf.Fpdf, all []series) {
	pdf.SetFont("Helvetica", "", 9)
	x := frameX + frameW - 25
	y := frameY + 6
	for _, s := range all {
		pdf.SetDrawColor(s.color.r, s.color.g, s.color.b)
		pdf.SetLineWidth(0.8)
		pdf.Line(x, y, x+8, y)
		pdf.Text(x+10, y+1.2, s.label)
		y += 5
	}
}

func tickLabel(v float64) string {
	return strconv.FormatFloat(v, 'g', 4, 64)
}
