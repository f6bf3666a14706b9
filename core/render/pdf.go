// Package render — PDF renderer.
// Draws the resampled n and k curves of a record through a core.Plotter.
package render

import (
	"fmt"

	"github.com/gaurav-prasanna/nkpipe/core"
	"github.com/gaurav-prasanna/nkpipe/core/plot"
)

// PDFRenderer renders a record as a chart.
type PDFRenderer struct {
	plotter core.Plotter
}

// NewPDFRenderer creates a PDFRenderer backed by the gofpdf plotter.
func NewPDFRenderer() *PDFRenderer {
	return &PDFRenderer{plotter: plot.NewPDFPlotter()}
}

// Render plots n and k against the record's shared wavelength axis.
func (r *PDFRenderer) Render(rec core.Record) ([]byte, error) {
	if err := rec.Validate(); err != nil {
		return nil, err
	}
	title := fmt.Sprintf("%s: n and k, %d-%d nm", rec.Material, rec.Window.Lower, rec.Window.Upper)
	return r.plotter.Plot(title, core.NewCurve(rec.Wavelength, rec.N), core.NewCurve(rec.Wavelength, rec.K))
}

// Extension returns the file extension for PDF output.
func (r *PDFRenderer) Extension() string {
	return ".pdf"
}
