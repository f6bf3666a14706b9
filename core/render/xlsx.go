// Package render — XLSX renderer.
// Writes the same columns as the .dat file to a workbook, plus a small
// sheet describing where the data came from.
package render

import (
	"fmt"

	"github.com/gaurav-prasanna/nkpipe/core"
	"github.com/gaurav-prasanna/nkpipe/core/units"
	"github.com/xuri/excelize/v2"
)

const (
	DataSheet   = "nk"
	SourceSheet = "source"
)

// XLSXRenderer renders a record as an Excel workbook.
type XLSXRenderer struct{}

// NewXLSXRenderer creates an XLSXRenderer.
func NewXLSXRenderer() *XLSXRenderer {
	return &XLSXRenderer{}
}

// Render builds the workbook in memory and returns its bytes.
func (r *XLSXRenderer) Render(rec core.Record) ([]byte, error) {
	if err := rec.Validate(); err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", DataSheet); err != nil {
		return nil, fmt.Errorf("renaming sheet: %w", err)
	}
	if err := f.SetSheetRow(DataSheet, "A1", &[]any{"Wavelength (nm)", "n", "k"}); err != nil {
		return nil, fmt.Errorf("writing header: %w", err)
	}

	wl := units.ToNanometers(rec.Wavelength)
	for i := range wl {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		if err := f.SetSheetRow(DataSheet, cell, &[]any{wl[i], rec.N[i], rec.K[i]}); err != nil {
			return nil, fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}

	if _, err := f.NewSheet(SourceSheet); err != nil {
		return nil, fmt.Errorf("creating source sheet: %w", err)
	}
	meta := [][]any{
		{"material", rec.Material},
		{"source_url", rec.SourceURL},
		{"fetched_at", rec.FetchedAt},
		{"lower_nm", rec.Window.Lower},
		{"upper_nm", rec.Window.Upper},
		{"step_nm", rec.Window.Step},
	}
	for i, row := range meta {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return nil, err
		}
		if err := f.SetSheetRow(SourceSheet, cell, &row); err != nil {
			return nil, fmt.Errorf("writing source row: %w", err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("serializing workbook: %w", err)
	}
	return buf.Bytes(), nil
}

// Extension returns the file extension for XLSX output.
func (r *XLSXRenderer) Extension() string {
	return ".xlsx"
}
