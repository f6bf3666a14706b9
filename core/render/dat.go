// Package render provides output renderers for the nkpipe pipeline.
// This file implements the .dat renderer, the primary persisted format.
package render

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/gaurav-prasanna/nkpipe/core"
	"github.com/gaurav-prasanna/nkpipe/core/units"
)

// DatHeader is the first line of every .dat file.
const DatHeader = "Wavelength (nm), n, k"

// DatRenderer writes one "<wavelength_nm>, <n>, <k>" line per sample.
type DatRenderer struct{}

// NewDatRenderer creates a DatRenderer.
func NewDatRenderer() *DatRenderer {
	return &DatRenderer{}
}

// Render formats the record in input order.
func (r *DatRenderer) Render(rec core.Record) ([]byte, error) {
	if err := rec.Validate(); err != nil {
		return nil, err
	}

	wl := units.ToNanometers(rec.Wavelength)

	var b strings.Builder
	b.WriteString(DatHeader)
	b.WriteByte('\n')
	for i := range wl {
		fmt.Fprintf(&b, "%s, %s, %s\n", formatNM(wl[i]), formatFloat(rec.N[i]), formatFloat(rec.K[i]))
	}
	return []byte(b.String()), nil
}

// Extension returns the file extension for .dat output.
func (r *DatRenderer) Extension() string {
	return ".dat"
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// formatNM drops the sub-femtometre noise left by the um -> nm round trip.
func formatNM(v float64) string {
	return formatFloat(math.Round(v*1e6) / 1e6)
}
