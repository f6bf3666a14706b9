// Package render — JSON renderer.
// Emits the record with its provenance and window so downstream tools do not
// have to re-derive them from the file name.
package render

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/gaurav-prasanna/nkpipe/core"
	"github.com/gaurav-prasanna/nkpipe/core/units"
)

// JSONRenderer produces structured JSON output from a record.
type JSONRenderer struct{}

// NewJSONRenderer creates a JSONRenderer.
func NewJSONRenderer() *JSONRenderer {
	return &JSONRenderer{}
}

// NaN and infinities have no JSON form and are written as null.
type jsonSample struct {
	WavelengthNM *float64 `json:"wavelength_nm"`
	N            *float64 `json:"n"`
	K            *float64 `json:"k"`
}

func finite(v float64) *float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}

type jsonRecord struct {
	Material  string       `json:"material"`
	SourceURL string       `json:"source_url"`
	FetchedAt string       `json:"fetched_at,omitempty"`
	Window    core.Window  `json:"window"`
	Samples   []jsonSample `json:"samples"`
}

// Render converts the record into indented JSON.
func (r *JSONRenderer) Render(rec core.Record) ([]byte, error) {
	if err := rec.Validate(); err != nil {
		return nil, err
	}

	out := jsonRecord{
		Material:  rec.Material,
		SourceURL: rec.SourceURL,
		FetchedAt: rec.FetchedAt,
		Window:    rec.Window,
		Samples:   make([]jsonSample, len(rec.Wavelength)),
	}
	for i, um := range rec.Wavelength {
		out.Samples[i] = jsonSample{
			WavelengthNM: finite(units.Nanometers(um)),
			N:            finite(rec.N[i]),
			K:            finite(rec.K[i]),
		}
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling JSON: %w", err)
	}
	return data, nil
}

// Extension returns the file extension for JSON output.
func (r *JSONRenderer) Extension() string {
	return ".json"
}
