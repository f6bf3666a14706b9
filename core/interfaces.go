// Package core defines the pipeline types and interfaces for nkpipe.
// Each stage of the pipeline is a small, testable interface.
package core

import (
	"context"
	"fmt"

	"github.com/gaurav-prasanna/nkpipe/core/units"
)

// FetchResult holds the raw HTML and response metadata from a fetch.
type FetchResult struct {
	URL        string
	StatusCode int
	HTML       string
}

// Curve is a wavelength sequence paired index-for-index with a value
// sequence (n or k). Curves are treated as immutable: every transformation
// returns a new Curve.
type Curve struct {
	Unit       units.Unit
	Wavelength []float64
	Values     []float64
}

// NewCurve builds a micrometre curve from parsed sequences.
func NewCurve(wavelengthUM, values []float64) Curve {
	return Curve{Unit: units.Micrometer, Wavelength: wavelengthUM, Values: values}
}

// Len returns the number of samples.
func (c Curve) Len() int {
	return len(c.Wavelength)
}

// Validate checks that both sequences have the same length.
func (c Curve) Validate() error {
	if len(c.Wavelength) != len(c.Values) {
		return fmt.Errorf("curve has %d wavelengths but %d values", len(c.Wavelength), len(c.Values))
	}
	return nil
}

// IsZero reports whether every wavelength is zero, which is the shape of
// the no-data grid produced by the resampler. An empty curve is zero.
func (c Curve) IsZero() bool {
	for _, w := range c.Wavelength {
		if w != 0 {
			return false
		}
	}
	return true
}

// Window is a resampling grid in integer nanometres, both ends inclusive.
type Window struct {
	Lower int `toml:"lower" json:"lower_nm"`
	Upper int `toml:"upper" json:"upper_nm"`
	Step  int `toml:"step" json:"step_nm"`
}

// DefaultWindow is 250-450 nm at 1 nm.
func DefaultWindow() Window {
	return Window{Lower: 250, Upper: 450, Step: 1}
}

// MaxWindowSize caps the number of grid points a window may describe.
const MaxWindowSize = 1 << 20

// Validate checks that the window describes a non-empty grid of at most
// MaxWindowSize points.
func (w Window) Validate() error {
	if w.Step <= 0 {
		return fmt.Errorf("window step must be positive, got %d", w.Step)
	}
	if w.Upper < w.Lower {
		return fmt.Errorf("window upper %d is below lower %d", w.Upper, w.Lower)
	}
	span := w.Upper - w.Lower
	if span < 0 || span/w.Step >= MaxWindowSize {
		return fmt.Errorf("window %d-%d nm at step %d has more than %d points", w.Lower, w.Upper, w.Step, MaxWindowSize)
	}
	return nil
}

// Size returns the number of grid points, or 0 for an invalid window.
func (w Window) Size() int {
	if w.Validate() != nil {
		return 0
	}
	return (w.Upper-w.Lower)/w.Step + 1
}

// Record is the final, aligned output for one material: a shared
// wavelength axis in micrometres with n and k sampled on it.
type Record struct {
	Material   string
	SourceURL  string
	FetchedAt  string // RFC3339
	Window     Window
	Wavelength []float64
	N          []float64
	K          []float64
}

// Validate checks that the three sequences are aligned.
func (r Record) Validate() error {
	if len(r.N) != len(r.Wavelength) || len(r.K) != len(r.Wavelength) {
		return fmt.Errorf("record sequences differ in length: wavelength=%d n=%d k=%d",
			len(r.Wavelength), len(r.N), len(r.K))
	}
	return nil
}

// Fetcher retrieves raw HTML from a URL.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (*FetchResult, error)
}

// Extractor returns the text blocks of a page that carry the data arrays,
// in document order.
type Extractor interface {
	Extract(html string) ([]string, error)
}

// Normalizer converts a fetched page into Markdown for the source snapshot.
type Normalizer interface {
	Normalize(html string) (string, error)
}

// Renderer converts a Record into a final output format.
type Renderer interface {
	Render(rec Record) ([]byte, error)
	// Extension returns the file extension for this renderer (e.g. ".dat", ".pdf").
	Extension() string
}

// Plotter draws an n curve and a k curve on one chart.
type Plotter interface {
	Plot(title string, n, k Curve) ([]byte, error)
}
