// Package output handles file naming and writing for nkpipe outputs.
// Every output of a run is named after the material: nk_<material><ext>.
package output

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gaurav-prasanna/nkpipe/core"
	"github.com/gaurav-prasanna/nkpipe/core/source"
	"github.com/gaurav-prasanna/nkpipe/core/units"
)

// ErrNoData is returned instead of writing a record whose wavelengths are
// all zero, the shape the resampler gives when there was nothing to keep.
var ErrNoData = errors.New("no data within the wavelength window")

// ErrRender wraps a renderer failure. Nothing is written for that format.
var ErrRender = errors.New("rendering")

// Writer writes rendered output to disk.
type Writer struct {
	OutputDir string
}

// New creates a Writer targeting the given output directory.
// If outputDir is empty, it defaults to the current working directory.
func New(outputDir string) (*Writer, error) {
	if outputDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("getting working directory: %w", err)
		}
		outputDir = wd
	}

	// Ensure the output directory exists.
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	return &Writer{OutputDir: outputDir}, nil
}

// FileName returns the output name for a material, e.g. nk_Ta2O5.dat.
func FileName(material, suffix string) string {
	return "nk_" + source.Sanitize(material) + suffix
}

// HasData reports whether rec carries at least one non-zero wavelength.
func HasData(rec core.Record) bool {
	for _, nm := range units.ToNanometers(rec.Wavelength) {
		if nm != 0 {
			return true
		}
	}
	return false
}

// Write renders rec and stores it as nk_<material><ext>. A record without
// data is refused with ErrNoData before anything on disk is touched.
func (w *Writer) Write(rec core.Record, r core.Renderer) (string, error) {
	if !HasData(rec) {
		return "", ErrNoData
	}

	data, err := r.Render(rec)
	if err != nil {
		return "", fmt.Errorf("%w %s: %w", ErrRender, r.Extension(), err)
	}
	return w.WriteFile(FileName(rec.Material, r.Extension()), data)
}

// WriteFile writes data to name inside the output directory.
func (w *Writer) WriteFile(name string, data []byte) (string, error) {
	path := filepath.Join(w.OutputDir, name)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("writing file %s: %w", path, err)
	}
	return path, nil
}
