// Package pipeline runs one material page through the whole flow:
// fetch → extract → parse → resample → write.
//
// Problems with the data (a failed fetch, a malformed array, nothing inside
// the wavelength window) are reported as warnings and the run carries on to
// the end with whatever is left. Only configuration and file system errors
// abort a run.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gaurav-prasanna/nkpipe/core"
	"github.com/gaurav-prasanna/nkpipe/core/config"
	"github.com/gaurav-prasanna/nkpipe/core/extract"
	"github.com/gaurav-prasanna/nkpipe/core/fetch"
	"github.com/gaurav-prasanna/nkpipe/core/normalize"
	"github.com/gaurav-prasanna/nkpipe/core/output"
	"github.com/gaurav-prasanna/nkpipe/core/parse"
	"github.com/gaurav-prasanna/nkpipe/core/plot"
	"github.com/gaurav-prasanna/nkpipe/core/render"
	"github.com/gaurav-prasanna/nkpipe/core/source"
	"github.com/gaurav-prasanna/nkpipe/core/spectrum"
	"github.com/gaurav-prasanna/nkpipe/internal/diag"
)

// UnknownMaterial names the outputs when no label can be derived.
const UnknownMaterial = "unknown"

// WriteStatus is the outcome of the write stage.
type WriteStatus int

const (
	// StatusWritten means the record had data. A format that failed to
	// render is skipped and reported in Result.Warnings.
	StatusWritten WriteStatus = iota
	// StatusNoData means the record was empty and nothing was written.
	StatusNoData
)

func (s WriteStatus) String() string {
	if s == StatusWritten {
		return "written"
	}
	return "no data"
}

// Result is everything a run produced.
type Result struct {
	Material string
	Record   core.Record

	// RawN and RawK are the curves as parsed from the page.
	RawN, RawK core.Curve
	// N and K are the curves resampled onto the window grid.
	N, K core.Curve

	Status   WriteStatus
	Written  []string
	Warnings []error
}

func (r *Result) warn(rep *diag.Reporter, err error) {
	r.Warnings = append(r.Warnings, err)
	rep.Warn("%v", err)
}

// Pipeline wires the stages together. Zero-valued fields are filled with
// the default implementations by New.
type Pipeline struct {
	Fetcher    core.Fetcher
	Extractor  core.Extractor
	Normalizer core.Normalizer
	Plotter    core.Plotter
	Report     *diag.Reporter
	Now        func() time.Time
}

// New creates a Pipeline with the default HTTP fetcher, marker extractor,
// Markdown normalizer and PDF plotter.
func New(marker string, report *diag.Reporter) *Pipeline {
	return &Pipeline{
		Fetcher:    fetch.New(),
		Extractor:  extract.New(marker),
		Normalizer: normalize.New(),
		Plotter:    plot.NewPDFPlotter(),
		Report:     report,
		Now:        time.Now,
	}
}

// Run processes cfg.URL and writes the configured outputs.
func (p *Pipeline) Run(ctx context.Context, cfg config.Config) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	renderers, err := render.ForFormats(cfg.Formats)
	if err != nil {
		return nil, err
	}
	writer, err := output.New(cfg.OutputDir)
	if err != nil {
		return nil, fmt.Errorf("initializing output writer: %w", err)
	}

	rep := p.Report
	res := &Result{Material: cfg.Material}

	if res.Material == "" {
		m, err := source.Material(cfg.URL)
		if err != nil {
			res.warn(rep, err)
			m = UnknownMaterial
		}
		res.Material = m
	}
	rep.Step("Material being analysed: %s", res.Material)

	// 1. Fetch and scan the page.
	fetchedAt := p.now().UTC().Format(time.RFC3339)
	rep.Step("Fetching %s", cfg.URL)
	blocks, page := p.fetchBlocks(ctx, cfg.URL, res)

	if cfg.Snapshot && page != "" {
		if err := p.snapshot(writer, res, cfg.URL, fetchedAt, page); err != nil {
			return res, err
		}
	}

	// 2. Parse the four arrays.
	nwl, kwl, n, k := p.parseArrays(blocks, cfg.Layout, res)
	res.RawN = core.NewCurve(nwl, n)
	res.RawK = core.NewCurve(kwl, k)
	p.traceCoverage("n", res.RawN, cfg.Window)
	p.traceCoverage("k", res.RawK, cfg.Window)

	if cfg.PlotRaw {
		if err := p.plotRaw(writer, res); err != nil {
			return res, err
		}
	}

	// 3. Cut and resample.
	if res.N, err = spectrum.Resample(res.RawN, cfg.Window); err != nil {
		res.warn(rep, fmt.Errorf("n curve: %w", err))
	}
	if res.K, err = spectrum.Resample(res.RawK, cfg.Window); err != nil {
		res.warn(rep, fmt.Errorf("k curve: %w", err))
	}

	res.Record = core.Record{
		Material:   res.Material,
		SourceURL:  cfg.URL,
		FetchedAt:  fetchedAt,
		Window:     cfg.Window,
		Wavelength: res.N.Wavelength,
		N:          res.N.Values,
		K:          res.K.Values,
	}

	// 4. Write.
	res.Status = StatusWritten
	for _, r := range renderers {
		path, err := writer.Write(res.Record, r)
		if errors.Is(err, output.ErrNoData) {
			res.Status = StatusNoData
			res.warn(rep, fmt.Errorf("there is no data within %d-%d nm, no file will be saved", cfg.Window.Lower, cfg.Window.Upper))
			break
		}
		if errors.Is(err, output.ErrRender) {
			res.warn(rep, err)
			continue
		}
		if err != nil {
			return res, err
		}
		res.Written = append(res.Written, path)
		rep.OK("Written: %s", path)
	}

	return res, nil
}

func (p *Pipeline) now() time.Time {
	if p.Now == nil {
		return time.Now()
	}
	return p.Now()
}

// fetchBlocks returns the marker blocks and the page HTML. Failures are
// recorded as warnings and yield no blocks.
func (p *Pipeline) fetchBlocks(ctx context.Context, url string, res *Result) ([]string, string) {
	fr, err := p.Fetcher.Fetch(ctx, url)
	if err != nil {
		res.warn(p.Report, fmt.Errorf("fetch: %w", err))
		return nil, ""
	}

	blocks, err := p.Extractor.Extract(fr.HTML)
	if err != nil {
		res.warn(p.Report, fmt.Errorf("extract: %w", err))
		return nil, fr.HTML
	}
	p.Report.Trace("found %d marker blocks", len(blocks))
	return blocks, fr.HTML
}

// parseArrays returns n-wavelength, k-wavelength, n and k. Any array that
// cannot be read comes back empty.
func (p *Pipeline) parseArrays(blocks []string, layout parse.Layout, res *Result) (nwl, kwl, n, k []float64) {
	fields, err := layout.Extract(blocks)
	if err != nil {
		res.warn(p.Report, err)
		return nil, nil, nil, nil
	}
	p.Report.Trace("n wavelength: %.60s", fields.NWavelength)
	p.Report.Trace("k wavelength: %.60s", fields.KWavelength)
	p.Report.Trace("n: %.60s", fields.N)
	p.Report.Trace("k: %.60s", fields.K)

	read := func(label, fragment string) []float64 {
		values, err := parse.ParseArrayTraced(fragment, p.Report)
		if err != nil {
			res.warn(p.Report, fmt.Errorf("%s: %w", label, err))
			return []float64{}
		}
		return values
	}
	return read("n wavelength", fields.NWavelength),
		read("k wavelength", fields.KWavelength),
		read("n", fields.N),
		read("k", fields.K)
}

// traceCoverage reports which native samples sit nearest the window edges.
func (p *Pipeline) traceCoverage(label string, c core.Curve, w core.Window) {
	if !p.Report.Verbose() {
		return
	}
	sel, err := spectrum.SelectRange(c, float64(w.Lower), float64(w.Upper))
	if err != nil {
		p.Report.Trace("%s coverage: %v", label, err)
		return
	}
	p.Report.Trace("%s coverage: samples [%d:%d) of %d near %d-%d nm",
		label, sel.Start, sel.End, c.Len(), w.Lower, w.Upper)
}

// plotRaw writes a sanity plot of the data as parsed.
func (p *Pipeline) plotRaw(writer *output.Writer, res *Result) error {
	if res.RawK.Len() == 0 {
		p.Report.Warn("k array is empty, plotting n only")
	}
	data, err := p.Plotter.Plot(res.Material+" (as fetched)", res.RawN, res.RawK)
	if err != nil {
		res.warn(p.Report, fmt.Errorf("raw plot: %w", err))
		return nil
	}
	path, err := writer.WriteFile(output.FileName(res.Material, "_raw.pdf"), data)
	if err != nil {
		return err
	}
	res.Written = append(res.Written, path)
	p.Report.OK("Written: %s", path)
	return nil
}

// snapshot stores the page as Markdown next to the data.
func (p *Pipeline) snapshot(writer *output.Writer, res *Result, url, fetchedAt, page string) error {
	md, err := p.Normalizer.Normalize(page)
	if err != nil {
		res.warn(p.Report, fmt.Errorf("snapshot: %w", err))
		return nil
	}
	path, err := writer.WriteFile(output.FileName(res.Material, ".source.md"), normalize.Snapshot(url, fetchedAt, md))
	if err != nil {
		return err
	}
	res.Written = append(res.Written, path)
	p.Report.OK("Written: %s", path)
	return nil
}
