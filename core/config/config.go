// Package config holds the run configuration for nkpipe. Values come from
// defaults, then an optional TOML file, then command-line flags.
package config

import (
	"fmt"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/gaurav-prasanna/nkpipe/core"
	"github.com/gaurav-prasanna/nkpipe/core/extract"
	"github.com/gaurav-prasanna/nkpipe/core/parse"
	"github.com/gaurav-prasanna/nkpipe/core/source"
)

// Formats accepted in Config.Formats.
const (
	FormatDat  = "dat"
	FormatJSON = "json"
	FormatXLSX = "xlsx"
	FormatPDF  = "pdf"
)

var knownFormats = []string{FormatDat, FormatJSON, FormatXLSX, FormatPDF}

// Config describes one pipeline run.
type Config struct {
	URL       string       `toml:"url"`
	Material  string       `toml:"material"`
	Marker    string       `toml:"marker"`
	OutputDir string       `toml:"output_dir"`
	Formats   []string     `toml:"formats"`
	PlotRaw   bool         `toml:"plot_raw"`
	Snapshot  bool         `toml:"snapshot"`
	Verbose   bool         `toml:"verbose"`
	Window    core.Window  `toml:"window"`
	Layout    parse.Layout `toml:"layout"`
}

// Default returns the configuration of the stock Ta2O5 run.
func Default() Config {
	return Config{
		URL:     source.DefaultURL,
		Marker:  extract.DefaultMarker,
		Formats: []string{FormatDat},
		Window:  core.DefaultWindow(),
		Layout:  parse.DefaultLayout(),
	}
}

// Load reads a TOML file over the defaults. Keys absent from the file keep
// their default values.
func Load(path string) (Config, error) {
	cfg := Default()
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("reading config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, fmt.Errorf("unknown keys in %s: %s", path, strings.Join(keys, ", "))
	}
	return cfg, nil
}

// Validate checks the configuration before a run.
func (c Config) Validate() error {
	if err := source.Validate(c.URL); err != nil {
		return err
	}
	if err := c.Window.Validate(); err != nil {
		return err
	}
	if err := c.Layout.Validate(); err != nil {
		return err
	}
	if strings.TrimSpace(c.Marker) == "" {
		return fmt.Errorf("marker must not be empty")
	}
	if len(c.Formats) == 0 {
		return fmt.Errorf("at least one output format is required: %s", strings.Join(knownFormats, ", "))
	}
	for _, f := range c.Formats {
		if !slices.Contains(knownFormats, f) {
			return fmt.Errorf("unknown output format %q (want one of %s)", f, strings.Join(knownFormats, ", "))
		}
	}
	return nil
}
