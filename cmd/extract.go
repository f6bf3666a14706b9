// Package cmd — extract command.
// Builds the run configuration from defaults, an optional TOML file and
// flags, then hands it to the pipeline.
package cmd

import (
	"github.com/gaurav-prasanna/nkpipe/core/config"
	"github.com/gaurav-prasanna/nkpipe/core/pipeline"
	"github.com/gaurav-prasanna/nkpipe/internal/diag"
	"github.com/spf13/cobra"
)

// Flag variables.
var (
	flagConfig    string
	flagMaterial  string
	flagMarker    string
	flagLower     int
	flagUpper     int
	flagStep      int
	flagFormats   []string
	flagPlotRaw   bool
	flagSnapshot  bool
	flagOutputDir string
	flagVerbose   bool
)

var extractCmd = &cobra.Command{
	Use:   "extract [url]",
	Short: "Extract and resample n,k data from a material page",
	Long: `Extract fetches a material page, parses the n and k arrays embedded in it,
cuts them to 250-450 nm and resamples them onto the requested grid.

Without a URL the Ta2O5 (Bright-amorphous) page is processed.

Examples:
  nkpipe extract
  nkpipe extract "https://refractiveindex.info/?shelf=main&book=SiO2&page=Malitson"
  nkpipe extract --format dat,xlsx,pdf --plot-raw --output_dir ./out
  nkpipe extract --config nkpipe.toml --step 5`,
	Args: cobra.MaximumNArgs(1),
	RunE: runExtract,
}

func init() {
	rootCmd.AddCommand(extractCmd)

	f := extractCmd.Flags()
	f.StringVar(&flagConfig, "config", "", "TOML config file")
	f.StringVar(&flagMaterial, "material", "", "Material label for output names (default: from URL)")
	f.StringVar(&flagMarker, "marker", "", "Text marker of the data block (default data_n_wl)")

	// Window flags.
	f.IntVar(&flagLower, "lower", 0, "Grid start in nm (default 250)")
	f.IntVar(&flagUpper, "upper", 0, "Grid end in nm, inclusive (default 450)")
	f.IntVar(&flagStep, "step", 0, "Grid step in nm (default 1)")

	// Output flags.
	f.StringSliceVar(&flagFormats, "format", nil, "Output formats: dat, json, xlsx, pdf (default dat)")
	f.BoolVar(&flagPlotRaw, "plot-raw", false, "Also plot the data as fetched")
	f.BoolVar(&flagSnapshot, "snapshot", false, "Also save the page as Markdown")
	f.StringVar(&flagOutputDir, "output_dir", "", "Output directory (default: current directory)")
	f.BoolVarP(&flagVerbose, "verbose", "v", false, "Print intermediate parsing steps")
}

func runExtract(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd, args)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	report := diag.New(cmd.OutOrStdout(), cfg.Verbose)
	p := pipeline.New(cfg.Marker, report)

	res, err := p.Run(cmd.Context(), cfg)
	if err != nil {
		return err
	}

	if res.Status == pipeline.StatusNoData {
		report.Fail("%s: nothing written (%d warnings)", res.Material, len(res.Warnings))
	}
	return nil
}

// buildConfig layers defaults, the config file and explicitly set flags.
func buildConfig(cmd *cobra.Command, args []string) (config.Config, error) {
	cfg := config.Default()
	if flagConfig != "" {
		loaded, err := config.Load(flagConfig)
		if err != nil {
			return config.Config{}, err
		}
		cfg = loaded
	}

	if len(args) == 1 {
		cfg.URL = args[0]
	}

	changed := cmd.Flags().Changed
	if changed("material") {
		cfg.Material = flagMaterial
	}
	if changed("marker") {
		cfg.Marker = flagMarker
	}
	if changed("lower") {
		cfg.Window.Lower = flagLower
	}
	if changed("upper") {
		cfg.Window.Upper = flagUpper
	}
	if changed("step") {
		cfg.Window.Step = flagStep
	}
	if changed("format") {
		cfg.Formats = flagFormats
	}
	if changed("plot-raw") {
		cfg.PlotRaw = flagPlotRaw
	}
	if changed("snapshot") {
		cfg.Snapshot = flagSnapshot
	}
	if changed("output_dir") {
		cfg.OutputDir = flagOutputDir
	}
	if changed("verbose") {
		cfg.Verbose = flagVerbose
	}
	return cfg, nil
}
