// Package cmd implements the CLI commands for nkpipe using Cobra.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "nkpipe",
	Short: "nkpipe — extract n,k optical constants from a material page",
	Long: `nkpipe fetches a refractive-index material page, reads the embedded
wavelength, n and k arrays, resamples them onto a uniform nanometre grid
and writes the result to nk_<material>.dat.

Usage:
  nkpipe extract [url] [flags]`,
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
