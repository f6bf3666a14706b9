package cmd

import (
	"fmt"

	"github.com/gaurav-prasanna/nkpipe/internal/version"
	"github.com/spf13/cobra"
)

// Build variables set by ldflags, e.g.
// -X github.com/gaurav-prasanna/nkpipe/cmd.buildVersion=v1.0.0
var (
	buildVersion string
	buildCommit  string
	buildTime    string
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		fmt.Fprintln(cmd.OutOrStdout(), version.Detailed(buildVersion, buildCommit, buildTime))
	},
}

func init() {
	rootCmd.Version = version.Short(buildVersion, buildCommit)
	rootCmd.AddCommand(versionCmd)
}
