// Package cli provides the command-line interface for ChromaViews.
package cli

import (
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/afalcongonzalez/chromaviews/internal/version"
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "chromaviews",
	Short: "Colour analysis for photographs",
	Long: `ChromaViews extracts the dominant colour palette from a photograph and
assigns human-readable names to colours.

Images are clustered into a small set of representative colours with
coverage percentages, perceptual near-duplicates are merged, and a fixed
sample grid identifies the colour at points across the image. Colour names
come from a reference set of CSS and everyday-language colours matched by
perceptual distance.

Run a one-off analysis with "chromaviews analyze", look up a single colour
with "chromaviews name", or serve the HTTP API with "chromaviews serve".`,
	Version:      version.Short(),
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "suppress non-error output")

	rootCmd.SetVersionTemplate(version.String() + "\n")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(nameCmd)
}

// newLogger builds an hclog logger honouring --verbose/--quiet and the
// configured level.
func newLogger(flags *pflag.FlagSet, level string) hclog.Logger {
	logLevel := hclog.LevelFromString(level)
	if logLevel == hclog.NoLevel {
		logLevel = hclog.Info
	}
	if verbose, _ := flags.GetBool("verbose"); verbose {
		logLevel = hclog.Debug
	}
	if quiet, _ := flags.GetBool("quiet"); quiet {
		logLevel = hclog.Error
	}

	return hclog.New(&hclog.LoggerOptions{
		Name:  "chromaviews",
		Level: logLevel,
	})
}
