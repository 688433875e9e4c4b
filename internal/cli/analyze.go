package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/afalcongonzalez/chromaviews/internal/analyzer"
	"github.com/afalcongonzalez/chromaviews/internal/colour"
)

var (
	// Analyze command flags.
	analyzeClusters int
	analyzeFormat   string
	analyzeOutput   string
	analyzeSeed     int64
)

// analyzeCmd represents the analyze command.
var analyzeCmd = &cobra.Command{
	Use:   "analyze <image>",
	Short: "Extract the dominant colour palette from an image",
	Long: `Analyze an image and report its dominant colours and a grid of named
point samples.

The image is downsized if needed, clustered into k colour groups, and
perceptual near-duplicates are merged, so the palette may hold fewer than
k colours. Each colour carries its coverage percentage and nearest
reference name.

Supported image formats: JPEG, PNG, WebP

Examples:
  # Analyze with the default 8 clusters
  chromaviews analyze photo.jpg

  # Request 12 clusters and JSON output
  chromaviews analyze -k 12 --format json photo.png

  # Save the result to a file
  chromaviews analyze --format json --output result.json photo.jpg`,
	Args: cobra.ExactArgs(1),
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().IntVarP(&analyzeClusters, "clusters", "k", 8,
		fmt.Sprintf("number of colour clusters (%d-%d)", colour.MinClusters, colour.MaxClusters))
	analyzeCmd.Flags().StringVarP(&analyzeFormat, "format", "f", "table", "output format (table, json)")
	analyzeCmd.Flags().StringVarP(&analyzeOutput, "output", "o", "", "output file (default: stdout)")
	analyzeCmd.Flags().Int64Var(&analyzeSeed, "seed", colour.DefaultSeed, "k-means initialisation seed")
}

// runAnalyze executes the analyze command.
func runAnalyze(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read image: %w", err)
	}

	a := analyzer.New(analyzer.WithSeed(analyzeSeed))
	result, err := a.Analyze(cmd.Context(), data, analyzeClusters)
	if err != nil {
		return err
	}

	var rendered []byte
	switch analyzeFormat {
	case "json":
		rendered, err = json.MarshalIndent(result, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode result: %w", err)
		}
		rendered = append(rendered, '\n')
	case "table":
		rendered = []byte(renderTable(result))
	default:
		return fmt.Errorf("unknown format %q (want table or json)", analyzeFormat)
	}

	if analyzeOutput != "" {
		if err := os.WriteFile(analyzeOutput, rendered, 0o644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		return nil
	}
	fmt.Fprint(cmd.OutOrStdout(), string(rendered))
	return nil
}

// renderTable formats an analysis result for terminal output.
func renderTable(result *analyzer.Result) string {
	out := fmt.Sprintf("Analysed %dx%d, %d colours:\n", result.Width, result.Height, len(result.Palette))
	for _, entry := range result.Palette {
		out += fmt.Sprintf("  %s  %5.1f%%  %s\n", entry.Hex, entry.Percent, entry.Name)
	}
	return out
}
