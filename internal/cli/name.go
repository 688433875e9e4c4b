package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/afalcongonzalez/chromaviews/internal/analyzer"
)

// nameCmd represents the name command.
var nameCmd = &cobra.Command{
	Use:   "name <hex>",
	Short: "Look up the nearest colour name for a hex value",
	Long: `Look up the nearest reference colour name for a 6-digit hex value,
with or without a leading '#'.

Examples:
  chromaviews name FF0000
  chromaviews name '#4682b4'`,
	Args: cobra.ExactArgs(1),
	RunE: runName,
}

// runName executes the name command.
func runName(cmd *cobra.Command, args []string) error {
	match, err := analyzer.New().NameForHex(args[0])
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s (ΔE %.2f)\n", match.Display(), match.DeltaE)
	return nil
}
