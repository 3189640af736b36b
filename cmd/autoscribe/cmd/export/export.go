package export

import (
	"fmt"

	"github.com/spf13/cobra"

	"autoscribe/internal/app/converter/export"
)

// Cmd represents the export command
var Cmd = &cobra.Command{
	Use:   "export <transcript.json> <output.xlsx>",
	Short: "Export a json transcript to excel",
	Long: `Export a json transcript to excel

- Reads a transcript written with --format json
- Writes one row per segment with start, end and text`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := export.FileToExcel(args[0], args[1]); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "export finished, exported file path: %v\n", args[1])
		return nil
	},
}
