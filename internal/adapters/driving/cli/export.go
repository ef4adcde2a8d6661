package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/safedrive/internal/core/domain"
)

var exportCmd = &cobra.Command{
	Use:   "export <csv|json|pdf> <path>",
	Short: "Export records to a file",
	Long: `Export records to a file, replacing it if it exists.

Formats:
  csv  - trips only, with a TripID,Vehicle,Driver,Distance header
  json - trips, vehicles and drivers in the data file layout
  pdf  - printable report with the summary and a trip table

Relative paths are resolved against the export.dir setting when it is set.

Examples:
  safedrive export csv trips.csv
  safedrive export json backup.json`,
	Args:        cobra.ExactArgs(2),
	Annotations: needsRecords(),
	ValidArgsFunction: func(_ *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
		if len(args) != 0 {
			return nil, cobra.ShellCompDirectiveDefault
		}
		formats := domain.ExportFormats()
		names := make([]string, len(formats))
		for i, f := range formats {
			names[i] = f.String()
		}
		return names, cobra.ShellCompDirectiveNoFileComp
	},
	RunE: runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	if err := requireReports(); err != nil {
		return err
	}

	format, err := domain.ParseExportFormat(args[0])
	if err != nil {
		return fmt.Errorf("%q: %w (use csv, json or pdf)", args[0], err)
	}

	if err := reportService.Export(cmd.Context(), format, args[1]); err != nil {
		return fmt.Errorf("failed to export: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Data saved as %s!\n", strings.ToUpper(format.String()))
	return nil
}
