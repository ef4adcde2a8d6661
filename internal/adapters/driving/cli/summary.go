package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Show trip, vehicle and driver totals",
	Long: `Show the number of trips, vehicles and drivers and the total distance.

Distances that are not plain numbers (digits with at most one decimal
point) are left out of the total.

With --watch the summary is printed again whenever the data file changes,
for example when another safedrive process records a trip.`,
	Args:        cobra.NoArgs,
	Annotations: needsRecords(),
	RunE:        runSummary,
}

func init() {
	summaryCmd.Flags().BoolP("watch", "w", false, "reprint the summary when the data file changes")
	rootCmd.AddCommand(summaryCmd)
}

func runSummary(cmd *cobra.Command, _ []string) error {
	if err := requireReports(); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprint(out, reportService.Summary().String())

	watch, _ := cmd.Flags().GetBool("watch")
	if !watch {
		return nil
	}
	if err := requireRecords(); err != nil {
		return err
	}
	if changeWatcher == nil {
		return errors.New("change watcher not configured")
	}
	settings, err := currentSettings()
	if err != nil {
		return err
	}
	if !settings.Backend.Persistent() {
		return fmt.Errorf("--watch needs a persistent backend, not %s", settings.Backend)
	}

	location := recordService.Location()
	changes, err := changeWatcher.Watch(cmd.Context(), location)
	if err != nil {
		return fmt.Errorf("failed to watch %s: %w", location, err)
	}
	fmt.Fprintf(out, "\nWatching %s for changes (Ctrl+C to stop)\n", location)

	for range changes {
		if err := recordService.Reload(cmd.Context()); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "Reload failed: %v\n", err)
			continue
		}
		fmt.Fprintf(out, "\n[%s]\n", now().Format("15:04:05"))
		fmt.Fprint(out, reportService.Summary().String())
	}
	return nil
}
