package cli

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/custodia-labs/safedrive/internal/core/domain"
)

var tripCmd = &cobra.Command{
	Use:   "trip",
	Short: "Record and list trips",
}

var tripAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Record a trip",
	Long: `Record a trip and save it immediately.

Values are stored exactly as given. The distance is free text; only values
made of digits with at most one decimal point count towards the summary.

Examples:
  safedrive trip add --id T1 --vehicle V1 --driver D1 --distance 12.5
  safedrive trip add --generate-id --vehicle V1 --driver D1 --distance 40`,
	Args:        cobra.NoArgs,
	Annotations: needsRecords(),
	RunE:        runTripAdd,
}

var tripListCmd = &cobra.Command{
	Use:         "list",
	Short:       "List all trips in the order they were recorded",
	Args:        cobra.NoArgs,
	Annotations: needsRecords(),
	RunE:        runTripList,
}

func init() {
	tripAddCmd.Flags().String("id", "", "trip ID")
	tripAddCmd.Flags().String("vehicle", "", "vehicle used")
	tripAddCmd.Flags().String("driver", "", "driver of the trip")
	tripAddCmd.Flags().String("distance", "", "distance in km")
	tripAddCmd.Flags().Bool("generate-id", false, "generate a trip ID when --id is empty")

	tripCmd.AddCommand(tripAddCmd)
	tripCmd.AddCommand(tripListCmd)
	rootCmd.AddCommand(tripCmd)
}

func runTripAdd(cmd *cobra.Command, _ []string) error {
	if err := requireRecords(); err != nil {
		return err
	}

	flags := cmd.Flags()
	trip := domain.Trip{
		TripID:   mustString(flags.GetString("id")),
		Vehicle:  mustString(flags.GetString("vehicle")),
		Driver:   mustString(flags.GetString("driver")),
		Distance: mustString(flags.GetString("distance")),
	}
	if generate, _ := flags.GetBool("generate-id"); generate && trip.TripID == "" {
		trip.TripID = uuid.NewString()
	}

	if err := recordService.AddTrip(cmd.Context(), trip); err != nil {
		return fmt.Errorf("failed to add trip: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Trip added successfully! (%s)\n", trip.TripID)
	return nil
}

func runTripList(cmd *cobra.Command, _ []string) error {
	if err := requireRecords(); err != nil {
		return err
	}

	trips := recordService.Trips()
	rows := make([][]string, len(trips))
	for i := range trips {
		rows[i] = trips[i].Fields()
	}
	return printTable(cmd.OutOrStdout(), domain.TripFields, rows, "No trips recorded.")
}
