package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/safedrive/internal/core/domain"
)

var vehicleCmd = &cobra.Command{
	Use:   "vehicle",
	Short: "Register and list vehicles",
}

var vehicleAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Register a vehicle",
	Long: `Register a vehicle and save it immediately.

Example:
  safedrive vehicle add --id V1 --model "Toyota Hilux"`,
	Args:        cobra.NoArgs,
	Annotations: needsRecords(),
	RunE:        runVehicleAdd,
}

var vehicleListCmd = &cobra.Command{
	Use:         "list",
	Short:       "List registered vehicles",
	Args:        cobra.NoArgs,
	Annotations: needsRecords(),
	RunE:        runVehicleList,
}

func init() {
	vehicleAddCmd.Flags().String("id", "", "vehicle ID")
	vehicleAddCmd.Flags().String("model", "", "vehicle model")

	vehicleCmd.AddCommand(vehicleAddCmd)
	vehicleCmd.AddCommand(vehicleListCmd)
	rootCmd.AddCommand(vehicleCmd)
}

func runVehicleAdd(cmd *cobra.Command, _ []string) error {
	if err := requireRecords(); err != nil {
		return err
	}

	vehicle := domain.Vehicle{
		VehicleID: mustString(cmd.Flags().GetString("id")),
		Model:     mustString(cmd.Flags().GetString("model")),
	}
	if err := recordService.AddVehicle(cmd.Context(), vehicle); err != nil {
		return fmt.Errorf("failed to add vehicle: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), "Vehicle added successfully!")
	return nil
}

func runVehicleList(cmd *cobra.Command, _ []string) error {
	if err := requireRecords(); err != nil {
		return err
	}

	vehicles := recordService.Vehicles()
	rows := make([][]string, len(vehicles))
	for i, v := range vehicles {
		rows[i] = []string{v.VehicleID, v.Model}
	}
	return printTable(cmd.OutOrStdout(), []string{"VehicleID", "Model"}, rows, "No vehicles registered.")
}
