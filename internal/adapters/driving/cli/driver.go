package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/safedrive/internal/core/domain"
)

var driverCmd = &cobra.Command{
	Use:   "driver",
	Short: "Register and list drivers",
}

var driverAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Register a driver",
	Long: `Register a driver and save it immediately.

Example:
  safedrive driver add --id D1 --name "Ana Silva"`,
	Args:        cobra.NoArgs,
	Annotations: needsRecords(),
	RunE:        runDriverAdd,
}

var driverListCmd = &cobra.Command{
	Use:         "list",
	Short:       "List registered drivers",
	Args:        cobra.NoArgs,
	Annotations: needsRecords(),
	RunE:        runDriverList,
}

func init() {
	driverAddCmd.Flags().String("id", "", "driver ID")
	driverAddCmd.Flags().String("name", "", "driver name")

	driverCmd.AddCommand(driverAddCmd)
	driverCmd.AddCommand(driverListCmd)
	rootCmd.AddCommand(driverCmd)
}

func runDriverAdd(cmd *cobra.Command, _ []string) error {
	if err := requireRecords(); err != nil {
		return err
	}

	driver := domain.Driver{
		DriverID: mustString(cmd.Flags().GetString("id")),
		Name:     mustString(cmd.Flags().GetString("name")),
	}
	if err := recordService.AddDriver(cmd.Context(), driver); err != nil {
		return fmt.Errorf("failed to add driver: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), "Driver added successfully!")
	return nil
}

func runDriverList(cmd *cobra.Command, _ []string) error {
	if err := requireRecords(); err != nil {
		return err
	}

	drivers := recordService.Drivers()
	rows := make([][]string, len(drivers))
	for i, d := range drivers {
		rows[i] = []string{d.DriverID, d.Name}
	}
	return printTable(cmd.OutOrStdout(), []string{"DriverID", "Name"}, rows, "No drivers registered.")
}
