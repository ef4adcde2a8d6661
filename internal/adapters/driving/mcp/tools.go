package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/safedrive/internal/core/domain"
)

// AddTripInput is the input schema for the add_trip tool.
type AddTripInput struct {
	TripID     string `json:"trip_id,omitempty" jsonschema:"trip identifier, stored verbatim"`
	Vehicle    string `json:"vehicle,omitempty" jsonschema:"vehicle used for the trip"`
	Driver     string `json:"driver,omitempty" jsonschema:"driver of the trip"`
	Distance   string `json:"distance,omitempty" jsonschema:"distance in km; non-numeric text is kept but not summed"`
	GenerateID bool   `json:"generate_id,omitempty" jsonschema:"fill an empty trip_id with a random UUID"`
}

// AddVehicleInput is the input schema for the add_vehicle tool.
type AddVehicleInput struct {
	VehicleID string `json:"vehicle_id,omitempty" jsonschema:"vehicle identifier"`
	Model     string `json:"model,omitempty" jsonschema:"vehicle model"`
}

// AddDriverInput is the input schema for the add_driver tool.
type AddDriverInput struct {
	DriverID string `json:"driver_id,omitempty" jsonschema:"driver identifier"`
	Name     string `json:"name,omitempty" jsonschema:"driver name"`
}

// AddOutput reports a stored record.
type AddOutput struct {
	Message string `json:"message"`
	ID      string `json:"id"`
	Count   int    `json:"count" jsonschema:"number of records of this kind after the add"`
}

// SummarizeInput is the (empty) input schema for the summarize tool.
type SummarizeInput struct{}

// SummarizeOutput is the output schema for the summarize tool.
type SummarizeOutput struct {
	TripCount     int     `json:"trip_count"`
	TotalDistance float64 `json:"total_distance_km"`
	VehicleCount  int     `json:"vehicle_count"`
	DriverCount   int     `json:"driver_count"`
	Report        string  `json:"report"`
}

// ExportInput is the input schema for the export tool.
type ExportInput struct {
	Format string `json:"format" jsonschema:"one of csv, json or pdf"`
	Path   string `json:"path" jsonschema:"destination file; relative paths use the configured export directory"`
}

// ExportOutput is the output schema for the export tool.
type ExportOutput struct {
	Message string `json:"message"`
	Format  string `json:"format"`
	Path    string `json:"path"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "add_trip",
		Description: "Record a trip and save it",
	}, s.handleAddTrip)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "add_vehicle",
		Description: "Register a vehicle and save it",
	}, s.handleAddVehicle)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "add_driver",
		Description: "Register a driver and save it",
	}, s.handleAddDriver)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "summarize",
		Description: "Summarise trips, total distance, vehicles and drivers",
	}, s.handleSummarize)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "export",
		Description: "Export trips as CSV, all records as JSON, or a PDF report",
	}, s.handleExport)
}

func (s *Server) handleAddTrip(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input AddTripInput,
) (*mcp.CallToolResult, AddOutput, error) {
	trip := domain.Trip{
		TripID:   input.TripID,
		Vehicle:  input.Vehicle,
		Driver:   input.Driver,
		Distance: input.Distance,
	}
	if input.GenerateID && trip.TripID == "" {
		trip.TripID = uuid.NewString()
	}

	if err := s.ports.Records.AddTrip(ctx, trip); err != nil {
		return nil, AddOutput{}, fmt.Errorf("adding trip: %w", err)
	}

	return nil, AddOutput{
		Message: "Trip added successfully!",
		ID:      trip.TripID,
		Count:   len(s.ports.Records.Trips()),
	}, nil
}

func (s *Server) handleAddVehicle(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input AddVehicleInput,
) (*mcp.CallToolResult, AddOutput, error) {
	vehicle := domain.Vehicle{VehicleID: input.VehicleID, Model: input.Model}
	if err := s.ports.Records.AddVehicle(ctx, vehicle); err != nil {
		return nil, AddOutput{}, fmt.Errorf("adding vehicle: %w", err)
	}

	return nil, AddOutput{
		Message: "Vehicle added successfully!",
		ID:      vehicle.VehicleID,
		Count:   len(s.ports.Records.Vehicles()),
	}, nil
}

func (s *Server) handleAddDriver(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input AddDriverInput,
) (*mcp.CallToolResult, AddOutput, error) {
	driver := domain.Driver{DriverID: input.DriverID, Name: input.Name}
	if err := s.ports.Records.AddDriver(ctx, driver); err != nil {
		return nil, AddOutput{}, fmt.Errorf("adding driver: %w", err)
	}

	return nil, AddOutput{
		Message: "Driver added successfully!",
		ID:      driver.DriverID,
		Count:   len(s.ports.Records.Drivers()),
	}, nil
}

func (s *Server) handleSummarize(
	_ context.Context,
	_ *mcp.CallToolRequest,
	_ SummarizeInput,
) (*mcp.CallToolResult, SummarizeOutput, error) {
	summary := s.ports.Reports.Summary()
	return nil, SummarizeOutput{
		TripCount:     summary.TripCount,
		TotalDistance: summary.TotalDistance,
		VehicleCount:  summary.VehicleCount,
		DriverCount:   summary.DriverCount,
		Report:        summary.String(),
	}, nil
}

func (s *Server) handleExport(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ExportInput,
) (*mcp.CallToolResult, ExportOutput, error) {
	format, err := domain.ParseExportFormat(input.Format)
	if err != nil {
		return nil, ExportOutput{}, err
	}
	if input.Path == "" {
		return nil, ExportOutput{}, fmt.Errorf("path is required: %w", domain.ErrInvalidInput)
	}

	if err := s.ports.Reports.Export(ctx, format, input.Path); err != nil {
		return nil, ExportOutput{}, fmt.Errorf("exporting %s: %w", format, err)
	}

	return nil, ExportOutput{
		Message: fmt.Sprintf("Data saved as %s!", strings.ToUpper(format.String())),
		Format:  format.String(),
		Path:    input.Path,
	}, nil
}
