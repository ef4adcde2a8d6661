// Package tui provides an interactive terminal user interface for safedrive.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/custodia-labs/safedrive/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the TUI.
type Ports struct {
	// Records adds and lists trips, vehicles and drivers.
	Records driving.RecordService

	// Reports exports records and computes the summary.
	Reports driving.ReportService

	// Settings manages application settings. Optional.
	Settings driving.SettingsService
}

// NewPorts creates a new Ports aggregate with the given services.
func NewPorts(
	records driving.RecordService,
	reports driving.ReportService,
	settings driving.SettingsService,
) *Ports {
	return &Ports{
		Records:  records,
		Reports:  reports,
		Settings: settings,
	}
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p == nil || p.Records == nil {
		return ErrMissingRecordService
	}
	if p.Reports == nil {
		return ErrMissingReportService
	}
	return nil
}
