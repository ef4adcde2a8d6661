package mcp

import (
	"github.com/custodia-labs/safedrive/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
type Ports struct {
	// Records adds and lists trips, vehicles and drivers.
	Records driving.RecordService

	// Reports exports records and computes the summary.
	Reports driving.ReportService
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
