// Package mcp provides an MCP (Model Context Protocol) server adapter for SafeDrive.
// It lets AI assistants log trips, register vehicles and drivers, and pull reports.
package mcp

import "errors"

// ErrMissingRecordService is returned when the record service is not provided.
var ErrMissingRecordService = errors.New("mcp: record service is required")

// ErrMissingReportService is returned when the report service is not provided.
var ErrMissingReportService = errors.New("mcp: report service is required")
