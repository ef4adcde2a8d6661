package mcp

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/safedrive/internal/core/domain"
)

// mockRecordService is a mock implementation of driving.RecordService.
type mockRecordService struct {
	records domain.Records
	err     error
}

func (m *mockRecordService) Open(_ context.Context) error   { return nil }
func (m *mockRecordService) Reload(_ context.Context) error { return nil }

func (m *mockRecordService) AddTrip(_ context.Context, trip domain.Trip) error {
	if m.err != nil {
		return m.err
	}
	m.records.Trips = append(m.records.Trips, trip)
	return nil
}

func (m *mockRecordService) AddVehicle(_ context.Context, vehicle domain.Vehicle) error {
	if m.err != nil {
		return m.err
	}
	m.records.Vehicles = append(m.records.Vehicles, vehicle)
	return nil
}

func (m *mockRecordService) AddDriver(_ context.Context, driver domain.Driver) error {
	if m.err != nil {
		return m.err
	}
	m.records.Drivers = append(m.records.Drivers, driver)
	return nil
}

func (m *mockRecordService) Trips() []domain.Trip       { return m.records.Trips }
func (m *mockRecordService) Vehicles() []domain.Vehicle { return m.records.Vehicles }
func (m *mockRecordService) Drivers() []domain.Driver   { return m.records.Drivers }
func (m *mockRecordService) Snapshot() domain.Records   { return m.records.Clone() }
func (m *mockRecordService) Location() string           { return ":memory:" }

// mockReportService is a mock implementation of driving.ReportService.
type mockReportService struct {
	summary  domain.Summary
	exported []string
	err      error
}

func (m *mockReportService) Summary() domain.Summary {
	return m.summary
}

func (m *mockReportService) Export(_ context.Context, format domain.ExportFormat, path string) error {
	if m.err != nil {
		return m.err
	}
	m.exported = append(m.exported, format.String()+":"+path)
	return nil
}

func (m *mockReportService) ExportCSV(ctx context.Context, path string) error {
	return m.Export(ctx, domain.ExportCSV, path)
}

func (m *mockReportService) ExportJSON(ctx context.Context, path string) error {
	return m.Export(ctx, domain.ExportJSON, path)
}

func (m *mockReportService) ExportPDF(ctx context.Context, path string) error {
	return m.Export(ctx, domain.ExportPDF, path)
}

func newTestServer(t *testing.T, records *mockRecordService, reports *mockReportService) *Server {
	t.Helper()
	server, err := NewServer(&Ports{Records: records, Reports: reports})
	require.NoError(t, err)
	return server
}
