package services

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/custodia-labs/safedrive/internal/core/domain"
	"github.com/custodia-labs/safedrive/internal/core/ports/driven"
	"github.com/custodia-labs/safedrive/internal/core/ports/driving"
	"github.com/custodia-labs/safedrive/internal/logger"
)

// Ensure ReportService implements the interface.
var _ driving.ReportService = (*ReportService)(nil)

// ReportService computes summaries and writes exports from the records
// held by a RecordService. It never mutates them.
type ReportService struct {
	records   driving.RecordService
	exporters map[domain.ExportFormat]driven.Exporter
	exportDir string
}

// NewReportService creates a report service reading from records.
// Exporters are keyed by the format they produce; a later exporter for the
// same format replaces an earlier one.
func NewReportService(records driving.RecordService, exporters ...driven.Exporter) *ReportService {
	byFormat := make(map[domain.ExportFormat]driven.Exporter, len(exporters))
	for _, e := range exporters {
		byFormat[e.Format()] = e
	}
	return &ReportService{
		records:   records,
		exporters: byFormat,
	}
}

// SetExportDir sets the directory relative export paths are resolved against.
func (s *ReportService) SetExportDir(dir string) {
	s.exportDir = dir
}

// Summary computes aggregate figures over the current records.
func (s *ReportService) Summary() domain.Summary {
	if s.records == nil {
		return domain.Summary{}
	}
	return domain.Summarize(s.records.Snapshot())
}

// Export writes the current records in format to path.
func (s *ReportService) Export(ctx context.Context, format domain.ExportFormat, path string) error {
	if s.records == nil {
		return domain.ErrNotImplemented
	}
	if path == "" {
		return fmt.Errorf("export destination: %w", domain.ErrInvalidInput)
	}

	exporter, ok := s.exporters[format]
	if !ok {
		return fmt.Errorf("export %q: %w", format, domain.ErrUnsupportedFormat)
	}

	dest := s.resolve(path)
	snapshot := s.records.Snapshot()

	logger.Section("Export")
	logger.Debug("Format: %s, destination: %s", format, dest)
	logger.Debug("Records: %d trips, %d vehicles, %d drivers",
		len(snapshot.Trips), len(snapshot.Vehicles), len(snapshot.Drivers))

	if err := exporter.Export(ctx, snapshot, dest); err != nil {
		return fmt.Errorf("export %s: %w", format, err)
	}
	return nil
}

// ExportCSV writes the trips as CSV to path.
func (s *ReportService) ExportCSV(ctx context.Context, path string) error {
	return s.Export(ctx, domain.ExportCSV, path)
}

// ExportJSON writes all records as a JSON document to path.
func (s *ReportService) ExportJSON(ctx context.Context, path string) error {
	return s.Export(ctx, domain.ExportJSON, path)
}

// ExportPDF writes a printable summary to path.
func (s *ReportService) ExportPDF(ctx context.Context, path string) error {
	return s.Export(ctx, domain.ExportPDF, path)
}

func (s *ReportService) resolve(path string) string {
	if s.exportDir == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(s.exportDir, path)
}
