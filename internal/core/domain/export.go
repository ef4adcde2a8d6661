package domain

import "strings"

// ExportFormat identifies an export document type.
type ExportFormat string

// Available export formats.
const (
	// ExportCSV writes the trips as comma separated values.
	ExportCSV ExportFormat = "csv"

	// ExportJSON writes all records in the persisted document shape.
	ExportJSON ExportFormat = "json"

	// ExportPDF writes a printable summary with a trip table.
	ExportPDF ExportFormat = "pdf"
)

// ExportFormats returns all supported formats in display order.
func ExportFormats() []ExportFormat {
	return []ExportFormat{ExportCSV, ExportJSON, ExportPDF}
}

// ParseExportFormat resolves a user supplied format name, ignoring case.
func ParseExportFormat(s string) (ExportFormat, error) {
	f := ExportFormat(strings.ToLower(strings.TrimSpace(s)))
	if !f.IsValid() {
		return "", ErrUnsupportedFormat
	}
	return f, nil
}

// IsValid returns true if the format is recognised.
func (f ExportFormat) IsValid() bool {
	switch f {
	case ExportCSV, ExportJSON, ExportPDF:
		return true
	default:
		return false
	}
}

// Extension returns the conventional file extension including the dot.
func (f ExportFormat) Extension() string {
	return "." + string(f)
}

// String returns the string representation.
func (f ExportFormat) String() string {
	return string(f)
}
