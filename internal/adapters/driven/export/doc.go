// Package export provides the driven.Exporter adapters for SafeDrive reports.
//
//   - CSV: trips only, header TripID,Vehicle,Driver,Distance
//   - JSON: all records in the canonical persisted document shape
//   - PDF: summary block and trip table for printing
//
// Every exporter renders in memory and then replaces the destination
// atomically. The destination directory must exist; a bad path is reported
// as a *domain.IOFailure.
package export
