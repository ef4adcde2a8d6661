// Package domain defines the core business entities for SafeDrive.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Trip: A single journey, with its distance kept as raw text
//   - Vehicle: A registered vehicle
//   - Driver: A registered driver
//   - Records: The three ordered collections as one snapshot
//   - Summary: Aggregate figures derived from Records
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
