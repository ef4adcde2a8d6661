// Package services implements the driving port interfaces.
// Services contain the core business logic and orchestrate
// calls to driven ports (adapters).
//
// RecordService is the single owner of the in-memory records; every other
// service reads from it. Services are pure Go with no CGO or external
// dependencies.
package services
