// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - RecordRepository: Record persistence (JSON file, SQLite, memory)
//   - Exporter: Writes one export format to a destination file
//   - ConfigStore: Application configuration
//
// # Optional Interfaces
//
//   - ChangeWatcher: Notifies when the persisted records change on disk.
//     Without it, watch mode is unavailable.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
