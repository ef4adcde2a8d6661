// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"github.com/custodia-labs/safedrive/internal/core/domain"
)

// ViewChanged is sent when navigating between views.
type ViewChanged struct {
	View ViewType
}

// ViewType identifies which view is currently active.
type ViewType int

const (
	// ViewMenu is the main navigation menu.
	ViewMenu ViewType = iota
	// ViewTrip is the add trip form.
	ViewTrip
	// ViewVehicle is the add vehicle form.
	ViewVehicle
	// ViewDriver is the add driver form.
	ViewDriver
	// ViewReports shows the summary and export actions.
	ViewReports
	// ViewSettings shows the current settings.
	ViewSettings
	// ViewHelp is the help/keybindings view.
	ViewHelp
)

// String returns the string representation of the view type.
func (v ViewType) String() string {
	switch v {
	case ViewMenu:
		return "menu"
	case ViewTrip:
		return "trip"
	case ViewVehicle:
		return "vehicle"
	case ViewDriver:
		return "driver"
	case ViewReports:
		return "reports"
	case ViewSettings:
		return "settings"
	case ViewHelp:
		return "help"
	default:
		return "unknown"
	}
}

// ErrorOccurred signals that an error happened.
type ErrorOccurred struct {
	Err error
}

// Quit signals the application should exit.
type Quit struct{}

// RecordAdded reports the outcome of adding a trip, vehicle or driver.
type RecordAdded struct {
	// Kind is "Trip", "Vehicle" or "Driver".
	Kind string
	Err  error
}

// SummaryLoaded carries freshly computed report figures.
type SummaryLoaded struct {
	Summary domain.Summary
}

// ExportCompleted reports the outcome of an export.
type ExportCompleted struct {
	Format domain.ExportFormat
	Path   string
	Err    error
}

// SettingsLoaded carries the application settings.
type SettingsLoaded struct {
	Settings *domain.AppSettings
	Err      error
}

// SettingsSaved signals a setting was saved.
type SettingsSaved struct {
	Key string
	Err error
}
