package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/safedrive/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/safedrive/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/safedrive/internal/adapters/driving/tui/views/form"
	"github.com/custodia-labs/safedrive/internal/adapters/driving/tui/views/menu"
	"github.com/custodia-labs/safedrive/internal/adapters/driving/tui/views/reports"
	"github.com/custodia-labs/safedrive/internal/adapters/driving/tui/views/settings"
)

// App is the main TUI application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	// ports provides access to core services via driving ports.
	ports *Ports

	// ctx is passed to every core call made by the views.
	ctx context.Context

	styles *styles.Styles

	menuView     *menu.View
	tripForm     *form.View
	vehicleForm  *form.View
	driverForm   *form.View
	reportsView  *reports.View
	settingsView *settings.View

	// currentView tracks which view is active.
	currentView messages.ViewType

	// err holds the last error that occurred.
	err error

	width  int
	height int
	ready  bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application with the given ports.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	s := styles.DefaultStyles()
	return &App{
		ports:        ports,
		ctx:          context.Background(),
		styles:       s,
		menuView:     menu.NewView(s),
		tripForm:     form.NewView(s, form.TripSpec, ports.Records),
		vehicleForm:  form.NewView(s, form.VehicleSpec, ports.Records),
		driverForm:   form.NewView(s, form.DriverSpec, ports.Records),
		reportsView:  reports.NewView(s, ports.Reports),
		settingsView: settings.NewView(s, ports.Settings),
		currentView:  messages.ViewMenu, // Start with menu
	}, nil
}

// WithContext sets the context for the app and its views.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	for _, f := range a.forms() {
		f.SetContext(ctx)
	}
	a.reportsView.SetContext(ctx)
	return a
}

func (a *App) forms() []*form.View {
	return []*form.View{a.tripForm, a.vehicleForm, a.driverForm}
}

// formFor returns the form shown for view, or nil.
func (a *App) formFor(view messages.ViewType) *form.View {
	switch view {
	case messages.ViewTrip:
		return a.tripForm
	case messages.ViewVehicle:
		return a.vehicleForm
	case messages.ViewDriver:
		return a.driverForm
	default:
		return nil
	}
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.EnterAltScreen,
		tea.SetWindowTitle("SafeDrive - Vehicle Trip Logger"),
	)
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		// Global quit with ctrl+c
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}
		if a.currentView == messages.ViewHelp {
			if msg.Type == tea.KeyEsc {
				a.currentView = messages.ViewMenu
			}
			return a, nil
		}
		return a, a.forward(msg)

	case messages.ViewChanged:
		return a, a.switchTo(msg.View)

	case messages.RecordAdded:
		a.err = msg.Err
		for _, f := range a.forms() {
			if f.Kind() == msg.Kind {
				_, cmd = f.Update(msg)
				return a, cmd
			}
		}
		return a, nil

	case messages.ExportCompleted:
		a.err = msg.Err
		a.reportsView, cmd = a.reportsView.Update(msg)
		return a, cmd

	case messages.SummaryLoaded:
		a.reportsView, cmd = a.reportsView.Update(msg)
		return a, cmd

	case messages.SettingsLoaded, messages.SettingsSaved:
		a.settingsView, cmd = a.settingsView.Update(msg)
		return a, cmd

	case messages.ErrorOccurred:
		a.err = msg.Err
		return a, nil

	case messages.Quit:
		return a, tea.Quit
	}

	return a, a.forward(msg)
}

// switchTo activates view, resetting and initialising it.
func (a *App) switchTo(view messages.ViewType) tea.Cmd {
	a.currentView = view
	if f := a.formFor(view); f != nil {
		f.Reset()
		return f.Init()
	}
	switch view {
	case messages.ViewReports:
		a.reportsView.Reset()
		return a.reportsView.Init()
	case messages.ViewSettings:
		a.settingsView.Reset()
		return a.settingsView.Init()
	case messages.ViewMenu, messages.ViewHelp:
		// No initialisation needed
	}
	return nil
}

// forward passes msg to the active view.
func (a *App) forward(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	if f := a.formFor(a.currentView); f != nil {
		_, cmd = f.Update(msg)
		return cmd
	}
	switch a.currentView {
	case messages.ViewMenu:
		a.menuView, cmd = a.menuView.Update(msg)
	case messages.ViewReports:
		a.reportsView, cmd = a.reportsView.Update(msg)
	case messages.ViewSettings:
		a.settingsView, cmd = a.settingsView.Update(msg)
	}
	return cmd
}

// View implements tea.Model.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	if f := a.formFor(a.currentView); f != nil {
		return f.View()
	}
	switch a.currentView {
	case messages.ViewReports:
		return a.reportsView.View()
	case messages.ViewSettings:
		return a.settingsView.View()
	case messages.ViewHelp:
		return a.viewHelp()
	default:
		return a.menuView.View()
	}
}

// viewHelp renders the help view.
func (a *App) viewHelp() string {
	return `Help

Navigation:
  esc          Back to Menu
  ctrl+c       Quit

Menu:
  j/k, ↑/↓     Navigate options
  enter        Select option
  q            Quit

Forms:
  tab          Next field
  shift+tab    Previous field
  ctrl+g       Generate an ID
  enter        Add record

Reports:
  ↑/↓, tab     Choose action
  (type)       File to save as
  enter        Run action

Settings:
  j/k, ↑/↓     Navigate settings
  enter        Change setting

[esc] back to menu`
}

// Run starts the TUI application.
func (a *App) Run() error {
	p := tea.NewProgram(a, tea.WithAltScreen(), tea.WithContext(a.ctx))
	_, err := p.Run()
	return err
}

// CurrentView returns the current view type.
func (a *App) CurrentView() messages.ViewType {
	return a.currentView
}

// Err returns the last error that occurred.
func (a *App) Err() error {
	return a.err
}

// Ready returns whether the app has been initialised.
func (a *App) Ready() bool {
	return a.ready
}

// SetDimensions sets the terminal dimensions on the app and every view.
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true
	a.menuView.SetDimensions(width, height)
	for _, f := range a.forms() {
		f.SetDimensions(width, height)
	}
	a.reportsView.SetDimensions(width, height)
	a.settingsView.SetDimensions(width, height)
}
