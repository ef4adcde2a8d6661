// Package reports provides the summary and export view for the TUI.
package reports

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/safedrive/internal/adapters/driving/tui/components/input"
	"github.com/custodia-labs/safedrive/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/safedrive/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/safedrive/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/safedrive/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/safedrive/internal/core/domain"
	"github.com/custodia-labs/safedrive/internal/core/ports/driving"
)

var (
	// ErrNoReportService is reported when no report service is configured.
	ErrNoReportService = errors.New("report service not available")

	// ErrNoPath is reported when an export is started without a file name.
	ErrNoPath = errors.New("enter a file name to save to")
)

// Action is an entry of the reports menu.
type Action struct {
	Label  string
	Format domain.ExportFormat // empty for the summary refresh
}

// View shows the summary and runs exports.
type View struct {
	styles  *styles.Styles
	keymap  *keymap.KeyMap
	reports driving.ReportService
	ctx     context.Context

	actions  []Action
	selected int
	path     *input.Field
	summary  domain.Summary
	status   *status.Bar

	width  int
	height int
	ready  bool
}

// NewView creates the reports view.
func NewView(s *styles.Styles, reports driving.ReportService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	km := keymap.DefaultKeyMap()

	path := input.NewField(s, "Save as", "file name, e.g. trips.csv")
	path.Focus()

	bar := status.NewBar(s, km)

	return &View{
		styles:  s,
		keymap:  km,
		reports: reports,
		ctx:     context.Background(),
		actions: []Action{
			{Label: "Save Data (CSV)", Format: domain.ExportCSV},
			{Label: "Save Data (JSON)", Format: domain.ExportJSON},
			{Label: "Save Report (PDF)", Format: domain.ExportPDF},
			{Label: "Show Summary"},
		},
		path:   path,
		status: bar,
		width:  80,
		height: 24,
	}
}

// SetContext sets the context used for exports.
func (v *View) SetContext(ctx context.Context) {
	v.ctx = ctx
}

// Init loads the current summary.
func (v *View) Init() tea.Cmd {
	return v.loadSummary()
}

// Reset clears the path and status line.
func (v *View) Reset() {
	v.path.Reset()
	v.status.Clear()
	v.selected = 0
}

func (v *View) loadSummary() tea.Cmd {
	reports := v.reports
	if reports == nil {
		return nil
	}
	return func() tea.Msg {
		return messages.SummaryLoaded{Summary: reports.Summary()}
	}
}

// Update handles messages for the reports view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case messages.SummaryLoaded:
		v.summary = msg.Summary
		return v, nil

	case messages.ExportCompleted:
		if msg.Err != nil {
			v.status.SetError(msg.Err)
			return v, nil
		}
		v.status.SetSuccess(fmt.Sprintf("Data saved as %s! (%s)", strings.ToUpper(msg.Format.String()), msg.Path))
		return v, nil

	case tea.KeyMsg:
		return v.handleKey(msg)
	}

	return v, nil
}

func (v *View) handleKey(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		return v, func() tea.Msg {
			return messages.ViewChanged{View: messages.ViewMenu}
		}
	case tea.KeyUp, tea.KeyShiftTab:
		if v.selected > 0 {
			v.selected--
		}
		return v, nil
	case tea.KeyDown, tea.KeyTab:
		if v.selected < len(v.actions)-1 {
			v.selected++
		}
		return v, nil
	case tea.KeyEnter:
		return v, v.run(v.actions[v.selected])
	}

	var cmd tea.Cmd
	v.path, cmd = v.path.Update(msg)
	return v, cmd
}

// run starts action.
func (v *View) run(action Action) tea.Cmd {
	if v.reports == nil {
		v.status.SetError(ErrNoReportService)
		return nil
	}
	if action.Format == "" {
		v.status.Clear()
		return v.loadSummary()
	}

	path := v.path.Value()
	if strings.TrimSpace(path) == "" {
		v.status.SetError(ErrNoPath)
		return nil
	}
	path = WithExtension(path, action.Format)

	v.status.SetWorking("Saving...")
	ctx, reports, format := v.ctx, v.reports, action.Format
	return func() tea.Msg {
		return messages.ExportCompleted{Format: format, Path: path, Err: reports.Export(ctx, format, path)}
	}
}

// WithExtension appends the format's extension when path has none.
func WithExtension(path string, format domain.ExportFormat) string {
	if filepath.Ext(path) != "" {
		return path
	}
	return path + format.Extension()
}

// View renders the reports view.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	var b strings.Builder
	b.WriteString(v.styles.Title.Render("Reports"))
	b.WriteString("\n\n")

	b.WriteString(v.styles.Panel.Render(v.renderSummary()))
	b.WriteString("\n\n")

	for i, action := range v.actions {
		cursor := "  "
		style := v.styles.Normal
		if i == v.selected {
			cursor = "> "
			style = v.styles.Selected
		}
		b.WriteString(cursor + style.Render(action.Label))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(v.path.View())
	b.WriteString("\n\n")
	b.WriteString(v.styles.Help.Render("[↑/↓] Choose  [Enter] Run  [Esc] Back"))
	b.WriteString("\n")
	b.WriteString(v.status.View())
	return b.String()
}

func (v *View) renderSummary() string {
	fig := v.styles.Figure.Render
	lines := []string{
		"Total Trips: " + fig(fmt.Sprintf("%d", v.summary.TripCount)),
		"Total Distance: " + fig(domain.FormatDistance(v.summary.TotalDistance)) + " km",
		"Vehicles Registered: " + fig(fmt.Sprintf("%d", v.summary.VehicleCount)),
		"Drivers Registered: " + fig(fmt.Sprintf("%d", v.summary.DriverCount)),
	}
	return strings.Join(lines, "\n")
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
	v.path.SetWidth(width)
	v.status.SetWidth(width)
}

// Summary returns the last loaded summary.
func (v *View) Summary() domain.Summary {
	return v.summary
}

// Selected returns the index of the highlighted action.
func (v *View) Selected() int {
	return v.selected
}

// Status returns the status bar.
func (v *View) Status() *status.Bar {
	return v.status
}
