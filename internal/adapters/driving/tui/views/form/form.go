// Package form provides the add trip, add vehicle and add driver views.
// Each form saves through the record service as soon as it is submitted;
// field values are passed on exactly as typed.
package form

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/custodia-labs/safedrive/internal/adapters/driving/tui/components/input"
	"github.com/custodia-labs/safedrive/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/safedrive/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/safedrive/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/safedrive/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/safedrive/internal/core/domain"
	"github.com/custodia-labs/safedrive/internal/core/ports/driving"
)

// ErrNoRecordService is reported when a form is submitted without a record service.
var ErrNoRecordService = errors.New("record service not available")

// Field describes one input of a form.
type Field struct {
	Label       string
	Placeholder string
}

// Spec describes a record form.
type Spec struct {
	// Kind names the record type in messages ("Trip").
	Kind string

	// Fields are shown top to bottom. The first field holds the record ID.
	Fields []Field

	// Submit stores the values, given in field order.
	Submit func(ctx context.Context, records driving.RecordService, values []string) error
}

// TripSpec is the add trip form.
var TripSpec = Spec{
	Kind: "Trip",
	Fields: []Field{
		{Label: "Trip ID", Placeholder: "T-001"},
		{Label: "Vehicle", Placeholder: "vehicle ID or plate"},
		{Label: "Driver", Placeholder: "driver ID or name"},
		{Label: "Distance", Placeholder: "km, e.g. 12.5"},
	},
	Submit: func(ctx context.Context, records driving.RecordService, v []string) error {
		return records.AddTrip(ctx, domain.Trip{TripID: v[0], Vehicle: v[1], Driver: v[2], Distance: v[3]})
	},
}

// VehicleSpec is the add vehicle form.
var VehicleSpec = Spec{
	Kind: "Vehicle",
	Fields: []Field{
		{Label: "Vehicle ID", Placeholder: "V-001"},
		{Label: "Model", Placeholder: "make and model"},
	},
	Submit: func(ctx context.Context, records driving.RecordService, v []string) error {
		return records.AddVehicle(ctx, domain.Vehicle{VehicleID: v[0], Model: v[1]})
	},
}

// DriverSpec is the add driver form.
var DriverSpec = Spec{
	Kind: "Driver",
	Fields: []Field{
		{Label: "Driver ID", Placeholder: "D-001"},
		{Label: "Name", Placeholder: "full name"},
	},
	Submit: func(ctx context.Context, records driving.RecordService, v []string) error {
		return records.AddDriver(ctx, domain.Driver{DriverID: v[0], Name: v[1]})
	},
}

// View is a record entry form.
type View struct {
	styles  *styles.Styles
	keymap  *keymap.KeyMap
	spec    Spec
	records driving.RecordService
	ctx     context.Context

	fields  []*input.Field
	focused int
	status  *status.Bar
	saving  bool

	width  int
	height int
	ready  bool
}

// NewView creates a form for spec backed by records.
func NewView(s *styles.Styles, spec Spec, records driving.RecordService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	km := keymap.DefaultKeyMap()

	fields := make([]*input.Field, len(spec.Fields))
	for i, f := range spec.Fields {
		fields[i] = input.NewField(s, f.Label, f.Placeholder)
	}

	bar := status.NewBar(s, km)
	bar.SetBindings(km.FormHelp())

	v := &View{
		styles:  s,
		keymap:  km,
		spec:    spec,
		records: records,
		ctx:     context.Background(),
		fields:  fields,
		status:  bar,
		width:   80,
		height:  24,
	}
	v.focus(0)
	return v
}

// SetContext sets the context used for saving.
func (v *View) SetContext(ctx context.Context) {
	v.ctx = ctx
}

// Init focuses the first field.
func (v *View) Init() tea.Cmd {
	return v.focus(0)
}

// Reset clears all fields and the status line.
func (v *View) Reset() {
	for _, f := range v.fields {
		f.Reset()
	}
	v.status.Clear()
	v.saving = false
	v.focus(0)
}

// Update handles messages for the form.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case messages.RecordAdded:
		if msg.Kind != v.spec.Kind {
			return v, nil
		}
		v.saving = false
		if msg.Err != nil {
			v.status.SetError(msg.Err)
			return v, nil
		}
		v.status.SetSuccess(fmt.Sprintf("%s added successfully!", v.spec.Kind))
		return v, nil

	case tea.KeyMsg:
		return v.handleKey(msg)
	}

	return v, nil
}

func (v *View) handleKey(msg tea.KeyMsg) (*View, tea.Cmd) {
	key := msg.String()
	switch {
	case keymap.Matches(key, v.keymap.Back):
		return v, func() tea.Msg {
			return messages.ViewChanged{View: messages.ViewMenu}
		}

	case keymap.Matches(key, v.keymap.NextField):
		return v, v.focus((v.focused + 1) % len(v.fields))

	case keymap.Matches(key, v.keymap.PrevField):
		return v, v.focus((v.focused - 1 + len(v.fields)) % len(v.fields))

	case keymap.Matches(key, v.keymap.GenerateID):
		if v.fields[0].Value() == "" {
			v.fields[0].SetValue(uuid.NewString())
		}
		return v, nil

	case keymap.Matches(key, v.keymap.Submit):
		return v, v.submit()
	}

	var cmd tea.Cmd
	v.fields[v.focused], cmd = v.fields[v.focused].Update(msg)
	return v, cmd
}

// submit saves the current values. Repeated submits while a save is in
// flight are ignored.
func (v *View) submit() tea.Cmd {
	if v.saving {
		return nil
	}
	if v.records == nil {
		v.status.SetError(ErrNoRecordService)
		return nil
	}

	values := v.Values()
	v.saving = true
	v.status.SetWorking("Saving...")

	ctx, records, spec := v.ctx, v.records, v.spec
	return func() tea.Msg {
		return messages.RecordAdded{Kind: spec.Kind, Err: spec.Submit(ctx, records, values)}
	}
}

func (v *View) focus(i int) tea.Cmd {
	for j, f := range v.fields {
		if j != i {
			f.Blur()
		}
	}
	v.focused = i
	return v.fields[i].Focus()
}

// View renders the form.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	var b strings.Builder
	b.WriteString(v.styles.Title.Render(v.spec.Kind + " Manager"))
	b.WriteString("\n\n")

	for _, f := range v.fields {
		b.WriteString(f.View())
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(v.status.View())
	return b.String()
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
	for _, f := range v.fields {
		f.SetWidth(width)
	}
	v.status.SetWidth(width)
}

// Kind returns the record type handled by the form.
func (v *View) Kind() string {
	return v.spec.Kind
}

// Values returns the field values in order.
func (v *View) Values() []string {
	values := make([]string, len(v.fields))
	for i, f := range v.fields {
		values[i] = f.Value()
	}
	return values
}

// Focused returns the index of the focused field.
func (v *View) Focused() int {
	return v.focused
}

// Status returns the status bar.
func (v *View) Status() *status.Bar {
	return v.status
}
