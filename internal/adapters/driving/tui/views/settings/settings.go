// Package settings provides the settings view for the TUI.
package settings

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/safedrive/internal/adapters/driving/tui/components/input"
	"github.com/custodia-labs/safedrive/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/safedrive/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/safedrive/internal/core/domain"
	"github.com/custodia-labs/safedrive/internal/core/ports/driving"
)

// ErrNoSettingsService is reported when no settings service is configured.
var ErrNoSettingsService = errors.New("settings service not available")

// Item is an editable setting.
type Item struct {
	Key   string
	Label string
}

var items = []Item{
	{Key: domain.SettingStorageBackend, Label: "Storage backend"},
	{Key: domain.SettingStoragePath, Label: "Data file"},
	{Key: domain.SettingExportDir, Label: "Export directory"},
	{Key: domain.SettingLogVerbose, Label: "Verbose logging"},
}

var backends = []domain.StorageBackend{domain.StorageJSON, domain.StorageSQLite, domain.StorageMemory}

// View is the settings view.
type View struct {
	styles          *styles.Styles
	settingsService driving.SettingsService

	settings *domain.AppSettings
	err      error
	notice   string

	selected int
	editing  bool
	editor   *input.Field

	width  int
	height int
	ready  bool
}

// NewView creates a new settings view.
func NewView(s *styles.Styles, settingsService driving.SettingsService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &View{
		styles:          s,
		settingsService: settingsService,
		editor:          input.NewField(s, "Value", ""),
	}
}

// Init loads the current settings.
func (v *View) Init() tea.Cmd {
	return v.loadSettings()
}

// Reset leaves edit mode and clears messages.
func (v *View) Reset() {
	v.editing = false
	v.editor.Blur()
	v.err = nil
	v.notice = ""
	v.selected = 0
}

func (v *View) loadSettings() tea.Cmd {
	svc := v.settingsService
	return func() tea.Msg {
		if svc == nil {
			return messages.SettingsLoaded{Err: ErrNoSettingsService}
		}
		settings, err := svc.Get()
		return messages.SettingsLoaded{Settings: settings, Err: err}
	}
}

func (v *View) save(key, value string) tea.Cmd {
	svc := v.settingsService
	return func() tea.Msg {
		if svc == nil {
			return messages.SettingsSaved{Key: key, Err: ErrNoSettingsService}
		}
		return messages.SettingsSaved{Key: key, Err: svc.Set(key, value)}
	}
}

// Update handles messages for the settings view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case messages.SettingsLoaded:
		if msg.Err != nil {
			v.err = msg.Err
		} else {
			v.settings = msg.Settings
			v.err = nil
		}
		return v, nil

	case messages.SettingsSaved:
		if msg.Err != nil {
			v.err = msg.Err
			return v, nil
		}
		v.err = nil
		v.notice = fmt.Sprintf("Saved %s", msg.Key)
		if strings.HasPrefix(msg.Key, "storage.") {
			v.notice += " (applies on next start)"
		}
		return v, v.loadSettings()

	case tea.KeyMsg:
		if v.editing {
			return v.handleEditKey(msg)
		}
		return v.handleKey(msg)
	}

	return v, nil
}

func (v *View) handleKey(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch msg.String() {
	case "esc":
		return v, func() tea.Msg {
			return messages.ViewChanged{View: messages.ViewMenu}
		}
	case "up", "k":
		if v.selected > 0 {
			v.selected--
		}
	case "down", "j":
		if v.selected < len(items)-1 {
			v.selected++
		}
	case "enter":
		if v.settings == nil {
			return v, nil
		}
		return v, v.activate(items[v.selected])
	}
	return v, nil
}

// activate changes the selected setting: backends cycle, booleans
// toggle and text values open the editor.
func (v *View) activate(item Item) tea.Cmd {
	switch item.Key {
	case domain.SettingStorageBackend:
		return v.save(item.Key, nextBackend(v.settings.Backend).String())
	case domain.SettingLogVerbose:
		return v.save(item.Key, strconv.FormatBool(!v.settings.Verbose))
	default:
		v.editing = true
		v.editor.SetValue(v.value(item.Key))
		return v.editor.Focus()
	}
}

func (v *View) handleEditKey(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		v.editing = false
		v.editor.Blur()
		return v, nil
	case tea.KeyEnter:
		v.editing = false
		v.editor.Blur()
		return v, v.save(items[v.selected].Key, v.editor.Value())
	}

	var cmd tea.Cmd
	v.editor, cmd = v.editor.Update(msg)
	return v, cmd
}

func nextBackend(current domain.StorageBackend) domain.StorageBackend {
	for i, b := range backends {
		if b == current {
			return backends[(i+1)%len(backends)]
		}
	}
	return backends[0]
}

func (v *View) value(key string) string {
	if v.settings == nil {
		return ""
	}
	switch key {
	case domain.SettingStorageBackend:
		return v.settings.Backend.String()
	case domain.SettingStoragePath:
		return v.settings.RecordPath()
	case domain.SettingExportDir:
		return v.settings.ExportDir
	case domain.SettingLogVerbose:
		return strconv.FormatBool(v.settings.Verbose)
	}
	return ""
}

// View renders the settings view.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	var b strings.Builder
	b.WriteString(v.styles.Title.Render("Settings"))
	b.WriteString("\n\n")

	if v.settings == nil {
		if v.err != nil {
			b.WriteString(v.styles.Error.Render("Error: " + v.err.Error()))
		} else {
			b.WriteString(v.styles.Muted.Render("Loading..."))
		}
		return b.String()
	}

	for i, item := range items {
		cursor := "  "
		label := v.styles.Label.Width(20).Render(item.Label)
		if i == v.selected {
			cursor = "> "
			label = v.styles.FocusedLabel.Width(20).Render(item.Label)
		}
		b.WriteString(cursor + label + v.styles.Normal.Render(v.value(item.Key)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if v.editing {
		b.WriteString(v.editor.View())
		b.WriteString("\n")
		b.WriteString(v.styles.Help.Render("[Enter] Save  [Esc] Cancel"))
	} else {
		b.WriteString(v.styles.Help.Render("[j/k] Navigate  [Enter] Change  [Esc] Back"))
	}

	if v.err != nil {
		b.WriteString("\n")
		b.WriteString(v.styles.Error.Render("Error: " + v.err.Error()))
	} else if v.notice != "" {
		b.WriteString("\n")
		b.WriteString(v.styles.Success.Render(v.notice))
	}

	return b.String()
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
	v.editor.SetWidth(width)
}

// Editing reports whether a value is being edited.
func (v *View) Editing() bool {
	return v.editing
}

// Settings returns the last loaded settings.
func (v *View) Settings() *domain.AppSettings {
	return v.settings
}
