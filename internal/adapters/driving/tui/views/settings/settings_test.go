package settings

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/safedrive/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/safedrive/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/safedrive/internal/core/domain"
)

// MockSettingsService is a mock implementation of driving.SettingsService.
type MockSettingsService struct {
	mock.Mock
}

func (m *MockSettingsService) Get() (*domain.AppSettings, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AppSettings), args.Error(1)
}

func (m *MockSettingsService) Save(settings *domain.AppSettings) error {
	args := m.Called(settings)
	return args.Error(0)
}

func (m *MockSettingsService) Set(key, value string) error {
	args := m.Called(key, value)
	return args.Error(0)
}

func (m *MockSettingsService) GetDefaults() domain.AppSettings {
	return domain.DefaultAppSettings()
}

func (m *MockSettingsService) Path() string {
	return "/home/test/.safedrive/config.toml"
}

func loadedView(t *testing.T, svc *MockSettingsService, settings domain.AppSettings) *View {
	t.Helper()
	view := NewView(styles.DefaultStyles(), svc)
	view.SetDimensions(100, 30)
	view.Update(messages.SettingsLoaded{Settings: &settings})
	return view
}

func TestNewView(t *testing.T) {
	view := NewView(nil, &MockSettingsService{})

	require.NotNil(t, view)
	assert.NotNil(t, view.styles)
	assert.False(t, view.Editing())
	assert.Nil(t, view.Settings())
}

func TestView_Init_LoadSettings_Success(t *testing.T) {
	svc := &MockSettingsService{}
	settings := domain.DefaultAppSettings()
	svc.On("Get").Return(&settings, nil)
	view := NewView(nil, svc)

	msg := view.Init()()

	loaded, ok := msg.(messages.SettingsLoaded)
	require.True(t, ok)
	assert.NoError(t, loaded.Err)
	assert.Equal(t, domain.StorageJSON, loaded.Settings.Backend)
	svc.AssertExpectations(t)
}

func TestView_Init_LoadSettings_Error(t *testing.T) {
	svc := &MockSettingsService{}
	svc.On("Get").Return(nil, domain.ErrUnsupportedBackend)
	view := NewView(nil, svc)

	view.Update(view.Init()())
	view.SetDimensions(80, 24)

	assert.ErrorIs(t, view.err, domain.ErrUnsupportedBackend)
	assert.Contains(t, view.View(), "Error")
}

func TestView_Init_NoService(t *testing.T) {
	view := NewView(nil, nil)

	loaded, ok := view.Init()().(messages.SettingsLoaded)

	require.True(t, ok)
	assert.ErrorIs(t, loaded.Err, ErrNoSettingsService)
}

func TestView_Navigate(t *testing.T) {
	view := loadedView(t, &MockSettingsService{}, domain.DefaultAppSettings())

	view.Update(tea.KeyMsg{Type: tea.KeyDown})
	view.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}})
	assert.Equal(t, 2, view.selected)

	for i := 0; i < 5; i++ {
		view.Update(tea.KeyMsg{Type: tea.KeyDown})
	}
	assert.Equal(t, 3, view.selected)

	view.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'k'}})
	assert.Equal(t, 2, view.selected)
}

func TestView_CycleBackend(t *testing.T) {
	svc := &MockSettingsService{}
	svc.On("Set", domain.SettingStorageBackend, "sqlite").Return(nil)
	view := loadedView(t, svc, domain.DefaultAppSettings())

	_, cmd := view.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	saved, ok := cmd().(messages.SettingsSaved)

	require.True(t, ok)
	assert.NoError(t, saved.Err)
	svc.AssertExpectations(t)
}

func TestNextBackend(t *testing.T) {
	assert.Equal(t, domain.StorageSQLite, nextBackend(domain.StorageJSON))
	assert.Equal(t, domain.StorageMemory, nextBackend(domain.StorageSQLite))
	assert.Equal(t, domain.StorageJSON, nextBackend(domain.StorageMemory))
	assert.Equal(t, domain.StorageJSON, nextBackend("bogus"))
}

func TestView_ToggleVerbose(t *testing.T) {
	svc := &MockSettingsService{}
	svc.On("Set", domain.SettingLogVerbose, "true").Return(nil)
	view := loadedView(t, svc, domain.DefaultAppSettings())
	view.selected = 3

	_, cmd := view.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	cmd()

	svc.AssertExpectations(t)
}

func TestView_EditExportDir(t *testing.T) {
	svc := &MockSettingsService{}
	svc.On("Set", domain.SettingExportDir, "reports").Return(nil)
	view := loadedView(t, svc, domain.DefaultAppSettings())
	view.selected = 2

	view.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.True(t, view.Editing())

	view.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("reports")})
	_, cmd := view.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.False(t, view.Editing())
	require.NotNil(t, cmd)
	cmd()
	svc.AssertExpectations(t)
}

func TestView_EditPrefillsCurrentValue(t *testing.T) {
	view := loadedView(t, &MockSettingsService{}, domain.DefaultAppSettings())
	view.selected = 1

	view.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.Equal(t, domain.DefaultDataPath, view.editor.Value())
}

func TestView_EditCancel(t *testing.T) {
	svc := &MockSettingsService{}
	view := loadedView(t, svc, domain.DefaultAppSettings())
	view.selected = 2

	view.Update(tea.KeyMsg{Type: tea.KeyEnter})
	_, cmd := view.Update(tea.KeyMsg{Type: tea.KeyEsc})

	assert.False(t, view.Editing())
	assert.Nil(t, cmd)
	svc.AssertNotCalled(t, "Set", mock.Anything, mock.Anything)
}

func TestView_SettingsSaved_Success(t *testing.T) {
	svc := &MockSettingsService{}
	settings := domain.DefaultAppSettings()
	svc.On("Get").Return(&settings, nil)
	view := loadedView(t, svc, settings)

	_, cmd := view.Update(messages.SettingsSaved{Key: domain.SettingStorageBackend})

	require.NotNil(t, cmd, "settings are reloaded")
	assert.Contains(t, view.View(), "applies on next start")
}

func TestView_SettingsSaved_Error(t *testing.T) {
	view := loadedView(t, &MockSettingsService{}, domain.DefaultAppSettings())

	_, cmd := view.Update(messages.SettingsSaved{Key: domain.SettingStoragePath, Err: errors.New("must not be empty")})

	assert.Nil(t, cmd)
	assert.Contains(t, view.View(), "must not be empty")
}

func TestView_EscReturnsToMenu(t *testing.T) {
	view := loadedView(t, &MockSettingsService{}, domain.DefaultAppSettings())

	_, cmd := view.Update(tea.KeyMsg{Type: tea.KeyEsc})

	require.NotNil(t, cmd)
	assert.Equal(t, messages.ViewChanged{View: messages.ViewMenu}, cmd())
}

func TestView_View(t *testing.T) {
	view := NewView(nil, &MockSettingsService{})
	assert.Contains(t, view.View(), "Initialising")

	view.SetDimensions(100, 30)
	assert.Contains(t, view.View(), "Loading")

	settings := domain.AppSettings{Backend: domain.StorageSQLite, ExportDir: "out", Verbose: true}
	view.Update(messages.SettingsLoaded{Settings: &settings})
	output := view.View()

	assert.Contains(t, output, "Storage backend")
	assert.Contains(t, output, "sqlite")
	assert.Contains(t, output, domain.DefaultSQLitePath)
	assert.Contains(t, output, "out")
	assert.Contains(t, output, "true")
}
