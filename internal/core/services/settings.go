package services

import (
	"fmt"
	"strconv"

	"github.com/custodia-labs/safedrive/internal/core/domain"
	"github.com/custodia-labs/safedrive/internal/core/ports/driven"
	"github.com/custodia-labs/safedrive/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// SettingsService manages application settings backed by a ConfigStore.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{configStore: configStore}
}

// Get retrieves current application settings, filling defaults for unset keys.
func (s *SettingsService) Get() (*domain.AppSettings, error) {
	defaults := domain.DefaultAppSettings()
	if s.configStore == nil {
		return &defaults, nil
	}

	backend := domain.StorageBackend(s.getString(domain.SettingStorageBackend, defaults.Backend.String()))
	if !backend.IsValid() {
		return nil, fmt.Errorf("%s = %q: %w", domain.SettingStorageBackend, backend, domain.ErrUnsupportedBackend)
	}

	return &domain.AppSettings{
		Backend:   backend,
		DataPath:  s.getString(domain.SettingStoragePath, defaults.DataPath),
		ExportDir: s.configStore.GetString(domain.SettingExportDir),
		Verbose:   s.getBool(domain.SettingLogVerbose, defaults.Verbose),
	}, nil
}

// Save persists application settings.
func (s *SettingsService) Save(settings *domain.AppSettings) error {
	if s.configStore == nil {
		return domain.ErrNotImplemented
	}
	if !settings.Backend.IsValid() {
		return fmt.Errorf("save backend %q: %w", settings.Backend, domain.ErrUnsupportedBackend)
	}

	if err := s.configStore.Set(domain.SettingStorageBackend, settings.Backend.String()); err != nil {
		return fmt.Errorf("save storage backend: %w", err)
	}
	if err := s.configStore.Set(domain.SettingStoragePath, settings.DataPath); err != nil {
		return fmt.Errorf("save storage path: %w", err)
	}
	if err := s.configStore.Set(domain.SettingExportDir, settings.ExportDir); err != nil {
		return fmt.Errorf("save export dir: %w", err)
	}
	if err := s.configStore.Set(domain.SettingLogVerbose, settings.Verbose); err != nil {
		return fmt.Errorf("save log verbose: %w", err)
	}
	return nil
}

// Set updates a single setting by key.
func (s *SettingsService) Set(key, value string) error {
	if s.configStore == nil {
		return domain.ErrNotImplemented
	}

	switch key {
	case domain.SettingStorageBackend:
		if !domain.StorageBackend(value).IsValid() {
			return fmt.Errorf("%s = %q: %w", key, value, domain.ErrUnsupportedBackend)
		}
		return s.configStore.Set(key, value)
	case domain.SettingStoragePath:
		if value == "" {
			return fmt.Errorf("%s must not be empty: %w", key, domain.ErrInvalidInput)
		}
		return s.configStore.Set(key, value)
	case domain.SettingExportDir:
		return s.configStore.Set(key, value)
	case domain.SettingLogVerbose:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("%s = %q: %w", key, value, domain.ErrInvalidInput)
		}
		return s.configStore.Set(key, b)
	default:
		return fmt.Errorf("unknown setting %q: %w", key, domain.ErrInvalidInput)
	}
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.AppSettings {
	return domain.DefaultAppSettings()
}

// Path returns the configuration file location.
func (s *SettingsService) Path() string {
	if s.configStore == nil {
		return ""
	}
	return s.configStore.Path()
}

// Helper methods for reading config with defaults.

func (s *SettingsService) getString(key, defaultVal string) string {
	val := s.configStore.GetString(key)
	if val == "" {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getBool(key string, defaultVal bool) bool {
	if _, exists := s.configStore.Get(key); !exists {
		return defaultVal
	}
	return s.configStore.GetBool(key)
}
