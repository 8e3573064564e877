// Package settings persists application settings to a YAML file next to
// the database.
package settings

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/cardkeeper/cardkeeper/internal/common"
	"github.com/cardkeeper/cardkeeper/internal/model"
	"github.com/cardkeeper/cardkeeper/internal/validation"
)

// Store reads and writes the settings file.
type Store struct {
	path string
}

// NewStore creates a store for the settings file at path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Path returns the location of the settings file.
func (s *Store) Path() string {
	return s.path
}

// Load reads settings from disk. A missing file yields defaults.
func (s *Store) Load() (model.Settings, error) {
	var settings model.Settings

	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return settings, nil
	}
	if err != nil {
		return settings, fmt.Errorf("failed to read settings file: %w", err)
	}

	if err := yaml.Unmarshal(data, &settings); err != nil {
		return settings, fmt.Errorf("%w: %s", common.ErrInvalidConfig, err)
	}
	return settings, nil
}

// Save validates and writes settings to disk, creating the parent
// directory if needed.
func (s *Store) Save(settings model.Settings) error {
	if err := validation.ValidateWebhookURL(settings.DiscordWebhookURL); err != nil {
		return fmt.Errorf("%w: %s", common.ErrInvalidConfig, err)
	}

	data, err := yaml.Marshal(settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return fmt.Errorf("failed to create settings directory: %w", err)
		}
	}

	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write settings file: %w", err)
	}
	return nil
}
