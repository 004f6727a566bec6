package store

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/jitterbugs/jitterkit/internal/config"
	"github.com/jitterbugs/jitterkit/internal/model"
	"github.com/jitterbugs/jitterkit/internal/version"
)

// FileSettingsStore implements SettingsStore using a TOML file.
type FileSettingsStore struct {
	paths *config.Paths
}

// NewSettingsStore creates a new settings store.
func NewSettingsStore(paths *config.Paths) *FileSettingsStore {
	return &FileSettingsStore{paths: paths}
}

// Load reads the settings from disk.
// Returns defaults if the file doesn't exist.
func (s *FileSettingsStore) Load() (*model.Settings, error) {
	path := s.paths.SettingsPath()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return model.DefaultSettings(), nil
		}
		return nil, fmt.Errorf("failed to read settings: %w", err)
	}

	return ParseSettings(data, path)
}

// ParseSettings decodes settings file content. path is only used in errors.
func ParseSettings(data []byte, path string) (*model.Settings, error) {
	var cfg model.Settings
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("invalid settings: %w", err)
	}

	// Strict version validation (only if file exists)
	if cfg.Schema == "" {
		return nil, version.MissingSettingsSchema(path)
	}
	if cfg.Schema != version.CurrentSettingsSchema() {
		return nil, version.InvalidSettingsSchema(path, cfg.Schema)
	}

	cfg.FillDefaults()
	return &cfg, nil
}

// Save writes the settings to disk.
func (s *FileSettingsStore) Save(cfg *model.Settings) error {
	// Stamp current schema version
	cfg.Schema = version.CurrentSettingsSchema()

	path := s.paths.SettingsPath()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create settings: %w", err)
	}
	defer f.Close()

	return toml.NewEncoder(f).Encode(cfg)
}

// Exists returns true if the settings file exists.
func (s *FileSettingsStore) Exists() bool {
	_, err := os.Stat(s.paths.SettingsPath())
	return err == nil
}

// EnsureInitialized writes default settings if no settings file exists yet.
func (s *FileSettingsStore) EnsureInitialized() error {
	if s.Exists() {
		return nil
	}
	return s.Save(model.DefaultSettings())
}
