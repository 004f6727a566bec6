package service

import (
	"fmt"
	"os"

	"github.com/jitterbugs/jitterkit/internal/config"
	"github.com/jitterbugs/jitterkit/internal/store"
)

// InitService creates data directories.
type InitService struct{}

// NewInitService creates a new init service.
func NewInitService() *InitService {
	return &InitService{}
}

// Initialize creates the data directory under root with default settings
// and an empty storage directory. Returns false if it already existed.
// Existing settings are never overwritten.
func (s *InitService) Initialize(root, dataDir string) (*config.Paths, bool, error) {
	paths := config.NewPaths(root, dataDir)

	_, err := os.Stat(paths.DataRoot())
	created := os.IsNotExist(err)

	if err := s.ensure(paths); err != nil {
		return nil, false, err
	}
	return paths, created, nil
}

// EnsureGlobal prepares the per-user data directory, used when no project
// data directory is found.
func (s *InitService) EnsureGlobal() (*config.Paths, error) {
	paths := config.NewGlobalPaths()
	if paths == nil {
		return nil, fmt.Errorf("cannot determine home directory")
	}
	if err := s.ensure(paths); err != nil {
		return nil, err
	}
	return paths, nil
}

func (s *InitService) ensure(paths *config.Paths) error {
	if err := os.MkdirAll(paths.StorageRoot(), 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}
	if err := store.NewSettingsStore(paths).EnsureInitialized(); err != nil {
		return fmt.Errorf("failed to write default settings: %w", err)
	}
	return nil
}
