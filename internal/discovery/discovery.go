package discovery

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jitterbugs/jitterkit/internal/config"
)

// ErrNotDirectory indicates a .jitterkit entry exists but is a regular file.
var ErrNotDirectory = errors.New("data path is not a directory")

// Result contains the discovered data directory.
type Result struct {
	Root string // Directory containing .jitterkit/
}

// Paths returns the path resolver for the discovered directory.
func (r *Result) Paths() *config.Paths {
	return config.NewPaths(r.Root, "")
}

// Discover finds the nearest .jitterkit directory by walking up from cwd.
// Returns nil if none exists; callers fall back to the per-user directory.
func Discover() (*Result, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get working directory: %w", err)
	}
	return DiscoverFrom(cwd)
}

// DiscoverFrom walks up from startDir.
func DiscoverFrom(startDir string) (*Result, error) {
	absStart, err := filepath.Abs(startDir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve absolute path: %w", err)
	}

	dir := absStart
	for {
		dataDir := filepath.Join(dir, config.DefaultDataDir)
		if info, err := os.Stat(dataDir); err == nil {
			if !info.IsDir() {
				return nil, fmt.Errorf("%w: %s", ErrNotDirectory, dataDir)
			}
			return &Result{Root: dir}, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached filesystem root
			return nil, nil
		}
		dir = parent
	}
}
