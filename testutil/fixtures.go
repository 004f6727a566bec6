package testutil

import (
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/jitterbugs/jitterkit/internal/config"
	"github.com/jitterbugs/jitterkit/internal/model"
)

// SampleCSV has a Centroid X/Y header and one non-numeric row.
const SampleCSV = "Frame,Centroid X,Centroid Y\n0,1.0,2.0\n1,x,y\n2,3.0,4.0\n"

// NoCentroidCSV has neither target header.
const NoCentroidCSV = "Frame,Area,Perimeter\n0,12,4\n1,13,5\n"

// ErrStoreFailed is returned by a MemoryColorStore with Fail set.
var ErrStoreFailed = errors.New("store failed")

// TempDataDir creates a temporary directory with a .jitterkit/storage
// structure for testing. Returns the temp dir path and a cleanup function.
func TempDataDir(t *testing.T) (string, func()) {
	t.Helper()

	dir, err := os.MkdirTemp("", "jitterkit-test-*")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}

	storageDir := filepath.Join(dir, config.DefaultDataDir, config.StorageDir)
	if err := os.MkdirAll(storageDir, 0755); err != nil {
		os.RemoveAll(dir)
		t.Fatalf("failed to create storage dir: %v", err)
	}

	cleanup := func() {
		os.RemoveAll(dir)
	}

	return dir, cleanup
}

// NewTestPaths creates a Paths for testing with the given temp directory.
func NewTestPaths(baseDir string) *config.Paths {
	return config.NewPaths(baseDir, "")
}

// WriteFile writes content to name inside dir and returns the full path.
func WriteFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
	return path
}

// MemoryColorStore is an in-memory color store. Set Fail to make Save
// return ErrStoreFailed.
type MemoryColorStore struct {
	mu    sync.Mutex
	list  *model.SavedColorList
	Fail  bool
	Saves int
}

// NewMemoryColorStore creates a store preloaded with colors.
func NewMemoryColorStore(colors ...model.Color) *MemoryColorStore {
	return &MemoryColorStore{list: model.NewSavedColorList(colors...)}
}

func (s *MemoryColorStore) Load() (*model.SavedColorList, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.list.Clone(), nil
}

func (s *MemoryColorStore) Save(list *model.SavedColorList) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Fail {
		return ErrStoreFailed
	}
	s.list = list.Clone()
	s.Saves++
	return nil
}

// Stored returns what was last persisted.
func (s *MemoryColorStore) Stored() []model.Color {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.list.Colors()
}
