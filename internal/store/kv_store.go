package store

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/jitterbugs/jitterkit/internal/config"
	jkerr "github.com/jitterbugs/jitterkit/internal/errors"
)

var validKey = regexp.MustCompile(`^[A-Za-z0-9_.-]+$`)

// FileKVStore implements KVStore with one file per key under the storage dir.
type FileKVStore struct {
	paths *config.Paths
}

// NewKVStore creates a new file-backed key-value store.
func NewKVStore(paths *config.Paths) *FileKVStore {
	return &FileKVStore{paths: paths}
}

// Get returns the stored value for key.
func (s *FileKVStore) Get(key string) ([]byte, bool, error) {
	if err := checkKey(key); err != nil {
		return nil, false, err
	}
	data, err := os.ReadFile(s.paths.StoragePath(key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to read storage key %q: %w", key, err)
	}
	return data, true, nil
}

// Set writes value under key, replacing any previous value.
// The write goes through a temp file and rename so readers never see a
// half-written value.
func (s *FileKVStore) Set(key string, value []byte) error {
	if err := checkKey(key); err != nil {
		return err
	}
	dir := s.paths.StorageRoot()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create storage directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, "."+key+"-*")
	if err != nil {
		return fmt.Errorf("failed to write storage key %q: %w", key, err)
	}
	tmpPath := tmp.Name()
	if _, err := tmp.Write(value); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("failed to write storage key %q: %w", key, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to write storage key %q: %w", key, err)
	}
	if err := os.Rename(tmpPath, s.paths.StoragePath(key)); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to write storage key %q: %w", key, err)
	}
	return nil
}

// Remove deletes key. Removing an absent key is not an error.
func (s *FileKVStore) Remove(key string) error {
	if err := checkKey(key); err != nil {
		return err
	}
	if err := os.Remove(s.paths.StoragePath(key)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove storage key %q: %w", key, err)
	}
	return nil
}

// Keys returns all stored keys in sorted order.
func (s *FileKVStore) Keys() ([]string, error) {
	entries, err := os.ReadDir(s.paths.StorageRoot())
	if err != nil {
		if os.IsNotExist(err) {
			return []string{}, nil // Return empty slice, not nil
		}
		return nil, fmt.Errorf("failed to read storage directory: %w", err)
	}

	keys := []string{}
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || strings.HasPrefix(name, ".") || filepath.Ext(name) != config.StorageFileExt {
			continue
		}
		keys = append(keys, strings.TrimSuffix(name, config.StorageFileExt))
	}
	sort.Strings(keys)
	return keys, nil
}

// Path returns the file backing key.
func (s *FileKVStore) Path(key string) string {
	return s.paths.StoragePath(key)
}

func checkKey(key string) error {
	if !validKey.MatchString(key) || strings.HasPrefix(key, ".") {
		return jkerr.InvalidField("storage key", fmt.Sprintf("%q", key))
	}
	return nil
}
