package store

import "github.com/jitterbugs/jitterkit/internal/model"

// KVStore is a string-keyed store of raw values, the local equivalent of
// browser localStorage.
type KVStore interface {
	Get(key string) ([]byte, bool, error) // ok is false when the key is absent
	Set(key string, value []byte) error
	Remove(key string) error
	Keys() ([]string, error)
	Path(key string) string
}

// ColorStore handles saved color list persistence.
type ColorStore interface {
	Load() (*model.SavedColorList, error)
	Save(list *model.SavedColorList) error
}

// SettingsStore handles settings persistence.
type SettingsStore interface {
	Load() (*model.Settings, error)
	Save(settings *model.Settings) error
	Exists() bool
	EnsureInitialized() error
}
