package store

import (
	"encoding/json"
	"fmt"

	jkerr "github.com/jitterbugs/jitterkit/internal/errors"
	"github.com/jitterbugs/jitterkit/internal/model"
)

// SavedColorsKey is the fixed storage key for the saved color list.
const SavedColorsKey = "savedColors"

// KVColorStore implements ColorStore on top of a KVStore.
type KVColorStore struct {
	kv KVStore
}

// NewColorStore creates a color store backed by kv.
func NewColorStore(kv KVStore) *KVColorStore {
	return &KVColorStore{kv: kv}
}

// Load reads the saved list. A missing key yields an empty list; stored
// content that is not a JSON array of "rgb(R G B)" strings is a StorageError.
func (s *KVColorStore) Load() (*model.SavedColorList, error) {
	data, ok, err := s.kv.Get(SavedColorsKey)
	if err != nil {
		return nil, err
	}
	if !ok {
		return model.NewSavedColorList(), nil
	}

	var list model.SavedColorList
	if err := json.Unmarshal(data, &list); err != nil {
		return nil, jkerr.CorruptStorage(SavedColorsKey, s.kv.Path(SavedColorsKey), err)
	}
	return &list, nil
}

// Save writes the whole list under the fixed key.
func (s *KVColorStore) Save(list *model.SavedColorList) error {
	data, err := json.Marshal(list)
	if err != nil {
		return fmt.Errorf("failed to marshal saved colors: %w", err)
	}
	return s.kv.Set(SavedColorsKey, data)
}
