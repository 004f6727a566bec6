package store

import (
	"os"
	"reflect"
	"testing"

	jkerr "github.com/jitterbugs/jitterkit/internal/errors"
	"github.com/jitterbugs/jitterkit/internal/model"
)

func TestKVColorStore_LoadMissingIsEmpty(t *testing.T) {
	kv, _ := setupTestKVStore(t)
	cs := NewColorStore(kv)

	list, err := cs.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if list.Len() != 0 {
		t.Errorf("expected empty list, got %d", list.Len())
	}
}

func TestKVColorStore_RoundTrip(t *testing.T) {
	kv, paths := setupTestKVStore(t)
	cs := NewColorStore(kv)

	original := model.NewSavedColorList(
		model.Color{R: 255, G: 0, B: 0},
		model.Color{R: 10, G: 20, B: 30},
		model.Color{R: 255, G: 0, B: 0},
	)
	if err := cs.Save(original); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	// On-disk format is the JSON array of formatted strings
	data, err := os.ReadFile(paths.StoragePath(SavedColorsKey))
	if err != nil {
		t.Fatal(err)
	}
	if got, want := string(data), `["rgb(255 0 0)","rgb(10 20 30)","rgb(255 0 0)"]`; got != want {
		t.Errorf("stored %s, want %s", got, want)
	}

	loaded, err := cs.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !reflect.DeepEqual(loaded.Colors(), original.Colors()) {
		t.Errorf("round trip mismatch: %v vs %v", loaded.Colors(), original.Colors())
	}
}

func TestKVColorStore_CorruptJSONFailsLoudly(t *testing.T) {
	kv, _ := setupTestKVStore(t)
	cs := NewColorStore(kv)

	if err := kv.Set(SavedColorsKey, []byte(`["rgb(1 2 3)"`)); err != nil {
		t.Fatal(err)
	}

	_, err := cs.Load()
	if err == nil {
		t.Fatal("expected error for corrupted storage")
	}
	if !jkerr.IsStorageError(err) {
		t.Errorf("expected storage error, got %v", err)
	}
}
