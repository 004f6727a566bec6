package store

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/jitterbugs/jitterkit/internal/config"
	jkerr "github.com/jitterbugs/jitterkit/internal/errors"
)

func setupTestKVStore(t *testing.T) (*FileKVStore, *config.Paths) {
	t.Helper()

	dir := t.TempDir()
	paths := config.NewPaths(dir, "")
	return NewKVStore(paths), paths
}

func TestFileKVStore_GetMissing(t *testing.T) {
	kv, _ := setupTestKVStore(t)

	data, ok, err := kv.Get("savedColors")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if ok || data != nil {
		t.Errorf("expected missing key, got ok=%v data=%q", ok, data)
	}
}

func TestFileKVStore_SetAndGet(t *testing.T) {
	kv, paths := setupTestKVStore(t)

	if err := kv.Set("savedColors", []byte(`["rgb(1 2 3)"]`)); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	data, ok, err := kv.Get("savedColors")
	if err != nil || !ok {
		t.Fatalf("Get failed: ok=%v err=%v", ok, err)
	}
	if string(data) != `["rgb(1 2 3)"]` {
		t.Errorf("Get = %q", data)
	}

	// Value lives at the documented path, with no temp files left behind
	if _, err := os.Stat(paths.StoragePath("savedColors")); err != nil {
		t.Errorf("expected storage file: %v", err)
	}
	entries, _ := os.ReadDir(paths.StorageRoot())
	if len(entries) != 1 {
		t.Errorf("expected exactly one file in storage dir, got %d", len(entries))
	}
}

func TestFileKVStore_Overwrite(t *testing.T) {
	kv, _ := setupTestKVStore(t)

	if err := kv.Set("k", []byte("one")); err != nil {
		t.Fatal(err)
	}
	if err := kv.Set("k", []byte("two")); err != nil {
		t.Fatal(err)
	}
	data, _, _ := kv.Get("k")
	if string(data) != "two" {
		t.Errorf("expected overwrite, got %q", data)
	}
}

func TestFileKVStore_KeysAndRemove(t *testing.T) {
	kv, paths := setupTestKVStore(t)

	for _, k := range []string{"b", "a", "c"} {
		if err := kv.Set(k, []byte("{}")); err != nil {
			t.Fatal(err)
		}
	}
	// Stray non-storage files are ignored
	os.WriteFile(filepath.Join(paths.StorageRoot(), "notes.txt"), []byte("x"), 0644)

	keys, err := kv.Keys()
	if err != nil {
		t.Fatalf("Keys failed: %v", err)
	}
	if !reflect.DeepEqual(keys, []string{"a", "b", "c"}) {
		t.Errorf("Keys() = %v", keys)
	}

	if err := kv.Remove("b"); err != nil {
		t.Fatalf("Remove failed: %v", err)
	}
	if err := kv.Remove("b"); err != nil {
		t.Errorf("second Remove should be a no-op, got %v", err)
	}
	keys, _ = kv.Keys()
	if !reflect.DeepEqual(keys, []string{"a", "c"}) {
		t.Errorf("Keys() after remove = %v", keys)
	}
}

func TestFileKVStore_KeysEmptyDir(t *testing.T) {
	kv, _ := setupTestKVStore(t)

	keys, err := kv.Keys()
	if err != nil {
		t.Fatalf("Keys failed: %v", err)
	}
	if keys == nil || len(keys) != 0 {
		t.Errorf("expected empty non-nil slice, got %#v", keys)
	}
}

func TestFileKVStore_RejectsBadKeys(t *testing.T) {
	kv, _ := setupTestKVStore(t)

	for _, key := range []string{"", "../escape", "a/b", ".hidden"} {
		if err := kv.Set(key, []byte("x")); !jkerr.IsValidationError(err) {
			t.Errorf("Set(%q) expected validation error, got %v", key, err)
		}
	}
}
