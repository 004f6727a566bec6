package config

import (
	"path/filepath"
	"testing"
)

func TestPaths_Default(t *testing.T) {
	p := NewPaths("/work", "")

	if got, want := p.DataRoot(), filepath.Join("/work", ".jitterkit"); got != want {
		t.Errorf("DataRoot() = %q, want %q", got, want)
	}
	if got, want := p.StoragePath("savedColors"), filepath.Join("/work", ".jitterkit", "storage", "savedColors.json"); got != want {
		t.Errorf("StoragePath() = %q, want %q", got, want)
	}
	if got, want := p.SettingsPath(), filepath.Join("/work", ".jitterkit", "config.toml"); got != want {
		t.Errorf("SettingsPath() = %q, want %q", got, want)
	}
}

func TestPaths_CustomDataDir(t *testing.T) {
	p := NewPaths("/work", "data/jk")

	if got, want := p.DataRoot(), filepath.Join("/work", "data", "jk"); got != want {
		t.Errorf("DataRoot() = %q, want %q", got, want)
	}
	if got, want := p.ExportsRoot(), filepath.Join("/work", "data", "jk", "exports"); got != want {
		t.Errorf("ExportsRoot() = %q, want %q", got, want)
	}
}
