package config

import (
	"os"
	"path/filepath"
)

const (
	DefaultDataDir  = ".jitterkit"
	StorageDir      = "storage"
	ExportsDir      = "exports"
	SettingsFile    = "config.toml"
	GlobalConfigDir = ".config/jitterkit"
	StorageFileExt  = ".json"
)

// Paths provides path resolution for jitterkit data files.
type Paths struct {
	root    string
	dataDir string // Custom data dir relative to root, empty for default
}

// NewPaths creates a new Paths resolver rooted at the given directory.
func NewPaths(root string, dataDir string) *Paths {
	return &Paths{
		root:    root,
		dataDir: dataDir,
	}
}

// NewGlobalPaths creates a Paths resolver for the per-user data directory.
// Returns nil if the home directory cannot be determined.
func NewGlobalPaths() *Paths {
	dir := GlobalConfigDirPath()
	if dir == "" {
		return nil
	}
	// The global dir is itself the data root, so an explicit "." replaces .jitterkit
	return &Paths{root: dir, dataDir: "."}
}

// Root returns the directory the data dir lives under.
func (p *Paths) Root() string {
	return p.root
}

// DataRoot returns the root directory for jitterkit data.
func (p *Paths) DataRoot() string {
	if p.dataDir != "" {
		return filepath.Join(p.root, p.dataDir)
	}
	return filepath.Join(p.root, DefaultDataDir)
}

// StorageRoot returns the directory holding key-value storage files.
func (p *Paths) StorageRoot() string {
	return filepath.Join(p.DataRoot(), StorageDir)
}

// StoragePath returns the file path backing a storage key.
func (p *Paths) StoragePath(key string) string {
	return filepath.Join(p.StorageRoot(), key+StorageFileExt)
}

// SettingsPath returns the path to the settings file.
func (p *Paths) SettingsPath() string {
	return filepath.Join(p.DataRoot(), SettingsFile)
}

// ExportsRoot returns the directory plot exports are written to by the server.
func (p *Paths) ExportsRoot() string {
	return filepath.Join(p.DataRoot(), ExportsDir)
}

// GlobalConfigDirPath returns the per-user data directory.
func GlobalConfigDirPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, GlobalConfigDir)
}
