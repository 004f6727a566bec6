package api

import (
	"fmt"
	"os"
	"sync"

	"github.com/jitterbugs/jitterkit/internal/config"
	"github.com/jitterbugs/jitterkit/internal/model"
	"github.com/jitterbugs/jitterkit/internal/plot"
	"github.com/jitterbugs/jitterkit/internal/service"
	"github.com/jitterbugs/jitterkit/internal/store"
)

// AppContext bundles the stores and services shared by the HTTP handlers
// and websocket sessions.
type AppContext struct {
	Paths         *config.Paths
	KVStore       store.KVStore
	ColorStore    store.ColorStore
	SettingsStore store.SettingsStore
	ColorService  *service.ColorService
	PlotService   *service.PlotService

	mu       sync.RWMutex
	settings *model.Settings
}

// BuildAppContext wires stores and services for the data directory at paths
// and loads settings and the saved color list. It does not create anything
// on disk.
func BuildAppContext(paths *config.Paths) (*AppContext, error) {
	if paths == nil {
		return nil, fmt.Errorf("data paths are required")
	}
	if _, err := os.Stat(paths.DataRoot()); err != nil {
		return nil, fmt.Errorf("data directory does not exist: %s", paths.DataRoot())
	}

	settingsStore := store.NewSettingsStore(paths)
	settings, err := settingsStore.Load()
	if err != nil {
		return nil, err
	}

	kv := store.NewKVStore(paths)
	colorStore := store.NewColorStore(kv)
	colorService := service.NewColorService(colorStore)
	if err := colorService.Load(); err != nil {
		return nil, err
	}

	plotService, err := service.NewPlotService(plot.NewChartRenderer(), settings.Plot)
	if err != nil {
		return nil, err
	}

	return &AppContext{
		Paths:         paths,
		KVStore:       kv,
		ColorStore:    colorStore,
		SettingsStore: settingsStore,
		ColorService:  colorService,
		PlotService:   plotService,
		settings:      settings,
	}, nil
}

// Settings returns the active settings. Callers must not modify the result.
func (c *AppContext) Settings() *model.Settings {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.settings
}

// ReloadSettings re-reads config.toml and applies the plot section. On error
// the previous settings stay active.
func (c *AppContext) ReloadSettings() error {
	settings, err := c.SettingsStore.Load()
	if err != nil {
		return err
	}
	if err := c.PlotService.ApplySettings(settings.Plot); err != nil {
		return err
	}
	c.mu.Lock()
	c.settings = settings
	c.mu.Unlock()
	return nil
}
