package api

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/jitterbugs/jitterkit/internal/config"
)

// FileChangeType indicates what type of change occurred.
type FileChangeType string

const (
	FileChangeCreated  FileChangeType = "created"
	FileChangeModified FileChangeType = "modified"
	FileChangeDeleted  FileChangeType = "deleted"
)

// FileChangeKind indicates what kind of file changed.
type FileChangeKind string

const (
	FileChangeKindStorage  FileChangeKind = "storage"
	FileChangeKindSettings FileChangeKind = "settings"
	FileChangeKindUnknown  FileChangeKind = "unknown"
)

// FileChange describes one debounced change inside the data directory.
type FileChange struct {
	Type FileChangeType `json:"type"`
	Kind FileChangeKind `json:"kind"`
	Key  string         `json:"key,omitempty"` // Storage key for storage changes
	Path string         `json:"path"`          // Relative to the data directory
}

// FileWatcherSubscriber receives file change notifications.
type FileWatcherSubscriber interface {
	OnFileChange(change FileChange)
}

// debounceDelay coalesces editor save sequences and rename-over writes.
const debounceDelay = 100 * time.Millisecond

// FileWatcher watches the data directory and notifies subscribers about
// storage and settings changes made by other processes.
type FileWatcher struct {
	watcher     *fsnotify.Watcher
	dataDir     string
	mu          sync.RWMutex
	subscribers []FileWatcherSubscriber
	debounce    map[string]*time.Timer
	debounceMu  sync.Mutex
	stopCh      chan struct{}
	stopped     bool
	running     bool
}

// NewFileWatcher creates a watcher for the data directory described by paths.
func NewFileWatcher(paths *config.Paths) (*FileWatcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	return &FileWatcher{
		watcher:  watcher,
		dataDir:  paths.DataRoot(),
		debounce: make(map[string]*time.Timer),
		stopCh:   make(chan struct{}),
	}, nil
}

// Subscribe adds a subscriber.
func (fw *FileWatcher) Subscribe(sub FileWatcherSubscriber) {
	fw.mu.Lock()
	defer fw.mu.Unlock()
	fw.subscribers = append(fw.subscribers, sub)
}

// Start begins watching. A stopped watcher cannot be restarted.
func (fw *FileWatcher) Start() error {
	fw.mu.Lock()
	if fw.running {
		fw.mu.Unlock()
		return nil
	}
	if fw.stopped {
		fw.mu.Unlock()
		return fmt.Errorf("file watcher cannot be restarted after stop")
	}
	fw.running = true
	fw.mu.Unlock()

	for _, dir := range []string{fw.dataDir, filepath.Join(fw.dataDir, config.StorageDir)} {
		if _, err := os.Stat(dir); err != nil {
			continue
		}
		if err := fw.watcher.Add(dir); err != nil {
			log.Printf("Warning: failed to watch %s: %v", dir, err)
		}
	}

	go fw.run()
	return nil
}

// Stop stops watching for changes.
func (fw *FileWatcher) Stop() error {
	fw.mu.Lock()
	if !fw.running || fw.stopped {
		fw.mu.Unlock()
		return nil
	}
	fw.running = false
	fw.stopped = true
	fw.mu.Unlock()

	fw.debounceMu.Lock()
	for path, timer := range fw.debounce {
		timer.Stop()
		delete(fw.debounce, path)
	}
	fw.debounceMu.Unlock()

	close(fw.stopCh)
	return fw.watcher.Close()
}

func (fw *FileWatcher) run() {
	for {
		select {
		case event, ok := <-fw.watcher.Events:
			if !ok {
				return
			}
			fw.handleEvent(event)

		case err, ok := <-fw.watcher.Errors:
			if !ok {
				return
			}
			log.Printf("File watcher error: %v", err)

		case <-fw.stopCh:
			return
		}
	}
}

func (fw *FileWatcher) handleEvent(event fsnotify.Event) {
	// Temp files from atomic writes and editor backups
	base := filepath.Base(event.Name)
	if strings.HasPrefix(base, ".") || strings.HasSuffix(base, "~") {
		return
	}

	// storage/ may be created after the server starts
	if event.Op&fsnotify.Create != 0 && base == config.StorageDir {
		if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
			fw.watcher.Add(event.Name)
		}
	}

	fw.debounceMu.Lock()
	if timer, exists := fw.debounce[event.Name]; exists {
		timer.Stop()
	}
	fw.debounce[event.Name] = time.AfterFunc(debounceDelay, func() {
		fw.emitChange(event)
		fw.debounceMu.Lock()
		delete(fw.debounce, event.Name)
		fw.debounceMu.Unlock()
	})
	fw.debounceMu.Unlock()
}

func (fw *FileWatcher) emitChange(event fsnotify.Event) {
	fw.mu.RLock()
	if fw.stopped {
		fw.mu.RUnlock()
		return
	}
	subs := make([]FileWatcherSubscriber, len(fw.subscribers))
	copy(subs, fw.subscribers)
	fw.mu.RUnlock()

	change := fw.classifyChange(event)
	if change.Kind == FileChangeKindUnknown {
		return
	}

	for _, sub := range subs {
		sub.OnFileChange(change)
	}
}

func (fw *FileWatcher) classifyChange(event fsnotify.Event) FileChange {
	relPath, err := filepath.Rel(fw.dataDir, event.Name)
	if err != nil {
		return FileChange{Kind: FileChangeKindUnknown}
	}

	change := FileChange{Path: relPath}

	switch {
	case event.Op&fsnotify.Create != 0:
		change.Type = FileChangeCreated
	case event.Op&fsnotify.Write != 0:
		change.Type = FileChangeModified
	case event.Op&fsnotify.Remove != 0, event.Op&fsnotify.Rename != 0:
		change.Type = FileChangeDeleted
	default:
		return FileChange{Kind: FileChangeKindUnknown}
	}

	parts := strings.Split(relPath, string(filepath.Separator))

	// storage/<key>.json
	if len(parts) == 2 && parts[0] == config.StorageDir && strings.HasSuffix(parts[1], config.StorageFileExt) {
		change.Kind = FileChangeKindStorage
		change.Key = strings.TrimSuffix(parts[1], config.StorageFileExt)
		return change
	}

	// config.toml at the data root
	if len(parts) == 1 && parts[0] == config.SettingsFile {
		change.Kind = FileChangeKindSettings
		return change
	}

	return FileChange{Kind: FileChangeKindUnknown}
}
