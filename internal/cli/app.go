package cli

import (
	"fmt"
	"os"

	"github.com/jitterbugs/jitterkit/internal/api"
	"github.com/jitterbugs/jitterkit/internal/config"
	"github.com/jitterbugs/jitterkit/internal/discovery"
	jkerr "github.com/jitterbugs/jitterkit/internal/errors"
	"github.com/jitterbugs/jitterkit/internal/prompt"
	"github.com/jitterbugs/jitterkit/internal/service"
)

// App holds all the dependencies for the CLI.
type App struct {
	Paths       *config.Paths
	Prompter    prompt.Prompter
	InitService *service.InitService
	Services    *api.AppContext
	Global      bool // Using the per-user data dir rather than a discovered one
}

// NewApp creates a new App with all dependencies wired up.
// If interactive is false, uses NoopPrompter that fails on prompts.
func NewApp(interactive bool) (*App, error) {
	initService := service.NewInitService()

	result, err := discovery.Discover()
	if err != nil {
		return nil, err
	}

	var paths *config.Paths
	global := result == nil
	if global {
		paths, err = initService.EnsureGlobal()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: per-user data directory is unusable: %v\n", err)
			return nil, &jkerr.NotInitializedError{}
		}
	} else {
		paths = result.Paths()
		// Older data dirs may predate storage/
		if err := os.MkdirAll(paths.StorageRoot(), 0755); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to create storage directory: %v\n", err)
		}
	}

	services, err := api.BuildAppContext(paths)
	if err != nil {
		return nil, err
	}

	var prompter prompt.Prompter
	if interactive {
		prompter = prompt.NewHuhPrompter()
	} else {
		prompter = &prompt.NoopPrompter{}
	}

	return &App{
		Paths:       paths,
		Prompter:    prompter,
		InitService: initService,
		Services:    services,
		Global:      global,
	}, nil
}

// Fatal prints an error and exits.
func Fatal(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}
