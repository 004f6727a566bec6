package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/amterp/ra"
	"github.com/jitterbugs/jitterkit/internal/service"
)

func registerInit(parent *ra.Cmd, ctx *CommandContext) {
	cmd := ra.NewCmd("init")
	cmd.SetDescription("Create a .jitterkit data directory")

	ctx.InitDir, _ = ra.NewString("dir").
		SetOptional(true).
		SetDefault(".").
		SetUsage("Directory to initialize (default: current directory)").
		Register(cmd)

	ctx.InitUsed, _ = parent.RegisterCmd(cmd)
}

func runInit(dir string) {
	root, err := filepath.Abs(dir)
	if err != nil {
		Fatal(err)
	}
	info, err := os.Stat(root)
	if err != nil {
		Fatal(err)
	}
	if !info.IsDir() {
		Fatal(fmt.Errorf("not a directory: %s", root))
	}

	paths, created, err := service.NewInitService().Initialize(root, "")
	if err != nil {
		Fatal(err)
	}

	if !created {
		PrintInfo("Already initialized at %s", paths.DataRoot())
		return
	}
	PrintSuccess("Initialized jitterkit in %s", paths.DataRoot())
	PrintInfo("Settings: %s", RenderMuted(paths.SettingsPath()))
}
