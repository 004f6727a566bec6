package cli

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/amterp/ra"
	"github.com/jitterbugs/jitterkit/internal/editor"
	"github.com/jitterbugs/jitterkit/internal/model"
	"github.com/jitterbugs/jitterkit/internal/plot"
	"github.com/jitterbugs/jitterkit/internal/prompt"
	"github.com/jitterbugs/jitterkit/internal/store"
	"github.com/jitterbugs/jitterkit/internal/version"
)

func registerSettings(parent *ra.Cmd, ctx *CommandContext) {
	cmd := ra.NewCmd("settings")
	cmd.SetDescription("Show settings, or edit them in $EDITOR")

	ctx.SettingsEdit, _ = ra.NewBool("edit").
		SetShort("e").
		SetOptional(true).
		SetFlagOnly(true).
		SetUsage("Open config.toml in your editor").
		Register(cmd)

	ctx.SettingsUsed, _ = parent.RegisterCmd(cmd)
}

// settingsOutput is the JSON output of the settings command.
type settingsOutput struct {
	Path     string          `json:"path"`
	Global   bool            `json:"global"`
	Settings *model.Settings `json:"settings"`
}

func runSettings(edit, jsonOutput bool) {
	app, err := NewApp(!jsonOutput)
	if err != nil {
		Fatal(err)
	}

	if edit {
		if jsonOutput {
			warnJsonNotSupported("settings --edit")
		}
		if err := editSettings(app); err != nil {
			Fatal(err)
		}
		return
	}

	settings := app.Services.Settings()
	path := app.Paths.SettingsPath()

	if jsonOutput {
		if err := printJson(settingsOutput{Path: path, Global: app.Global, Settings: settings}); err != nil {
			Fatal(err)
		}
		return
	}

	fmt.Println(TitleBox("Settings"))
	fmt.Println(LabelValue("Path", RenderURL(path), 6))
	if app.Global {
		fmt.Println(LabelValue("Scope", "per-user (no .jitterkit directory found)", 6))
	}
	fmt.Println()

	if err := toml.NewEncoder(os.Stdout).Encode(settings); err != nil {
		Fatal(err)
	}
}

// editSettings opens config.toml in the editor and only writes it back once
// it parses and its plot section is usable. Invalid edits can be reopened.
func editSettings(app *App) error {
	path := app.Paths.SettingsPath()

	original, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return err
		}
		original, err = encodeSettings(model.DefaultSettings())
		if err != nil {
			return err
		}
	}

	ed := editor.NewEditor(app.Services.Settings().Editor)
	content := string(original)

	for {
		content, err = ed.Edit(content, "jitterkit-settings-*.toml")
		if err != nil {
			return fmt.Errorf("editor failed: %w", err)
		}

		if content == string(original) {
			PrintInfo("No changes")
			return nil
		}

		verr := validateSettings([]byte(content), path)
		if verr == nil {
			break
		}

		PrintError("%v", verr)
		again, err := app.Prompter.Confirm("Edit again?", true)
		if err != nil {
			if errors.Is(err, prompt.ErrNonInteractive) {
				return verr
			}
			return err
		}
		if !again {
			return fmt.Errorf("settings not saved")
		}
	}

	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to write settings: %w", err)
	}
	PrintSuccess("Saved %s", path)
	return nil
}

func validateSettings(data []byte, path string) error {
	cfg, err := store.ParseSettings(data, path)
	if err != nil {
		return err
	}
	if cfg.Server.Port < 1 || cfg.Server.Port > 65535 {
		return fmt.Errorf("server.port: %d is out of range", cfg.Server.Port)
	}
	if _, err := plot.OptionsFromSettings(cfg.Plot); err != nil {
		return err
	}
	return nil
}

func encodeSettings(cfg *model.Settings) ([]byte, error) {
	cfg.Schema = version.CurrentSettingsSchema()
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
