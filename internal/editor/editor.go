package editor

import (
	"os"
	"os/exec"
	"strings"
)

// Editor handles editor resolution and invocation.
type Editor struct {
	configured string
}

// NewEditor creates an Editor. configured is the editor setting from
// config.toml and may be empty.
func NewEditor(configured string) *Editor {
	return &Editor{configured: configured}
}

// Resolve returns the editor command to use.
// Order: settings > $EDITOR > vim
func (e *Editor) Resolve() string {
	if e.configured != "" {
		return e.configured
	}
	if editor := os.Getenv("EDITOR"); editor != "" {
		return editor
	}
	return "vim"
}

// Edit opens content in the editor using a temp file named by pattern
// (e.g. "jitterkit-*.toml") and returns the edited content.
func (e *Editor) Edit(content, pattern string) (string, error) {
	tmpFile, err := os.CreateTemp("", pattern)
	if err != nil {
		return "", err
	}
	tmpPath := tmpFile.Name()
	defer os.Remove(tmpPath)

	if _, err := tmpFile.WriteString(content); err != nil {
		tmpFile.Close()
		return "", err
	}
	tmpFile.Close()

	// Allow "code --wait" style commands
	parts := strings.Fields(e.Resolve())
	cmd := exec.Command(parts[0], append(parts[1:], tmpPath)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		return "", err
	}

	edited, err := os.ReadFile(tmpPath)
	if err != nil {
		return "", err
	}
	return string(edited), nil
}
