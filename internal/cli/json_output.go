package cli

import (
	"encoding/json"
	"fmt"

	"github.com/jitterbugs/jitterkit/internal/model"
)

// ColorOutput is the JSON form of a single color.
type ColorOutput struct {
	Hex       string `json:"hex"`
	Formatted string `json:"formatted"`
	Readout   string `json:"readout"`
	CSS       string `json:"css"`
	Red       int    `json:"red"`
	Green     int    `json:"green"`
	Blue      int    `json:"blue"`
}

// NewColorOutput creates the JSON output for a color.
func NewColorOutput(c model.Color) ColorOutput {
	return ColorOutput{
		Hex:       c.Hex(),
		Formatted: c.String(),
		Readout:   c.Readout(),
		CSS:       c.CSS(),
		Red:       c.R,
		Green:     c.G,
		Blue:      c.B,
	}
}

// SavedListOutput wraps the saved list for JSON output.
type SavedListOutput struct {
	Count  int                `json:"count"`
	Colors []model.SavedEntry `json:"colors"`
}

// NewSavedListOutput creates the JSON output for a saved color list.
func NewSavedListOutput(list *model.SavedColorList) SavedListOutput {
	entries := list.Entries()
	return SavedListOutput{Count: len(entries), Colors: entries}
}

func printJson(v any) error {
	output, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(output))
	return nil
}

// warnJsonNotSupported prints a warning to stderr when --json is used on an unsupported command.
func warnJsonNotSupported(command string) {
	PrintWarning("--json is not supported for '%s' (flag ignored)", command)
}
