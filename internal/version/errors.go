package version

import (
	"fmt"
)

// SchemaVersionError indicates a schema version problem while reading a file.
type SchemaVersionError struct {
	FileType    string // "settings"
	FilePath    string // Path to the problematic file
	Found       string // What was found (e.g., "missing", "settings/2")
	Expected    string // What was expected (e.g., "settings/1")
	MinRequired string // Minimum jitterkit version required (if upgrade needed)
}

func (e *SchemaVersionError) Error() string {
	if e.MinRequired != "" {
		return fmt.Sprintf(
			"%s schema version %s requires jitterkit >= %s (file: %s, supports up to: %s)",
			e.FileType, e.Found, e.MinRequired, e.FilePath, e.Expected,
		)
	}
	if e.Found == "missing" {
		return fmt.Sprintf(
			"%s has no schema version (file: %s). Add jitterkit_schema = %q or re-run 'jitterkit init'.",
			e.FileType, e.FilePath, e.Expected,
		)
	}
	return fmt.Sprintf(
		"%s has invalid schema version: found %s, expected %s (file: %s)",
		e.FileType, e.Found, e.Expected, e.FilePath,
	)
}

// MissingSettingsSchema creates an error for a config.toml missing jitterkit_schema.
func MissingSettingsSchema(path string) error {
	return &SchemaVersionError{
		FileType: "settings",
		FilePath: path,
		Found:    "missing",
		Expected: CurrentSettingsSchema(),
	}
}

// InvalidSettingsSchema creates an error for settings with an unsupported schema.
func InvalidSettingsSchema(path, found string) error {
	e := &SchemaVersionError{
		FileType: "settings",
		FilePath: path,
		Found:    found,
		Expected: CurrentSettingsSchema(),
	}
	// Check if it's a future version
	if v, err := ParseSettingsVersion(found); err == nil && v > CurrentSettingsVersion {
		if minVer, ok := MinJitterkitVersion[found]; ok {
			e.MinRequired = minVer
		} else {
			e.MinRequired = "a newer version"
		}
	}
	return e
}
