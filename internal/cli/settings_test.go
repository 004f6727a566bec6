package cli

import (
	"strings"
	"testing"

	"github.com/jitterbugs/jitterkit/internal/model"
)

func TestEncodeSettings_Validates(t *testing.T) {
	data, err := encodeSettings(model.DefaultSettings())
	if err != nil {
		t.Fatalf("encodeSettings failed: %v", err)
	}
	if !strings.Contains(string(data), `jitterkit_schema = "settings/1"`) {
		t.Errorf("schema not stamped:\n%s", data)
	}
	if err := validateSettings(data, "config.toml"); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestValidateSettings_Rejects(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"bad toml", "jitterkit_schema = \n"},
		{"no schema", "[server]\nport = 3000\n"},
		{"bad port", "jitterkit_schema = \"settings/1\"\n[server]\nport = 70000\n"},
		{"bad grid color", "jitterkit_schema = \"settings/1\"\n[plot]\ngrid_color = \"grey\"\n"},
		{"bad style", "jitterkit_schema = \"settings/1\"\n[plot]\nstyle = \"bars\"\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := validateSettings([]byte(tt.content), "config.toml"); err == nil {
				t.Error("expected error")
			}
		})
	}
}
