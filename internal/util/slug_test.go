package util

import (
	"reflect"
	"testing"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"Run 3", "run-3"},
		{"bug_07", "bug-07"},
		{"Trial (left wing)", "trial-left-wing"},
		{"2024.07.01 session", "2024-07-01-session"},
		{"  padded  ", "padded"},
		{"many___under__scores", "many-under-scores"},
		{"Café Trial", "cafe-trial"},
		{"Größe Ñandú", "gro-e-nandu"},
		{"", ""},
		{"---", ""},
		{"A", "a"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := Slugify(tt.input); got != tt.expected {
				t.Errorf("Slugify(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestSlugWords(t *testing.T) {
	if got := SlugWords("Jitter Bug, run 2"); !reflect.DeepEqual(got, []string{"jitter", "bug", "run", "2"}) {
		t.Errorf("SlugWords = %v", got)
	}
	if got := SlugWords("!!!"); got != nil {
		t.Errorf("expected nil, got %v", got)
	}
}
