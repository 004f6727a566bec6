package id

import (
	"strings"
	"testing"
)

func TestNew_PrefixAndUniqueness(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 200; i++ {
		got := New(Upload)
		if !strings.HasPrefix(got, "upl_") {
			t.Fatalf("New(Upload) = %q, missing prefix", got)
		}
		if seen[got] {
			t.Fatalf("duplicate id %q", got)
		}
		seen[got] = true
	}

	if got := New(Session); !strings.HasPrefix(got, "ses_") {
		t.Errorf("New(Session) = %q, missing prefix", got)
	}
}
