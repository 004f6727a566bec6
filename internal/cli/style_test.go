package cli

import (
	"strings"
	"testing"

	"github.com/jitterbugs/jitterkit/internal/model"
)

func TestSwatchWidths(t *testing.T) {
	if got := strings.Count(ColorSwatch("#ff0000"), "█"); got != 2 {
		t.Errorf("ColorSwatch blocks = %d, want 2", got)
	}
	if got := strings.Count(ColorSwatchWide(model.Color{R: 1}), "█"); got != 8 {
		t.Errorf("ColorSwatchWide blocks = %d, want 8", got)
	}
	if got := strings.Count(ColorSwatch(""), "█"); got != 2 {
		t.Errorf("empty color swatch blocks = %d, want 2", got)
	}
}

func TestRenderColorCard(t *testing.T) {
	card := renderColorCard(model.Color{R: 255, G: 128, B: 0})
	for _, want := range []string{"255 128 0", "#ff8000", "rgb(255 128 0)"} {
		if !strings.Contains(card, want) {
			t.Errorf("card missing %q:\n%s", want, card)
		}
	}
}
