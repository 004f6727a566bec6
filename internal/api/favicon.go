package api

import (
	"fmt"
	"net/http"

	"github.com/jitterbugs/jitterkit/internal/model"
)

// GenerateFaviconSVG draws a rounded swatch of c.
func GenerateFaviconSVG(c model.Color) string {
	return fmt.Sprintf(
		`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 32 32"><rect width="32" height="32" rx="6" fill="%s"/></svg>`,
		c.Hex(),
	)
}

// GetFavicon serves a swatch of the current color.
func (h *Handler) GetFavicon(w http.ResponseWriter, r *http.Request) {
	svg := GenerateFaviconSVG(h.app.ColorService.Current())

	w.Header().Set("Content-Type", "image/svg+xml")
	w.Header().Set("Cache-Control", "no-cache")
	w.Write([]byte(svg))
}
