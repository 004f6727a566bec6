//go:build dev

package api

import (
	"net/http"
	"os"
)

// devStaticDir is read on every request so frontend edits show up on reload.
const devStaticDir = "internal/api/dist"

// StaticHandler returns a handler that serves the frontend from disk.
// Run from the repository root with -tags dev.
func (h *Handler) StaticHandler() http.Handler {
	dir := devStaticDir
	if env := os.Getenv("JITTERKIT_STATIC_DIR"); env != "" {
		dir = env
	}
	return http.FileServer(http.FS(os.DirFS(dir)))
}
