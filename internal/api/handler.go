package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strconv"

	jkerr "github.com/jitterbugs/jitterkit/internal/errors"
	"github.com/jitterbugs/jitterkit/internal/model"
	"github.com/jitterbugs/jitterkit/internal/plot"
	"github.com/jitterbugs/jitterkit/internal/ui"
)

// PlotAPIBase is the URL prefix of the plot endpoints.
const PlotAPIBase = "/api/v1/plot"

// Handler contains all HTTP handlers for the API.
//
// Single-user: every request and every connected tab shares one AppContext,
// so all clients see the same current color, saved list and latest plot.
type Handler struct {
	app *AppContext
	hub *WebSocketHub // nil when websockets are disabled
}

// NewHandler creates a new handler.
func NewHandler(app *AppContext) *Handler {
	return &Handler{app: app}
}

// SetHub enables broadcasting REST-driven changes to websocket sessions.
func (h *Handler) SetHub(hub *WebSocketHub) {
	h.hub = hub
}

// RegisterRoutes sets up all API routes on the given mux.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /favicon.svg", h.GetFavicon)

	// Color routes
	mux.HandleFunc("GET /api/v1/colors", h.ListColors)
	mux.HandleFunc("POST /api/v1/colors", h.SaveColor)
	mux.HandleFunc("DELETE /api/v1/colors/{index}", h.RemoveColor)
	mux.HandleFunc("GET /api/v1/colors/current", h.GetCurrentColor)
	mux.HandleFunc("PUT /api/v1/colors/current", h.SetCurrentColor)
	mux.HandleFunc("GET /api/v1/convert", h.Convert)

	// Plot routes
	mux.HandleFunc("POST "+PlotAPIBase, h.UploadPlot)
	mux.HandleFunc("GET "+PlotAPIBase, h.GetPlot)
	mux.HandleFunc("GET "+PlotAPIBase+"/image", h.GetPlotImage)
	mux.HandleFunc("GET "+PlotAPIBase+"/export", h.ExportPlot)

	mux.HandleFunc("GET /api/v1/settings", h.GetSettings)

	// Static files (frontend)
	mux.Handle("/", h.StaticHandler())
}

// --- Color Handlers ---

// ColorsResponse is the JSON response for the saved list.
type ColorsResponse struct {
	Colors []model.SavedEntry `json:"colors"`
}

// ColorRequest selects a color by hex, by formatted string, or by channels.
// An empty request means the current color.
type ColorRequest struct {
	Hex   string `json:"hex,omitempty"`
	Color string `json:"color,omitempty"` // "rgb(R G B)"
	Red   *int   `json:"red,omitempty"`
	Green *int   `json:"green,omitempty"`
	Blue  *int   `json:"blue,omitempty"`
}

// Empty reports whether no color was given.
func (req ColorRequest) Empty() bool {
	return req.Hex == "" && req.Color == "" && req.Red == nil && req.Green == nil && req.Blue == nil
}

// Resolve converts the request to a color.
func (req ColorRequest) Resolve() (model.Color, error) {
	switch {
	case req.Hex != "":
		return model.ParseHex(req.Hex)
	case req.Color != "":
		return model.ParseFormatted(req.Color)
	case req.Red != nil && req.Green != nil && req.Blue != nil:
		return model.NewColor(*req.Red, *req.Green, *req.Blue), nil
	}
	return model.Color{}, jkerr.InvalidField("color", "give hex, color, or all of red, green and blue")
}

func colorsResponse(list *model.SavedColorList) ColorsResponse {
	return ColorsResponse{Colors: list.Entries()}
}

// ListColors returns the saved color list.
func (h *Handler) ListColors(w http.ResponseWriter, r *http.Request) {
	JSON(w, http.StatusOK, colorsResponse(h.app.ColorService.Saved()))
}

// SaveColor appends a color (or the current color) to the saved list.
func (h *Handler) SaveColor(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeColorRequest(w, r)
	if !ok {
		return
	}

	c := h.app.ColorService.Current()
	if !req.Empty() {
		var err error
		if c, err = req.Resolve(); err != nil {
			Error(w, err)
			return
		}
	}

	list, err := h.app.ColorService.Save(c)
	if err != nil {
		Error(w, err)
		return
	}
	JSON(w, http.StatusCreated, colorsResponse(list))
}

// RemoveColorResponse is the JSON response for a removal.
type RemoveColorResponse struct {
	Removed string             `json:"removed"`
	Colors  []model.SavedEntry `json:"colors"`
}

// RemoveColor removes the saved color at {index}.
func (h *Handler) RemoveColor(w http.ResponseWriter, r *http.Request) {
	index, err := strconv.Atoi(r.PathValue("index"))
	if err != nil {
		BadRequest(w, "index must be an integer")
		return
	}

	removed, list, err := h.app.ColorService.Remove(index)
	if err != nil {
		Error(w, err)
		return
	}
	JSON(w, http.StatusOK, RemoveColorResponse{
		Removed: removed.String(),
		Colors:  list.Entries(),
	})
}

// GetCurrentColor returns the display state of the current color.
func (h *Handler) GetCurrentColor(w http.ResponseWriter, r *http.Request) {
	JSON(w, http.StatusOK, h.app.ColorService.Display())
}

// SetCurrentColor replaces the current color.
func (h *Handler) SetCurrentColor(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeColorRequest(w, r)
	if !ok {
		return
	}
	c, err := req.Resolve()
	if err != nil {
		Error(w, err)
		return
	}

	// The server's current color subscription pushes the change to sessions
	JSON(w, http.StatusOK, h.app.ColorService.SetCurrent(c))
}

// ConvertResponse is the JSON response for a hex conversion.
type ConvertResponse struct {
	model.ColorDisplay
	Formatted string `json:"formatted"`
}

// Convert converts ?hex= without touching the current color.
func (h *Handler) Convert(w http.ResponseWriter, r *http.Request) {
	c, err := model.ParseHex(r.URL.Query().Get("hex"))
	if err != nil {
		Error(w, err)
		return
	}
	JSON(w, http.StatusOK, ConvertResponse{
		ColorDisplay: model.NewColorDisplay(c),
		Formatted:    c.String(),
	})
}

func decodeColorRequest(w http.ResponseWriter, r *http.Request) (ColorRequest, bool) {
	var req ColorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		BadRequest(w, "invalid JSON body")
		return req, false
	}
	return req, true
}

// --- Plot Handlers ---

// UploadPlot ingests a multipart "file" field.
func (h *Handler) UploadPlot(w http.ResponseWriter, r *http.Request) {
	limit := h.app.Settings().Server.MaxUploadBytes
	r.Body = http.MaxBytesReader(w, r.Body, limit)

	file, header, err := r.FormFile("file")
	if err != nil {
		var maxBytes *http.MaxBytesError
		if errors.As(err, &maxBytes) {
			Error(w, err)
			return
		}
		BadRequest(w, "multipart field \"file\" is required")
		return
	}
	defer file.Close()

	upload, err := h.app.PlotService.Ingest(header.Filename, file)
	if err != nil {
		Error(w, err)
		return
	}

	view := ui.NewPlotView(h.app.PlotService, upload, PlotAPIBase)
	if h.hub != nil {
		h.hub.Broadcast(MsgPlot, view)
	}
	JSON(w, http.StatusCreated, view)
}

// GetPlot returns the latest upload including its series.
func (h *Handler) GetPlot(w http.ResponseWriter, r *http.Request) {
	upload, err := h.app.PlotService.Latest()
	if err != nil {
		Error(w, err)
		return
	}
	JSON(w, http.StatusOK, upload)
}

// GetPlotImage renders the latest upload inline.
func (h *Handler) GetPlotImage(w http.ResponseWriter, r *http.Request) {
	data, format, ok := h.renderLatest(w, r)
	if !ok {
		return
	}
	w.Header().Set("Content-Type", plot.ContentType(format))
	w.Header().Set("Cache-Control", "no-store")
	w.Write(data)
}

// ExportPlot renders the latest upload as a download and keeps a copy in
// the exports directory.
func (h *Handler) ExportPlot(w http.ResponseWriter, r *http.Request) {
	data, format, ok := h.renderLatest(w, r)
	if !ok {
		return
	}

	name := h.app.PlotService.ExportFileName(format)
	if err := h.saveExport(name, data); err != nil {
		log.Printf("Warning: failed to save export copy: %v", err)
	}

	w.Header().Set("Content-Type", plot.ContentType(format))
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	w.Write(data)
}

func (h *Handler) renderLatest(w http.ResponseWriter, r *http.Request) ([]byte, string, bool) {
	format := r.URL.Query().Get("format")
	if format == "" {
		format = h.app.PlotService.Options().Format
	}
	if err := plot.ValidateFormat(format); err != nil {
		Error(w, err)
		return nil, "", false
	}

	var buf bytes.Buffer
	if err := h.app.PlotService.Render(&buf, format); err != nil {
		Error(w, err)
		return nil, "", false
	}
	return buf.Bytes(), format, true
}

func (h *Handler) saveExport(name string, data []byte) error {
	dir := h.app.Paths.ExportsRoot()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(dir, name), data, 0644)
}

// --- Settings Handlers ---

// SettingsResponse is the JSON response for the active settings.
type SettingsResponse struct {
	Path     string          `json:"path"`
	Settings *model.Settings `json:"settings"`
}

// GetSettings returns the active settings and where they live.
func (h *Handler) GetSettings(w http.ResponseWriter, r *http.Request) {
	JSON(w, http.StatusOK, SettingsResponse{
		Path:     h.app.Paths.SettingsPath(),
		Settings: h.app.Settings(),
	})
}
