package ui

import (
	"io"
	"net/url"

	"github.com/jitterbugs/jitterkit/internal/service"
)

// PlotTool connects file drops to a PlotService.
type PlotTool struct {
	plots   *service.PlotService
	surface Surface
	apiBase string
}

// NewPlotTool creates a plot controller. apiBase is the URL prefix of the
// plot image endpoints, e.g. "/api/v1/plot".
func NewPlotTool(plots *service.PlotService, surface Surface, apiBase string) *PlotTool {
	return &PlotTool{plots: plots, surface: surface, apiBase: apiBase}
}

// Bind registers the file drop handler.
func (t *PlotTool) Bind(b Binder) {
	b.OnFileDrop(t.onFile)
}

// Init shows the latest plot, if there is one.
func (t *PlotTool) Init() {
	if upload, err := t.plots.Latest(); err == nil {
		t.surface.ShowPlot(t.view(upload))
	}
}

func (t *PlotTool) onFile(name string, data io.Reader) {
	upload, err := t.plots.Ingest(name, data)
	if err != nil {
		// Invalid file type and no valid data carry their fixed messages.
		t.surface.Alert(err.Error())
		return
	}
	t.surface.ShowPlot(t.view(upload))
}

func (t *PlotTool) view(upload *service.Upload) PlotView {
	return NewPlotView(t.plots, upload, t.apiBase)
}

// NewPlotView describes upload with image and download URLs under apiBase.
func NewPlotView(plots *service.PlotService, upload *service.Upload, apiBase string) PlotView {
	format := plots.Options().Format

	// The upload ID busts browser caches between uploads.
	q := url.Values{"format": {format}, "v": {upload.ID}}
	return PlotView{
		UploadID:    upload.ID,
		Name:        upload.Name,
		Points:      upload.Points,
		ImageURL:    apiBase + "/image?" + q.Encode(),
		DownloadURL: apiBase + "/export?" + url.Values{"format": {format}}.Encode(),
		FileName:    plots.ExportFileName(format),
	}
}
