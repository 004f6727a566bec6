package service

import (
	"bytes"
	"io"
	"sync"
	"time"

	"github.com/jitterbugs/jitterkit/internal/centroid"
	jkerr "github.com/jitterbugs/jitterkit/internal/errors"
	"github.com/jitterbugs/jitterkit/internal/id"
	"github.com/jitterbugs/jitterkit/internal/model"
	"github.com/jitterbugs/jitterkit/internal/plot"
)

// Upload is one successfully parsed CSV file.
type Upload struct {
	ID       string            `json:"id"`
	Name     string            `json:"name"`
	Points   int               `json:"points"`
	Received time.Time         `json:"received"`
	Series   *model.SeriesPair `json:"series"`
}

// PlotService parses uploads and renders the latest one.
// Only the most recent successful upload is kept; when uploads overlap, the
// one that finishes parsing last wins.
type PlotService struct {
	mu         sync.RWMutex
	renderer   plot.Renderer
	opts       plot.Options
	exportName string
	latest     *Upload
}

// NewPlotService creates a plot service.
func NewPlotService(renderer plot.Renderer, settings model.PlotSettings) (*PlotService, error) {
	s := &PlotService{renderer: renderer}
	if err := s.ApplySettings(settings); err != nil {
		return nil, err
	}
	return s, nil
}

// ApplySettings replaces the render options, e.g. after config.toml changed.
func (s *PlotService) ApplySettings(settings model.PlotSettings) error {
	opts, err := plot.OptionsFromSettings(settings)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.opts = opts
	s.exportName = settings.ExportName
	s.mu.Unlock()
	return nil
}

// Options returns the current render options.
func (s *PlotService) Options() plot.Options {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.opts
}

// Ingest checks the file name, parses r and, on success, makes the result
// the latest upload. A rejected file leaves the previous upload in place.
func (s *PlotService) Ingest(name string, r io.Reader) (*Upload, error) {
	if err := centroid.CheckFileName(name); err != nil {
		return nil, err
	}
	series, err := centroid.ParseReader(r)
	if err != nil {
		return nil, err
	}
	return s.Store(name, series), nil
}

// Store records an already parsed series as the latest upload.
func (s *PlotService) Store(name string, series *model.SeriesPair) *Upload {
	upload := &Upload{
		ID:       id.New(id.Upload),
		Name:     name,
		Points:   series.Len(),
		Received: time.Now(),
		Series:   series,
	}
	s.mu.Lock()
	s.latest = upload
	s.mu.Unlock()
	return upload
}

// Latest returns the most recent upload.
func (s *PlotService) Latest() (*Upload, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.latest == nil {
		return nil, jkerr.PlotNotFound()
	}
	return s.latest, nil
}

// Render draws the latest upload in format ("" means the configured
// default).
func (s *PlotService) Render(w io.Writer, format string) error {
	upload, err := s.Latest()
	if err != nil {
		return err
	}
	return s.RenderSeries(w, upload.Series, format)
}

// RenderSeries draws an arbitrary series with the current options.
func (s *PlotService) RenderSeries(w io.Writer, series *model.SeriesPair, format string) error {
	opts := s.Options()
	if format != "" {
		opts = opts.WithFormat(format)
	}

	// Render into a buffer so a failed render never leaves half an image in w.
	var buf bytes.Buffer
	if err := s.renderer.Render(&buf, series, opts); err != nil {
		return err
	}
	_, err := buf.WriteTo(w)
	return err
}

// ExportFileName returns the download name for format.
func (s *PlotService) ExportFileName(format string) string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if format == "" {
		format = s.opts.Format
	}
	return plot.ExportFileName(s.exportName, format)
}
