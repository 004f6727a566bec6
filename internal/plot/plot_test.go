package plot

import (
	"bytes"
	"strings"
	"testing"

	jkerr "github.com/jitterbugs/jitterkit/internal/errors"
	"github.com/jitterbugs/jitterkit/internal/model"
)

func sampleSeries() *model.SeriesPair {
	s := model.NewSeriesPair(4)
	s.Add(1.0, 2.0)
	s.Add(3.0, 4.0)
	s.Add(2.5, 1.5)
	s.Add(-1.0, 3.25)
	return s
}

func TestChartRenderer_PNG(t *testing.T) {
	var buf bytes.Buffer
	if err := NewChartRenderer().Render(&buf, sampleSeries(), DefaultOptions()); err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("\x89PNG")) {
		t.Errorf("output is not a PNG (first bytes %q)", buf.Bytes()[:min(8, buf.Len())])
	}
}

func TestChartRenderer_SVG(t *testing.T) {
	opts := DefaultOptions().WithFormat("SVG")
	opts.Style = model.PlotStylePolyline

	var buf bytes.Buffer
	if err := NewChartRenderer().Render(&buf, sampleSeries(), opts); err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if !strings.Contains(buf.String(), "<svg") {
		t.Error("output is not an SVG document")
	}
	if !strings.Contains(buf.String(), "Centroid X vs. Centroid Y") {
		t.Error("SVG is missing the title")
	}
}

func TestChartRenderer_SinglePoint(t *testing.T) {
	s := model.NewSeriesPair(1)
	s.Add(5, 5)

	var buf bytes.Buffer
	if err := NewChartRenderer().Render(&buf, s, DefaultOptions()); err != nil {
		t.Fatalf("single point should render: %v", err)
	}
}

func TestChartRenderer_RejectsBadSeries(t *testing.T) {
	r := NewChartRenderer()
	var buf bytes.Buffer

	if err := r.Render(&buf, model.NewSeriesPair(0), DefaultOptions()); !jkerr.IsNoValidData(err) {
		t.Errorf("expected no valid data for empty series, got %v", err)
	}

	mismatched := &model.SeriesPair{X: []float64{1, 2}, Y: []float64{1}}
	if err := r.Render(&buf, mismatched, DefaultOptions()); !jkerr.IsValidationError(err) {
		t.Errorf("expected validation error for mismatched series, got %v", err)
	}
	if buf.Len() != 0 {
		t.Error("nothing should be written for rejected input")
	}
}

func TestOptionsFromSettings(t *testing.T) {
	s := model.DefaultPlotSettings()
	opts, err := OptionsFromSettings(s)
	if err != nil {
		t.Fatalf("OptionsFromSettings failed: %v", err)
	}
	if opts.GridColor != (model.Color{R: 0xd3, G: 0xd3, B: 0xd3}) {
		t.Errorf("grid color = %+v", opts.GridColor)
	}

	s.PointColor = "blue"
	if _, err := OptionsFromSettings(s); err == nil {
		t.Error("expected error for non-hex point color")
	}

	s = model.DefaultPlotSettings()
	s.Style = "bars"
	if _, err := OptionsFromSettings(s); !jkerr.IsValidationError(err) {
		t.Errorf("expected validation error for style, got %v", err)
	}
}

func TestExportFileName(t *testing.T) {
	tests := []struct {
		base, format, want string
	}{
		{"", "", "jitter_bug_centroid_plot.png"},
		{"jitter_bug_centroid_plot", "png", "jitter_bug_centroid_plot.png"},
		{"run-7", "svg", "run-7.svg"},
	}
	for _, tt := range tests {
		if got := ExportFileName(tt.base, tt.format); got != tt.want {
			t.Errorf("ExportFileName(%q, %q) = %q, want %q", tt.base, tt.format, got, tt.want)
		}
	}
}

func TestContentType(t *testing.T) {
	if ContentType("png") != "image/png" || ContentType("svg") != "image/svg+xml" {
		t.Error("unexpected content types")
	}
}
