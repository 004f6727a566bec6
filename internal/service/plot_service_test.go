package service

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	jkerr "github.com/jitterbugs/jitterkit/internal/errors"
	"github.com/jitterbugs/jitterkit/internal/model"
	"github.com/jitterbugs/jitterkit/internal/plot"
	"github.com/jitterbugs/jitterkit/testutil"
)

// recordingRenderer captures what it was asked to draw.
type recordingRenderer struct {
	series *model.SeriesPair
	opts   plot.Options
	err    error
}

func (r *recordingRenderer) Render(w io.Writer, series *model.SeriesPair, opts plot.Options) error {
	r.series = series
	r.opts = opts
	if r.err != nil {
		io.WriteString(w, "partial")
		return r.err
	}
	_, err := io.WriteString(w, "image:"+opts.Format)
	return err
}

func newPlotService(t *testing.T, r plot.Renderer) *PlotService {
	t.Helper()
	svc, err := NewPlotService(r, model.DefaultPlotSettings())
	if err != nil {
		t.Fatalf("NewPlotService failed: %v", err)
	}
	return svc
}

func TestPlotService_IngestAndRender(t *testing.T) {
	r := &recordingRenderer{}
	svc := newPlotService(t, r)

	upload, err := svc.Ingest("run.CSV", strings.NewReader(testutil.SampleCSV))
	if err != nil {
		t.Fatalf("Ingest failed: %v", err)
	}
	if upload.Points != 2 || upload.Name != "run.CSV" || !strings.HasPrefix(upload.ID, "upl_") {
		t.Errorf("unexpected upload %+v", upload)
	}

	var buf bytes.Buffer
	if err := svc.Render(&buf, ""); err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if buf.String() != "image:png" {
		t.Errorf("output = %q", buf.String())
	}
	if r.opts.Title != "Centroid X vs. Centroid Y" {
		t.Errorf("title = %q", r.opts.Title)
	}
	if r.series.Len() != 2 {
		t.Errorf("rendered %d points", r.series.Len())
	}
}

func TestPlotService_RenderBeforeUpload(t *testing.T) {
	svc := newPlotService(t, &recordingRenderer{})

	if err := svc.Render(io.Discard, ""); !jkerr.IsNotFound(err) {
		t.Errorf("expected not found, got %v", err)
	}
}

func TestPlotService_RejectedUploadKeepsPrevious(t *testing.T) {
	svc := newPlotService(t, &recordingRenderer{})

	first, err := svc.Ingest("a.csv", strings.NewReader(testutil.SampleCSV))
	if err != nil {
		t.Fatal(err)
	}

	if _, err := svc.Ingest("a.txt", strings.NewReader(testutil.SampleCSV)); !jkerr.IsInvalidFileType(err) {
		t.Errorf("expected invalid file type, got %v", err)
	}
	if _, err := svc.Ingest("b.csv", strings.NewReader(testutil.NoCentroidCSV)); !jkerr.IsNoValidData(err) {
		t.Errorf("expected no valid data, got %v", err)
	}

	latest, err := svc.Latest()
	if err != nil {
		t.Fatal(err)
	}
	if latest.ID != first.ID {
		t.Errorf("latest = %s, want %s", latest.ID, first.ID)
	}
}

func TestPlotService_LastUploadWins(t *testing.T) {
	svc := newPlotService(t, &recordingRenderer{})

	if _, err := svc.Ingest("a.csv", strings.NewReader(testutil.SampleCSV)); err != nil {
		t.Fatal(err)
	}
	second, err := svc.Ingest("b.csv", strings.NewReader("Centroid X,Centroid Y\n7,8\n"))
	if err != nil {
		t.Fatal(err)
	}
	latest, _ := svc.Latest()
	if latest.ID != second.ID || latest.Points != 1 {
		t.Errorf("latest = %+v, want second upload", latest)
	}
}

func TestPlotService_RenderFailureWritesNothing(t *testing.T) {
	r := &recordingRenderer{err: errors.New("boom")}
	svc := newPlotService(t, r)
	svc.Store("x.csv", &model.SeriesPair{X: []float64{1}, Y: []float64{1}})

	var buf bytes.Buffer
	if err := svc.Render(&buf, "svg"); err == nil {
		t.Fatal("expected render error")
	}
	if buf.Len() != 0 {
		t.Errorf("partial output leaked: %q", buf.String())
	}
	if r.opts.Format != "svg" {
		t.Errorf("format override not applied: %q", r.opts.Format)
	}
}

func TestPlotService_ApplySettings(t *testing.T) {
	svc := newPlotService(t, &recordingRenderer{})

	s := model.DefaultPlotSettings()
	s.ExportName = "bug42"
	s.Format = model.PlotFormatSVG
	if err := svc.ApplySettings(s); err != nil {
		t.Fatalf("ApplySettings failed: %v", err)
	}
	if got := svc.ExportFileName(""); got != "bug42.svg" {
		t.Errorf("ExportFileName = %q", got)
	}

	s.GridColor = "grey"
	if err := svc.ApplySettings(s); err == nil {
		t.Error("expected error for bad grid color")
	}
	if svc.Options().Format != model.PlotFormatSVG {
		t.Error("failed ApplySettings should keep previous options")
	}
}
