// Package plot renders centroid series to images.
package plot

import (
	"fmt"
	"io"
	"strings"

	jkerr "github.com/jitterbugs/jitterkit/internal/errors"
	"github.com/jitterbugs/jitterkit/internal/model"
)

// Renderer draws a series pair to w. Implementations only see the two
// equal-length value slices plus presentation options.
type Renderer interface {
	Render(w io.Writer, series *model.SeriesPair, opts Options) error
}

// Options controls one render.
type Options struct {
	Title      string
	XLabel     string
	YLabel     string
	Width      int
	Height     int
	DotWidth   float64
	GridColor  model.Color
	PointColor model.Color
	Style      string // model.PlotStyleScatter or model.PlotStylePolyline
	Format     string // model.PlotFormatPNG or model.PlotFormatSVG
}

// DefaultOptions returns options built from the default plot settings.
func DefaultOptions() Options {
	opts, _ := OptionsFromSettings(model.DefaultPlotSettings())
	return opts
}

// OptionsFromSettings converts the [plot] section of the settings file.
func OptionsFromSettings(s model.PlotSettings) (Options, error) {
	grid, err := model.ParseHex(s.GridColor)
	if err != nil {
		return Options{}, fmt.Errorf("plot.grid_color: %w", err)
	}
	point, err := model.ParseHex(s.PointColor)
	if err != nil {
		return Options{}, fmt.Errorf("plot.point_color: %w", err)
	}

	opts := Options{
		Title:      s.Title,
		XLabel:     s.XLabel,
		YLabel:     s.YLabel,
		Width:      s.Width,
		Height:     s.Height,
		DotWidth:   s.DotWidth,
		GridColor:  grid,
		PointColor: point,
		Style:      s.Style,
		Format:     s.Format,
	}
	if err := opts.Validate(); err != nil {
		return Options{}, err
	}
	return opts, nil
}

// Validate checks style, format and dimensions.
func (o Options) Validate() error {
	if err := ValidateStyle(o.Style); err != nil {
		return err
	}
	if err := ValidateFormat(o.Format); err != nil {
		return err
	}
	if o.Width <= 0 || o.Height <= 0 {
		return jkerr.InvalidField("plot size", fmt.Sprintf("%dx%d", o.Width, o.Height))
	}
	return nil
}

// WithFormat returns a copy of o rendering to format.
func (o Options) WithFormat(format string) Options {
	o.Format = strings.ToLower(format)
	return o
}

// ValidateStyle checks a plot style name.
func ValidateStyle(style string) error {
	switch style {
	case model.PlotStyleScatter, model.PlotStylePolyline:
		return nil
	}
	return jkerr.InvalidField("plot style", fmt.Sprintf("%q (expected scatter or polyline)", style))
}

// ValidateFormat checks an image format name.
func ValidateFormat(format string) error {
	switch format {
	case model.PlotFormatPNG, model.PlotFormatSVG:
		return nil
	}
	return jkerr.InvalidField("plot format", fmt.Sprintf("%q (expected png or svg)", format))
}

// ContentType returns the MIME type for an image format.
func ContentType(format string) string {
	if format == model.PlotFormatSVG {
		return "image/svg+xml"
	}
	return "image/png"
}

// ExportFileName returns the download name for an export,
// e.g. jitter_bug_centroid_plot.png.
func ExportFileName(base, format string) string {
	if base == "" {
		base = model.DefaultPlotSettings().ExportName
	}
	if format == "" {
		format = model.PlotFormatPNG
	}
	return base + "." + format
}
