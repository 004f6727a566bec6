package plot

import (
	"fmt"
	"io"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	jkerr "github.com/jitterbugs/jitterkit/internal/errors"
	"github.com/jitterbugs/jitterkit/internal/model"
)

// ChartRenderer renders with go-chart.
type ChartRenderer struct{}

// NewChartRenderer creates a go-chart backed renderer.
func NewChartRenderer() *ChartRenderer {
	return &ChartRenderer{}
}

// Render draws series as a scatter or polyline plot with titled, gridded axes.
func (r *ChartRenderer) Render(w io.Writer, series *model.SeriesPair, opts Options) error {
	if err := series.Validate(); err != nil {
		return jkerr.InvalidField("series", err.Error())
	}
	if series.Empty() {
		return jkerr.NoValidData(0)
	}
	if err := opts.Validate(); err != nil {
		return err
	}

	minX, maxX, minY, maxY, _ := series.Bounds()
	gridMajor := chart.Style{
		StrokeColor: toDrawing(opts.GridColor),
		StrokeWidth: 1,
	}
	minorColor := toDrawing(opts.GridColor)
	minorColor.A = 96
	gridMinor := chart.Style{
		StrokeColor: minorColor,
		StrokeWidth: 0.5,
	}

	ch := chart.Chart{
		Title:      opts.Title,
		Width:      opts.Width,
		Height:     opts.Height,
		Background: chart.Style{Padding: chart.Box{Top: 40, Left: 20, Right: 20, Bottom: 20}},
		XAxis: chart.XAxis{
			Name:           opts.XLabel,
			Range:          paddedRange(minX, maxX),
			GridMajorStyle: gridMajor,
			GridMinorStyle: gridMinor,
		},
		YAxis: chart.YAxis{
			Name:           opts.YLabel,
			Range:          paddedRange(minY, maxY),
			GridMajorStyle: gridMajor,
			GridMinorStyle: gridMinor,
		},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name:    opts.YLabel,
				XValues: series.X,
				YValues: series.Y,
				Style:   seriesStyle(opts),
			},
		},
	}

	var provider chart.RendererProvider = chart.PNG
	if opts.Format == model.PlotFormatSVG {
		provider = chart.SVG
	}
	if err := ch.Render(provider, w); err != nil {
		return fmt.Errorf("failed to render plot: %w", err)
	}
	return nil
}

// seriesStyle returns markers only for scatter, markers joined by a thin
// line for polyline.
func seriesStyle(opts Options) chart.Style {
	point := toDrawing(opts.PointColor)
	st := chart.Style{
		StrokeWidth: 0,
		StrokeColor: drawing.ColorTransparent,
		DotWidth:    opts.DotWidth,
		DotColor:    point,
	}
	if opts.Style == model.PlotStylePolyline {
		st.StrokeWidth = 1.5
		st.StrokeColor = point
	}
	return st
}

// paddedRange widens [lo, hi] by 5% on each side. A single-valued axis gets
// a unit-wide window so go-chart never sees a zero range.
func paddedRange(lo, hi float64) *chart.ContinuousRange {
	span := hi - lo
	if span == 0 {
		return &chart.ContinuousRange{Min: lo - 0.5, Max: hi + 0.5}
	}
	pad := span * 0.05
	return &chart.ContinuousRange{Min: lo - pad, Max: hi + pad}
}

func toDrawing(c model.Color) drawing.Color {
	return drawing.Color{R: uint8(c.R), G: uint8(c.G), B: uint8(c.B), A: 255}
}
