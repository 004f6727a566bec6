package model

// Plot style and output format names used in settings and flags.
const (
	PlotStyleScatter  = "scatter"
	PlotStylePolyline = "polyline"

	PlotFormatPNG = "png"
	PlotFormatSVG = "svg"
)

// Settings is the jitterkit configuration.
// Stored at <data dir>/config.toml
// Schema changes require a version bump; see internal/version/version.go.
type Settings struct {
	Schema string         `toml:"jitterkit_schema" json:"jitterkit_schema"`
	Editor string         `toml:"editor,omitempty" json:"editor,omitempty"`
	Server ServerSettings `toml:"server" json:"server"`
	Plot   PlotSettings   `toml:"plot" json:"plot"`
}

// ServerSettings configures `jitterkit serve`.
type ServerSettings struct {
	Port           int   `toml:"port" json:"port"`
	OpenBrowser    bool  `toml:"open_browser" json:"open_browser"`
	MaxUploadBytes int64 `toml:"max_upload_bytes" json:"max_upload_bytes"`
}

// PlotSettings configures the centroid plot.
type PlotSettings struct {
	Title      string  `toml:"title" json:"title"`
	XLabel     string  `toml:"x_label" json:"x_label"`
	YLabel     string  `toml:"y_label" json:"y_label"`
	Width      int     `toml:"width" json:"width"`
	Height     int     `toml:"height" json:"height"`
	DotWidth   float64 `toml:"dot_width" json:"dot_width"`
	GridColor  string  `toml:"grid_color" json:"grid_color"`   // Hex color
	PointColor string  `toml:"point_color" json:"point_color"` // Hex color
	Style      string  `toml:"style" json:"style"`             // "scatter" or "polyline"
	Format     string  `toml:"format" json:"format"`           // "png" or "svg"
	ExportName string  `toml:"export_name" json:"export_name"` // Without extension
}

// DefaultSettings returns the settings used when no config file exists.
func DefaultSettings() *Settings {
	return &Settings{
		Server: ServerSettings{
			Port:           3000,
			OpenBrowser:    true,
			MaxUploadBytes: 8 << 20,
		},
		Plot: DefaultPlotSettings(),
	}
}

// DefaultPlotSettings mirrors the original centroid plot layout.
func DefaultPlotSettings() PlotSettings {
	return PlotSettings{
		Title:      "Centroid X vs. Centroid Y",
		XLabel:     "Centroid X",
		YLabel:     "Centroid Y",
		Width:      1024,
		Height:     768,
		DotWidth:   4,
		GridColor:  "#d3d3d3", // lightgrey
		PointColor: "#1f77b4",
		Style:      PlotStyleScatter,
		Format:     PlotFormatPNG,
		ExportName: "jitter_bug_centroid_plot",
	}
}

// FillDefaults replaces zero values with defaults so partially written
// config files still produce a usable plot.
func (s *Settings) FillDefaults() {
	d := DefaultSettings()
	if s.Server.Port == 0 {
		s.Server.Port = d.Server.Port
	}
	if s.Server.MaxUploadBytes <= 0 {
		s.Server.MaxUploadBytes = d.Server.MaxUploadBytes
	}

	p := &s.Plot
	dp := d.Plot
	if p.Title == "" {
		p.Title = dp.Title
	}
	if p.XLabel == "" {
		p.XLabel = dp.XLabel
	}
	if p.YLabel == "" {
		p.YLabel = dp.YLabel
	}
	if p.Width <= 0 {
		p.Width = dp.Width
	}
	if p.Height <= 0 {
		p.Height = dp.Height
	}
	if p.DotWidth <= 0 {
		p.DotWidth = dp.DotWidth
	}
	if p.GridColor == "" {
		p.GridColor = dp.GridColor
	}
	if p.PointColor == "" {
		p.PointColor = dp.PointColor
	}
	if p.Style == "" {
		p.Style = dp.Style
	}
	if p.Format == "" {
		p.Format = dp.Format
	}
	if p.ExportName == "" {
		p.ExportName = dp.ExportName
	}
}
