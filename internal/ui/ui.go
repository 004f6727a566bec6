// Package ui wires user interface events to the color and plot services
// without depending on any particular front end. A front end implements
// Binder to deliver events and Surface to display results.
package ui

import (
	"io"

	"github.com/jitterbugs/jitterkit/internal/model"
)

// Control names shared with the browser front end.
const (
	ControlRed    = "red"
	ControlGreen  = "green"
	ControlBlue   = "blue"
	ControlWheel  = "colorWheel"
	ControlSave   = "saveColor"
	ControlRemove = "removeColor"
)

// InputHandler receives the new value of an input control.
type InputHandler func(value string)

// ClickHandler receives the argument attached to a click, e.g. the index of
// a remove button. Empty when the control carries none.
type ClickHandler func(arg string)

// FileHandler receives one dropped or selected file.
type FileHandler func(name string, data io.Reader)

// Binder registers handlers for front end events.
type Binder interface {
	OnInput(control string, fn InputHandler)
	OnClick(control string, fn ClickHandler)
	OnFileDrop(fn FileHandler)
}

// Surface displays state.
type Surface interface {
	ShowColor(d model.ColorDisplay)
	ShowSavedColors(entries []model.SavedEntry)
	ShowPlot(p PlotView)
	Alert(message string)
}

// PlotView tells the front end where to fetch the latest plot.
type PlotView struct {
	UploadID    string `json:"upload_id"`
	Name        string `json:"name"`
	Points      int    `json:"points"`
	ImageURL    string `json:"image_url"`
	DownloadURL string `json:"download_url"`
	FileName    string `json:"file_name"`
}
