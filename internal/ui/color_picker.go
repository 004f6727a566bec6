package ui

import (
	"strconv"
	"strings"

	jkerr "github.com/jitterbugs/jitterkit/internal/errors"
	"github.com/jitterbugs/jitterkit/internal/model"
	"github.com/jitterbugs/jitterkit/internal/service"
)

// ColorPicker connects slider, wheel and saved list controls to a
// ColorService. Every input path finishes with one ShowColor call.
type ColorPicker struct {
	colors  *service.ColorService
	surface Surface
}

// NewColorPicker creates a color picker controller drawing to surface.
func NewColorPicker(colors *service.ColorService, surface Surface) *ColorPicker {
	return &ColorPicker{colors: colors, surface: surface}
}

// Bind registers the picker's handlers.
func (p *ColorPicker) Bind(b Binder) {
	b.OnInput(ControlRed, p.onChannel(service.ChannelRed))
	b.OnInput(ControlGreen, p.onChannel(service.ChannelGreen))
	b.OnInput(ControlBlue, p.onChannel(service.ChannelBlue))
	b.OnInput(ControlWheel, p.onWheel)
	b.OnClick(ControlSave, p.onSave)
	b.OnClick(ControlRemove, p.onRemove)
}

// Init draws the current color and the saved list.
func (p *ColorPicker) Init() {
	p.surface.ShowColor(p.colors.Display())
	p.surface.ShowSavedColors(p.colors.Entries())
}

func (p *ColorPicker) onChannel(channel string) InputHandler {
	return func(value string) {
		d, err := p.colors.SetChannel(channel, value)
		p.show(d, err)
	}
}

func (p *ColorPicker) onWheel(value string) {
	d, err := p.colors.SetFromHex(value)
	p.show(d, err)
}

func (p *ColorPicker) onSave(string) {
	list, err := p.colors.SaveCurrent()
	if err != nil {
		p.surface.Alert(err.Error())
		return
	}
	p.surface.ShowSavedColors(list.Entries())
}

func (p *ColorPicker) onRemove(arg string) {
	index, err := strconv.Atoi(strings.TrimSpace(arg))
	if err != nil {
		p.surface.Alert(jkerr.InvalidField("index", strconv.Quote(arg)).Error())
		return
	}
	_, list, err := p.colors.Remove(index)
	if err != nil {
		p.surface.Alert(err.Error())
		return
	}
	p.surface.ShowSavedColors(list.Entries())
}

func (p *ColorPicker) show(d model.ColorDisplay, err error) {
	if err != nil {
		p.surface.Alert(err.Error())
		// Resync the controls with the unchanged color.
		p.surface.ShowColor(p.colors.Display())
		return
	}
	p.surface.ShowColor(d)
}
