package service

import (
	"fmt"
	"sync"

	jkerr "github.com/jitterbugs/jitterkit/internal/errors"
	"github.com/jitterbugs/jitterkit/internal/model"
	"github.com/jitterbugs/jitterkit/internal/store"
)

// Slider control names, also used as channel names by SetChannel.
const (
	ChannelRed   = "red"
	ChannelGreen = "green"
	ChannelBlue  = "blue"
)

// DefaultColor is the color shown before any input: the midpoint of each
// slider's range.
var DefaultColor = model.Color{R: 128, G: 128, B: 128}

// SavedListListener is notified after the saved list changes.
type SavedListListener func(list *model.SavedColorList)

// CurrentColorListener is notified after the current color changes.
type CurrentColorListener func(d model.ColorDisplay)

// ColorService owns the current color and the saved color list.
// It is safe for concurrent use.
type ColorService struct {
	mu        sync.Mutex
	notifyMu  sync.Mutex // orders current color notifications
	store     store.ColorStore
	current   model.Color
	saved     *model.SavedColorList
	listeners []SavedListListener
	onCurrent []CurrentColorListener
}

// NewColorService creates a color service. Call Load before use to read the
// persisted list.
func NewColorService(colorStore store.ColorStore) *ColorService {
	return &ColorService{
		store:   colorStore,
		current: DefaultColor,
		saved:   model.NewSavedColorList(),
	}
}

// Subscribe registers fn to be called after every successful change to the
// saved list, including reloads.
func (s *ColorService) Subscribe(fn SavedListListener) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, fn)
}

// SubscribeCurrent registers fn to be called after every change to the
// current color, whichever input made it.
func (s *ColorService) SubscribeCurrent(fn CurrentColorListener) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onCurrent = append(s.onCurrent, fn)
}

// Load reads the saved list from storage, replacing the in-memory list.
func (s *ColorService) Load() error {
	list, err := s.store.Load()
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.saved = list
	s.mu.Unlock()
	return nil
}

// Reload re-reads storage and notifies listeners. Used when another process
// changed the stored list.
func (s *ColorService) Reload() (*model.SavedColorList, error) {
	if err := s.Load(); err != nil {
		return nil, err
	}
	list := s.Saved()
	s.notify(list)
	return list, nil
}

// Current returns the current color.
func (s *ColorService) Current() model.Color {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// Display returns the display state for the current color.
func (s *ColorService) Display() model.ColorDisplay {
	return model.NewColorDisplay(s.Current())
}

// SetCurrent replaces the current color. Every input path ends here so the
// swatch, sliders and readout always describe the same color.
func (s *ColorService) SetCurrent(c model.Color) model.ColorDisplay {
	return s.updateCurrent(func(model.Color) model.Color { return c })
}

// SetChannel updates one channel from slider text, leaving the other two
// as they are at the moment of the update.
func (s *ColorService) SetChannel(channel, value string) (model.ColorDisplay, error) {
	v, err := model.ParseChannel(value)
	if err != nil {
		return model.ColorDisplay{}, err
	}

	var apply func(c model.Color) model.Color
	switch channel {
	case ChannelRed:
		apply = func(c model.Color) model.Color { c.R = v; return c }
	case ChannelGreen:
		apply = func(c model.Color) model.Color { c.G = v; return c }
	case ChannelBlue:
		apply = func(c model.Color) model.Color { c.B = v; return c }
	default:
		return model.ColorDisplay{}, jkerr.InvalidField("channel", fmt.Sprintf("unknown channel %q", channel))
	}
	return s.updateCurrent(apply), nil
}

// updateCurrent swaps in fn(current) under the lock and notifies current
// color listeners in the same order the swaps happened.
func (s *ColorService) updateCurrent(fn func(c model.Color) model.Color) model.ColorDisplay {
	s.mu.Lock()
	next := fn(s.current)
	next = model.NewColor(next.R, next.G, next.B)
	s.current = next
	d := model.NewColorDisplay(next)
	listeners := append([]CurrentColorListener(nil), s.onCurrent...)
	s.notifyMu.Lock()
	s.mu.Unlock()
	defer s.notifyMu.Unlock()

	for _, l := range listeners {
		l(d)
	}
	return d
}

// SetFromChannels sets all three channels from slider text.
func (s *ColorService) SetFromChannels(red, green, blue string) (model.ColorDisplay, error) {
	var c model.Color
	var err error
	if c.R, err = model.ParseChannel(red); err != nil {
		return model.ColorDisplay{}, err
	}
	if c.G, err = model.ParseChannel(green); err != nil {
		return model.ColorDisplay{}, err
	}
	if c.B, err = model.ParseChannel(blue); err != nil {
		return model.ColorDisplay{}, err
	}
	return s.SetCurrent(c), nil
}

// SetFromHex sets the current color from a "#RRGGBB" wheel value.
// Malformed input leaves the current color unchanged.
func (s *ColorService) SetFromHex(hex string) (model.ColorDisplay, error) {
	c, err := model.ParseHex(hex)
	if err != nil {
		return model.ColorDisplay{}, err
	}
	return s.SetCurrent(c), nil
}

// Saved returns a copy of the saved list.
func (s *ColorService) Saved() *model.SavedColorList {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saved.Clone()
}

// Entries returns render rows for the saved list.
func (s *ColorService) Entries() []model.SavedEntry {
	return s.Saved().Entries()
}

// SaveCurrent appends the current color to the saved list.
func (s *ColorService) SaveCurrent() (*model.SavedColorList, error) {
	return s.Save(s.Current())
}

// Save appends c and persists the whole list. If persisting fails the
// in-memory list is left as it was.
func (s *ColorService) Save(c model.Color) (*model.SavedColorList, error) {
	return s.mutate(func(list *model.SavedColorList) error {
		list.Append(c)
		return nil
	})
}

// Remove deletes the saved color at index and persists the list.
func (s *ColorService) Remove(index int) (model.Color, *model.SavedColorList, error) {
	var removed model.Color
	list, err := s.mutate(func(list *model.SavedColorList) error {
		var err error
		removed, err = list.Remove(index)
		return err
	})
	if err != nil {
		return model.Color{}, nil, err
	}
	return removed, list, nil
}

// mutate applies fn to a copy of the saved list, persists the copy, and only
// then swaps it in.
func (s *ColorService) mutate(fn func(list *model.SavedColorList) error) (*model.SavedColorList, error) {
	s.mu.Lock()
	next := s.saved.Clone()
	if err := fn(next); err != nil {
		s.mu.Unlock()
		return nil, err
	}
	if err := s.store.Save(next); err != nil {
		s.mu.Unlock()
		return nil, fmt.Errorf("failed to persist saved colors: %w", err)
	}
	s.saved = next
	s.mu.Unlock()

	list := next.Clone()
	s.notify(list)
	return list, nil
}

func (s *ColorService) notify(list *model.SavedColorList) {
	s.mu.Lock()
	listeners := append([]SavedListListener(nil), s.listeners...)
	s.mu.Unlock()

	for _, fn := range listeners {
		fn(list.Clone())
	}
}
