package model

import (
	"encoding/json"
	"fmt"

	jkerr "github.com/jitterbugs/jitterkit/internal/errors"
)

// SavedColorList is the ordered list of saved colors.
// Insertion ordered, duplicates allowed, removal by position.
// Serialized as a JSON array of "rgb(R G B)" strings.
type SavedColorList struct {
	colors []Color
}

// NewSavedColorList creates a list holding the given colors in order.
func NewSavedColorList(colors ...Color) *SavedColorList {
	l := &SavedColorList{}
	l.colors = append(l.colors, colors...)
	return l
}

// Len returns the number of saved colors.
func (l *SavedColorList) Len() int {
	return len(l.colors)
}

// At returns the color at index i.
func (l *SavedColorList) At(i int) (Color, error) {
	if i < 0 || i >= len(l.colors) {
		return Color{}, jkerr.IndexOutOfRange(i, len(l.colors))
	}
	return l.colors[i], nil
}

// Colors returns a copy of the saved colors.
func (l *SavedColorList) Colors() []Color {
	out := make([]Color, len(l.colors))
	copy(out, l.colors)
	return out
}

// Append adds c to the end of the list.
func (l *SavedColorList) Append(c Color) {
	l.colors = append(l.colors, c)
}

// Remove deletes exactly one element at index i.
func (l *SavedColorList) Remove(i int) (Color, error) {
	c, err := l.At(i)
	if err != nil {
		return Color{}, err
	}
	l.colors = append(l.colors[:i:i], l.colors[i+1:]...)
	return c, nil
}

// Clone returns an independent copy of the list.
func (l *SavedColorList) Clone() *SavedColorList {
	return NewSavedColorList(l.colors...)
}

// Strings returns the formatted form of every entry.
func (l *SavedColorList) Strings() []string {
	out := make([]string, len(l.colors))
	for i, c := range l.colors {
		out[i] = c.String()
	}
	return out
}

// SavedEntry is one rendered row of the saved list. Index is bound at render
// time and is only valid until the next mutation.
type SavedEntry struct {
	Index      int    `json:"index"`
	Label      string `json:"label"`
	Background string `json:"background"`
	Hex        string `json:"hex"`
}

// Entries rebuilds the rendered rows from scratch.
func (l *SavedColorList) Entries() []SavedEntry {
	entries := make([]SavedEntry, len(l.colors))
	for i, c := range l.colors {
		entries[i] = SavedEntry{
			Index:      i,
			Label:      c.String(),
			Background: c.String(),
			Hex:        c.Hex(),
		}
	}
	return entries
}

// MarshalJSON encodes the list as an array of formatted strings.
// An empty list encodes as [] rather than null.
func (l *SavedColorList) MarshalJSON() ([]byte, error) {
	return json.Marshal(l.Strings())
}

// UnmarshalJSON decodes an array of formatted strings.
// Any entry that is not "rgb(R G B)" fails the whole decode.
func (l *SavedColorList) UnmarshalJSON(data []byte) error {
	var raw []string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	colors := make([]Color, 0, len(raw))
	for i, s := range raw {
		c, err := ParseFormatted(s)
		if err != nil {
			return fmt.Errorf("entry %d: %w", i, err)
		}
		colors = append(colors, c)
	}
	l.colors = colors
	return nil
}
