package model

import (
	"encoding/json"
	"reflect"
	"testing"

	jkerr "github.com/jitterbugs/jitterkit/internal/errors"
)

func sampleColors(n int) []Color {
	colors := make([]Color, n)
	for i := range colors {
		colors[i] = Color{R: i, G: 2 * i, B: 3 * i}
	}
	return colors
}

func TestSavedColorList_RemoveEachIndex(t *testing.T) {
	const n = 5
	original := sampleColors(n)

	for k := 0; k < n; k++ {
		l := NewSavedColorList()
		for _, c := range original {
			l.Append(c)
		}

		removed, err := l.Remove(k)
		if err != nil {
			t.Fatalf("Remove(%d) failed: %v", k, err)
		}
		if removed != original[k] {
			t.Errorf("Remove(%d) returned %+v, want %+v", k, removed, original[k])
		}

		want := append(append([]Color{}, original[:k]...), original[k+1:]...)
		if got := l.Colors(); !reflect.DeepEqual(got, want) {
			t.Errorf("after Remove(%d) got %v, want %v", k, got, want)
		}
		if l.Len() != n-1 {
			t.Errorf("Len() = %d, want %d", l.Len(), n-1)
		}
	}
}

func TestSavedColorList_RemoveOutOfRange(t *testing.T) {
	l := NewSavedColorList(sampleColors(2)...)

	for _, idx := range []int{-1, 2, 10} {
		_, err := l.Remove(idx)
		if err == nil {
			t.Fatalf("expected error for index %d", idx)
		}
		if !jkerr.IsValidationError(err) {
			t.Errorf("expected validation error, got %v", err)
		}
	}
	if l.Len() != 2 {
		t.Errorf("list mutated by failed removes, len=%d", l.Len())
	}
}

func TestSavedColorList_DuplicatesAllowed(t *testing.T) {
	l := NewSavedColorList()
	c := Color{R: 1, G: 1, B: 1}
	l.Append(c)
	l.Append(c)

	if l.Len() != 2 {
		t.Errorf("expected duplicates to be kept, len=%d", l.Len())
	}
}

func TestSavedColorList_RemoveDoesNotAliasClone(t *testing.T) {
	l := NewSavedColorList(sampleColors(3)...)
	snapshot := l.Clone()

	if _, err := l.Remove(0); err != nil {
		t.Fatal(err)
	}
	if snapshot.Len() != 3 {
		t.Errorf("clone affected by remove, len=%d", snapshot.Len())
	}
	if got, _ := snapshot.At(0); got != (Color{0, 0, 0}) {
		t.Errorf("clone element changed: %+v", got)
	}
}

func TestSavedColorList_JSONRoundTrip(t *testing.T) {
	l := NewSavedColorList(Color{255, 0, 0}, Color{0, 128, 255}, Color{255, 0, 0})

	data, err := json.Marshal(l)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if got, want := string(data), `["rgb(255 0 0)","rgb(0 128 255)","rgb(255 0 0)"]`; got != want {
		t.Errorf("Marshal = %s, want %s", got, want)
	}

	var restored SavedColorList
	if err := json.Unmarshal(data, &restored); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if !reflect.DeepEqual(restored.Colors(), l.Colors()) {
		t.Errorf("round trip mismatch: got %v, want %v", restored.Colors(), l.Colors())
	}
}

func TestSavedColorList_EmptyMarshalsAsArray(t *testing.T) {
	data, err := json.Marshal(NewSavedColorList())
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "[]" {
		t.Errorf("got %s, want []", data)
	}
}

func TestSavedColorList_UnmarshalRejectsBadEntry(t *testing.T) {
	var l SavedColorList
	if err := json.Unmarshal([]byte(`["rgb(1 2 3)","rgb(1, 2, 3)"]`), &l); err == nil {
		t.Error("expected error for comma-separated entry")
	}
	if err := json.Unmarshal([]byte(`{"not":"an array"}`), &l); err == nil {
		t.Error("expected error for non-array JSON")
	}
}

func TestSavedColorList_EntriesIndexedAtRender(t *testing.T) {
	l := NewSavedColorList(sampleColors(3)...)
	if _, err := l.Remove(0); err != nil {
		t.Fatal(err)
	}

	entries := l.Entries()
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	for i, e := range entries {
		if e.Index != i {
			t.Errorf("entry %d has index %d", i, e.Index)
		}
	}
	if entries[0].Label != "rgb(1 2 3)" || entries[0].Background != "rgb(1 2 3)" {
		t.Errorf("unexpected first entry: %+v", entries[0])
	}
}
