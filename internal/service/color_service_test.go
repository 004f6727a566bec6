package service

import (
	"errors"
	"reflect"
	"sync"
	"testing"

	jkerr "github.com/jitterbugs/jitterkit/internal/errors"
	"github.com/jitterbugs/jitterkit/internal/model"
	"github.com/jitterbugs/jitterkit/testutil"
)

func newColorService(t *testing.T, colors ...model.Color) (*ColorService, *testutil.MemoryColorStore) {
	t.Helper()
	st := testutil.NewMemoryColorStore(colors...)
	svc := NewColorService(st)
	if err := svc.Load(); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	return svc, st
}

func TestColorService_DefaultDisplay(t *testing.T) {
	svc, _ := newColorService(t)

	d := svc.Display()
	if d.Readout != "128 128 128" {
		t.Errorf("default readout = %q", d.Readout)
	}
}

func TestColorService_SliderAndWheelAgree(t *testing.T) {
	svc, _ := newColorService(t)

	fromSliders, err := svc.SetFromChannels("255", "128", "0")
	if err != nil {
		t.Fatalf("SetFromChannels failed: %v", err)
	}
	fromWheel, err := svc.SetFromHex("#ff8000")
	if err != nil {
		t.Fatalf("SetFromHex failed: %v", err)
	}
	if fromSliders != fromWheel {
		t.Errorf("slider display %+v != wheel display %+v", fromSliders, fromWheel)
	}
	if fromWheel.Swatch != "rgb(255, 128, 0)" || fromWheel.Readout != "255 128 0" {
		t.Errorf("unexpected display %+v", fromWheel)
	}
}

func TestColorService_SetChannel(t *testing.T) {
	svc, _ := newColorService(t)
	svc.SetCurrent(model.Color{R: 1, G: 2, B: 3})

	d, err := svc.SetChannel(ChannelGreen, "200")
	if err != nil {
		t.Fatalf("SetChannel failed: %v", err)
	}
	if d.Red != 1 || d.Green != 200 || d.Blue != 3 {
		t.Errorf("unexpected display %+v", d)
	}

	if _, err := svc.SetChannel("alpha", "1"); !jkerr.IsValidationError(err) {
		t.Errorf("expected validation error for unknown channel, got %v", err)
	}
}

func TestColorService_MalformedHexKeepsCurrent(t *testing.T) {
	svc, _ := newColorService(t)
	svc.SetCurrent(model.Color{R: 9, G: 9, B: 9})

	if _, err := svc.SetFromHex("#12345"); !jkerr.IsValidationError(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if got := svc.Current(); got != (model.Color{R: 9, G: 9, B: 9}) {
		t.Errorf("current changed to %+v", got)
	}
}

func TestColorService_SaveAndRemove(t *testing.T) {
	svc, st := newColorService(t)

	colors := []model.Color{{R: 255}, {G: 255}, {B: 255}, {R: 255}}
	for _, c := range colors {
		svc.SetCurrent(c)
		if _, err := svc.SaveCurrent(); err != nil {
			t.Fatalf("SaveCurrent failed: %v", err)
		}
	}
	if st.Saves != len(colors) {
		t.Errorf("expected %d persists, got %d", len(colors), st.Saves)
	}

	removed, list, err := svc.Remove(1)
	if err != nil {
		t.Fatalf("Remove failed: %v", err)
	}
	if removed != colors[1] {
		t.Errorf("removed %+v, want %+v", removed, colors[1])
	}
	want := []model.Color{colors[0], colors[2], colors[3]}
	if !reflect.DeepEqual(list.Colors(), want) {
		t.Errorf("list = %v, want %v", list.Colors(), want)
	}
	if !reflect.DeepEqual(st.Stored(), want) {
		t.Errorf("stored = %v, want %v", st.Stored(), want)
	}
}

func TestColorService_RemoveOutOfRange(t *testing.T) {
	svc, st := newColorService(t, model.Color{R: 1})

	if _, _, err := svc.Remove(1); !jkerr.IsValidationError(err) {
		t.Errorf("expected validation error, got %v", err)
	}
	if st.Saves != 0 {
		t.Error("failed remove should not persist")
	}
}

func TestColorService_PersistFailureRollsBack(t *testing.T) {
	svc, st := newColorService(t, model.Color{R: 1})
	st.Fail = true

	if _, err := svc.Save(model.Color{G: 1}); !errors.Is(err, testutil.ErrStoreFailed) {
		t.Fatalf("expected store failure, got %v", err)
	}
	if _, _, err := svc.Remove(0); !errors.Is(err, testutil.ErrStoreFailed) {
		t.Fatalf("expected store failure, got %v", err)
	}
	if got := svc.Saved().Colors(); !reflect.DeepEqual(got, []model.Color{{R: 1}}) {
		t.Errorf("in-memory list changed after failed persist: %v", got)
	}
}

func TestColorService_ReloadNotifiesListeners(t *testing.T) {
	svc, st := newColorService(t)

	var mu sync.Mutex
	var seen []int
	svc.Subscribe(func(list *model.SavedColorList) {
		mu.Lock()
		seen = append(seen, list.Len())
		mu.Unlock()
	})

	if _, err := svc.Save(model.Color{R: 5}); err != nil {
		t.Fatal(err)
	}

	// Simulate another process writing to storage.
	if err := st.Save(model.NewSavedColorList(model.Color{}, model.Color{}, model.Color{})); err != nil {
		t.Fatal(err)
	}
	list, err := svc.Reload()
	if err != nil {
		t.Fatalf("Reload failed: %v", err)
	}
	if list.Len() != 3 {
		t.Errorf("reloaded list len = %d, want 3", list.Len())
	}

	mu.Lock()
	defer mu.Unlock()
	if !reflect.DeepEqual(seen, []int{1, 3}) {
		t.Errorf("listener saw %v, want [1 3]", seen)
	}
}

func TestColorService_ConcurrentSaves(t *testing.T) {
	svc, st := newColorService(t)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			if _, err := svc.Save(model.Color{R: i}); err != nil {
				t.Error(err)
			}
		}(i)
	}
	wg.Wait()

	if svc.Saved().Len() != 20 || len(st.Stored()) != 20 {
		t.Errorf("expected 20 saved colors, memory=%d stored=%d", svc.Saved().Len(), len(st.Stored()))
	}
}

func TestColorService_ConcurrentChannelsAllLand(t *testing.T) {
	for round := 0; round < 50; round++ {
		svc, _ := newColorService(t)

		var wg sync.WaitGroup
		for _, ch := range []struct{ name, value string }{
			{ChannelRed, "10"},
			{ChannelGreen, "20"},
			{ChannelBlue, "30"},
		} {
			wg.Add(1)
			go func(name, value string) {
				defer wg.Done()
				if _, err := svc.SetChannel(name, value); err != nil {
					t.Errorf("SetChannel(%s) failed: %v", name, err)
				}
			}(ch.name, ch.value)
		}
		wg.Wait()

		if got := svc.Current(); got != (model.Color{R: 10, G: 20, B: 30}) {
			t.Fatalf("round %d: current = %+v, an update was lost", round, got)
		}
	}
}

func TestColorService_CurrentListenersSeeEveryInput(t *testing.T) {
	svc, _ := newColorService(t)

	var seen []string
	svc.SubscribeCurrent(func(d model.ColorDisplay) {
		seen = append(seen, d.Hex)
	})

	svc.SetCurrent(model.Color{R: 1, G: 2, B: 3})
	if _, err := svc.SetChannel(ChannelRed, "255"); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.SetFromHex("#00ff00"); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.SetFromChannels("0", "0", "255"); err != nil {
		t.Fatal(err)
	}
	// Rejected input changes nothing and notifies no one
	svc.SetFromHex("#nope")
	svc.SetChannel("alpha", "1")

	want := []string{"#010203", "#ff0203", "#00ff00", "#0000ff"}
	if !reflect.DeepEqual(seen, want) {
		t.Errorf("notifications = %v, want %v", seen, want)
	}
}
