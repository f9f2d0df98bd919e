package window

import (
	"context"
	"errors"
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"

	"github.com/angristan/brighten/internal/controller"
	"github.com/angristan/brighten/internal/models"
	"github.com/angristan/brighten/internal/provider"
)

var windowSize = models.Size{Width: 200, Height: 50}

func newTestWindow(t *testing.T, current, max int, opts controller.Options) (*Window, *provider.Demo) {
	t.Helper()
	a := test.NewTempApp(t)
	demo := provider.NewDemo(current, max)
	ctrl := controller.New(demo, opts)
	state, err := ctrl.Initialize(context.Background())
	if err != nil {
		t.Fatalf("Initialize returned error: %v", err)
	}
	return New(context.Background(), a, ctrl, state, windowSize, nil), demo
}

func TestNewWindowLayout(t *testing.T) {
	w, _ := newTestWindow(t, 50, 200, controller.DefaultOptions())

	if !w.win.FixedSize() {
		t.Error("Expected a fixed-size window")
	}
	if w.win.Title() != Title {
		t.Errorf("Expected title %q, got %q", Title, w.win.Title())
	}
	if w.label.Text != "25%" {
		t.Errorf("Expected label 25%%, got %q", w.label.Text)
	}
	if w.slider.Max != 200 || w.slider.Value != 50 || w.slider.Step != 2 {
		t.Errorf("Unexpected slider range: max=%v value=%v step=%v", w.slider.Max, w.slider.Value, w.slider.Step)
	}
}

func TestContentFitsWindow(t *testing.T) {
	// 100% is the widest readout
	w, _ := newTestWindow(t, 255, 255, controller.DefaultOptions())

	if w.win.Padded() {
		t.Error("Expected an unpadded window, padding would push it past the fixed height")
	}
	contentMin := w.win.Content().MinSize()
	if contentMin.Width > float32(windowSize.Width) || contentMin.Height > float32(windowSize.Height) {
		t.Errorf("Content min size %v does not fit a %dx%d window", contentMin, windowSize.Width, windowSize.Height)
	}

	// The slider sits above the label, both inside the window
	if w.slider.Position().Y >= w.label.Position().Y {
		t.Errorf("Expected slider above label, got slider y=%v label y=%v", w.slider.Position().Y, w.label.Position().Y)
	}
	bottom := w.label.Position().Y + w.label.Size().Height
	if bottom > float32(windowSize.Height) {
		t.Errorf("Label ends at %v, past the window height", bottom)
	}
}

func TestSliderChangeSetsBrightness(t *testing.T) {
	w, demo := newTestWindow(t, 50, 200, controller.DefaultOptions())

	w.onSliderChanged(100)

	if w.State().Current != 100 {
		t.Errorf("Expected level 100, got %d", w.State().Current)
	}
	if w.label.Text != "50%" {
		t.Errorf("Expected label 50%%, got %q", w.label.Text)
	}
	if calls := demo.SetCalls(); len(calls) != 1 || calls[0] != 100 {
		t.Errorf("Expected one set-call with 100, got %v", calls)
	}
}

func TestArrowKeysAtBoundary(t *testing.T) {
	w, demo := newTestWindow(t, 254, 255, controller.DefaultOptions())

	w.onTypedKey(&fyne.KeyEvent{Name: fyne.KeyUp})
	w.onTypedKey(&fyne.KeyEvent{Name: fyne.KeyUp})

	if w.State().Current != 255 || w.slider.Value != 255 {
		t.Errorf("Expected 255, got state %d slider %v", w.State().Current, w.slider.Value)
	}
	if calls := demo.SetCalls(); len(calls) != 1 {
		t.Errorf("Expected a single set-call, got %v", calls)
	}

	w.onTypedKey(&fyne.KeyEvent{Name: fyne.KeyLeft})
	if len(demo.SetCalls()) != 1 {
		t.Error("Expected unrelated keys to be ignored")
	}
}

func TestProviderFailureStopsWindow(t *testing.T) {
	w, demo := newTestWindow(t, 10, 100, controller.DefaultOptions())
	demo.Fail = provider.ErrUnavailable

	w.onTypedKey(&fyne.KeyEvent{Name: fyne.KeyDown})
	if !errors.Is(w.Err(), provider.ErrUnavailable) {
		t.Errorf("Expected ErrUnavailable, got %v", w.Err())
	}

	// Later events are dropped once failed
	demo.Fail = nil
	w.onTypedKey(&fyne.KeyEvent{Name: fyne.KeyDown})
	if len(demo.SetCalls()) != 0 {
		t.Error("Expected no set-calls after failure")
	}
}
