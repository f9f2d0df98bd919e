// Package window is the desktop frontend: a small fixed-size fyne window
// with the brightness slider above the percentage label.
package window

import (
	"context"
	"log/slog"
	"math"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/angristan/brighten/internal/controller"
	"github.com/angristan/brighten/internal/models"
	"github.com/angristan/brighten/internal/theme"
)

// Title is the window title
const Title = "Brightness Control"

// Window binds the controller to fyne widgets. All callbacks run on the
// fyne event loop, so state needs no locking.
type Window struct {
	ctx    context.Context
	app    fyne.App
	win    fyne.Window
	ctrl   *controller.Controller
	state  models.State
	logger *slog.Logger

	slider *widget.Slider
	label  *canvas.Text

	err error
}

// New builds the window without showing it
func New(ctx context.Context, a fyne.App, ctrl *controller.Controller, state models.State, size models.Size, logger *slog.Logger) *Window {
	if logger == nil {
		logger = slog.Default()
	}
	w := &Window{
		ctx:    ctx,
		app:    a,
		ctrl:   ctrl,
		state:  state,
		logger: logger,
	}

	a.Settings().SetTheme(newPaletteTheme(ctrl.Theme()))

	view := ctrl.Render(state)
	w.slider = widget.NewSlider(float64(view.Slider.Min), float64(view.Slider.Max))
	w.slider.Step = float64(view.Slider.Step)
	w.slider.Value = float64(view.Slider.Value)
	w.slider.OnChanged = w.onSliderChanged

	// canvas.Text carries no padding, unlike widget.Label
	w.label = canvas.NewText(view.Label, theme.MustRGBA(theme.Lookup(ctrl.Theme()).Text))
	w.label.Alignment = fyne.TextAlignCenter

	content := container.New(compactLayout{insetX: 10, insetY: 2}, w.slider, w.label)

	w.win = a.NewWindow(Title)
	w.win.SetPadded(false)
	w.win.SetContent(content)
	w.win.Resize(fyne.NewSize(float32(size.Width), float32(size.Height)))
	w.win.SetFixedSize(true)
	if ctrl.KeyboardEnabled() {
		w.win.Canvas().SetOnTypedKey(w.onTypedKey)
	}
	return w
}

// Run shows the window and blocks until it is closed. It returns the
// provider error that closed it, if any.
func (w *Window) Run() error {
	w.win.ShowAndRun()
	return w.err
}

// State returns the current brightness state
func (w *Window) State() models.State {
	return w.state
}

// Err returns the error that closed the window, if any
func (w *Window) Err() error {
	return w.err
}

func (w *Window) onSliderChanged(value float64) {
	w.apply(controller.SliderMoved{Level: int(math.Round(value))})
}

func (w *Window) onTypedKey(ev *fyne.KeyEvent) {
	switch ev.Name {
	case fyne.KeyUp:
		w.apply(controller.IncrementPressed{})
	case fyne.KeyDown:
		w.apply(controller.DecrementPressed{})
	}
}

func (w *Window) apply(ev controller.Event) {
	if w.err != nil {
		return
	}
	next, err := w.ctrl.Handle(w.ctx, w.state, ev)
	if err != nil {
		w.logger.Error("brightness update failed", "event", ev, "error", err)
		w.err = err
		w.app.Quit()
		return
	}
	w.state = next
	w.refresh()
}

// refresh pushes the state into the widgets. The slider fields are set
// directly: SetValue would snap odd levels to the step and fire OnChanged.
func (w *Window) refresh() {
	view := w.ctrl.Render(w.state)
	w.label.Text = view.Label
	w.label.Refresh()

	w.slider.Min = float64(view.Slider.Min)
	w.slider.Max = float64(view.Slider.Max)
	w.slider.Step = float64(view.Slider.Step)
	w.slider.Value = float64(view.Slider.Value)
	w.slider.Refresh()
}
