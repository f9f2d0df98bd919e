package tui

import (
	"context"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/angristan/brighten/internal/controller"
	"github.com/angristan/brighten/internal/models"
	"github.com/angristan/brighten/internal/tui/components"
	"github.com/angristan/brighten/internal/tui/messages"
	"github.com/angristan/brighten/internal/tui/styles"
)

const (
	// WindowTitle is shown in the terminal title bar
	WindowTitle = "Brightness Control"

	// Logical units per terminal cell
	cellWidth  = 8
	cellHeight = 16

	// Horizontal padding inside the frame, in cells
	padX = 1
)

// Cells converts a logical size into terminal columns and rows.
// The frame always has room for the slider and the label.
func Cells(s models.Size) (cols, rows int) {
	cols = s.Width / cellWidth
	rows = s.Height / cellHeight
	if cols < 2*padX+1 {
		cols = 2*padX + 1
	}
	if rows < 2 {
		rows = 2
	}
	return cols, rows
}

// Model is the terminal frontend. It owns the brightness state and feeds
// every input through the controller.
type Model struct {
	ctx   context.Context
	ctrl  *controller.Controller
	state models.State

	keys   keyMap
	styles styles.Styles
	slider components.SliderBar

	// Fixed frame size in cells
	cols int
	rows int

	err    error
	logger *slog.Logger
}

// NewModel creates the model from an initialized state
func NewModel(ctx context.Context, ctrl *controller.Controller, state models.State, size models.Size, logger *slog.Logger) Model {
	if logger == nil {
		logger = slog.Default()
	}
	cols, rows := Cells(size)
	st := styles.New(ctrl.Theme())

	return Model{
		ctx:    ctx,
		ctrl:   ctrl,
		state:  state,
		keys:   defaultKeyMap(),
		styles: st,
		slider: components.NewSliderBar(cols-2*padX, st),
		cols:   cols,
		rows:   rows,
		logger: logger,
	}
}

// Init initializes the application
func (m Model) Init() tea.Cmd {
	return tea.SetWindowTitle(WindowTitle)
}

// State returns the current brightness state
func (m Model) State() models.State {
	return m.state
}

// Err returns the error that stopped the program, if any
func (m Model) Err() error {
	return m.err
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Increment):
			if m.ctrl.KeyboardEnabled() {
				return m.apply(controller.IncrementPressed{})
			}
		case key.Matches(msg, m.keys.Decrement):
			if m.ctrl.KeyboardEnabled() {
				return m.apply(controller.DecrementPressed{})
			}
		case key.Matches(msg, m.keys.Left):
			return m.apply(controller.SliderMoved{Level: m.state.Current - m.state.Step})
		case key.Matches(msg, m.keys.Right):
			return m.apply(controller.SliderMoved{Level: m.state.Current + m.state.Step})
		}

	case tea.MouseMsg:
		if msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		if msg.Action != tea.MouseActionPress && msg.Action != tea.MouseActionMotion {
			return m, nil
		}
		if msg.Y != m.sliderRow() {
			return m, nil
		}
		view := m.ctrl.Render(m.state)
		level := m.slider.LevelAt(view.Slider, msg.X-padX)
		return m.apply(controller.SliderMoved{Level: level})

	case messages.OptionsChangedMsg:
		m.ctrl.SetOptions(msg.Options)
		opts := m.ctrl.Options()
		m.state = models.NewState(m.state.Current, m.state.Max, opts.StepMode)
		m.styles = styles.New(opts.Theme)
		m.slider = components.NewSliderBar(m.cols-2*padX, m.styles)
		m.logger.Info("options reloaded", "theme", opts.Theme, "step", opts.StepMode, "precision", opts.Precision)

	case messages.ErrorMsg:
		m.logger.Error("brightness update failed", "error", msg.Err)
		m.err = msg.Err
		return m, tea.Quit
	}

	return m, nil
}

// apply runs an event through the controller. A provider failure comes
// back as an ErrorMsg, which stops the program; the caller reports it.
func (m Model) apply(ev controller.Event) (tea.Model, tea.Cmd) {
	next, err := m.ctrl.Handle(m.ctx, m.state, ev)
	if err != nil {
		m.logger.Debug("event rejected", "event", ev)
		return m, func() tea.Msg {
			return messages.ErrorMsg{Err: err}
		}
	}
	m.state = next
	return m, nil
}

// sliderRow is the frame row holding the slider; the label sits below it
func (m Model) sliderRow() int {
	return (m.rows - 2) / 2
}

// View renders the fixed-size frame
func (m Model) View() string {
	view := m.ctrl.Render(m.state)
	width := m.cols - 2*padX

	lines := make([]string, m.rows)
	top := m.sliderRow()
	lines[top] = m.slider.View(view.Slider)
	if m.err != nil {
		lines[top+1] = m.styles.Error.Width(width).Align(lipgloss.Center).Render(truncate(m.err.Error(), width))
	} else {
		lines[top+1] = m.styles.Label.Width(width).Align(lipgloss.Center).Render(view.Label)
	}

	return m.styles.Frame.
		Width(m.cols).
		Height(m.rows).
		Padding(0, padX).
		Render(strings.Join(lines, "\n"))
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	if n <= 1 {
		return string(r[:n])
	}
	return string(r[:n-1]) + "…"
}
