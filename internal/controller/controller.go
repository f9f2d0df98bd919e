// Package controller holds the brightness state machine shared by every
// frontend: initial query, event handling and the toolkit-neutral view.
package controller

import (
	"context"

	"github.com/angristan/brighten/internal/models"
	"github.com/angristan/brighten/internal/provider"
	"github.com/angristan/brighten/internal/theme"
)

// Options are the configuration axes that used to be separate program variants
type Options struct {
	StepMode  models.StepMode
	Precision int
	Keyboard  bool
	Theme     theme.ID
	// NoControlHeuristic treats a max level of exactly 1 as "no backlight"
	NoControlHeuristic bool
}

// DefaultOptions returns the defaults used by the CLI
func DefaultOptions() Options {
	return Options{
		StepMode:           models.StepPercent,
		Precision:          0,
		Keyboard:           true,
		Theme:              theme.Default,
		NoControlHeuristic: true,
	}
}

// Controller drives a Provider from UI events
type Controller struct {
	provider provider.Provider
	opts     Options
}

// New creates a controller
func New(p provider.Provider, opts Options) *Controller {
	if !opts.StepMode.Valid() {
		opts.StepMode = models.StepPercent
	}
	if !opts.Theme.Valid() {
		opts.Theme = theme.Default
	}
	if opts.Precision < 0 {
		opts.Precision = 0
	}
	return &Controller{provider: p, opts: opts}
}

// Options returns the active options
func (c *Controller) Options() Options {
	return c.opts
}

// SetOptions swaps display options. The provider is unchanged.
func (c *Controller) SetOptions(opts Options) {
	c.opts = New(c.provider, opts).opts
}

// Initialize queries the provider for the starting state
func (c *Controller) Initialize(ctx context.Context) (models.State, error) {
	current, err := c.provider.Current(ctx)
	if err != nil {
		return models.State{}, err
	}
	max, err := c.provider.Max(ctx)
	if err != nil {
		return models.State{}, err
	}
	return models.NewState(current, max, c.opts.StepMode), nil
}

// Handle applies one event. The returned state is only valid when err is nil.
func (c *Controller) Handle(ctx context.Context, state models.State, ev Event) (models.State, error) {
	max, err := c.provider.Max(ctx)
	if err != nil {
		return state, err
	}
	state = state.WithMax(max)

	var target int
	switch ev := ev.(type) {
	case SliderMoved:
		target = ev.Level
	case IncrementPressed:
		if state.AtMax() {
			return state, nil
		}
		target = state.Current + 1
	case DecrementPressed:
		if state.AtMin() {
			return state, nil
		}
		target = state.Current - 1
	default:
		return state, nil
	}

	next := state.WithLevel(target)
	if err := c.provider.Set(ctx, next.Current); err != nil {
		return state, err
	}
	return next, nil
}

// Theme returns the configured preset
func (c *Controller) Theme() theme.ID {
	return c.opts.Theme
}

// KeyboardEnabled reports whether arrow keys adjust brightness
func (c *Controller) KeyboardEnabled() bool {
	return c.opts.Keyboard
}

// Info returns the one-line percentage readout for the info command.
// ok is false when there is nothing to report.
func (c *Controller) Info(ctx context.Context) (line string, ok bool, err error) {
	max, err := c.provider.Max(ctx)
	if err != nil {
		return "", false, err
	}
	if c.opts.NoControlHeuristic && max == 1 {
		return "", false, nil
	}
	current, err := c.provider.Current(ctx)
	if err != nil {
		return "", false, err
	}
	s := models.NewState(current, max, c.opts.StepMode)
	return models.FormatPercent(s.Percentage(), c.opts.Precision), true, nil
}
