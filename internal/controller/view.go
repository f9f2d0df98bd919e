package controller

import "github.com/angristan/brighten/internal/models"

// Slider describes the brightness slider
type Slider struct {
	Min   int
	Max   int
	Value int
	Step  int
}

// Fraction returns the slider position in [0, 1]
func (s Slider) Fraction() float64 {
	if s.Max <= s.Min {
		return 0
	}
	return float64(s.Value-s.Min) / float64(s.Max-s.Min)
}

// View is the toolkit-neutral layout: the slider stacked above the label
type View struct {
	Slider Slider
	Label  string
}

// Render builds the view for a state. It has no side effects.
func (c *Controller) Render(state models.State) View {
	return View{
		Slider: Slider{
			Min:   0,
			Max:   state.Max,
			Value: state.Current,
			Step:  state.Step,
		},
		Label: models.FormatPercent(state.Percentage(), c.opts.Precision),
	}
}
