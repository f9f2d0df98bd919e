package components

import (
	"math"

	"github.com/charmbracelet/bubbles/progress"

	"github.com/angristan/brighten/internal/controller"
	"github.com/angristan/brighten/internal/tui/styles"
)

// SliderBar renders a controller.Slider as a horizontal bar and maps
// cell positions back to levels
type SliderBar struct {
	bar   progress.Model
	width int
}

// NewSliderBar creates a bar that is width cells wide
func NewSliderBar(width int, st styles.Styles) SliderBar {
	if width < 1 {
		width = 1
	}
	bar := progress.New(
		progress.WithSolidFill(string(st.SliderFill)),
		progress.WithoutPercentage(),
		progress.WithWidth(width),
		progress.WithFillCharacters('█', '─'),
	)
	bar.EmptyColor = string(st.SliderTrack)
	return SliderBar{bar: bar, width: width}
}

// Width returns the bar width in cells
func (s SliderBar) Width() int {
	return s.width
}

// View renders the slider position
func (s SliderBar) View(slider controller.Slider) string {
	return s.bar.ViewAs(slider.Fraction())
}

// LevelAt returns the level under cell x (0 is the left edge of the bar),
// snapped to the slider step and clamped to the slider range
func (s SliderBar) LevelAt(slider controller.Slider, x int) int {
	if s.width <= 1 {
		return slider.Max
	}
	frac := float64(x) / float64(s.width-1)
	frac = math.Max(0, math.Min(1, frac))

	level := slider.Min + int(math.Round(frac*float64(slider.Max-slider.Min)))
	if slider.Step > 1 && level != slider.Max {
		level = int(math.Round(float64(level)/float64(slider.Step))) * slider.Step
	}
	if level > slider.Max {
		level = slider.Max
	}
	if level < slider.Min {
		level = slider.Min
	}
	return level
}
