package styles

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/angristan/brighten/internal/theme"
)

// Styles holds the lipgloss styles for one theme
type Styles struct {
	Palette theme.Palette

	// Fixed-size window frame
	Frame lipgloss.Style
	// Percentage readout under the slider
	Label lipgloss.Style
	// Error line shown before quitting
	Error lipgloss.Style

	SliderFill  lipgloss.Color
	SliderTrack lipgloss.Color
}

// New builds the styles for a preset theme
func New(id theme.ID) Styles {
	p := theme.Lookup(id)

	return Styles{
		Palette: p,

		Frame: lipgloss.NewStyle().
			Background(lipgloss.Color(p.Background)).
			Foreground(lipgloss.Color(p.Text)),

		Label: lipgloss.NewStyle().
			Background(lipgloss.Color(p.Background)).
			Foreground(lipgloss.Color(p.Text)).
			Bold(true),

		Error: lipgloss.NewStyle().
			Background(lipgloss.Color(p.Background)).
			Foreground(lipgloss.Color("#ED8796")).
			Bold(true),

		SliderFill:  lipgloss.Color(p.Accent),
		SliderTrack: lipgloss.Color(p.Surface),
	}
}
