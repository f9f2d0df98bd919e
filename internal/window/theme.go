package window

import (
	"image/color"

	"fyne.io/fyne/v2"
	fynetheme "fyne.io/fyne/v2/theme"

	"github.com/angristan/brighten/internal/theme"
)

// paletteTheme maps a preset palette onto fyne's default theme
type paletteTheme struct {
	base    fyne.Theme
	variant fyne.ThemeVariant

	background color.Color
	surface    color.Color
	text       color.Color
	muted      color.Color
	accent     color.Color
}

func newPaletteTheme(id theme.ID) fyne.Theme {
	p := theme.Lookup(id)
	variant := fynetheme.VariantLight
	if p.Dark {
		variant = fynetheme.VariantDark
	}
	return &paletteTheme{
		base:       fynetheme.DefaultTheme(),
		variant:    variant,
		background: theme.MustRGBA(p.Background),
		surface:    theme.MustRGBA(p.Surface),
		text:       theme.MustRGBA(p.Text),
		muted:      theme.MustRGBA(p.Muted),
		accent:     theme.MustRGBA(p.Accent),
	}
}

func (t *paletteTheme) Color(name fyne.ThemeColorName, _ fyne.ThemeVariant) color.Color {
	switch name {
	case fynetheme.ColorNameBackground:
		return t.background
	case fynetheme.ColorNameForeground:
		return t.text
	case fynetheme.ColorNamePrimary, fynetheme.ColorNameFocus, fynetheme.ColorNameSelection:
		return t.accent
	case fynetheme.ColorNameInputBackground, fynetheme.ColorNameButton, fynetheme.ColorNameHover:
		return t.surface
	case fynetheme.ColorNameDisabled, fynetheme.ColorNamePlaceHolder:
		return t.muted
	}
	return t.base.Color(name, t.variant)
}

func (t *paletteTheme) Font(style fyne.TextStyle) fyne.Resource {
	return t.base.Font(style)
}

func (t *paletteTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return t.base.Icon(name)
}

// innerPadding keeps the slider short enough for the fixed window height
const innerPadding = 2

func (t *paletteTheme) Size(name fyne.ThemeSizeName) float32 {
	if name == fynetheme.SizeNameInnerPadding {
		return innerPadding
	}
	return t.base.Size(name)
}
