// Package theme defines the preset color themes shared by both frontends.
package theme

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// ID names a preset theme
type ID string

const (
	CatppuccinMacchiato ID = "catppuccin-macchiato"
	CatppuccinLatte     ID = "catppuccin-latte"
	Lavender            ID = "lavender"
)

// Default is used when no theme is configured
const Default = CatppuccinMacchiato

// IDs lists every preset, in display order
var IDs = []ID{CatppuccinMacchiato, CatppuccinLatte, Lavender}

// Valid returns true for a known preset
func (id ID) Valid() bool {
	_, ok := presets[id]
	return ok
}

// Palette holds the colors of a theme as "#RRGGBB" strings
type Palette struct {
	Background string
	// Slider track
	Surface string
	Text    string
	Muted   string
	// Slider fill
	Accent string
	// Dark reports whether text is light on a dark background
	Dark bool
}

var presets = map[ID]Palette{
	CatppuccinMacchiato: {
		Background: "#24273A",
		Surface:    "#363A4F",
		Text:       "#CAD3F5",
		Muted:      "#A5ADCB",
		Accent:     "#C6A0F6", // Mauve
		Dark:       true,
	},
	CatppuccinLatte: {
		Background: "#EFF1F5",
		Surface:    "#CCD0DA",
		Text:       "#4C4F69",
		Muted:      "#6C6F85",
		Accent:     "#8839EF",
		Dark:       false,
	},
	Lavender: {
		Background: "#1A1A2E",
		Surface:    "#3D3D5C",
		Text:       "#FAFAFA",
		Muted:      "#A0A0B0",
		Accent:     "#B794F4",
		Dark:       true,
	},
}

// Lookup returns the palette for id, falling back to the default theme
func Lookup(id ID) Palette {
	if p, ok := presets[id]; ok {
		return p
	}
	return presets[Default]
}

// RGBA parses a "#RRGGBB" color
func RGBA(hex string) (color.NRGBA, error) {
	s := strings.TrimPrefix(hex, "#")
	if len(s) != 6 {
		return color.NRGBA{}, fmt.Errorf("invalid color %q", hex)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("invalid color %q: %w", hex, err)
	}
	return color.NRGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
}

// MustRGBA is RGBA for the preset palettes, which are known to be valid
func MustRGBA(hex string) color.NRGBA {
	c, err := RGBA(hex)
	if err != nil {
		panic(err)
	}
	return c
}
