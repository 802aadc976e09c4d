// Package display provides the theme flag and colour palettes used by the page and chart renderers.
package display

import "strings"

// Theme selects the light or dark palette.
// It is derived from each request and passed explicitly to renderers.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// ParseTheme maps a query value to a Theme. Anything unrecognised is light.
func ParseTheme(value string) Theme {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "dark", "🌙 dark":
		return ThemeDark
	default:
		return ThemeLight
	}
}

// Dark reports whether the dark palette is selected
func (t Theme) Dark() bool {
	return t == ThemeDark
}

// Toggle returns the opposite theme (used for the theme switch link)
func (t Theme) Toggle() Theme {
	if t.Dark() {
		return ThemeLight
	}
	return ThemeDark
}

func (t Theme) String() string {
	return string(t)
}

// Palette holds hex colours (without '#') for one theme
type Palette struct {
	Background string `json:"background"`
	Surface    string `json:"surface"`
	Text       string `json:"text"`
	Muted      string `json:"muted"`
	Accent     string `json:"accent"`
	Positive   string `json:"positive"`
	Grid       string `json:"grid"`
}

var (
	lightPalette = Palette{
		Background: "FFFFFF",
		Surface:    "F5F7FA",
		Text:       "262730",
		Muted:      "808495",
		Accent:     "1F77B4",
		Positive:   "2E9E44",
		Grid:       "E6E9EF",
	}
	darkPalette = Palette{
		Background: "0E1117",
		Surface:    "1A1D24",
		Text:       "FAFAFA",
		Muted:      "A3A8B8",
		Accent:     "4EA8DE",
		Positive:   "3DD56D",
		Grid:       "2B2F38",
	}
)

// PaletteFor returns the palette for a theme
func PaletteFor(t Theme) Palette {
	if t.Dark() {
		return darkPalette
	}
	return lightPalette
}
