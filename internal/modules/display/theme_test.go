package display

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseTheme(t *testing.T) {
	tests := []struct {
		input    string
		expected Theme
	}{
		{"dark", ThemeDark},
		{"DARK", ThemeDark},
		{" dark ", ThemeDark},
		{"🌙 Dark", ThemeDark},
		{"light", ThemeLight},
		{"", ThemeLight},
		{"solarized", ThemeLight},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseTheme(tt.input))
		})
	}
}

func TestTheme_Toggle(t *testing.T) {
	assert.Equal(t, ThemeDark, ThemeLight.Toggle())
	assert.Equal(t, ThemeLight, ThemeDark.Toggle())
	assert.True(t, ThemeDark.Dark())
	assert.False(t, ThemeLight.Dark())
}

func TestPaletteFor(t *testing.T) {
	assert.Equal(t, "0E1117", PaletteFor(ThemeDark).Background)
	assert.Equal(t, "FAFAFA", PaletteFor(ThemeDark).Text)
	assert.Equal(t, "FFFFFF", PaletteFor(ThemeLight).Background)
	assert.NotEqual(t, PaletteFor(ThemeLight), PaletteFor(ThemeDark))
}
