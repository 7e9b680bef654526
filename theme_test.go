package richtext

import (
	"strings"
	"testing"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pkt.systems/richtext/internal/palette"
)

func TestThemeByNameBuiltins(t *testing.T) {
	expected := []string{
		"default",
		"dracula",
		"nord",
		"gruvbox",
		"tokyo-night",
		"solarized-dark",
		"solarized-light",
		"catppuccin-mocha",
		"github-light",
		"github-dark",
	}
	for _, name := range expected {
		theme, ok := ThemeByName(name)
		require.True(t, ok, name)
		assert.Equal(t, name, theme.Name())
	}
	assert.ElementsMatch(t, expected, AvailableThemes())

	_, ok := ThemeByName("neon")
	assert.False(t, ok)

	theme, ok := ThemeByName("  Nord ")
	require.True(t, ok)
	assert.Equal(t, "nord", theme.Name())
}

func TestThemeForProfile(t *testing.T) {
	ascii, ok := ThemeForProfile("dracula", termenv.Ascii)
	require.True(t, ok)
	assert.Equal(t, Styles{}, ascii.Styles())

	ansi, ok := ThemeForProfile("dracula", termenv.ANSI)
	require.True(t, ok)
	strong := ansi.Styles().Strong.Prefix
	assert.True(t, strings.HasPrefix(strong, palette.Bold), strong)
	assert.NotContains(t, strong, "38;2;")

	truecolor, _ := ThemeByName("dracula")
	assert.Contains(t, truecolor.Styles().Strong.Prefix, "38;2;")
}

func TestBoringThemeIsUnstyled(t *testing.T) {
	assert.Equal(t, Styles{}, BoringTheme().Styles())
	assert.Equal(t, "default", DefaultTheme().Name())
}

func TestPaletteSkipsEmptyColors(t *testing.T) {
	p := palette.Spec{Strong: "#ff0000"}.Palette(termenv.TrueColor)
	assert.Empty(t, p.Text)
	assert.NotEmpty(t, p.Strong)

	styles := stylesFromPalette(p, true)
	assert.Equal(t, palette.Reverse, styles.Highlight.Prefix)
}
