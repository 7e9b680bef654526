package richtext

import (
	"sort"
	"strings"

	"github.com/muesli/termenv"

	"pkt.systems/richtext/internal/palette"
)

// Style describes a terminal style as an ANSI prefix sequence.
type Style struct {
	Prefix string
}

// Styles groups the semantic styles used by the ANSI renderer.
type Styles struct {
	Text       Style
	Heading    [6]Style
	Emphasis   Style
	Strong     Style
	CodeInline Style
	Underline  Style
	Highlight  Style
	Badge      Style
	ListMarker Style
	Label      Style
	LinkText   Style
	LinkURL    Style
}

// Theme provides named styles for rendering.
type Theme interface {
	Name() string
	Styles() Styles
}

type theme struct {
	name   string
	styles Styles
}

func (t theme) Name() string   { return t.name }
func (t theme) Styles() Styles { return t.styles }

// NewTheme returns a Theme from a Styles definition.
func NewTheme(name string, styles Styles) Theme {
	return theme{name: name, styles: styles}
}

// BoringTheme returns a theme without any styling.
func BoringTheme() Theme {
	return theme{name: "boring"}
}

func style(prefixes ...string) Style {
	var b strings.Builder
	for _, p := range prefixes {
		if p != "" {
			b.WriteString(p)
		}
	}
	return Style{Prefix: b.String()}
}

func stylesFromPalette(p palette.Palette, attrs bool) Styles {
	bold, italic, underline, reverse := "", "", "", ""
	if attrs {
		bold, italic, underline, reverse = palette.Bold, palette.Italic, palette.Underline, palette.Reverse
	}
	return Styles{
		Text:       style(p.Text),
		Heading:    [6]Style{style(bold, p.H1), style(bold, p.H2), style(bold, p.H3), style(p.H4), style(p.H5), style(p.H6)},
		Emphasis:   style(italic, p.Emphasis),
		Strong:     style(bold, p.Strong),
		CodeInline: style(p.CodeInline),
		Underline:  style(underline, p.Underline),
		Highlight:  style(p.Highlight, highlightFallback(p, reverse)),
		Badge:      style(bold, p.Badge),
		ListMarker: style(p.ListMarker),
		Label:      style(bold, p.Label),
		LinkText:   style(underline, p.LinkText),
		LinkURL:    style(p.LinkURL),
	}
}

// Without a background color a highlight falls back to reverse video.
func highlightFallback(p palette.Palette, reverse string) string {
	if p.Highlight != "" {
		return ""
	}
	return reverse
}

var builtinSpecs = map[string]palette.Spec{
	"default":          palette.SpecDefault,
	"dracula":          palette.SpecDracula,
	"nord":             palette.SpecNord,
	"gruvbox":          palette.SpecGruvbox,
	"tokyo-night":      palette.SpecTokyoNight,
	"solarized-dark":   palette.SpecSolarizedDark,
	"solarized-light":  palette.SpecSolarizedLight,
	"catppuccin-mocha": palette.SpecCatppuccinMocha,
	"github-light":     palette.SpecGithubLight,
	"github-dark":      palette.SpecGithubDark,
}

// AvailableThemes returns the names of built-in themes.
func AvailableThemes() []string {
	names := make([]string, 0, len(builtinSpecs))
	for name := range builtinSpecs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ThemeByName returns a built-in theme by name in true color.
func ThemeByName(name string) (Theme, bool) {
	return ThemeForProfile(name, termenv.TrueColor)
}

// ThemeForProfile returns a built-in theme with colors downsampled to profile.
// termenv.Ascii drops colors and text attributes alike.
func ThemeForProfile(name string, profile termenv.Profile) (Theme, bool) {
	normalized := strings.ToLower(strings.TrimSpace(name))
	if normalized == "" {
		normalized = "default"
	}
	spec, ok := builtinSpecs[normalized]
	if !ok {
		return nil, false
	}
	attrs := profile != termenv.Ascii
	return theme{name: normalized, styles: stylesFromPalette(spec.Palette(profile), attrs)}, true
}

// DefaultTheme returns the default built-in theme.
func DefaultTheme() Theme {
	t, _ := ThemeByName("default")
	return t
}
