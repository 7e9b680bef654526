// Package palette holds the color definitions behind the built-in themes.
package palette

import "github.com/muesli/termenv"

// SGR attribute prefixes.
const (
	Bold      = termenv.CSI + termenv.BoldSeq + "m"
	Italic    = termenv.CSI + termenv.ItalicSeq + "m"
	Underline = termenv.CSI + termenv.UnderlineSeq + "m"
	Reverse   = termenv.CSI + termenv.ReverseSeq + "m"
)

// Spec lists theme colors as hex strings. Empty entries keep the terminal default.
type Spec struct {
	Text       string
	H1         string
	H2         string
	H3         string
	H4         string
	H5         string
	H6         string
	Emphasis   string
	Strong     string
	CodeInline string
	CodeBg     string
	Underline  string
	Highlight  string
	Badge      string
	BadgeBg    string
	ListMarker string
	Label      string
	LinkText   string
	LinkURL    string
}

// Palette is a Spec rendered to ANSI prefixes for one color profile.
type Palette struct {
	Text       string
	H1         string
	H2         string
	H3         string
	H4         string
	H5         string
	H6         string
	Emphasis   string
	Strong     string
	CodeInline string
	Underline  string
	Highlight  string
	Badge      string
	ListMarker string
	Label      string
	LinkText   string
	LinkURL    string
}

// Palette converts s to escape sequences, downsampling colors to profile.
// termenv.Ascii yields an empty palette.
func (s Spec) Palette(profile termenv.Profile) Palette {
	return Palette{
		Text:       fg(profile, s.Text),
		H1:         fg(profile, s.H1),
		H2:         fg(profile, s.H2),
		H3:         fg(profile, s.H3),
		H4:         fg(profile, s.H4),
		H5:         fg(profile, s.H5),
		H6:         fg(profile, s.H6),
		Emphasis:   fg(profile, s.Emphasis),
		Strong:     fg(profile, s.Strong),
		CodeInline: fg(profile, s.CodeInline) + bg(profile, s.CodeBg),
		Underline:  fg(profile, s.Underline),
		Highlight:  bg(profile, s.Highlight),
		Badge:      fg(profile, s.Badge) + bg(profile, s.BadgeBg),
		ListMarker: fg(profile, s.ListMarker),
		Label:      fg(profile, s.Label),
		LinkText:   fg(profile, s.LinkText),
		LinkURL:    fg(profile, s.LinkURL),
	}
}

func fg(profile termenv.Profile, hex string) string {
	return sequence(profile, hex, false)
}

func bg(profile termenv.Profile, hex string) string {
	return sequence(profile, hex, true)
}

func sequence(profile termenv.Profile, hex string, background bool) string {
	if hex == "" {
		return ""
	}
	c := profile.Color(hex)
	if c == nil {
		return ""
	}
	seq := c.Sequence(background)
	if seq == "" {
		return ""
	}
	return termenv.CSI + seq + "m"
}
