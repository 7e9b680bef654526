package richtext

import (
	"io"
	"strings"
	"unicode/utf8"

	"github.com/muesli/reflow/ansi"
)

const ansiReset = "\x1b[0m"

// RenderANSI writes nodes as styled terminal text, wrapped to width. A width of
// zero or less disables wrapping.
func RenderANSI(w io.Writer, nodes []Node, width int, theme Theme, opts ...RenderOption) error {
	s := NewStreamRenderer(w, width, theme, opts...)
	for _, n := range nodes {
		if err := s.WriteBlock(n); err != nil {
			return err
		}
	}
	return s.Flush()
}

type ansiWriter struct {
	b         strings.Builder
	width     int
	softWrap  bool
	col       int
	indent    string
	lineEmpty bool
}

type word struct {
	lead      []Token
	leadWidth int
	parts     []Token
	width     int
}

func (w *ansiWriter) writeBlock(toks []Token, hanging bool) {
	w.col = 0
	w.indent = ""
	w.lineEmpty = true
	if hanging && len(toks) > 0 && toks[0].Kind == tokenMarker {
		w.indent = strings.Repeat(" ", ansi.PrintableRuneWidth(toks[0].Text))
	}
	if w.width > 0 {
		limit := w.width - len(w.indent) - len(" ()")
		if limit < 1 {
			limit = 1
		}
		for i := range toks {
			if toks[i].Kind == tokenURL {
				toks[i].Text = " (" + fitURL(toks[i].LinkURL, limit) + ")"
			}
		}
	}
	for _, wd := range splitWords(toks) {
		w.writeWord(wd)
	}
	w.b.WriteByte('\n')
}

func (w *ansiWriter) writeWord(wd word) {
	if w.width > 0 && !w.lineEmpty && w.col+wd.leadWidth+wd.width > w.width {
		w.newline()
	} else {
		for _, tok := range wd.lead {
			w.writeToken(tok, tok.Text)
		}
	}
	if w.softWrap && w.width > 0 && w.col+wd.width > w.width {
		w.writeSplit(wd.parts)
		return
	}
	for _, tok := range wd.parts {
		w.writeToken(tok, tok.Text)
	}
}

// writeSplit breaks an overlong word at rune boundaries.
func (w *ansiWriter) writeSplit(parts []Token) {
	for _, tok := range parts {
		if tok.Text == "" {
			w.writeToken(tok, "")
			continue
		}
		start := 0
		col := w.col
		for i, r := range tok.Text {
			rw := ansi.PrintableRuneWidth(string(r))
			if col+rw > w.width && col > len(w.indent) {
				w.writeToken(tok, tok.Text[start:i])
				w.newline()
				start = i
				col = w.col
			}
			col += rw
		}
		w.writeToken(tok, tok.Text[start:])
	}
}

func (w *ansiWriter) writeToken(tok Token, text string) {
	switch tok.Kind {
	case tokenLinkStart:
		w.b.WriteString(osc8Start)
		w.b.WriteString(tok.LinkURL)
		w.b.WriteString("\x1b\\")
		return
	case tokenLinkEnd:
		w.b.WriteString(osc8End)
		return
	}
	if text == "" {
		return
	}
	if tok.Style.Prefix != "" {
		w.b.WriteString(tok.Style.Prefix)
		w.b.WriteString(text)
		w.b.WriteString(ansiReset)
	} else {
		w.b.WriteString(text)
	}
	w.col += ansi.PrintableRuneWidth(text)
	w.lineEmpty = false
}

func (w *ansiWriter) newline() {
	w.b.WriteByte('\n')
	w.b.WriteString(w.indent)
	w.col = len(w.indent)
	w.lineEmpty = true
}

// splitWords groups tokens into words separated by runs of spaces. A word may
// span tokens, so "**bold**," stays together.
func splitWords(toks []Token) []word {
	var (
		words  []word
		cur    word
		inWord bool
	)
	flush := func() {
		if len(cur.parts) > 0 || len(cur.lead) > 0 {
			words = append(words, cur)
		}
		cur = word{}
		inWord = false
	}
	for _, tok := range toks {
		switch tok.Kind {
		case tokenLinkStart:
			cur.parts = append(cur.parts, tok)
			continue
		case tokenLinkEnd:
			if !inWord && len(cur.parts) == 0 && len(words) > 0 {
				last := &words[len(words)-1]
				last.parts = append(last.parts, tok)
			} else {
				cur.parts = append(cur.parts, tok)
			}
			continue
		}
		text := tok.Text
		for text != "" {
			if n := spaceRun(text); n > 0 {
				if inWord {
					flush()
				}
				sp := tok
				sp.Text = text[:n]
				cur.lead = append(cur.lead, sp)
				cur.leadWidth += n
				text = text[n:]
				continue
			}
			n := wordRun(text)
			part := tok
			part.Text = text[:n]
			cur.parts = append(cur.parts, part)
			cur.width += ansi.PrintableRuneWidth(part.Text)
			inWord = true
			text = text[n:]
		}
	}
	flush()
	return words
}

func spaceRun(s string) int {
	n := 0
	for n < len(s) && (s[n] == ' ' || s[n] == '\t') {
		n++
	}
	return n
}

func wordRun(s string) int {
	n := 0
	for n < len(s) && s[n] != ' ' && s[n] != '\t' {
		_, size := utf8.DecodeRuneInString(s[n:])
		n += size
	}
	return n
}

// fitURL shortens url to at most limit columns, first by dropping the scheme
// and then by truncating with an ellipsis.
func fitURL(url string, limit int) string {
	if ansi.PrintableRuneWidth(url) <= limit {
		return url
	}
	if _, rest, ok := strings.Cut(url, "://"); ok && ansi.PrintableRuneWidth(rest) <= limit {
		return rest
	}
	if limit <= 0 {
		return ""
	}
	runes := []rune(url)
	if len(runes) <= limit {
		return url
	}
	return string(runes[:limit-1]) + "…"
}
