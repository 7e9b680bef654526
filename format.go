package richtext

import (
	"strconv"
	"strings"
)

// Format converts text into block-level nodes, one or more per non-blank line.
// It is total over its input: malformed markup falls through to plain text.
func Format(text string, p Partial) []Node {
	return formatWith(text, Resolve(p))
}

// FormatOptions is Format with already-resolved options.
func FormatOptions(text string, opts Options) []Node {
	return formatWith(text, opts)
}

func formatWith(text string, opts Options) []Node {
	if text == "" {
		return nil
	}
	f := newLineFormatter(opts)
	var out []Node
	for _, raw := range strings.Split(text, "\n") {
		if n, ok := f.feed(raw); ok {
			out = append(out, n)
		}
	}
	return out
}

// lineFormatter classifies lines one at a time. Blank lines produce nothing and
// do not advance the block index.
type lineFormatter struct {
	opts    Options
	scanner *inlineScanner
	index   int
}

func newLineFormatter(opts Options) *lineFormatter {
	return &lineFormatter{opts: opts, scanner: scannerFor(opts)}
}

func (f *lineFormatter) feed(raw string) (Node, bool) {
	line := strings.TrimSpace(raw)
	if line == "" {
		return Node{}, false
	}
	n := classifyLine(line, f.index, f.opts, f.scanner)
	f.index++
	return n, true
}

const sectionLabelKey = "label"

func classifyLine(line string, index int, opts Options, scanner *inlineScanner) Node {
	if opts.NumberedLists {
		if marker, rest, ok := parseNumberedMarker(line); ok {
			return Node{
				Kind:     KindListItem,
				Key:      blockKey("numbered", index),
				Marker:   marker,
				Children: scanner.parse(rest),
			}
		}
	}
	if opts.Bullets && strings.HasPrefix(line, "* ") {
		return Node{
			Kind:     KindListItem,
			Key:      blockKey("bullet", index),
			Marker:   "*",
			Children: scanner.parse(line[2:]),
		}
	}
	if opts.Headings && strings.HasPrefix(line, "#") {
		if level, content, ok := parseHeading(line); ok {
			return Node{
				Kind:     KindHeading,
				Key:      blockKey("heading", index),
				Level:    level,
				Children: scanner.parse(content),
			}
		}
	}
	if label, rest, ok := parseLabeledSection(line); ok {
		children := make([]Node, 0, 4)
		children = append(children,
			Wrap(KindBold, label, sectionLabelKey),
			TextNode(": ", "label-separator"),
		)
		children = append(children, scanner.parse(rest)...)
		return Node{
			Kind:     KindParagraph,
			Key:      blockKey("section", index),
			Children: children,
		}
	}
	return Node{
		Kind:     KindParagraph,
		Key:      blockKey("paragraph", index),
		Children: scanner.parse(line),
	}
}

// parseNumberedMarker matches ^\d+\.\s and returns the marker without the
// whitespace and the remainder after it.
func parseNumberedMarker(text string) (string, string, bool) {
	i := 0
	for i < len(text) && text[i] >= '0' && text[i] <= '9' {
		i++
	}
	if i == 0 || i+1 >= len(text) || text[i] != '.' {
		return "", "", false
	}
	if !isSpace(text[i+1]) {
		return "", "", false
	}
	return text[:i+1], text[i+2:], true
}

// parseHeading matches ^(#{1,6})\s(.+).
func parseHeading(text string) (int, string, bool) {
	level := 0
	for level < len(text) && text[level] == '#' {
		level++
	}
	if level == 0 || level > 6 {
		return 0, "", false
	}
	if level+1 >= len(text) || !isSpace(text[level]) {
		return 0, "", false
	}
	return level, text[level+1:], true
}

func parseLabeledSection(text string) (string, string, bool) {
	idx := strings.IndexByte(text, ':')
	if idx < 0 {
		return "", "", false
	}
	label := strings.TrimSpace(text[:idx])
	rest := strings.TrimSpace(text[idx+1:])
	if label == "" || rest == "" {
		return "", "", false
	}
	return label, rest, true
}

func isSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\v', '\f', '\r':
		return true
	}
	return false
}

func blockKey(prefix string, index int) string {
	return prefix + "-" + strconv.Itoa(index)
}
