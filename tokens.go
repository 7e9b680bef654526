package richtext

// Token is a text segment with a style applied.
type Token struct {
	Text    string
	Style   Style
	Kind    tokenKind
	LinkURL string
}

type tokenKind uint8

// TokenKind is the exported alias of tokenKind for tooling and reference renderers.
type TokenKind = tokenKind

const (
	tokenText tokenKind = iota
	tokenLinkStart
	tokenLinkEnd
	tokenURL
	tokenCode
	tokenMarker
)

const (
	// TokenText represents plain text segments.
	TokenText tokenKind = tokenText
	// TokenLinkStart marks the beginning of a link span.
	TokenLinkStart tokenKind = tokenLinkStart
	// TokenLinkEnd marks the end of a link span.
	TokenLinkEnd tokenKind = tokenLinkEnd
	// TokenURL represents a URL shown after link text.
	TokenURL tokenKind = tokenURL
	// TokenCode represents inline code.
	TokenCode tokenKind = tokenCode
	// TokenMarker represents a heading or list marker.
	TokenMarker tokenKind = tokenMarker
)

// Tokenize flattens one block node into styled tokens, marker first. Tokens are
// width independent; wrapping happens when they are written.
func Tokenize(block Node, styles Styles, osc8 bool) []Token {
	var toks []Token
	base := styles.Text
	switch block.Kind {
	case KindHeading:
		level := block.Level
		if level < 1 {
			level = 1
		}
		if level > 6 {
			level = 6
		}
		base = styles.Heading[level-1]
		toks = append(toks, Token{Text: headingMarker(level) + " ", Style: base, Kind: tokenMarker})
	case KindListItem:
		marker := block.Marker
		if marker == "" {
			marker = "*"
		}
		if !block.Ordered() {
			marker = "•"
		}
		toks = append(toks, Token{Text: marker + " ", Style: styles.ListMarker, Kind: tokenMarker})
	}
	if !block.Kind.IsBlock() {
		return appendInline(toks, block, base, styles, osc8)
	}
	for _, child := range block.Children {
		toks = appendInline(toks, child, base, styles, osc8)
	}
	return toks
}

func appendInline(toks []Token, n Node, base Style, styles Styles, osc8 bool) []Token {
	st := base
	kind := tokenText
	switch n.Kind {
	case KindBold:
		st = combineStyles(base, styles.Strong)
		if n.Key == sectionLabelKey {
			st = combineStyles(base, styles.Label)
		}
	case KindItalic:
		st = combineStyles(base, styles.Emphasis)
	case KindCode:
		st = combineStyles(base, styles.CodeInline)
		kind = tokenCode
	case KindUnderline:
		st = combineStyles(base, styles.Underline)
	case KindHighlight:
		st = combineStyles(base, styles.Highlight)
	case KindBadge:
		st = combineStyles(base, styles.Badge)
		if n.Text != "" {
			return append(toks, Token{Text: " " + n.Text + " ", Style: st})
		}
	case KindLink:
		return appendLink(toks, n, base, styles, osc8)
	}
	if n.Text != "" {
		toks = append(toks, Token{Text: n.Text, Style: st, Kind: kind})
	}
	for _, child := range n.Children {
		toks = appendInline(toks, child, st, styles, osc8)
	}
	return toks
}

func appendLink(toks []Token, n Node, base Style, styles Styles, osc8 bool) []Token {
	text := n.Text
	if text == "" {
		text = n.URL
	}
	st := combineStyles(base, styles.LinkText)
	if osc8 && n.URL != "" {
		toks = append(toks, Token{Kind: tokenLinkStart, LinkURL: n.URL})
		toks = append(toks, Token{Text: text, Style: st, LinkURL: n.URL})
		return append(toks, Token{Kind: tokenLinkEnd, LinkURL: n.URL})
	}
	toks = append(toks, Token{Text: text, Style: st, LinkURL: n.URL})
	if n.URL != "" && n.URL != text {
		toks = append(toks, Token{Text: " (" + n.URL + ")", Style: combineStyles(base, styles.LinkURL), Kind: tokenURL, LinkURL: n.URL})
	}
	return toks
}

func combineStyles(base Style, extra Style) Style {
	if extra.Prefix == "" {
		return base
	}
	if base.Prefix == "" {
		return extra
	}
	return Style{Prefix: base.Prefix + extra.Prefix}
}

func headingMarker(level int) string {
	const hashes = "######"
	return hashes[:level]
}
