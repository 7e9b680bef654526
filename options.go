package richtext

import "regexp"

// Options is the resolved formatter configuration.
type Options struct {
	Bold          bool
	Italic        bool
	Code          bool
	Underline     bool
	Bullets       bool
	NumberedLists bool
	Headings      bool
	CustomRules   []Rule
}

// Partial overrides a subset of Options. Nil toggles and a nil CustomRules slice
// fall back to the defaults.
type Partial struct {
	Bold          *bool
	Italic        *bool
	Code          *bool
	Underline     *bool
	Bullets       *bool
	NumberedLists *bool
	Headings      *bool
	CustomRules   []Rule
}

// Rule is a caller-supplied inline pattern. Rules are tried after the built-in
// rules, in slice order.
type Rule struct {
	Name    string
	Pattern *regexp.Regexp
	Render  RenderFunc
}

// RenderFunc builds the node for a single rule match.
type RenderFunc func(Match) Node

// Match describes a rule match within one line.
type Match struct {
	// Full is the whole matched substring, delimiters included.
	Full string
	// Content is capture group 1, or Full when the pattern has no groups or
	// group 1 did not participate.
	Content string
	// Groups holds the rule's own capture groups; unmatched groups are empty.
	Groups []string
	// Key is the stable node key for this match.
	Key string
	// Start is the byte offset of the match within the line.
	Start int
}

// DefaultOptions returns the formatter defaults.
func DefaultOptions() Options {
	return Options{
		Bold:          true,
		Italic:        true,
		Code:          true,
		Underline:     false,
		Bullets:       true,
		NumberedLists: true,
		Headings:      true,
	}
}

// Resolve merges p over DefaultOptions.
func Resolve(p Partial) Options {
	opts := DefaultOptions()
	opts.Bold = boolOr(p.Bold, opts.Bold)
	opts.Italic = boolOr(p.Italic, opts.Italic)
	opts.Code = boolOr(p.Code, opts.Code)
	opts.Underline = boolOr(p.Underline, opts.Underline)
	opts.Bullets = boolOr(p.Bullets, opts.Bullets)
	opts.NumberedLists = boolOr(p.NumberedLists, opts.NumberedLists)
	opts.Headings = boolOr(p.Headings, opts.Headings)
	if p.CustomRules != nil {
		opts.CustomRules = p.CustomRules
	}
	return opts
}

// Merge layers over on top of p. Set fields in over win.
func (p Partial) Merge(over Partial) Partial {
	out := p
	if over.Bold != nil {
		out.Bold = over.Bold
	}
	if over.Italic != nil {
		out.Italic = over.Italic
	}
	if over.Code != nil {
		out.Code = over.Code
	}
	if over.Underline != nil {
		out.Underline = over.Underline
	}
	if over.Bullets != nil {
		out.Bullets = over.Bullets
	}
	if over.NumberedLists != nil {
		out.NumberedLists = over.NumberedLists
	}
	if over.Headings != nil {
		out.Headings = over.Headings
	}
	if over.CustomRules != nil {
		out.CustomRules = over.CustomRules
	}
	return out
}

// Bool returns a pointer to v for use in Partial literals.
func Bool(v bool) *bool {
	return &v
}

func boolOr(v *bool, fallback bool) bool {
	if v == nil {
		return fallback
	}
	return *v
}
