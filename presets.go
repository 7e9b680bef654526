package richtext

import (
	"errors"
	"regexp"
	"sort"
	"strings"
)

// ErrUnknownPreset reports a preset name that is not registered.
var ErrUnknownPreset = errors.New("unknown preset")

var (
	linkPattern      = regexp.MustCompile(`\[([^\]]+)\]\(([^)\s]+)\)`)
	highlightPattern = regexp.MustCompile(`\[\[(.+?)\]\]`)
	badgePattern     = regexp.MustCompile(`\{\{(.+?)\}\}`)
)

// LinkRule renders [label](url) as a link node.
func LinkRule() Rule {
	return Rule{
		Name:    "link",
		Pattern: linkPattern,
		Render: func(m Match) Node {
			return Node{Kind: KindLink, Key: m.Key, Text: m.Groups[0], URL: m.Groups[1]}
		},
	}
}

// TagRules returns the bracket tag rules: [[text]] highlights, {{text}} badges.
func TagRules() []Rule {
	return []Rule{
		{
			Name:    "highlight",
			Pattern: highlightPattern,
			Render: func(m Match) Node {
				return Wrap(KindHighlight, m.Content, m.Key)
			},
		},
		{
			Name:    "badge",
			Pattern: badgePattern,
			Render: func(m Match) Node {
				return Wrap(KindBadge, m.Content, m.Key)
			},
		},
	}
}

var builtinPresets = map[string]func() Partial{
	"default": func() Partial { return Partial{} },
	"markdown": func() Partial {
		return Partial{
			Bold:          Bool(true),
			Italic:        Bool(true),
			Code:          Bool(true),
			Underline:     Bool(false),
			Bullets:       Bool(true),
			NumberedLists: Bool(true),
			Headings:      Bool(true),
			CustomRules:   []Rule{LinkRule()},
		}
	},
	// Underscores in identifiers are common in docs, so italic is off and
	// __text__ is free to mean underline.
	"documentation": func() Partial {
		return Partial{
			Bold:          Bool(true),
			Italic:        Bool(false),
			Code:          Bool(true),
			Underline:     Bool(true),
			Bullets:       Bool(true),
			NumberedLists: Bool(true),
			Headings:      Bool(true),
		}
	},
}

// AvailablePresets returns the names of built-in presets.
func AvailablePresets() []string {
	names := make([]string, 0, len(builtinPresets))
	for name := range builtinPresets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// PresetByName returns a built-in preset. The empty name is the default preset.
func PresetByName(name string) (Partial, bool) {
	normalized := strings.ToLower(strings.TrimSpace(name))
	if normalized == "" {
		normalized = "default"
	}
	preset, ok := builtinPresets[normalized]
	if !ok {
		return Partial{}, false
	}
	return preset(), true
}

// MarkdownPreset returns the "markdown" preset.
func MarkdownPreset() Partial {
	p, _ := PresetByName("markdown")
	return p
}

// DocumentationPreset returns the "documentation" preset.
func DocumentationPreset() Partial {
	p, _ := PresetByName("documentation")
	return p
}

// FormatMarkdown formats text with the markdown preset.
func FormatMarkdown(text string) []Node {
	return Format(text, MarkdownPreset())
}

// FormatDocumentation formats text with the documentation preset.
func FormatDocumentation(text string) []Node {
	return Format(text, DocumentationPreset())
}

// FormatWithTags formats text with p's custom rules, or the default none,
// followed by the bracket tag rules.
func FormatWithTags(text string, p Partial) []Node {
	return Format(text, WithTagRules(p))
}

// WithTagRules returns p with the bracket tag rules appended to its custom rules.
func WithTagRules(p Partial) Partial {
	base := p.CustomRules
	if base == nil {
		base = DefaultOptions().CustomRules
	}
	rules := make([]Rule, 0, len(base)+2)
	rules = append(rules, base...)
	rules = append(rules, TagRules()...)
	p.CustomRules = rules
	return p
}
