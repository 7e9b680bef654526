package richtext

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseInlinePlainText(t *testing.T) {
	nodes := ParseInline("nothing to see", DefaultOptions())
	require.Len(t, nodes, 1)
	assert.Equal(t, TextNode("nothing to see", "text-0"), nodes[0])
	assert.Empty(t, ParseInline("", DefaultOptions()))
}

func TestParseInlineAllRulesDisabled(t *testing.T) {
	nodes := ParseInline("**a** *b* `c`", Options{})
	require.Len(t, nodes, 1)
	assert.Equal(t, "**a** *b* `c`", nodes[0].Text)
}

func TestParseInlineTextKeysUseOffsets(t *testing.T) {
	nodes := ParseInline("ab `c` de", DefaultOptions())
	require.Len(t, nodes, 3)
	assert.Equal(t, "text-0", nodes[0].Key)
	assert.Equal(t, "format-3-3", nodes[1].Key)
	assert.Equal(t, "text-6", nodes[2].Key)
}

func TestParseInlineItalicGuards(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []NodeKind
	}{
		{name: "single star", in: "*x*", want: []NodeKind{KindItalic}},
		{name: "triple star", in: "***x***", want: []NodeKind{KindBold, KindText}},
		{name: "underscore word", in: "_x_", want: []NodeKind{KindItalic}},
		{name: "double underscore without underline", in: "__x__", want: []NodeKind{KindText}},
		{name: "snake case", in: "snake_case_name", want: []NodeKind{KindText, KindItalic, KindText}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			nodes := ParseInline(tc.in, DefaultOptions())
			kinds := make([]NodeKind, 0, len(nodes))
			for _, n := range nodes {
				kinds = append(kinds, n.Kind)
			}
			assert.Equal(t, tc.want, kinds)
		})
	}
}

func TestParseInlineResumesAfterRejectedMatch(t *testing.T) {
	nodes := Format("call __init__ then _x_", Partial{})
	require.Len(t, nodes, 1)
	children := nodes[0].Children
	require.Len(t, children, 2)
	assert.Equal(t, TextNode("call __init__ then ", "text-0"), children[0])
	assert.Equal(t, KindItalic, children[1].Kind)
	assert.Equal(t, "x", children[1].Text)
	assert.Equal(t, "format-19-2", children[1].Key)

	nodes = Format("**a** and *b*", Partial{Bold: Bool(false)})
	require.Len(t, nodes, 1)
	children = nodes[0].Children
	require.Len(t, children, 2)
	assert.Equal(t, "**a** and ", children[0].Text)
	assert.Equal(t, KindItalic, children[1].Kind)
	assert.Equal(t, "b", children[1].Text)
	assert.Equal(t, "format-10-0", children[1].Key)
}

func TestParseInlineRejectedMatchKeepsMultibyteText(t *testing.T) {
	nodes := ParseInline("é__ö__ _ü_", DefaultOptions())
	require.Len(t, nodes, 2)
	assert.Equal(t, "é__ö__ ", nodes[0].Text)
	assert.Equal(t, KindItalic, nodes[1].Kind)
	assert.Equal(t, "ü", nodes[1].Text)
}

func TestParseInlineIgnoresZeroWidthMatches(t *testing.T) {
	opts := DefaultOptions()
	opts.CustomRules = []Rule{{Name: "empty", Pattern: regexp.MustCompile(`x*`)}}
	nodes := ParseInline("abc", opts)
	require.Len(t, nodes, 1)
	assert.Equal(t, "abc", nodes[0].Text)
}

func TestParseInlineSkipsNilPatterns(t *testing.T) {
	opts := DefaultOptions()
	opts.CustomRules = []Rule{{Name: "broken"}, {Name: "word", Pattern: regexp.MustCompile(`!(\w+)`)}}
	nodes := ParseInline("say !hi", opts)
	require.Len(t, nodes, 2)
	assert.Equal(t, "hi", nodes[1].Text)
	assert.Equal(t, "format-4-4", nodes[1].Key)
}

func TestParseInlineGroups(t *testing.T) {
	var got Match
	opts := Options{CustomRules: []Rule{{
		Pattern: regexp.MustCompile(`(\w+)=(\w+)?`),
		Render: func(m Match) Node {
			got = m
			return TextNode(m.Full, m.Key)
		},
	}}}
	ParseInline("k=", opts)
	assert.Equal(t, "k=", got.Full)
	assert.Equal(t, "k", got.Content)
	assert.Equal(t, []string{"k", ""}, got.Groups)
	assert.Equal(t, 0, got.Start)
}

func TestScannerCacheReusesBuiltins(t *testing.T) {
	a := scannerFor(DefaultOptions())
	b := scannerFor(DefaultOptions())
	assert.Same(t, a, b)

	withRules := DefaultOptions()
	withRules.CustomRules = TagRules()
	assert.NotSame(t, a, scannerFor(withRules))
}
