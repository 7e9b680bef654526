package richtext

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatPlainLinesBecomeParagraphs(t *testing.T) {
	nodes := Format("hello world\n  second line  \n\nthird", Partial{})
	require.Len(t, nodes, 3)
	want := []string{"hello world", "second line", "third"}
	for i, n := range nodes {
		assert.Equal(t, KindParagraph, n.Kind)
		assert.Equal(t, blockKey("paragraph", i), n.Key)
		require.Len(t, n.Children, 1)
		assert.Equal(t, KindText, n.Children[0].Kind)
		assert.Equal(t, want[i], n.Children[0].Text)
	}
}

func TestFormatEmptyInput(t *testing.T) {
	assert.Empty(t, Format("", Partial{}))
	assert.Empty(t, Format("\n\n", Partial{}))
	assert.Empty(t, Format("   \n\t\n", Partial{}))
}

func TestFormatBoldStripsDelimiters(t *testing.T) {
	nodes := Format("**bold**", Partial{})
	require.Len(t, nodes, 1)
	require.Len(t, nodes[0].Children, 1)
	bold := nodes[0].Children[0]
	assert.Equal(t, KindBold, bold.Kind)
	assert.Equal(t, "bold", bold.Text)
	assert.Equal(t, "format-0-0", bold.Key)
	assert.NotContains(t, SourceText(nodes), "*")
}

func TestFormatHeading(t *testing.T) {
	nodes := Format("# Title", Partial{})
	require.Len(t, nodes, 1)
	h := nodes[0]
	assert.Equal(t, KindHeading, h.Kind)
	assert.Equal(t, 1, h.Level)
	assert.Equal(t, "heading-0", h.Key)
	assert.Equal(t, "Title", SourceText(h.Children))

	nodes = Format("###### Deep", Partial{})
	require.Len(t, nodes, 1)
	assert.Equal(t, 6, nodes[0].Level)
}

func TestFormatHeadingFallsThrough(t *testing.T) {
	tests := []struct {
		name string
		in   string
		key  string
	}{
		{name: "no space", in: "#hashtag", key: "paragraph-0"},
		{name: "bare hash", in: "#", key: "paragraph-0"},
		{name: "seven levels", in: "####### too deep", key: "paragraph-0"},
		{name: "section after hash", in: "#tag: value", key: "section-0"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			nodes := Format(tc.in, Partial{})
			require.Len(t, nodes, 1)
			assert.Equal(t, KindParagraph, nodes[0].Kind)
			assert.Equal(t, tc.key, nodes[0].Key)
		})
	}
}

func TestFormatNumberedList(t *testing.T) {
	nodes := Format("1. First\n2. Second", Partial{})
	require.Len(t, nodes, 2)
	assert.Equal(t, "numbered-0", nodes[0].Key)
	assert.Equal(t, "numbered-1", nodes[1].Key)
	assert.Equal(t, "First", SourceText(nodes[0].Children))
	assert.Equal(t, "Second", SourceText(nodes[1].Children))
	for _, n := range nodes {
		assert.Equal(t, KindListItem, n.Kind)
		assert.True(t, n.Ordered())
	}
	assert.Equal(t, "2.", nodes[1].Marker)
}

func TestFormatBulletList(t *testing.T) {
	nodes := Format("* one\n* **two**", Partial{})
	require.Len(t, nodes, 2)
	assert.Equal(t, "bullet-0", nodes[0].Key)
	assert.Equal(t, "bullet-1", nodes[1].Key)
	assert.False(t, nodes[0].Ordered())
	require.Len(t, nodes[1].Children, 1)
	assert.Equal(t, KindBold, nodes[1].Children[0].Kind)
}

func TestFormatLabeledSection(t *testing.T) {
	nodes := Format("Label: value", Partial{})
	require.Len(t, nodes, 1)
	n := nodes[0]
	assert.Equal(t, KindParagraph, n.Kind)
	assert.Equal(t, "section-0", n.Key)
	require.Len(t, n.Children, 3)
	assert.Equal(t, KindBold, n.Children[0].Kind)
	assert.Equal(t, "Label", n.Children[0].Text)
	assert.Equal(t, ": ", n.Children[1].Text)
	assert.Equal(t, "value", n.Children[2].Text)
	assert.True(t, strings.HasPrefix(SourceText(n.Children), "Label: value"))
}

func TestFormatLabeledSectionNeedsBothSides(t *testing.T) {
	for _, in := range []string{"Label:", ": value", "  :  "} {
		nodes := Format(in, Partial{})
		require.Len(t, nodes, 1, in)
		assert.Equal(t, "paragraph-0", nodes[0].Key, in)
	}
}

func TestFormatIndexSkipsBlankLines(t *testing.T) {
	nodes := Format("# Title\n\n\n* item\n\nNote: done\nplain", Partial{})
	keys := make([]string, 0, len(nodes))
	for _, n := range nodes {
		keys = append(keys, n.Key)
	}
	assert.Equal(t, []string{"heading-0", "bullet-1", "section-2", "paragraph-3"}, keys)
}

func TestFormatMixedInline(t *testing.T) {
	nodes := Format("**bold** and *italic* and `code`", Partial{})
	require.Len(t, nodes, 1)
	children := nodes[0].Children
	require.Len(t, children, 5)
	wantKinds := []NodeKind{KindBold, KindText, KindItalic, KindText, KindCode}
	wantText := []string{"bold", " and ", "italic", " and ", "code"}
	for i, child := range children {
		assert.Equal(t, wantKinds[i], child.Kind, "child %d", i)
		assert.Equal(t, wantText[i], child.Text, "child %d", i)
	}
	assert.Equal(t, "format-0-0", children[0].Key)
	assert.Equal(t, "format-13-1", children[2].Key)
	assert.Equal(t, "format-26-3", children[4].Key)
}

func TestFormatDisabledToggles(t *testing.T) {
	nodes := Format("**text**", Partial{Bold: Bool(false)})
	require.Len(t, nodes, 1)
	require.Len(t, nodes[0].Children, 1)
	assert.Equal(t, KindText, nodes[0].Children[0].Kind)
	assert.Equal(t, "**text**", nodes[0].Children[0].Text)

	nodes = Format("1. First", Partial{NumberedLists: Bool(false)})
	assert.Equal(t, "paragraph-0", nodes[0].Key)

	nodes = Format("* item", Partial{Bullets: Bool(false)})
	require.Len(t, nodes, 1)
	assert.Equal(t, "paragraph-0", nodes[0].Key)
	assert.Equal(t, "* item", SourceText(nodes))

	nodes = Format("# Title", Partial{Headings: Bool(false)})
	assert.Equal(t, "paragraph-0", nodes[0].Key)
	assert.Equal(t, "# Title", SourceText(nodes))
}

func TestFormatUnterminatedMarkup(t *testing.T) {
	for _, in := range []string{"**open", "a * b", "`tick", "__under"} {
		nodes := Format(in, Partial{Underline: Bool(true)})
		require.Len(t, nodes, 1, in)
		assert.Equal(t, in, SourceText(nodes), in)
	}
}

func TestFormatRoundTripRemovesOnlyDelimiters(t *testing.T) {
	line := "start **b** mid _i_ then `c` end"
	nodes := Format(line, Partial{})
	assert.Equal(t, "start b mid i then c end", SourceText(nodes))
}

func TestFormatIsDeterministic(t *testing.T) {
	text := "# Head\n* a **b**\n1. c `d`\nKey: *v*\n[[x]] {{y}}"
	first := FormatWithTags(text, Partial{})
	second := FormatWithTags(text, Partial{})
	assert.Equal(t, first, second)
}

func TestFormatUnderlineDeclarationOrder(t *testing.T) {
	nodes := Format("__under__", Partial{Underline: Bool(true)})
	require.Len(t, nodes[0].Children, 1)
	assert.Equal(t, KindUnderline, nodes[0].Children[0].Kind)
	assert.Equal(t, "under", nodes[0].Children[0].Text)

	nodes = Format("_one_ __two__", Partial{Underline: Bool(true)})
	children := nodes[0].Children
	require.Len(t, children, 3)
	assert.Equal(t, KindItalic, children[0].Kind)
	assert.Equal(t, KindUnderline, children[2].Kind)
}

func TestFormatCustomRules(t *testing.T) {
	mention := Rule{
		Name:    "mention",
		Pattern: regexp.MustCompile(`@\w+`),
		Render: func(m Match) Node {
			return Wrap(KindBadge, m.Content, m.Key)
		},
	}
	ticket := Rule{
		Name:    "ticket",
		Pattern: regexp.MustCompile(`#(\d+)`),
		Render: func(m Match) Node {
			return Node{Kind: KindLink, Key: m.Key, Text: m.Full, URL: "https://example.com/t/" + m.Content}
		},
	}
	nodes := Format("ping @ana about #42 **now**", Partial{CustomRules: []Rule{mention, ticket}})
	require.Len(t, nodes, 1)
	children := nodes[0].Children
	require.Len(t, children, 6)
	assert.Equal(t, KindBadge, children[1].Kind)
	assert.Equal(t, "@ana", children[1].Text)
	assert.Equal(t, KindLink, children[3].Kind)
	assert.Equal(t, "https://example.com/t/42", children[3].URL)
	assert.Equal(t, KindBold, children[5].Kind)
	assert.Equal(t, "format-5-4", children[1].Key)
}

func TestFormatCustomRuleWithoutRender(t *testing.T) {
	rule := Rule{Pattern: regexp.MustCompile(`<(\w+)>`)}
	nodes := Format("a <b> c", Partial{CustomRules: []Rule{rule}})
	children := nodes[0].Children
	require.Len(t, children, 3)
	assert.Equal(t, KindText, children[1].Kind)
	assert.Equal(t, "b", children[1].Text)
}

func TestFormatWithTags(t *testing.T) {
	nodes := FormatWithTags("see [[this]] and {{new}}", Partial{})
	children := nodes[0].Children
	require.Len(t, children, 4)
	assert.Equal(t, KindHighlight, children[1].Kind)
	assert.Equal(t, "this", children[1].Text)
	assert.Equal(t, KindBadge, children[3].Kind)
	assert.Equal(t, "new", children[3].Text)
}

func TestFormatMarkdownLinks(t *testing.T) {
	nodes := FormatMarkdown("read [the docs](https://example.com/docs) first")
	children := nodes[0].Children
	require.Len(t, children, 3)
	link := children[1]
	assert.Equal(t, KindLink, link.Kind)
	assert.Equal(t, "the docs", link.Text)
	assert.Equal(t, "https://example.com/docs", link.URL)
}

func TestFormatDocumentationKeepsIdentifiers(t *testing.T) {
	nodes := FormatDocumentation("set max_open_conns and __never__ skip")
	children := nodes[0].Children
	require.Len(t, children, 3)
	assert.Equal(t, "set max_open_conns and ", children[0].Text)
	assert.Equal(t, KindUnderline, children[1].Kind)
}
