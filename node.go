package richtext

import "strings"

// Node is a keyed render node produced by Format. Nodes are values and are never
// mutated after Format returns them.
type Node struct {
	Kind     NodeKind
	Key      string
	Text     string
	Level    int
	Marker   string
	URL      string
	Children []Node
}

type nodeKind uint8

// NodeKind is the exported alias of nodeKind.
type NodeKind = nodeKind

const (
	nodeText nodeKind = iota
	nodeBold
	nodeItalic
	nodeCode
	nodeUnderline
	nodeHighlight
	nodeBadge
	nodeLink
	nodeHeading
	nodeListItem
	nodeParagraph
)

const (
	// KindText is literal passthrough text.
	KindText NodeKind = nodeText
	// KindBold wraps strongly emphasized text.
	KindBold NodeKind = nodeBold
	// KindItalic wraps emphasized text.
	KindItalic NodeKind = nodeItalic
	// KindCode wraps inline code.
	KindCode NodeKind = nodeCode
	// KindUnderline wraps underlined text.
	KindUnderline NodeKind = nodeUnderline
	// KindHighlight wraps a highlighted span.
	KindHighlight NodeKind = nodeHighlight
	// KindBadge wraps a badge span.
	KindBadge NodeKind = nodeBadge
	// KindLink is a hyperlink; Text is the label and URL the target.
	KindLink NodeKind = nodeLink
	// KindHeading is a heading block with Level 1-6.
	KindHeading NodeKind = nodeHeading
	// KindListItem is a numbered or bullet list item block.
	KindListItem NodeKind = nodeListItem
	// KindParagraph is a paragraph block, including labeled sections.
	KindParagraph NodeKind = nodeParagraph
)

var kindNames = [...]string{
	nodeText:      "text",
	nodeBold:      "bold",
	nodeItalic:    "italic",
	nodeCode:      "code",
	nodeUnderline: "underline",
	nodeHighlight: "highlight",
	nodeBadge:     "badge",
	nodeLink:      "link",
	nodeHeading:   "heading",
	nodeListItem:  "list-item",
	nodeParagraph: "paragraph",
}

func (k nodeKind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// IsBlock reports whether the kind is emitted at block level.
func (k nodeKind) IsBlock() bool {
	return k == nodeHeading || k == nodeListItem || k == nodeParagraph
}

// Ordered reports whether a list item came from a numbered marker.
func (n Node) Ordered() bool {
	return n.Kind == KindListItem && n.Marker != "" && n.Marker[0] >= '0' && n.Marker[0] <= '9'
}

// TextNode returns a literal text node.
func TextNode(text, key string) Node {
	return Node{Kind: KindText, Key: key, Text: text}
}

// Wrap returns an inline node of kind wrapping content.
func Wrap(kind NodeKind, content, key string) Node {
	return Node{Kind: kind, Key: key, Text: content}
}

// Walk visits nodes depth-first in document order. Returning false from fn skips
// the node's children.
func Walk(nodes []Node, fn func(Node) bool) {
	for _, n := range nodes {
		if fn(n) {
			Walk(n.Children, fn)
		}
	}
}

// SourceText concatenates the captured text of every node, without markers or
// delimiters.
func SourceText(nodes []Node) string {
	var b strings.Builder
	Walk(nodes, func(n Node) bool {
		b.WriteString(n.Text)
		return true
	})
	return b.String()
}
