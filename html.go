package richtext

import (
	"io"
	"strconv"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// RenderHTML writes nodes as an HTML fragment. Consecutive list items of the
// same kind are grouped into one ol or ul element, and every element carries
// its node key in data-key.
func RenderHTML(w io.Writer, nodes []Node) error {
	for _, el := range buildHTML(nodes) {
		if err := html.Render(w, el); err != nil {
			return err
		}
		if _, err := io.WriteString(w, "\n"); err != nil {
			return err
		}
	}
	return nil
}

func buildHTML(nodes []Node) []*html.Node {
	var (
		out  []*html.Node
		list *html.Node
	)
	for _, n := range nodes {
		if n.Kind != KindListItem {
			list = nil
			out = append(out, htmlNode(n))
			continue
		}
		want := atom.Ul
		if n.Ordered() {
			want = atom.Ol
		}
		if list == nil || list.DataAtom != want {
			list = element(want)
			if want == atom.Ol {
				if start := listStart(n.Marker); start != 1 {
					list.Attr = append(list.Attr, html.Attribute{Key: "start", Val: strconv.Itoa(start)})
				}
			}
			out = append(out, list)
		}
		list.AppendChild(htmlNode(n))
	}
	return out
}

func htmlNode(n Node) *html.Node {
	var el *html.Node
	switch n.Kind {
	case KindText:
		if len(n.Children) == 0 {
			return &html.Node{Type: html.TextNode, Data: n.Text}
		}
		el = element(atom.Span)
	case KindBold:
		el = element(atom.Strong)
	case KindItalic:
		el = element(atom.Em)
	case KindCode:
		el = element(atom.Code)
	case KindUnderline:
		el = element(atom.U)
	case KindHighlight:
		el = element(atom.Mark)
	case KindBadge:
		el = element(atom.Span)
		el.Attr = append(el.Attr, html.Attribute{Key: "class", Val: "badge"})
	case KindLink:
		el = element(atom.A)
		el.Attr = append(el.Attr, html.Attribute{Key: "href", Val: n.URL})
	case KindHeading:
		el = element(headingAtom(n.Level))
	case KindListItem:
		el = element(atom.Li)
	default:
		el = element(atom.P)
	}
	if n.Key != "" {
		el.Attr = append(el.Attr, html.Attribute{Key: "data-key", Val: n.Key})
	}
	if n.Text != "" {
		el.AppendChild(&html.Node{Type: html.TextNode, Data: n.Text})
	}
	for _, child := range n.Children {
		el.AppendChild(htmlNode(child))
	}
	return el
}

func element(a atom.Atom) *html.Node {
	return &html.Node{Type: html.ElementNode, DataAtom: a, Data: a.String()}
}

func headingAtom(level int) atom.Atom {
	switch level {
	case 1:
		return atom.H1
	case 2:
		return atom.H2
	case 3:
		return atom.H3
	case 4:
		return atom.H4
	case 5:
		return atom.H5
	default:
		return atom.H6
	}
}

func listStart(marker string) int {
	n, err := strconv.Atoi(marker[:len(marker)-1])
	if err != nil {
		return 1
	}
	return n
}
