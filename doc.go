// Package richtext formats lightweight chat-style markup into keyed render nodes
// and renders those nodes to ANSI terminal text or HTML.
//
// Formatting is line based. Each non-blank line is classified as a numbered
// item, a bullet item, a heading, a "Label: text" section or a paragraph, and
// its remainder is scanned once for inline markup: **bold**, *italic*,
// _italic_, `code`, __underline__ (off by default) and any custom rules. Inline
// rules do not nest, and text that matches nothing is passed through verbatim.
//
// Core properties:
//   - Pure and deterministic: the same input yields the same nodes and keys
//   - Total: malformed markup degrades to plain text, never to an error
//   - Width-independent nodes; wrapping happens only in the ANSI renderer
//   - Theme-driven styling via ANSI prefixes
//
// Example:
//
//	nodes := richtext.Format("# Status\n\n* **build**: green\n", richtext.Partial{})
//	err := richtext.RenderANSI(os.Stdout, nodes, 80, richtext.DefaultTheme())
//	if err != nil {
//		log.Fatal(err)
//	}
//
// Render combines reading, front matter handling, formatting and output:
//
//	err := richtext.Render(richtext.RenderRequest{
//		Reader:  strings.NewReader(msg),
//		Writer:  os.Stdout,
//		Width:   80,
//		Partial: richtext.MarkdownPreset(),
//		Options: []richtext.RenderOption{richtext.WithOSC8(true)},
//	})
//
// Replies that arrive piece by piece can be rendered as each line completes with
// Parse and a StreamRenderer; blocks and keys are the same as Format's.
package richtext
