package richtext

import (
	"errors"
	"fmt"
	"io"
)

// Output selects the Render output format.
type Output uint8

const (
	// OutputANSI renders styled terminal text.
	OutputANSI Output = iota
	// OutputHTML renders an HTML fragment.
	OutputHTML
)

// RenderRequest configures Render.
type RenderRequest struct {
	Reader  io.Reader
	Writer  io.Writer
	Width   int
	Theme   Theme
	Partial Partial
	Output  Output
	Options []RenderOption
}

// Render reads text from Reader, formats it and writes the result to Writer.
// Front matter at the start of the input is dropped; a richtext key inside it
// overrides Partial.
func Render(req RenderRequest) error {
	if req.Reader == nil {
		return fmt.Errorf("render: reader is nil")
	}
	if req.Writer == nil {
		return fmt.Errorf("render: writer is nil")
	}
	cfg := newRenderConfig(req.Options)
	src, err := io.ReadAll(req.Reader)
	if err != nil {
		return fmt.Errorf("render: read: %w", err)
	}
	if err := ValidateInput(src); errors.Is(err, ErrBinaryInput) {
		return fmt.Errorf("render: %w", err)
	}
	partial := req.Partial
	if fm, body, ok := splitFrontMatter(src); ok {
		src = body
		fileCfg, found, err := fm.config()
		if err != nil {
			return fmt.Errorf("render: %w", err)
		}
		if found {
			p, err := fileCfg.Partial()
			if err != nil {
				return fmt.Errorf("render: front matter: %w", err)
			}
			partial = partial.Merge(p)
		}
	}
	if cfg.tags {
		partial = WithTagRules(partial)
	}
	nodes := Format(sanitize(src), partial)
	switch req.Output {
	case OutputHTML:
		if err := RenderHTML(req.Writer, nodes); err != nil {
			return fmt.Errorf("render: %w", err)
		}
	default:
		if err := RenderANSI(req.Writer, nodes, req.Width, req.Theme, req.Options...); err != nil {
			return fmt.Errorf("render: %w", err)
		}
	}
	return nil
}
