package richtext

import (
	"io"
	"sync"
)

var streamRendererPool = sync.Pool{
	New: func() any {
		return &StreamRenderer{}
	},
}

// StreamRenderer writes blocks to an io.Writer as ANSI text, one block at a
// time, with the same separators and wrapping as RenderANSI.
type StreamRenderer struct {
	w      io.Writer
	styles Styles
	cfg    renderConfig
	aw     ansiWriter
	prev   NodeKind
	blocks int
}

// NewStreamRenderer creates a streaming renderer. A nil theme uses DefaultTheme.
func NewStreamRenderer(w io.Writer, width int, theme Theme, opts ...RenderOption) *StreamRenderer {
	s := &StreamRenderer{}
	s.resetWithConfig(w, width, theme, newRenderConfig(opts))
	return s
}

func (s *StreamRenderer) resetWithConfig(w io.Writer, width int, theme Theme, cfg renderConfig) {
	if theme == nil {
		theme = DefaultTheme()
	}
	s.styles = theme.Styles()
	s.cfg = cfg
	s.Reset(w, width)
}

// Reset clears block state for reuse with a new writer or width.
func (s *StreamRenderer) Reset(w io.Writer, width int) {
	s.w = w
	s.aw = ansiWriter{width: width, softWrap: s.cfg.softWrap}
	s.prev = KindText
	s.blocks = 0
}

// Width returns the configured wrap width.
func (s *StreamRenderer) Width() int {
	return s.aw.width
}

// SetWidth updates the wrap width for the following blocks.
func (s *StreamRenderer) SetWidth(width int) {
	s.aw.width = width
}

// WriteBlock renders one block and writes it out immediately.
func (s *StreamRenderer) WriteBlock(n Node) error {
	if s.blocks > 0 && !(n.Kind == KindListItem && s.prev == KindListItem) {
		s.aw.b.WriteByte('\n')
	}
	s.aw.writeBlock(Tokenize(n, s.styles, s.cfg.osc8), n.Kind == KindListItem)
	s.prev = n.Kind
	s.blocks++
	_, err := io.WriteString(s.w, s.aw.b.String())
	s.aw.b.Reset()
	return err
}

// Flush flushes the writer if it buffers.
func (s *StreamRenderer) Flush() error {
	if f, ok := s.w.(interface{ Flush() error }); ok {
		return f.Flush()
	}
	return nil
}
