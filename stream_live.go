package richtext

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"sync"
)

var readerPool = sync.Pool{
	New: func() any {
		return bufio.NewReaderSize(nil, 4096)
	},
}

// ParseRequest configures Parse.
type ParseRequest struct {
	Reader  io.Reader
	Stream  Stream
	Partial Partial
	Options []RenderOption
}

// Parse formats text from Reader line by line and hands each block to Stream as
// soon as its line is complete. Blocks and keys match Format over the same text.
// Leading front matter is held back until it closes and is then treated as in
// Render.
func Parse(req ParseRequest) error {
	if req.Reader == nil {
		return fmt.Errorf("parse: reader is nil")
	}
	if req.Stream == nil {
		return fmt.Errorf("parse: stream is nil")
	}
	cfg := newRenderConfig(req.Options)
	reader := readerPool.Get().(*bufio.Reader)
	reader.Reset(req.Reader)
	defer func() {
		reader.Reset(nil)
		readerPool.Put(reader)
	}()

	p := &liveParser{stream: req.Stream, partial: req.Partial, tags: cfg.tags}
	for {
		line, err := reader.ReadBytes('\n')
		if len(line) > 0 {
			if ferr := p.feed(line); ferr != nil {
				return fmt.Errorf("parse: %w", ferr)
			}
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return fmt.Errorf("parse: read: %w", err)
		}
	}
	if err := p.finish(); err != nil {
		return fmt.Errorf("parse: %w", err)
	}
	return req.Stream.Flush()
}

type liveParser struct {
	stream  Stream
	partial Partial
	tags    bool
	lines   int
	holding bool
	held    []byte
	lf      *lineFormatter
}

func (p *liveParser) feed(raw []byte) error {
	p.lines++
	if p.lines == 1 {
		if _, ok := parseOpeningFrontMatterDelimiter(trimCR(bytes.TrimSuffix(raw, []byte("\n")))); ok {
			p.holding = true
			p.held = append(p.held, raw...)
			return nil
		}
	}
	if !p.holding {
		return p.emit(raw)
	}
	p.held = append(p.held, raw...)
	if p.lines == 2 && !frontMatterMetadataLikely(raw) {
		return p.release()
	}
	fm, body, ok := splitFrontMatter(p.held)
	if !ok {
		if len(p.held) > maxFrontMatterBytes {
			return p.release()
		}
		return nil
	}
	p.holding = false
	p.held = nil
	cfg, found, err := fm.config()
	if err != nil {
		return err
	}
	if found {
		fromFile, err := cfg.Partial()
		if err != nil {
			return fmt.Errorf("front matter: %w", err)
		}
		p.partial = p.partial.Merge(fromFile)
	}
	return p.emitLines(body)
}

// release gives up on front matter and emits the held lines as text.
func (p *liveParser) release() error {
	held := p.held
	p.holding = false
	p.held = nil
	return p.emitLines(held)
}

func (p *liveParser) finish() error {
	if p.holding {
		return p.release()
	}
	return nil
}

func (p *liveParser) emitLines(src []byte) error {
	for len(src) > 0 {
		line := src
		if i := bytes.IndexByte(src, '\n'); i >= 0 {
			line, src = src[:i+1], src[i+1:]
		} else {
			src = nil
		}
		if err := p.emit(line); err != nil {
			return err
		}
	}
	return nil
}

func (p *liveParser) emit(raw []byte) error {
	if p.lf == nil {
		partial := p.partial
		if p.tags {
			partial = WithTagRules(partial)
		}
		p.lf = newLineFormatter(Resolve(partial))
	}
	n, ok := p.lf.feed(sanitize(raw))
	if !ok {
		return nil
	}
	return p.stream.WriteBlock(n)
}
