package richtext

import (
	"fmt"
	"io"
	"time"
)

// StreamSimulateRequest configures StreamSimulate.
type StreamSimulateRequest struct {
	Reader    io.Reader
	Writer    io.Writer
	Width     int
	Theme     Theme
	Partial   Partial
	ChunkSize int
	Delay     time.Duration
	Options   []RenderOption
}

// StreamSimulate streams text through Parse in chunks of at most ChunkSize
// bytes, pausing Delay after each chunk. It imitates a chat reply arriving
// piece by piece.
func StreamSimulate(req StreamSimulateRequest) error {
	if req.Reader == nil {
		return fmt.Errorf("stream simulate: Reader is nil")
	}
	if req.Writer == nil {
		return fmt.Errorf("stream simulate: Writer is nil")
	}
	if req.ChunkSize <= 0 {
		return fmt.Errorf("stream simulate: ChunkSize must be > 0")
	}
	stream := streamRendererPool.Get().(*StreamRenderer)
	stream.resetWithConfig(req.Writer, req.Width, req.Theme, newRenderConfig(req.Options))
	defer func() {
		stream.Reset(io.Discard, 0)
		streamRendererPool.Put(stream)
	}()
	err := Parse(ParseRequest{
		Reader:  &chunkReader{r: req.Reader, size: req.ChunkSize, delay: req.Delay},
		Stream:  stream,
		Partial: req.Partial,
		Options: req.Options,
	})
	if err != nil {
		return fmt.Errorf("stream simulate: %w", err)
	}
	return nil
}

type chunkReader struct {
	r     io.Reader
	size  int
	delay time.Duration
}

func (c *chunkReader) Read(p []byte) (int, error) {
	if len(p) > c.size {
		p = p[:c.size]
	}
	n, err := c.r.Read(p)
	if n > 0 && c.delay > 0 {
		time.Sleep(c.delay)
	}
	return n, err
}
