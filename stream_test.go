package richtext

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type captureStream struct {
	blocks  []Node
	flushed int
}

func (c *captureStream) WriteBlock(n Node) error {
	c.blocks = append(c.blocks, n)
	return nil
}

func (c *captureStream) Flush() error {
	c.flushed++
	return nil
}

func parseBlocks(t *testing.T, src string, p Partial, opts ...RenderOption) []Node {
	t.Helper()
	stream := &captureStream{}
	require.NoError(t, Parse(ParseRequest{
		Reader:  strings.NewReader(src),
		Stream:  stream,
		Partial: p,
		Options: opts,
	}))
	assert.Equal(t, 1, stream.flushed)
	return stream.blocks
}

func TestParseMatchesFormat(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{name: "mixed", src: "# Head\n\n* a **b**\r\n1. c `d`\nKey: *v*\nplain"},
		{name: "trailing newline", src: "one\ntwo\n"},
		{name: "released front matter", src: "---\nplain words\n---\nhi"},
		{name: "unclosed front matter", src: "---\ntitle: x\nbody"},
		{name: "delimiter only", src: "---"},
		{name: "empty", src: ""},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := parseBlocks(t, tc.src, MarkdownPreset())
			want := Format(tc.src, MarkdownPreset())
			if len(want) == 0 {
				assert.Empty(t, got)
				return
			}
			assert.Equal(t, want, got)
		})
	}
}

func TestParseAppliesFrontMatter(t *testing.T) {
	blocks := parseBlocks(t, "---\nrichtext:\n  bullets: false\n  tags: true\n---\n* x {{y}}\n", Partial{})
	require.Len(t, blocks, 1)
	assert.Equal(t, "paragraph-0", blocks[0].Key)
	children := blocks[0].Children
	require.Len(t, children, 2)
	assert.Equal(t, "* x ", children[0].Text)
	assert.Equal(t, KindBadge, children[1].Kind)
}

func TestParseTagsOption(t *testing.T) {
	blocks := parseBlocks(t, "[[x]]", Partial{}, WithTags(true))
	require.Len(t, blocks, 1)
	assert.Equal(t, KindHighlight, blocks[0].Children[0].Kind)
}

func TestParseInvalidFrontMatter(t *testing.T) {
	err := Parse(ParseRequest{
		Reader: strings.NewReader("+++\n[richtext]\nsparkle = 1\n+++\n"),
		Stream: &captureStream{},
	})
	require.ErrorIs(t, err, ErrInvalidConfig)
	require.Error(t, Parse(ParseRequest{Stream: &captureStream{}}))
	require.Error(t, Parse(ParseRequest{Reader: strings.NewReader("x")}))
}

func TestStreamRendererMatchesRenderANSI(t *testing.T) {
	src := "# Title\n* one two three four five\n* six\nKey: [docs](https://example.com)\nlast line"
	var want bytes.Buffer
	require.NoError(t, RenderANSI(&want, FormatMarkdown(src), 16, DefaultTheme()))

	var got bytes.Buffer
	stream := NewStreamRenderer(&got, 16, DefaultTheme())
	require.NoError(t, Parse(ParseRequest{
		Reader:  strings.NewReader(src),
		Stream:  stream,
		Partial: MarkdownPreset(),
	}))
	assert.Equal(t, want.String(), got.String())
	assert.Equal(t, 16, stream.Width())
}

func TestStreamSimulatePlainText(t *testing.T) {
	var out bytes.Buffer
	err := StreamSimulate(StreamSimulateRequest{
		Reader:    strings.NewReader("alpha beta gamma"),
		Writer:    &out,
		Width:     6,
		Theme:     BoringTheme(),
		ChunkSize: 2,
	})
	require.NoError(t, err)
	assert.Equal(t, "alpha\nbeta\ngamma\n", out.String())
}

func TestStreamSimulateSkipsBinary(t *testing.T) {
	var out bytes.Buffer
	err := StreamSimulate(StreamSimulateRequest{
		Reader:    bytes.NewReader([]byte{0x00, 0x01, 0x02, 0x03, 0x04}),
		Writer:    &out,
		Width:     10,
		ChunkSize: 1,
	})
	require.NoError(t, err)
	assert.Zero(t, out.Len())
}

func TestStreamSimulateRequiresChunkSize(t *testing.T) {
	err := StreamSimulate(StreamSimulateRequest{
		Reader: strings.NewReader("x"),
		Writer: &bytes.Buffer{},
	})
	require.Error(t, err)
}
