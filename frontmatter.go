package richtext

import (
	"bytes"
	"fmt"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

const maxFrontMatterBytes = 64 * 1024

// frontMatter is a metadata block found at the very start of a document.
type frontMatter struct {
	delim []byte
	meta  []byte
}

// splitFrontMatter separates a leading ---, +++ or ;;; delimited metadata block
// from the body. Documents without one are returned unchanged.
func splitFrontMatter(src []byte) (frontMatter, []byte, bool) {
	openLine, openNext, ok := nextLine(src, 0)
	if !ok {
		return frontMatter{}, src, false
	}
	delim, isFrontMatter := parseOpeningFrontMatterDelimiter(openLine)
	if !isFrontMatter {
		return frontMatter{}, src, false
	}
	secondLine, _, ok := nextLine(src, openNext)
	if !ok || !frontMatterMetadataLikely(secondLine) {
		return frontMatter{}, src, false
	}
	closeStart, closeNext, found := findClosingFrontMatterDelimiter(src, openNext, delim)
	if !found || closeStart > maxFrontMatterBytes {
		return frontMatter{}, src, false
	}
	return frontMatter{delim: delim, meta: src[openNext:closeStart]}, src[closeNext:], true
}

// config decodes the richtext key of the block, if any. Other keys are ignored;
// unknown keys under richtext are rejected.
func (fm frontMatter) config() (Config, bool, error) {
	if bytes.Equal(fm.delim, []byte("+++")) {
		var doc struct {
			Richtext *Config `toml:"richtext"`
		}
		md, err := toml.Decode(string(fm.meta), &doc)
		if err != nil {
			return Config{}, false, fmt.Errorf("%w: front matter: %w", ErrInvalidConfig, err)
		}
		for _, key := range md.Undecoded() {
			if len(key) > 1 && key[0] == "richtext" {
				return Config{}, false, fmt.Errorf("%w: front matter: unknown key %q", ErrInvalidConfig, key.String())
			}
		}
		if doc.Richtext == nil {
			return Config{}, false, nil
		}
		return *doc.Richtext, true, nil
	}
	// YAML front matter; JSON (;;;) decodes as YAML too.
	var doc struct {
		Richtext yaml.Node `yaml:"richtext"`
	}
	if err := yaml.Unmarshal(fm.meta, &doc); err != nil {
		return Config{}, false, fmt.Errorf("%w: front matter: %w", ErrInvalidConfig, err)
	}
	if doc.Richtext.Kind == 0 {
		return Config{}, false, nil
	}
	raw, err := yaml.Marshal(&doc.Richtext)
	if err != nil {
		return Config{}, false, fmt.Errorf("%w: front matter: %w", ErrInvalidConfig, err)
	}
	cfg, err := ParseYAMLConfig(raw)
	if err != nil {
		return Config{}, false, fmt.Errorf("front matter: %w", err)
	}
	return cfg, true, nil
}

func nextLine(src []byte, start int) ([]byte, int, bool) {
	if start >= len(src) {
		return nil, 0, false
	}
	i := bytes.IndexByte(src[start:], '\n')
	if i < 0 {
		return trimCR(src[start:]), len(src), true
	}
	lineEnd := start + i
	return trimCR(src[start:lineEnd]), lineEnd + 1, true
}

func parseOpeningFrontMatterDelimiter(line []byte) ([]byte, bool) {
	trimmed := bytes.TrimSpace(trimBOM(line))
	switch {
	case bytes.Equal(trimmed, []byte("---")):
		return []byte("---"), true
	case bytes.Equal(trimmed, []byte("+++")):
		return []byte("+++"), true
	case bytes.Equal(trimmed, []byte(";;;")):
		return []byte(";;;"), true
	default:
		return nil, false
	}
}

func frontMatterMetadataLikely(line []byte) bool {
	trimmed := bytes.TrimSpace(line)
	if len(trimmed) == 0 {
		return false
	}
	if bytes.HasPrefix(trimmed, []byte("{")) || bytes.HasPrefix(trimmed, []byte("[")) {
		return true
	}
	return bytes.Contains(trimmed, []byte(":")) || bytes.Contains(trimmed, []byte("="))
}

func findClosingFrontMatterDelimiter(src []byte, start int, delim []byte) (int, int, bool) {
	for idx := start; idx < len(src); {
		line, next, ok := nextLine(src, idx)
		if !ok {
			return 0, 0, false
		}
		if bytes.Equal(bytes.TrimSpace(line), delim) {
			return idx, next, true
		}
		idx = next
	}
	return 0, 0, false
}

func trimCR(b []byte) []byte {
	if len(b) > 0 && b[len(b)-1] == '\r' {
		return b[:len(b)-1]
	}
	return b
}

func trimBOM(b []byte) []byte {
	if len(b) >= 3 && b[0] == 0xEF && b[1] == 0xBB && b[2] == 0xBF {
		return b[3:]
	}
	return b
}
