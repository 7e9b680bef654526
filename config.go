package richtext

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/hay-kot/criterio"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig reports a configuration file or front matter block that
// cannot be turned into formatter options.
var ErrInvalidConfig = errors.New("invalid config")

// Config is the file form of formatter options. Custom rules are tagged: a
// pattern plus the name of a built-in renderer.
type Config struct {
	Preset        string       `yaml:"preset" toml:"preset"`
	Bold          *bool        `yaml:"bold" toml:"bold"`
	Italic        *bool        `yaml:"italic" toml:"italic"`
	Code          *bool        `yaml:"code" toml:"code"`
	Underline     *bool        `yaml:"underline" toml:"underline"`
	Bullets       *bool        `yaml:"bullets" toml:"bullets"`
	NumberedLists *bool        `yaml:"numbered_lists" toml:"numbered_lists"`
	Headings      *bool        `yaml:"headings" toml:"headings"`
	Tags          bool         `yaml:"tags" toml:"tags"`
	Rules         []RuleConfig `yaml:"rules" toml:"rules"`
}

// RuleConfig is a custom rule in a Config.
type RuleConfig struct {
	Name    string `yaml:"name" toml:"name"`
	Pattern string `yaml:"pattern" toml:"pattern"`
	Render  string `yaml:"render" toml:"render"`
}

// Renderer tags accepted in RuleConfig.Render.
const (
	RenderBold      = "bold"
	RenderItalic    = "italic"
	RenderCode      = "code"
	RenderUnderline = "underline"
	RenderHighlight = "highlight"
	RenderBadge     = "badge"
	RenderLink      = "link"
	RenderText      = "text"
)

var renderTags = map[string]NodeKind{
	RenderBold:      KindBold,
	RenderItalic:    KindItalic,
	RenderCode:      KindCode,
	RenderUnderline: KindUnderline,
	RenderHighlight: KindHighlight,
	RenderBadge:     KindBadge,
	RenderLink:      KindLink,
	RenderText:      KindText,
}

// RenderTags returns the accepted RuleConfig.Render values.
func RenderTags() []string {
	tags := make([]string, 0, len(renderTags))
	for tag := range renderTags {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}

// LoadConfig reads a YAML, JSON or TOML config file, chosen by extension.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config file: %w", err)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return ParseTOMLConfig(data)
	default:
		return ParseYAMLConfig(data)
	}
}

// ParseYAMLConfig decodes YAML (or JSON) config. Unknown keys are rejected.
func ParseYAMLConfig(data []byte) (Config, error) {
	var cfg Config
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		if errors.Is(err, io.EOF) {
			return Config{}, nil
		}
		return Config{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return cfg, nil
}

// ParseTOMLConfig decodes TOML config. Unknown keys are rejected.
func ParseTOMLConfig(data []byte) (Config, error) {
	var cfg Config
	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("%w: unknown key %q", ErrInvalidConfig, undecoded[0].String())
	}
	return cfg, nil
}

// Validate checks preset names, rule patterns and render tags.
func (c Config) Validate() error {
	var errs criterio.FieldErrorsBuilder
	if c.Preset != "" {
		if _, ok := PresetByName(c.Preset); !ok {
			errs = errs.Append("preset", fmt.Errorf("%w %q", ErrUnknownPreset, c.Preset))
		}
	}
	for i, rule := range c.Rules {
		field := fmt.Sprintf("rules[%d]", i)
		if rule.Pattern == "" {
			errs = errs.Append(field+".pattern", fmt.Errorf("pattern is required"))
		} else if _, err := regexp.Compile(rule.Pattern); err != nil {
			errs = errs.Append(field+".pattern", fmt.Errorf("invalid regex %q: %w", rule.Pattern, err))
		}
		if _, ok := renderTags[strings.ToLower(rule.Render)]; !ok {
			errs = errs.Append(field+".render", fmt.Errorf("unknown render %q (expected one of %s)", rule.Render, strings.Join(RenderTags(), ", ")))
		}
	}
	return errs.ToError()
}

// Partial validates c and converts it to formatter options. The preset is the
// base; toggles and rules set in c override it.
func (c Config) Partial() (Partial, error) {
	if err := c.Validate(); err != nil {
		return Partial{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	base, _ := PresetByName(c.Preset)
	over := Partial{
		Bold:          c.Bold,
		Italic:        c.Italic,
		Code:          c.Code,
		Underline:     c.Underline,
		Bullets:       c.Bullets,
		NumberedLists: c.NumberedLists,
		Headings:      c.Headings,
	}
	if len(c.Rules) > 0 {
		rules := make([]Rule, 0, len(base.CustomRules)+len(c.Rules))
		rules = append(rules, base.CustomRules...)
		for _, rc := range c.Rules {
			rules = append(rules, rc.rule())
		}
		over.CustomRules = rules
	}
	p := base.Merge(over)
	if c.Tags {
		p = WithTagRules(p)
	}
	return p, nil
}

func (rc RuleConfig) rule() Rule {
	kind := renderTags[strings.ToLower(rc.Render)]
	return Rule{
		Name:    rc.Name,
		Pattern: regexp.MustCompile(rc.Pattern),
		Render:  tagRenderer(kind),
	}
}

func tagRenderer(kind NodeKind) RenderFunc {
	if kind == KindLink {
		return func(m Match) Node {
			url := m.Content
			if len(m.Groups) > 1 && m.Groups[1] != "" {
				url = m.Groups[1]
			}
			return Node{Kind: KindLink, Key: m.Key, Text: m.Content, URL: url}
		}
	}
	return func(m Match) Node {
		return Wrap(kind, m.Content, m.Key)
	}
}
