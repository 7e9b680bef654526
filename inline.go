package richtext

import (
	"regexp"
	"strconv"
	"strings"
	"sync"
	"unicode/utf8"
)

type builtinRule struct {
	name    string
	pattern *regexp.Regexp
	kind    NodeKind
	enabled func(Options) bool
	guard   matchGuard
}

// matchGuard rejects a match by its surroundings, standing in for the lookaround
// RE2 does not have. Scanning resumes one rune past a rejected start.
type matchGuard func(line string, start, end int) bool

// Declaration order is precedence order when two rules match at the same offset.
var builtinRules = []builtinRule{
	{name: "bold", pattern: regexp.MustCompile(`\*\*(.+?)\*\*`), kind: KindBold, enabled: func(o Options) bool { return o.Bold }},
	{name: "italic", pattern: regexp.MustCompile(`\*([^*]+)\*`), kind: KindItalic, enabled: func(o Options) bool { return o.Italic }, guard: notAdjacent('*')},
	{name: "italic-underscore", pattern: regexp.MustCompile(`_([^_]+)_`), kind: KindItalic, enabled: func(o Options) bool { return o.Italic }, guard: notAdjacent('_')},
	{name: "code", pattern: regexp.MustCompile("`([^`]+)`"), kind: KindCode, enabled: func(o Options) bool { return o.Code }},
	{name: "underline", pattern: regexp.MustCompile(`__(.+?)__`), kind: KindUnderline, enabled: func(o Options) bool { return o.Underline }},
}

func notAdjacent(delim byte) matchGuard {
	return func(line string, start, end int) bool {
		if start > 0 && line[start-1] == delim {
			return false
		}
		if end < len(line) && line[end] == delim {
			return false
		}
		return true
	}
}

type scanRule struct {
	name    string
	group   int
	subexps int
	render  RenderFunc
	guard   matchGuard
}

// inlineScanner runs every enabled rule as one leftmost-first alternation.
type inlineScanner struct {
	re    *regexp.Regexp
	rules []scanRule
}

var builtinScanners sync.Map // uint8 toggle mask -> *inlineScanner

func scannerFor(opts Options) *inlineScanner {
	if len(opts.CustomRules) == 0 {
		mask := builtinMask(opts)
		if cached, ok := builtinScanners.Load(mask); ok {
			return cached.(*inlineScanner)
		}
		s := compileScanner(opts)
		actual, _ := builtinScanners.LoadOrStore(mask, s)
		return actual.(*inlineScanner)
	}
	return compileScanner(opts)
}

func builtinMask(opts Options) uint8 {
	var mask uint8
	for i, rule := range builtinRules {
		if rule.enabled(opts) {
			mask |= 1 << i
		}
	}
	return mask
}

func compileScanner(opts Options) *inlineScanner {
	s := &inlineScanner{}
	var parts []string
	group := 1
	add := func(name string, re *regexp.Regexp, render RenderFunc, guard matchGuard) {
		parts = append(parts, "("+re.String()+")")
		s.rules = append(s.rules, scanRule{
			name:    name,
			group:   group,
			subexps: re.NumSubexp(),
			render:  render,
			guard:   guard,
		})
		group += 1 + re.NumSubexp()
	}
	for _, rule := range builtinRules {
		if !rule.enabled(opts) {
			continue
		}
		kind := rule.kind
		add(rule.name, rule.pattern, func(m Match) Node {
			return Wrap(kind, m.Content, m.Key)
		}, rule.guard)
	}
	for i, rule := range opts.CustomRules {
		if rule.Pattern == nil {
			continue
		}
		name := rule.Name
		if name == "" {
			name = "custom-" + strconv.Itoa(i)
		}
		add(name, rule.Pattern, rule.Render, nil)
	}
	if len(parts) == 0 {
		return s
	}
	re, err := regexp.Compile(strings.Join(parts, "|"))
	if err != nil {
		// Every part compiled on its own; only RE2 size limits land here.
		s.rules = nil
		return s
	}
	s.re = re
	return s
}

// ParseInline parses the inline markup of a single line. Text between matches is
// passed through verbatim; inline rules do not nest.
func ParseInline(line string, opts Options) []Node {
	return scannerFor(opts).parse(line)
}

func (s *inlineScanner) parse(line string) []Node {
	if line == "" {
		return nil
	}
	if s.re == nil {
		return []Node{TextNode(line, textKey(0))}
	}
	var nodes []Node
	last, pos := 0, 0
	for pos < len(line) {
		loc := s.re.FindStringSubmatchIndex(line[pos:])
		if loc == nil {
			break
		}
		for i := range loc {
			if loc[i] >= 0 {
				loc[i] += pos
			}
		}
		start, end := loc[0], loc[1]
		idx := s.ruleAt(loc)
		// A rejected or empty match resumes one rune later, so spans inside it
		// are still found.
		if start == end || idx < 0 {
			pos = nextRune(line, start)
			continue
		}
		if guard := s.rules[idx].guard; guard != nil && !guard(line, start, end) {
			pos = nextRune(line, start)
			continue
		}
		if start > last {
			nodes = append(nodes, TextNode(line[last:start], textKey(last)))
		}
		nodes = append(nodes, s.render(idx, line, loc))
		last, pos = end, end
	}
	if last < len(line) {
		nodes = append(nodes, TextNode(line[last:], textKey(last)))
	}
	return nodes
}

func nextRune(line string, i int) int {
	if i >= len(line) {
		return len(line)
	}
	_, size := utf8.DecodeRuneInString(line[i:])
	return i + size
}

func (s *inlineScanner) ruleAt(loc []int) int {
	for i, rule := range s.rules {
		if loc[2*rule.group] >= 0 {
			return i
		}
	}
	return -1
}

func (s *inlineScanner) render(idx int, line string, loc []int) Node {
	rule := s.rules[idx]
	start, end := loc[0], loc[1]
	m := Match{
		Full:  line[start:end],
		Key:   formatKey(start, idx),
		Start: start,
	}
	if rule.subexps > 0 {
		m.Groups = make([]string, rule.subexps)
		for g := 0; g < rule.subexps; g++ {
			gs, ge := loc[2*(rule.group+1+g)], loc[2*(rule.group+1+g)+1]
			if gs >= 0 {
				m.Groups[g] = line[gs:ge]
			}
		}
	}
	m.Content = m.Full
	if rule.subexps > 0 && loc[2*(rule.group+1)] >= 0 {
		m.Content = m.Groups[0]
	}
	if rule.render == nil {
		return TextNode(m.Content, m.Key)
	}
	return rule.render(m)
}

func formatKey(start, rule int) string {
	return "format-" + strconv.Itoa(start) + "-" + strconv.Itoa(rule)
}

func textKey(start int) string {
	return "text-" + strconv.Itoa(start)
}
