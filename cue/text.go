package cue

import (
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/language"

	"webvtt.im/webvtt/internal/entity"
	"webvtt.im/webvtt/internal/parseutil"
)

// entry is one open node on the tag stack: its tag letter (used to match
// end tags) alongside the node itself.
type entry struct {
	tag  string
	node container
}

// textParser turns a cue's payload codepoints into a tree of Nodes, per
// §4.4. It is a single-use tokenizing state machine: construct one with
// newTextParser and call parse once.
type textParser struct {
	payload    []rune
	pos        int
	start, end time.Duration
	defaultLang language.Tag

	roots      []Node
	stack      []entry
	text       strings.Builder
	lastStamp  int
	haveStamp  bool
}

// ParseText tokenizes a cue's textual payload into its cue-text tree and
// applies language-context inheritance to the result, per §4.4's final
// step. start and end bound the cue's timings, constraining any inline
// timestamp tags; defaultLang is used where no Language ancestor applies.
func ParseText(payload []rune, start, end time.Duration, defaultLang language.Tag) []Node {
	p := &textParser{payload: payload, start: start, end: end, defaultLang: defaultLang, lastStamp: -1}
	p.parse()
	for _, n := range p.roots {
		inheritLanguage(n, defaultLang)
	}
	return p.roots
}

func (p *textParser) parse() {
	for p.pos < len(p.payload) {
		c := p.payload[p.pos]
		switch c {
		case '&':
			p.consumeEntity()
		case '<':
			p.consumeTag()
		default:
			p.text.WriteRune(c)
			p.pos++
		}
	}
	p.flushText()
}

func (p *textParser) append(n Node) {
	if len(p.stack) > 0 {
		p.stack[len(p.stack)-1].node.appendChild(n)
		return
	}
	p.roots = append(p.roots, n)
}

func (p *textParser) flushText() {
	if p.text.Len() == 0 {
		return
	}
	p.append(&Text{Value: p.text.String()})
	p.text.Reset()
}

// consumeEntity handles a "&" at p.pos: a named or numeric character
// reference, or (absent a terminating ";") a literal ampersand.
func (p *textParser) consumeEntity() {
	const maxRefLen = 32
	j := p.pos + 1
	for j < len(p.payload) && j-p.pos <= maxRefLen && p.payload[j] != ';' && p.payload[j] != '&' && !parseutil.IsSpace(p.payload[j]) && p.payload[j] != '<' {
		j++
	}
	if j >= len(p.payload) || p.payload[j] != ';' || j == p.pos+1 {
		p.text.WriteRune('&')
		p.pos++
		return
	}
	name := string(p.payload[p.pos+1 : j])
	if r, ok := resolveReference(name); ok {
		p.text.WriteRune(r)
	} else {
		p.text.WriteString("&" + name + ";")
	}
	p.pos = j + 1
}

func resolveReference(name string) (rune, bool) {
	if strings.HasPrefix(name, "#") {
		digits := name[1:]
		base := 10
		if strings.HasPrefix(digits, "x") || strings.HasPrefix(digits, "X") {
			digits = digits[1:]
			base = 16
		}
		cp, err := strconv.ParseUint(digits, base, 32)
		if err != nil || digits == "" {
			return 0, false
		}
		return entity.ResolveNumeric(uint32(cp)), true
	}
	return entity.ResolveNamed(name)
}

// consumeTag handles a "<" at p.pos: a start tag, end tag, or bare
// timestamp tag. An unterminated "<" (no matching ">") is literal text.
func (p *textParser) consumeTag() {
	close := indexRune(p.payload, p.pos, '>')
	if close < 0 {
		p.text.WriteRune('<')
		p.pos++
		return
	}
	body := string(p.payload[p.pos+1 : close])
	p.pos = close + 1

	switch {
	case strings.HasPrefix(body, "/"):
		p.closeTag(strings.TrimSpace(body[1:]))
	case len(body) > 0 && parseutil.IsDigit(rune(body[0])):
		p.openTimestamp(body)
	default:
		p.openStartTag(body)
	}
}

func indexRune(s []rune, from int, r rune) int {
	for i := from; i < len(s); i++ {
		if s[i] == r {
			return i
		}
	}
	return -1
}

// closeTag closes the nearest open node with the given tag name, and any
// unclosed nodes above it. An unmatched end tag is ignored outright: it
// does not even flush pending text, so text before and after it stays
// contiguous in the tree.
func (p *textParser) closeTag(name string) {
	for i := len(p.stack) - 1; i >= 0; i-- {
		if p.stack[i].tag == name {
			p.flushText()
			p.stack = p.stack[:i]
			return
		}
	}
}

func (p *textParser) openTimestamp(body string) {
	ms, pos, ok := parseutil.ParseTimestamp([]rune(body), 0)
	if !ok || pos != len([]rune(body)) {
		return
	}
	ts := time.Duration(ms) * time.Millisecond
	if ts <= p.start || ts >= p.end {
		return
	}
	if p.haveStamp && ms <= p.lastStamp {
		return
	}
	p.flushText()
	p.append(&Timestamp{Value: ms})
	p.lastStamp = ms
	p.haveStamp = true
}

func (p *textParser) openStartTag(body string) {
	name := body
	rest := ""
	if idx := strings.IndexByte(body, ' '); idx >= 0 {
		name = body[:idx]
		rest = body[idx+1:]
	}
	name = strings.TrimSpace(name)

	if name == "rt" && (len(p.stack) == 0 || p.stack[len(p.stack)-1].tag != "ruby") {
		return
	}

	var annotation string
	var classes []string
	if rest != "" {
		parts := strings.Split(rest, ".")
		annotation = parts[0]
		classes = parts[1:]
	}

	node, ok := newNode(name, classes, annotation)
	if !ok {
		return
	}
	p.flushText()
	p.append(node)
	p.stack = append(p.stack, entry{tag: name, node: node})
}

func newNode(name string, classes []string, annotation string) (container, bool) {
	base := Internal{Classes: classes}
	switch name {
	case "b":
		return &Bold{Internal: base}, true
	case "i":
		return &Italic{Internal: base}, true
	case "u":
		return &Underline{Internal: base}, true
	case "ruby":
		return &Ruby{Internal: base}, true
	case "rt":
		return &RubyText{Internal: base}, true
	case "v":
		return &Voice{Internal: base, Annotation: annotation}, true
	case "c":
		return &Class{Internal: base}, true
	case "lang":
		tag, err := language.Parse(annotation)
		if err != nil {
			return nil, false
		}
		return &Language{Internal: base, Tag: tag}, true
	}
	return nil, false
}

// inheritLanguage walks the tree assigning each internal node the
// language context of its nearest Language ancestor, or def if it has
// none.
func inheritLanguage(n Node, def language.Tag) {
	c, ok := n.(container)
	if !ok {
		return
	}
	in := c.internal()
	if lang, ok := n.(*Language); ok {
		def = lang.Tag
	}
	in.Lang = def
	for _, child := range in.Children {
		inheritLanguage(child, def)
	}
}
