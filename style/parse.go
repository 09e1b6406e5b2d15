package style

import (
	"strings"

	"golang.org/x/text/language"

	"webvtt.im/webvtt/internal/parseutil"
)

// ParseSheet parses a STYLE block's body (the lines after the literal
// "STYLE" sentinel) into a list of rules. A rule is
// "selector-list { declaration-list }"; malformed rules are skipped
// without aborting the rest of the sheet, per §4.6.
func ParseSheet(body string) Sheet {
	var rules Sheet
	i := 0
	for i < len(body) {
		open := strings.IndexByte(body[i:], '{')
		if open < 0 {
			break
		}
		selectorPart := strings.TrimSpace(body[i : i+open])
		i += open + 1

		close := strings.IndexByte(body[i:], '}')
		if close < 0 {
			break // unterminated rule: nothing more to recover
		}
		declBody := body[i : i+close]
		i += close + 1

		if selectorPart == "" {
			continue
		}
		decls := parseDeclarations(declBody)
		for _, raw := range strings.Split(selectorPart, ",") {
			sel, ok := parseSelector(strings.TrimSpace(raw))
			if !ok {
				continue
			}
			rules = append(rules, Rule{Selector: sel, Declarations: decls})
		}
	}
	return rules
}

func parseDeclarations(body string) []Declaration {
	var decls []Declaration
	for _, stmt := range strings.Split(body, ";") {
		prop, value, ok := parseutil.SplitAroundChar(stmt, ':')
		if !ok {
			continue
		}
		prop = strings.TrimSpace(prop)
		value = strings.TrimSpace(value)
		if prop == "" || value == "" {
			continue
		}
		decls = append(decls, Declaration{Property: prop, Value: value})
	}
	return decls
}

func parseSelector(s string) (Selector, bool) {
	if s == "::cue" {
		return &MatchAll{}, true
	}
	if strings.HasPrefix(s, "::cue(") && strings.HasSuffix(s, ")") {
		return parseDescendantChain(s[len("::cue(") : len(s)-1])
	}
	return nil, false
}

func parseDescendantChain(inner string) (Selector, bool) {
	fields := strings.Fields(inner)
	if len(fields) == 0 {
		return nil, false
	}
	selectors := make([]Selector, len(fields))
	for i, f := range fields {
		sel, ok := parseCompound(f)
		if !ok {
			return nil, false
		}
		selectors[i] = sel
	}
	result := selectors[len(selectors)-1]
	for i := len(selectors) - 2; i >= 0; i-- {
		result = &Combinator{Ancestor: selectors[i], Descendant: result}
	}
	return result, true
}

func parseCompound(tok string) (Selector, bool) {
	var frags []Selector
	i := 0
	for i < len(tok) {
		switch tok[i] {
		case '.':
			j := identEnd(tok, i+1)
			if j == i+1 {
				return nil, false
			}
			frags = append(frags, &Class{Name: tok[i+1 : j]})
			i = j
		case '#':
			j := identEnd(tok, i+1)
			if j == i+1 {
				return nil, false
			}
			frags = append(frags, &ID{Name: tok[i+1 : j]})
			i = j
		case '[':
			end := strings.IndexByte(tok[i:], ']')
			if end < 0 {
				return nil, false
			}
			sel, ok := parseAttr(tok[i+1 : i+end])
			if !ok {
				return nil, false
			}
			frags = append(frags, sel)
			i += end + 1
		default:
			j := identEnd(tok, i)
			if j == i {
				return nil, false
			}
			kind, ok := elementKind(tok[i:j])
			if !ok {
				return nil, false
			}
			frags = append(frags, &Type{Kind: kind})
			i = j
		}
	}
	switch len(frags) {
	case 0:
		return nil, false
	case 1:
		return frags[0], true
	default:
		return &Compound{Selectors: frags}, true
	}
}

func identEnd(s string, i int) int {
	for i < len(s) && (isIdentByte(s[i])) {
		i++
	}
	return i
}

func isIdentByte(b byte) bool {
	return b == '-' || b == '_' ||
		(b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || (b >= '0' && b <= '9')
}

func parseAttr(attr string) (Selector, bool) {
	name, value, ok := parseutil.SplitAroundChar(attr, '=')
	if !ok {
		return nil, false
	}
	value = strings.Trim(value, `"`)
	switch name {
	case "voice":
		return &Voice{Annotation: value}, true
	case "lang":
		tag, err := language.Parse(value)
		if err != nil {
			return nil, false
		}
		return &Language{Tag: tag}, true
	}
	return nil, false
}

func elementKind(name string) (ElementKind, bool) {
	switch name {
	case "b":
		return KindBold, true
	case "i":
		return KindItalic, true
	case "u":
		return KindUnderline, true
	case "ruby":
		return KindRuby, true
	case "rt":
		return KindRubyText, true
	case "v":
		return KindVoice, true
	case "c":
		return KindClass, true
	case "lang":
		return KindLanguage, true
	}
	return 0, false
}
