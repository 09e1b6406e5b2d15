package style

import "testing"

func TestParseSheetMatchAll(t *testing.T) {
	rules := ParseSheet(`::cue { color: red; background-color: papayawhip; }`)
	if len(rules) != 1 {
		t.Fatalf("got %d rules, want 1", len(rules))
	}
	if _, ok := rules[0].Selector.(*MatchAll); !ok {
		t.Fatalf("selector = %#v, want *MatchAll", rules[0].Selector)
	}
	want := []Declaration{{Property: "color", Value: "red"}, {Property: "background-color", Value: "papayawhip"}}
	if len(rules[0].Declarations) != len(want) {
		t.Fatalf("declarations = %#v", rules[0].Declarations)
	}
	for i, d := range want {
		if rules[0].Declarations[i] != d {
			t.Errorf("decl[%d] = %#v, want %#v", i, rules[0].Declarations[i], d)
		}
	}
}

func TestParseSheetSelectorList(t *testing.T) {
	rules := ParseSheet(`::cue(b), ::cue(i) { font-weight: bold; }`)
	if len(rules) != 2 {
		t.Fatalf("got %d rules, want 2", len(rules))
	}
	first, ok := rules[0].Selector.(*Type)
	if !ok || first.Kind != KindBold {
		t.Errorf("rules[0].Selector = %#v, want Type{KindBold}", rules[0].Selector)
	}
	second, ok := rules[1].Selector.(*Type)
	if !ok || second.Kind != KindItalic {
		t.Errorf("rules[1].Selector = %#v, want Type{KindItalic}", rules[1].Selector)
	}
}

func TestParseSheetCompoundSelector(t *testing.T) {
	rules := ParseSheet(`::cue(b.loud) { color: red; }`)
	if len(rules) != 1 {
		t.Fatalf("got %d rules, want 1", len(rules))
	}
	compound, ok := rules[0].Selector.(*Compound)
	if !ok {
		t.Fatalf("selector = %#v, want *Compound", rules[0].Selector)
	}
	if len(compound.Selectors) != 2 {
		t.Fatalf("compound has %d parts, want 2", len(compound.Selectors))
	}
	if typ, ok := compound.Selectors[0].(*Type); !ok || typ.Kind != KindBold {
		t.Errorf("compound.Selectors[0] = %#v, want Type{KindBold}", compound.Selectors[0])
	}
	if cls, ok := compound.Selectors[1].(*Class); !ok || cls.Name != "loud" {
		t.Errorf("compound.Selectors[1] = %#v, want Class{loud}", compound.Selectors[1])
	}
}

func TestParseSheetDescendantCombinator(t *testing.T) {
	rules := ParseSheet(`::cue(ruby rt) { color: blue; }`)
	if len(rules) != 1 {
		t.Fatalf("got %d rules, want 1", len(rules))
	}
	comb, ok := rules[0].Selector.(*Combinator)
	if !ok {
		t.Fatalf("selector = %#v, want *Combinator", rules[0].Selector)
	}
	if a, ok := comb.Ancestor.(*Type); !ok || a.Kind != KindRuby {
		t.Errorf("Ancestor = %#v, want Type{KindRuby}", comb.Ancestor)
	}
	if d, ok := comb.Descendant.(*Type); !ok || d.Kind != KindRubyText {
		t.Errorf("Descendant = %#v, want Type{KindRubyText}", comb.Descendant)
	}
}

func TestParseSheetVoiceAndLanguage(t *testing.T) {
	rules := ParseSheet(`::cue([voice="Bob"]) { color: blue; } ::cue([lang="es"]) { color: green; }`)
	if len(rules) != 2 {
		t.Fatalf("got %d rules, want 2", len(rules))
	}
	v, ok := rules[0].Selector.(*Voice)
	if !ok || v.Annotation != "Bob" {
		t.Errorf("rules[0].Selector = %#v, want Voice{Bob}", rules[0].Selector)
	}
	l, ok := rules[1].Selector.(*Language)
	if !ok || l.Tag.String() != "es" {
		t.Errorf("rules[1].Selector = %#v, want Language{es}", rules[1].Selector)
	}
}

func TestParseSheetMalformedRuleSkipped(t *testing.T) {
	rules := ParseSheet(`::cue(nope) { color: red; } ::cue { color: blue; }`)
	if len(rules) != 1 {
		t.Fatalf("got %d rules, want 1 (malformed first rule dropped): %#v", len(rules), rules)
	}
	if _, ok := rules[0].Selector.(*MatchAll); !ok {
		t.Errorf("surviving rule selector = %#v, want *MatchAll", rules[0].Selector)
	}
}

func TestParseSheetUnterminatedRuleStopsParsing(t *testing.T) {
	rules := ParseSheet(`::cue { color: red`)
	if len(rules) != 0 {
		t.Fatalf("got %d rules, want 0", len(rules))
	}
}

func TestParseSheetEmptyDeclarationsAllowed(t *testing.T) {
	rules := ParseSheet(`::cue { }`)
	if len(rules) != 1 {
		t.Fatalf("got %d rules, want 1", len(rules))
	}
	if len(rules[0].Declarations) != 0 {
		t.Errorf("declarations = %#v, want empty", rules[0].Declarations)
	}
}
