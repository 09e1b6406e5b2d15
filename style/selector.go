// Package style implements the CSS-like selector and declaration grammar
// WebVTT style sheets use to target cue-text nodes. It stores rules; it
// does not implement CSS-level matching or application (out of scope, per
// §1 — the style-application/rendering step is an external collaborator).
package style

import "golang.org/x/text/language"

// ElementKind names one of the cue-text node kinds a type selector
// (::cue(b), ::cue(v), ...) can target.
type ElementKind int

// Element-type selector kinds.
const (
	KindBold ElementKind = iota
	KindItalic
	KindUnderline
	KindRuby
	KindRubyText
	KindVoice
	KindClass
	KindLanguage
)

// Selector is implemented by every selector variant. The variant set is
// closed; see node.go in the cue package for the same tagged-variant
// pattern applied to cue-text nodes.
type Selector interface {
	Accept(v SelectorVisitor)
	selector()
}

// MatchAll is the bare "::cue" selector, matching every cue.
type MatchAll struct{}

func (s *MatchAll) selector()               {}
func (s *MatchAll) Accept(v SelectorVisitor) { v.VisitMatchAll(s) }

// ID is an "#id"-style selector.
type ID struct{ Name string }

func (s *ID) selector()               {}
func (s *ID) Accept(v SelectorVisitor) { v.VisitID(s) }

// Class is a ".class"-style selector.
type Class struct{ Name string }

func (s *Class) selector()               {}
func (s *Class) Accept(v SelectorVisitor) { v.VisitClass(s) }

// Type is a bare element-type selector, e.g. "::cue(b)".
type Type struct{ Kind ElementKind }

func (s *Type) selector()               {}
func (s *Type) Accept(v SelectorVisitor) { v.VisitType(s) }

// Language is a `[lang="tag"]`-style selector.
type Language struct{ Tag language.Tag }

func (s *Language) selector()               {}
func (s *Language) Accept(v SelectorVisitor) { v.VisitLanguage(s) }

// Voice is a `[voice="name"]`-style selector.
type Voice struct{ Annotation string }

func (s *Voice) selector()               {}
func (s *Voice) Accept(v SelectorVisitor) { v.VisitVoice(s) }

// Compound is a whitespace-free run of selectors that must all match the
// same node, e.g. "b.loud".
type Compound struct{ Selectors []Selector }

func (s *Compound) selector()               {}
func (s *Compound) Accept(v SelectorVisitor) { v.VisitCompound(s) }

// Combinator is a descendant combinator: Descendant must match a node
// that has an ancestor matching Ancestor.
type Combinator struct {
	Ancestor   Selector
	Descendant Selector
}

func (s *Combinator) selector()               {}
func (s *Combinator) Accept(v SelectorVisitor) { v.VisitCombinator(s) }

// SelectorVisitor supports double dispatch over every selector variant.
type SelectorVisitor interface {
	VisitMatchAll(*MatchAll)
	VisitID(*ID)
	VisitClass(*Class)
	VisitType(*Type)
	VisitLanguage(*Language)
	VisitVoice(*Voice)
	VisitCompound(*Compound)
	VisitCombinator(*Combinator)
}

// Declaration is an opaque CSS property/value pair. CSS-level semantics
// (units, cascading, inheritance) are not this parser's concern.
type Declaration struct {
	Property string
	Value    string
}

// Rule pairs one selector with the declarations scoped to it.
type Rule struct {
	Selector     Selector
	Declarations []Declaration
}

// Sheet is the list of rules parsed from one STYLE block.
type Sheet []Rule
