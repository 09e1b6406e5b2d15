package cue

import "golang.org/x/text/language"

// Node is implemented by every cue-text tree element. The variant set is
// closed (see Design Notes): callers exhaustively switch on concrete types
// or implement Visitor, rather than the tree growing new implementations
// outside this package.
type Node interface {
	Accept(v Visitor)
	node()
}

// Internal is embedded by every internal (non-leaf) node variant. It
// carries the attributes §3 assigns to internal nodes: children, an
// optional class list, and the resolved language context (the nearest
// ancestor Language tag, or the parser's default if there is none).
type Internal struct {
	Classes  []string
	Children []Node
	Lang     language.Tag
}

func (n *Internal) appendChild(c Node) {
	n.Children = append(n.Children, c)
}

func (n *Internal) internal() *Internal {
	return n
}

// container is implemented by every internal node variant so the text
// parser can append children and walk/patch their Internal fields (class
// list, children, language context) without a type switch per tag.
type container interface {
	Node
	appendChild(Node)
	internal() *Internal
}

// Bold is the <b> internal node.
type Bold struct{ Internal }

func (n *Bold) node()              {}
func (n *Bold) Accept(v Visitor)   { v.VisitBold(n) }

// Italic is the <i> internal node.
type Italic struct{ Internal }

func (n *Italic) node()            {}
func (n *Italic) Accept(v Visitor) { v.VisitItalic(n) }

// Underline is the <u> internal node.
type Underline struct{ Internal }

func (n *Underline) node()            {}
func (n *Underline) Accept(v Visitor) { v.VisitUnderline(n) }

// Ruby is the <ruby> internal node. Its only valid RubyText children are
// direct children, never further nested.
type Ruby struct{ Internal }

func (n *Ruby) node()            {}
func (n *Ruby) Accept(v Visitor) { v.VisitRuby(n) }

// RubyText is the <rt> internal node. It is only ever constructed as a
// child of a Ruby node; the text parser drops <rt> tags encountered
// anywhere else.
type RubyText struct{ Internal }

func (n *RubyText) node()            {}
func (n *RubyText) Accept(v Visitor) { v.VisitRubyText(n) }

// Voice is the <v> internal node. Annotation is the voice name given
// after the tag's first space, e.g. <v Bob>.
type Voice struct {
	Internal
	Annotation string
}

func (n *Voice) node()            {}
func (n *Voice) Accept(v Visitor) { v.VisitVoice(n) }

// Language is the <lang> internal node. Tag is the BCP-47 tag given after
// the tag's first space.
type Language struct {
	Internal
	Tag language.Tag
}

func (n *Language) node()            {}
func (n *Language) Accept(v Visitor) { v.VisitLanguage(n) }

// Class is the <c> internal node; it carries no semantics beyond its
// class list.
type Class struct{ Internal }

func (n *Class) node()            {}
func (n *Class) Accept(v Visitor) { v.VisitClass(n) }

// Text is a leaf node holding a run of plain (already entity-resolved)
// text.
type Text struct {
	Value string
}

func (n *Text) node()            {}
func (n *Text) Accept(v Visitor) { v.VisitText(n) }

// Timestamp is a leaf node produced by an inline <hh:mm:ss.fff> tag. Value
// is strictly between the enclosing cue's Start and End, and strictly
// greater than every Timestamp leaf to its left in the tree.
type Timestamp struct {
	Value int // milliseconds
}

func (n *Timestamp) node()            {}
func (n *Timestamp) Accept(v Visitor) { v.VisitTimestamp(n) }

// Visitor supports double dispatch over every cue-text node variant. New
// passes (style application, rendering) implement Visitor instead of
// modifying the node types.
type Visitor interface {
	VisitBold(*Bold)
	VisitItalic(*Italic)
	VisitUnderline(*Underline)
	VisitRuby(*Ruby)
	VisitRubyText(*RubyText)
	VisitVoice(*Voice)
	VisitLanguage(*Language)
	VisitClass(*Class)
	VisitText(*Text)
	VisitTimestamp(*Timestamp)
}
