package cue

import (
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// NormalizeNFC returns a copy of a cue-text tree with every Text and Voice
// annotation string normalized to Unicode Normalization Form C. It exists
// for consumers that diff or hash rendered cue text across cues that may
// have arrived pre-composed or decomposed; the parser itself never
// normalizes, since §4 defines cue text in terms of the codepoints
// actually present in the source.
func NormalizeNFC(nodes []Node) []Node {
	out := make([]Node, len(nodes))
	for i, n := range nodes {
		v := &nfcVisitor{}
		n.Accept(v)
		out[i] = v.result
	}
	return out
}

func normalizeNFCString(s string) string {
	out, _, err := transform.String(norm.NFC, s)
	if err != nil {
		return s
	}
	return out
}

type nfcVisitor struct {
	result Node
}

func (v *nfcVisitor) cloneInternal(n Internal) Internal {
	return Internal{
		Classes:  n.Classes,
		Children: NormalizeNFC(n.Children),
		Lang:     n.Lang,
	}
}

func (v *nfcVisitor) VisitBold(n *Bold)           { v.result = &Bold{v.cloneInternal(n.Internal)} }
func (v *nfcVisitor) VisitItalic(n *Italic)       { v.result = &Italic{v.cloneInternal(n.Internal)} }
func (v *nfcVisitor) VisitUnderline(n *Underline) { v.result = &Underline{v.cloneInternal(n.Internal)} }
func (v *nfcVisitor) VisitRuby(n *Ruby)           { v.result = &Ruby{v.cloneInternal(n.Internal)} }
func (v *nfcVisitor) VisitRubyText(n *RubyText)   { v.result = &RubyText{v.cloneInternal(n.Internal)} }
func (v *nfcVisitor) VisitClass(n *Class)         { v.result = &Class{v.cloneInternal(n.Internal)} }

func (v *nfcVisitor) VisitVoice(n *Voice) {
	v.result = &Voice{
		Internal:   v.cloneInternal(n.Internal),
		Annotation: normalizeNFCString(n.Annotation),
	}
}

func (v *nfcVisitor) VisitLanguage(n *Language) {
	v.result = &Language{
		Internal: v.cloneInternal(n.Internal),
		Tag:      n.Tag,
	}
}

func (v *nfcVisitor) VisitText(n *Text) {
	v.result = &Text{Value: normalizeNFCString(n.Value)}
}

func (v *nfcVisitor) VisitTimestamp(n *Timestamp) {
	v.result = &Timestamp{Value: n.Value}
}

var _ Visitor = (*nfcVisitor)(nil)
