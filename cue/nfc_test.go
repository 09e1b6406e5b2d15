package cue

import "testing"

func TestNormalizeNFCComposesDecomposedText(t *testing.T) {
	decomposed := "é" // "e" + combining acute accent
	nodes := []Node{&Text{Value: decomposed}}
	got := NormalizeNFC(nodes)
	text, ok := got[0].(*Text)
	if !ok {
		t.Fatalf("got[0] = %#v, want *Text", got[0])
	}
	want := "é" // precomposed "é"
	if text.Value != want {
		t.Errorf("Value = %q, want %q", text.Value, want)
	}
}

func TestNormalizeNFCPreservesTreeShape(t *testing.T) {
	nodes := []Node{
		&Bold{Internal{Children: []Node{&Text{Value: "é"}}}},
	}
	got := NormalizeNFC(nodes)
	b, ok := got[0].(*Bold)
	if !ok {
		t.Fatalf("got[0] = %#v, want *Bold", got[0])
	}
	if len(b.Children) != 1 {
		t.Fatalf("Children = %#v, want 1 child", b.Children)
	}
	text, ok := b.Children[0].(*Text)
	if !ok {
		t.Fatalf("Children[0] = %#v, want *Text", b.Children[0])
	}
	if text.Value != "é" {
		t.Errorf("Value = %q, want %q", text.Value, "é")
	}
}
