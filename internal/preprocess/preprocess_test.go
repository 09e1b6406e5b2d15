package preprocess_test

import (
	"testing"

	"webvtt.im/webvtt/internal/preprocess"
)

func process(chunks ...string) string {
	p := preprocess.New()
	var out []rune
	for i, c := range chunks {
		out = append(out, p.Process([]rune(c), i == len(chunks)-1)...)
	}
	return string(out)
}

func TestLoneCRBecomesLF(t *testing.T) {
	if got := process("a\rb"); got != "a\nb" {
		t.Fatalf("got %q, want %q", got, "a\nb")
	}
}

func TestCRLFCollapsesToSingleLF(t *testing.T) {
	if got := process("a\r\nb"); got != "a\nb" {
		t.Fatalf("got %q, want %q", got, "a\nb")
	}
}

func TestNULAndFFFFReplaced(t *testing.T) {
	in := string([]rune{'a', 0x0000, 'b', 0xFFFF, 'c'})
	want := string([]rune{'a', 0xFFFD, 'b', 0xFFFD, 'c'})
	if got := process(in); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestCRLFSplitAcrossChunks(t *testing.T) {
	if got := process("a\r", "\nb"); got != "a\nb" {
		t.Fatalf("got %q, want %q", got, "a\nb")
	}
}

func TestLoneCRAtChunkEndFollowedByUnrelatedChunk(t *testing.T) {
	if got := process("a\r", "b"); got != "a\nb" {
		t.Fatalf("got %q, want %q", got, "a\nb")
	}
}

func TestMultipleCRLFAcrossManyChunks(t *testing.T) {
	if got := process("line1\r", "\n", "line2\r\n", "line3"); got != "line1\nline2\nline3" {
		t.Fatalf("got %q", got)
	}
}

func TestIdempotentOnNormalizedInput(t *testing.T) {
	once := process("Hello\nWorld\n")
	twice := process(once)
	if once != twice {
		t.Fatalf("P(P(x)) = %q, P(x) = %q", twice, once)
	}
}
