// Package preprocess normalizes a decoded codepoint stream: line
// terminators are collapsed to LF and the codepoints WebVTT forbids are
// replaced with the Unicode replacement character.
package preprocess

import (
	"context"

	"webvtt.im/webvtt/internal/buffer"
)

// defaultReadSize is how many codepoints Run asks the input buffer for
// per iteration. It does not need to line up with any chunk size
// upstream: Process is chunk-shape agnostic beyond its one bit of
// cross-call state.
const defaultReadSize = 64

// Run reads codepoints from in, normalizes them, and writes the result to
// out, marking out ended once in is drained. It is meant to be the body
// of the preprocessor stage's goroutine.
func Run(ctx context.Context, in, out *buffer.SyncBuffer[rune]) {
	defer out.SetEnded()
	p := New()
	for {
		chunk, ok := in.ReadMultiple(ctx, defaultReadSize)
		if !ok {
			return
		}
		normalized := p.Process(chunk, in.Ended())
		if len(normalized) > 0 {
			out.WriteMultiple(ctx, normalized)
		}
	}
}

const (
	nul         rune = 0x0000
	lf          rune = 0x000A
	cr          rune = 0x000D
	fffd        rune = 0xFFFD
	illegalFFFF rune = 0xFFFF
)

// Preprocessor normalizes chunks of codepoints as they arrive from the
// decoder. It carries exactly one bit of state across chunks: whether the
// previous chunk ended in an as-yet-unpaired CR.
//
// Process mirrors the incremental, atEOF-flagged shape of
// golang.org/x/text/transform.Transformer's Transform method and Reset
// mirrors Transformer.Reset, but Preprocessor does not implement that
// interface: it operates on already-decoded runes, not bytes.
type Preprocessor struct {
	lastReadCR bool
}

// New returns a Preprocessor ready to process the first chunk of a stream.
func New() *Preprocessor {
	return &Preprocessor{}
}

// Reset clears cross-chunk state, as if the next call to Process were
// processing the first chunk of a new stream.
func (p *Preprocessor) Reset() {
	p.lastReadCR = false
}

// Process normalizes one chunk of codepoints, returning the normalized
// result. atEOF is accepted for symmetry with transform.Transformer but
// does not change behavior: a trailing lone CR is always valid pending
// state, since the source may yet supply a paired LF.
func (p *Preprocessor) Process(chunk []rune, atEOF bool) []rune {
	_ = atEOF
	if len(chunk) == 0 {
		return nil
	}

	if p.lastReadCR && chunk[0] == lf {
		chunk = chunk[1:]
	}
	p.lastReadCR = len(chunk) > 0 && chunk[len(chunk)-1] == cr
	if len(chunk) == 0 {
		return nil
	}

	out := make([]rune, 0, len(chunk))
	for i := 0; i < len(chunk); i++ {
		c := chunk[i]
		switch {
		case c == nul || c == illegalFFFF:
			out = append(out, fffd)
		case c == cr:
			out = append(out, lf)
			if i+1 < len(chunk) && chunk[i+1] == lf {
				i++ // CRLF pair collapses to the single LF just appended.
			}
		default:
			out = append(out, c)
		}
	}
	return out
}
