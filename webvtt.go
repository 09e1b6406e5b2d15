// Package webvtt parses the WebVTT (Web Video Text Tracks) format into
// three streamed object kinds: cues, regions, and style sheets. Parsing
// runs across three concurrent stages — byte decoding, codepoint
// normalization, and block collection — connected by blocking,
// end-of-input-aware buffers, so a caller can begin draining cues before
// the whole input has been read.
package webvtt

import (
	"context"
	"io"
	"sync"

	"webvtt.im/webvtt/cue"
	"webvtt.im/webvtt/internal/block"
	"webvtt.im/webvtt/internal/buffer"
	"webvtt.im/webvtt/internal/decode"
	"webvtt.im/webvtt/internal/preprocess"
	"webvtt.im/webvtt/region"
	"webvtt.im/webvtt/style"
)

// Parser reads WebVTT from a byte source and exposes the three resulting
// object streams. Construct one with New, call Start once, and drain
// Cues/Regions/Sheets until each reports no more elements; call Close
// when done to release the background goroutines.
type Parser struct {
	r    io.Reader
	opts options

	decoded    *buffer.SyncBuffer[rune]
	normalized *buffer.SyncBuffer[rune]
	cues       *buffer.SyncBuffer[cue.Cue]
	regions    *buffer.SyncBuffer[*region.Region]
	sheets     *buffer.SyncBuffer[style.Sheet]

	mu      sync.Mutex
	started bool
	cancel  context.CancelFunc
	wg      sync.WaitGroup
	err     error
}

// New constructs a Parser reading from r. Parsing does not begin until
// Start is called.
func New(r io.Reader, opts ...Option) *Parser {
	o := getOpts(opts...)
	limit := o.bufferLimit
	return &Parser{
		r:          r,
		opts:       o,
		decoded:    buffer.New[rune](limit),
		normalized: buffer.New[rune](limit),
		cues:       buffer.New[cue.Cue](limit),
		regions:    buffer.New[*region.Region](limit),
		sheets:     buffer.New[style.Sheet](limit),
	}
}

// Start launches the decode, preprocess, and block-collection stages as
// goroutines bound to ctx. It returns false and does nothing if the
// parser has already been started, matching startParsing's documented
// idempotency.
func (p *Parser) Start(ctx context.Context) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.started {
		return false
	}
	p.started = true

	runCtx, cancel := context.WithCancel(ctx)
	p.cancel = cancel

	p.wg.Add(3)
	go func() {
		defer p.wg.Done()
		decode.Run(runCtx, p.r, p.decoded, p.opts.chunkSize, p.opts.logger)
	}()
	go func() {
		defer p.wg.Done()
		preprocess.Run(runCtx, p.decoded, p.normalized)
	}()
	go func() {
		defer p.wg.Done()
		collector := block.New(p.normalized, p.cues, p.regions, p.sheets, p.opts.lang)
		collector.OnFatal(func(err error) {
			ffe := newFileFormatError(err)
			p.opts.logger.Printf("webvtt: %s", ffe)
			p.mu.Lock()
			p.err = ffe
			p.mu.Unlock()
		})
		collector.Run(runCtx)
	}()

	return true
}

// Err returns the fatal FileFormatError that ended parsing early, if any.
// It is only meaningful after every output buffer has ended; per §7, a
// caller that needs to distinguish clean end-of-input from an aborted
// parse consults this rather than inferring it from buffer state.
func (p *Parser) Err() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.err
}

// Cues returns the cue output buffer.
func (p *Parser) Cues() *buffer.SyncBuffer[cue.Cue] { return p.cues }

// Regions returns the region output buffer. It ends no later than the
// first emitted cue.
func (p *Parser) Regions() *buffer.SyncBuffer[*region.Region] { return p.regions }

// Sheets returns the style-sheet output buffer. It ends no later than the
// first emitted cue.
func (p *Parser) Sheets() *buffer.SyncBuffer[style.Sheet] { return p.sheets }

// Close cancels parsing and joins the background goroutines. It is safe
// to call even if Start was never called or has already returned.
func (p *Parser) Close() error {
	p.mu.Lock()
	started := p.started
	cancel := p.cancel
	p.mu.Unlock()
	if !started {
		return nil
	}
	cancel()
	p.wg.Wait()
	return nil
}
