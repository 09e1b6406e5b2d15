// Package block implements the BlockCollector: it reads the normalized
// codepoint stream, classifies each block as a cue, a region, a style
// sheet, a comment, or an unrecognized stray, and dispatches the
// classified payload to the matching object parser, per §4.3.
package block

import (
	"context"
	"errors"
	"strings"

	"golang.org/x/text/language"

	"webvtt.im/webvtt/cue"
	"webvtt.im/webvtt/internal/buffer"
	"webvtt.im/webvtt/internal/parseutil"
	"webvtt.im/webvtt/region"
	"webvtt.im/webvtt/style"
)

// ErrBadSignature is returned when the input does not begin with the
// WEBVTT magic and its required trailing whitespace.
var ErrBadSignature = errors.New("webvtt: missing or malformed WEBVTT signature")

// Kind classifies a collected block.
type Kind int

// Block kinds. None covers both a NOTE comment and any stray block this
// collector could not classify; both are dropped without dispatch.
const (
	KindNone Kind = iota
	KindCue
	KindRegion
	KindStyle
)

type collected struct {
	kind    Kind
	id      string
	timings []rune
	lines   [][]rune
}

// Collector drives the block loop. Construct one with New per input
// stream; Run consumes it to completion or until ctx is done.
type Collector struct {
	in          *buffer.SyncBuffer[rune]
	cuesOut     *buffer.SyncBuffer[cue.Cue]
	regionsOut  *buffer.SyncBuffer[*region.Region]
	sheetsOut   *buffer.SyncBuffer[style.Sheet]
	defaultLang language.Tag

	regions map[string]*region.Region
	seenCue bool

	onFatal func(error)
}

// New constructs a Collector reading normalized codepoints from in and
// writing classified objects to the three given output buffers.
// defaultLang is the language-inheritance root for every cue's text tree.
func New(in *buffer.SyncBuffer[rune], cues *buffer.SyncBuffer[cue.Cue], regions *buffer.SyncBuffer[*region.Region], sheets *buffer.SyncBuffer[style.Sheet], defaultLang language.Tag) *Collector {
	return &Collector{
		in:          in,
		cuesOut:     cues,
		regionsOut:  regions,
		sheetsOut:   sheets,
		defaultLang: defaultLang,
		regions:     make(map[string]*region.Region),
	}
}

// OnFatal registers f to be called synchronously with the terminal error,
// strictly before any output buffer is marked ended. A caller that records
// the error for later inspection (e.g. Parser.Err) must use this hook
// rather than reading Run's return value after the fact: since Run ends
// the output buffers itself, a consumer racing against Run could otherwise
// observe end-of-input before the error became visible.
func (c *Collector) OnFatal(f func(error)) {
	c.onFatal = f
}

// Run consumes the preamble, then repeatedly collects and dispatches
// blocks until the input ends. It always marks all three output buffers
// ended before returning, whether it returns an error or not.
func (c *Collector) Run(ctx context.Context) error {
	if err := c.consumePreamble(ctx); err != nil {
		if c.onFatal != nil {
			c.onFatal(err)
		}
		c.endAll()
		return err
	}
	c.skipBlankLines(ctx)

	for {
		blk, ok := c.collectBlock(ctx)
		if !ok {
			break
		}
		c.dispatch(ctx, blk)
		c.skipBlankLines(ctx)
	}
	c.endAll()
	return nil
}

func (c *Collector) endAll() {
	c.cuesOut.SetEnded()
	if !c.regionsOut.Ended() {
		c.regionsOut.SetEnded()
	}
	if !c.sheetsOut.Ended() {
		c.sheetsOut.SetEnded()
	}
}

// consumePreamble checks the WEBVTT magic and required trailing
// whitespace, then discards the rest of the signature line and, if one
// follows, an entire cue-less header block.
func (c *Collector) consumePreamble(ctx context.Context) error {
	magic := make([]rune, 0, 6)
	for len(magic) < 6 {
		r, ok := c.in.ReadOne(ctx)
		if !ok {
			return ErrBadSignature
		}
		magic = append(magic, r)
	}
	if string(magic) != "WEBVTT" {
		return ErrBadSignature
	}
	next, ok := c.in.ReadOne(ctx)
	if !ok {
		return ErrBadSignature
	}
	if next != ' ' && next != '\t' && next != '\n' {
		return ErrBadSignature
	}
	if next == '\n' {
		return nil
	}

	if _, ok := c.readLine(ctx); !ok {
		return nil
	}
	r, ok := c.in.PeekOne(ctx)
	if !ok || r == '\n' {
		return nil
	}
	for {
		line, ok := c.readLine(ctx)
		if !ok || len(line) == 0 {
			return nil
		}
	}
}

// skipBlankLines consumes a run of blank lines, i.e. bare LFs, the way
// §4.3 separates blocks and follows the preamble.
func (c *Collector) skipBlankLines(ctx context.Context) {
	for {
		r, ok := c.in.PeekOne(ctx)
		if !ok || r != '\n' {
			return
		}
		c.in.ReadOne(ctx)
	}
}

func (c *Collector) readLine(ctx context.Context) ([]rune, bool) {
	return c.in.ReadUntil(ctx, func(r rune) bool { return r == '\n' })
}

// collectBlock implements the block loop's per-block state machine. An
// arrow line that turns out to belong to the next block (§4.3's rewind
// case) restarts classification from the rewound position rather than
// surfacing as a result; ok is false only once the input truly has no
// further block to offer.
func (c *Collector) collectBlock(ctx context.Context) (collected, bool) {
	for {
		result, ok, retry := c.collectOnce(ctx)
		if retry {
			continue
		}
		return result, ok
	}
}

// collectOnce runs one attempt at the block state machine. retry is true
// only for the rewind case, in which case the read cursor has already
// been reset and the caller should try again.
func (c *Collector) collectOnce(ctx context.Context) (result collected, ok bool, retry bool) {
	var buf [][]rune
	lineCount := 0
	seenArrow := false
	prevPos := c.in.Position()

	for {
		line, readOK := c.readLine(ctx)
		if !readOK {
			break
		}
		lineCount++

		switch {
		case parseutil.ContainsArrow(line):
			if result.kind == KindNone && (lineCount == 1 || (lineCount == 2 && !seenArrow)) {
				result.kind = KindCue
				seenArrow = true
				result.timings = line
				if lineCount == 2 {
					result.id = joinLines(buf)
				}
				buf = nil
				continue
			}
			if result.kind == KindNone {
				c.in.SetPosition(prevPos)
				return collected{}, false, true
			}
			buf = append(buf, line)
			prevPos = c.in.Position()

		case len(line) == 0:
			result.lines = buf
			return result, result.kind != KindNone || len(buf) > 0, false

		default:
			if result.kind == KindNone && lineCount == 2 && !c.seenCue {
				first := string(parseutil.Strip(buf[0]))
				switch {
				case strings.HasPrefix(first, "STYLE"):
					result.kind = KindStyle
					buf = nil
				case strings.HasPrefix(first, "REGION"):
					result.kind = KindRegion
					buf = nil
				case strings.HasPrefix(first, "NOTE"):
					buf = nil
				}
			}
			buf = append(buf, line)
			prevPos = c.in.Position()
		}
	}

	result.lines = buf
	return result, result.kind != KindNone || len(buf) > 0, false
}

func (c *Collector) dispatch(ctx context.Context, blk collected) {
	switch blk.kind {
	case KindCue:
		parsed, ok := cue.Parse(blk.id, blk.timings, joinRunes(blk.lines), c.regions, c.defaultLang)
		if !ok {
			return
		}
		c.cuesOut.WriteOne(ctx, parsed)
		if !c.seenCue {
			c.seenCue = true
			if !c.regionsOut.Ended() {
				c.regionsOut.SetEnded()
			}
			if !c.sheetsOut.Ended() {
				c.sheetsOut.SetEnded()
			}
		}
	case KindRegion:
		if c.seenCue {
			return
		}
		r := region.ParseBlock(blk.lines)
		if r.ID != "" {
			c.regions[r.ID] = r
		}
		c.regionsOut.WriteOne(ctx, r)
	case KindStyle:
		if c.seenCue {
			return
		}
		c.sheetsOut.WriteOne(ctx, style.ParseSheet(joinLines(blk.lines)))
	}
}

func joinLines(lines [][]rune) string {
	strs := make([]string, len(lines))
	for i, l := range lines {
		strs[i] = string(l)
	}
	return strings.Join(strs, "\n")
}

func joinRunes(lines [][]rune) []rune {
	return []rune(joinLines(lines))
}
