// Package cue implements Cue, its settings and cue-text tree types, and
// the two parsers that build them from a block's raw lines: ParseTimings
// for the "-->" line and ParseText for the payload.
package cue

import (
	"time"

	"golang.org/x/text/language"

	"webvtt.im/webvtt/region"
)

// Cue is a single timed text block: an optional id, its timings and
// settings, and the cue-text tree parsed from its payload. Cue owns its
// tree exclusively; Region is a non-owning back-reference resolved
// against the region output buffer at parse time, nil if unresolved.
type Cue struct {
	ID       string
	Start    time.Duration
	End      time.Duration
	Settings Settings
	Region   *region.Region
	Text     []Node
}

// Parse builds a Cue from its id line (empty if the block had none), its
// "-->" timings line, its payload lines (already joined with LF, per
// §4.3), the regions collected so far, and the language the cue-text
// parser falls back to absent an in-tree <lang> ancestor.
func Parse(id string, timingsLine []rune, payload []rune, regions map[string]*region.Region, defaultLang language.Tag) (Cue, bool) {
	start, end, settings, resolvedRegion, ok := ParseTimings(timingsLine, regions)
	if !ok {
		return Cue{}, false
	}
	return Cue{
		ID:       id,
		Start:    start,
		End:      end,
		Settings: settings,
		Region:   resolvedRegion,
		Text:     ParseText(payload, start, end, defaultLang),
	}, true
}
