// Package region implements Region, the named rendering area a cue's
// "region:" setting can refer back to, and its RegionParser.
package region

import (
	"strings"

	"webvtt.im/webvtt/internal/parseutil"
	"webvtt.im/webvtt/style"
)

// Scroll is the region's scroll behavior.
type Scroll int

const (
	// ScrollNone is the default: new lines cut off overflowing text.
	ScrollNone Scroll = iota
	// ScrollUp scrolls existing lines up to make room for new ones.
	ScrollUp
)

// Point is an (x, y) anchor pair, both components percentages in [0,100].
type Point struct {
	X, Y float64
}

// Region is a named rendering area. Width, Lines, Anchor, ViewportAnchor
// and Scroll carry WebVTT's documented defaults until a setting overrides
// them.
type Region struct {
	ID             string
	Width          float64
	Lines          int
	Anchor         Point
	ViewportAnchor Point
	Scroll         Scroll

	shouldApply bool
}

// New returns a Region with every setting at its WebVTT default.
func New() *Region {
	return &Region{
		Width:          100,
		Lines:          3,
		Anchor:         Point{X: 0, Y: 100},
		ViewportAnchor: Point{X: 0, Y: 100},
		Scroll:         ScrollNone,
	}
}

// ParseBlock parses a region block's payload (the lines after the literal
// "REGION" sentinel). Malformed individual settings fall back to their
// default rather than rejecting the block; an id containing "-->" is
// dropped back to the empty default rather than accepted verbatim, so a
// region id can never be confused with a cue timing line.
func ParseBlock(lines [][]rune) *Region {
	r := New()
	for _, line := range lines {
		line = parseutil.Strip(line)
		if len(line) == 0 {
			continue
		}
		for _, tok := range fields(line) {
			name, value, ok := parseutil.SplitAroundChar(tok, ':')
			if !ok {
				continue
			}
			switch name {
			case "id":
				if !strings.Contains(value, "-->") {
					r.ID = value
				}
			case "width":
				applyWidth(r, value)
			case "lines":
				applyLines(r, value)
			case "regionanchor":
				applyPoint(&r.Anchor, value)
			case "viewportanchor":
				applyPoint(&r.ViewportAnchor, value)
			case "scroll":
				if value == "up" {
					r.Scroll = ScrollUp
				} else {
					r.Scroll = ScrollNone
				}
			}
		}
	}
	return r
}

func fields(s []rune) []string {
	var out []string
	i := 0
	for i < len(s) {
		i = parseutil.SkipSpace(s, i)
		start := i
		for i < len(s) && !parseutil.IsSpace(s[i]) {
			i++
		}
		if i > start {
			out = append(out, string(s[start:i]))
		}
	}
	return out
}

func applyWidth(r *Region, value string) {
	if !strings.HasSuffix(value, "%") {
		return
	}
	pct, ok := parseutil.ParsePercentage(strings.TrimSuffix(value, "%"))
	if !ok || pct < 0 || pct > 100 {
		return
	}
	r.Width = pct
}

func applyLines(r *Region, value string) {
	n, ok := parseutil.ParseFloat(value)
	if !ok || n < 0 || n != float64(int(n)) {
		return
	}
	r.Lines = int(n)
}

func applyPoint(p *Point, value string) {
	xs, ys, ok := parseutil.SplitAroundChar(value, ',')
	if !ok {
		return
	}
	if !strings.HasSuffix(xs, "%") || !strings.HasSuffix(ys, "%") {
		return
	}
	x, ok := parseutil.ParsePercentage(strings.TrimSuffix(xs, "%"))
	if !ok || x < 0 || x > 100 {
		return
	}
	y, ok := parseutil.ParsePercentage(strings.TrimSuffix(ys, "%"))
	if !ok || y < 0 || y > 100 {
		return
	}
	p.X, p.Y = x, y
}

// IsShouldApplyLastVisitedStyleSheet reports whether the most recently
// visited selector (via the style.SelectorVisitor methods below) would
// cause its rule's style sheet to apply to this region. CSS-level style
// application is out of scope (§1); every visit method leaves this false,
// mirroring the original implementation's own unfinished selector
// matching.
func (r *Region) IsShouldApplyLastVisitedStyleSheet() bool {
	return r.shouldApply
}

func (r *Region) VisitMatchAll(*style.MatchAll)     { r.shouldApply = false }
func (r *Region) VisitID(*style.ID)                 { r.shouldApply = false }
func (r *Region) VisitClass(*style.Class)           { r.shouldApply = false }
func (r *Region) VisitType(*style.Type)             { r.shouldApply = false }
func (r *Region) VisitLanguage(*style.Language)     { r.shouldApply = false }
func (r *Region) VisitVoice(*style.Voice)           { r.shouldApply = false }
func (r *Region) VisitCompound(*style.Compound)     { r.shouldApply = false }
func (r *Region) VisitCombinator(*style.Combinator) { r.shouldApply = false }

var _ style.SelectorVisitor = (*Region)(nil)
