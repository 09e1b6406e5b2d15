package cue

import (
	"strings"
	"time"

	"webvtt.im/webvtt/internal/parseutil"
	"webvtt.im/webvtt/region"
)

// ParseTimings parses a cue's "-->" line: the start and end timestamps and
// any trailing "name:value" settings. Unrecognized or malformed settings
// are silently dropped rather than treated as fatal, per §4.3. regions
// resolves a "region:" setting's id against already-collected regions
// (region blocks only ever precede the first cue, so by the time a cue is
// parsed every region that could apply has already been emitted).
func ParseTimings(line []rune, regions map[string]*region.Region) (start, end time.Duration, settings Settings, resolved *region.Region, ok bool) {
	pos := parseutil.SkipSpace(line, 0)
	startMS, pos, ok := parseutil.ParseTimestamp(line, pos)
	if !ok {
		return 0, 0, Settings{}, nil, false
	}
	pos = parseutil.SkipSpace(line, pos)
	if !hasPrefixAt(line, pos, "-->") {
		return 0, 0, Settings{}, nil, false
	}
	pos += 3
	pos = parseutil.SkipSpace(line, pos)
	endMS, pos, ok := parseutil.ParseTimestamp(line, pos)
	if !ok {
		return 0, 0, Settings{}, nil, false
	}

	settings = DefaultSettings()
	var regionID string
	for _, tok := range fields(line[pos:]) {
		name, value, ok := parseutil.SplitAroundChar(tok, ':')
		if !ok {
			continue
		}
		switch name {
		case "region":
			regionID = value
		case "vertical":
			applyVertical(&settings, value)
		case "line":
			applyLine(&settings, value)
		case "position":
			applyPosition(&settings, value)
		case "size":
			applySize(&settings, value)
		case "align":
			applyAlign(&settings, value)
		}
	}
	settings.Region = regionID
	if regionID != "" {
		resolved = regions[regionID]
	}

	return time.Duration(startMS) * time.Millisecond, time.Duration(endMS) * time.Millisecond, settings, resolved, true
}

func hasPrefixAt(s []rune, pos int, prefix string) bool {
	p := []rune(prefix)
	if pos+len(p) > len(s) {
		return false
	}
	for i, r := range p {
		if s[pos+i] != r {
			return false
		}
	}
	return true
}

// fields splits s on runs of WebVTT whitespace, discarding empty tokens.
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

func applyVertical(s *Settings, value string) {
	switch value {
	case "rl":
		s.Vertical = VerticalRL
	case "lr":
		s.Vertical = VerticalLR
	}
}

func parseAlignKeyword(value string, allowLeftRight bool) (Align, bool) {
	switch value {
	case "start":
		return AlignStart, true
	case "center":
		return AlignCenter, true
	case "end":
		return AlignEnd, true
	case "left":
		if allowLeftRight {
			return AlignLeft, true
		}
	case "right":
		if allowLeftRight {
			return AlignRight, true
		}
	}
	return 0, false
}

func applyLine(s *Settings, value string) {
	numPart, alignPart, hasAlign := parseutil.SplitAroundChar(value, ',')
	if !hasAlign {
		numPart = value
	}
	var line Line
	if strings.HasSuffix(numPart, "%") {
		pct, ok := parseutil.ParsePercentage(strings.TrimSuffix(numPart, "%"))
		if !ok || pct < 0 || pct > 100 {
			return
		}
		line.Percentage = true
		line.Value = pct
	} else {
		n, ok := parseutil.ParseFloat(numPart)
		if !ok || n != float64(int(n)) {
			return
		}
		line.Value = n
	}
	if hasAlign {
		align, ok := parseAlignKeyword(alignPart, false)
		if !ok {
			return
		}
		line.HasAlignment = true
		line.Alignment = align
	}
	s.Line = line
}

func applyPosition(s *Settings, value string) {
	numPart, alignPart, hasAlign := parseutil.SplitAroundChar(value, ',')
	if !hasAlign {
		numPart = value
	}
	if !strings.HasSuffix(numPart, "%") {
		return
	}
	pct, ok := parseutil.ParsePercentage(strings.TrimSuffix(numPart, "%"))
	if !ok || pct < 0 || pct > 100 {
		return
	}
	var pos Position
	pos.Value = pct
	if hasAlign {
		align, ok := parseAlignKeyword(alignPart, false)
		if !ok {
			return
		}
		pos.HasAlignment = true
		pos.Alignment = align
	}
	s.Position = pos
}

func applySize(s *Settings, value string) {
	if !strings.HasSuffix(value, "%") {
		return
	}
	pct, ok := parseutil.ParsePercentage(strings.TrimSuffix(value, "%"))
	if !ok || pct < 0 || pct > 100 {
		return
	}
	s.Size = pct
}

func applyAlign(s *Settings, value string) {
	align, ok := parseAlignKeyword(value, true)
	if !ok {
		return
	}
	s.Align = align
}
