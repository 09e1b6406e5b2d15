// Package parseutil collects small grammar helpers shared by the cue,
// region, and style-sheet object parsers: whitespace skipping, digit
// collection, timestamp and percentage parsing, and the "key:value"
// splitting used throughout WebVTT's settings syntax. It is a direct port
// of the original implementation's ParserUtil.
package parseutil

import (
	"strconv"
	"strings"
)

// IsSpace reports whether r is WebVTT ASCII or Unicode whitespace, per the
// ranges the original parser recognizes.
func IsSpace(r rune) bool {
	switch {
	case r >= 0x0009 && r <= 0x000D:
		return true
	case r >= 0x2000 && r <= 0x200A:
		return true
	case r == 0x0085, r == 0x0020, r == 0x00A0, r == 0x1680,
		r == 0x2028, r == 0x2029, r == 0x202F, r == 0x205F, r == 0x3000:
		return true
	default:
		return false
	}
}

// IsDigit reports whether r is an ASCII decimal digit.
func IsDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

// SkipSpace advances pos past any run of whitespace, returning the new
// position.
func SkipSpace(s []rune, pos int) int {
	for pos < len(s) && IsSpace(s[pos]) {
		pos++
	}
	return pos
}

// CollectDigits reads a maximal run of ASCII digits starting at pos. ok is
// false if there is no digit at pos.
func CollectDigits(s []rune, pos int) (digits string, newPos int, ok bool) {
	start := pos
	for pos < len(s) && IsDigit(s[pos]) {
		pos++
	}
	if pos == start {
		return "", start, false
	}
	return string(s[start:pos]), pos, true
}

// ParseTimestamp parses a WebVTT timestamp ("hh:mm:ss.fff" or
// "mm:ss.fff") starting at pos, returning its value in milliseconds and
// the position just past it. The fractional component is always exactly
// three digits.
func ParseTimestamp(s []rune, pos int) (ms int, newPos int, ok bool) {
	start := pos

	d1, pos, ok := CollectDigits(s, pos)
	if !ok || len(d1) < 2 {
		return 0, start, false
	}
	if pos >= len(s) || s[pos] != ':' {
		return 0, start, false
	}
	pos++

	d2, pos, ok := CollectDigits(s, pos)
	if !ok || len(d2) != 2 {
		return 0, start, false
	}

	var hours, minutes, seconds int
	if pos < len(s) && s[pos] == ':' {
		pos++
		d3, p3, ok := CollectDigits(s, pos)
		if !ok || len(d3) != 2 {
			return 0, start, false
		}
		pos = p3
		hours, _ = strconv.Atoi(d1)
		minutes, _ = strconv.Atoi(d2)
		seconds, _ = strconv.Atoi(d3)
	} else {
		minutes, _ = strconv.Atoi(d1)
		seconds, _ = strconv.Atoi(d2)
		if minutes > 59 {
			return 0, start, false
		}
	}
	if seconds > 59 {
		return 0, start, false
	}

	if pos >= len(s) || s[pos] != '.' {
		return 0, start, false
	}
	pos++
	d4, p4, ok := CollectDigits(s, pos)
	if !ok || len(d4) != 3 {
		return 0, start, false
	}
	pos = p4
	millis, _ := strconv.Atoi(d4)

	total := hours*3600000 + minutes*60000 + seconds*1000 + millis
	return total, pos, true
}

// ParseFloat parses a (possibly signed, possibly fractional) decimal
// number, the way the original's parseFloatPointingNumber does by
// deferring to the platform's float parser.
func ParseFloat(s string) (float64, bool) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// ParsePercentage parses a bare number (no trailing "%") as a percentage
// value.
func ParsePercentage(s string) (float64, bool) {
	return ParseFloat(s)
}

// SplitAroundChar splits s at the first occurrence of sep, the way
// splitStringAroundCharacter does: sep itself is not included in either
// half. ok is false if sep does not occur in s.
func SplitAroundChar(s string, sep byte) (key, value string, ok bool) {
	i := strings.IndexByte(s, sep)
	if i < 0 {
		return "", "", false
	}
	return s[:i], s[i+1:], true
}

// ContainsArrow reports whether s contains the WebVTT cue-timing arrow
// "-->".
func ContainsArrow(s []rune) bool {
	return strings.Contains(string(s), "-->")
}

// Strip trims leading and trailing WebVTT whitespace from s.
func Strip(s []rune) []rune {
	start := 0
	for start < len(s) && IsSpace(s[start]) {
		start++
	}
	end := len(s)
	for end > start && IsSpace(s[end-1]) {
		end--
	}
	return s[start:end]
}
