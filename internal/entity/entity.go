// Package entity resolves the HTML character references that can appear
// in cue text: named references such as "&amp;" and numeric references
// such as "&#x2019;". It specifies only the shape and role of the named
// table, not an exhaustive copy of the HTML5 table.
package entity

import (
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// Named maps HTML entity names (without the leading "&" or trailing ";")
// to the codepoint they resolve to. It is not exhaustive; unknown names
// are left for the caller to treat as a literal, per §4.4.
var Named = map[string]rune{
	"amp":    '&',
	"lt":     '<',
	"gt":     '>',
	"quot":   '"',
	"apos":   '\'',
	"nbsp":   0x00A0,
	"lrm":    0x200E,
	"rlm":    0x200F,
	"copy":   0x00A9,
	"reg":    0x00AE,
	"trade":  0x2122,
	"hellip": 0x2026,
	"mdash":  0x2014,
	"ndash":  0x2013,
	"lsquo":  0x2018,
	"rsquo":  0x2019,
	"ldquo":  0x201C,
	"rdquo":  0x201D,
	"laquo":  0x00AB,
	"raquo":  0x00BB,
	"euro":   0x20AC,
}

// ResolveNamed looks up a named character reference. ok is false for
// unknown names, in which case callers fall back to the reference's
// literal text per §4.4 ("unknown references resolve to their literal
// characters").
func ResolveNamed(name string) (r rune, ok bool) {
	r, ok = Named[name]
	return r, ok
}

// ResolveNumeric maps a numeric character reference's codepoint value to
// the rune it should resolve to. References in the Windows-1252 control
// range [0x80, 0x9F] are remapped to their intended Windows-1252
// codepoints (the source's NumberReferenceMapDefinition.cpp duplicates
// this table by hand; we consult the real one). 0x00 resolves to
// U+FFFD. Every other value is returned unchanged.
func ResolveNumeric(cp uint32) rune {
	if cp == 0 {
		return 0xFFFD
	}
	if cp >= 0x80 && cp <= 0x9F {
		if r := charmap.Windows1252.DecodeByte(byte(cp)); r != utf8.RuneError {
			return r
		}
	}
	return rune(cp)
}
