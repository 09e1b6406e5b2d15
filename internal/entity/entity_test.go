package entity_test

import (
	"testing"

	"webvtt.im/webvtt/internal/entity"
)

func TestResolveNamed(t *testing.T) {
	tests := []struct {
		name string
		want rune
	}{
		{"amp", '&'},
		{"lt", '<'},
		{"gt", '>'},
		{"nbsp", 0x00A0},
		{"lrm", 0x200E},
		{"rlm", 0x200F},
	}
	for _, tt := range tests {
		r, ok := entity.ResolveNamed(tt.name)
		if !ok || r != tt.want {
			t.Errorf("ResolveNamed(%q) = %U, %v, want %U, true", tt.name, r, ok, tt.want)
		}
	}
	if _, ok := entity.ResolveNamed("notareference"); ok {
		t.Error("expected unknown entity name to resolve false")
	}
}

func TestResolveNumericWindows1252Fallback(t *testing.T) {
	tests := []struct {
		cp   uint32
		want rune
	}{
		{0x00, 0xFFFD},
		{0x80, 0x20AC}, // EURO SIGN
		{0x85, 0x2026}, // HORIZONTAL ELLIPSIS
		{0x92, 0x2019}, // RIGHT SINGLE QUOTATION MARK
		{0x9F, 0x0178}, // LATIN CAPITAL LETTER Y WITH DIAERESIS
	}
	for _, tt := range tests {
		if got := entity.ResolveNumeric(tt.cp); got != tt.want {
			t.Errorf("ResolveNumeric(%#x) = %U, want %U", tt.cp, got, tt.want)
		}
	}
}

func TestResolveNumericPassesThroughOutsideFallbackRange(t *testing.T) {
	if got := entity.ResolveNumeric(0x41); got != 'A' {
		t.Errorf("ResolveNumeric(0x41) = %U, want 'A'", got)
	}
	if got := entity.ResolveNumeric(0x1F600); got != 0x1F600 {
		t.Errorf("ResolveNumeric(0x1F600) = %U, want unchanged", got)
	}
}
