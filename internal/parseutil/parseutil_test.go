package parseutil_test

import (
	"testing"

	"webvtt.im/webvtt/internal/parseutil"
)

func TestParseTimestamp(t *testing.T) {
	tests := []struct {
		in     string
		wantMs int
		wantOK bool
	}{
		{"00:00:01.000", 1000, true},
		{"00:01.500", 1500, true},
		{"01:02:03.004", 3723004, true},
		{"59:59.999", 3599999, true},
		{"60:00.000", 0, false},  // minutes must be <= 59 with hours omitted
		{"00:60.000", 0, false},  // seconds must be <= 59
		{"1:02.000", 0, false},   // first group needs >= 2 digits
		{"00:01.00", 0, false},   // fractional part must be exactly 3 digits
		{"not-a-time", 0, false},
	}
	for _, tt := range tests {
		ms, pos, ok := parseutil.ParseTimestamp([]rune(tt.in), 0)
		if ok != tt.wantOK {
			t.Errorf("ParseTimestamp(%q) ok = %v, want %v", tt.in, ok, tt.wantOK)
			continue
		}
		if ok && (ms != tt.wantMs || pos != len([]rune(tt.in))) {
			t.Errorf("ParseTimestamp(%q) = %d, %d, want %d, %d", tt.in, ms, pos, tt.wantMs, len([]rune(tt.in)))
		}
	}
}

func TestParseTimestampStopsAtTrailingData(t *testing.T) {
	ms, pos, ok := parseutil.ParseTimestamp([]rune("00:00:01.000 --> 00:00:02.000"), 0)
	if !ok || ms != 1000 || pos != len("00:00:01.000") {
		t.Fatalf("ParseTimestamp = %d, %d, %v", ms, pos, ok)
	}
}

func TestSplitAroundChar(t *testing.T) {
	key, value, ok := parseutil.SplitAroundChar("align:center", ':')
	if !ok || key != "align" || value != "center" {
		t.Fatalf("got %q, %q, %v", key, value, ok)
	}
	if _, _, ok := parseutil.SplitAroundChar("noseparator", ':'); ok {
		t.Fatal("expected ok=false without a separator")
	}
}

func TestContainsArrow(t *testing.T) {
	if !parseutil.ContainsArrow([]rune("00:00:00.000 --> 00:00:01.000")) {
		t.Fatal("expected arrow to be detected")
	}
	if parseutil.ContainsArrow([]rune("hello")) {
		t.Fatal("did not expect arrow to be detected")
	}
}

func TestStrip(t *testing.T) {
	if got := string(parseutil.Strip([]rune("  hello world  "))); got != "hello world" {
		t.Fatalf("got %q", got)
	}
}
