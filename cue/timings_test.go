package cue

import (
	"testing"
	"time"

	"webvtt.im/webvtt/region"
)

func TestParseTimingsBasic(t *testing.T) {
	start, end, settings, resolved, ok := ParseTimings([]rune("00:00:01.000 --> 00:00:02.500"), nil)
	if !ok {
		t.Fatal("ParseTimings() ok = false")
	}
	if start != time.Second || end != 2500*time.Millisecond {
		t.Errorf("start/end = %v/%v", start, end)
	}
	if resolved != nil {
		t.Errorf("resolved = %v, want nil", resolved)
	}
	if settings.Align != AlignCenter || settings.Size != 100 {
		t.Errorf("settings = %+v, want defaults", settings)
	}
}

func TestParseTimingsHoursForm(t *testing.T) {
	start, end, _, _, ok := ParseTimings([]rune("01:00:00.000 --> 01:00:01.000"), nil)
	if !ok {
		t.Fatal("ParseTimings() ok = false")
	}
	if start != time.Hour || end != time.Hour+time.Second {
		t.Errorf("start/end = %v/%v", start, end)
	}
}

func TestParseTimingsMissingArrowFails(t *testing.T) {
	_, _, _, _, ok := ParseTimings([]rune("00:00:01.000 00:00:02.000"), nil)
	if ok {
		t.Fatal("ParseTimings() ok = true, want false")
	}
}

func TestParseTimingsSettings(t *testing.T) {
	_, _, settings, _, ok := ParseTimings([]rune("00:00:01.000 --> 00:00:02.000 vertical:rl line:10%,center position:50%,start size:80% align:left"), nil)
	if !ok {
		t.Fatal("ParseTimings() ok = false")
	}
	if settings.Vertical != VerticalRL {
		t.Errorf("Vertical = %v, want VerticalRL", settings.Vertical)
	}
	if !settings.Line.Percentage || settings.Line.Value != 10 || !settings.Line.HasAlignment || settings.Line.Alignment != AlignCenter {
		t.Errorf("Line = %+v", settings.Line)
	}
	if settings.Position.Value != 50 || !settings.Position.HasAlignment || settings.Position.Alignment != AlignStart {
		t.Errorf("Position = %+v", settings.Position)
	}
	if settings.Size != 80 {
		t.Errorf("Size = %v, want 80", settings.Size)
	}
	if settings.Align != AlignLeft {
		t.Errorf("Align = %v, want AlignLeft", settings.Align)
	}
}

func TestParseTimingsUnknownSettingIgnored(t *testing.T) {
	_, _, settings, _, ok := ParseTimings([]rune("00:00:01.000 --> 00:00:02.000 wat:nonsense size:50%"), nil)
	if !ok {
		t.Fatal("ParseTimings() ok = false")
	}
	if settings.Size != 50 {
		t.Errorf("Size = %v, want 50 (unknown setting must not suppress known ones)", settings.Size)
	}
}

func TestParseTimingsMalformedSettingFallsBackToDefault(t *testing.T) {
	_, _, settings, _, ok := ParseTimings([]rune("00:00:01.000 --> 00:00:02.000 align:banana size:150%"), nil)
	if !ok {
		t.Fatal("ParseTimings() ok = false")
	}
	if settings.Align != AlignCenter {
		t.Errorf("Align = %v, want default AlignCenter", settings.Align)
	}
	if settings.Size != 100 {
		t.Errorf("Size = %v, want default 100 (150%% out of range)", settings.Size)
	}
}

func TestParseTimingsRegionResolution(t *testing.T) {
	r := region.New()
	regions := map[string]*region.Region{"r1": r}
	_, _, settings, resolved, ok := ParseTimings([]rune("00:00:01.000 --> 00:00:02.000 region:r1"), regions)
	if !ok {
		t.Fatal("ParseTimings() ok = false")
	}
	if settings.Region != "r1" {
		t.Errorf("Settings.Region = %q, want r1", settings.Region)
	}
	if resolved != r {
		t.Errorf("resolved = %v, want %v", resolved, r)
	}
}

func TestParseTimingsUnknownRegionUnresolved(t *testing.T) {
	_, _, _, resolved, ok := ParseTimings([]rune("00:00:01.000 --> 00:00:02.000 region:missing"), map[string]*region.Region{})
	if !ok {
		t.Fatal("ParseTimings() ok = false")
	}
	if resolved != nil {
		t.Errorf("resolved = %v, want nil", resolved)
	}
}
