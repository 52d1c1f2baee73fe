package timespan

import (
	"errors"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want int64
	}{
		{"PT45S", 45},
		{"PT1M", 60},
		{"PT30S", 30},
		{"PT2M30S", 150},
		{"PT1H2M3S", 3723},
		{"P0DT1H2M3S", 3723},
		{"P1D", 86400},
		{"P1DT1H1M1S", 90061},
		{"PT0S", 0},
		{"P0D", 0},
		{"PT10H", 36000},
		{"P365DT23H59M59S", 365*86400 + 23*3600 + 59*60 + 59},
	}
	for _, tt := range tests {
		got, err := Parse(tt.in)
		if err != nil {
			t.Errorf("Parse(%q) failed: %v", tt.in, err)
			continue
		}
		if got.Seconds() != tt.want {
			t.Errorf("Parse(%q) = %d, want %d", tt.in, got.Seconds(), tt.want)
		}
	}
}

func TestParseRejectsMalformed(t *testing.T) {
	tests := []string{
		"",          // empty
		"P",         // no components
		"PT",        // dangling time designator
		"P1DT",      // dangling time designator after days
		"T1H",       // missing period designator
		"1H2M",      // missing both designators
		"PT1H2M3",   // magnitude without unit
		"PTS",       // unit without magnitude
		"P1W",       // weeks unsupported
		"PT1.5S",    // fractional seconds unsupported
		"PT2M1H",    // out of order
		"PT1H1H",    // duplicate unit
		"P1D2D",     // duplicate days
		"PT1H junk", // trailing garbage
		"PT-30S",    // negative magnitude
		"P1DT1S1M",  // out of order across gaps
		"pt1m",      // designators are case sensitive
	}
	for _, in := range tests {
		got, err := Parse(in)
		if err == nil {
			t.Errorf("Parse(%q) = %d, want error", in, got.Seconds())
			continue
		}
		var perr *ParseError
		if !errors.As(err, &perr) {
			t.Errorf("Parse(%q) error type = %T, want *ParseError", in, err)
		} else if perr.Input != in {
			t.Errorf("Parse(%q) error carries input %q", in, perr.Input)
		}
	}
}

func TestHumanizeDaysCeiling(t *testing.T) {
	tests := []struct {
		seconds int64
		want    string
	}{
		{0, "0 seconds"},
		{1, "1 second"},
		{59, "59 seconds"},
		{60, "1 minute"},
		{61, "1 minute 1 second"},
		{3600, "1 hour"},
		{3661, "1 hour 1 minute 1 second"},
		{86400, "1 day"},
		{90061, "1 day 1 hour 1 minute 1 second"},
		{604800, "7 days"},
		{240, "4 minutes"},
		{86400 + 30, "1 day 30 seconds"},
	}
	for _, tt := range tests {
		if got := Span(tt.seconds).Humanize(Days); got != tt.want {
			t.Errorf("Span(%d).Humanize(Days) = %q, want %q", tt.seconds, got, tt.want)
		}
	}
}

func TestHumanizeSecondsCeiling(t *testing.T) {
	tests := []struct {
		seconds int64
		want    string
	}{
		{0, "0 seconds"},
		{1, "1 second"},
		{604800, "604800 seconds"},
	}
	for _, tt := range tests {
		if got := Span(tt.seconds).Humanize(Seconds); got != tt.want {
			t.Errorf("Span(%d).Humanize(Seconds) = %q, want %q", tt.seconds, got, tt.want)
		}
	}
}

// Reconstructing the original second count from the decomposition must
// be exact for every ceiling.
func TestDecomposeRoundTrip(t *testing.T) {
	samples := []int64{0, 1, 59, 60, 61, 3599, 3600, 3661, 86399, 86400, 90061, 604800, 123456789}
	for i := int64(0); i < 10000; i += 7 {
		samples = append(samples, i)
	}
	for _, ceiling := range []Unit{Seconds, Minutes, Hours, Days} {
		for _, sec := range samples {
			var sum int64
			for _, p := range Span(sec).Decompose(ceiling) {
				sum += p.Count * unitSeconds[p.Unit]
			}
			if sum != sec {
				t.Fatalf("Decompose(%v) of %d reconstructs to %d", ceiling, sec, sum)
			}
		}
	}
}

func TestDecomposeOmitsZeroComponents(t *testing.T) {
	parts := Span(86400 + 30).Decompose(Days)
	if len(parts) != 2 {
		t.Fatalf("expected 2 parts, got %d: %v", len(parts), parts)
	}
	if parts[0].Unit != Days || parts[0].Count != 1 {
		t.Errorf("unexpected first part: %+v", parts[0])
	}
	if parts[1].Unit != Seconds || parts[1].Count != 30 {
		t.Errorf("unexpected second part: %+v", parts[1])
	}
}
