package timeutil

import (
	"testing"
	"time"
)

func TestParseWindowDefault(t *testing.T) {
	dur, err := ParseWindow("", 30*time.Minute)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if dur != 30*time.Minute {
		t.Fatalf("expected fallback, got %v", dur)
	}
}

func TestParseWindowComposite(t *testing.T) {
	dur, err := ParseWindow("1w2d6h30m", 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := (7*24+2*24+6)*time.Hour + 30*time.Minute
	if dur != want {
		t.Fatalf("expected %v, got %v", want, dur)
	}
	if got := FormatWindow(dur); got != "1w2d6h30m" {
		t.Fatalf("unexpected label: %s", got)
	}
}

func TestParseWindowGoDuration(t *testing.T) {
	dur, err := ParseWindow("1h30m0s", 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if dur != 90*time.Minute {
		t.Fatalf("expected 90m, got %v", dur)
	}
}

func TestParseWindowInvalid(t *testing.T) {
	for _, in := range []string{"noop", "3 fortnights", "0m"} {
		if _, err := ParseWindow(in, 0); err == nil {
			t.Fatalf("expected error for %q", in)
		}
	}
}

func TestRelative(t *testing.T) {
	now := time.Date(2025, 6, 4, 12, 0, 0, 0, time.UTC)
	tests := []struct {
		then time.Time
		want string
	}{
		{then: now.Add(30 * time.Minute), want: "in 30m"},
		{then: now.Add(50*time.Hour + 10*time.Minute), want: "in 2d2h"},
		{then: now.Add(-45 * time.Minute), want: "45m ago"},
		{then: now.Add(20 * time.Second), want: "now"},
	}
	for _, tc := range tests {
		if got := Relative(tc.then, now); got != tc.want {
			t.Fatalf("Relative(%v): expected %q, got %q", tc.then.Sub(now), tc.want, got)
		}
	}
}
