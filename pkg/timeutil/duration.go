// Package timeutil parses and renders compact durations such as "1w2d6h".
package timeutil

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

const (
	day  = 24 * time.Hour
	week = 7 * day
)

var (
	segmentPattern = regexp.MustCompile(`^\s*(\d+)\s*([a-z]+)`)
	unitMap        = map[string]time.Duration{
		"s": time.Second, "sec": time.Second, "secs": time.Second, "second": time.Second, "seconds": time.Second,
		"m": time.Minute, "min": time.Minute, "mins": time.Minute, "minute": time.Minute, "minutes": time.Minute,
		"h": time.Hour, "hr": time.Hour, "hrs": time.Hour, "hour": time.Hour, "hours": time.Hour,
		"d": day, "day": day, "days": day,
		"w": week, "wk": week, "wks": week, "week": week, "weeks": week,
	}
)

// ParseWindow parses a compact duration ("30m", "1w2d6h"). Plain Go
// durations ("1h30m0s") are accepted too. An empty input yields fallback.
func ParseWindow(input string, fallback time.Duration) (time.Duration, error) {
	remaining := strings.ToLower(strings.TrimSpace(input))
	if remaining == "" {
		return fallback, nil
	}
	if d, err := time.ParseDuration(remaining); err == nil {
		if d <= 0 {
			return 0, fmt.Errorf("duration must be greater than zero")
		}
		return d, nil
	}

	total := time.Duration(0)
	for len(remaining) > 0 {
		matches := segmentPattern.FindStringSubmatch(remaining)
		if len(matches) != 3 {
			return 0, fmt.Errorf("invalid duration segment %q", strings.TrimSpace(remaining))
		}
		value, err := strconv.ParseInt(matches[1], 10, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid duration value %q: %w", matches[1], err)
		}
		base, ok := unitMap[matches[2]]
		if !ok {
			return 0, fmt.Errorf("unsupported duration unit %q", matches[2])
		}
		total += time.Duration(value) * base
		remaining = strings.TrimSpace(remaining[len(matches[0]):])
	}

	if total <= 0 {
		return 0, fmt.Errorf("duration must be greater than zero")
	}
	return total, nil
}

// FormatWindow renders d using week/day/hour/minute/second tokens.
func FormatWindow(d time.Duration) string {
	if d <= 0 {
		return "0s"
	}
	units := []struct {
		label string
		value time.Duration
	}{
		{"w", week},
		{"d", day},
		{"h", time.Hour},
		{"m", time.Minute},
		{"s", time.Second},
	}

	var parts []string
	remaining := d
	for _, u := range units {
		if remaining < u.value {
			continue
		}
		count := remaining / u.value
		remaining -= count * u.value
		parts = append(parts, fmt.Sprintf("%d%s", count, u.label))
	}
	if len(parts) == 0 {
		return "0s"
	}
	return strings.Join(parts, "")
}

// Relative describes then relative to now at minute resolution, keeping the
// two most significant units: "in 2d3h", "45m ago", "now".
func Relative(then, now time.Time) string {
	d := then.Sub(now).Truncate(time.Minute)
	if d == 0 {
		return "now"
	}
	past := d < 0
	if past {
		d = -d
	}
	s := FormatWindow(d)
	if idx := secondUnit(s); idx > 0 {
		s = s[:idx]
	}
	if past {
		return s + " ago"
	}
	return "in " + s
}

// secondUnit returns the index just past the second unit token in s.
func secondUnit(s string) int {
	units := 0
	for i, r := range s {
		if r < '0' || r > '9' {
			units++
			if units == 2 {
				return i + 1
			}
		}
	}
	return -1
}
