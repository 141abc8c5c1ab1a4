// Package logbook implements the bounded activity log of task events.
package logbook

import (
	"time"

	"tableflip.dev/zentask/pkg/task"
)

const (
	// Limit is the number of entries retained, newest first.
	Limit = 100

	// WeeklyGoal is the default number of distinct tasks to complete per week.
	WeeklyGoal = 5
)

// Record builds a log entry with a snapshot of title.
func Record(action task.Action, title string, at time.Time) task.LogEntry {
	return task.LogEntry{
		ID:        task.NewID(),
		Action:    action,
		TaskTitle: title,
		Timestamp: task.Timestamp{Time: at},
	}
}

// Append prepends e to entries and drops anything beyond Limit. entries is
// expected newest first; the result is a new slice.
func Append(entries []task.LogEntry, e task.LogEntry) []task.LogEntry {
	n := len(entries) + 1
	if n > Limit {
		n = Limit
	}
	out := make([]task.LogEntry, 0, n)
	out = append(out, e)
	for _, old := range entries {
		if len(out) == Limit {
			break
		}
		out = append(out, old)
	}
	return out
}

// WeekStart returns local midnight of the Monday on or before now.
func WeekStart(now time.Time) time.Time {
	now = now.Local()
	offset := (int(now.Weekday()) + 6) % 7
	y, m, d := now.Date()
	return time.Date(y, m, d-offset, 0, 0, 0, 0, now.Location())
}

// Progress summarizes the weekly goal.
type Progress struct {
	Count   int
	Goal    int
	Percent int
}

// Reached reports whether the goal has been met.
func (p Progress) Reached() bool {
	return p.Goal > 0 && p.Count >= p.Goal
}

// WeeklyProgress counts distinct task titles completed since the start of
// the week containing now.
func WeeklyProgress(entries []task.LogEntry, now time.Time, goal int) Progress {
	start := WeekStart(now)
	titles := make(map[string]struct{})
	for _, e := range entries {
		if e.Action != task.ActionComplete {
			continue
		}
		if e.Timestamp.Before(start) {
			continue
		}
		titles[e.TaskTitle] = struct{}{}
	}
	p := Progress{Count: len(titles), Goal: goal}
	if goal > 0 {
		p.Percent = p.Count * 100 / goal
		if p.Percent > 100 {
			p.Percent = 100
		}
	}
	return p
}

// Within returns the entries no older than window before now. A zero window
// returns every entry.
func Within(entries []task.LogEntry, now time.Time, window time.Duration) []task.LogEntry {
	if window <= 0 {
		return entries
	}
	since := now.Add(-window)
	out := make([]task.LogEntry, 0, len(entries))
	for _, e := range entries {
		if !e.Timestamp.Before(since) {
			out = append(out, e)
		}
	}
	return out
}
