package task

import (
	"encoding/json"
	"testing"
	"time"
)

func TestParseDateLenient(t *testing.T) {
	tests := []struct {
		in   string
		ok   bool
		day  int
		hour int
	}{
		{in: "2025-03-14", ok: true, day: 14},
		{in: "2025-03-14T09:30", ok: true, day: 14, hour: 9},
		{in: "2025-03-14T09:30:00", ok: true, day: 14, hour: 9},
		{in: "", ok: false},
		{in: "not a date", ok: false},
		{in: "2025-13-40", ok: false},
	}
	for _, tc := range tests {
		got, ok := ParseDate(tc.in)
		if ok != tc.ok {
			t.Fatalf("ParseDate(%q): expected ok=%v, got %v", tc.in, tc.ok, ok)
		}
		if !ok {
			continue
		}
		if got.Day() != tc.day || got.Hour() != tc.hour {
			t.Fatalf("ParseDate(%q): unexpected value %v", tc.in, got)
		}
	}
}

func TestParseDateRFC3339(t *testing.T) {
	got, ok := ParseDate("2025-03-14T09:30:00Z")
	if !ok {
		t.Fatalf("expected RFC3339 to parse")
	}
	if !got.Equal(time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)) {
		t.Fatalf("unexpected value %v", got)
	}
}

func TestTimestampAcceptsEpochMillis(t *testing.T) {
	var ts Timestamp
	if err := json.Unmarshal([]byte("1700000000000"), &ts); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ts.UnixMilli() != 1700000000000 {
		t.Fatalf("expected epoch millis to round trip, got %d", ts.UnixMilli())
	}
}

func TestTaskJSONRoundTrip(t *testing.T) {
	created := time.Date(2025, 1, 2, 3, 4, 5, 6, time.UTC)
	in := New("write report", "", created)
	in.Complete(created.Add(time.Hour))

	b, err := json.Marshal(in)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var out Task
	if err := json.Unmarshal(b, &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if out.ProjectID != InboxID {
		t.Fatalf("expected inbox project, got %q", out.ProjectID)
	}
	if !out.CreatedAt.Equal(created) {
		t.Fatalf("expected createdAt %v, got %v", created, out.CreatedAt)
	}
	if out.CompletedAt == nil || !out.CompletedAt.Equal(created.Add(time.Hour)) {
		t.Fatalf("unexpected completedAt %v", out.CompletedAt)
	}
	if out.Priority != Medium {
		t.Fatalf("expected default priority, got %s", out.Priority)
	}
}

func TestCompleteNeverBeforeCreated(t *testing.T) {
	created := time.Now()
	tk := New("x", TodosID, created)
	tk.Complete(created.Add(-time.Minute))
	if tk.CompletedAt.Before(tk.CreatedAt.Time) {
		t.Fatalf("completedAt %v precedes createdAt %v", tk.CompletedAt, tk.CreatedAt)
	}
	tk.Uncomplete()
	if tk.IsCompleted || tk.CompletedAt != nil {
		t.Fatalf("expected uncomplete to clear completion")
	}
}

func TestParsePriority(t *testing.T) {
	for in, want := range map[string]Priority{"high": High, "M": Medium, " low ": Low, "h": High} {
		got, err := ParsePriority(in)
		if err != nil {
			t.Fatalf("ParsePriority(%q): %v", in, err)
		}
		if got != want {
			t.Fatalf("ParsePriority(%q): expected %s, got %s", in, want, got)
		}
	}
	if _, err := ParsePriority("urgent"); err == nil {
		t.Fatalf("expected error for unknown priority")
	}
}

func TestNormalizeColor(t *testing.T) {
	got, err := NormalizeColor("3B82F6")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "#3b82f6" {
		t.Fatalf("expected #3b82f6, got %s", got)
	}
	if _, err := NormalizeColor("#zzzzzz"); err == nil {
		t.Fatalf("expected error for invalid color")
	}
	if c := RandomColor(); len(c) != 7 || c[0] != '#' {
		t.Fatalf("unexpected random color %q", c)
	}
}

func TestSampleTasksOrdered(t *testing.T) {
	now := time.Now()
	tasks := SampleTasks(TodosID, now)
	if len(tasks) != 7 {
		t.Fatalf("expected 7 sample tasks, got %d", len(tasks))
	}
	for i, tk := range tasks {
		if tk.Order != i {
			t.Fatalf("sample %d has order %d", i, tk.Order)
		}
		if tk.ProjectID != TodosID {
			t.Fatalf("sample %d in project %q", i, tk.ProjectID)
		}
	}
	if _, ok := tasks[4].Deadline(); !ok {
		t.Fatalf("expected sample deadline to parse")
	}
}
