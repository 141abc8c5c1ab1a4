package printers

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/zentask/pkg/logbook"
	"tableflip.dev/zentask/pkg/task"
	"tableflip.dev/zentask/pkg/view"
)

var now = time.Date(2025, time.June, 4, 10, 0, 0, 0, time.Local)

func newPrinter(buf *bytes.Buffer) *PrettyPrint {
	color.NoColor = true
	return &PrettyPrint{Out: buf, Now: func() time.Time { return now }}
}

func TestResultPrintsSections(t *testing.T) {
	var buf bytes.Buffer
	pp := newPrinter(&buf)

	sec := &task.Section{ID: "s1", ProjectID: "p", Title: "Errands"}
	a := task.New("unsectioned task", "p", now)
	b := task.New("sectioned task", "p", now)
	b.SectionID = "s1"
	b.DeadlineDate = "2025-06-05"
	res := view.Project(view.Input{
		Tasks:    []*task.Task{a, b},
		Projects: []*task.Project{{ID: "p", Name: "P"}},
		Sections: []*task.Section{sec},
		Now:      now,
	}, view.ForProject("p"))

	pp.Result("P", res, nil)
	out := buf.String()
	for _, want := range []string{"P - 2 tasks", "unsectioned task", "Errands", "sectioned task", "in "} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output:\n%s", want, out)
		}
	}
	if strings.Index(out, "unsectioned task") > strings.Index(out, "Errands") {
		t.Fatalf("expected unsectioned tasks before the first section:\n%s", out)
	}
}

func TestLogbookAndProgress(t *testing.T) {
	var buf bytes.Buffer
	pp := newPrinter(&buf)
	entries := []task.LogEntry{
		logbook.Record(task.ActionComplete, "ship it", now.Add(-time.Hour)),
		logbook.Record(task.ActionCreate, "ship it", now.Add(-2*time.Hour)),
	}
	pp.Logbook(entries)
	pp.Progress(logbook.Progress{Count: 5, Goal: 5, Percent: 100})
	out := buf.String()
	for _, want := range []string{"Logbook - 2 tasks", "Completed", "Created", "1h ago", "5/5", "goal reached"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output:\n%s", want, out)
		}
	}
}

func TestProjectsTable(t *testing.T) {
	var buf bytes.Buffer
	pp := newPrinter(&buf)
	pp.Projects(task.DefaultProjects(), view.Counts{Inbox: 3, Projects: map[string]int{task.TodosID: 7}})
	out := buf.String()
	for _, want := range []string{"Inbox", "To-Dos", "Shopping", "7"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output:\n%s", want, out)
		}
	}
}

func TestDeadlinesIn(t *testing.T) {
	late := task.New("late", "", now)
	late.DeadlineDate = "2025-06-20T18:00"
	early := task.New("early", "", now)
	early.DeadlineDate = "2025-06-20T08:00"
	other := task.New("july", "", now)
	other.DeadlineDate = "2025-07-01"
	done := task.New("done", "", now)
	done.DeadlineDate = "2025-06-20"
	done.Complete(now)

	due := DeadlinesIn(now, []*task.Task{late, early, other, done})
	if len(due) != 1 || len(due[20]) != 2 || due[20][0].Title != "early" {
		t.Fatalf("unexpected grouping %v", due)
	}
}

func TestMonthGeometry(t *testing.T) {
	if DaysIn(now) != 30 {
		t.Fatalf("expected 30 days in June, got %d", DaysIn(now))
	}
	if StartDay(now) != time.Sunday || mondayIndex(StartDay(now)) != 6 {
		t.Fatalf("expected June 2025 to start on a Sunday")
	}
}
