package view

import (
	"testing"
	"time"

	"tableflip.dev/zentask/pkg/task"
)

var now = time.Date(2025, 6, 4, 12, 0, 0, 0, time.Local)

func open(id, project, section string, order int) *task.Task {
	return &task.Task{ID: id, Title: id, ProjectID: project, SectionID: section, Order: order, Priority: task.Medium}
}

func ids(seq []*task.Task) []string {
	out := make([]string, len(seq))
	for i, t := range seq {
		out[i] = t.ID
	}
	return out
}

func equal(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestTodayAndUpcoming(t *testing.T) {
	today := open("today", task.InboxID, "", 0)
	today.DeadlineDate = now.Add(2 * time.Hour).Format(time.RFC3339)
	tomorrow := open("tomorrow", task.InboxID, "", 1)
	tomorrow.DeadlineDate = now.AddDate(0, 0, 1).Format("2006-01-02")
	none := open("none", task.InboxID, "", 2)
	garbage := open("garbage", task.InboxID, "", 3)
	garbage.DeadlineDate = "someday"
	past := open("past", task.InboxID, "", 4)
	past.DeadlineDate = now.AddDate(0, 0, -3).Format(time.RFC3339)

	in := Input{Tasks: []*task.Task{today, tomorrow, none, garbage, past}, Now: now}

	if got := ids(Project(in, Today).Tasks()); !equal(got, []string{"today"}) {
		t.Fatalf("today: unexpected %v", got)
	}
	if got := ids(Project(in, Upcoming).Tasks()); !equal(got, []string{"tomorrow"}) {
		t.Fatalf("upcoming: unexpected %v", got)
	}
}

func TestTodayIncludesEarlierToday(t *testing.T) {
	earlier := open("earlier", task.InboxID, "", 0)
	earlier.DeadlineDate = time.Date(2025, 6, 4, 8, 0, 0, 0, time.Local).Format(time.RFC3339)
	in := Input{Tasks: []*task.Task{earlier}, Now: now}
	if got := Project(in, Today).Len(); got != 1 {
		t.Fatalf("expected overdue-today task in today view, got %d", got)
	}
	if got := Project(in, Upcoming).Len(); got != 0 {
		t.Fatalf("expected no upcoming, got %d", got)
	}
}

func TestInboxShowsAllOpenTasks(t *testing.T) {
	done := open("done", task.InboxID, "", 0)
	done.IsCompleted = true
	in := Input{Tasks: []*task.Task{open("b", "p", "", 1), done, open("a", task.InboxID, "", 0)}, Now: now}
	res := Project(in, Inbox)
	if !res.Sectioned {
		t.Fatalf("inbox should be sectioned")
	}
	if got := ids(res.Tasks()); !equal(got, []string{"a", "b"}) {
		t.Fatalf("unexpected inbox %v", got)
	}
}

func TestProjectGroupsBySection(t *testing.T) {
	projects := []*task.Project{{ID: "p", Name: "P"}}
	s1 := &task.Section{ID: "s1", ProjectID: "p", Title: "Later", Order: 1}
	s0 := &task.Section{ID: "s0", ProjectID: "p", Title: "First", Order: 0}
	foreign := &task.Section{ID: "sx", ProjectID: "q", Title: "Other", Order: 0}
	tasks := []*task.Task{
		open("u2", "p", "", 1),
		open("u1", "p", "", 0),
		open("b", "p", "s1", 1),
		open("a", "p", "s1", 0),
		open("c", "p", "s0", 0),
		open("stray", "p", "gone", 0),
		open("elsewhere", "q", "sx", 0),
	}
	res := Project(Input{Tasks: tasks, Projects: projects, Sections: []*task.Section{s1, foreign, s0}, Now: now}, ForProject("p"))
	if len(res.Groups) != 3 {
		t.Fatalf("expected unsectioned + 2 sections, got %d", len(res.Groups))
	}
	if res.Groups[0].Section != nil {
		t.Fatalf("first group should be unsectioned")
	}
	// Stray section ids fall back to the unsectioned group.
	if got := ids(res.Groups[0].Tasks); !equal(got, []string{"u1", "stray", "u2"}) {
		t.Fatalf("unexpected unsectioned group %v", got)
	}
	if res.Groups[1].Section.ID != "s0" || res.Groups[2].Section.ID != "s1" {
		t.Fatalf("sections out of order: %s, %s", res.Groups[1].Section.ID, res.Groups[2].Section.ID)
	}
	if got := ids(res.Groups[2].Tasks); !equal(got, []string{"a", "b"}) {
		t.Fatalf("unexpected s1 group %v", got)
	}
}

func TestPriorityFilterIntersects(t *testing.T) {
	hi := open("hi", task.InboxID, "", 0)
	hi.Priority = task.High
	in := Input{Tasks: []*task.Task{hi, open("mid", task.InboxID, "", 1)}, Priority: task.High, Now: now}
	if got := ids(Project(in, Inbox).Tasks()); !equal(got, []string{"hi"}) {
		t.Fatalf("unexpected %v", got)
	}
}

func TestCompletedIsLogbook(t *testing.T) {
	res := Project(Input{Tasks: []*task.Task{open("a", task.InboxID, "", 0)}}, Completed)
	if !res.Logbook || res.Len() != 0 {
		t.Fatalf("expected logbook result, got %+v", res)
	}
}

func TestProjectionDoesNotMutateOrder(t *testing.T) {
	a := open("a", "p", "", 5)
	b := open("b", "p", "", 2)
	Project(Input{Tasks: []*task.Task{a, b}, Projects: []*task.Project{{ID: "p"}}}, ForProject("p"))
	if a.Order != 5 || b.Order != 2 {
		t.Fatalf("projection changed orders")
	}
}

func TestParseFilter(t *testing.T) {
	tests := map[string]Filter{
		"inbox":    Inbox,
		"Today":    Today,
		"upcoming": Upcoming,
		"logbook":  Completed,
		"todos":    ForProject("todos"),
	}
	for in, want := range tests {
		got, err := ParseFilter(in)
		if err != nil {
			t.Fatalf("ParseFilter(%q): %v", in, err)
		}
		if got != want {
			t.Fatalf("ParseFilter(%q): expected %+v, got %+v", in, want, got)
		}
	}
	if _, err := ParseFilter(" "); err == nil {
		t.Fatalf("expected error for empty filter")
	}
}

func TestCount(t *testing.T) {
	due := open("due", "p", "", 0)
	due.DeadlineDate = now.Format(time.RFC3339)
	done := open("done", "p", "", 1)
	done.IsCompleted = true
	c := Count([]*task.Task{due, done, open("i", task.InboxID, "", 0)}, now)
	if c.Open != 2 || c.Inbox != 1 || c.Today != 1 || c.Projects["p"] != 1 {
		t.Fatalf("unexpected counts %+v", c)
	}
}
