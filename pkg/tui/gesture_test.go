package tui

import (
	"math"
	"testing"

	"tableflip.dev/zentask/pkg/order"
	"tableflip.dev/zentask/pkg/task"
	"tableflip.dev/zentask/pkg/view"
)

func mk(id, project, section string, ord int) *task.Task {
	return &task.Task{ID: id, Title: id, ProjectID: project, SectionID: section, Order: ord, Priority: task.Medium}
}

func TestNudge(t *testing.T) {
	sections := []*task.Section{
		{ID: "s1", ProjectID: "p", Title: "One", Order: 0},
		{ID: "s2", ProjectID: "p", Title: "Two", Order: 1},
	}
	projects := []*task.Project{{ID: "p", Name: "P"}}
	tasks := []*task.Task{
		mk("a", "p", "", 0),
		mk("b", "p", "", 1),
		mk("c", "p", "s1", 0),
	}
	res := view.Project(view.Input{Tasks: tasks, Projects: projects, Sections: sections}, view.ForProject("p"))

	unsectioned := order.Bucket{ProjectID: "p"}
	one := order.Bucket{ProjectID: "p", SectionID: "s1"}
	two := order.Bucket{ProjectID: "p", SectionID: "s2"}

	tests := []struct {
		name  string
		id    string
		delta int
		ok    bool
		dest  order.Bucket
		index int
	}{
		{name: "down within bucket", id: "a", delta: 1, ok: true, dest: unsectioned, index: 1},
		{name: "up within bucket", id: "b", delta: -1, ok: true, dest: unsectioned, index: 0},
		{name: "top of first group", id: "a", delta: -1, ok: false},
		{name: "bottom crosses down", id: "b", delta: 1, ok: true, dest: one, index: 0},
		{name: "top crosses up", id: "c", delta: -1, ok: true, dest: unsectioned, index: math.MaxInt32},
		{name: "into empty section", id: "c", delta: 1, ok: true, dest: two, index: 0},
		{name: "unknown id", id: "zz", delta: 1, ok: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, ok := nudge(tasks, res, tt.id, tt.delta)
			if ok != tt.ok {
				t.Fatalf("expected ok=%v, got %v", tt.ok, ok)
			}
			if !ok {
				return
			}
			if d.TaskID != tt.id || d.Dest != tt.dest || d.Index != tt.index {
				t.Fatalf("expected %s -> %+v@%d, got %s -> %+v@%d", tt.id, tt.dest, tt.index, d.TaskID, d.Dest, d.Index)
			}
		})
	}
}

func TestNudgeFlatViewStaysInBucket(t *testing.T) {
	tasks := []*task.Task{
		mk("a", "p", "", 0),
		mk("x", "q", "", 0),
		mk("b", "p", "", 1),
	}
	for _, tk := range tasks {
		tk.DeadlineDate = "2025-06-04"
	}
	res := view.Project(view.Input{Tasks: tasks, Now: testNow}, view.Today)
	if res.Sectioned {
		t.Fatalf("expected a flat view")
	}

	// x sits between a and b on screen but belongs to another project, so a
	// steps over it.
	d, ok := nudge(tasks, res, "a", 1)
	if !ok {
		t.Fatalf("expected a move")
	}
	if d.Dest != (order.Bucket{ProjectID: "p"}) || d.Index != 1 {
		t.Fatalf("expected reorder to 1 within p, got %+v@%d", d.Dest, d.Index)
	}
	if _, ok := nudge(tasks, res, "x", 1); ok {
		t.Fatalf("expected x to have nowhere to go in a flat view")
	}
}

func TestNudgeIgnoresCompleted(t *testing.T) {
	done := mk("a", "p", "", 0)
	done.IsCompleted = true
	tasks := []*task.Task{done, mk("b", "p", "", 0)}
	res := view.Result{Groups: []view.Group{{Tasks: tasks}}}
	if _, ok := nudge(tasks, res, "a", 1); ok {
		t.Fatalf("expected completed tasks to stay put")
	}
}
