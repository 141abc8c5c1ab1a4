package mcp

import (
	"errors"
	"testing"

	"tableflip.dev/zentask/pkg/app"
	"tableflip.dev/zentask/pkg/store"
	"tableflip.dev/zentask/pkg/task"
	"tableflip.dev/zentask/pkg/view"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	mem := store.NewMemory()
	if err := mem.Write(store.KeyTasks, []byte(`[]`)); err != nil {
		t.Fatalf("seed: %v", err)
	}
	a := app.New(mem)
	if err := a.Open(); err != nil {
		t.Fatalf("open: %v", err)
	}
	if err := a.SetActiveFilter(view.Inbox); err != nil {
		t.Fatalf("filter: %v", err)
	}
	return NewService(a)
}

func TestServiceCreateAndList(t *testing.T) {
	svc := newTestService(t)
	first, err := svc.CreateTask(app.NewTask{Title: "buy milk", ProjectID: task.ShoppingID, Priority: task.High})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if first.ProjectName != "Shopping" || first.Priority != "High" || first.Order != 0 {
		t.Fatalf("unexpected dto %+v", first)
	}
	if _, err := svc.CreateTask(app.NewTask{Title: "buy eggs", ProjectID: task.ShoppingID}); err != nil {
		t.Fatalf("create: %v", err)
	}

	tasks, err := svc.ListTasks(task.ShoppingID, "")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(tasks) != 2 || tasks[0].Title != "buy milk" || tasks[1].Order != 1 {
		t.Fatalf("unexpected tasks %+v", tasks)
	}

	high, err := svc.ListTasks(task.ShoppingID, "high")
	if err != nil || len(high) != 1 {
		t.Fatalf("expected one high priority task, got %+v, %v", high, err)
	}
	if _, err := svc.ListTasks("inbox", "urgent"); err == nil {
		t.Fatalf("expected priority parse error")
	}
}

func TestServiceToggleAndCompletedFilter(t *testing.T) {
	svc := newTestService(t)
	dto, _ := svc.CreateTask(app.NewTask{Title: "ship"})
	done, err := svc.ToggleTask(dto.ID)
	if err != nil || !done.IsCompleted || done.CompletedAt == "" {
		t.Fatalf("expected completed task, got %+v, %v", done, err)
	}
	completed, err := svc.ListTasks("completed", "")
	if err != nil || len(completed) != 1 || completed[0].ID != dto.ID {
		t.Fatalf("unexpected completed list %+v, %v", completed, err)
	}
	log, _ := svc.Logbook(1)
	if len(log) != 1 || log[0].Action != "complete" {
		t.Fatalf("unexpected logbook %+v", log)
	}
	if _, err := svc.ToggleTask("missing"); !errors.Is(err, ErrTaskNotFound) {
		t.Fatalf("expected ErrTaskNotFound, got %v", err)
	}
}

func TestServiceMoveIntoSection(t *testing.T) {
	svc := newTestService(t)
	sec, err := svc.CreateSection(task.TodosID, "Work")
	if err != nil {
		t.Fatalf("section: %v", err)
	}
	a, _ := svc.CreateTask(app.NewTask{Title: "a", ProjectID: task.TodosID, SectionID: sec.ID})
	b, _ := svc.CreateTask(app.NewTask{Title: "b"})

	moved, err := svc.MoveTask(b.ID, task.TodosID, sec.ID, 0)
	if err != nil {
		t.Fatalf("move: %v", err)
	}
	if moved.SectionTitle != "Work" || moved.Order != 0 {
		t.Fatalf("unexpected moved task %+v", moved)
	}
	again, _ := svc.TaskByID(a.ID)
	if again.Order != 1 {
		t.Fatalf("expected a pushed to order 1, got %d", again.Order)
	}
	if _, err := svc.MoveTask(b.ID, task.ShoppingID, sec.ID, 0); err == nil {
		t.Fatalf("expected moving into a foreign section to fail")
	}
	if _, err := svc.CreateSection("missing", "x"); err == nil {
		t.Fatalf("expected unknown project error")
	}
}

func TestServiceSearchAndUpdate(t *testing.T) {
	svc := newTestService(t)
	dto, _ := svc.CreateTask(app.NewTask{Title: "Plan trip"})
	notes := "- book **flights**"
	if _, err := svc.UpdateTask(dto.ID, app.TaskUpdate{Notes: &notes}); err != nil {
		t.Fatalf("update: %v", err)
	}
	hits, err := svc.SearchTasks("FLIGHTS", 5)
	if err != nil || len(hits) != 1 || hits[0].ID != dto.ID {
		t.Fatalf("unexpected hits %+v, %v", hits, err)
	}
	if _, err := svc.SearchTasks("  ", 5); err == nil {
		t.Fatalf("expected empty query error")
	}
	deleted, err := svc.DeleteTask(dto.ID)
	if err != nil || deleted.Title != "Plan trip" {
		t.Fatalf("unexpected delete %+v, %v", deleted, err)
	}
}

func TestServiceListProjects(t *testing.T) {
	svc := newTestService(t)
	p, err := svc.CreateProject("Garden", "🌱", "outside")
	if err != nil {
		t.Fatalf("project: %v", err)
	}
	_, _ = svc.CreateTask(app.NewTask{Title: "weed", ProjectID: p.ID})
	projects, err := svc.ListProjects()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(projects) != 4 || projects[0].ID != task.InboxID {
		t.Fatalf("expected inbox plus three projects, got %+v", projects)
	}
	last := projects[3]
	if last.Name != "Garden" || last.Icon != "🌱" || last.OpenCount != 1 {
		t.Fatalf("unexpected project %+v", last)
	}
}

func TestTemplateArg(t *testing.T) {
	if got := templateArg(map[string]any{"id": "a"}, "id"); got != "a" {
		t.Fatalf("expected a, got %q", got)
	}
	if got := templateArg(map[string]any{"id": []string{"b"}}, "id"); got != "b" {
		t.Fatalf("expected b, got %q", got)
	}
	if got := templateArg(nil, "id"); got != "" {
		t.Fatalf("expected empty, got %q", got)
	}
}
