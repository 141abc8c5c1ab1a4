package app

import (
	"strings"

	"tableflip.dev/zentask/pkg/logbook"
	"tableflip.dev/zentask/pkg/order"
	"tableflip.dev/zentask/pkg/store"
	"tableflip.dev/zentask/pkg/task"
	"tableflip.dev/zentask/pkg/view"
)

// NewTask describes a task to create. An empty ProjectID resolves to the
// active project filter, or the inbox when the active filter is not a
// project.
type NewTask struct {
	Title        string
	ProjectID    string
	SectionID    string
	WorkingDate  string
	DeadlineDate string
	Priority     task.Priority
}

// CreateTask appends a task to the end of its bucket and logs it.
func (s *Service) CreateTask(in NewTask) (string, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return "", ErrEmptyTitle
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	projectID := in.ProjectID
	if projectID == "" {
		projectID = s.activeProject()
	}
	if !s.projectExists(projectID) {
		projectID = task.InboxID
	}
	sectionID := in.SectionID
	if !s.sectionIn(sectionID, projectID) {
		sectionID = ""
	}

	t := task.New(title, projectID, s.now())
	t.SectionID = sectionID
	t.WorkingDate = in.WorkingDate
	t.DeadlineDate = in.DeadlineDate
	if in.Priority.Valid() {
		t.Priority = in.Priority
	}
	t.Order = order.Next(s.tasks, order.BucketOf(t))
	s.tasks = append(s.tasks, t)
	s.record(task.ActionCreate, title)
	s.cue(Feedback.Pop)

	return t.ID, s.save(store.KeyTasks, store.KeyLogs)
}

// activeProject is the project the active filter points at, or the inbox.
func (s *Service) activeProject() string {
	f, err := view.ParseFilter(s.view.ActiveFilter)
	if err != nil || f.Kind != view.KindProject || s.findProject(f.ProjectID) == nil {
		return task.InboxID
	}
	return f.ProjectID
}

// ToggleCompletion flips the completion state of id. It reports false for an
// unknown id.
func (s *Service) ToggleCompletion(id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t := s.findTask(id)
	if t == nil {
		return false, nil
	}
	title := t.Title
	if t.IsCompleted {
		t.Uncomplete()
		s.record(task.ActionUncomplete, title)
	} else {
		before := logbook.WeeklyProgress(s.logs, s.now(), s.goal)
		t.Complete(s.now())
		s.record(task.ActionComplete, title)
		after := logbook.WeeklyProgress(s.logs, s.now(), s.goal)
		s.cue(Feedback.Complete)
		if before.Count > 0 && !before.Reached() && after.Reached() {
			s.cue(Feedback.Celebrate)
		}
	}
	return true, s.save(store.KeyTasks, store.KeyLogs)
}

// DeleteTask removes id and logs it. Siblings keep their order values.
func (s *Service) DeleteTask(id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, t := range s.tasks {
		if t.ID != id {
			continue
		}
		s.record(task.ActionDelete, t.Title)
		s.tasks = append(s.tasks[:i:i], s.tasks[i+1:]...)
		return true, s.save(store.KeyTasks, store.KeyLogs)
	}
	return false, nil
}

// TaskUpdate carries the fields to change; nil fields are left alone.
type TaskUpdate struct {
	Title        *string
	Priority     *task.Priority
	ProjectID    *string
	SectionID    *string
	WorkingDate  *string
	DeadlineDate *string
	Notes        *string
	Repeat       *task.Repeat
	Color        *string
}

// UpdateTask merges u into the task id. Changing the project without naming
// a section clears the section, and the task joins the end of its new bucket.
func (s *Service) UpdateTask(id string, u TaskUpdate) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t := s.findTask(id)
	if t == nil {
		return false, nil
	}
	if u.ProjectID != nil && !s.projectExists(*u.ProjectID) {
		return false, ErrUnknownProject
	}
	if u.Title != nil {
		title := strings.TrimSpace(*u.Title)
		if title == "" {
			return false, ErrEmptyTitle
		}
		t.Title = title
	}
	if u.Priority != nil && u.Priority.Valid() {
		t.Priority = *u.Priority
	}
	if u.WorkingDate != nil {
		t.WorkingDate = *u.WorkingDate
	}
	if u.DeadlineDate != nil {
		t.DeadlineDate = *u.DeadlineDate
	}
	if u.Notes != nil {
		t.Notes = *u.Notes
	}
	if u.Repeat != nil {
		t.Repeat = *u.Repeat
	}
	if u.Color != nil {
		t.Color = *u.Color
	}

	dest := order.BucketOf(t)
	if u.ProjectID != nil && *u.ProjectID != dest.ProjectID {
		dest = order.Bucket{ProjectID: *u.ProjectID}
	}
	if u.SectionID != nil && s.sectionIn(*u.SectionID, dest.ProjectID) {
		dest.SectionID = *u.SectionID
	}
	if dest != order.BucketOf(t) {
		source := order.BucketOf(t)
		t.ProjectID, t.SectionID = "", ""
		s.appendTo([]*task.Task{t}, dest)
		order.Renumber(order.Live(s.tasks, source))
	}
	return true, s.save(store.KeyTasks)
}
