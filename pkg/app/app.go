// Package app holds the canonical task state and every mutation the CLI, the
// TUI and the MCP server share. State lives in memory and each mutation is
// written through to the store before the call returns.
package app

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"tableflip.dev/zentask/pkg/logbook"
	"tableflip.dev/zentask/pkg/order"
	"tableflip.dev/zentask/pkg/store"
	"tableflip.dev/zentask/pkg/task"
	"tableflip.dev/zentask/pkg/view"
)

var (
	ErrNoPersistence  = errors.New("app: no persistence configured")
	ErrEmptyTitle     = errors.New("app: title is required")
	ErrEmptyName      = errors.New("app: name is required")
	ErrUnknownProject = errors.New("app: unknown project")
)

// DefaultFilter is the active filter on first run.
const DefaultFilter = task.TodosID

// Feedback receives fire-and-forget cues. Calls are skipped when the user
// has sound disabled. Implementations must not call back into the Service.
type Feedback interface {
	Pop()
	Complete()
	Celebrate()
}

type nopFeedback struct{}

func (nopFeedback) Pop()       {}
func (nopFeedback) Complete()  {}
func (nopFeedback) Celebrate() {}

// Option configures a Service.
type Option func(*Service)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// WithFeedback installs feedback cues.
func WithFeedback(f Feedback) Option {
	return func(s *Service) {
		if f != nil {
			s.feedback = f
		}
	}
}

// WithWeeklyGoal overrides the number of distinct completions per week.
func WithWeeklyGoal(goal int) Option {
	return func(s *Service) {
		if goal > 0 {
			s.goal = goal
		}
	}
}

// Service is the entity store.
type Service struct {
	Persistence store.Persistence

	mu       sync.RWMutex
	now      func() time.Time
	feedback Feedback
	goal     int

	tasks    []*task.Task
	projects []*task.Project
	sections []*task.Section
	logs     []task.LogEntry
	user     task.UserSettings
	view     store.ViewState
}

// New returns a Service over p. Call Open before use.
func New(p store.Persistence, opts ...Option) *Service {
	s := &Service{
		Persistence: p,
		now:         time.Now,
		feedback:    nopFeedback{},
		goal:        logbook.WeeklyGoal,
		user:        task.DefaultUser(),
		view:        store.ViewState{ActiveFilter: DefaultFilter},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Open loads state from the store, seeds defaults for absent collections and
// repairs dangling references. Seeded or repaired collections are written
// back.
func (s *Service) Open() error {
	if s.Persistence == nil {
		return ErrNoPersistence
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

// Reload re-reads the store, typically after a Watch event from another
// process.
func (s *Service) Reload() error {
	return s.Open()
}

// Watch subscribes to store change events.
func (s *Service) Watch(ctx context.Context) (<-chan store.Event, error) {
	if s.Persistence == nil {
		return nil, ErrNoPersistence
	}
	return s.Persistence.Watch(ctx)
}

func (s *Service) load() error {
	snap := store.LoadSnapshot(s.Persistence)
	dirty := make(map[string]bool)
	now := s.now()

	s.tasks = snap.Tasks
	if snap.Absent[store.KeyTasks] {
		s.tasks = task.SampleTasks(task.TodosID, now)
		dirty[store.KeyTasks] = true
	}
	s.projects = snap.Projects
	if snap.Absent[store.KeyProjects] || snap.Corrupt[store.KeyProjects] {
		s.projects = task.DefaultProjects()
		dirty[store.KeyProjects] = true
	}
	s.sections = snap.Sections
	s.logs = snap.Logs
	s.user = snap.User
	s.view = snap.View
	if s.view.ActiveFilter == "" {
		s.view.ActiveFilter = DefaultFilter
	}
	if !s.view.PriorityFilter.Valid() {
		s.view.PriorityFilter = ""
	}

	if s.repair() {
		dirty[store.KeyTasks] = true
		dirty[store.KeySections] = true
	}

	for _, key := range store.Keys {
		if dirty[key] {
			if err := s.save(key); err != nil {
				return err
			}
		}
	}
	return nil
}

// repair drops sections of unknown projects and detaches tasks from unknown
// projects or foreign sections.
func (s *Service) repair() bool {
	changed := false
	sections := s.sections[:0]
	for _, sec := range s.sections {
		if !s.projectExists(sec.ProjectID) {
			changed = true
			continue
		}
		sections = append(sections, sec)
	}
	s.sections = sections

	for _, t := range s.tasks {
		if !s.projectExists(t.ProjectID) {
			t.ProjectID = task.InboxID
			t.SectionID = ""
			changed = true
		}
		if t.SectionID == "" {
			continue
		}
		if sec := s.findSection(t.SectionID); sec == nil || sec.ProjectID != t.ProjectID {
			t.SectionID = ""
			changed = true
		}
	}
	return changed
}

func (s *Service) save(keys ...string) error {
	if s.Persistence == nil {
		return ErrNoPersistence
	}
	for _, key := range keys {
		var v any
		switch key {
		case store.KeyTasks:
			v = s.tasks
		case store.KeyProjects:
			v = s.projects
		case store.KeySections:
			v = s.sections
		case store.KeyLogs:
			v = s.logs
		case store.KeyUser:
			v = s.user
		case store.KeyView:
			v = s.view
		default:
			return fmt.Errorf("app: unknown key %q", key)
		}
		if err := store.WriteJSON(s.Persistence, key, v); err != nil {
			return err
		}
	}
	return nil
}

func (s *Service) record(action task.Action, title string) {
	s.logs = logbook.Append(s.logs, logbook.Record(action, title, s.now()))
}

func (s *Service) cue(fn func(Feedback)) {
	if s.user.EnableSound {
		fn(s.feedback)
	}
}

func (s *Service) findTask(id string) *task.Task {
	for _, t := range s.tasks {
		if t.ID == id {
			return t
		}
	}
	return nil
}

func (s *Service) findProject(id string) *task.Project {
	for _, p := range s.projects {
		if p.ID == id {
			return p
		}
	}
	return nil
}

func (s *Service) findSection(id string) *task.Section {
	for _, sec := range s.sections {
		if sec.ID == id {
			return sec
		}
	}
	return nil
}

func (s *Service) projectExists(id string) bool {
	return id == task.InboxID || s.findProject(id) != nil
}

// sectionIn reports whether sectionID is empty or a section of projectID.
func (s *Service) sectionIn(sectionID, projectID string) bool {
	if sectionID == "" {
		return true
	}
	sec := s.findSection(sectionID)
	return sec != nil && sec.ProjectID == projectID
}

// appendTo places the open tasks of seq at the end of b in sequence order.
func (s *Service) appendTo(seq []*task.Task, b order.Bucket) {
	next := order.Next(s.tasks, b)
	for _, t := range seq {
		t.ProjectID = b.ProjectID
		t.SectionID = b.SectionID
		if t.IsCompleted {
			continue
		}
		t.Order = next
		next++
	}
}

// Tasks returns a copy of every task.
func (s *Service) Tasks() []*task.Task {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneTasks(s.tasks)
}

// Task returns a copy of the task id.
func (s *Service) Task(id string) (*task.Task, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	t := s.findTask(id)
	if t == nil {
		return nil, false
	}
	return t.Clone(), true
}

// Projects returns a copy of every project.
func (s *Service) Projects() []*task.Project {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*task.Project, 0, len(s.projects))
	for _, p := range s.projects {
		out = append(out, p.Clone())
	}
	return out
}

// Project returns a copy of the project id.
func (s *Service) Project(id string) (*task.Project, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p := s.findProject(id)
	if p == nil {
		return nil, false
	}
	return p.Clone(), true
}

// Sections returns the sections of projectID sorted by order, or every
// section when projectID is empty.
func (s *Service) Sections(projectID string) []*task.Section {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var src []*task.Section
	if projectID == "" {
		src = s.sections
	} else {
		src = view.SectionsOf(s.sections, projectID)
	}
	out := make([]*task.Section, 0, len(src))
	for _, sec := range src {
		out = append(out, sec.Clone())
	}
	return out
}

// User returns the user settings.
func (s *Service) User() task.UserSettings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user
}

func cloneTasks(in []*task.Task) []*task.Task {
	out := make([]*task.Task, 0, len(in))
	for _, t := range in {
		out = append(out, t.Clone())
	}
	return out
}
