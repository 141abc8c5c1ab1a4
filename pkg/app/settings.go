package app

import (
	"fmt"
	"strings"
	"time"

	"tableflip.dev/zentask/pkg/logbook"
	"tableflip.dev/zentask/pkg/store"
	"tableflip.dev/zentask/pkg/task"
	"tableflip.dev/zentask/pkg/view"
)

// ActiveFilter returns the persisted filter. A filter naming a project that
// no longer exists falls back to the inbox.
func (s *Service) ActiveFilter() view.Filter {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.activeFilter()
}

func (s *Service) activeFilter() view.Filter {
	f, err := view.ParseFilter(s.view.ActiveFilter)
	if err != nil {
		return view.Inbox
	}
	if f.Kind == view.KindProject && s.findProject(f.ProjectID) == nil {
		return view.Inbox
	}
	return f
}

// PriorityFilter returns the persisted priority filter; empty means none.
func (s *Service) PriorityFilter() task.Priority {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.view.PriorityFilter
}

// SetActiveFilter selects and persists the active filter.
func (s *Service) SetActiveFilter(f view.Filter) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if f.Kind == view.KindProject && s.findProject(f.ProjectID) == nil {
		return fmt.Errorf("%w %q", ErrUnknownProject, f.ProjectID)
	}
	s.view.ActiveFilter = f.String()
	return s.save(store.KeyView)
}

// SetPriorityFilter sets the priority filter; an empty priority clears it.
func (s *Service) SetPriorityFilter(p task.Priority) error {
	if p != "" && !p.Valid() {
		return fmt.Errorf("app: unknown priority %q", p)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.view.PriorityFilter = p
	return s.save(store.KeyView)
}

// View projects the tasks under the active and priority filters.
func (s *Service) View() view.Result {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.project(s.activeFilter(), s.view.PriorityFilter)
}

// ViewFor projects the tasks under f and p without changing the persisted
// filters.
func (s *Service) ViewFor(f view.Filter, p task.Priority) view.Result {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.project(f, p)
}

func (s *Service) project(f view.Filter, p task.Priority) view.Result {
	sections := make([]*task.Section, 0, len(s.sections))
	for _, sec := range s.sections {
		sections = append(sections, sec.Clone())
	}
	return view.Project(view.Input{
		Tasks:    cloneTasks(s.tasks),
		Projects: s.projects,
		Sections: sections,
		Priority: p,
		Now:      s.now(),
	}, f)
}

// Logbook returns log entries newest first, limited to the trailing window
// when window is positive.
func (s *Service) Logbook(window time.Duration) []task.LogEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	entries := logbook.Within(s.logs, s.now(), window)
	return append([]task.LogEntry(nil), entries...)
}

// WeeklyProgress reports progress toward the weekly completion goal.
func (s *Service) WeeklyProgress() logbook.Progress {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return logbook.WeeklyProgress(s.logs, s.now(), s.goal)
}

// Counts returns the sidebar badge counts.
func (s *Service) Counts() view.Counts {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return view.Count(s.tasks, s.now())
}

// SetUserName stores the name and completes onboarding.
func (s *Service) SetUserName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyName
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user.Name = name
	s.user.IsOnboarded = true
	return s.save(store.KeyUser)
}

// SetTheme stores the theme.
func (s *Service) SetTheme(t task.Theme) error {
	if _, err := task.ParseTheme(string(t)); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user.Theme = t
	return s.save(store.KeyUser)
}

// SetSound turns feedback cues on or off.
func (s *Service) SetSound(on bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user.EnableSound = on
	return s.save(store.KeyUser)
}

// Reset erases every stored key and reseeds as on first run.
func (s *Service) Reset() error {
	if s.Persistence == nil {
		return ErrNoPersistence
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.Persistence.EraseAll(); err != nil {
		return err
	}
	return s.load()
}
