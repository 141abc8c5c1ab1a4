package app

import (
	"sort"
	"time"

	"tableflip.dev/zentask/pkg/task"
)

// ReportSection groups tasks completed in a window under their project.
type ReportSection struct {
	ProjectID string
	Name      string
	Tasks     []*task.Task
}

// ReportResult lists completed tasks for a time window.
type ReportResult struct {
	Since    time.Time
	Until    time.Time
	Sections []ReportSection
	Total    int
}

// Report returns the tasks completed between since and until, grouped by
// project with the inbox first and projects by name. Within a project the
// most recent completion comes first.
func (s *Service) Report(since, until time.Time) ReportResult {
	if since.After(until) {
		since, until = until, since
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	res := ReportResult{Since: since, Until: until}
	grouped := make(map[string][]*task.Task)
	for _, t := range s.tasks {
		if !t.IsCompleted || t.CompletedAt == nil {
			continue
		}
		at := t.CompletedAt.Time
		if at.Before(since) || at.After(until) {
			continue
		}
		grouped[t.ProjectID] = append(grouped[t.ProjectID], t.Clone())
		res.Total++
	}

	ids := make([]string, 0, len(grouped))
	for id := range grouped {
		ids = append(ids, id)
	}
	name := func(id string) string {
		if p := s.findProject(id); p != nil {
			return p.Name
		}
		return "Inbox"
	}
	sort.Slice(ids, func(i, j int) bool {
		if (ids[i] == task.InboxID) != (ids[j] == task.InboxID) {
			return ids[i] == task.InboxID
		}
		return name(ids[i]) < name(ids[j])
	})
	for _, id := range ids {
		items := grouped[id]
		sort.SliceStable(items, func(i, j int) bool {
			return items[i].CompletedAt.After(items[j].CompletedAt.Time)
		})
		res.Sections = append(res.Sections, ReportSection{ProjectID: id, Name: name(id), Tasks: items})
	}
	return res
}
