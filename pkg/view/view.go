// Package view derives the visible task list for a filter. Nothing here
// mutates tasks; callers get fresh slices of the same task pointers.
package view

import (
	"errors"
	"sort"
	"strings"
	"time"

	"tableflip.dev/zentask/pkg/task"
)

// ErrUnknownFilter is returned by ParseFilter for an empty filter name.
var ErrUnknownFilter = errors.New("view: unknown filter")

// Kind distinguishes the built-in filters from project filters.
type Kind int

const (
	KindInbox Kind = iota
	KindToday
	KindUpcoming
	KindCompleted
	KindProject
)

// Filter selects which tasks are visible.
type Filter struct {
	Kind      Kind
	ProjectID string
}

var (
	Inbox     = Filter{Kind: KindInbox}
	Today     = Filter{Kind: KindToday}
	Upcoming  = Filter{Kind: KindUpcoming}
	Completed = Filter{Kind: KindCompleted}
)

// ForProject returns the filter showing a single project.
func ForProject(id string) Filter {
	if id == task.InboxID {
		return Inbox
	}
	return Filter{Kind: KindProject, ProjectID: id}
}

// ParseFilter maps a filter name to a Filter. Names that are not built-in
// filters are treated as project ids.
func ParseFilter(s string) (Filter, error) {
	s = strings.TrimSpace(s)
	switch strings.ToLower(s) {
	case "":
		return Filter{}, ErrUnknownFilter
	case "inbox":
		return Inbox, nil
	case "today":
		return Today, nil
	case "upcoming":
		return Upcoming, nil
	case "completed", "logbook", "log":
		return Completed, nil
	}
	return ForProject(s), nil
}

func (f Filter) String() string {
	switch f.Kind {
	case KindInbox:
		return "inbox"
	case KindToday:
		return "today"
	case KindUpcoming:
		return "upcoming"
	case KindCompleted:
		return "completed"
	}
	return f.ProjectID
}

// Input is the state a projection reads.
type Input struct {
	Tasks    []*task.Task
	Projects []*task.Project
	Sections []*task.Section
	// Priority, when set, keeps only tasks with exactly this priority.
	Priority task.Priority
	Now      time.Time
}

// Group is a run of tasks under one section heading. Section is nil for the
// unsectioned group.
type Group struct {
	Section *task.Section
	Tasks   []*task.Task
}

// Result is a projected view.
type Result struct {
	Filter Filter
	// Logbook is set for the completed filter; the caller shows the activity
	// log instead of tasks.
	Logbook bool
	// Sectioned reports whether Groups follow the section layout.
	Sectioned bool
	Groups    []Group
}

// Tasks returns the visible tasks in display order.
func (r Result) Tasks() []*task.Task {
	var out []*task.Task
	for _, g := range r.Groups {
		out = append(out, g.Tasks...)
	}
	return out
}

// Len returns the number of visible tasks.
func (r Result) Len() int {
	n := 0
	for _, g := range r.Groups {
		n += len(g.Tasks)
	}
	return n
}

// SupportsSections reports whether f shows section groups: the inbox and
// real projects do.
func SupportsSections(f Filter, projects []*task.Project) bool {
	switch f.Kind {
	case KindInbox:
		return true
	case KindProject:
		for _, p := range projects {
			if p.ID == f.ProjectID {
				return true
			}
		}
	}
	return false
}

// Matches reports whether t is visible under f, ignoring the priority filter.
func Matches(t *task.Task, f Filter, now time.Time) bool {
	if t == nil || t.IsCompleted {
		return false
	}
	switch f.Kind {
	case KindInbox:
		return true
	case KindToday:
		d, ok := t.Deadline()
		return ok && task.SameDay(d, now)
	case KindUpcoming:
		d, ok := t.Deadline()
		return ok && d.After(now) && !task.SameDay(d, now)
	case KindCompleted:
		return false
	case KindProject:
		return t.ProjectID == f.ProjectID
	}
	return false
}

// Project computes the visible list for f.
func Project(in Input, f Filter) Result {
	res := Result{Filter: f}
	if f.Kind == KindCompleted {
		res.Logbook = true
		return res
	}
	now := in.Now
	if now.IsZero() {
		now = time.Now()
	}

	visible := make([]*task.Task, 0)
	for _, t := range in.Tasks {
		if !Matches(t, f, now) {
			continue
		}
		if in.Priority != "" && t.Priority != in.Priority {
			continue
		}
		visible = append(visible, t)
	}

	if !SupportsSections(f, in.Projects) {
		sortByOrder(visible)
		res.Groups = []Group{{Tasks: visible}}
		return res
	}

	res.Sectioned = true
	sections := SectionsOf(in.Sections, projectOf(f))
	grouped := make(map[string][]*task.Task, len(sections)+1)
	known := make(map[string]bool, len(sections))
	for _, s := range sections {
		known[s.ID] = true
	}
	for _, t := range visible {
		key := ""
		if t.SectionID != "" && known[t.SectionID] {
			key = t.SectionID
		}
		grouped[key] = append(grouped[key], t)
	}

	unsectioned := grouped[""]
	sortByOrder(unsectioned)
	res.Groups = append(res.Groups, Group{Tasks: unsectioned})
	for _, s := range sections {
		members := grouped[s.ID]
		sortByOrder(members)
		res.Groups = append(res.Groups, Group{Section: s, Tasks: members})
	}
	return res
}

// SectionsOf returns the sections owned by projectID sorted by order.
func SectionsOf(sections []*task.Section, projectID string) []*task.Section {
	out := make([]*task.Section, 0)
	for _, s := range sections {
		if s.ProjectID == projectID {
			out = append(out, s)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Order < out[j].Order
	})
	return out
}

func projectOf(f Filter) string {
	if f.Kind == KindInbox {
		return task.InboxID
	}
	return f.ProjectID
}

func sortByOrder(seq []*task.Task) {
	sort.SliceStable(seq, func(i, j int) bool {
		return seq[i].Order < seq[j].Order
	})
}
