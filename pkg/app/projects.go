package app

import (
	"sort"
	"strings"

	"tableflip.dev/zentask/pkg/order"
	"tableflip.dev/zentask/pkg/store"
	"tableflip.dev/zentask/pkg/task"
	"tableflip.dev/zentask/pkg/view"
)

// CreateProject adds a project with a random color and the folder icon.
func (s *Service) CreateProject(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", ErrEmptyName
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	p := &task.Project{
		ID:    task.NewID(),
		Name:  name,
		Color: task.RandomColor(),
		Icon:  task.DefaultProjectIcon,
	}
	s.projects = append(s.projects, p)
	return p.ID, s.save(store.KeyProjects)
}

// ProjectUpdate carries the project fields to change.
type ProjectUpdate struct {
	Name        *string
	Color       *string
	Icon        *string
	Description *string
}

// UpdateProject merges u into the project id.
func (s *Service) UpdateProject(id string, u ProjectUpdate) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p := s.findProject(id)
	if p == nil {
		return false, nil
	}
	if u.Name != nil {
		name := strings.TrimSpace(*u.Name)
		if name == "" {
			return false, ErrEmptyName
		}
		p.Name = name
	}
	if u.Color != nil {
		c, err := task.NormalizeColor(*u.Color)
		if err != nil {
			return false, err
		}
		p.Color = c
	}
	if u.Icon != nil {
		p.Icon = *u.Icon
	}
	if u.Description != nil {
		p.Description = *u.Description
	}
	return true, s.save(store.KeyProjects)
}

// DeleteProject removes the project and its sections. Its tasks move to the
// end of the unsectioned inbox, and an active filter on the project falls
// back to the inbox.
func (s *Service) DeleteProject(id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	idx := -1
	for i, p := range s.projects {
		if p.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return false, nil
	}

	sectionRank := make(map[string]int)
	for i, sec := range view.SectionsOf(s.sections, id) {
		sectionRank[sec.ID] = i + 1
	}
	var orphans []*task.Task
	for _, t := range s.tasks {
		if t.ProjectID == id {
			orphans = append(orphans, t)
		}
	}
	sort.SliceStable(orphans, func(i, j int) bool {
		a, b := sectionRank[orphans[i].SectionID], sectionRank[orphans[j].SectionID]
		if a != b {
			return a < b
		}
		return orphans[i].Order < orphans[j].Order
	})
	for _, t := range orphans {
		t.ProjectID, t.SectionID = "", ""
	}
	s.appendTo(orphans, order.Bucket{ProjectID: task.InboxID})

	s.projects = append(s.projects[:idx:idx], s.projects[idx+1:]...)
	sections := make([]*task.Section, 0, len(s.sections))
	for _, sec := range s.sections {
		if sec.ProjectID != id {
			sections = append(sections, sec)
		}
	}
	s.sections = sections

	keys := []string{store.KeyProjects, store.KeySections, store.KeyTasks}
	if f, err := view.ParseFilter(s.view.ActiveFilter); err == nil && f.Kind == view.KindProject && f.ProjectID == id {
		s.view.ActiveFilter = view.Inbox.String()
		keys = append(keys, store.KeyView)
	}
	return true, s.save(keys...)
}

// CreateSection appends a section to projectID. It returns an empty id when
// the project is unknown.
func (s *Service) CreateSection(projectID, title string) (string, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return "", ErrEmptyTitle
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.projectExists(projectID) {
		return "", nil
	}
	next := 0
	for _, sec := range s.sections {
		if sec.ProjectID == projectID && sec.Order >= next {
			next = sec.Order + 1
		}
	}
	sec := &task.Section{
		ID:        task.NewID(),
		ProjectID: projectID,
		Title:     title,
		Order:     next,
	}
	s.sections = append(s.sections, sec)
	return sec.ID, s.save(store.KeySections)
}

// UpdateSection renames the section id.
func (s *Service) UpdateSection(id, title string) (bool, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return false, ErrEmptyTitle
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	sec := s.findSection(id)
	if sec == nil {
		return false, nil
	}
	sec.Title = title
	return true, s.save(store.KeySections)
}

// DeleteSection removes the section id. Its tasks are kept and join the end
// of the project's unsectioned bucket.
func (s *Service) DeleteSection(id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	idx := -1
	for i, sec := range s.sections {
		if sec.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return false, nil
	}
	sec := s.sections[idx]
	members := order.Live(s.tasks, order.Bucket{ProjectID: sec.ProjectID, SectionID: id})
	for _, t := range s.tasks {
		if t.SectionID == id && t.IsCompleted {
			members = append(members, t)
		}
	}
	for _, t := range members {
		t.SectionID = ""
		t.ProjectID = ""
	}
	s.appendTo(members, order.Bucket{ProjectID: sec.ProjectID})

	s.sections = append(s.sections[:idx:idx], s.sections[idx+1:]...)
	return true, s.save(store.KeyTasks, store.KeySections)
}
