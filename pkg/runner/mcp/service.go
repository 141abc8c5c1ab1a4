// Package mcp provides the Model Context Protocol server integration for zentask.
package mcp

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"tableflip.dev/zentask/pkg/app"
	"tableflip.dev/zentask/pkg/order"
	"tableflip.dev/zentask/pkg/task"
	"tableflip.dev/zentask/pkg/view"
)

// Service adapts the entity store to transport-friendly values.
type Service struct {
	App *app.Service
}

// ErrTaskNotFound is returned when a task id is unknown.
var ErrTaskNotFound = errors.New("task not found")

// TaskDTO is a transport-friendly projection of a task.
type TaskDTO struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	IsCompleted  bool   `json:"isCompleted"`
	CompletedAt  string `json:"completedAt,omitempty"`
	Priority     string `json:"priority"`
	ProjectID    string `json:"projectId"`
	ProjectName  string `json:"projectName"`
	SectionID    string `json:"sectionId,omitempty"`
	SectionTitle string `json:"sectionTitle,omitempty"`
	WorkingDate  string `json:"workingDate,omitempty"`
	DeadlineDate string `json:"deadlineDate,omitempty"`
	Notes        string `json:"notes,omitempty"`
	Order        int    `json:"order"`
	Repeat       string `json:"repeat,omitempty"`
	Color        string `json:"color,omitempty"`
	CreatedISO   string `json:"created"`
}

// SectionDTO describes a section.
type SectionDTO struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Order int    `json:"order"`
}

// ProjectSummary describes a project and its open task count.
type ProjectSummary struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Color       string       `json:"color,omitempty"`
	Icon        string       `json:"icon,omitempty"`
	Description string       `json:"description,omitempty"`
	OpenCount   int          `json:"openCount"`
	Sections    []SectionDTO `json:"sections"`
}

// LogDTO is an activity log entry.
type LogDTO struct {
	Action    string `json:"action"`
	TaskTitle string `json:"taskTitle"`
	Timestamp string `json:"timestamp"`
}

// NewService wraps an opened entity store.
func NewService(a *app.Service) *Service {
	return &Service{App: a}
}

func (s *Service) ready() error {
	if s.App == nil {
		return errors.New("service is not configured")
	}
	return nil
}

// ListProjects returns the inbox followed by every project.
func (s *Service) ListProjects() ([]ProjectSummary, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	counts := s.App.Counts()
	out := []ProjectSummary{{
		ID:        task.InboxID,
		Name:      "Inbox",
		OpenCount: counts.Inbox,
		Sections:  s.sections(task.InboxID),
	}}
	for _, p := range s.App.Projects() {
		out = append(out, ProjectSummary{
			ID:          p.ID,
			Name:        p.Name,
			Color:       p.Color,
			Icon:        p.Icon,
			Description: p.Description,
			OpenCount:   counts.Projects[p.ID],
			Sections:    s.sections(p.ID),
		})
	}
	return out, nil
}

func (s *Service) sections(projectID string) []SectionDTO {
	out := make([]SectionDTO, 0)
	for _, sec := range s.App.Sections(projectID) {
		out = append(out, SectionDTO{ID: sec.ID, Title: sec.Title, Order: sec.Order})
	}
	return out
}

// ListTasks returns the tasks visible under filter in display order. An
// empty filter uses the active filter.
func (s *Service) ListTasks(filter, priority string) ([]TaskDTO, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	f := s.App.ActiveFilter()
	if strings.TrimSpace(filter) != "" {
		var err error
		if f, err = view.ParseFilter(filter); err != nil {
			return nil, err
		}
	}
	var p task.Priority
	if strings.TrimSpace(priority) != "" {
		var err error
		if p, err = task.ParsePriority(priority); err != nil {
			return nil, err
		}
	}
	res := s.App.ViewFor(f, p)
	if res.Logbook {
		return s.completed(), nil
	}
	return s.toDTOs(res.Tasks()), nil
}

func (s *Service) completed() []TaskDTO {
	var done []*task.Task
	for _, t := range s.App.Tasks() {
		if t.IsCompleted {
			done = append(done, t)
		}
	}
	sort.SliceStable(done, func(i, j int) bool {
		return completedAt(done[i]).After(completedAt(done[j]))
	})
	return s.toDTOs(done)
}

func completedAt(t *task.Task) time.Time {
	if t.CompletedAt == nil {
		return time.Time{}
	}
	return t.CompletedAt.Time
}

// TaskByID returns a single task.
func (s *Service) TaskByID(id string) (TaskDTO, error) {
	if err := s.ready(); err != nil {
		return TaskDTO{}, err
	}
	t, ok := s.App.Task(strings.TrimSpace(id))
	if !ok {
		return TaskDTO{}, fmt.Errorf("%w: %s", ErrTaskNotFound, id)
	}
	return s.toDTO(t), nil
}

// SearchTasks returns tasks whose title or notes contain query, open tasks
// first.
func (s *Service) SearchTasks(query string, limit int) ([]TaskDTO, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil, errors.New("query is required")
	}
	var hits []*task.Task
	for _, t := range s.App.Tasks() {
		if strings.Contains(strings.ToLower(t.Title), q) || strings.Contains(strings.ToLower(t.Notes), q) {
			hits = append(hits, t)
		}
	}
	sort.SliceStable(hits, func(i, j int) bool {
		return !hits[i].IsCompleted && hits[j].IsCompleted
	})
	if limit > 0 && len(hits) > limit {
		hits = hits[:limit]
	}
	return s.toDTOs(hits), nil
}

// CreateTask adds a task and returns it.
func (s *Service) CreateTask(in app.NewTask) (TaskDTO, error) {
	if err := s.ready(); err != nil {
		return TaskDTO{}, err
	}
	id, err := s.App.CreateTask(in)
	if err != nil {
		return TaskDTO{}, err
	}
	return s.TaskByID(id)
}

// ToggleTask flips completion and returns the task.
func (s *Service) ToggleTask(id string) (TaskDTO, error) {
	if err := s.ready(); err != nil {
		return TaskDTO{}, err
	}
	ok, err := s.App.ToggleCompletion(id)
	if err != nil {
		return TaskDTO{}, err
	}
	if !ok {
		return TaskDTO{}, fmt.Errorf("%w: %s", ErrTaskNotFound, id)
	}
	return s.TaskByID(id)
}

// DeleteTask removes a task and returns what was deleted.
func (s *Service) DeleteTask(id string) (TaskDTO, error) {
	dto, err := s.TaskByID(id)
	if err != nil {
		return TaskDTO{}, err
	}
	if _, err := s.App.DeleteTask(id); err != nil {
		return TaskDTO{}, err
	}
	return dto, nil
}

// UpdateTask merges u into the task id.
func (s *Service) UpdateTask(id string, u app.TaskUpdate) (TaskDTO, error) {
	if err := s.ready(); err != nil {
		return TaskDTO{}, err
	}
	ok, err := s.App.UpdateTask(id, u)
	if err != nil {
		return TaskDTO{}, err
	}
	if !ok {
		return TaskDTO{}, fmt.Errorf("%w: %s", ErrTaskNotFound, id)
	}
	return s.TaskByID(id)
}

// MoveTask places the task at index in the bucket (projectID, sectionID).
// An empty projectID keeps the task's project.
func (s *Service) MoveTask(id, projectID, sectionID string, index int) (TaskDTO, error) {
	if err := s.ready(); err != nil {
		return TaskDTO{}, err
	}
	ok, err := s.App.Move(id, order.Bucket{ProjectID: projectID, SectionID: sectionID}, index)
	if err != nil {
		return TaskDTO{}, err
	}
	if !ok {
		return TaskDTO{}, fmt.Errorf("can not move %s to %q/%q", id, projectID, sectionID)
	}
	return s.TaskByID(id)
}

// CreateProject adds a project and returns its summary.
func (s *Service) CreateProject(name, icon, description string) (ProjectSummary, error) {
	if err := s.ready(); err != nil {
		return ProjectSummary{}, err
	}
	id, err := s.App.CreateProject(name)
	if err != nil {
		return ProjectSummary{}, err
	}
	u := app.ProjectUpdate{}
	if icon != "" {
		u.Icon = &icon
	}
	if description != "" {
		u.Description = &description
	}
	if _, err := s.App.UpdateProject(id, u); err != nil {
		return ProjectSummary{}, err
	}
	p, _ := s.App.Project(id)
	return ProjectSummary{ID: p.ID, Name: p.Name, Color: p.Color, Icon: p.Icon, Description: p.Description, Sections: []SectionDTO{}}, nil
}

// CreateSection adds a section to a project.
func (s *Service) CreateSection(projectID, title string) (SectionDTO, error) {
	if err := s.ready(); err != nil {
		return SectionDTO{}, err
	}
	id, err := s.App.CreateSection(projectID, title)
	if err != nil {
		return SectionDTO{}, err
	}
	if id == "" {
		return SectionDTO{}, fmt.Errorf("%w %q", app.ErrUnknownProject, projectID)
	}
	for _, sec := range s.sections(projectID) {
		if sec.ID == id {
			return sec, nil
		}
	}
	return SectionDTO{ID: id, Title: title}, nil
}

// Logbook returns up to limit log entries, newest first.
func (s *Service) Logbook(limit int) ([]LogDTO, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	entries := s.App.Logbook(0)
	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}
	out := make([]LogDTO, 0, len(entries))
	for _, e := range entries {
		out = append(out, LogDTO{
			Action:    string(e.Action),
			TaskTitle: e.TaskTitle,
			Timestamp: task.FormatTime(e.Timestamp.Time),
		})
	}
	return out, nil
}

func (s *Service) toDTOs(tasks []*task.Task) []TaskDTO {
	out := make([]TaskDTO, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, s.toDTO(t))
	}
	return out
}

func (s *Service) toDTO(t *task.Task) TaskDTO {
	dto := TaskDTO{
		ID:           t.ID,
		Title:        t.Title,
		IsCompleted:  t.IsCompleted,
		Priority:     string(t.Priority),
		ProjectID:    t.ProjectID,
		ProjectName:  "Inbox",
		SectionID:    t.SectionID,
		WorkingDate:  t.WorkingDate,
		DeadlineDate: t.DeadlineDate,
		Notes:        t.Notes,
		Order:        t.Order,
		Repeat:       string(t.Repeat),
		Color:        t.Color,
		CreatedISO:   task.FormatTime(t.CreatedAt.Time),
	}
	if t.CompletedAt != nil {
		dto.CompletedAt = task.FormatTime(t.CompletedAt.Time)
	}
	if p, ok := s.App.Project(t.ProjectID); ok {
		dto.ProjectName = p.Name
	}
	if t.SectionID != "" {
		for _, sec := range s.App.Sections(t.ProjectID) {
			if sec.ID == t.SectionID {
				dto.SectionTitle = sec.Title
			}
		}
	}
	return dto
}
