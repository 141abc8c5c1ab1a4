// Package task defines the zentask data model: tasks, projects, sections,
// activity log entries and user settings.
package task

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// InboxID is the sentinel project id for tasks that belong to no project.
const InboxID = "inbox"

// NewID returns a fresh opaque identifier.
func NewID() string {
	return uuid.New().String()
}

// Task is a single to-do item.
type Task struct {
	ID           string     `json:"id"`
	Title        string     `json:"title"`
	IsCompleted  bool       `json:"isCompleted"`
	CompletedAt  *Timestamp `json:"completedAt,omitempty"`
	Priority     Priority   `json:"priority"`
	ProjectID    string     `json:"projectId"`
	SectionID    string     `json:"sectionId,omitempty"`
	CreatedAt    Timestamp  `json:"createdAt"`
	WorkingDate  string     `json:"workingDate,omitempty"`
	DeadlineDate string     `json:"deadlineDate,omitempty"`
	Notes        string     `json:"notes"`
	Order        int        `json:"order"`
	Repeat       Repeat     `json:"repeat,omitempty"`
	Color        string     `json:"color,omitempty"`
}

// New builds an open task with default priority and empty notes.
func New(title, projectID string, created time.Time) *Task {
	if projectID == "" {
		projectID = InboxID
	}
	return &Task{
		ID:        NewID(),
		Title:     title,
		Priority:  Medium,
		ProjectID: projectID,
		CreatedAt: Timestamp{Time: created},
	}
}

// Complete marks the task completed at the given instant.
func (t *Task) Complete(at time.Time) {
	if at.Before(t.CreatedAt.Time) {
		at = t.CreatedAt.Time
	}
	t.IsCompleted = true
	t.CompletedAt = &Timestamp{Time: at}
}

// Uncomplete reopens the task and clears its completion time.
func (t *Task) Uncomplete() {
	t.IsCompleted = false
	t.CompletedAt = nil
}

// Deadline returns the parsed deadline; ok is false when unset or unparseable.
func (t *Task) Deadline() (time.Time, bool) {
	return ParseDate(t.DeadlineDate)
}

// Working returns the parsed working date; ok is false when unset or unparseable.
func (t *Task) Working() (time.Time, bool) {
	return ParseDate(t.WorkingDate)
}

// InProject reports whether the task belongs to a real project.
func (t *Task) InProject() bool {
	return t.ProjectID != "" && t.ProjectID != InboxID
}

// Clone returns a deep copy of the task.
func (t *Task) Clone() *Task {
	if t == nil {
		return nil
	}
	cp := *t
	if t.CompletedAt != nil {
		at := *t.CompletedAt
		cp.CompletedAt = &at
	}
	return &cp
}

func (t *Task) String() string {
	box := "[ ]"
	if t.IsCompleted {
		box = "[x]"
	}
	return fmt.Sprintf("%s %s", box, t.Title)
}

// Priority ranks a task.
type Priority string

const (
	Low    Priority = "Low"
	Medium Priority = "Medium"
	High   Priority = "High"
)

// Priorities lists every priority from lowest to highest.
func Priorities() []Priority {
	return []Priority{Low, Medium, High}
}

// ParsePriority accepts the priority name or its first letter, in any case.
func ParsePriority(s string) (Priority, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "low", "l":
		return Low, nil
	case "medium", "med", "m":
		return Medium, nil
	case "high", "h", "important":
		return High, nil
	}
	return "", fmt.Errorf("task: unknown priority %q", s)
}

// Valid reports whether p is one of the known priorities.
func (p Priority) Valid() bool {
	return p == Low || p == Medium || p == High
}

// Repeat is an informational recurrence hint.
type Repeat string

const (
	NoRepeat Repeat = ""
	Daily    Repeat = "daily"
	Weekly   Repeat = "weekly"
	Monthly  Repeat = "monthly"
	Yearly   Repeat = "yearly"
)

// ParseRepeat accepts a recurrence name; "none" and "" clear it.
func ParseRepeat(s string) (Repeat, error) {
	switch r := Repeat(strings.ToLower(strings.TrimSpace(s))); r {
	case NoRepeat, Daily, Weekly, Monthly, Yearly:
		return r, nil
	case "none":
		return NoRepeat, nil
	}
	return "", fmt.Errorf("task: unknown repeat %q", s)
}
