package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"tableflip.dev/zentask/pkg/task"
)

// ViewState is the persisted selection of filters.
type ViewState struct {
	ActiveFilter   string        `json:"activeFilter"`
	PriorityFilter task.Priority `json:"priorityFilter,omitempty"`
}

// Snapshot is everything the app persists.
type Snapshot struct {
	Tasks    []*task.Task
	Projects []*task.Project
	Sections []*task.Section
	Logs     []task.LogEntry
	User     task.UserSettings
	View     ViewState

	// Absent holds keys that had no stored value.
	Absent map[string]bool
	// Corrupt holds keys whose stored value could not be decoded.
	Corrupt map[string]bool
}

// Warnings receives diagnostics about values that failed to decode.
var Warnings io.Writer = os.Stderr

// ReadJSON decodes the value under key into v. It returns ErrNotFound when
// nothing is stored.
func ReadJSON(p Persistence, key string, v any) error {
	data, err := p.Read(key)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("store: decode %s: %w", key, err)
	}
	return nil
}

// WriteJSON encodes v and stores it under key.
func WriteJSON(p Persistence, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("store: encode %s: %w", key, err)
	}
	return p.Write(key, data)
}

// LoadSnapshot reads every key. Absent or undecodable values are left at
// their zero value and reported in Absent or Corrupt so the caller can seed
// defaults; a bad value never fails the load.
func LoadSnapshot(p Persistence) Snapshot {
	s := Snapshot{
		Absent:  make(map[string]bool),
		Corrupt: make(map[string]bool),
	}
	read := func(key string, v any) {
		err := ReadJSON(p, key, v)
		switch {
		case err == nil:
		case errors.Is(err, ErrNotFound):
			s.Absent[key] = true
		default:
			fmt.Fprintf(Warnings, "store: %s: %v; using defaults\n", key, err)
			s.Corrupt[key] = true
		}
	}

	var tasks []*task.Task
	read(KeyTasks, &tasks)
	var projects []*task.Project
	read(KeyProjects, &projects)
	var sections []*task.Section
	read(KeySections, &sections)
	var logs []task.LogEntry
	read(KeyLogs, &logs)
	user := task.DefaultUser()
	read(KeyUser, &user)
	var view ViewState
	read(KeyView, &view)

	if s.Corrupt[KeyTasks] {
		tasks = nil
	}
	if s.Corrupt[KeyProjects] {
		projects = nil
	}
	if s.Corrupt[KeySections] {
		sections = nil
	}
	if s.Corrupt[KeyLogs] {
		logs = nil
	}
	if s.Corrupt[KeyUser] {
		user = task.DefaultUser()
	}
	if s.Corrupt[KeyView] {
		view = ViewState{}
	}

	s.Tasks = sanitizeTasks(tasks)
	s.Projects = sanitizeProjects(projects)
	s.Sections = sanitizeSections(sections)
	s.Logs = logs
	s.User = user
	s.View = view
	return s
}

func sanitizeTasks(in []*task.Task) []*task.Task {
	out := make([]*task.Task, 0, len(in))
	for _, t := range in {
		if t == nil {
			continue
		}
		if t.ID == "" {
			t.ID = task.NewID()
		}
		if t.ProjectID == "" {
			t.ProjectID = task.InboxID
		}
		if !t.Priority.Valid() {
			t.Priority = task.Medium
		}
		if !t.IsCompleted {
			t.CompletedAt = nil
		}
		out = append(out, t)
	}
	return out
}

func sanitizeProjects(in []*task.Project) []*task.Project {
	out := make([]*task.Project, 0, len(in))
	for _, p := range in {
		if p == nil || p.ID == "" || p.ID == task.InboxID {
			continue
		}
		out = append(out, p)
	}
	return out
}

func sanitizeSections(in []*task.Section) []*task.Section {
	out := make([]*task.Section, 0, len(in))
	for _, s := range in {
		if s == nil || s.ID == "" {
			continue
		}
		if s.ProjectID == "" {
			s.ProjectID = task.InboxID
		}
		out = append(out, s)
	}
	return out
}
