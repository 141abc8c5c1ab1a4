package task

import "time"

// Seeded project ids.
const (
	TodosID    = "todos"
	ShoppingID = "shopping"
)

// DefaultProjects returns the projects present on first run.
func DefaultProjects() []*Project {
	return []*Project{
		{
			ID:          TodosID,
			Name:        "To-Dos",
			Color:       "#3b82f6",
			Icon:        "📝",
			Description: "General tasks and daily reminders.",
		},
		{
			ID:          ShoppingID,
			Name:        "Shopping",
			Color:       "#f59e0b",
			Icon:        "🛒",
			Description: "Groceries and wishlists.",
		},
	}
}

// SampleTasks returns the onboarding tasks injected the first time the app
// runs with no task data. They are ordered 0..n-1 in projectID.
func SampleTasks(projectID string, now time.Time) []*Task {
	samples := []struct {
		title    string
		priority Priority
		notes    string
		deadline time.Duration
	}{
		{
			title:    "Welcome to zentask! 👋",
			priority: High,
			notes:    "This is a minimalistic to-do app designed to help you focus.\n\n- [x] Clean design\n- [x] Keyboard driven\n- [ ] You being productive!",
		},
		{
			title:    "Show me to see task details 📝",
			priority: Medium,
			notes:    "# Rich Notes\nYou can add details here using **markdown**.\n\n- create lists\n- add links\n- write thoughts",
		},
		{
			title:    "Try marking this task as Important ⭐",
			priority: Low,
			notes:    "Use `zentask edit <id> --priority high`.",
		},
		{
			title:    "Complete a task to hear it 🎉",
			priority: Medium,
		},
		{
			title:    "Add a deadline to this task 📅",
			priority: Medium,
			deadline: 48 * time.Hour,
		},
		{
			title:    "Organize tasks into Projects 📁",
			priority: Low,
			notes:    "Create projects like 'Work' or 'Personal' with `zentask project add`.",
		},
		{
			title:    "Switch to Dark Mode in Settings 🌙",
			priority: Low,
		},
	}

	tasks := make([]*Task, 0, len(samples))
	for i, s := range samples {
		t := New(s.title, projectID, now)
		t.Priority = s.priority
		t.Notes = s.notes
		t.Order = i
		if s.deadline > 0 {
			t.DeadlineDate = now.Add(s.deadline).Format(time.RFC3339)
		}
		tasks = append(tasks, t)
	}
	return tasks
}
