package view

import (
	"time"

	"tableflip.dev/zentask/pkg/task"
)

// Counts are the badge numbers shown next to each filter.
type Counts struct {
	// Open is the number of open tasks anywhere.
	Open int
	// Inbox is the number of open tasks that belong to no project.
	Inbox int
	// Today is the number of open tasks due today.
	Today    int
	Projects map[string]int
}

// Count tallies open tasks per filter.
func Count(tasks []*task.Task, now time.Time) Counts {
	c := Counts{Projects: make(map[string]int)}
	for _, t := range tasks {
		if t == nil || t.IsCompleted {
			continue
		}
		c.Open++
		if t.InProject() {
			c.Projects[t.ProjectID]++
		} else {
			c.Inbox++
		}
		if Matches(t, Today, now) {
			c.Today++
		}
	}
	return c
}
