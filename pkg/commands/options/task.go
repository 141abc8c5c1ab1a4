package options

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/zentask/pkg/task"
)

// TaskOptions are the task fields shared by add and edit.
type TaskOptions struct {
	Title    string
	Project  string
	Section  string
	Priority string
	Deadline string
	Working  string
	Notes    string
	Repeat   string
	Color    string
}

// AddPlacementArgs registers the project and section flags.
func AddPlacementArgs(cmd *cobra.Command, o *TaskOptions) {
	cmd.Flags().StringVarP(&o.Project, "project", "p", "",
		"Project id, or inbox.")
	cmd.Flags().StringVarP(&o.Section, "section", "s", "",
		"Section id within the project.")
}

// AddTaskArgs registers the field flags.
func AddTaskArgs(cmd *cobra.Command, o *TaskOptions) {
	cmd.Flags().StringVar(&o.Priority, "priority", "",
		`Priority: low, medium or high.`)
	cmd.Flags().StringVarP(&o.Deadline, "due", "d", "",
		`Deadline, example: --due="2025-06-28" or --due="2025-06-28T17:00".`)
	cmd.Flags().StringVarP(&o.Working, "working", "w", "",
		`Day you plan to work on it, same format as --due.`)
}

// AddEditArgs registers the flags only edit understands.
func AddEditArgs(cmd *cobra.Command, o *TaskOptions) {
	cmd.Flags().StringVar(&o.Title, "title", "", "New title.")
	cmd.Flags().StringVar(&o.Notes, "notes", "", "Markdown notes; use - to read stdin.")
	cmd.Flags().StringVar(&o.Repeat, "repeat", "", "Recurrence hint: none, daily, weekly, monthly or yearly.")
	cmd.Flags().StringVar(&o.Color, "color", "", "Hex color override, empty string clears.")
}

// GetPriority parses --priority; empty means unset.
func (o *TaskOptions) GetPriority() (task.Priority, error) {
	if strings.TrimSpace(o.Priority) == "" {
		return "", nil
	}
	return task.ParsePriority(o.Priority)
}

// Date checks a --due or --working value. Empty stays empty.
func Date(flag, v string) (string, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return "", nil
	}
	if _, ok := task.ParseDate(v); !ok {
		return "", fmt.Errorf("--%s: can not parse %q as a date", flag, v)
	}
	return v, nil
}
