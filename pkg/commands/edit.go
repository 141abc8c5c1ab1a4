package commands

import (
	"context"
	"io"
	"os"

	"github.com/spf13/cobra"

	"tableflip.dev/zentask/pkg/app"
	"tableflip.dev/zentask/pkg/commands/options"
	"tableflip.dev/zentask/pkg/runner/info"
	"tableflip.dev/zentask/pkg/task"
)

func addEdit(topLevel *cobra.Command) {
	to := &options.TaskOptions{}
	ids := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:   "edit <task id>",
		Short: "Change the fields of a task",
		Long: `Change the fields of a task. Only the flags given are applied. Moving a task
to another project without --section puts it at the end of that project's
unsectioned list.`,
		Example: `
zentask edit <id> --title "call the plumber" --priority high
zentask edit <id> --project shopping
zentask edit <id> --notes - < notes.md
`,
		Args: ids.RequireID("task"),
		RunE: func(cmd *cobra.Command, args []string) error {
			u, err := taskUpdate(cmd, to)
			if err != nil {
				return output.HandleError(err)
			}
			svc, _, err := openService()
			if err != nil {
				return output.HandleError(err)
			}
			ok, err := svc.UpdateTask(ids.ID, u)
			if err != nil {
				return output.HandleError(err)
			}
			if !ok {
				return output.HandleError(errNoTask(ids.ID))
			}
			if output.JSON {
				t, _ := svc.Task(ids.ID)
				return output.Print(t)
			}
			i := info.Info{ID: ids.ID, Service: svc, Printer: printer(false)}
			return i.Do(context.Background())
		},
	}

	options.AddPlacementArgs(cmd, to)
	options.AddTaskArgs(cmd, to)
	options.AddEditArgs(cmd, to)
	registerTaskCompletion(cmd)
	registerProjectCompletion(cmd, "project")

	topLevel.AddCommand(cmd)
}

// taskUpdate turns the flags that were set into a TaskUpdate.
func taskUpdate(cmd *cobra.Command, to *options.TaskOptions) (app.TaskUpdate, error) {
	var u app.TaskUpdate
	changed := cmd.Flags().Changed

	if changed("title") {
		u.Title = &to.Title
	}
	if changed("priority") {
		p, err := task.ParsePriority(to.Priority)
		if err != nil {
			return u, err
		}
		u.Priority = &p
	}
	if changed("project") {
		u.ProjectID = &to.Project
	}
	if changed("section") {
		u.SectionID = &to.Section
	}
	if changed("due") {
		v, err := options.Date("due", to.Deadline)
		if err != nil {
			return u, err
		}
		u.DeadlineDate = &v
	}
	if changed("working") {
		v, err := options.Date("working", to.Working)
		if err != nil {
			return u, err
		}
		u.WorkingDate = &v
	}
	if changed("notes") {
		notes := to.Notes
		if notes == "-" {
			b, err := io.ReadAll(os.Stdin)
			if err != nil {
				return u, err
			}
			notes = string(b)
		}
		u.Notes = &notes
	}
	if changed("repeat") {
		r, err := task.ParseRepeat(to.Repeat)
		if err != nil {
			return u, err
		}
		u.Repeat = &r
	}
	if changed("color") {
		c := to.Color
		if c != "" {
			var err error
			if c, err = task.NormalizeColor(c); err != nil {
				return u, err
			}
		}
		u.Color = &c
	}
	return u, nil
}
