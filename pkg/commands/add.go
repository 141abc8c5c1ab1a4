package commands

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/zentask/pkg/app"
	"tableflip.dev/zentask/pkg/commands/options"
	"tableflip.dev/zentask/pkg/runner/add"
)

func addAdd(topLevel *cobra.Command) {
	to := &options.TaskOptions{}
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:   "add <title...>",
		Short: "Add a task",
		Long: `Add a task to the end of its list. Without --project the task goes to the
project the active filter shows, or the inbox.`,
		Example: `
zentask add buy oat milk --project shopping
zentask add write release notes --priority high --due 2025-06-28T17:00
`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := to.GetPriority()
			if err != nil {
				return output.HandleError(err)
			}
			due, err := options.Date("due", to.Deadline)
			if err != nil {
				return output.HandleError(err)
			}
			working, err := options.Date("working", to.Working)
			if err != nil {
				return output.HandleError(err)
			}
			svc, _, err := openService()
			if err != nil {
				return output.HandleError(err)
			}
			a := add.Add{
				Task: app.NewTask{
					Title:        strings.Join(args, " "),
					ProjectID:    to.Project,
					SectionID:    to.Section,
					WorkingDate:  working,
					DeadlineDate: due,
					Priority:     p,
				},
				ShowID:  io.ShowID,
				Service: svc,
				Printer: printer(io.ShowID),
			}
			if output.JSON {
				a.Printer.Out = discard{}
			}
			if err := a.Do(context.Background()); err != nil {
				return output.HandleError(err)
			}
			if output.JSON {
				t, _ := svc.Task(a.ID)
				return output.Print(t)
			}
			return nil
		},
	}

	options.AddPlacementArgs(cmd, to)
	options.AddTaskArgs(cmd, to)
	options.AddShowIDArgs(cmd, io)
	registerProjectCompletion(cmd, "project")

	topLevel.AddCommand(cmd)
}
