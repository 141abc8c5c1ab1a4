package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/zentask/pkg/commands/options"
	"tableflip.dev/zentask/pkg/runner/info"
)

func addShow(topLevel *cobra.Command) {
	ids := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:     "show <task id>",
		Aliases: []string{"info"},
		Short:   "Show a task with its notes",
		Args:    ids.RequireID("task"),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, _, err := openService()
			if err != nil {
				return output.HandleError(err)
			}
			if output.JSON {
				t, ok := svc.Task(ids.ID)
				if !ok {
					return output.HandleError(errNoTask(ids.ID))
				}
				return output.Print(t)
			}
			i := info.Info{ID: ids.ID, Service: svc, Printer: printer(false)}
			return output.HandleError(i.Do(context.Background()))
		},
	}
	registerTaskCompletion(cmd)

	topLevel.AddCommand(cmd)
}
