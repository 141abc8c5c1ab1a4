package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/zentask/pkg/commands/options"
	"tableflip.dev/zentask/pkg/runner/remove"
)

func addRemove(topLevel *cobra.Command) {
	io := &options.IDOptions{}
	co := &options.ConfirmOptions{}

	cmd := &cobra.Command{
		Use:     "rm <task id>",
		Aliases: []string{"delete"},
		Short:   "Delete a task",
		Args:    io.RequireID("task"),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, _, err := openService()
			if err != nil {
				return output.HandleError(err)
			}
			r := remove.Remove{
				ID:      io.ID,
				Service: svc,
				Confirm: co.Confirm,
				Out:     cmd.OutOrStdout(),
			}
			return output.HandleError(r.Do(context.Background()))
		},
	}
	options.AddConfirmArgs(cmd, co)
	registerTaskCompletion(cmd)

	topLevel.AddCommand(cmd)
}
