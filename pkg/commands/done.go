package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/zentask/pkg/commands/options"
	"tableflip.dev/zentask/pkg/runner/complete"
)

func addDone(topLevel *cobra.Command) {
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:     "done <task id>",
		Aliases: []string{"complete", "toggle"},
		Short:   "Toggle a task between open and completed",
		Example: `
zentask done 0c1f9d2e-1c55-4d2c-9a43-4f3a1e0f7a10
`,
		Args: io.RequireID("task"),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, _, err := openService()
			if err != nil {
				return output.HandleError(err)
			}
			c := complete.Complete{
				ID:      io.ID,
				Service: svc,
				Printer: printer(true),
			}
			if output.JSON {
				c.Printer.Out = discard{}
			}
			if err := c.Do(context.Background()); err != nil {
				return output.HandleError(err)
			}
			if output.JSON {
				t, _ := svc.Task(io.ID)
				return output.Print(t)
			}
			return nil
		},
	}
	registerTaskCompletion(cmd)

	topLevel.AddCommand(cmd)
}
