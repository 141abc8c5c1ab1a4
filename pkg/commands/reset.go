package commands

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"tableflip.dev/zentask/pkg/commands/options"
)

func addReset(topLevel *cobra.Command) {
	co := &options.ConfirmOptions{}

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Erase every task, project and log entry and start over",
		RunE: func(cmd *cobra.Command, args []string) error {
			yes, err := co.Confirm("Erase everything and reseed the defaults")
			if err != nil || !yes {
				return output.HandleError(err)
			}
			svc, _, err := openService()
			if err != nil {
				return output.HandleError(err)
			}
			if err := svc.Reset(); err != nil {
				return output.HandleError(err)
			}
			_, _ = fmt.Fprintf(color.Output, "reset: %d tasks in %d projects\n",
				len(svc.Tasks()), len(svc.Projects()))
			return nil
		},
	}
	options.AddConfirmArgs(cmd, co)

	topLevel.AddCommand(cmd)
}
