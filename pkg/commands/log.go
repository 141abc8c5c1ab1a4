package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/zentask/pkg/commands/options"
	"tableflip.dev/zentask/pkg/runner/log"
)

func addLog(topLevel *cobra.Command) {
	wo := &options.WindowOptions{}

	cmd := &cobra.Command{
		Use:   "log",
		Short: "Show the activity log and weekly progress",
		Example: `
zentask log
zentask log --window 1w
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			window, err := wo.GetWindow()
			if err != nil {
				return output.HandleError(err)
			}
			svc, _, err := openService()
			if err != nil {
				return output.HandleError(err)
			}
			if output.JSON {
				return output.Print(svc.Logbook(window))
			}
			l := log.Log{Service: svc, Window: window, Printer: printer(false)}
			return l.Do(context.Background())
		},
	}
	options.AddWindowArgs(cmd, wo, "")

	topLevel.AddCommand(cmd)
}
