package commands

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/zentask/pkg/commands/options"
	"tableflip.dev/zentask/pkg/runner/report"
)

func addReport(topLevel *cobra.Command) {
	wo := &options.WindowOptions{}
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Show the tasks completed in a trailing window, grouped by project",
		Example: `
zentask report
zentask report --window 2w
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
			now := time.Now()
			if output.JSON {
				return output.Print(svc.Report(now.Add(-window), now))
			}
			r := report.Report{
				Service: svc,
				Window:  window,
				Now:     now,
				ShowID:  io.ShowID,
				Printer: printer(io.ShowID),
			}
			return r.Do(context.Background())
		},
	}
	options.AddWindowArgs(cmd, wo, "1w")
	options.AddShowIDArgs(cmd, io)

	topLevel.AddCommand(cmd)
}
