package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/zentask/pkg/runner/calendar"
)

func addCalendar(topLevel *cobra.Command) {
	var (
		month  string
		months int
	)

	cmd := &cobra.Command{
		Use:     "cal",
		Aliases: []string{"calendar"},
		Short:   "Show a month calendar with task deadlines",
		Example: `
zentask cal
zentask cal --month 2025-07 --months 3
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			var start time.Time
			if month != "" {
				var err error
				if start, err = time.ParseInLocation("2006-01", month, time.Local); err != nil {
					return output.HandleError(fmt.Errorf("--month: expected YYYY-MM, got %q", month))
				}
			}
			svc, _, err := openService()
			if err != nil {
				return output.HandleError(err)
			}
			c := calendar.Calendar{
				Service: svc,
				Month:   start,
				Months:  months,
				Printer: printer(false),
			}
			return output.HandleError(c.Do(context.Background()))
		},
	}
	cmd.Flags().StringVar(&month, "month", "", "First month to show, YYYY-MM. Defaults to this month.")
	cmd.Flags().IntVar(&months, "months", 1, "Number of months to show.")

	topLevel.AddCommand(cmd)
}
