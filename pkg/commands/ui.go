package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/zentask/pkg/runner/ui"
)

func addUI(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "ui",
		Short: "open the interactive board",
		Long: `Open the interactive board: pick a filter in the sidebar, move tasks with
shift+arrows, toggle with space, add with a, delete with d. Deadline reminders
show up while it runs, and changes made by other zentask processes appear
live.`,
		Example: `
zentask ui
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, cfg, err := openService()
			if err != nil {
				return err
			}
			i := ui.UI{
				Service:           svc,
				ReminderInterval:  cfg.ReminderInterval,
				ReminderLookahead: cfg.ReminderLookahead,
			}
			return i.Do(context.Background())
		},
	}

	topLevel.AddCommand(cmd)
}
