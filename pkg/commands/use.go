package commands

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"tableflip.dev/zentask/pkg/runner/get"
	"tableflip.dev/zentask/pkg/task"
	"tableflip.dev/zentask/pkg/view"
)

func addUse(topLevel *cobra.Command) {
	var priority string

	cmd := &cobra.Command{
		Use:   "use <inbox|today|upcoming|completed|project id>",
		Short: "Set the active filter",
		Long: `Set the filter "zentask" and "zentask ls" show by default, and the project new
tasks go to. --priority narrows it to one priority; --priority all clears that.`,
		Example: `
zentask use today
zentask use shopping --priority high
`,
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{"inbox", "today", "upcoming", "completed"},
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, _, err := openService()
			if err != nil {
				return output.HandleError(err)
			}
			if len(args) == 1 {
				f, err := view.ParseFilter(args[0])
				if err != nil {
					return output.HandleError(err)
				}
				if err := svc.SetActiveFilter(f); err != nil {
					return output.HandleError(err)
				}
			}
			if cmd.Flags().Changed("priority") {
				var p task.Priority
				if priority != "" && priority != "all" {
					if p, err = task.ParsePriority(priority); err != nil {
						return output.HandleError(err)
					}
				}
				if err := svc.SetPriorityFilter(p); err != nil {
					return output.HandleError(err)
				}
			}
			title := get.Title(svc, svc.ActiveFilter(), svc.PriorityFilter())
			if output.JSON {
				return output.Print(map[string]string{
					"activeFilter":   svc.ActiveFilter().String(),
					"priorityFilter": string(svc.PriorityFilter()),
				})
			}
			_, _ = fmt.Fprintf(color.Output, "using %s\n", color.New(color.Bold).Sprint(title))
			return nil
		},
	}
	cmd.Flags().StringVar(&priority, "priority", "", "Priority filter: low, medium, high or all.")
	registerFilterCompletion(cmd)

	topLevel.AddCommand(cmd)
}
