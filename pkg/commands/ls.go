package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/zentask/pkg/app"
	"tableflip.dev/zentask/pkg/commands/options"
	"tableflip.dev/zentask/pkg/runner/get"
	"tableflip.dev/zentask/pkg/task"
	"tableflip.dev/zentask/pkg/view"
)

func addList(topLevel *cobra.Command) {
	io := &options.IDOptions{}
	var priority string

	cmd := &cobra.Command{
		Use:     "ls [inbox|today|upcoming|completed|<project id>]",
		Aliases: []string{"get", "list"},
		Short:   "List the tasks of a filter",
		Long: `List the tasks of a filter. Without an argument the active filter set by
"zentask use" is shown. Project lists are grouped by section.`,
		Example: `
zentask ls
zentask ls today --priority high
zentask ls shopping -k
`,
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{"inbox", "today", "upcoming", "completed"},
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				f *view.Filter
				p *task.Priority
			)
			if len(args) == 1 {
				parsed, err := view.ParseFilter(args[0])
				if err != nil {
					return output.HandleError(err)
				}
				f = &parsed
			}
			if cmd.Flags().Changed("priority") {
				var parsed task.Priority
				if priority != "" && priority != "all" {
					var err error
					if parsed, err = task.ParsePriority(priority); err != nil {
						return output.HandleError(err)
					}
				}
				p = &parsed
			}
			svc, _, err := openService()
			if err != nil {
				return output.HandleError(err)
			}
			return output.HandleError(runList(svc, f, p, io.ShowID))
		},
	}
	cmd.Flags().StringVar(&priority, "priority", "", "Only show one priority; all shows every priority.")
	options.AddShowIDArgs(cmd, io)
	registerFilterCompletion(cmd)

	topLevel.AddCommand(cmd)
}

// runList prints a filter, falling back to the persisted view state for
// whatever is nil.
func runList(svc *app.Service, f *view.Filter, p *task.Priority, showID bool) error {
	if output.JSON {
		filter := svc.ActiveFilter()
		if f != nil {
			filter = *f
		}
		priority := svc.PriorityFilter()
		if p != nil {
			priority = *p
		}
		res := svc.ViewFor(filter, priority)
		if res.Logbook {
			return output.Print(svc.Logbook(0))
		}
		return output.Print(res.Tasks())
	}
	g := get.Get{
		ShowID:   showID,
		Filter:   f,
		Priority: p,
		Service:  svc,
		Printer:  printer(showID),
	}
	return g.Do(context.Background())
}
