package commands

import (
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/spf13/cobra"

	"tableflip.dev/zentask/pkg/app"
	"tableflip.dev/zentask/pkg/order"
	"tableflip.dev/zentask/pkg/view"
)

func addMove(topLevel *cobra.Command) {
	var (
		project   string
		section   string
		index     int
		toProject bool
		flat      bool
	)

	cmd := &cobra.Command{
		Use:   "mv <task id>",
		Short: "Reorder a task or move it to another section or project",
		Long: `Reorder a task within its list, or move it into another section or project.
--index counts open tasks only and defaults to the end of the list.
--to-project drops the task onto a project like the sidebar does: it lands at
the end of the unsectioned list.
--flat treats the arguments as two positions in the flat list of every task.`,
		Example: `
zentask mv <id> --index 0
zentask mv <id> --section <section id> --index 2
zentask mv <id> --project shopping --to-project
zentask mv --flat 4 0
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if flat {
				return cobra.ExactArgs(2)(cmd, args)
			}
			return cobra.ExactArgs(1)(cmd, args)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, _, err := openService()
			if err != nil {
				return output.HandleError(err)
			}
			at := index
			if at < 0 {
				at = math.MaxInt32
			}

			var ok bool
			changed := cmd.Flags().Changed
			switch {
			case flat:
				src, err := strconv.Atoi(args[0])
				if err != nil {
					return output.HandleError(fmt.Errorf("source position: %w", err))
				}
				dst, err := strconv.Atoi(args[1])
				if err != nil {
					return output.HandleError(fmt.Errorf("destination position: %w", err))
				}
				ok, err = svc.ReorderByGlobalIndex(src, dst)
				if err != nil {
					return output.HandleError(err)
				}
				if !ok {
					return output.HandleError(fmt.Errorf("no task at position %d", src))
				}
				return nil
			case toProject:
				if project == "" {
					return output.HandleError(errors.New("--to-project needs --project"))
				}
				ok, err = svc.ApplyDrop(app.Drop{
					TaskID:    args[0],
					Dest:      order.Bucket{ProjectID: project},
					ToProject: true,
				})
			case changed("project") || changed("section"):
				ok, err = svc.Move(args[0], order.Bucket{ProjectID: project, SectionID: section}, at)
			default:
				ok, err = svc.Reorder(args[0], at)
			}
			if err != nil {
				return output.HandleError(err)
			}
			if !ok {
				return output.HandleError(fmt.Errorf("could not move %q: unknown or completed task, or unknown destination", args[0]))
			}
			t, _ := svc.Task(args[0])
			f := view.ForProject(t.ProjectID)
			return output.HandleError(runList(svc, &f, nil, false))
		},
	}

	cmd.Flags().StringVarP(&project, "project", "p", "", "Destination project id.")
	cmd.Flags().StringVarP(&section, "section", "s", "", "Destination section id.")
	cmd.Flags().IntVarP(&index, "index", "i", -1, "Destination position among open tasks.")
	cmd.Flags().BoolVar(&toProject, "to-project", false, "Drop onto the project rather than into a list.")
	cmd.Flags().BoolVar(&flat, "flat", false, "Reorder by position in the flat list of every task.")
	registerTaskCompletion(cmd)
	registerProjectCompletion(cmd, "project")

	topLevel.AddCommand(cmd)
}
