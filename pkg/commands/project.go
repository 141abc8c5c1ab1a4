package commands

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"tableflip.dev/zentask/pkg/app"
	"tableflip.dev/zentask/pkg/commands/options"
)

func addProject(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "project",
		Aliases: []string{"projects"},
		Short:   "Manage projects",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	addProjectAdd(cmd)
	addProjectList(cmd)
	addProjectEdit(cmd)
	addProjectRemove(cmd)

	topLevel.AddCommand(cmd)
}

func addProjectAdd(parent *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "add <name...>",
		Short: "Create a project with a random color",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, _, err := openService()
			if err != nil {
				return output.HandleError(err)
			}
			id, err := svc.CreateProject(strings.Join(args, " "))
			if err != nil {
				return output.HandleError(err)
			}
			if output.JSON {
				p, _ := svc.Project(id)
				return output.Print(p)
			}
			_, _ = fmt.Fprintf(color.Output, "created project %s\n", id)
			return nil
		},
	}
	parent.AddCommand(cmd)
}

func addProjectList(parent *cobra.Command) {
	io := &options.IDOptions{}
	cmd := &cobra.Command{
		Use:     "ls",
		Aliases: []string{"list"},
		Short:   "List projects with their open task counts",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, _, err := openService()
			if err != nil {
				return output.HandleError(err)
			}
			if output.JSON {
				return output.Print(svc.Projects())
			}
			printer(io.ShowID).Projects(svc.Projects(), svc.Counts())
			return nil
		},
	}
	options.AddShowIDArgs(cmd, io)
	parent.AddCommand(cmd)
}

func addProjectEdit(parent *cobra.Command) {
	ids := &options.IDOptions{}
	var name, col, icon, description string

	cmd := &cobra.Command{
		Use:   "edit <project id>",
		Short: "Rename, recolor or describe a project",
		Example: `
zentask project edit shopping --icon 🧺 --color "#10b981"
`,
		Args: ids.RequireID("project"),
		RunE: func(cmd *cobra.Command, args []string) error {
			var u app.ProjectUpdate
			changed := cmd.Flags().Changed
			if changed("name") {
				u.Name = &name
			}
			if changed("color") {
				u.Color = &col
			}
			if changed("icon") {
				u.Icon = &icon
			}
			if changed("description") {
				u.Description = &description
			}
			svc, _, err := openService()
			if err != nil {
				return output.HandleError(err)
			}
			ok, err := svc.UpdateProject(ids.ID, u)
			if err != nil {
				return output.HandleError(err)
			}
			if !ok {
				return output.HandleError(fmt.Errorf("no project with id %q", ids.ID))
			}
			p, _ := svc.Project(ids.ID)
			if output.JSON {
				return output.Print(p)
			}
			_, _ = fmt.Fprintf(color.Output, "updated %s %s\n", p.Icon, p.Name)
			return nil
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "New name.")
	cmd.Flags().StringVar(&col, "color", "", "Hex color, for example #3b82f6.")
	cmd.Flags().StringVar(&icon, "icon", "", "Icon, usually an emoji.")
	cmd.Flags().StringVar(&description, "description", "", "Free text description.")
	registerProjectArgCompletion(cmd)
	parent.AddCommand(cmd)
}

func addProjectRemove(parent *cobra.Command) {
	ids := &options.IDOptions{}
	co := &options.ConfirmOptions{}

	cmd := &cobra.Command{
		Use:   "rm <project id>",
		Short: "Delete a project and its sections; its tasks move to the inbox",
		Args:  ids.RequireID("project"),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, _, err := openService()
			if err != nil {
				return output.HandleError(err)
			}
			p, ok := svc.Project(ids.ID)
			if !ok {
				return output.HandleError(fmt.Errorf("no project with id %q", ids.ID))
			}
			yes, err := co.Confirm(fmt.Sprintf("Delete project %q", p.Name))
			if err != nil || !yes {
				return output.HandleError(err)
			}
			if _, err := svc.DeleteProject(ids.ID); err != nil {
				return output.HandleError(err)
			}
			_, _ = color.New(color.Faint).Fprintf(color.Output, "deleted project %q\n", p.Name)
			return nil
		},
	}
	options.AddConfirmArgs(cmd, co)
	registerProjectArgCompletion(cmd)
	parent.AddCommand(cmd)
}
