package commands

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"tableflip.dev/zentask/pkg/commands/options"
	"tableflip.dev/zentask/pkg/task"
)

func addSection(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "section",
		Aliases: []string{"sections"},
		Short:   "Manage the sections of a project",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	addSectionAdd(cmd)
	addSectionList(cmd)
	addSectionEdit(cmd)
	addSectionRemove(cmd)

	topLevel.AddCommand(cmd)
}

func addSectionAdd(parent *cobra.Command) {
	var project string
	cmd := &cobra.Command{
		Use:   "add <title...>",
		Short: "Append a section to a project",
		Example: `
zentask section add --project todos Errands
`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, _, err := openService()
			if err != nil {
				return output.HandleError(err)
			}
			id, err := svc.CreateSection(project, strings.Join(args, " "))
			if err != nil {
				return output.HandleError(err)
			}
			if id == "" {
				return output.HandleError(fmt.Errorf("no project with id %q", project))
			}
			if output.JSON {
				return output.Print(map[string]string{"id": id, "projectId": project})
			}
			_, _ = fmt.Fprintf(color.Output, "created section %s\n", id)
			return nil
		},
	}
	cmd.Flags().StringVarP(&project, "project", "p", task.InboxID, "Project id.")
	registerProjectCompletion(cmd, "project")
	parent.AddCommand(cmd)
}

func addSectionList(parent *cobra.Command) {
	io := &options.IDOptions{}
	var project string
	cmd := &cobra.Command{
		Use:     "ls",
		Aliases: []string{"list"},
		Short:   "List sections in display order",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, _, err := openService()
			if err != nil {
				return output.HandleError(err)
			}
			if output.JSON {
				return output.Print(svc.Sections(project))
			}
			pp := printer(io.ShowID)
			if project != "" {
				pp.Sections(projectTitle(svc, project), svc.Sections(project))
				return nil
			}
			pp.Sections("Inbox", svc.Sections(task.InboxID))
			for _, p := range svc.Projects() {
				pp.Sections(p.Icon+" "+p.Name, svc.Sections(p.ID))
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&project, "project", "p", "", "Only this project.")
	options.AddShowIDArgs(cmd, io)
	registerProjectCompletion(cmd, "project")
	parent.AddCommand(cmd)
}

func addSectionEdit(parent *cobra.Command) {
	ids := &options.IDOptions{}
	var title string
	cmd := &cobra.Command{
		Use:   "edit <section id> --title <title>",
		Short: "Rename a section",
		Args:  ids.RequireID("section"),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, _, err := openService()
			if err != nil {
				return output.HandleError(err)
			}
			ok, err := svc.UpdateSection(ids.ID, title)
			if err != nil {
				return output.HandleError(err)
			}
			if !ok {
				return output.HandleError(fmt.Errorf("no section with id %q", ids.ID))
			}
			_, _ = fmt.Fprintf(color.Output, "renamed section to %q\n", strings.TrimSpace(title))
			return nil
		},
	}
	cmd.Flags().StringVar(&title, "title", "", "New title.")
	_ = cmd.MarkFlagRequired("title")
	parent.AddCommand(cmd)
}

func addSectionRemove(parent *cobra.Command) {
	ids := &options.IDOptions{}
	co := &options.ConfirmOptions{}
	cmd := &cobra.Command{
		Use:   "rm <section id>",
		Short: "Delete a section; its tasks stay in the project",
		Args:  ids.RequireID("section"),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, _, err := openService()
			if err != nil {
				return output.HandleError(err)
			}
			title := ""
			for _, s := range svc.Sections("") {
				if s.ID == ids.ID {
					title = s.Title
				}
			}
			if title == "" {
				return output.HandleError(fmt.Errorf("no section with id %q", ids.ID))
			}
			yes, err := co.Confirm(fmt.Sprintf("Delete section %q", title))
			if err != nil || !yes {
				return output.HandleError(err)
			}
			if _, err := svc.DeleteSection(ids.ID); err != nil {
				return output.HandleError(err)
			}
			_, _ = color.New(color.Faint).Fprintf(color.Output, "deleted section %q\n", title)
			return nil
		},
	}
	options.AddConfirmArgs(cmd, co)
	parent.AddCommand(cmd)
}
