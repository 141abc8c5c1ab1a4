package commands

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/spf13/cobra"

	"tableflip.dev/zentask/pkg/task"
)

func addSettings(topLevel *cobra.Command) {
	var (
		name  string
		theme string
		sound bool
	)

	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Show or change user settings",
		Example: `
zentask settings
zentask settings --name Sam --theme dark --sound=false
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, cfg, err := openService()
			if err != nil {
				return output.HandleError(err)
			}
			changed := cmd.Flags().Changed
			if changed("name") {
				if err := svc.SetUserName(name); err != nil {
					return output.HandleError(err)
				}
			}
			if changed("theme") {
				t, err := task.ParseTheme(theme)
				if err != nil {
					return output.HandleError(err)
				}
				if err := svc.SetTheme(t); err != nil {
					return output.HandleError(err)
				}
			}
			if changed("sound") {
				if err := svc.SetSound(sound); err != nil {
					return output.HandleError(err)
				}
			}

			u := svc.User()
			if output.JSON {
				return output.Print(u)
			}
			bold := color.New(color.Bold)
			tbl := uitable.New()
			tbl.Separator = "  "
			tbl.AddRow(bold.Sprint("name"), u.Name)
			tbl.AddRow(bold.Sprint("onboarded"), u.IsOnboarded)
			tbl.AddRow(bold.Sprint("theme"), u.Theme)
			tbl.AddRow(bold.Sprint("sound"), u.EnableSound)
			tbl.AddRow(bold.Sprint("store"), cfg.Path)
			tbl.AddRow(bold.Sprint("weekly goal"), cfg.WeeklyGoal)
			tbl.RightAlign(0)
			_, _ = fmt.Fprintln(color.Output, tbl)
			return nil
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "Your name; setting it completes onboarding.")
	cmd.Flags().StringVar(&theme, "theme", "", "light, dark or black.")
	cmd.Flags().BoolVar(&sound, "sound", true, "Ring the bell on create, complete and weekly goal.")

	topLevel.AddCommand(cmd)
}
