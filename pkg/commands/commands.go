package commands

import (
	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/zentask/pkg/commands/options"
)

var (
	output    = &options.OutputOptions{}
	ephemeral bool
)

func New() *cobra.Command {
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:   "zentask",
		Short: base.Wrap80("Projects, sections and prioritized to-dos on the command line."),
		Long: base.Wrap80("zentask keeps tasks in projects and sections, orders them " +
			"the way you left them and remembers what you finished. Run without " +
			"arguments to see the active list."),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, _, err := openService()
			if err != nil {
				return output.HandleError(err)
			}
			onboardingHint(svc)
			return output.HandleError(runList(svc, nil, nil, io.ShowID))
		},
	}
	options.AddOutputArg(cmd, output)
	options.AddShowIDArgs(cmd, io)
	cmd.PersistentFlags().BoolVar(&ephemeral, "ephemeral", false,
		"Keep everything in memory for this run only.")

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addAdd(topLevel)
	addDone(topLevel)
	addRemove(topLevel)
	addEdit(topLevel)
	addMove(topLevel)
	addList(topLevel)
	addShow(topLevel)
	addLog(topLevel)
	addReport(topLevel)
	addCalendar(topLevel)
	addProject(topLevel)
	addSection(topLevel)
	addUse(topLevel)
	addSettings(topLevel)
	addReset(topLevel)
	addRemind(topLevel)
	addMCP(topLevel)
	addUI(topLevel)
	addKey(topLevel)
	addVersion(topLevel)
	addCompletions(topLevel)
}
