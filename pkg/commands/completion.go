package commands

import (
	"os"

	"github.com/spf13/cobra"

	"tableflip.dev/zentask/pkg/store"
)

func addCompletions(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "completion",
		Short: "Generates bash completion scripts",
		Long: `To load completion run

. <(zentask completion)

To configure your bash shell to load completions for each session add to your bashrc

# ~/.bashrc or ~/.profile
. <(zentask completion)
`,
		Run: func(cmd *cobra.Command, args []string) {
			_ = topLevel.GenBashCompletion(os.Stdout)
		},
	}

	topLevel.AddCommand(cmd)
}

// completionService opens the store quietly; completions must never print
// warnings into the shell.
func completionService() []string {
	prev := store.Warnings
	store.Warnings = discard{}
	defer func() { store.Warnings = prev }()
	svc, _, err := openService()
	if err != nil {
		return nil
	}
	out := []string{"inbox\tInbox"}
	for _, p := range svc.Projects() {
		out = append(out, p.ID+"\t"+p.Name)
	}
	return out
}

func projectCompletions(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
	return completionService(), cobra.ShellCompDirectiveNoFileComp
}

func registerProjectCompletion(cmd *cobra.Command, flagName string) {
	_ = cmd.RegisterFlagCompletionFunc(flagName, projectCompletions)
}

func registerProjectArgCompletion(cmd *cobra.Command) {
	cmd.ValidArgsFunction = func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		if len(args) > 0 {
			return nil, cobra.ShellCompDirectiveNoFileComp
		}
		return projectCompletions(cmd, args, toComplete)
	}
}

func registerFilterCompletion(cmd *cobra.Command) {
	cmd.ValidArgsFunction = func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		if len(args) > 0 {
			return nil, cobra.ShellCompDirectiveNoFileComp
		}
		out := []string{"today\tdue today", "upcoming\tdue later", "completed\tthe logbook"}
		return append(out, completionService()...), cobra.ShellCompDirectiveNoFileComp
	}
	_ = cmd.RegisterFlagCompletionFunc("priority", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return []string{"low", "medium", "high", "all"}, cobra.ShellCompDirectiveNoFileComp
	})
}

func registerTaskCompletion(cmd *cobra.Command) {
	cmd.ValidArgsFunction = func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		if len(args) > 0 {
			return nil, cobra.ShellCompDirectiveNoFileComp
		}
		prev := store.Warnings
		store.Warnings = discard{}
		defer func() { store.Warnings = prev }()
		svc, _, err := openService()
		if err != nil {
			return nil, cobra.ShellCompDirectiveNoFileComp
		}
		var out []string
		for _, t := range svc.Tasks() {
			out = append(out, t.ID+"\t"+t.Title)
		}
		return out, cobra.ShellCompDirectiveNoFileComp
	}
}
