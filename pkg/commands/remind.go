package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"tableflip.dev/zentask/pkg/app"
	"tableflip.dev/zentask/pkg/reminder"
	"tableflip.dev/zentask/pkg/timeutil"
)

func addRemind(topLevel *cobra.Command) {
	var (
		once      bool
		interval  string
		lookahead string
	)

	cmd := &cobra.Command{
		Use:   "remind",
		Short: "Watch deadlines and print a reminder as each task comes due",
		Long: `Scan open tasks on a fixed interval and print a reminder once for each task
whose deadline crosses the lookahead mark. The store is reloaded whenever
another zentask process changes it. --once scans a single time and exits.`,
		Example: `
zentask remind
zentask remind --lookahead 1h --interval 5m
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, cfg, err := openService()
			if err != nil {
				return output.HandleError(err)
			}
			every, err := timeutil.ParseWindow(interval, cfg.ReminderInterval)
			if err != nil {
				return output.HandleError(fmt.Errorf("--interval: %w", err))
			}
			ahead, err := timeutil.ParseWindow(lookahead, cfg.ReminderLookahead)
			if err != nil {
				return output.HandleError(fmt.Errorf("--lookahead: %w", err))
			}

			s := &reminder.Scanner{
				Tasks:     svc.Tasks,
				Notifier:  reminder.NotifierFunc(printReminder),
				Interval:  every,
				Lookahead: ahead,
			}
			if once {
				s.Scan()
				return nil
			}

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			go followStore(ctx, svc)
			_, _ = color.New(color.Faint).Fprintf(color.Output, "watching deadlines every %s, %s ahead\n",
				timeutil.FormatWindow(every), timeutil.FormatWindow(ahead))
			return output.HandleError(s.Run(ctx))
		},
	}
	cmd.Flags().BoolVar(&once, "once", false, "Scan once and exit.")
	cmd.Flags().StringVar(&interval, "interval", "", "Time between scans. Defaults to reminder.interval from config.")
	cmd.Flags().StringVar(&lookahead, "lookahead", "", "How far ahead to remind. Defaults to reminder.lookahead from config.")

	topLevel.AddCommand(cmd)
}

func printReminder(title, body string) {
	bold := color.New(color.Bold, color.FgYellow)
	_, _ = fmt.Fprintf(color.Output, "%s %s %s\n",
		time.Now().Format("15:04"), bold.Sprint("⏰ "+title+":"), body)
	bell{}.ring()
}

// followStore reloads svc until ctx is done.
func followStore(ctx context.Context, svc *app.Service) {
	events, err := svc.Watch(ctx)
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "remind: watch store: %v\n", err)
		return
	}
	for range events {
		if err := svc.Reload(); err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "remind: reload store: %v\n", err)
		}
	}
}
