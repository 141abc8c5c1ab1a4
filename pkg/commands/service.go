package commands

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"

	"tableflip.dev/zentask/pkg/app"
	"tableflip.dev/zentask/pkg/store"
)

// bell rings the terminal bell for every feedback cue.
type bell struct{}

func (bell) ring() {
	if isatty.IsTerminal(os.Stderr.Fd()) {
		_, _ = fmt.Fprint(os.Stderr, "\a")
	}
}

func (b bell) Pop()      { b.ring() }
func (b bell) Complete() { b.ring() }
func (b bell) Celebrate() {
	b.ring()
	_, _ = fmt.Fprintln(os.Stderr, "🎉 weekly goal reached!")
}

// openService loads the configured store, or an in-memory one with
// --ephemeral, and opens the entity store on top of it.
func openService() (*app.Service, *store.FileConfig, error) {
	cfg, err := store.LoadConfig()
	if err != nil {
		return nil, nil, err
	}
	var p store.Persistence
	if ephemeral {
		p = store.NewMemory()
	} else if p, err = store.Load(cfg); err != nil {
		return nil, nil, err
	}
	svc := app.New(p,
		app.WithFeedback(bell{}),
		app.WithWeeklyGoal(cfg.WeeklyGoal),
	)
	if err := svc.Open(); err != nil {
		return nil, nil, err
	}
	return svc, cfg, nil
}

// onboardingHint nudges users who never set a name.
func onboardingHint(svc *app.Service) {
	if output.JSON || svc.User().IsOnboarded {
		return
	}
	_, _ = fmt.Fprintln(os.Stderr, `tip: run "zentask settings --name <you>" to finish setup`)
}
