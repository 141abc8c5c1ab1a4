// Package ui provides the runner logic for the interactive board.
package ui

import (
	"context"
	"errors"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"tableflip.dev/zentask/pkg/app"
	"tableflip.dev/zentask/pkg/tui"
)

type UI struct {
	Service           *app.Service
	ReminderInterval  time.Duration
	ReminderLookahead time.Duration
}

func (d *UI) Do(ctx context.Context) error {
	if d.Service == nil {
		return errors.New("can not open the board, no service")
	}
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	m := tui.New(ctx, d.Service, tui.Options{
		ReminderInterval:  d.ReminderInterval,
		ReminderLookahead: d.ReminderLookahead,
	})
	_, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}
