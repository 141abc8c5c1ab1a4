// Package remove provides the runner logic for deleting tasks.
package remove

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"

	"tableflip.dev/zentask/pkg/app"
)

// Remove deletes a task once Confirm approves.
type Remove struct {
	ID      string
	Service *app.Service
	// Confirm is asked before deleting; nil deletes unconditionally.
	Confirm func(label string) (bool, error)
	Out     io.Writer
}

func (n *Remove) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not remove, no service")
	}
	t, ok := n.Service.Task(n.ID)
	if !ok {
		return fmt.Errorf("no task with id %q", n.ID)
	}
	if n.Confirm != nil {
		yes, err := n.Confirm(fmt.Sprintf("Delete %q", t.Title))
		if err != nil || !yes {
			return err
		}
	}
	if _, err := n.Service.DeleteTask(n.ID); err != nil {
		return err
	}
	out := n.Out
	if out == nil {
		out = color.Output
	}
	_, _ = color.New(color.Faint).Fprintf(out, "deleted %q\n", t.Title)
	return nil
}
