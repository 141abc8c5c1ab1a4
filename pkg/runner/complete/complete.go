// Package complete provides the runner logic for toggling task completion.
package complete

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/zentask/pkg/app"
	"tableflip.dev/zentask/pkg/printers"
)

// Complete toggles the completion state of a task.
type Complete struct {
	ID      string
	Service *app.Service
	Printer *printers.PrettyPrint
}

// Do executes the toggle for the configured task ID.
func (n *Complete) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not complete, no service")
	}
	ok, err := n.Service.ToggleCompletion(n.ID)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("no task with id %q", n.ID)
	}

	pp := n.Printer
	if pp == nil {
		pp = &printers.PrettyPrint{ShowID: true}
	}
	t, _ := n.Service.Task(n.ID)
	pp.Tasks(t)
	pp.Progress(n.Service.WeeklyProgress())
	return nil
}
