// Package add provides the runner logic for creating tasks.
package add

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/zentask/pkg/app"
	"tableflip.dev/zentask/pkg/printers"
	"tableflip.dev/zentask/pkg/view"
)

// Add creates a task and prints the list it landed in.
type Add struct {
	Task    app.NewTask
	ShowID  bool
	Service *app.Service
	Printer *printers.PrettyPrint

	// ID is set by Do to the created task id.
	ID string
}

func (n *Add) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not add, no service")
	}
	id, err := n.Service.CreateTask(n.Task)
	if err != nil {
		return err
	}
	n.ID = id

	t, _ := n.Service.Task(id)
	pp := n.printer()
	res := n.Service.ViewFor(view.ForProject(t.ProjectID), "")
	pp.Result(projectName(n.Service, t.ProjectID), res, nil)
	if !n.ShowID {
		_, _ = fmt.Fprintf(pp.Writer(), "created %s\n", id)
	}
	return nil
}

func (n *Add) printer() *printers.PrettyPrint {
	if n.Printer != nil {
		return n.Printer
	}
	return &printers.PrettyPrint{ShowID: n.ShowID}
}

func projectName(s *app.Service, id string) string {
	if p, ok := s.Project(id); ok {
		return p.Name
	}
	return "Inbox"
}
