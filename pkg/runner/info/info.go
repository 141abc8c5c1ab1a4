// Package info provides the runner logic for showing one task in full.
package info

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/zentask/pkg/app"
	"tableflip.dev/zentask/pkg/printers"
)

type Info struct {
	ID      string
	Service *app.Service
	Printer *printers.PrettyPrint
}

func (n *Info) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not show, no service")
	}
	t, ok := n.Service.Task(n.ID)
	if !ok {
		return fmt.Errorf("no task with id %q", n.ID)
	}
	project := "Inbox"
	if p, ok := n.Service.Project(t.ProjectID); ok {
		project = p.Icon + " " + p.Name
	}
	section := ""
	for _, s := range n.Service.Sections(t.ProjectID) {
		if s.ID == t.SectionID {
			section = s.Title
		}
	}
	pp := n.Printer
	if pp == nil {
		pp = &printers.PrettyPrint{}
	}
	return pp.Detail(t, project, section)
}
