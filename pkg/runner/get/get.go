// Package get provides the runner logic for listing a filtered view.
package get

import (
	"context"
	"errors"

	"tableflip.dev/zentask/pkg/app"
	"tableflip.dev/zentask/pkg/printers"
	"tableflip.dev/zentask/pkg/task"
	"tableflip.dev/zentask/pkg/view"
)

type Get struct {
	ShowID bool
	// Filter overrides the active filter when set.
	Filter *view.Filter
	// Priority overrides the persisted priority filter when set.
	Priority *task.Priority
	Service  *app.Service
	Printer  *printers.PrettyPrint
}

func (n *Get) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not get, no service")
	}
	pp := n.Printer
	if pp == nil {
		pp = &printers.PrettyPrint{ShowID: n.ShowID}
	}

	f := n.Service.ActiveFilter()
	if n.Filter != nil {
		f = *n.Filter
	}
	p := n.Service.PriorityFilter()
	if n.Priority != nil {
		p = *n.Priority
	}
	res := n.Service.ViewFor(f, p)
	pp.Result(Title(n.Service, f, p), res, n.Service.Logbook(0))
	return nil
}

// Title names the filter the way the sidebar does.
func Title(s *app.Service, f view.Filter, p task.Priority) string {
	var title string
	switch f.Kind {
	case view.KindInbox:
		title = "Inbox"
	case view.KindToday:
		title = "Today"
	case view.KindUpcoming:
		title = "Upcoming"
	case view.KindCompleted:
		title = "Logbook"
	default:
		title = f.ProjectID
		if proj, ok := s.Project(f.ProjectID); ok {
			title = proj.Icon + " " + proj.Name
		}
	}
	if p != "" {
		title += " (" + string(p) + ")"
	}
	return title
}
