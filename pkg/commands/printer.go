package commands

import (
	"fmt"

	"tableflip.dev/zentask/pkg/app"
	"tableflip.dev/zentask/pkg/printers"
)

func printer(showID bool) *printers.PrettyPrint {
	return &printers.PrettyPrint{ShowID: showID}
}

// discard swallows pretty output while --json is printing instead.
type discard struct{}

func (discard) Write(p []byte) (int, error) { return len(p), nil }

func errNoTask(id string) error {
	return fmt.Errorf("no task with id %q", id)
}

func projectTitle(svc *app.Service, id string) string {
	if p, ok := svc.Project(id); ok {
		return p.Icon + " " + p.Name
	}
	return "Inbox"
}
