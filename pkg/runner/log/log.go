// Package log provides the runner logic for the logbook.
package log

import (
	"context"
	"errors"
	"time"

	"tableflip.dev/zentask/pkg/app"
	"tableflip.dev/zentask/pkg/printers"
)

type Log struct {
	Service *app.Service
	// Window limits entries to a trailing window; zero shows every entry.
	Window  time.Duration
	Printer *printers.PrettyPrint
}

func (n *Log) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not get, no service")
	}
	pp := n.Printer
	if pp == nil {
		pp = &printers.PrettyPrint{}
	}
	pp.Logbook(n.Service.Logbook(n.Window))
	pp.Progress(n.Service.WeeklyProgress())
	return nil
}
