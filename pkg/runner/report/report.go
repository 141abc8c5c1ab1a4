// Package report provides the runner logic for the completed-task report.
package report

import (
	"context"
	"errors"
	"time"

	"tableflip.dev/zentask/pkg/app"
	"tableflip.dev/zentask/pkg/printers"
)

type Report struct {
	Service *app.Service
	Window  time.Duration
	Now     time.Time
	ShowID  bool
	Printer *printers.PrettyPrint
}

func (n *Report) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not report, no service")
	}
	now := n.Now
	if now.IsZero() {
		now = time.Now()
	}
	res := n.Service.Report(now.Add(-n.Window), now)

	pp := n.Printer
	if pp == nil {
		pp = &printers.PrettyPrint{ShowID: n.ShowID}
	}
	pp.TitleWithCount("Completed", res.Total)
	pp.NewLine()
	for _, s := range res.Sections {
		pp.Title(s.Name)
		pp.Tasks(s.Tasks...)
	}
	return nil
}
