// Package calendar provides the runner logic for the deadline calendar.
package calendar

import (
	"context"
	"errors"
	"time"

	"tableflip.dev/zentask/pkg/app"
	"tableflip.dev/zentask/pkg/printers"
)

type Calendar struct {
	Service *app.Service
	Month   time.Time
	// Months is how many consecutive months to print, at least one.
	Months  int
	Printer *printers.PrettyPrint
}

func (n *Calendar) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not show calendar, no service")
	}
	pp := n.Printer
	if pp == nil {
		pp = &printers.PrettyPrint{}
	}
	month := n.Month
	if month.IsZero() {
		month = time.Now()
	}
	month = time.Date(month.Year(), month.Month(), 1, 0, 0, 0, 0, time.Local)
	tasks := n.Service.Tasks()
	for i := 0; i < max(n.Months, 1); i++ {
		pp.Calendar(month, tasks...)
		month = month.AddDate(0, 1, 0)
	}
	return nil
}
