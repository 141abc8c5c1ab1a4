// Package reminder scans open tasks for deadlines that are about to pass and
// hands each one to a Notifier.
package reminder

import (
	"context"
	"fmt"
	"time"

	"tableflip.dev/zentask/pkg/task"
)

const (
	DefaultInterval  = time.Minute
	DefaultLookahead = 30 * time.Minute

	// Title is the notification title.
	Title = "Task Reminder"
)

// Notifier delivers a notification. It is fire-and-forget.
type Notifier interface {
	Notify(title, body string)
}

// NotifierFunc adapts a function to Notifier.
type NotifierFunc func(title, body string)

func (f NotifierFunc) Notify(title, body string) { f(title, body) }

// Due returns the open tasks whose deadline is more than lookahead-interval
// and at most lookahead away from now. Scanning every interval therefore
// selects each task exactly once.
func Due(tasks []*task.Task, now time.Time, interval, lookahead time.Duration) []*task.Task {
	var out []*task.Task
	for _, t := range tasks {
		if t == nil || t.IsCompleted {
			continue
		}
		d, ok := t.Deadline()
		if !ok {
			continue
		}
		until := d.Sub(now)
		if until > lookahead-interval && until <= lookahead {
			out = append(out, t)
		}
	}
	return out
}

// Body is the notification text for t.
func Body(t *task.Task, lookahead time.Duration) string {
	return fmt.Sprintf("%s is due in %s!", t.Title, describe(lookahead))
}

func describe(d time.Duration) string {
	switch {
	case d%time.Hour == 0 && d >= time.Hour:
		h := int(d / time.Hour)
		if h == 1 {
			return "1 hour"
		}
		return fmt.Sprintf("%d hours", h)
	case d%time.Minute == 0:
		m := int(d / time.Minute)
		if m == 1 {
			return "1 minute"
		}
		return fmt.Sprintf("%d minutes", m)
	}
	return d.String()
}

// Scanner runs Due on a ticker.
type Scanner struct {
	// Tasks returns the current tasks. It is called once per tick.
	Tasks     func() []*task.Task
	Notifier  Notifier
	Interval  time.Duration
	Lookahead time.Duration
	Now       func() time.Time
}

// Scan checks once and notifies for every due task. It returns how many
// notifications were sent.
func (s *Scanner) Scan() int {
	now := time.Now
	if s.Now != nil {
		now = s.Now
	}
	interval, lookahead := s.windows()
	due := Due(s.Tasks(), now(), interval, lookahead)
	for _, t := range due {
		s.Notifier.Notify(Title, Body(t, lookahead))
	}
	return len(due)
}

// Run scans every Interval until ctx is done. The ticker is stopped on
// return so nothing is notified afterwards.
func (s *Scanner) Run(ctx context.Context) error {
	if s.Tasks == nil || s.Notifier == nil {
		return fmt.Errorf("reminder: scanner needs tasks and a notifier")
	}
	interval, _ := s.windows()
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			s.Scan()
		}
	}
}

func (s *Scanner) windows() (time.Duration, time.Duration) {
	interval, lookahead := s.Interval, s.Lookahead
	if interval <= 0 {
		interval = DefaultInterval
	}
	if lookahead <= 0 {
		lookahead = DefaultLookahead
	}
	return interval, lookahead
}
