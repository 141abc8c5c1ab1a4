package printers

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/zentask/pkg/task"
)

const width = len("11 12 13 14 15 16 17") // an example week

// Calendar prints a month grid with deadline days highlighted, followed by
// the open tasks due that month grouped by day.
func (pp *PrettyPrint) Calendar(month time.Time, tasks ...*task.Task) {
	due := DeadlinesIn(month, tasks)
	count := make([]int, DaysIn(month))
	for day, ts := range due {
		count[day-1] = len(ts)
	}
	pp.PrintMonthCount(month, count)

	days := make([]int, 0, len(due))
	for day := range due {
		days = append(days, day)
	}
	sort.Ints(days)

	b := color.New(color.Bold)
	for _, day := range days {
		on := time.Date(month.Year(), month.Month(), day, 0, 0, 0, 0, time.Local)
		_, _ = b.Fprintf(pp.out(), "%2d %s\n", day, on.Weekday().String()[0:3])
		for _, t := range due[day] {
			_, _ = fmt.Fprint(pp.out(), "   ")
			pp.Task(t)
		}
	}
}

// DeadlinesIn groups the open tasks due in month by day of month. Each day
// lists tasks by deadline.
func DeadlinesIn(month time.Time, tasks []*task.Task) map[int][]*task.Task {
	out := make(map[int][]*task.Task)
	y, m, _ := month.Local().Date()
	for _, t := range tasks {
		if t == nil || t.IsCompleted {
			continue
		}
		d, ok := t.Deadline()
		if !ok {
			continue
		}
		dy, dm, dd := d.Local().Date()
		if dy != y || dm != m {
			continue
		}
		out[dd] = append(out[dd], t)
	}
	for _, ts := range out {
		sort.SliceStable(ts, func(i, j int) bool {
			a, _ := ts[i].Deadline()
			b, _ := ts[j].Deadline()
			return a.Before(b)
		})
	}
	return out
}

// PrintMonthCount prints a Monday-first month grid; days with a non-zero
// count are bold and today is underlined.
func (pp *PrettyPrint) PrintMonthCount(then time.Time, count []int) {
	w := pp.out()
	tf := color.New(color.FgWhite, color.Italic)

	m := then.Month().String()
	mid := (width - len(m)) / 2
	_, _ = tf.Fprintf(w, "%s%s%s\n", strings.Repeat(" ", mid), m, strings.Repeat(" ", width-mid-len(m)))
	_, _ = color.New(color.Faint).Fprintln(w, "Mo Tu We Th Fr Sa Su")

	// Pad out the start of the month.
	col := mondayIndex(StartDay(then))
	_, _ = fmt.Fprint(w, strings.Repeat("   ", col))

	l1 := color.New(color.Faint, color.FgWhite)
	l2 := color.New(color.Bold, color.FgHiWhite)
	today := pp.now()

	days := DaysIn(then)
	for i := 0; i < days; i++ {
		printer := l1
		if i < len(count) && count[i] > 0 {
			printer = l2
		}
		if today.Year() == then.Year() && today.Month() == then.Month() && today.Day() == i+1 {
			printer = color.New(color.Underline, color.Bold)
		}
		_, _ = printer.Fprintf(w, "%2d ", i+1)

		col++
		if col == 7 {
			col = 0
			_, _ = fmt.Fprint(w, "\n")
		}
	}
	_, _ = fmt.Fprint(w, "\n\n")
}

func mondayIndex(d time.Weekday) int {
	return (int(d) + 6) % 7
}

func DaysIn(then time.Time) int {
	return time.Date(then.Year(), then.Month()+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func StartDay(then time.Time) time.Weekday {
	return time.Date(then.Year(), then.Month(), 1, 1, 0, 0, 0, time.UTC).Weekday()
}
