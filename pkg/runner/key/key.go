// Package key provides CLI helpers to display the symbol legend.
package key

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
)

// Glyph is a symbol used in task listings.
type Glyph struct {
	Symbol  string
	Meaning string
}

// Symbols are the marks printed in front of and after a task title.
var Symbols = []Glyph{
	{"☐", "open task"},
	{"☑", "completed task"},
	{"!!", "high priority"},
	{"!", "medium priority"},
	{"·", "low priority"},
	{"⏰", "deadline, relative to now"},
	{"↻", "repeats"},
}

// Filters are the built-in names accepted by ls and use.
var Filters = []Glyph{
	{"inbox", "every open task"},
	{"today", "open tasks due today"},
	{"upcoming", "open tasks due after today"},
	{"completed", "the logbook"},
	{"<project id>", "open tasks of one project"},
}

// Key prints the symbol and filter legend.
type Key struct{}

// Do renders both tables to stdout.
func (k *Key) Do(ctx context.Context) error {
	_, _ = fmt.Fprintln(color.Output, "")
	k.Key(ctx, "Symbols", Symbols)
	_, _ = fmt.Fprintln(color.Output, "")
	k.Key(ctx, "Filters", Filters)
	_, _ = fmt.Fprintln(color.Output, "")
	return nil
}

// Key renders one legend table.
func (k *Key) Key(_ context.Context, heading string, glyfs []Glyph) {
	bold := color.New(color.Bold)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint(heading), bold.Sprint("Meaning"))
	for _, v := range glyfs {
		tbl.AddRow(v.Symbol, v.Meaning)
	}
	tbl.RightAlign(0)

	_, _ = fmt.Fprintln(color.Output, tbl)
}
