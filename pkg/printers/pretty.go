package printers

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/glamour"
	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/muesli/reflow/indent"
	"github.com/muesli/reflow/wordwrap"
	"github.com/muesli/termenv"

	"tableflip.dev/zentask/pkg/logbook"
	"tableflip.dev/zentask/pkg/task"
	"tableflip.dev/zentask/pkg/timeutil"
	"tableflip.dev/zentask/pkg/view"
)

type PrettyPrint struct {
	ShowID bool
	// Out defaults to color.Output.
	Out io.Writer
	// Width is the wrap width for titles and notes; 80 when unset.
	Width int
	// Style is the glamour style for notes: "dark", "light" or "notty".
	Style string
	Now   func() time.Time
}

var (
	spacing = strings.Repeat(" ", len("5f0c2a7e-93b1-4c58-9f3e-0d2a6b7c1e44  "))
)

func (pp *PrettyPrint) out() io.Writer {
	if pp.Out != nil {
		return pp.Out
	}
	return color.Output
}

// Writer is the destination of every print.
func (pp *PrettyPrint) Writer() io.Writer {
	return pp.out()
}

func (pp *PrettyPrint) width() int {
	if pp.Width > 0 {
		return pp.Width
	}
	return 80
}

func (pp *PrettyPrint) now() time.Time {
	if pp.Now != nil {
		return pp.Now()
	}
	return time.Now()
}

func (pp *PrettyPrint) NewLine() {
	_, _ = fmt.Fprintln(pp.out(), "")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)

	if pp.ShowID {
		_, _ = t.Fprint(pp.out(), spacing)
	}
	_, _ = t.Fprintln(pp.out(), title)
}

func (pp *PrettyPrint) TitleWithCount(title string, count int) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	if pp.ShowID {
		_, _ = t.Fprint(pp.out(), spacing)
	}
	_, _ = t.Fprint(pp.out(), title)
	_, _ = c.Fprintf(pp.out(), " - %d", count)

	switch count {
	case 1:
		_, _ = c.Fprintln(pp.out(), " task")
	default:
		_, _ = c.Fprintln(pp.out(), " tasks")
	}
}

func (pp *PrettyPrint) none() {
	f := color.New(color.Faint, color.Italic)
	if pp.ShowID {
		_, _ = f.Fprint(pp.out(), spacing)
	}
	_, _ = f.Fprint(pp.out(), " none\n\n")
}

// Tasks prints tasks one per line in the given order.
func (pp *PrettyPrint) Tasks(tasks ...*task.Task) {
	if len(tasks) == 0 {
		pp.none()
		return
	}
	for _, t := range tasks {
		pp.Task(t)
	}
	_, _ = fmt.Fprintln(pp.out(), "")
}

// Task prints a single task line.
func (pp *PrettyPrint) Task(t *task.Task) {
	w := pp.out()
	y := color.New(color.FgHiYellow, color.Italic, color.Faint)
	faint := color.New(color.Faint)

	if pp.ShowID {
		_, _ = y.Fprint(w, t.ID)
		if pad := len(spacing) - len(t.ID); pad > 0 {
			_, _ = y.Fprint(w, strings.Repeat(" ", pad))
		}
	}

	box := "☐"
	title := color.New()
	if t.IsCompleted {
		box = "☑"
		title = color.New(color.Faint, color.CrossedOut)
	}
	lead := fmt.Sprintf("%s %s ", box, priorityMark(t.Priority))
	text := wordwrap.String(t.Title, pp.width()-len(spacing)-4)
	lines := strings.Split(text, "\n")
	_, _ = fmt.Fprint(w, lead)
	_, _ = title.Fprint(w, lines[0])
	if d, ok := t.Deadline(); ok {
		due := color.New(color.FgCyan)
		if d.Before(pp.now()) && !t.IsCompleted {
			due = color.New(color.FgRed)
		}
		_, _ = due.Fprintf(w, "  ⏰ %s", timeutil.Relative(d, pp.now()))
	}
	if t.Repeat != task.NoRepeat {
		_, _ = faint.Fprintf(w, "  ↻ %s", t.Repeat)
	}
	_, _ = fmt.Fprintln(w, "")
	if len(lines) > 1 {
		rest := indent.String(strings.Join(lines[1:], "\n"), uint(len(lead)+pp.idWidth()))
		_, _ = title.Fprintln(w, rest)
	}
}

func (pp *PrettyPrint) idWidth() int {
	if pp.ShowID {
		return len(spacing)
	}
	return 0
}

func priorityMark(p task.Priority) string {
	switch p {
	case task.High:
		return color.New(color.FgRed, color.Bold).Sprint("!!")
	case task.Low:
		return color.New(color.Faint).Sprint("· ")
	}
	return color.New(color.FgYellow).Sprint("! ")
}

// Result prints a projected view. Sectioned views get one heading per
// section; the completed filter prints the logbook instead.
func (pp *PrettyPrint) Result(title string, res view.Result, entries []task.LogEntry) {
	if res.Logbook {
		pp.Logbook(entries)
		return
	}
	pp.TitleWithCount(title, res.Len())
	if !res.Sectioned {
		pp.Tasks(res.Tasks()...)
		return
	}
	for _, g := range res.Groups {
		if g.Section == nil {
			if len(g.Tasks) > 0 {
				pp.Tasks(g.Tasks...)
			}
			continue
		}
		h := color.New(color.Bold, color.FgHiBlue)
		if pp.ShowID {
			_, _ = h.Fprint(pp.out(), spacing)
		}
		_, _ = h.Fprintf(pp.out(), "%s", g.Section.Title)
		if pp.ShowID {
			_, _ = color.New(color.Faint).Fprintf(pp.out(), " (%s)", g.Section.ID)
		}
		_, _ = fmt.Fprintln(pp.out(), "")
		pp.Tasks(g.Tasks...)
	}
}

// Logbook prints the activity log newest first.
func (pp *PrettyPrint) Logbook(entries []task.LogEntry) {
	pp.TitleWithCount("Logbook", len(entries))
	if len(entries) == 0 {
		pp.none()
		return
	}
	faint := color.New(color.Faint)
	now := pp.now()
	for _, e := range entries {
		verb := actionColor(e.Action).Sprintf("%-11s", e.Action.Verb())
		_, _ = fmt.Fprintf(pp.out(), "%s %s ", verb, e.TaskTitle)
		_, _ = faint.Fprintln(pp.out(), timeutil.Relative(e.Timestamp.Time, now))
	}
	_, _ = fmt.Fprintln(pp.out(), "")
}

func actionColor(a task.Action) *color.Color {
	switch a {
	case task.ActionComplete:
		return color.New(color.FgGreen)
	case task.ActionDelete:
		return color.New(color.FgRed)
	case task.ActionUncomplete:
		return color.New(color.FgYellow)
	}
	return color.New(color.FgBlue)
}

// Progress prints the weekly goal bar.
func (pp *PrettyPrint) Progress(p logbook.Progress) {
	const cells = 20
	filled := p.Percent * cells / 100
	bar := color.New(color.FgGreen).Sprint(strings.Repeat("█", filled)) +
		color.New(color.Faint).Sprint(strings.Repeat("░", cells-filled))
	_, _ = fmt.Fprintf(pp.out(), "Weekly goal %s %d/%d", bar, p.Count, p.Goal)
	if p.Reached() {
		_, _ = color.New(color.FgGreen, color.Bold).Fprint(pp.out(), "  🎉 goal reached")
	}
	_, _ = fmt.Fprintln(pp.out(), "")
}

// Projects prints a table of projects with their open task counts.
func (pp *PrettyPrint) Projects(projects []*task.Project, counts view.Counts) {
	bold := color.New(color.Bold)
	swatch := termenv.NewOutput(pp.out())

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.MaxColWidth = uint(pp.width() / 2)
	tbl.Wrap = true
	if pp.ShowID {
		tbl.AddRow(bold.Sprint("ID"), "", bold.Sprint("Project"), bold.Sprint("Open"), bold.Sprint("Description"))
	} else {
		tbl.AddRow("", bold.Sprint("Project"), bold.Sprint("Open"), bold.Sprint("Description"))
	}
	inbox := []any{"", "📥 Inbox", counts.Inbox, ""}
	if pp.ShowID {
		inbox = append([]any{task.InboxID}, inbox...)
	}
	tbl.AddRow(inbox...)
	for _, p := range projects {
		dot := swatch.String("●").Foreground(swatch.Color(p.Color)).String()
		icon := p.Icon
		if icon == "" {
			icon = task.DefaultProjectIcon
		}
		row := []any{dot, icon + " " + p.Name, counts.Projects[p.ID], p.Description}
		if pp.ShowID {
			row = append([]any{p.ID}, row...)
		}
		tbl.AddRow(row...)
	}
	_, _ = fmt.Fprintln(pp.out(), tbl)
}

// Sections prints the sections of a project in order.
func (pp *PrettyPrint) Sections(project string, sections []*task.Section) {
	pp.TitleWithCount(project, len(sections))
	if len(sections) == 0 {
		pp.none()
		return
	}
	tbl := uitable.New()
	tbl.Separator = "  "
	for _, s := range sections {
		if pp.ShowID {
			tbl.AddRow(s.ID, s.Order, s.Title)
		} else {
			tbl.AddRow(s.Order, s.Title)
		}
	}
	_, _ = fmt.Fprintln(pp.out(), tbl)
}

// Detail prints every field of t and renders its notes as markdown.
func (pp *PrettyPrint) Detail(t *task.Task, project, section string) error {
	bold := color.New(color.Bold)
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("ID"), t.ID)
	tbl.AddRow(bold.Sprint("Title"), t.Title)
	status := "open"
	if t.IsCompleted {
		status = "completed"
		if t.CompletedAt != nil {
			status += " " + t.CompletedAt.Local().Format("2006-01-02 15:04")
		}
	}
	tbl.AddRow(bold.Sprint("Status"), status)
	tbl.AddRow(bold.Sprint("Priority"), string(t.Priority))
	tbl.AddRow(bold.Sprint("Project"), project)
	if section != "" {
		tbl.AddRow(bold.Sprint("Section"), section)
	}
	if t.WorkingDate != "" {
		tbl.AddRow(bold.Sprint("Working"), t.WorkingDate)
	}
	if t.DeadlineDate != "" {
		tbl.AddRow(bold.Sprint("Deadline"), t.DeadlineDate)
	}
	if t.Repeat != task.NoRepeat {
		tbl.AddRow(bold.Sprint("Repeat"), string(t.Repeat))
	}
	if t.Color != "" {
		tbl.AddRow(bold.Sprint("Color"), t.Color)
	}
	tbl.AddRow(bold.Sprint("Created"), t.CreatedAt.Local().Format("2006-01-02 15:04"))
	_, _ = fmt.Fprintln(pp.out(), tbl)

	if strings.TrimSpace(t.Notes) == "" {
		return nil
	}
	notes, err := pp.Markdown(t.Notes)
	if err != nil {
		return err
	}
	_, _ = fmt.Fprint(pp.out(), notes)
	return nil
}

// Markdown renders md with glamour at the printer width.
func (pp *PrettyPrint) Markdown(md string) (string, error) {
	style := pp.Style
	if style == "" {
		style = "notty"
	}
	renderer, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(pp.width()),
	)
	if err != nil {
		return "", err
	}
	return renderer.Render(strings.TrimSpace(md))
}
