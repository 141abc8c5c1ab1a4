// Package tui hosts the Bubble Tea board for zentask.
package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"tableflip.dev/zentask/pkg/app"
	"tableflip.dev/zentask/pkg/order"
	"tableflip.dev/zentask/pkg/reminder"
	"tableflip.dev/zentask/pkg/store"
	"tableflip.dev/zentask/pkg/task"
	"tableflip.dev/zentask/pkg/timeutil"
	"tableflip.dev/zentask/pkg/view"
)

type mode int

const (
	modeNormal mode = iota
	modeAdd
	modeOnboard
	modeConfirm
	modeMove
)

type focus int

const (
	focusList focus = iota
	focusNav
)

const (
	sidebarWidth = 28
	maxToasts    = 3
)

// navItem is one sidebar entry.
type navItem struct {
	filter view.Filter
	label  string
	count  int
	color  string
}

// Options tune a board.
type Options struct {
	ReminderInterval  time.Duration
	ReminderLookahead time.Duration
	// Now overrides the clock used for reminders and deadlines.
	Now func() time.Time
}

// Model is the board state.
type Model struct {
	svc    *app.Service
	ctx    context.Context
	keys   KeyMap
	help   help.Model
	styles Styles
	input  textinput.Model
	bar    progress.Model

	mode   mode
	focus  focus
	width  int
	height int

	nav      []navItem
	navIdx   int
	filter   view.Filter
	priority task.Priority
	result   view.Result
	visible  []*task.Task
	cursor   int

	// target is the task a confirm or move prompt acts on.
	target string
	status string
	toasts []string

	interval  time.Duration
	lookahead time.Duration
	now       func() time.Time

	watchCh     <-chan store.Event
	watchCancel context.CancelFunc
}

// New builds a board over an opened service.
func New(ctx context.Context, svc *app.Service, opts Options) *Model {
	if ctx == nil {
		ctx = context.Background()
	}
	in := textinput.New()
	in.CharLimit = 200

	m := &Model{
		svc:       svc,
		ctx:       ctx,
		keys:      DefaultKeyMap(),
		help:      help.New(),
		styles:    NewStyles(svc.User().Theme),
		input:     in,
		bar:       progress.New(progress.WithDefaultGradient(), progress.WithWidth(30)),
		interval:  opts.ReminderInterval,
		lookahead: opts.ReminderLookahead,
		now:       opts.Now,
	}
	if m.interval <= 0 {
		m.interval = reminder.DefaultInterval
	}
	if m.lookahead <= 0 {
		m.lookahead = reminder.DefaultLookahead
	}
	if m.now == nil {
		m.now = time.Now
	}
	m.refresh()
	if !svc.User().IsOnboarded {
		m.prompt(modeOnboard, "Your name")
	}
	return m
}

func (m *Model) Init() tea.Cmd {
	return tea.Batch(startWatchCmd(m.ctx, m.svc), m.tick(), textinput.Blink)
}

// refresh re-projects the view, keeping the selected task when it is still
// visible.
func (m *Model) refresh() {
	selected := m.selectedID()

	m.filter = m.svc.ActiveFilter()
	m.priority = m.svc.PriorityFilter()
	m.result = m.svc.View()
	m.visible = m.result.Tasks()
	m.nav = buildNav(m.svc)
	if m.focus != focusNav {
		m.navIdx = navIndex(m.nav, m.filter)
	}
	m.styles = NewStyles(m.svc.User().Theme)

	m.cursor = min(m.cursor, len(m.visible)-1)
	for i, t := range m.visible {
		if t.ID == selected {
			m.cursor = i
		}
	}
	m.cursor = max(m.cursor, 0)
}

func buildNav(svc *app.Service) []navItem {
	counts := svc.Counts()
	items := []navItem{
		{filter: view.Inbox, label: "📥 Inbox", count: counts.Open},
		{filter: view.Today, label: "📅 Today", count: counts.Today},
		{filter: view.Upcoming, label: "🗓  Upcoming"},
		{filter: view.Completed, label: "✅ Logbook"},
	}
	for _, p := range svc.Projects() {
		items = append(items, navItem{
			filter: view.ForProject(p.ID),
			label:  p.Icon + " " + p.Name,
			count:  counts.Projects[p.ID],
			color:  p.Color,
		})
	}
	return items
}

func navIndex(items []navItem, f view.Filter) int {
	for i, it := range items {
		if it.filter == f {
			return i
		}
	}
	return 0
}

func (m *Model) selectedID() string {
	if m.cursor < 0 || m.cursor >= len(m.visible) {
		return ""
	}
	return m.visible[m.cursor].ID
}

func (m *Model) selected() *task.Task {
	if m.cursor < 0 || m.cursor >= len(m.visible) {
		return nil
	}
	return m.visible[m.cursor]
}

func (m *Model) setStatus(s string) {
	m.status = s
}

func (m *Model) fail(err error) {
	if err != nil {
		m.setStatus("ERR: " + err.Error())
	}
}

func (m *Model) prompt(md mode, placeholder string) tea.Cmd {
	m.mode = md
	m.input.Reset()
	m.input.Placeholder = placeholder
	return m.input.Focus()
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.input.Width = max(msg.Width-sidebarWidth-12, 10)
		return m, nil
	case watchStartedMsg:
		if msg.err != nil {
			m.setStatus("ERR: watch " + msg.err.Error())
			return m, nil
		}
		m.stopWatch()
		m.watchCh = msg.ch
		m.watchCancel = msg.cancel
		return m, m.waitForWatch()
	case watchEventMsg:
		if err := m.svc.Reload(); err != nil {
			m.fail(err)
		}
		m.refresh()
		return m, m.waitForWatch()
	case watchStoppedMsg:
		m.stopWatch()
		if m.ctx.Err() != nil {
			return m, nil
		}
		return m, startWatchCmd(m.ctx, m.svc)
	case reminderTickMsg:
		m.remind()
		return m, m.tick()
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

// remind posts a toast for every task crossing the lookahead mark.
func (m *Model) remind() {
	for _, t := range reminder.Due(m.svc.Tasks(), m.now(), m.interval, m.lookahead) {
		m.toast(fmt.Sprintf("⏰ %s: %s", reminder.Title, reminder.Body(t, m.lookahead)))
	}
}

func (m *Model) toast(s string) {
	m.toasts = append(m.toasts, s)
	if len(m.toasts) > maxToasts {
		m.toasts = m.toasts[len(m.toasts)-maxToasts:]
	}
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		m.stopWatch()
		return m, tea.Quit
	}
	switch m.mode {
	case modeAdd, modeOnboard:
		return m.handleInputKey(msg)
	case modeConfirm:
		m.handleConfirmKey(msg)
		return m, nil
	case modeMove:
		m.handleMoveKey(msg)
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.stopWatch()
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, m.keys.Focus):
		if m.focus == focusList {
			m.focus = focusNav
		} else {
			m.focus = focusList
			m.navIdx = navIndex(m.nav, m.filter)
		}
	case key.Matches(msg, m.keys.Priority):
		m.cyclePriority()
	case key.Matches(msg, m.keys.Add):
		return m, m.prompt(modeAdd, "New task title")
	case m.focus == focusNav:
		m.handleNavKey(msg)
	default:
		m.handleListKey(msg)
	}
	return m, nil
}

func (m *Model) handleNavKey(msg tea.KeyMsg) {
	switch {
	case key.Matches(msg, m.keys.Up):
		m.navIdx = max(m.navIdx-1, 0)
	case key.Matches(msg, m.keys.Down):
		m.navIdx = min(m.navIdx+1, len(m.nav)-1)
	case key.Matches(msg, m.keys.Select):
		m.fail(m.svc.SetActiveFilter(m.nav[m.navIdx].filter))
		m.focus = focusList
		m.cursor = 0
		m.refresh()
	case key.Matches(msg, m.keys.Cancel):
		m.focus = focusList
		m.navIdx = navIndex(m.nav, m.filter)
	}
}

func (m *Model) handleListKey(msg tea.KeyMsg) {
	t := m.selected()
	switch {
	case key.Matches(msg, m.keys.Up):
		m.cursor = max(m.cursor-1, 0)
	case key.Matches(msg, m.keys.Down):
		m.cursor = max(min(m.cursor+1, len(m.visible)-1), 0)
	case t == nil:
		return
	case key.Matches(msg, m.keys.MoveUp):
		m.nudge(t.ID, -1)
	case key.Matches(msg, m.keys.MoveDown):
		m.nudge(t.ID, +1)
	case key.Matches(msg, m.keys.Toggle):
		if _, err := m.svc.ToggleCompletion(t.ID); err != nil {
			m.fail(err)
		} else {
			verb := "completed"
			if t.IsCompleted {
				verb = "reopened"
			}
			m.setStatus(fmt.Sprintf("%s %q", verb, t.Title))
		}
		m.refresh()
	case key.Matches(msg, m.keys.Delete):
		m.mode = modeConfirm
		m.target = t.ID
	case key.Matches(msg, m.keys.Project):
		m.mode = modeMove
		m.target = t.ID
		m.focus = focusNav
		m.navIdx = navIndex(m.nav, view.ForProject(t.ProjectID))
	}
}

// nudge applies a one-step keyboard drag.
func (m *Model) nudge(id string, delta int) {
	d, ok := nudge(m.svc.Tasks(), m.result, id, delta)
	if !ok {
		return
	}
	if _, err := m.svc.ApplyDrop(d); err != nil {
		m.fail(err)
	}
	m.refresh()
}

func (m *Model) cyclePriority() {
	next := map[task.Priority]task.Priority{
		"":          task.High,
		task.High:   task.Medium,
		task.Medium: task.Low,
		task.Low:    "",
	}[m.priority]
	m.fail(m.svc.SetPriorityFilter(next))
	m.refresh()
}

func (m *Model) handleInputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.mode = modeNormal
		m.input.Blur()
		return m, nil
	case tea.KeyEnter:
		value := strings.TrimSpace(m.input.Value())
		md := m.mode
		m.mode = modeNormal
		m.input.Blur()
		if value == "" {
			return m, nil
		}
		if md == modeOnboard {
			m.fail(m.svc.SetUserName(value))
			m.setStatus("welcome, " + value)
			return m, nil
		}
		m.add(value)
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// add creates a task in the bucket under the cursor, or the project the
// filter shows.
func (m *Model) add(title string) {
	in := app.NewTask{Title: title, Priority: m.priority}
	if m.result.Sectioned {
		g := 0
		if t := m.selected(); t != nil {
			g, _ = locate(m.result, t.ID)
		}
		b := groupBucket(m.result, max(g, 0))
		in.ProjectID, in.SectionID = b.ProjectID, b.SectionID
	}
	if m.filter.Kind == view.KindToday {
		in.DeadlineDate = m.now().Format("2006-01-02")
	}
	id, err := m.svc.CreateTask(in)
	if err != nil {
		m.fail(err)
		return
	}
	m.refresh()
	for i, t := range m.visible {
		if t.ID == id {
			m.cursor = i
		}
	}
	m.setStatus(fmt.Sprintf("added %q", title))
}

func (m *Model) handleConfirmKey(msg tea.KeyMsg) {
	switch msg.String() {
	case "y", "Y":
		if t, ok := m.svc.Task(m.target); ok {
			if _, err := m.svc.DeleteTask(m.target); err != nil {
				m.fail(err)
			} else {
				m.setStatus(fmt.Sprintf("deleted %q", t.Title))
			}
		}
		m.refresh()
	}
	m.mode = modeNormal
	m.target = ""
}

// handleMoveKey picks a project in the sidebar and drops the target on it.
func (m *Model) handleMoveKey(msg tea.KeyMsg) {
	switch {
	case key.Matches(msg, m.keys.Up):
		m.navIdx = max(m.navIdx-1, 0)
		return
	case key.Matches(msg, m.keys.Down):
		m.navIdx = min(m.navIdx+1, len(m.nav)-1)
		return
	case key.Matches(msg, m.keys.Select):
		f := m.nav[m.navIdx].filter
		project := f.ProjectID
		if f.Kind == view.KindInbox {
			project = task.InboxID
		}
		if project == "" {
			m.setStatus("pick a project")
			return
		}
		ok, err := m.svc.ApplyDrop(app.Drop{
			TaskID:    m.target,
			Dest:      order.Bucket{ProjectID: project},
			ToProject: true,
		})
		m.fail(err)
		if ok {
			m.setStatus("moved to " + m.nav[m.navIdx].label)
		}
		m.refresh()
	case key.Matches(msg, m.keys.Cancel):
	default:
		return
	}
	m.mode = modeNormal
	m.focus = focusList
	m.target = ""
	m.navIdx = navIndex(m.nav, m.filter)
}

func (m *Model) View() string {
	sideStyle := m.styles.Sidebar.Width(sidebarWidth)
	mainStyle := m.styles.Main
	if m.width > 0 {
		mainStyle = mainStyle.Width(max(m.width-sidebarWidth-4, 20))
	}
	if m.focus == focusNav {
		sideStyle = sideStyle.BorderForeground(m.styles.FocusEdge)
	} else {
		mainStyle = mainStyle.BorderForeground(m.styles.FocusEdge)
	}

	body := lipgloss.JoinHorizontal(lipgloss.Top,
		sideStyle.Render(m.sidebarView()),
		mainStyle.Render(m.listView()),
	)
	return m.styles.App.Render(lipgloss.JoinVertical(lipgloss.Left, body, m.footerView()))
}

func (m *Model) sidebarView() string {
	var b strings.Builder
	name := m.svc.User().Name
	if name == "" {
		name = "zentask"
	}
	b.WriteString(m.styles.Title.Render(name))
	b.WriteString("\n\n")
	for i, it := range m.nav {
		if i == 4 {
			b.WriteString(m.styles.Dim.Render("Projects") + "\n")
		}
		label := it.label
		if it.color != "" {
			label = lipgloss.NewStyle().Foreground(lipgloss.Color(it.color)).Render("●") + " " + label
		}
		count := ""
		if it.count > 0 {
			count = fmt.Sprint(it.count)
		}
		pad := sidebarWidth - 2 - lipgloss.Width(label) - lipgloss.Width(count)
		line := label + strings.Repeat(" ", max(pad, 1)) + m.styles.Dim.Render(count)

		switch {
		case (m.focus == focusNav || m.mode == modeMove) && i == m.navIdx:
			line = m.styles.Selected.Render(line)
		case it.filter == m.filter:
			line = m.styles.Active.Render(line)
		}
		b.WriteString(line + "\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func (m *Model) listView() string {
	var b strings.Builder
	title := m.nav[navIndex(m.nav, m.filter)].label
	if m.priority != "" {
		title += " (" + string(m.priority) + ")"
	}
	b.WriteString(m.styles.Title.Render(title))
	b.WriteString("\n\n")

	if m.result.Logbook {
		b.WriteString(m.logbookView())
		return b.String()
	}

	row := 0
	for _, g := range m.result.Groups {
		if m.result.Sectioned && g.Section != nil {
			b.WriteString("\n" + m.styles.Section.Render(g.Section.Title) + "\n")
		}
		if len(g.Tasks) == 0 && m.result.Sectioned {
			b.WriteString(m.styles.Dim.Render("  nothing here") + "\n")
		}
		for _, t := range g.Tasks {
			line := m.taskLine(t)
			if row == m.cursor && m.focus == focusList {
				line = m.styles.Selected.Render(line)
			}
			b.WriteString(line + "\n")
			row++
		}
	}
	if len(m.visible) == 0 {
		b.WriteString(m.styles.Dim.Render("All clear. Press a to add a task.") + "\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func (m *Model) taskLine(t *task.Task) string {
	box := "☐"
	titleStyle := m.styles.Item
	if t.IsCompleted {
		box = "☑"
		titleStyle = m.styles.Done
	}
	var mark string
	switch t.Priority {
	case task.High:
		mark = m.styles.High.Render("!!")
	case task.Low:
		mark = m.styles.Low.Render("· ")
	default:
		mark = m.styles.Medium.Render("! ")
	}
	if t.Color != "" {
		titleStyle = titleStyle.Foreground(lipgloss.Color(t.Color))
	}
	line := fmt.Sprintf("%s %s %s", box, mark, titleStyle.Render(t.Title))
	if d, ok := t.Deadline(); ok {
		now := m.now()
		style := m.styles.Deadline
		if d.Before(now) {
			style = m.styles.Overdue
		}
		line += " " + style.Render("⏰ "+timeutil.Relative(d, now))
	}
	if t.Repeat != task.NoRepeat {
		line += " " + m.styles.Dim.Render("↻")
	}
	return line
}

func (m *Model) logbookView() string {
	var b strings.Builder
	p := m.svc.WeeklyProgress()
	b.WriteString(fmt.Sprintf("Weekly goal %d/%d  ", p.Count, p.Goal))
	b.WriteString(m.bar.ViewAs(float64(p.Percent) / 100))
	b.WriteString("\n\n")

	entries := m.svc.Logbook(0)
	limit := len(entries)
	if m.height > 0 {
		limit = min(limit, max(m.height-12, 5))
	}
	for _, e := range entries[:limit] {
		b.WriteString(fmt.Sprintf("%s  %s %s\n",
			m.styles.Dim.Render(e.Timestamp.Local().Format("Jan 02 15:04")),
			e.Action.Verb(),
			e.TaskTitle))
	}
	if len(entries) == 0 {
		b.WriteString(m.styles.Dim.Render("Nothing logged yet.") + "\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func (m *Model) footerView() string {
	var lines []string
	for _, t := range m.toasts {
		lines = append(lines, m.styles.Reminder.Render(t))
	}
	switch m.mode {
	case modeAdd:
		lines = append(lines, m.styles.Prompt.Render("add › ")+m.input.View())
	case modeOnboard:
		lines = append(lines, m.styles.Prompt.Render("Welcome to zentask! What should we call you? ")+m.input.View())
	case modeConfirm:
		title := m.target
		if t, ok := m.svc.Task(m.target); ok {
			title = t.Title
		}
		lines = append(lines, m.styles.Prompt.Render(fmt.Sprintf("Delete %q? [y/N]", title)))
	case modeMove:
		lines = append(lines, m.styles.Prompt.Render("Move to which project? ↑/↓ then enter, esc to cancel"))
	}
	if m.status != "" {
		lines = append(lines, m.styles.Status.Render(m.status))
	}
	lines = append(lines, m.help.View(m.keys))
	return strings.Join(lines, "\n")
}
