package tui

import (
	"context"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"tableflip.dev/zentask/pkg/app"
	"tableflip.dev/zentask/pkg/order"
	"tableflip.dev/zentask/pkg/store"
	"tableflip.dev/zentask/pkg/task"
	"tableflip.dev/zentask/pkg/view"
)

var testNow = time.Date(2025, time.June, 4, 10, 0, 0, 0, time.Local)

func clock() time.Time { return testNow }

// newService returns an onboarded service over an empty store with the
// project "work" active and two sections in it.
func newService(t *testing.T) (*app.Service, string, []string) {
	t.Helper()
	mem := store.NewMemory()
	if err := mem.Write(store.KeyTasks, []byte(`[]`)); err != nil {
		t.Fatalf("seed: %v", err)
	}
	svc := app.New(mem, app.WithClock(clock))
	if err := svc.Open(); err != nil {
		t.Fatalf("open: %v", err)
	}
	if err := svc.SetUserName("Sam"); err != nil {
		t.Fatalf("onboard: %v", err)
	}
	project, err := svc.CreateProject("work")
	if err != nil {
		t.Fatalf("project: %v", err)
	}
	var sections []string
	for _, title := range []string{"Doing", "Later"} {
		id, err := svc.CreateSection(project, title)
		if err != nil || id == "" {
			t.Fatalf("section %s: %q %v", title, id, err)
		}
		sections = append(sections, id)
	}
	if err := svc.SetActiveFilter(view.ForProject(project)); err != nil {
		t.Fatalf("filter: %v", err)
	}
	return svc, project, sections
}

func add(t *testing.T, svc *app.Service, in app.NewTask) string {
	t.Helper()
	id, err := svc.CreateTask(in)
	if err != nil {
		t.Fatalf("create %q: %v", in.Title, err)
	}
	return id
}

func press(m *Model, keys ...string) {
	for _, k := range keys {
		var msg tea.KeyMsg
		switch k {
		case "enter":
			msg = tea.KeyMsg{Type: tea.KeyEnter}
		case "esc":
			msg = tea.KeyMsg{Type: tea.KeyEsc}
		case "tab":
			msg = tea.KeyMsg{Type: tea.KeyTab}
		case "down":
			msg = tea.KeyMsg{Type: tea.KeyDown}
		case "up":
			msg = tea.KeyMsg{Type: tea.KeyUp}
		case " ":
			msg = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		m.Update(msg)
	}
}

func typeText(m *Model, s string) {
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
}

func titles(tasks []*task.Task) string {
	var out []string
	for _, t := range tasks {
		out = append(out, t.Title)
	}
	return strings.Join(out, ",")
}

func TestBoardShowsActiveProject(t *testing.T) {
	svc, project, sections := newService(t)
	add(t, svc, app.NewTask{Title: "a", ProjectID: project})
	add(t, svc, app.NewTask{Title: "b", ProjectID: project, SectionID: sections[0]})

	m := New(context.Background(), svc, Options{Now: clock})
	if m.filter != view.ForProject(project) {
		t.Fatalf("expected project filter, got %v", m.filter)
	}
	if got := titles(m.visible); got != "a,b" {
		t.Fatalf("expected a,b, got %s", got)
	}
	out := m.View()
	for _, want := range []string{"work", "Doing", "Later", "nothing here", "Sam"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected view to contain %q, got\n%s", want, out)
		}
	}
}

func TestBoardOnboarding(t *testing.T) {
	mem := store.NewMemory()
	svc := app.New(mem, app.WithClock(clock))
	if err := svc.Open(); err != nil {
		t.Fatalf("open: %v", err)
	}
	m := New(context.Background(), svc, Options{Now: clock})
	if m.mode != modeOnboard {
		t.Fatalf("expected onboarding prompt, got mode %d", m.mode)
	}
	typeText(m, "Robin")
	press(m, "enter")
	if u := svc.User(); u.Name != "Robin" || !u.IsOnboarded {
		t.Fatalf("expected onboarded Robin, got %+v", u)
	}
	if m.mode != modeNormal {
		t.Fatalf("expected normal mode, got %d", m.mode)
	}
}

func TestBoardAddIntoSectionUnderCursor(t *testing.T) {
	svc, project, sections := newService(t)
	add(t, svc, app.NewTask{Title: "doing", ProjectID: project, SectionID: sections[0]})
	m := New(context.Background(), svc, Options{Now: clock})

	press(m, "a")
	if m.mode != modeAdd {
		t.Fatalf("expected add mode, got %d", m.mode)
	}
	typeText(m, "next up")
	press(m, "enter")

	live := order.Live(svc.Tasks(), order.Bucket{ProjectID: project, SectionID: sections[0]})
	if got := titles(live); got != "doing,next up" {
		t.Fatalf("expected doing,next up, got %s", got)
	}
	if sel := m.selected(); sel == nil || sel.Title != "next up" {
		t.Fatalf("expected cursor on the new task, got %v", sel)
	}
}

func TestBoardToggleAndDelete(t *testing.T) {
	svc, project, _ := newService(t)
	id := add(t, svc, app.NewTask{Title: "a", ProjectID: project})
	add(t, svc, app.NewTask{Title: "b", ProjectID: project})
	m := New(context.Background(), svc, Options{Now: clock})

	press(m, " ")
	if tk, _ := svc.Task(id); !tk.IsCompleted {
		t.Fatalf("expected a completed")
	}
	if got := titles(m.visible); got != "b" {
		t.Fatalf("expected only b visible, got %s", got)
	}

	press(m, "d")
	if m.mode != modeConfirm {
		t.Fatalf("expected confirm mode, got %d", m.mode)
	}
	press(m, "n")
	if len(svc.Tasks()) != 2 {
		t.Fatalf("expected nothing deleted on n, got %d tasks", len(svc.Tasks()))
	}
	press(m, "d", "y")
	if len(svc.Tasks()) != 1 {
		t.Fatalf("expected one task left, got %d", len(svc.Tasks()))
	}
}

func TestBoardKeyboardReorder(t *testing.T) {
	svc, project, _ := newService(t)
	for _, title := range []string{"a", "b", "c"} {
		add(t, svc, app.NewTask{Title: title, ProjectID: project})
	}
	m := New(context.Background(), svc, Options{Now: clock})

	press(m, "J")
	b := order.Bucket{ProjectID: project}
	if got := titles(order.Live(svc.Tasks(), b)); got != "b,a,c" {
		t.Fatalf("expected b,a,c, got %s", got)
	}
	if sel := m.selected(); sel.Title != "a" {
		t.Fatalf("expected cursor to follow a, got %s", sel.Title)
	}
	press(m, "K", "K")
	if got := titles(order.Live(svc.Tasks(), b)); got != "a,b,c" {
		t.Fatalf("expected a,b,c, got %s", got)
	}
	if !order.Dense(svc.Tasks(), b) {
		t.Fatalf("expected dense orders")
	}
}

func TestBoardMoveAcrossSections(t *testing.T) {
	svc, project, sections := newService(t)
	add(t, svc, app.NewTask{Title: "a", ProjectID: project})
	add(t, svc, app.NewTask{Title: "x", ProjectID: project, SectionID: sections[0]})
	m := New(context.Background(), svc, Options{Now: clock})

	// a is the last unsectioned task; one step down lands on top of Doing.
	press(m, "J")
	doing := order.Bucket{ProjectID: project, SectionID: sections[0]}
	if got := titles(order.Live(svc.Tasks(), doing)); got != "a,x" {
		t.Fatalf("expected a,x in Doing, got %s", got)
	}
	press(m, "J", "J")
	later := order.Bucket{ProjectID: project, SectionID: sections[1]}
	if got := titles(order.Live(svc.Tasks(), later)); got != "a" {
		t.Fatalf("expected a in Later, got %s", got)
	}
	if got := titles(order.Live(svc.Tasks(), doing)); got != "x" {
		t.Fatalf("expected x left in Doing, got %s", got)
	}
}

func TestBoardMoveToProject(t *testing.T) {
	svc, project, _ := newService(t)
	id := add(t, svc, app.NewTask{Title: "milk", ProjectID: project})
	m := New(context.Background(), svc, Options{Now: clock})

	press(m, "m")
	if m.mode != modeMove {
		t.Fatalf("expected move mode, got %d", m.mode)
	}
	m.navIdx = navIndex(m.nav, view.ForProject(task.ShoppingID))
	press(m, "enter")
	tk, _ := svc.Task(id)
	if tk.ProjectID != task.ShoppingID {
		t.Fatalf("expected milk in shopping, got %s", tk.ProjectID)
	}
	if m.mode != modeNormal || m.focus != focusList {
		t.Fatalf("expected normal list mode, got %d/%d", m.mode, m.focus)
	}
}

func TestBoardSidebarSelectsFilter(t *testing.T) {
	svc, _, _ := newService(t)
	m := New(context.Background(), svc, Options{Now: clock})

	press(m, "tab")
	m.navIdx = navIndex(m.nav, view.Today)
	press(m, "enter")
	if f := svc.ActiveFilter(); f != view.Today {
		t.Fatalf("expected today persisted, got %v", f)
	}
	press(m, "p")
	if p := svc.PriorityFilter(); p != task.High {
		t.Fatalf("expected High priority filter, got %q", p)
	}
}

func TestBoardReminderToast(t *testing.T) {
	svc, project, _ := newService(t)
	due := testNow.Add(30 * time.Minute).Format("2006-01-02T15:04")
	add(t, svc, app.NewTask{Title: "standup", ProjectID: project, DeadlineDate: due})
	m := New(context.Background(), svc, Options{Now: clock})

	m.Update(reminderTickMsg(testNow))
	if len(m.toasts) != 1 {
		t.Fatalf("expected one reminder, got %v", m.toasts)
	}
	if !strings.Contains(m.toasts[0], "standup is due in 30 minutes!") {
		t.Fatalf("expected reminder body, got %q", m.toasts[0])
	}
}

func TestBoardReloadsOnWatchEvent(t *testing.T) {
	svc, project, _ := newService(t)
	m := New(context.Background(), svc, Options{Now: clock})
	add(t, svc, app.NewTask{Title: "from elsewhere", ProjectID: project})

	m.Update(watchEventMsg{event: store.Event{Type: store.EventKeyChanged, Key: store.KeyTasks}})
	if got := titles(m.visible); got != "from elsewhere" {
		t.Fatalf("expected reload to show the new task, got %q", got)
	}
}
