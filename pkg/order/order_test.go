package order

import (
	"testing"

	"tableflip.dev/zentask/pkg/task"
)

func mk(id, project, section string, order int) *task.Task {
	return &task.Task{ID: id, Title: id, ProjectID: project, SectionID: section, Order: order, Priority: task.Medium}
}

func ids(seq []*task.Task) []string {
	out := make([]string, len(seq))
	for i, t := range seq {
		out[i] = t.ID
	}
	return out
}

func expectSeq(t *testing.T, tasks []*task.Task, b Bucket, want ...string) {
	t.Helper()
	live := Live(tasks, b)
	got := ids(live)
	if len(got) != len(want) {
		t.Fatalf("bucket %+v: expected %v, got %v", b, want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("bucket %+v: expected %v, got %v", b, want, got)
		}
		if live[i].Order != i {
			t.Fatalf("bucket %+v: %s has order %d, expected %d", b, live[i].ID, live[i].Order, i)
		}
	}
	if !Dense(tasks, b) {
		t.Fatalf("bucket %+v is not dense", b)
	}
}

func TestNextAppendsPastMax(t *testing.T) {
	b := Bucket{ProjectID: "p"}
	var tasks []*task.Task
	for i, id := range []string{"t1", "t2", "t3"} {
		n := Next(tasks, b)
		if n != i {
			t.Fatalf("expected next %d, got %d", i, n)
		}
		tasks = append(tasks, mk(id, "p", "", n))
	}

	gapped := []*task.Task{mk("a", "p", "", 0), mk("b", "p", "", 4)}
	if n := Next(gapped, b); n != 5 {
		t.Fatalf("expected next past max 5, got %d", n)
	}
	done := mk("c", "p", "", 9)
	done.IsCompleted = true
	gapped = append(gapped, done)
	if n := Next(gapped, b); n != 5 {
		t.Fatalf("completed tasks must not count, got %d", n)
	}
	if n := Next(gapped, Bucket{ProjectID: "p", SectionID: "s"}); n != 0 {
		t.Fatalf("expected empty bucket to yield 0, got %d", n)
	}
}

func TestReorderWithinBucket(t *testing.T) {
	b := Bucket{ProjectID: "p"}
	tests := []struct {
		name   string
		id     string
		target int
		want   []string
	}{
		{name: "to front", id: "c", target: 0, want: []string{"c", "a", "b", "d"}},
		{name: "to back", id: "a", target: 3, want: []string{"b", "c", "d", "a"}},
		{name: "clamped high", id: "a", target: 99, want: []string{"b", "c", "d", "a"}},
		{name: "clamped low", id: "d", target: -5, want: []string{"d", "a", "b", "c"}},
		{name: "same place", id: "b", target: 1, want: []string{"a", "b", "c", "d"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			// Gapped and unsorted input; the result must still be dense.
			tasks := []*task.Task{mk("d", "p", "", 30), mk("a", "p", "", 0), mk("c", "p", "", 20), mk("b", "p", "", 10)}
			if !Reorder(tasks, tc.id, tc.target) {
				t.Fatalf("expected reorder to apply")
			}
			expectSeq(t, tasks, b, tc.want...)
		})
	}
}

func TestReorderLeavesOtherBucketsAlone(t *testing.T) {
	other := mk("x", "p", "s", 7)
	tasks := []*task.Task{mk("a", "p", "", 0), mk("b", "p", "", 1), other}
	Reorder(tasks, "b", 0)
	if other.Order != 7 {
		t.Fatalf("expected untouched bucket to keep order 7, got %d", other.Order)
	}
}

func TestReorderUnknownOrCompletedIsNoop(t *testing.T) {
	done := mk("c", "p", "", 5)
	done.IsCompleted = true
	tasks := []*task.Task{mk("a", "p", "", 3), mk("b", "p", "", 8), done}
	if Reorder(tasks, "missing", 0) {
		t.Fatalf("expected unknown id to be a no-op")
	}
	if Reorder(tasks, "c", 0) {
		t.Fatalf("expected completed task to be a no-op")
	}
	if tasks[0].Order != 3 || tasks[1].Order != 8 || done.Order != 5 {
		t.Fatalf("no-op changed orders: %d %d %d", tasks[0].Order, tasks[1].Order, done.Order)
	}
}

func TestMoveAcrossBuckets(t *testing.T) {
	a := Bucket{ProjectID: "p", SectionID: "A"}
	b := Bucket{ProjectID: "p", SectionID: "B"}
	tasks := []*task.Task{
		mk("a", "p", "A", 0), mk("b", "p", "A", 1), mk("c", "p", "A", 2),
		mk("x", "p", "B", 0),
	}
	if !Move(tasks, "b", b, 0) {
		t.Fatalf("expected move to apply")
	}
	expectSeq(t, tasks, b, "b", "x")
	expectSeq(t, tasks, a, "a", "c")
	if tasks[1].SectionID != "B" {
		t.Fatalf("expected section B, got %q", tasks[1].SectionID)
	}
}

func TestMoveIgnoresCompletedSiblingsForIndex(t *testing.T) {
	dest := Bucket{ProjectID: "p", SectionID: "B"}
	done := mk("done", "p", "B", 0)
	done.IsCompleted = true
	tasks := []*task.Task{
		done, mk("x", "p", "B", 1), mk("y", "p", "B", 2),
		mk("m", "p", "", 0),
	}
	Move(tasks, "m", dest, 1)
	expectSeq(t, tasks, dest, "x", "m", "y")
	if done.Order != 0 {
		t.Fatalf("completed task should keep its stale order, got %d", done.Order)
	}
}

func TestMoveToUnsectionedAndClamp(t *testing.T) {
	root := Bucket{ProjectID: "p"}
	tasks := []*task.Task{mk("a", "p", "", 0), mk("s", "p", "S", 0)}
	Move(tasks, "s", root, 42)
	expectSeq(t, tasks, root, "a", "s")
	if tasks[1].SectionID != "" {
		t.Fatalf("expected section cleared, got %q", tasks[1].SectionID)
	}
}

func TestMoveSameBucketIsReorder(t *testing.T) {
	b := Bucket{ProjectID: "p", SectionID: "S"}
	tasks := []*task.Task{mk("a", "p", "S", 0), mk("b", "p", "S", 1)}
	Move(tasks, "b", b, 0)
	expectSeq(t, tasks, b, "b", "a")
}

func TestMoveUnknownIsNoop(t *testing.T) {
	tasks := []*task.Task{mk("a", "p", "", 4)}
	if Move(tasks, "nope", Bucket{ProjectID: "p", SectionID: "S"}, 0) {
		t.Fatalf("expected unknown id to be a no-op")
	}
	if tasks[0].Order != 4 || tasks[0].SectionID != "" {
		t.Fatalf("no-op mutated task: %+v", tasks[0])
	}
}

func TestMoveCompletedOnlyReassigns(t *testing.T) {
	done := mk("d", "p", "", 3)
	done.IsCompleted = true
	tasks := []*task.Task{done, mk("x", "p", "S", 0)}
	Move(tasks, "d", Bucket{ProjectID: "p", SectionID: "S"}, 0)
	if done.SectionID != "S" || done.Order != 3 {
		t.Fatalf("unexpected completed task after move: %+v", done)
	}
	if tasks[1].Order != 0 {
		t.Fatalf("open sibling should be unaffected, got %d", tasks[1].Order)
	}
}

func TestCompletionExcludedOnNextReorder(t *testing.T) {
	b := Bucket{ProjectID: "p"}
	tasks := []*task.Task{mk("a", "p", "", 0), mk("b", "p", "", 1), mk("c", "p", "", 2)}
	tasks[1].IsCompleted = true
	Reorder(tasks, "c", 0)
	expectSeq(t, tasks, b, "c", "a")
	if tasks[1].Order != 1 {
		t.Fatalf("completed task should retain order 1, got %d", tasks[1].Order)
	}
}

func TestReorderByGlobalIndex(t *testing.T) {
	tasks := []*task.Task{mk("a", "p", "", 5), mk("b", "q", "", 5), mk("c", "p", "S", 5)}
	got, ok := ReorderByGlobalIndex(tasks, 0, 2)
	if !ok {
		t.Fatalf("expected reorder to apply")
	}
	want := []string{"b", "c", "a"}
	for i, tk := range got {
		if tk.ID != want[i] || tk.Order != i {
			t.Fatalf("position %d: expected %s/%d, got %s/%d", i, want[i], i, tk.ID, tk.Order)
		}
	}

	same, ok := ReorderByGlobalIndex(got, 7, 0)
	if ok {
		t.Fatalf("expected out of range source to be a no-op")
	}
	if same[0].ID != "b" {
		t.Fatalf("no-op reordered collection")
	}

	clamped, _ := ReorderByGlobalIndex(got, 2, -3)
	if clamped[0].ID != "a" {
		t.Fatalf("expected clamped destination 0, got %s", clamped[0].ID)
	}
}

func TestBuckets(t *testing.T) {
	done := mk("d", "z", "", 0)
	done.IsCompleted = true
	tasks := []*task.Task{mk("a", "p", "", 0), mk("b", "p", "", 1), mk("c", "p", "S", 0), done}
	if got := Buckets(tasks); len(got) != 2 {
		t.Fatalf("expected 2 live buckets, got %v", got)
	}
}
