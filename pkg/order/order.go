// Package order maintains the display order of tasks within buckets.
//
// A bucket is the set of tasks sharing a (project, section) pair. Only open
// tasks take part in live ordering; completed tasks keep whatever order value
// they had when they were completed. Every mutating operation here leaves the
// buckets it touched densely numbered 0..n-1.
package order

import (
	"sort"

	"tableflip.dev/zentask/pkg/task"
)

// Bucket identifies a (project, section) pair. An empty SectionID is the
// unsectioned bucket of the project.
type Bucket struct {
	ProjectID string
	SectionID string
}

// BucketOf returns the bucket t currently belongs to.
func BucketOf(t *task.Task) Bucket {
	return Bucket{ProjectID: t.ProjectID, SectionID: t.SectionID}
}

// Contains reports whether t is an open member of b.
func (b Bucket) Contains(t *task.Task) bool {
	return t != nil && !t.IsCompleted && BucketOf(t) == b
}

// Live returns the open tasks of b sorted by order. Ties keep their relative
// position in tasks.
func Live(tasks []*task.Task, b Bucket) []*task.Task {
	live := make([]*task.Task, 0)
	for _, t := range tasks {
		if b.Contains(t) {
			live = append(live, t)
		}
	}
	sortByOrder(live)
	return live
}

// Next returns the order value for a task appended to b: one past the highest
// order among its open tasks, or 0 for an empty bucket.
func Next(tasks []*task.Task, b Bucket) int {
	next := 0
	for _, t := range tasks {
		if b.Contains(t) && t.Order >= next {
			next = t.Order + 1
		}
	}
	return next
}

// Renumber assigns order = position for every task in seq.
func Renumber(seq []*task.Task) {
	for i, t := range seq {
		t.Order = i
	}
}

// Reorder moves the open task id to targetIndex within its own bucket and
// renumbers the bucket. targetIndex is clamped to the bucket bounds. It
// returns false, leaving tasks untouched, when id is unknown or completed.
func Reorder(tasks []*task.Task, id string, targetIndex int) bool {
	t := find(tasks, id)
	if t == nil || t.IsCompleted {
		return false
	}
	seq := without(Live(tasks, BucketOf(t)), t)
	Renumber(insertAt(seq, t, targetIndex))
	return true
}

// Move takes the task id out of its bucket and splices it into dest at
// targetIndex, counted among dest's open tasks only. Both the source and the
// destination bucket are renumbered. A completed task only has its bucket
// reassigned; it does not join live ordering. Unknown ids return false.
func Move(tasks []*task.Task, id string, dest Bucket, targetIndex int) bool {
	t := find(tasks, id)
	if t == nil {
		return false
	}
	source := BucketOf(t)
	if source == dest {
		return Reorder(tasks, id, targetIndex)
	}
	t.ProjectID = dest.ProjectID
	t.SectionID = dest.SectionID
	if t.IsCompleted {
		return true
	}
	Renumber(Live(tasks, source))
	seq := without(Live(tasks, dest), t)
	Renumber(insertAt(seq, t, targetIndex))
	return true
}

// ReorderByGlobalIndex is the flat-list fallback: it treats tasks as a single
// sequence, moves the element at sourceIndex to destIndex and renumbers the
// whole collection 0..N-1. The returned slice is a new ordering of the same
// task pointers. An out-of-range sourceIndex leaves tasks unchanged.
func ReorderByGlobalIndex(tasks []*task.Task, sourceIndex, destIndex int) ([]*task.Task, bool) {
	if sourceIndex < 0 || sourceIndex >= len(tasks) {
		return tasks, false
	}
	moved := tasks[sourceIndex]
	seq := make([]*task.Task, 0, len(tasks))
	seq = append(seq, tasks[:sourceIndex]...)
	seq = append(seq, tasks[sourceIndex+1:]...)
	seq = insertAt(seq, moved, destIndex)
	Renumber(seq)
	return seq, true
}

// Dense reports whether the open tasks of b carry exactly the orders 0..n-1.
func Dense(tasks []*task.Task, b Bucket) bool {
	live := Live(tasks, b)
	seen := make(map[int]bool, len(live))
	for _, t := range live {
		if t.Order < 0 || t.Order >= len(live) || seen[t.Order] {
			return false
		}
		seen[t.Order] = true
	}
	return true
}

// Buckets returns every distinct bucket with at least one open task.
func Buckets(tasks []*task.Task) []Bucket {
	seen := make(map[Bucket]bool)
	var out []Bucket
	for _, t := range tasks {
		if t == nil || t.IsCompleted {
			continue
		}
		b := BucketOf(t)
		if !seen[b] {
			seen[b] = true
			out = append(out, b)
		}
	}
	return out
}

func sortByOrder(seq []*task.Task) {
	sort.SliceStable(seq, func(i, j int) bool {
		return seq[i].Order < seq[j].Order
	})
}

func find(tasks []*task.Task, id string) *task.Task {
	for _, t := range tasks {
		if t != nil && t.ID == id {
			return t
		}
	}
	return nil
}

func without(seq []*task.Task, t *task.Task) []*task.Task {
	out := seq[:0:0]
	for _, s := range seq {
		if s != t {
			out = append(out, s)
		}
	}
	return out
}

func insertAt(seq []*task.Task, t *task.Task, index int) []*task.Task {
	index = clamp(index, 0, len(seq))
	out := make([]*task.Task, 0, len(seq)+1)
	out = append(out, seq[:index]...)
	out = append(out, t)
	return append(out, seq[index:]...)
}

func clamp(val, minVal, maxVal int) int {
	if val < minVal {
		return minVal
	}
	if val > maxVal {
		return maxVal
	}
	return val
}
