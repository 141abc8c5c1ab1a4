package tui

import (
	"math"

	"tableflip.dev/zentask/pkg/app"
	"tableflip.dev/zentask/pkg/order"
	"tableflip.dev/zentask/pkg/task"
	"tableflip.dev/zentask/pkg/view"
)

// groupBucket is the bucket a task dropped into group g of res joins.
func groupBucket(res view.Result, g int) order.Bucket {
	project := res.Filter.ProjectID
	if res.Filter.Kind == view.KindInbox {
		project = task.InboxID
	}
	b := order.Bucket{ProjectID: project}
	if sec := res.Groups[g].Section; sec != nil {
		b.SectionID = sec.ID
	}
	return b
}

// nudge turns a one-step keyboard move of id into the drop a mouse drag
// would have produced. delta is -1 for up and +1 for down. Inside a group
// the task swaps with the nearest visible task of its own bucket; at the
// edge of a sectioned group it crosses into the neighbouring section.
func nudge(tasks []*task.Task, res view.Result, id string, delta int) (app.Drop, bool) {
	g, i := locate(res, id)
	if g < 0 || delta == 0 {
		return app.Drop{}, false
	}
	moving := res.Groups[g].Tasks[i]
	if moving.IsCompleted {
		return app.Drop{}, false
	}
	source := order.BucketOf(moving)

	group := res.Groups[g].Tasks
	for j := i + delta; j >= 0 && j < len(group); j += delta {
		neighbour := group[j]
		if order.BucketOf(neighbour) != source {
			continue
		}
		return app.Drop{
			TaskID: id,
			Source: source,
			Dest:   source,
			Index:  indexIn(tasks, source, neighbour.ID),
		}, true
	}

	if !res.Sectioned {
		return app.Drop{}, false
	}
	next := g + delta
	if next < 0 || next >= len(res.Groups) {
		return app.Drop{}, false
	}
	d := app.Drop{
		TaskID: id,
		Source: source,
		Dest:   groupBucket(res, next),
		Index:  0,
	}
	if delta < 0 {
		d.Index = math.MaxInt32
	}
	return d, true
}

func locate(res view.Result, id string) (int, int) {
	for g, group := range res.Groups {
		for i, t := range group.Tasks {
			if t.ID == id {
				return g, i
			}
		}
	}
	return -1, -1
}

// indexIn is the position of id among the open tasks of b.
func indexIn(tasks []*task.Task, b order.Bucket, id string) int {
	for i, t := range order.Live(tasks, b) {
		if t.ID == id {
			return i
		}
	}
	return 0
}
