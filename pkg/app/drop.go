package app

import (
	"tableflip.dev/zentask/pkg/order"
	"tableflip.dev/zentask/pkg/store"
	"tableflip.dev/zentask/pkg/task"
)

// Reorder moves id to index within its own bucket.
func (s *Service) Reorder(id string, index int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !order.Reorder(s.tasks, id, index) {
		return false, nil
	}
	return true, s.save(store.KeyTasks)
}

// Move splices id into dest at index. An empty dest.ProjectID keeps the task
// in its current project. A destination section that does not belong to the
// destination project makes the call a no-op.
func (s *Service) Move(id string, dest order.Bucket, index int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t := s.findTask(id)
	if t == nil {
		return false, nil
	}
	if dest.ProjectID == "" {
		dest.ProjectID = t.ProjectID
	}
	if !s.projectExists(dest.ProjectID) || !s.sectionIn(dest.SectionID, dest.ProjectID) {
		return false, nil
	}
	if !order.Move(s.tasks, id, dest, index) {
		return false, nil
	}
	return true, s.save(store.KeyTasks)
}

// ReorderByGlobalIndex is the flat-list reorder over every task.
func (s *Service) ReorderByGlobalIndex(source, dest int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	seq, ok := order.ReorderByGlobalIndex(s.tasks, source, dest)
	if !ok {
		return false, nil
	}
	s.tasks = seq
	return true, s.save(store.KeyTasks)
}

// Drop is a finished drag gesture.
type Drop struct {
	TaskID string
	Source order.Bucket
	Dest   order.Bucket
	Index  int
	// ToProject marks a drop onto a project in the sidebar rather than into
	// a list. Only Dest.ProjectID is used.
	ToProject bool
}

// ApplyDrop translates a drag gesture into a reorder, a move or a project
// reassignment.
func (s *Service) ApplyDrop(d Drop) (bool, error) {
	switch {
	case d.ToProject:
		return s.dropOnProject(d.TaskID, d.Dest.ProjectID)
	case d.Source == d.Dest:
		return s.Reorder(d.TaskID, d.Index)
	default:
		return s.Move(d.TaskID, d.Dest, d.Index)
	}
}

// dropOnProject reassigns id to the end of projectID's unsectioned bucket.
func (s *Service) dropOnProject(id, projectID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t := s.findTask(id)
	if t == nil || !s.projectExists(projectID) {
		return false, nil
	}
	dest := order.Bucket{ProjectID: projectID}
	source := order.BucketOf(t)
	if source != dest {
		t.ProjectID, t.SectionID = "", ""
		s.appendTo([]*task.Task{t}, dest)
		order.Renumber(order.Live(s.tasks, source))
	}
	s.cue(Feedback.Pop)
	return true, s.save(store.KeyTasks)
}
