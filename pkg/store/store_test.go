package store

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"tableflip.dev/zentask/pkg/task"
)

type testConfig struct {
	path string
}

func (t testConfig) BasePath() string {
	return t.path
}

func TestDiskvReadWriteErase(t *testing.T) {
	p, err := Load(testConfig{path: t.TempDir()})
	if err != nil {
		t.Fatalf("load persistence: %v", err)
	}
	if _, err := p.Read(KeyTasks); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if err := p.Write(KeyTasks, []byte(`[]`)); err != nil {
		t.Fatalf("write: %v", err)
	}
	if !p.Has(KeyTasks) {
		t.Fatalf("expected key present")
	}
	got, err := p.Read(KeyTasks)
	if err != nil || string(got) != "[]" {
		t.Fatalf("unexpected read %q, %v", got, err)
	}
	if err := p.Write(KeyUser, []byte(`{}`)); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := p.EraseAll(); err != nil {
		t.Fatalf("erase all: %v", err)
	}
	for _, key := range Keys {
		if p.Has(key) {
			t.Fatalf("expected %s erased", key)
		}
	}
	if err := p.Erase(KeyTasks); err != nil {
		t.Fatalf("erasing a missing key should be fine: %v", err)
	}
}

func TestPersistenceWatchEmitsKeyChanges(t *testing.T) {
	base := t.TempDir()
	p, err := Load(testConfig{path: base})
	if err != nil {
		t.Fatalf("load persistence: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch, err := p.Watch(ctx)
	if err != nil {
		t.Fatalf("watch: %v", err)
	}

	// Allow the watcher goroutine to subscribe before writing.
	time.Sleep(50 * time.Millisecond)

	if err := WriteJSON(p, KeyProjects, task.DefaultProjects()); err != nil {
		t.Fatalf("write: %v", err)
	}

	deadline := time.After(2 * time.Second)
	for {
		select {
		case evt := <-ch:
			if evt.Type == EventInvalidated {
				return
			}
			if evt.Key != KeyProjects {
				t.Fatalf("expected key %q, got %q", KeyProjects, evt.Key)
			}
			return
		case <-deadline:
			t.Fatal("timed out waiting for key change event")
		}
	}
}

func TestLoadSnapshotAbsent(t *testing.T) {
	s := LoadSnapshot(NewMemory())
	for _, key := range Keys {
		if !s.Absent[key] {
			t.Fatalf("expected %s absent", key)
		}
	}
	if s.User.Theme != task.ThemeLight || !s.User.EnableSound {
		t.Fatalf("expected default user, got %+v", s.User)
	}
}

func TestLoadSnapshotCorruptFallsBack(t *testing.T) {
	var warnings bytes.Buffer
	prev := Warnings
	Warnings = &warnings
	defer func() { Warnings = prev }()

	m := NewMemory()
	_ = m.Write(KeyTasks, []byte(`{not json`))
	_ = m.Write(KeyProjects, []byte(`[{"id":"p","name":"P","color":"#000000"}]`))
	_ = m.Write(KeyUser, []byte(`"nope"`))

	s := LoadSnapshot(m)
	if !s.Corrupt[KeyTasks] || len(s.Tasks) != 0 {
		t.Fatalf("expected corrupt tasks to fall back to empty, got %+v", s.Tasks)
	}
	if s.Corrupt[KeyProjects] || len(s.Projects) != 1 {
		t.Fatalf("expected projects to load, got %+v", s.Projects)
	}
	if !s.Corrupt[KeyUser] || s.User != task.DefaultUser() {
		t.Fatalf("expected default user, got %+v", s.User)
	}
	if warnings.Len() == 0 {
		t.Fatalf("expected a warning for corrupt values")
	}
}

func TestLoadSnapshotSanitizes(t *testing.T) {
	m := NewMemory()
	_ = m.Write(KeyTasks, []byte(`[null,{"title":"a","priority":"Urgent","createdAt":1700000000000}]`))
	s := LoadSnapshot(m)
	if len(s.Tasks) != 1 {
		t.Fatalf("expected 1 task, got %d", len(s.Tasks))
	}
	tk := s.Tasks[0]
	if tk.ID == "" || tk.ProjectID != task.InboxID || tk.Priority != task.Medium {
		t.Fatalf("task not sanitized: %+v", tk)
	}
	if tk.CreatedAt.UnixMilli() != 1700000000000 {
		t.Fatalf("expected epoch createdAt, got %v", tk.CreatedAt)
	}
}

func TestMemoryWatch(t *testing.T) {
	m := NewMemory()
	ctx, cancel := context.WithCancel(context.Background())
	ch, _ := m.Watch(ctx)
	_ = m.Write(KeyLogs, []byte(`[]`))
	if ev := <-ch; ev.Key != KeyLogs {
		t.Fatalf("unexpected event %+v", ev)
	}
	cancel()
	for range ch {
	}
}
