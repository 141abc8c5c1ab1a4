package store

import (
	"context"
	"sync"
)

// Memory is an in-process Persistence. It backs --ephemeral runs and tests.
type Memory struct {
	mu       sync.Mutex
	values   map[string][]byte
	watchers []chan Event
}

// NewMemory returns an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{values: make(map[string][]byte)}
}

func (m *Memory) Read(key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.values[key]
	if !ok {
		return nil, ErrNotFound
	}
	return append([]byte(nil), v...), nil
}

func (m *Memory) Write(key string, data []byte) error {
	m.mu.Lock()
	m.values[key] = append([]byte(nil), data...)
	m.mu.Unlock()
	m.notify(Event{Type: EventKeyChanged, Key: key})
	return nil
}

func (m *Memory) Has(key string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.values[key]
	return ok
}

func (m *Memory) Erase(key string) error {
	m.mu.Lock()
	_, ok := m.values[key]
	delete(m.values, key)
	m.mu.Unlock()
	if ok {
		m.notify(Event{Type: EventKeyChanged, Key: key})
	}
	return nil
}

func (m *Memory) EraseAll() error {
	m.mu.Lock()
	m.values = make(map[string][]byte)
	m.mu.Unlock()
	m.notify(Event{Type: EventInvalidated})
	return nil
}

// Watch delivers an event for every Write and Erase until ctx is done.
func (m *Memory) Watch(ctx context.Context) (<-chan Event, error) {
	ch := make(chan Event, 64)
	m.mu.Lock()
	m.watchers = append(m.watchers, ch)
	m.mu.Unlock()
	go func() {
		<-ctx.Done()
		m.mu.Lock()
		defer m.mu.Unlock()
		for i, w := range m.watchers {
			if w == ch {
				m.watchers = append(m.watchers[:i], m.watchers[i+1:]...)
				break
			}
		}
		close(ch)
	}()
	return ch, nil
}

func (m *Memory) notify(ev Event) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, w := range m.watchers {
		select {
		case w <- ev:
		default:
		}
	}
}
