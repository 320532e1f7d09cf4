package lock

import (
	"context"
	"fmt"
	"sync"

	"github.com/amirasaad/banking/pkg/lock"
)

type entry struct {
	ch   chan struct{} // buffered with capacity 1; a token in the channel means held
	refs int
}

// Memory is a process-local keyed mutex. Entries are reference counted and
// removed once nobody holds or waits for them.
type Memory struct {
	mu      sync.Mutex
	entries map[string]*entry
}

// NewMemory returns an empty in-process locker.
func NewMemory() *Memory {
	return &Memory{entries: make(map[string]*entry)}
}

// Lock implements lock.Locker.
func (m *Memory) Lock(ctx context.Context, key string) (lock.Unlock, error) {
	e := m.acquireRef(key)

	select {
	case e.ch <- struct{}{}:
	case <-ctx.Done():
		m.releaseRef(key, e)
		return nil, fmt.Errorf("%w: %s: %w", lock.ErrNotAcquired, key, ctx.Err())
	}

	var once sync.Once
	return func() {
		once.Do(func() {
			<-e.ch
			m.releaseRef(key, e)
		})
	}, nil
}

func (m *Memory) acquireRef(key string) *entry {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.entries[key]
	if !ok {
		e = &entry{ch: make(chan struct{}, 1)}
		m.entries[key] = e
	}
	e.refs++
	return e
}

func (m *Memory) releaseRef(key string, e *entry) {
	m.mu.Lock()
	defer m.mu.Unlock()
	e.refs--
	if e.refs == 0 {
		delete(m.entries, key)
	}
}

// size reports the number of live entries.
func (m *Memory) size() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.entries)
}
