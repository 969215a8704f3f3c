// Package session serializes flows that target the same terminal. The
// engine itself is single-flow by design; this manager is the guard rail
// callers use when several requests may name the same host session.
package session

import (
	"context"
	"sync"
)

// lockEntry holds the mutex and its reference count.
type lockEntry struct {
	mu   sync.Mutex
	refs int
}

// Manager hands out one lock per terminal name, garbage collecting entries
// by reference counting. Flows against distinct terminals run concurrently;
// flows against the same terminal queue.
type Manager struct {
	mu    sync.Mutex
	locks map[string]*lockEntry
}

// NewManager creates an empty Manager.
func NewManager() *Manager {
	return &Manager{locks: make(map[string]*lockEntry)}
}

// acquire gets or creates a lock entry and increments its reference count.
func (m *Manager) acquire(terminal string) *lockEntry {
	m.mu.Lock()
	defer m.mu.Unlock()

	entry, exists := m.locks[terminal]
	if !exists {
		entry = &lockEntry{}
		m.locks[terminal] = entry
	}
	entry.refs++
	return entry
}

// release decrements the reference count and deletes the entry at zero.
func (m *Manager) release(terminal string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	entry, exists := m.locks[terminal]
	if !exists {
		return
	}
	entry.refs--
	if entry.refs <= 0 {
		delete(m.locks, terminal)
	}
}

// WithLock runs fn while holding the named terminal's lock. The context is
// checked once the lock is held, so a caller that gave up while queued does
// not start a flow against a terminal it no longer wants.
func (m *Manager) WithLock(ctx context.Context, terminal string, fn func(ctx context.Context) error) error {
	entry := m.acquire(terminal)
	entry.mu.Lock()
	defer func() {
		entry.mu.Unlock()
		m.release(terminal)
	}()

	if err := ctx.Err(); err != nil {
		return err
	}
	return fn(ctx)
}
