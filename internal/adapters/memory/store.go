// Package memory provides in-memory adapters: a ConfigStore for embedding
// and tests, and a scripted Session that replays canned screens.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/greenscreenhq/greenscreen/pkg/domain"
)

// Store implements ports.ConfigStore backed by a map. Safe for concurrent
// use.
type Store struct {
	mu      sync.RWMutex
	screens map[string]domain.ScreenDefinition
}

// NewStore creates an empty in-memory store.
func NewStore() *Store {
	return &Store{screens: make(map[string]domain.ScreenDefinition)}
}

// NewStoreFromDefinitions creates a store pre-seeded with definitions.
func NewStoreFromDefinitions(defs ...domain.ScreenDefinition) *Store {
	s := NewStore()
	for _, def := range defs {
		s.screens[def.Name] = def
	}
	return s
}

// Save stores a copy of the definition under its name.
func (s *Store) Save(ctx context.Context, def *domain.ScreenDefinition) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.screens[def.Name] = *def
	return nil
}

// Get returns a copy of the named definition.
func (s *Store) Get(ctx context.Context, name string) (*domain.ScreenDefinition, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	def, ok := s.screens[name]
	if !ok {
		return nil, domain.ErrScreenNotFound
	}
	cp := def
	return &cp, nil
}

// Delete removes the named definition, if present.
func (s *Store) Delete(ctx context.Context, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.screens, name)
	return nil
}

// List returns all screen names, sorted.
func (s *Store) List(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	names := make([]string, 0, len(s.screens))
	for name := range s.screens {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}
