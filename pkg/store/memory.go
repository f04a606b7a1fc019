package store

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"
)

// MemoryStore is an in-process Store for the CLI and tests.
type MemoryStore struct {
	mu        sync.RWMutex
	solutions map[uuid.UUID]*Solution
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{solutions: make(map[uuid.UUID]*Solution)}
}

// Save inserts or replaces a solution by ID.
func (m *MemoryStore) Save(ctx context.Context, sol *Solution) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *sol
	m.solutions[sol.ID] = &cp
	return nil
}

// ByID retrieves a solution, or ErrNotFound.
func (m *MemoryStore) ByID(ctx context.Context, id uuid.UUID) (*Solution, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	sol, ok := m.solutions[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *sol
	return &cp, nil
}

// List returns up to limit solutions, newest first.
func (m *MemoryStore) List(ctx context.Context, limit int) ([]*Solution, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]*Solution, 0, len(m.solutions))
	for _, sol := range m.solutions {
		cp := *sol
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })

	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// Ensure MemoryStore implements Store.
var _ Store = (*MemoryStore)(nil)
