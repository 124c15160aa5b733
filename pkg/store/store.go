// Package store persists finished puzzles for the HTTP server.
//
// The Store interface has three implementations:
//   - memory: in-process map, the default and the test double
//   - redis: Redis-backed storage for multi-instance deployments
//   - mongo: MongoDB-backed storage when puzzles should survive restarts
//
// Stores hold completed, immutable puzzles only; nothing in this package
// touches a grid during generation.
package store

import (
	"context"
	"errors"
	"slices"
	"strings"
	"sync"

	"github.com/matzehuels/crossgen/pkg/puzzle"
)

// ErrNotFound is returned when a puzzle does not exist in the store.
var ErrNotFound = errors.New("puzzle not found")

// Store is the interface for puzzle storage backends.
type Store interface {
	// Save persists a puzzle under its ID, overwriting any previous
	// version.
	Save(ctx context.Context, p *puzzle.Puzzle) error

	// Get retrieves a puzzle by ID. Returns ErrNotFound if it does not
	// exist.
	Get(ctx context.Context, id string) (*puzzle.Puzzle, error)

	// List returns all stored puzzles, most recent first.
	List(ctx context.Context) ([]*puzzle.Puzzle, error)

	// Close releases backend resources.
	Close(ctx context.Context) error
}

// Memory is the in-process Store implementation.
type Memory struct {
	mu      sync.RWMutex
	puzzles map[string]*puzzle.Puzzle
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{puzzles: make(map[string]*puzzle.Puzzle)}
}

// Save stores the puzzle.
func (m *Memory) Save(ctx context.Context, p *puzzle.Puzzle) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.puzzles[p.ID] = p
	return nil
}

// Get returns a puzzle by ID.
func (m *Memory) Get(ctx context.Context, id string) (*puzzle.Puzzle, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	p, ok := m.puzzles[id]
	if !ok {
		return nil, ErrNotFound
	}
	return p, nil
}

// List returns all puzzles, most recent first.
func (m *Memory) List(ctx context.Context) ([]*puzzle.Puzzle, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	list := make([]*puzzle.Puzzle, 0, len(m.puzzles))
	for _, p := range m.puzzles {
		list = append(list, p)
	}
	sortByCreated(list)
	return list, nil
}

// Close does nothing for the memory store.
func (m *Memory) Close(ctx context.Context) error { return nil }

// sortByCreated orders puzzles newest first, breaking timestamp ties by ID
// so List output is stable.
func sortByCreated(list []*puzzle.Puzzle) {
	slices.SortFunc(list, func(a, b *puzzle.Puzzle) int {
		switch {
		case a.CreatedAt.After(b.CreatedAt):
			return -1
		case b.CreatedAt.After(a.CreatedAt):
			return 1
		default:
			return strings.Compare(a.ID, b.ID)
		}
	})
}
