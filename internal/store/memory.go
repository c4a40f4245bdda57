// internal/store/memory.go
//
// In-memory implementation of the Store interface.
// Holds every game started during one run of the program so the shell can
// report a session summary on exit. Nothing outlives the process.
//
// Characteristics:
//   - Stores *game.Game objects keyed by ID, remembering insertion order.
//   - Concurrency-safe via RWMutex (concurrent reads allowed, writes exclusive).
//   - Errors are returned for missing game IDs on Get().

package store

import (
	"context"
	"errors"
	"sync"

	"github.com/robalobadob/hitblow/internal/game"
)

// ErrNotFound is returned by Get for an unknown game ID.
var ErrNotFound = errors.New("not found")

// Store defines the session registry for games.
type Store interface {
	// Save adds or updates a game.
	Save(ctx context.Context, g *game.Game) error

	// Get retrieves a game by ID.
	// Returns ErrNotFound if the game is not known.
	Get(ctx context.Context, id string) (*game.Game, error)

	// List returns all games in the order they were first saved.
	List(ctx context.Context) ([]*game.Game, error)
}

// memory is an in-memory map-based Store implementation.
type memory struct {
	mu    sync.RWMutex          // guards games and order
	games map[string]*game.Game // keyed by Game.ID()
	order []string              // IDs in first-save order
}

// NewMemoryStore constructs a new in-memory Store.
func NewMemoryStore() Store {
	return &memory{games: make(map[string]*game.Game)}
}

// Save adds or updates the game in the map.
func (m *memory) Save(ctx context.Context, g *game.Game) error {
	if g == nil {
		return errors.New("store: nil game")
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.games[g.ID()]; !ok {
		m.order = append(m.order, g.ID())
	}
	m.games[g.ID()] = g
	return nil
}

// Get looks up a game by ID.
func (m *memory) Get(ctx context.Context, id string) (*game.Game, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if g, ok := m.games[id]; ok {
		return g, nil
	}
	return nil, ErrNotFound
}

// List returns a copy of the stored games in insertion order.
func (m *memory) List(ctx context.Context) ([]*game.Game, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*game.Game, 0, len(m.order))
	for _, id := range m.order {
		out = append(out, m.games[id])
	}
	return out, nil
}
