// internal/store/memory.go
//
// In-memory game registry.
//
// Characteristics:
//   - Stores *game.Game objects keyed by a sequential integer ID (0, 1, 2, ...).
//   - Concurrency-safe via RWMutex (concurrent reads allowed, writes exclusive).
//   - IDs are assigned under the write lock, so concurrent creates never collide.
//   - State is lost when the process restarts.

package store

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/robalobadob/wordgrid/internal/game"
)

// ErrNotFound is returned for unknown game IDs.
var ErrNotFound = errors.New("not found")

// Store defines the registry interface for game sessions.
type Store interface {
	// Create registers g and returns its newly assigned ID.
	Create(ctx context.Context, g *game.Game) (int, error)

	// Get retrieves a game by ID.
	// Returns ErrNotFound if the game does not exist.
	Get(ctx context.Context, id int) (*game.Game, error)

	// IDs lists all registered game IDs in creation order.
	IDs(ctx context.Context) ([]int, error)
}

// memory is an in-memory map-based Store implementation.
type memory struct {
	mu     sync.RWMutex       // guards games and nextID
	games  map[int]*game.Game // keyed by assigned ID
	nextID int
}

// NewMemoryStore constructs a new in-memory Store.
func NewMemoryStore() Store {
	return &memory{games: make(map[int]*game.Game)}
}

// Create assigns the next ID and stores the game.
func (m *memory) Create(ctx context.Context, g *game.Game) (int, error) {
	if g == nil {
		return 0, errors.New("nil game")
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	id := m.nextID
	m.nextID++
	m.games[id] = g
	return id, nil
}

// Get looks up a game by ID.
func (m *memory) Get(ctx context.Context, id int) (*game.Game, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if g, ok := m.games[id]; ok {
		return g, nil
	}
	return nil, ErrNotFound
}

func (m *memory) IDs(ctx context.Context) ([]int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	ids := make([]int, 0, len(m.games))
	for id := range m.games {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids, nil
}
