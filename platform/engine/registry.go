package engine

import "sync"

// Registry holds the live games keyed by game id. Lookup and creation are
// safe for concurrent socket handlers.
type Registry struct {
	mu    sync.Mutex
	games map[string]*Game
}

func NewRegistry() *Registry {
	return &Registry{games: make(map[string]*Game)}
}

func (r *Registry) Get(id string) (*Game, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	g, ok := r.games[id]
	return g, ok
}

// GetOrCreate returns the game for the id, creating one if needed.
func (r *Registry) GetOrCreate(id string, opts ...Option) *Game {
	r.mu.Lock()
	defer r.mu.Unlock()
	if g, ok := r.games[id]; ok {
		return g
	}
	g := NewGame(opts...)
	r.games[id] = g
	return g
}

func (r *Registry) Delete(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.games, id)
}
