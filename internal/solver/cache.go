// internal/solver/cache.go
//
// In-memory memoization for minimax results.
//
// Characteristics:
//   - Stores the best guess keyed by a canonical candidate-set string.
//   - Concurrency-safe via RWMutex (concurrent reads allowed, writes exclusive).
//   - State is lost when the process exits; there is nothing worth persisting.

package solver

import "sync"

// memo is an in-memory map-based cache of minimax decisions.
type memo struct {
	mu   sync.RWMutex      // guards best map
	best map[string]string // keyed by memoKey of the candidate set
}

// newMemo constructs an empty memo.
func newMemo() *memo {
	return &memo{best: make(map[string]string)}
}

// get looks up the cached best guess for a candidate set.
func (m *memo) get(key string) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	g, ok := m.best[key]
	return g, ok
}

// put records the best guess for a candidate set.
func (m *memo) put(key, guess string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.best[key] = guess
}
