package transmit

import "sync"

// keyGuard lets at most one operation hold a key at a time. The coordinator
// keeps one for console addresses and one for plan IDs.
type keyGuard struct {
	mu     sync.Mutex
	active map[string]string
}

func newKeyGuard() *keyGuard {
	return &keyGuard{
		active: make(map[string]string),
	}
}

func (g *keyGuard) acquire(key, operationID string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, busy := g.active[key]; busy {
		return false
	}
	g.active[key] = operationID
	return true
}

func (g *keyGuard) release(key, operationID string) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.active[key] == operationID {
		delete(g.active, key)
	}
}

func (g *keyGuard) holder(key string) (string, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()

	id, ok := g.active[key]
	return id, ok
}
