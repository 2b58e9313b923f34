// Package guard provides an in-process single-flight guard keyed by
// operation name. It replaces an external idempotency store for workloads
// where everything lives in one process: a key can be held by at most one
// caller at a time, and a second Acquire while the first is outstanding
// reports busy instead of blocking.
package guard

import "sync"

type Guard struct {
	mu   sync.Mutex
	held map[string]struct{}
}

func New() *Guard {
	return &Guard{held: make(map[string]struct{})}
}

// Acquire takes the key. It returns false if the key is already held.
func (g *Guard) Acquire(key string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	if _, ok := g.held[key]; ok {
		return false
	}
	g.held[key] = struct{}{}
	return true
}

// Release frees the key. Releasing a key that is not held is a no-op.
func (g *Guard) Release(key string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	delete(g.held, key)
}
