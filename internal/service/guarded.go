package service

import "sync"

// Guarded serializes access to a Manager shared by the HTTP API and the
// scheduled jobs.
type Guarded struct {
	mu sync.Mutex
	m  *Manager
}

func NewGuarded(m *Manager) *Guarded {
	return &Guarded{m: m}
}

// Do runs fn while holding the lock. fn must not keep references to the
// manager's collections after it returns.
func (g *Guarded) Do(fn func(m *Manager) error) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	return fn(g.m)
}
