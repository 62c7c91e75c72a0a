package session

import (
	"sync"
	"time"
)

// Manager serializes interaction handling per channel, so the response for one
// interaction is fully built and sent before the next one in the same channel
// starts. Different channels run in parallel.
type Manager struct {
	mu    sync.Mutex
	locks map[string]*channelLock
}

type channelLock struct {
	mu       sync.Mutex
	lastUsed time.Time
}

func NewManager() *Manager {
	return &Manager{
		locks: make(map[string]*channelLock),
	}
}

// WithLock runs fn while holding the lock for key.
func (m *Manager) WithLock(key string, fn func() error) error {
	m.mu.Lock()
	cl, ok := m.locks[key]
	if !ok {
		cl = &channelLock{}
		m.locks[key] = cl
	}
	cl.lastUsed = time.Now()
	m.mu.Unlock()

	cl.mu.Lock()
	defer cl.mu.Unlock()
	return fn()
}

// Cleanup removes locks idle for longer than maxAge.
func (m *Manager) Cleanup(maxAge time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := time.Now()
	for key, cl := range m.locks {
		if now.Sub(cl.lastUsed) > maxAge && cl.mu.TryLock() {
			delete(m.locks, key)
			cl.mu.Unlock()
		}
	}
}

// Len reports how many channel locks are tracked.
func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.locks)
}
