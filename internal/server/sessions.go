package server

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/abhisek/menuquiz/internal/game"
)

var (
	ErrSessionNotFound = errors.New("session not found")
	ErrTooManySessions = errors.New("too many active sessions")
)

// ControllerFactory builds a fresh controller whose session ID is id.
type ControllerFactory func(id string) (*game.Controller, error)

type entry struct {
	mu       sync.Mutex
	ctrl     *game.Controller
	lastSeen time.Time
}

// Manager holds one isolated controller per session. Actions on a session
// are serialized by that session's mutex; sessions never share state.
type Manager struct {
	mu       sync.RWMutex
	sessions map[string]*entry

	factory ControllerFactory
	ttl     time.Duration
	max     int
	now     func() time.Time
	log     *zap.Logger

	// onChange is called with the session count after it changes.
	onChange func(n int)
}

// NewManager creates a session manager.
func NewManager(factory ControllerFactory, ttl time.Duration, max int, log *zap.Logger) *Manager {
	return &Manager{
		sessions: make(map[string]*entry),
		factory:  factory,
		ttl:      ttl,
		max:      max,
		now:      time.Now,
		log:      log,
		onChange: func(int) {},
	}
}

// Create registers a new session and returns its ID.
func (m *Manager) Create() (string, error) {
	id := uuid.NewString()
	ctrl, err := m.factory(id)
	if err != nil {
		return "", err
	}

	m.mu.Lock()
	if len(m.sessions) >= m.max {
		m.mu.Unlock()
		return "", ErrTooManySessions
	}
	m.sessions[id] = &entry{ctrl: ctrl, lastSeen: m.now()}
	n := len(m.sessions)
	m.mu.Unlock()

	m.onChange(n)
	m.log.Debug("session created", zap.String("session_id", id), zap.Int("sessions", n))
	return id, nil
}

// With runs fn against the session's controller while holding its lock.
func (m *Manager) With(id string, fn func(*game.Controller) error) error {
	m.mu.RLock()
	e, ok := m.sessions[id]
	m.mu.RUnlock()
	if !ok {
		return ErrSessionNotFound
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	e.lastSeen = m.now()
	return fn(e.ctrl)
}

// Delete removes a session. It reports whether the session existed.
func (m *Manager) Delete(id string) bool {
	m.mu.Lock()
	_, ok := m.sessions[id]
	delete(m.sessions, id)
	n := len(m.sessions)
	m.mu.Unlock()

	if ok {
		m.onChange(n)
	}
	return ok
}

// Len returns the number of live sessions.
func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

// Sweep evicts sessions idle for longer than the TTL and returns how many
// were removed.
func (m *Manager) Sweep() int {
	cutoff := m.now().Add(-m.ttl)

	m.mu.Lock()
	removed := 0
	for id, e := range m.sessions {
		e.mu.Lock()
		idle := e.lastSeen.Before(cutoff)
		e.mu.Unlock()
		if idle {
			delete(m.sessions, id)
			removed++
		}
	}
	n := len(m.sessions)
	m.mu.Unlock()

	if removed > 0 {
		m.onChange(n)
		m.log.Info("evicted idle sessions", zap.Int("removed", removed), zap.Int("sessions", n))
	}
	return removed
}

// Run sweeps every interval until ctx is cancelled.
func (m *Manager) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			m.Sweep()
		}
	}
}
