// Package session keeps uploaded datasets in process memory, keyed by
// random tokens. Nothing here survives a restart and that is the point:
// the service analyzes files, it does not store them.
package session

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"sales-analytics/internal/dataset"
	"sales-analytics/internal/model"
)

// DefaultTTL evicts sessions idle for longer than an hour.
const DefaultTTL = time.Hour

// Session ties one uploaded dataset to its derived analysis.
type Session struct {
	ID        string
	Filename  string
	Dataset   *dataset.Dataset
	Roles     model.RoleAssignment
	Metrics   []model.Metric
	CreatedAt time.Time
	LastSeen  time.Time
}

// Store is the session registry injected into request handlers.
type Store interface {
	Create(s *Session) string
	Get(id string) (*Session, bool)
	Delete(id string)
	Len() int
}

// MemoryStore is the in-process Store. Sessions are independent per
// token, so a single RWMutex around the map is all the coordination
// concurrent requests need.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	ttl      time.Duration
}

// NewMemoryStore builds a store evicting sessions idle longer than ttl.
// ttl <= 0 falls back to DefaultTTL.
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &MemoryStore{
		sessions: make(map[string]*Session),
		ttl:      ttl,
	}
}

// Create registers the session under a fresh random token and returns it.
func (m *MemoryStore) Create(s *Session) string {
	now := time.Now()
	s.ID = uuid.NewString()
	s.CreatedAt = now
	s.LastSeen = now

	m.mu.Lock()
	m.sessions[s.ID] = s
	m.mu.Unlock()
	return s.ID
}

// Get returns the session and refreshes its idle timer.
func (m *MemoryStore) Get(id string) (*Session, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.sessions[id]
	if !ok {
		return nil, false
	}
	s.LastSeen = time.Now()
	return s, true
}

// Delete removes a session; deleting an unknown id is a no-op.
func (m *MemoryStore) Delete(id string) {
	m.mu.Lock()
	delete(m.sessions, id)
	m.mu.Unlock()
}

// Len returns the number of live sessions.
func (m *MemoryStore) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

// StartSweeper evicts idle sessions every interval until ctx ends.
func (m *MemoryStore) StartSweeper(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case now := <-ticker.C:
				if evicted := m.Sweep(now); evicted > 0 {
					fmt.Printf("🧹 Session sweep: evicted %d idle sessions, %d remaining\n", evicted, m.Len())
				}
			}
		}
	}()
}

// Sweep removes every session idle longer than the TTL as of now and
// returns how many were evicted.
func (m *MemoryStore) Sweep(now time.Time) int {
	m.mu.Lock()
	defer m.mu.Unlock()

	evicted := 0
	for id, s := range m.sessions {
		if now.Sub(s.LastSeen) > m.ttl {
			delete(m.sessions, id)
			evicted++
		}
	}
	return evicted
}
