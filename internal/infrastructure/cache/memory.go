package cache

import (
	"sync"
	"time"

	"github.com/graniteworks/meeting-insights/internal/domain/entities"
)

// Session holds the processing result for one uploaded meeting. Sessions are
// not persisted; they live in memory until they expire.
type Session struct {
	Transcript string
	Summary    *entities.EnrichedSummary
	CreatedAt  time.Time
}

// SessionStore is a simple in-memory session store with expiration
type SessionStore struct {
	mu    sync.RWMutex
	ttl   time.Duration
	items map[string]*sessionItem
}

type sessionItem struct {
	session    *Session
	expireTime time.Time
}

// NewSessionStore creates a new in-memory session store
func NewSessionStore(ttl time.Duration) *SessionStore {
	store := &SessionStore{
		ttl:   ttl,
		items: make(map[string]*sessionItem),
	}

	// Start cleanup goroutine to remove expired sessions
	go store.cleanupExpired()

	return store
}

// Set stores a session under the given id
func (ss *SessionStore) Set(id string, session *Session) {
	ss.mu.Lock()
	defer ss.mu.Unlock()

	ss.items[id] = &sessionItem{
		session:    session,
		expireTime: time.Now().Add(ss.ttl),
	}
}

// Get retrieves a session by id (returns false if not found or expired)
func (ss *SessionStore) Get(id string) (*Session, bool) {
	ss.mu.RLock()
	defer ss.mu.RUnlock()

	item, exists := ss.items[id]
	if !exists {
		return nil, false
	}

	// Check if expired
	if time.Now().After(item.expireTime) {
		return nil, false
	}

	return item.session, true
}

// Delete removes a session
func (ss *SessionStore) Delete(id string) {
	ss.mu.Lock()
	defer ss.mu.Unlock()

	delete(ss.items, id)
}

// cleanupExpired periodically removes expired sessions
func (ss *SessionStore) cleanupExpired() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		ss.mu.Lock()
		now := time.Now()
		for id, item := range ss.items {
			if now.After(item.expireTime) {
				delete(ss.items, id)
			}
		}
		ss.mu.Unlock()
	}
}
