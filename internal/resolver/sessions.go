package resolver

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// maxSessions bounds the registry; the least recently used session is
// dropped to make room.
const maxSessions = 4096

// Sessions hands out query sessions by id and forgets idle ones.
type Sessions struct {
	r       *Resolver
	idleTTL time.Duration
	limit   int
	now     func() time.Time

	mu   sync.Mutex
	byID map[string]*sessionEntry
}

type sessionEntry struct {
	session  *Session
	lastUsed time.Time
}

// NewSessions creates a registry whose sessions expire after idleTTL without use.
func NewSessions(r *Resolver, idleTTL time.Duration) *Sessions {
	return &Sessions{
		r:       r,
		idleTTL: idleTTL,
		limit:   maxSessions,
		now:     time.Now,
		byID:    make(map[string]*sessionEntry),
	}
}

// Get returns the session for id, creating one (with a fresh id) when id is
// empty, malformed or unknown.
func (s *Sessions) Get(id string) (*Session, string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	s.expireLocked(now)

	if _, err := uuid.Parse(id); err == nil {
		if e, ok := s.byID[id]; ok {
			e.lastUsed = now
			return e.session, id
		}
	} else {
		id = uuid.NewString()
	}

	if len(s.byID) >= s.limit {
		s.evictOldestLocked()
	}
	e := &sessionEntry{session: s.r.NewSession(), lastUsed: now}
	s.byID[id] = e
	return e.session, id
}

// Lookup returns an existing session without creating one.
func (s *Sessions) Lookup(id string) (*Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.byID[id]
	if !ok {
		return nil, false
	}
	e.lastUsed = s.now()
	return e.session, true
}

// Len returns the number of live sessions.
func (s *Sessions) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.byID)
}

func (s *Sessions) expireLocked(now time.Time) {
	if s.idleTTL <= 0 {
		return
	}
	for id, e := range s.byID {
		if now.Sub(e.lastUsed) > s.idleTTL {
			delete(s.byID, id)
		}
	}
}

func (s *Sessions) evictOldestLocked() {
	var oldest string
	var oldestAt time.Time
	for id, e := range s.byID {
		if oldest == "" || e.lastUsed.Before(oldestAt) {
			oldest, oldestAt = id, e.lastUsed
		}
	}
	delete(s.byID, oldest)
}
