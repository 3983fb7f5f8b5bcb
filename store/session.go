package store

import (
	"sync"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/enroute-bot/enroute-api/schema"
)

const (
	sessionLogPrefix = "session"

	// DefaultSessionTTL bounds how long an idle conversation is kept.
	DefaultSessionTTL = 72 * time.Hour

	janitorInterval = 10 * time.Minute
)

// SessionStore keeps per-user conversational state. The map itself is
// concurrency-safe; writes to fields of a returned session are not
// synchronized, which is tolerated for human-paced dialogue.
type SessionStore interface {
	// Get returns the session for a recipient and refreshes its activity
	// timestamp.
	Get(recipientID string) (*schema.Session, bool)

	// GetOrCreate returns the existing session or creates an empty one.
	GetOrCreate(recipientID string) *schema.Session

	Delete(recipientID string)
	Len() int
}

type MemorySessionStore struct {
	mu       sync.RWMutex
	sessions map[string]*schema.Session

	ttl  time.Duration
	now  func() time.Time
	stop chan struct{}
	once sync.Once
}

// NewSessionStore - in-memory session store evicting sessions idle for
// longer than ttl
func NewSessionStore(ttl time.Duration) *MemorySessionStore {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}

	s := &MemorySessionStore{
		sessions: map[string]*schema.Session{},
		ttl:      ttl,
		now:      time.Now,
		stop:     make(chan struct{}),
	}
	go s.janitor(janitorInterval)
	return s
}

func (s *MemorySessionStore) Get(recipientID string) (*schema.Session, bool) {
	s.mu.RLock()
	session, ok := s.sessions[recipientID]
	s.mu.RUnlock()

	if ok {
		session.LastActivity = s.now()
	}
	return session, ok
}

func (s *MemorySessionStore) GetOrCreate(recipientID string) *schema.Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[recipientID]
	if !ok {
		session = &schema.Session{RecipientID: recipientID}
		s.sessions[recipientID] = session
	}
	session.LastActivity = s.now()
	return session
}

func (s *MemorySessionStore) Delete(recipientID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.sessions, recipientID)
}

func (s *MemorySessionStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.sessions)
}

// Stop terminates the eviction janitor.
func (s *MemorySessionStore) Stop() {
	s.once.Do(func() {
		close(s.stop)
	})
}

func (s *MemorySessionStore) janitor(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-s.stop:
			return
		case <-ticker.C:
			if evicted := s.evictExpired(); evicted > 0 {
				log.WithFields(log.Fields{
					"prefix":  sessionLogPrefix,
					"evicted": evicted,
				}).Info("evicted idle sessions")
			}
		}
	}
}

func (s *MemorySessionStore) evictExpired() int {
	deadline := s.now().Add(-s.ttl)

	s.mu.Lock()
	defer s.mu.Unlock()

	evicted := 0
	for id, session := range s.sessions {
		if session.LastActivity.Before(deadline) {
			delete(s.sessions, id)
			evicted++
		}
	}
	return evicted
}
