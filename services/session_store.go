package services

import (
	"sync"
	"time"

	"meditime-chatbot-backend/models"
)

// SessionStore keeps per-client conversational memory: the last
// medication discussed and the active sub-topic. Entries are created
// lazily on first contact and evicted after the configured TTL so the
// map cannot grow without bound.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[string]*models.Session
	ttl      time.Duration
	now      func() time.Time
}

// NewSessionStore creates a store evicting entries idle longer than
// ttl. A non-positive ttl disables eviction.
func NewSessionStore(ttl time.Duration) *SessionStore {
	return &SessionStore{
		sessions: make(map[string]*models.Session),
		ttl:      ttl,
		now:      time.Now,
	}
}

// Get returns the session for clientKey, creating it on first contact.
// The returned value is a snapshot; mutations go through Update.
func (s *SessionStore) Get(clientKey string) models.Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[clientKey]
	if !ok || s.expired(sess) {
		sess = &models.Session{ClientKey: clientKey}
		s.sessions[clientKey] = sess
	}
	sess.LastSeen = s.now()
	return *sess
}

// Update stores the last medication and active topic for clientKey.
func (s *SessionStore) Update(clientKey, lastMedication, activeTopic string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[clientKey]
	if !ok {
		sess = &models.Session{ClientKey: clientKey}
		s.sessions[clientKey] = sess
	}
	sess.LastMedication = lastMedication
	sess.ActiveTopic = activeTopic
	sess.LastSeen = s.now()
}

// Clear drops every session. Invoked when the history is wiped, since
// continuation context refers to conversations that no longer exist.
func (s *SessionStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions = make(map[string]*models.Session)
}

// Len reports the number of live sessions, sweeping expired ones.
func (s *SessionStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	for key, sess := range s.sessions {
		if s.expired(sess) {
			delete(s.sessions, key)
		}
	}
	return len(s.sessions)
}

// StartSweeper evicts idle sessions every interval until stop is
// closed. Eviction also happens lazily on Get, so the sweeper only
// bounds memory for clients that never return.
func (s *SessionStore) StartSweeper(interval time.Duration, stop <-chan struct{}) {
	if s.ttl <= 0 {
		return
	}
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				s.Len()
			case <-stop:
				return
			}
		}
	}()
}

func (s *SessionStore) expired(sess *models.Session) bool {
	return s.ttl > 0 && s.now().Sub(sess.LastSeen) > s.ttl
}
