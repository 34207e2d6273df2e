package session

import (
	"fmt"
	"sync"

	"helpdesk/internal/domain/user"
	"helpdesk/internal/shared/biztime"
)

// MemoryStore keeps sessions in process memory. Sessions do not survive a
// restart; clients simply log in again.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]*user.Session
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		sessions: make(map[string]*user.Session),
	}
}

func (s *MemoryStore) Create(session *user.Session) error {
	if session == nil || session.ID == "" {
		return fmt.Errorf("session ID is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.sessions[session.ID] = session
	return nil
}

// GetByID returns a snapshot of the session, or nil without error when the
// session does not exist or has already expired. Expired entries are removed
// lazily; a hit refreshes the session's activity timestamp.
func (s *MemoryStore) GetByID(sessionID string) (*user.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[sessionID]
	if !ok {
		return nil, nil
	}

	if session.IsExpired() {
		delete(s.sessions, sessionID)
		return nil, nil
	}

	session.UpdateActivity()

	snapshot := *session
	return &snapshot, nil
}

// Delete is idempotent. Removing an absent session is not an error.
func (s *MemoryStore) Delete(sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.sessions, sessionID)
	return nil
}

func (s *MemoryStore) DeleteByUserID(userID uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, session := range s.sessions {
		if session.UserID == userID {
			delete(s.sessions, id)
		}
	}
	return nil
}

func (s *MemoryStore) DeleteExpired() error {
	now := biztime.NowUTC()

	s.mu.Lock()
	defer s.mu.Unlock()

	for id, session := range s.sessions {
		if now.After(session.ExpiresAt) {
			delete(s.sessions, id)
		}
	}
	return nil
}

// Count reports the number of stored sessions, expired entries included.
func (s *MemoryStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}
