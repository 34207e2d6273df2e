package user

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"

	"helpdesk/internal/shared/biztime"
)

// Session is a server-resident login session. The client only holds the
// opaque ID in its cookie; everything else lives on the server.
type Session struct {
	ID             string
	UserID         uint
	ExpiresAt      time.Time
	LastActivityAt time.Time
	CreatedAt      time.Time
}

func NewSession(userID uint, expiresAt time.Time) (*Session, error) {
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}

	id, err := generateSessionID()
	if err != nil {
		return nil, fmt.Errorf("failed to generate session ID: %w", err)
	}

	now := biztime.NowUTC()
	return &Session{
		ID:             id,
		UserID:         userID,
		ExpiresAt:      expiresAt,
		LastActivityAt: now,
		CreatedAt:      now,
	}, nil
}

func (s *Session) IsExpired() bool {
	return biztime.NowUTC().After(s.ExpiresAt)
}

func (s *Session) UpdateActivity() {
	s.LastActivityAt = biztime.NowUTC()
}

func generateSessionID() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

type SessionRepository interface {
	Create(session *Session) error
	GetByID(sessionID string) (*Session, error)
	Delete(sessionID string) error
	DeleteByUserID(userID uint) error
	DeleteExpired() error
}
