package common

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// SessionTTL bounds how long a browser session stays valid.
const SessionTTL = 7 * 24 * time.Hour

const sessionKeyPrefix = "session:"

// SessionData carries the two identity slots. A session holds a player or
// an instructor identity, never both: every login clears the session first.
type SessionData struct {
	SessionID    string    `json:"session_id"`
	PlayerID     *uint     `json:"player_id,omitempty"`
	InstructorID *uint     `json:"instructor_id,omitempty"`
	Flash        string    `json:"flash,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	ExpiresAt    time.Time `json:"expires_at"`
}

// IsPlayer reports whether the session holds a player identity.
func (s *SessionData) IsPlayer() bool {
	return s.PlayerID != nil
}

// IsInstructor reports whether the session holds an instructor identity.
func (s *SessionData) IsInstructor() bool {
	return s.InstructorID != nil
}

// SessionService manages server-side sessions behind a cache backend.
type SessionService struct {
	store CacheInterface
}

// NewSessionService creates a new session service
func NewSessionService(store CacheInterface) *SessionService {
	return &SessionService{store: store}
}

// CreatePlayerSession establishes a session holding a player identity.
func (s *SessionService) CreatePlayerSession(ctx context.Context, playerID uint) (string, error) {
	return s.create(ctx, &playerID, nil)
}

// CreateInstructorSession establishes a session holding an instructor identity.
func (s *SessionService) CreateInstructorSession(ctx context.Context, instructorID uint) (string, error) {
	return s.create(ctx, nil, &instructorID)
}

func (s *SessionService) create(ctx context.Context, playerID, instructorID *uint) (string, error) {
	sessionID := uuid.New().String()

	now := time.Now()
	session := SessionData{
		SessionID:    sessionID,
		PlayerID:     playerID,
		InstructorID: instructorID,
		CreatedAt:    now,
		ExpiresAt:    now.Add(SessionTTL),
	}

	if err := s.save(&session); err != nil {
		return "", err
	}
	return sessionID, nil
}

// GetSession retrieves a session by ID, expiring it when past its TTL.
func (s *SessionService) GetSession(ctx context.Context, sessionID string) (*SessionData, error) {
	val, found := s.store.Get(sessionKeyPrefix + sessionID)
	if !found {
		return nil, errors.New("session not found")
	}

	raw, ok := val.(string)
	if !ok {
		return nil, errors.New("session record has unexpected type")
	}

	var session SessionData
	if err := json.Unmarshal([]byte(raw), &session); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session: %w", err)
	}

	if time.Now().After(session.ExpiresAt) {
		s.DeleteSession(ctx, sessionID)
		return nil, errors.New("session expired")
	}

	return &session, nil
}

// DeleteSession removes a session.
func (s *SessionService) DeleteSession(ctx context.Context, sessionID string) {
	s.store.Delete(sessionKeyPrefix + sessionID)
}

// SetFlash stores a one-shot message on the session.
func (s *SessionService) SetFlash(ctx context.Context, sessionID, message string) error {
	session, err := s.GetSession(ctx, sessionID)
	if err != nil {
		return err
	}
	session.Flash = message
	return s.save(session)
}

// PopFlash returns and clears the session's one-shot message.
func (s *SessionService) PopFlash(ctx context.Context, sessionID string) (string, error) {
	session, err := s.GetSession(ctx, sessionID)
	if err != nil {
		return "", err
	}
	flash := session.Flash
	if flash != "" {
		session.Flash = ""
		if err := s.save(session); err != nil {
			return "", err
		}
	}
	return flash, nil
}

func (s *SessionService) save(session *SessionData) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}

	ttl := time.Until(session.ExpiresAt)
	if ttl <= 0 {
		return errors.New("session already expired")
	}

	// Stored as a JSON string so both cache backends round-trip the same
	// value type.
	s.store.Set(sessionKeyPrefix+session.SessionID, string(data), ttl)
	return nil
}
