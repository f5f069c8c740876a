package service

import (
	"context"
	"strings"
	"time"

	"fintrack/internal/models"
	"fintrack/internal/repository"

	"github.com/google/uuid"
)

// SessionService issues opaque v4-UUID tokens and resolves them by store lookup.
type SessionService struct {
	repo repository.Sessions
	ttl  time.Duration
}

// NewSessionService builds a session manager. ttl == 0 means sessions never expire.
func NewSessionService(repo repository.Sessions, ttl time.Duration) *SessionService {
	return &SessionService{repo: repo, ttl: ttl}
}

// Create records a new session for userID and returns its token.
// There is no session limit per user.
func (s *SessionService) Create(ctx context.Context, userID int64) (string, error) {
	now := time.Now().UTC()
	sess := models.Session{
		Token:     uuid.NewString(),
		UserID:    userID,
		CreatedAt: now,
	}
	if s.ttl > 0 {
		sess.ExpiresAt = now.Add(s.ttl)
	}
	if err := s.repo.Create(ctx, sess); err != nil {
		return "", err
	}
	return sess.Token, nil
}

// Resolve maps a token to its user identity. Blank, unknown, and expired
// tokens all yield ErrSessionInvalid.
func (s *SessionService) Resolve(ctx context.Context, token string) (int64, error) {
	if strings.TrimSpace(token) == "" {
		return 0, ErrSessionInvalid
	}
	sess, err := s.repo.GetByToken(ctx, token)
	if err != nil {
		return 0, err
	}
	if sess == nil || sess.Expired(time.Now().UTC()) {
		return 0, ErrSessionInvalid
	}
	return sess.UserID, nil
}
