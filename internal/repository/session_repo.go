package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"fintrack/internal/models"
)

type SessionSQLite struct {
	db *sql.DB
}

func NewSessionSQLite(db *sql.DB) *SessionSQLite {
	return &SessionSQLite{db: db}
}

var _ Sessions = (*SessionSQLite)(nil)

const (
	insertSessionSQL        = `INSERT INTO sessions (token, user_id, created_at, expires_at) VALUES (?, ?, ?, ?)`
	selectSessionByTokenSQL = `SELECT token, user_id, created_at, expires_at FROM sessions WHERE token = ?`
)

// Create records a new session row. The token value is never included in errors.
func (r *SessionSQLite) Create(ctx context.Context, s models.Session) error {
	var expires any
	if !s.ExpiresAt.IsZero() {
		expires = s.ExpiresAt.UTC()
	}
	_, err := r.db.ExecContext(ctx, insertSessionSQL, s.Token, s.UserID, s.CreatedAt.UTC(), expires)
	if err != nil {
		return fmt.Errorf("insert session for user %d: %w", s.UserID, err)
	}
	return nil
}

// GetByToken fetches a session by its token. Returns (nil, nil) if not found.
func (r *SessionSQLite) GetByToken(ctx context.Context, token string) (*models.Session, error) {
	var (
		s       models.Session
		expires sql.NullTime
	)
	err := r.db.QueryRowContext(ctx, selectSessionByTokenSQL, token).
		Scan(&s.Token, &s.UserID, &s.CreatedAt, &expires)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select session: %w", err)
	}
	s.CreatedAt = s.CreatedAt.UTC()
	if expires.Valid {
		s.ExpiresAt = expires.Time.UTC()
	}
	return &s, nil
}
