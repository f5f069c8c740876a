package repository

import (
	"context"
	"database/sql"

	"fintrack/internal/models"
)

// Users persists credential rows. Lookups return (nil, nil) when no row matches.
type Users interface {
	Create(ctx context.Context, username, email, passwordHash string) (int64, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	GetByID(ctx context.Context, id int64) (*models.User, error)
}

// Sessions persists token-keyed session rows.
type Sessions interface {
	Create(ctx context.Context, s models.Session) error
	GetByToken(ctx context.Context, token string) (*models.Session, error)
}

// Ledger persists per-user financial entries, append-only.
type Ledger interface {
	Append(ctx context.Context, e models.LedgerEntry) (string, error)
	ListByUser(ctx context.Context, userID int64) ([]models.LedgerEntry, error)
}

type Repository struct {
	Users    Users
	Sessions Sessions
	Ledger   Ledger
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		Users:    NewUserSQLite(db),
		Sessions: NewSessionSQLite(db),
		Ledger:   NewLedgerSQLite(db),
	}
}
