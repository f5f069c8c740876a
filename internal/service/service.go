package service

import (
	"context"
	"time"

	"fintrack/internal/models"
	"fintrack/internal/repository"
)

// Authorization orchestrates sign-up and sign-in against the credential store.
type Authorization interface {
	SignUp(ctx context.Context, in SignUpInput) error
	SignIn(ctx context.Context, in SignInInput) (SignInResult, error)
	UserByID(ctx context.Context, id int64) (*models.User, error)
}

// Sessions issues and resolves opaque bearer tokens tied to a user identity.
type Sessions interface {
	Create(ctx context.Context, userID int64) (string, error)
	Resolve(ctx context.Context, token string) (int64, error)
}

// Ledger records and lists financial entries scoped to an authenticated user.
type Ledger interface {
	Append(ctx context.Context, userID int64, in EntryInput) error
	List(ctx context.Context, userID int64) ([]models.LedgerEntry, error)
}

// Config carries service-level policy knobs.
type Config struct {
	// SessionTTL is the lifetime of newly issued sessions. Zero disables expiry.
	SessionTTL time.Duration
}

//
// Root Service aggregates all sub-services.
//

type Service struct {
	Authorization
	Sessions
	Ledger
}

// NewService wires the repository layer into concrete services.
func NewService(repos *repository.Repository, cfg Config) *Service {
	sessions := NewSessionService(repos.Sessions, cfg.SessionTTL)
	return &Service{
		Authorization: NewAuthService(repos.Users, sessions),
		Sessions:      sessions,
		Ledger:        NewLedgerService(repos.Ledger),
	}
}
