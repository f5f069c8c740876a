package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"fintrack/internal/models"
)

type UserSQLite struct {
	db *sql.DB
}

func NewUserSQLite(db *sql.DB) *UserSQLite {
	return &UserSQLite{db: db}
}

// Ensure implementation of Users interface at compile time.
var _ Users = (*UserSQLite)(nil)

const (
	insertUserSQL           = `INSERT INTO users (username, email, password_hash) VALUES (?, ?, ?)`
	selectUserByEmailSQL    = `SELECT id, username, email, password_hash FROM users WHERE email = ?`
	selectUserByUsernameSQL = `SELECT id, username, email, password_hash FROM users WHERE username = ?`
	selectUserByIDSQL       = `SELECT id, username, email, password_hash FROM users WHERE id = ?`
)

// Create inserts a new user and returns its store-assigned ID.
// The password must already be hashed by the caller; raw passwords never reach this layer.
func (r *UserSQLite) Create(ctx context.Context, username, email, passwordHash string) (int64, error) {
	res, err := r.db.ExecContext(ctx, insertUserSQL, username, email, passwordHash)
	if err != nil {
		return 0, fmt.Errorf("insert user %q: %w", username, err)
	}
	lastID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("get last insert id for user %q: %w", username, err)
	}
	return lastID, nil
}

// GetByEmail fetches a user by email. Returns (nil, nil) if not found.
func (r *UserSQLite) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.getOne(ctx, selectUserByEmailSQL, "email", email)
}

// GetByUsername fetches a user by username. Returns (nil, nil) if not found.
func (r *UserSQLite) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	return r.getOne(ctx, selectUserByUsernameSQL, "username", username)
}

// GetByID fetches a user by its store-assigned ID. Returns (nil, nil) if not found.
func (r *UserSQLite) GetByID(ctx context.Context, id int64) (*models.User, error) {
	return r.getOne(ctx, selectUserByIDSQL, "id", id)
}

func (r *UserSQLite) getOne(ctx context.Context, query, field string, arg any) (*models.User, error) {
	var u models.User
	err := r.db.QueryRowContext(ctx, query, arg).Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select user by %s: %w", field, err)
	}
	return &u, nil
}
