package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"fintrack/internal/models"

	"github.com/google/uuid"
)

type LedgerSQLite struct {
	db *sql.DB
}

func NewLedgerSQLite(db *sql.DB) *LedgerSQLite { return &LedgerSQLite{db: db} }

var _ Ledger = (*LedgerSQLite)(nil)

const (
	insertEntrySQL = `
		INSERT INTO ledger_entries (id, user_id, type, amount, description, recorded_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`
	// rowid keeps insertion order deterministic even for same-instant entries.
	selectEntriesByUserSQL = `SELECT id, user_id, type, amount, description, recorded_at FROM ledger_entries WHERE user_id = ? ORDER BY rowid ASC`
)

// Append inserts a new entry. If EntryID or RecordedAt are empty, they're set.
// Returns the store-assigned entry ID.
func (r *LedgerSQLite) Append(ctx context.Context, e models.LedgerEntry) (string, error) {
	if e.EntryID == "" {
		e.EntryID = uuid.NewString()
	}
	if e.RecordedAt.IsZero() {
		e.RecordedAt = time.Now().UTC()
	} else {
		e.RecordedAt = e.RecordedAt.UTC()
	}

	_, err := r.db.ExecContext(ctx, insertEntrySQL,
		e.EntryID,
		e.UserID,
		e.Type,
		e.Amount,
		e.Description,
		e.RecordedAt,
	)
	if err != nil {
		return "", fmt.Errorf("insert ledger entry for user %d: %w", e.UserID, err)
	}
	return e.EntryID, nil
}

// ListByUser returns all entries owned by userID in insertion order.
func (r *LedgerSQLite) ListByUser(ctx context.Context, userID int64) ([]models.LedgerEntry, error) {
	rows, err := r.db.QueryContext(ctx, selectEntriesByUserSQL, userID)
	if err != nil {
		return nil, fmt.Errorf("select ledger entries for user %d: %w", userID, err)
	}
	defer rows.Close()

	out := make([]models.LedgerEntry, 0, 16)
	for rows.Next() {
		var e models.LedgerEntry
		if err := rows.Scan(&e.EntryID, &e.UserID, &e.Type, &e.Amount, &e.Description, &e.RecordedAt); err != nil {
			return nil, err
		}
		e.RecordedAt = e.RecordedAt.UTC()
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
