package models

import "time"

// LedgerEntry is a single recorded financial transaction belonging to one user.
type LedgerEntry struct {
	EntryID     string    `json:"entry_id"`
	UserID      int64     `json:"user_id"`
	Type        string    `json:"type"` // e.g. "income" | "expense"
	Amount      float64   `json:"amount"`
	Description string    `json:"description"`
	RecordedAt  time.Time `json:"recorded_at"`
	// RecordedOn is the DD/MM display form of RecordedAt, derived at the
	// service edge and never persisted.
	RecordedOn string `json:"recorded_on,omitempty"`
}
