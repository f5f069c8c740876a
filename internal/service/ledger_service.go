package service

import (
	"context"
	"strings"
	"time"

	"fintrack/internal/models"
	"fintrack/internal/repository"
)

const (
	minDescriptionLen = 5
	dayMonthLayout    = "02/01"
)

const (
	msgAmountRequired = "amount is required and must be a number"
	msgDescriptionLen = "description must be at least 5 characters"
	msgTypeRequired   = "type is required"
)

// LedgerService validates and records entries for authenticated users.
type LedgerService struct {
	repo repository.Ledger
}

func NewLedgerService(repo repository.Ledger) *LedgerService {
	return &LedgerService{repo: repo}
}

// Append validates the payload and persists one entry stamped with the
// current instant. The full timestamp is stored; day/month display is
// derived on read.
func (s *LedgerService) Append(ctx context.Context, userID int64, in EntryInput) error {
	if err := validateEntry(in); err != nil {
		return err
	}
	_, err := s.repo.Append(ctx, models.LedgerEntry{
		UserID:      userID,
		Type:        strings.TrimSpace(in.Type),
		Amount:      *in.Amount,
		Description: in.Description,
		RecordedAt:  time.Now().UTC(),
	})
	return err
}

// List returns all of the user's entries in insertion order, each carrying
// the derived DD/MM display stamp.
func (s *LedgerService) List(ctx context.Context, userID int64) ([]models.LedgerEntry, error) {
	entries, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	for i := range entries {
		entries[i].RecordedOn = entries[i].RecordedAt.Format(dayMonthLayout)
	}
	return entries, nil
}

// validateEntry checks body shape in order: amount, description, type.
func validateEntry(in EntryInput) error {
	if in.Amount == nil {
		return newValidationError("amount", msgAmountRequired)
	}
	if len(in.Description) < minDescriptionLen {
		return newValidationError("description", msgDescriptionLen)
	}
	if strings.TrimSpace(in.Type) == "" {
		return newValidationError("type", msgTypeRequired)
	}
	return nil
}
