// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// SavingEntry is one recorded contribution toward a Goal.
// Entries are immutable once appended.
type SavingEntry struct {
	ID          uuid.UUID
	GoalID      uuid.UUID
	Amount      int64
	Date        string // display string supplied by the user
	Description string
	RecordedAt  time.Time
}

// NewSavingEntry creates a new SavingEntry. The goal ID is set when it is recorded.
func NewSavingEntry(amount int64, date, description string) SavingEntry {
	return SavingEntry{
		ID:          uuid.New(),
		Amount:      amount,
		Date:        date,
		Description: description,
		RecordedAt:  time.Now().UTC(),
	}
}
