// Package entity defines the core business entities for the domain layer.
package entity

import (
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/mysavings/backend/internal/domain/valueobject"
)

// Goal represents a named savings target in the MySavings system.
// SavedAmount always equals the sum of the amounts in Entries.
type Goal struct {
	ID             uuid.UUID
	Name           string
	TargetAmount   int64
	SavedAmount    int64
	DurationMonths int
	EndDate        string // display string, never parsed
	Reminder       ReminderPolicy
	Entries        []SavingEntry
	CreatedAt      time.Time
}

// NewGoal creates a new Goal entity with nothing saved yet.
func NewGoal(name string, targetAmount int64, durationMonths int, endDate string, reminder ReminderPolicy) *Goal {
	return &Goal{
		ID:             uuid.New(),
		Name:           name,
		TargetAmount:   targetAmount,
		SavedAmount:    0,
		DurationMonths: durationMonths,
		EndDate:        endDate,
		Reminder:       reminder,
		Entries:        []SavingEntry{},
		CreatedAt:      time.Now().UTC(),
	}
}

// Record appends a saving entry and increments the saved amount in one step.
func (g *Goal) Record(entry SavingEntry) {
	entry.GoalID = g.ID
	g.Entries = append(g.Entries, entry)
	g.SavedAmount += entry.Amount
}

// CanRecord reports whether amount fits on top of the saved amount without overflowing.
func (g *Goal) CanRecord(amount int64) bool {
	return amount > 0 && amount <= math.MaxInt64-g.SavedAmount
}

// Progress returns the rounded saved/target percentage. It is not clamped.
func (g *Goal) Progress() int {
	return valueobject.Progress(g.SavedAmount, g.TargetAmount)
}

// IsAchieved reports whether the target has been reached.
func (g *Goal) IsAchieved() bool {
	return g.SavedAmount >= g.TargetAmount
}

// RemainingAmount returns how much is left to save, never negative.
func (g *Goal) RemainingAmount() int64 {
	if g.SavedAmount >= g.TargetAmount {
		return 0
	}
	return g.TargetAmount - g.SavedAmount
}

// SuggestedMonthly spreads the remaining amount over the goal duration, rounded up.
func (g *Goal) SuggestedMonthly() int64 {
	remaining := g.RemainingAmount()
	months := int64(g.DurationMonths)
	if months <= 0 {
		return remaining
	}
	monthly := remaining / months
	if remaining%months != 0 {
		monthly++
	}
	return monthly
}

// EntriesTotal sums the entry history.
func (g *Goal) EntriesTotal() int64 {
	var total int64
	for _, e := range g.Entries {
		total += e.Amount
	}
	return total
}

// IsConsistent reports whether SavedAmount matches the entry history.
func (g *Goal) IsConsistent() bool {
	return g.SavedAmount == g.EntriesTotal()
}

// Clone returns a deep copy so callers never share the entry slice.
func (g *Goal) Clone() *Goal {
	c := *g
	c.Entries = make([]SavingEntry, len(g.Entries))
	copy(c.Entries, g.Entries)
	return &c
}
