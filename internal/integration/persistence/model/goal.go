// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/mysavings/backend/internal/domain/entity"
)

// GoalModel represents the goals table in the database.
// Position keeps the insertion order of the ledger.
type GoalModel struct {
	ID             uuid.UUID          `gorm:"type:uuid;primaryKey"`
	Position       int64              `gorm:"not null;uniqueIndex"`
	Name           string             `gorm:"type:varchar(255);not null"`
	TargetAmount   int64              `gorm:"not null"`
	SavedAmount    int64              `gorm:"not null;default:0"`
	DurationMonths int                `gorm:"not null"`
	EndDate        string             `gorm:"type:varchar(100)"`
	Reminder       string             `gorm:"type:varchar(30);not null;default:'first-of-month'"`
	CreatedAt      time.Time          `gorm:"not null"`
	UpdatedAt      time.Time          `gorm:"not null"`
	Entries        []SavingEntryModel `gorm:"foreignKey:GoalID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for the GoalModel.
func (GoalModel) TableName() string {
	return "goals"
}

// ToEntity converts a GoalModel to a domain Goal entity.
// Entries must already be ordered by sequence.
func (m *GoalModel) ToEntity() *entity.Goal {
	entries := make([]entity.SavingEntry, len(m.Entries))
	for i := range m.Entries {
		entries[i] = m.Entries[i].ToEntity()
	}

	return &entity.Goal{
		ID:             m.ID,
		Name:           m.Name,
		TargetAmount:   m.TargetAmount,
		SavedAmount:    m.SavedAmount,
		DurationMonths: m.DurationMonths,
		EndDate:        m.EndDate,
		Reminder:       entity.ReminderPolicy(m.Reminder),
		Entries:        entries,
		CreatedAt:      m.CreatedAt,
	}
}

// GoalFromEntity creates a GoalModel from a domain Goal entity, without entries.
func GoalFromEntity(goal *entity.Goal, position int64) *GoalModel {
	return &GoalModel{
		ID:             goal.ID,
		Position:       position,
		Name:           goal.Name,
		TargetAmount:   goal.TargetAmount,
		SavedAmount:    goal.SavedAmount,
		DurationMonths: goal.DurationMonths,
		EndDate:        goal.EndDate,
		Reminder:       string(goal.Reminder),
		CreatedAt:      goal.CreatedAt,
		UpdatedAt:      time.Now().UTC(),
	}
}
