package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/mysavings/backend/internal/domain/entity"
)

// SavingEntryModel represents the saving_entries table in the database.
type SavingEntryModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	GoalID      uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_saving_entries_goal_seq"`
	Seq         int       `gorm:"not null;uniqueIndex:idx_saving_entries_goal_seq"`
	Amount      int64     `gorm:"not null"`
	Date        string    `gorm:"type:varchar(100)"`
	Description string    `gorm:"type:text"`
	RecordedAt  time.Time `gorm:"not null"`
}

// TableName returns the table name for the SavingEntryModel.
func (SavingEntryModel) TableName() string {
	return "saving_entries"
}

// ToEntity converts a SavingEntryModel to a domain SavingEntry entity.
func (m *SavingEntryModel) ToEntity() entity.SavingEntry {
	return entity.SavingEntry{
		ID:          m.ID,
		GoalID:      m.GoalID,
		Amount:      m.Amount,
		Date:        m.Date,
		Description: m.Description,
		RecordedAt:  m.RecordedAt,
	}
}

// SavingEntryFromEntity creates a SavingEntryModel at position seq of its goal.
func SavingEntryFromEntity(entry entity.SavingEntry, seq int) *SavingEntryModel {
	return &SavingEntryModel{
		ID:          entry.ID,
		GoalID:      entry.GoalID,
		Seq:         seq,
		Amount:      entry.Amount,
		Date:        entry.Date,
		Description: entry.Description,
		RecordedAt:  entry.RecordedAt,
	}
}
