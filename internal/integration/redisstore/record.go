package redisstore

import (
	"time"

	"github.com/google/uuid"

	"github.com/mysavings/backend/internal/domain/entity"
)

// goalRecord is the JSON document stored per goal.
type goalRecord struct {
	ID             uuid.UUID     `json:"id"`
	Name           string        `json:"name"`
	TargetAmount   int64         `json:"target_amount"`
	SavedAmount    int64         `json:"saved_amount"`
	DurationMonths int           `json:"duration_months"`
	EndDate        string        `json:"end_date,omitempty"`
	Reminder       string        `json:"reminder"`
	Entries        []entryRecord `json:"entries"`
	CreatedAt      time.Time     `json:"created_at"`
}

type entryRecord struct {
	ID          uuid.UUID `json:"id"`
	Amount      int64     `json:"amount"`
	Date        string    `json:"date,omitempty"`
	Description string    `json:"description,omitempty"`
	RecordedAt  time.Time `json:"recorded_at"`
}

type profileRecord struct {
	Name      string    `json:"name"`
	Email     string    `json:"email,omitempty"`
	UpdatedAt time.Time `json:"updated_at"`
}

func goalRecordFromEntity(g *entity.Goal) goalRecord {
	entries := make([]entryRecord, len(g.Entries))
	for i, e := range g.Entries {
		entries[i] = entryRecord{
			ID:          e.ID,
			Amount:      e.Amount,
			Date:        e.Date,
			Description: e.Description,
			RecordedAt:  e.RecordedAt,
		}
	}
	return goalRecord{
		ID:             g.ID,
		Name:           g.Name,
		TargetAmount:   g.TargetAmount,
		SavedAmount:    g.SavedAmount,
		DurationMonths: g.DurationMonths,
		EndDate:        g.EndDate,
		Reminder:       string(g.Reminder),
		Entries:        entries,
		CreatedAt:      g.CreatedAt,
	}
}

func (r goalRecord) toEntity() *entity.Goal {
	entries := make([]entity.SavingEntry, len(r.Entries))
	for i, e := range r.Entries {
		entries[i] = entity.SavingEntry{
			ID:          e.ID,
			GoalID:      r.ID,
			Amount:      e.Amount,
			Date:        e.Date,
			Description: e.Description,
			RecordedAt:  e.RecordedAt,
		}
	}
	return &entity.Goal{
		ID:             r.ID,
		Name:           r.Name,
		TargetAmount:   r.TargetAmount,
		SavedAmount:    r.SavedAmount,
		DurationMonths: r.DurationMonths,
		EndDate:        r.EndDate,
		Reminder:       entity.ReminderPolicy(r.Reminder),
		Entries:        entries,
		CreatedAt:      r.CreatedAt,
	}
}
