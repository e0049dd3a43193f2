package goal

import (
	"time"

	"github.com/google/uuid"

	"github.com/mysavings/backend/internal/domain/entity"
)

// GoalView is the read model of a goal handed to collaborators.
type GoalView struct {
	ID             uuid.UUID
	Name           string
	TargetAmount   int64
	SavedAmount    int64
	Remaining      int64
	DurationMonths int
	EndDate        string
	Reminder       entity.ReminderPolicy
	Progress       int
	Achieved       bool
	Entries        []entity.SavingEntry
	CreatedAt      time.Time
}

// NewGoalView builds the read model of g. g must already be a copy.
func NewGoalView(g entity.Goal) GoalView {
	return GoalView{
		ID:             g.ID,
		Name:           g.Name,
		TargetAmount:   g.TargetAmount,
		SavedAmount:    g.SavedAmount,
		Remaining:      g.RemainingAmount(),
		DurationMonths: g.DurationMonths,
		EndDate:        g.EndDate,
		Reminder:       g.Reminder,
		Progress:       g.Progress(),
		Achieved:       g.IsAchieved(),
		Entries:        g.Entries,
		CreatedAt:      g.CreatedAt,
	}
}
