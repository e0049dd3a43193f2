package goal

import (
	"context"

	"github.com/google/uuid"

	"github.com/mysavings/backend/internal/application/ledger"
	"github.com/mysavings/backend/internal/domain/entity"
)

// ListSavingsInput represents the input for a goal's saving history.
type ListSavingsInput struct {
	GoalID uuid.UUID
}

// ListSavingsOutput holds the entries in the order they were recorded.
type ListSavingsOutput struct {
	GoalID  uuid.UUID
	Entries []entity.SavingEntry
	Total   int64
}

// ListSavingsUseCase returns the saving history of a goal.
type ListSavingsUseCase struct {
	ledger *ledger.Ledger
}

// NewListSavingsUseCase creates a new ListSavingsUseCase instance.
func NewListSavingsUseCase(l *ledger.Ledger) *ListSavingsUseCase {
	return &ListSavingsUseCase{
		ledger: l,
	}
}

// Execute performs the history lookup.
func (uc *ListSavingsUseCase) Execute(ctx context.Context, input ListSavingsInput) (*ListSavingsOutput, error) {
	g, err := uc.ledger.FindGoal(ctx, input.GoalID)
	if err != nil {
		return nil, err
	}

	return &ListSavingsOutput{
		GoalID:  g.ID,
		Entries: g.Entries,
		Total:   g.EntriesTotal(),
	}, nil
}
