package goal

import (
	"context"

	"github.com/google/uuid"

	"github.com/mysavings/backend/internal/application/ledger"
	"github.com/mysavings/backend/internal/domain/entity"
	domainerror "github.com/mysavings/backend/internal/domain/error"
	"github.com/mysavings/backend/internal/domain/valueobject"
)

// AddSavingInput represents a saving typed into the "Add Saving" form.
type AddSavingInput struct {
	GoalID      uuid.UUID
	Amount      string
	Date        string
	Description string
}

// AddSavingOutput returns the recorded entry and the goal after the change.
type AddSavingOutput struct {
	Entry entity.SavingEntry
	Goal  GoalView
}

// AddSavingUseCase records a saving against a goal.
type AddSavingUseCase struct {
	ledger *ledger.Ledger
}

// NewAddSavingUseCase creates a new AddSavingUseCase instance.
func NewAddSavingUseCase(l *ledger.Ledger) *AddSavingUseCase {
	return &AddSavingUseCase{
		ledger: l,
	}
}

// Execute performs the saving entry.
func (uc *AddSavingUseCase) Execute(ctx context.Context, input AddSavingInput) (*AddSavingOutput, error) {
	amount, err := valueobject.ParseWholeAmount(input.Amount)
	if err != nil {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeInvalidSavingAmount,
			"saving amount must be a positive whole number",
			domainerror.ErrInvalidSavingAmount,
		)
	}

	entry, err := uc.ledger.AddSavingEntry(ctx, input.GoalID, ledger.SavingEntryParams{
		Amount:      amount,
		Date:        input.Date,
		Description: input.Description,
	})
	if err != nil {
		return nil, err
	}

	g, err := uc.ledger.FindGoal(ctx, input.GoalID)
	if err != nil {
		return nil, err
	}

	return &AddSavingOutput{
		Entry: entry,
		Goal:  NewGoalView(g),
	}, nil
}
