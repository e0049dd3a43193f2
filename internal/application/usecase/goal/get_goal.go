package goal

import (
	"context"

	"github.com/google/uuid"

	"github.com/mysavings/backend/internal/application/ledger"
)

// GetGoalInput represents the input for getting a goal.
type GetGoalInput struct {
	GoalID uuid.UUID
}

// GetGoalOutput represents the output of getting a goal.
type GetGoalOutput struct {
	Goal GoalView
}

// GetGoalUseCase handles getting a goal by ID.
type GetGoalUseCase struct {
	ledger *ledger.Ledger
}

// NewGetGoalUseCase creates a new GetGoalUseCase instance.
func NewGetGoalUseCase(l *ledger.Ledger) *GetGoalUseCase {
	return &GetGoalUseCase{
		ledger: l,
	}
}

// Execute performs the goal retrieval.
func (uc *GetGoalUseCase) Execute(ctx context.Context, input GetGoalInput) (*GetGoalOutput, error) {
	g, err := uc.ledger.FindGoal(ctx, input.GoalID)
	if err != nil {
		return nil, err
	}

	return &GetGoalOutput{
		Goal: NewGoalView(g),
	}, nil
}
