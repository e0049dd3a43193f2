package goal

import (
	"context"

	"github.com/mysavings/backend/internal/application/ledger"
	"github.com/mysavings/backend/internal/application/metrics"
)

// ListGoalsInput represents the input for listing goals.
type ListGoalsInput struct{}

// ListGoalsOutput represents the output of listing goals.
type ListGoalsOutput struct {
	Goals   []GoalView
	Summary metrics.Summary
}

// ListGoalsUseCase handles listing goals logic.
type ListGoalsUseCase struct {
	ledger *ledger.Ledger
}

// NewListGoalsUseCase creates a new ListGoalsUseCase instance.
func NewListGoalsUseCase(l *ledger.Ledger) *ListGoalsUseCase {
	return &ListGoalsUseCase{
		ledger: l,
	}
}

// Execute performs the goal listing. Goals come back in creation order.
func (uc *ListGoalsUseCase) Execute(ctx context.Context, input ListGoalsInput) (*ListGoalsOutput, error) {
	goals := uc.ledger.ListGoals(ctx)

	output := &ListGoalsOutput{
		Goals:   make([]GoalView, 0, len(goals)),
		Summary: metrics.Summarize(goals),
	}
	for _, g := range goals {
		output.Goals = append(output.Goals, NewGoalView(g))
	}

	return output, nil
}
