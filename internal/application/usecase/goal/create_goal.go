// Package goal contains goal-related use cases.
package goal

import (
	"context"
	"strings"

	"github.com/mysavings/backend/internal/application/ledger"
	"github.com/mysavings/backend/internal/domain/entity"
	domainerror "github.com/mysavings/backend/internal/domain/error"
	"github.com/mysavings/backend/internal/domain/valueobject"
)

// CreateGoalInput represents the raw form fields of a new goal.
// Amounts arrive as text and are parsed here.
type CreateGoalInput struct {
	Name           string
	TargetAmount   string
	DurationMonths string
	EndDate        string
	Reminder       string // key or label, empty for the default
}

// CreateGoalOutput represents the output of goal creation.
type CreateGoalOutput struct {
	Goal GoalView
}

// CreateGoalUseCase handles goal creation logic.
type CreateGoalUseCase struct {
	ledger *ledger.Ledger
}

// NewCreateGoalUseCase creates a new CreateGoalUseCase instance.
func NewCreateGoalUseCase(l *ledger.Ledger) *CreateGoalUseCase {
	return &CreateGoalUseCase{
		ledger: l,
	}
}

// Execute performs the goal creation.
func (uc *CreateGoalUseCase) Execute(ctx context.Context, input CreateGoalInput) (*CreateGoalOutput, error) {
	if strings.TrimSpace(input.Name) == "" &&
		strings.TrimSpace(input.TargetAmount) == "" &&
		strings.TrimSpace(input.DurationMonths) == "" {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeMissingGoalFields,
			"name, target and duration are required",
			domainerror.ErrInvalidGoalName,
		)
	}

	target, err := valueobject.ParseWholeAmount(input.TargetAmount)
	if err != nil {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeInvalidTargetAmount,
			"target amount must be a positive whole number",
			domainerror.ErrInvalidTargetAmount,
		)
	}

	duration, err := valueobject.ParseWholeAmount(input.DurationMonths)
	if err != nil || duration > maxDurationMonths {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeInvalidDuration,
			"duration must be a whole number of months",
			domainerror.ErrInvalidDuration,
		)
	}

	reminder, ok := entity.ParseReminderPolicy(input.Reminder)
	if !ok {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeInvalidReminderPolicy,
			"reminder must be one of: 1st of every month, 15th of every month, Last day of every month",
			domainerror.ErrInvalidReminderPolicy,
		)
	}

	goal, err := uc.ledger.CreateGoal(ctx, ledger.NewGoalParams{
		Name:           input.Name,
		TargetAmount:   target,
		DurationMonths: int(duration),
		EndDate:        input.EndDate,
		Reminder:       reminder,
	})
	if err != nil {
		return nil, err
	}

	return &CreateGoalOutput{
		Goal: NewGoalView(*goal),
	}, nil
}

// maxDurationMonths caps the duration at 100 years.
const maxDurationMonths = 1200
