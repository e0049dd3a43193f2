// Package entitlement contains plan-related use cases.
package entitlement

import (
	"context"

	"github.com/mysavings/backend/internal/application/entitlement"
	"github.com/mysavings/backend/internal/application/ledger"
	"github.com/mysavings/backend/internal/domain/entity"
)

// GetEntitlementInput represents the input for reading the plan.
type GetEntitlementInput struct{}

// EntitlementOutput describes the plan and what it currently allows.
type EntitlementOutput struct {
	Plan          entity.Plan
	IsPremium     bool
	GoalLimit     int // 0 means unlimited
	GoalCount     int
	CanCreateGoal bool
}

// GetEntitlementUseCase reports the current plan.
type GetEntitlementUseCase struct {
	gate   *entitlement.Gate
	ledger *ledger.Ledger
}

// NewGetEntitlementUseCase creates a new GetEntitlementUseCase instance.
func NewGetEntitlementUseCase(gate *entitlement.Gate, l *ledger.Ledger) *GetEntitlementUseCase {
	return &GetEntitlementUseCase{
		gate:   gate,
		ledger: l,
	}
}

// Execute performs the plan lookup.
func (uc *GetEntitlementUseCase) Execute(ctx context.Context, input GetEntitlementInput) (*EntitlementOutput, error) {
	return describe(uc.gate, uc.ledger), nil
}

func describe(gate *entitlement.Gate, l *ledger.Ledger) *EntitlementOutput {
	count := l.Count()
	out := &EntitlementOutput{
		Plan:          gate.Plan(),
		IsPremium:     gate.IsPremium(),
		GoalCount:     count,
		CanCreateGoal: gate.CanCreateGoal(count),
	}
	if !out.IsPremium {
		out.GoalLimit = entity.FreeGoalLimit
	}
	return out
}
