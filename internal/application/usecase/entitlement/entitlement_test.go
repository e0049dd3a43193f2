package entitlement

import (
	"context"
	"testing"

	"github.com/mysavings/backend/internal/application/entitlement"
	"github.com/mysavings/backend/internal/application/ledger"
	"github.com/mysavings/backend/internal/domain/entity"
)

func TestUpgradeUseCase(t *testing.T) {
	ctx := context.Background()
	gate := entitlement.NewGate(nil)
	l := ledger.New(gate, nil)

	if _, err := l.CreateGoal(ctx, ledger.NewGoalParams{Name: "A", TargetAmount: 100, DurationMonths: 1}); err != nil {
		t.Fatalf("create: %v", err)
	}

	before, _ := NewGetEntitlementUseCase(gate, l).Execute(ctx, GetEntitlementInput{})
	if before.Plan != entity.PlanFree || before.CanCreateGoal || before.GoalLimit != 1 || before.GoalCount != 1 {
		t.Errorf("unexpected free entitlement: %+v", before)
	}

	upgrade := NewUpgradeUseCase(gate, l)
	first, err := upgrade.Execute(ctx, UpgradeInput{})
	if err != nil {
		t.Fatalf("upgrade: %v", err)
	}
	if first.AlreadyPremium || !first.IsPremium || !first.CanCreateGoal || first.GoalLimit != 0 {
		t.Errorf("unexpected first upgrade output: %+v", first)
	}

	second, err := upgrade.Execute(ctx, UpgradeInput{})
	if err != nil {
		t.Fatalf("second upgrade: %v", err)
	}
	if !second.AlreadyPremium || !second.IsPremium {
		t.Errorf("expected idempotent upgrade, got %+v", second)
	}
}
