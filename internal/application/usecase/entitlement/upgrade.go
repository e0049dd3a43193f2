package entitlement

import (
	"context"

	"github.com/mysavings/backend/internal/application/entitlement"
	"github.com/mysavings/backend/internal/application/ledger"
)

// UpgradeInput represents the input for the upgrade command.
type UpgradeInput struct{}

// UpgradeOutput reports the plan after the upgrade.
type UpgradeOutput struct {
	EntitlementOutput
	AlreadyPremium bool
}

// UpgradeUseCase moves the installation to the premium plan.
// No payment is taken; the command itself grants premium.
type UpgradeUseCase struct {
	gate   *entitlement.Gate
	ledger *ledger.Ledger
}

// NewUpgradeUseCase creates a new UpgradeUseCase instance.
func NewUpgradeUseCase(gate *entitlement.Gate, l *ledger.Ledger) *UpgradeUseCase {
	return &UpgradeUseCase{
		gate:   gate,
		ledger: l,
	}
}

// Execute performs the upgrade. Calling it on a premium plan is a no-op.
func (uc *UpgradeUseCase) Execute(ctx context.Context, input UpgradeInput) (*UpgradeOutput, error) {
	already := uc.gate.IsPremium()

	if err := uc.gate.Upgrade(ctx); err != nil {
		return nil, err
	}

	return &UpgradeOutput{
		EntitlementOutput: *describe(uc.gate, uc.ledger),
		AlreadyPremium:    already,
	}, nil
}
