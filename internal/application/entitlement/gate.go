// Package entitlement tracks the free/premium plan of the installation.
package entitlement

import (
	"context"
	"log/slog"
	"sync"

	"github.com/mysavings/backend/internal/application/adapter"
	"github.com/mysavings/backend/internal/domain/entity"
	domainerror "github.com/mysavings/backend/internal/domain/error"
)

// Gate is the two-state Free -> Premium machine consulted by the ledger
// before every goal creation. It never reverts to Free.
type Gate struct {
	mu   sync.RWMutex
	plan entity.Plan
	repo adapter.EntitlementRepository
}

// NewGate creates a Gate on the free plan. repo may be nil, in which case
// the plan only lives as long as the process.
func NewGate(repo adapter.EntitlementRepository) *Gate {
	return &Gate{
		plan: entity.PlanFree,
		repo: repo,
	}
}

// Load restores the stored plan.
func (g *Gate) Load(ctx context.Context) error {
	if g.repo == nil {
		return nil
	}

	plan, err := g.repo.GetPlan(ctx)
	if err != nil {
		return domainerror.NewEntitlementError(
			domainerror.ErrCodeEntitlementPersistFailed,
			"failed to load entitlement",
			err,
		)
	}
	if !plan.IsValid() {
		return domainerror.NewEntitlementError(
			domainerror.ErrCodeInvalidPlan,
			"stored plan is invalid",
			domainerror.ErrInvalidPlan,
		)
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	// A premium gate is never downgraded by a stale store.
	if !g.plan.IsPremium() {
		g.plan = plan
	}
	return nil
}

// Plan returns the current plan.
func (g *Gate) Plan() entity.Plan {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.plan
}

// IsPremium reports whether the premium plan is active.
func (g *Gate) IsPremium() bool {
	return g.Plan().IsPremium()
}

// Upgrade moves the gate to premium. Upgrading twice is a no-op.
// If the plan cannot be persisted the gate stays on the free plan.
func (g *Gate) Upgrade(ctx context.Context) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.plan.IsPremium() {
		return nil
	}

	if g.repo != nil {
		if err := g.repo.SavePlan(ctx, entity.PlanPremium); err != nil {
			return domainerror.NewEntitlementError(
				domainerror.ErrCodeEntitlementPersistFailed,
				"failed to persist upgrade",
				err,
			)
		}
	}

	g.plan = entity.PlanPremium
	slog.Info("Entitlement upgraded", "plan", g.plan)
	return nil
}

// CanCreateGoal encodes the one-free-goal rule: true iff premium or no goal exists yet.
func (g *Gate) CanCreateGoal(currentGoalCount int) bool {
	if g.IsPremium() {
		return true
	}
	return currentGoalCount < entity.FreeGoalLimit
}
