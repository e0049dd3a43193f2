// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/mysavings/backend/internal/domain/entity"
)

// EntitlementRepository persists the process-wide plan.
type EntitlementRepository interface {
	// GetPlan returns the stored plan, or entity.PlanFree when nothing is stored.
	GetPlan(ctx context.Context) (entity.Plan, error)

	// SavePlan stores the plan.
	SavePlan(ctx context.Context, plan entity.Plan) error
}
