package persistence

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/mysavings/backend/internal/application/adapter"
	"github.com/mysavings/backend/internal/domain/entity"
	"github.com/mysavings/backend/internal/integration/persistence/model"
)

// entitlementRepository implements the adapter.EntitlementRepository interface.
type entitlementRepository struct {
	db *gorm.DB
}

// NewEntitlementRepository creates a new entitlement repository instance.
func NewEntitlementRepository(db *gorm.DB) adapter.EntitlementRepository {
	return &entitlementRepository{
		db: db,
	}
}

// GetPlan returns the stored plan, or the free plan when nothing is stored.
func (r *entitlementRepository) GetPlan(ctx context.Context) (entity.Plan, error) {
	var m model.EntitlementModel
	result := r.db.WithContext(ctx).First(&m)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return entity.PlanFree, nil
		}
		return "", result.Error
	}
	return entity.Plan(m.Plan), nil
}

// SavePlan upserts the plan row.
func (r *entitlementRepository) SavePlan(ctx context.Context, plan entity.Plan) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(model.NewEntitlementModel(plan)).Error
}
