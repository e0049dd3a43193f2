// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/mysavings/backend/internal/application/adapter"
	"github.com/mysavings/backend/internal/domain/entity"
	domainerror "github.com/mysavings/backend/internal/domain/error"
	"github.com/mysavings/backend/internal/integration/persistence/model"
)

// goalRepository implements the adapter.GoalRepository interface.
type goalRepository struct {
	db *gorm.DB
}

// NewGoalRepository creates a new goal repository instance.
func NewGoalRepository(db *gorm.DB) adapter.GoalRepository {
	return &goalRepository{
		db: db,
	}
}

// LoadAll retrieves every goal with its entries, in ledger order.
func (r *goalRepository) LoadAll(ctx context.Context) ([]*entity.Goal, error) {
	var goalModels []model.GoalModel
	result := r.db.WithContext(ctx).
		Preload("Entries", func(db *gorm.DB) *gorm.DB {
			return db.Order("seq ASC")
		}).
		Order("position ASC").
		Find(&goalModels)
	if result.Error != nil {
		return nil, result.Error
	}

	goals := make([]*entity.Goal, len(goalModels))
	for i := range goalModels {
		goals[i] = goalModels[i].ToEntity()
	}
	return goals, nil
}

// Create inserts a new goal after the last one.
func (r *goalRepository) Create(ctx context.Context, goal *entity.Goal) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var last int64
		if err := tx.Model(&model.GoalModel{}).
			Select("COALESCE(MAX(position), 0)").
			Scan(&last).Error; err != nil {
			return fmt.Errorf("failed to read goal position: %w", err)
		}

		if err := tx.Create(model.GoalFromEntity(goal, last+1)).Error; err != nil {
			return fmt.Errorf("failed to create goal: %w", err)
		}
		return nil
	})
}

// AppendEntry stores entry and the goal's new saved amount in one transaction.
func (r *goalRepository) AppendEntry(ctx context.Context, goal *entity.Goal, entry entity.SavingEntry) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&model.GoalModel{}).
			Where("id = ?", goal.ID).
			Updates(map[string]interface{}{
				"saved_amount": goal.SavedAmount,
				"updated_at":   time.Now().UTC(),
			})
		if result.Error != nil {
			return fmt.Errorf("failed to update saved amount: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return domainerror.ErrGoalNotFound
		}

		seq := len(goal.Entries) - 1
		if err := tx.Create(model.SavingEntryFromEntity(entry, seq)).Error; err != nil {
			return fmt.Errorf("failed to create saving entry: %w", err)
		}
		return nil
	})
}
