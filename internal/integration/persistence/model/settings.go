package model

import (
	"time"

	"github.com/mysavings/backend/internal/domain/entity"
)

// singletonID is the primary key of single-row tables.
const singletonID = 1

// EntitlementModel represents the single-row entitlements table.
type EntitlementModel struct {
	ID        int       `gorm:"primaryKey;autoIncrement:false"`
	Plan      string    `gorm:"type:varchar(20);not null;default:'free'"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for the EntitlementModel.
func (EntitlementModel) TableName() string {
	return "entitlements"
}

// NewEntitlementModel creates the row holding plan.
func NewEntitlementModel(plan entity.Plan) *EntitlementModel {
	return &EntitlementModel{
		ID:        singletonID,
		Plan:      string(plan),
		UpdatedAt: time.Now().UTC(),
	}
}

// ProfileModel represents the single-row profiles table.
type ProfileModel struct {
	ID        int       `gorm:"primaryKey;autoIncrement:false"`
	Name      string    `gorm:"type:varchar(255);not null"`
	Email     string    `gorm:"type:varchar(255)"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for the ProfileModel.
func (ProfileModel) TableName() string {
	return "profiles"
}

// ToEntity converts a ProfileModel to a domain Profile entity.
func (m *ProfileModel) ToEntity() *entity.Profile {
	return &entity.Profile{
		Name:      m.Name,
		Email:     m.Email,
		UpdatedAt: m.UpdatedAt,
	}
}

// ProfileFromEntity creates a ProfileModel from a domain Profile entity.
func ProfileFromEntity(p *entity.Profile) *ProfileModel {
	return &ProfileModel{
		ID:        singletonID,
		Name:      p.Name,
		Email:     p.Email,
		UpdatedAt: p.UpdatedAt,
	}
}

// All lists every model handled by auto-migration.
func All() []interface{} {
	return []interface{}{
		&GoalModel{},
		&SavingEntryModel{},
		&EntitlementModel{},
		&ProfileModel{},
		&EmailQueueModel{},
	}
}
