// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/mysavings/backend/internal/domain/entity"
)

// ProfileRepository persists the single display profile.
type ProfileRepository interface {
	// Get returns the stored profile, or nil when none has been saved.
	Get(ctx context.Context) (*entity.Profile, error)

	// Save replaces the stored profile.
	Save(ctx context.Context, profile *entity.Profile) error
}
