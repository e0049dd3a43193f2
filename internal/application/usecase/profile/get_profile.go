// Package profile contains use cases for the display profile.
package profile

import (
	"context"

	"github.com/mysavings/backend/internal/application/adapter"
	"github.com/mysavings/backend/internal/domain/entity"
	domainerror "github.com/mysavings/backend/internal/domain/error"
)

// GetProfileInput represents the input for reading the profile.
type GetProfileInput struct{}

// ProfileOutput represents the profile handed back to callers.
type ProfileOutput struct {
	Profile *entity.Profile
}

// GetProfileUseCase reads the profile, falling back to the default one.
type GetProfileUseCase struct {
	repo adapter.ProfileRepository
}

// NewGetProfileUseCase creates a new GetProfileUseCase instance.
func NewGetProfileUseCase(repo adapter.ProfileRepository) *GetProfileUseCase {
	return &GetProfileUseCase{repo: repo}
}

// Execute performs the profile lookup.
func (uc *GetProfileUseCase) Execute(ctx context.Context, input GetProfileInput) (*ProfileOutput, error) {
	p, err := uc.repo.Get(ctx)
	if err != nil {
		return nil, domainerror.NewProfileError(
			domainerror.ErrCodeProfileStoreFailed,
			"failed to load profile",
			err,
		)
	}
	if p == nil {
		p = entity.DefaultProfile()
	}
	return &ProfileOutput{Profile: p}, nil
}
