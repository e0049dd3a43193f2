package profile

import (
	"context"
	"log/slog"
	"net/mail"
	"strings"

	"github.com/mysavings/backend/internal/application/adapter"
	"github.com/mysavings/backend/internal/domain/entity"
	domainerror "github.com/mysavings/backend/internal/domain/error"
)

// UpdateProfileInput represents the edited profile fields.
type UpdateProfileInput struct {
	Name  string
	Email string // may be empty; reminders are skipped without one
}

// UpdateProfileUseCase validates and stores the profile.
type UpdateProfileUseCase struct {
	repo adapter.ProfileRepository
}

// NewUpdateProfileUseCase creates a new UpdateProfileUseCase instance.
func NewUpdateProfileUseCase(repo adapter.ProfileRepository) *UpdateProfileUseCase {
	return &UpdateProfileUseCase{repo: repo}
}

// Execute performs the profile update.
func (uc *UpdateProfileUseCase) Execute(ctx context.Context, input UpdateProfileInput) (*ProfileOutput, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domainerror.NewProfileError(
			domainerror.ErrCodeInvalidProfileName,
			"name is required",
			domainerror.ErrInvalidProfileName,
		)
	}

	email := strings.TrimSpace(input.Email)
	if email != "" {
		addr, err := mail.ParseAddress(email)
		if err != nil || addr.Address != email {
			return nil, domainerror.NewProfileError(
				domainerror.ErrCodeInvalidProfileEmail,
				"email address is not valid",
				domainerror.ErrInvalidProfileEmail,
			)
		}
	}

	p := entity.NewProfile(name, email)
	if err := uc.repo.Save(ctx, p); err != nil {
		return nil, domainerror.NewProfileError(
			domainerror.ErrCodeProfileStoreFailed,
			"failed to save profile",
			err,
		)
	}

	slog.Info("Profile updated", "has_email", email != "")
	return &ProfileOutput{Profile: p}, nil
}
