package dto

import (
	"time"

	"github.com/mysavings/backend/internal/domain/entity"
)

// UpdateProfileRequest represents the edited profile.
type UpdateProfileRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// ProfileResponse represents the profile in API responses.
type ProfileResponse struct {
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ToProfileResponse converts a Profile to its DTO.
func ToProfileResponse(p *entity.Profile) ProfileResponse {
	return ProfileResponse{
		Name:      p.Name,
		Email:     p.Email,
		UpdatedAt: p.UpdatedAt,
	}
}
