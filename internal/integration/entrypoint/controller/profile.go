package controller

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mysavings/backend/internal/application/usecase/profile"
	domainerror "github.com/mysavings/backend/internal/domain/error"
	"github.com/mysavings/backend/internal/integration/entrypoint/dto"
)

// ProfileController handles profile endpoints.
type ProfileController struct {
	getUseCase    *profile.GetProfileUseCase
	updateUseCase *profile.UpdateProfileUseCase
}

// NewProfileController creates a new profile controller instance.
func NewProfileController(getUseCase *profile.GetProfileUseCase, updateUseCase *profile.UpdateProfileUseCase) *ProfileController {
	return &ProfileController{
		getUseCase:    getUseCase,
		updateUseCase: updateUseCase,
	}
}

// Get handles GET /profile requests.
func (c *ProfileController) Get(ctx *gin.Context) {
	output, err := c.getUseCase.Execute(ctx.Request.Context(), profile.GetProfileInput{})
	if err != nil {
		c.handleProfileError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToProfileResponse(output.Profile))
}

// Update handles PUT /profile requests.
func (c *ProfileController) Update(ctx *gin.Context) {
	var req dto.UpdateProfileRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), profile.UpdateProfileInput{
		Name:  req.Name,
		Email: req.Email,
	})
	if err != nil {
		c.handleProfileError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToProfileResponse(output.Profile))
}

func (c *ProfileController) handleProfileError(ctx *gin.Context, err error) {
	var profileErr *domainerror.ProfileError
	if errors.As(err, &profileErr) {
		status := http.StatusInternalServerError
		switch profileErr.Code {
		case domainerror.ErrCodeInvalidProfileName, domainerror.ErrCodeInvalidProfileEmail:
			status = http.StatusUnprocessableEntity
		default:
			slog.Error("Profile operation failed", "error", err)
		}
		ctx.JSON(status, dto.ErrorResponse{
			Error: profileErr.Message,
			Code:  string(profileErr.Code),
		})
		return
	}

	slog.Error("Unexpected profile error", "error", err)
	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}
