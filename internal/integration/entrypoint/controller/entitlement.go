package controller

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	entitlementuc "github.com/mysavings/backend/internal/application/usecase/entitlement"
	"github.com/mysavings/backend/internal/integration/entrypoint/dto"
)

// EntitlementController handles plan endpoints.
type EntitlementController struct {
	getUseCase     *entitlementuc.GetEntitlementUseCase
	upgradeUseCase *entitlementuc.UpgradeUseCase
}

// NewEntitlementController creates a new entitlement controller instance.
func NewEntitlementController(
	getUseCase *entitlementuc.GetEntitlementUseCase,
	upgradeUseCase *entitlementuc.UpgradeUseCase,
) *EntitlementController {
	return &EntitlementController{
		getUseCase:     getUseCase,
		upgradeUseCase: upgradeUseCase,
	}
}

// Get handles GET /entitlement requests.
func (c *EntitlementController) Get(ctx *gin.Context) {
	output, err := c.getUseCase.Execute(ctx.Request.Context(), entitlementuc.GetEntitlementInput{})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to read plan"})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToEntitlementResponse(*output))
}

// Upgrade handles POST /entitlement/upgrade requests. Repeated calls return 200.
func (c *EntitlementController) Upgrade(ctx *gin.Context) {
	output, err := c.upgradeUseCase.Execute(ctx.Request.Context(), entitlementuc.UpgradeInput{})
	if err != nil {
		slog.Error("Upgrade failed", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to upgrade plan",
			Code:  entitlementErrorCode(err),
		})
		return
	}

	response := dto.ToEntitlementResponse(output.EntitlementOutput)
	response.AlreadyPremium = &output.AlreadyPremium
	ctx.JSON(http.StatusOK, response)
}
