package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mysavings/backend/internal/application/usecase/analytics"
	"github.com/mysavings/backend/internal/integration/entrypoint/dto"
)

// AnalyticsController handles the analytics endpoint.
type AnalyticsController struct {
	summaryUseCase *analytics.GetSummaryUseCase
}

// NewAnalyticsController creates a new analytics controller instance.
func NewAnalyticsController(summaryUseCase *analytics.GetSummaryUseCase) *AnalyticsController {
	return &AnalyticsController{summaryUseCase: summaryUseCase}
}

// Summary handles GET /analytics/summary requests.
func (c *AnalyticsController) Summary(ctx *gin.Context) {
	output, err := c.summaryUseCase.Execute(ctx.Request.Context(), analytics.GetSummaryInput{})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to compute summary"})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSummaryResponse(output.Summary))
}
