// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/mysavings/backend/internal/application/usecase/goal"
	domainerror "github.com/mysavings/backend/internal/domain/error"
	"github.com/mysavings/backend/internal/integration/entrypoint/dto"
)

// GoalController handles goal and saving endpoints.
type GoalController struct {
	listUseCase        *goal.ListGoalsUseCase
	createUseCase      *goal.CreateGoalUseCase
	getUseCase         *goal.GetGoalUseCase
	addSavingUseCase   *goal.AddSavingUseCase
	listSavingsUseCase *goal.ListSavingsUseCase
}

// NewGoalController creates a new goal controller instance.
func NewGoalController(
	listUseCase *goal.ListGoalsUseCase,
	createUseCase *goal.CreateGoalUseCase,
	getUseCase *goal.GetGoalUseCase,
	addSavingUseCase *goal.AddSavingUseCase,
	listSavingsUseCase *goal.ListSavingsUseCase,
) *GoalController {
	return &GoalController{
		listUseCase:        listUseCase,
		createUseCase:      createUseCase,
		getUseCase:         getUseCase,
		addSavingUseCase:   addSavingUseCase,
		listSavingsUseCase: listSavingsUseCase,
	}
}

// List handles GET /goals requests.
func (c *GoalController) List(ctx *gin.Context) {
	output, err := c.listUseCase.Execute(ctx.Request.Context(), goal.ListGoalsInput{})
	if err != nil {
		c.handleGoalError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToGoalListResponse(output.Goals, output.Summary))
}

// Create handles POST /goals requests.
func (c *GoalController) Create(ctx *gin.Context) {
	var req dto.CreateGoalRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingGoalFields),
		})
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), goal.CreateGoalInput{
		Name:           req.Name,
		TargetAmount:   req.TargetAmount.String(),
		DurationMonths: req.DurationMonths.String(),
		EndDate:        req.EndDate,
		Reminder:       req.Reminder,
	})
	if err != nil {
		c.handleGoalError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToGoalResponse(output.Goal))
}

// Get handles GET /goals/:id requests.
func (c *GoalController) Get(ctx *gin.Context) {
	goalID, ok := c.parseGoalID(ctx)
	if !ok {
		return
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), goal.GetGoalInput{GoalID: goalID})
	if err != nil {
		c.handleGoalError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToGoalResponse(output.Goal))
}

// AddSaving handles POST /goals/:id/savings requests.
func (c *GoalController) AddSaving(ctx *gin.Context) {
	goalID, ok := c.parseGoalID(ctx)
	if !ok {
		return
	}

	var req dto.AddSavingRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeInvalidSavingAmount),
		})
		return
	}

	output, err := c.addSavingUseCase.Execute(ctx.Request.Context(), goal.AddSavingInput{
		GoalID:      goalID,
		Amount:      req.Amount.String(),
		Date:        req.Date,
		Description: req.Description,
	})
	if err != nil {
		c.handleGoalError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.AddSavingResponse{
		Entry: dto.ToSavingEntryResponse(output.Entry),
		Goal:  dto.ToGoalResponse(output.Goal),
	})
}

// ListSavings handles GET /goals/:id/savings requests.
func (c *GoalController) ListSavings(ctx *gin.Context) {
	goalID, ok := c.parseGoalID(ctx)
	if !ok {
		return
	}

	output, err := c.listSavingsUseCase.Execute(ctx.Request.Context(), goal.ListSavingsInput{GoalID: goalID})
	if err != nil {
		c.handleGoalError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SavingHistoryResponse{
		GoalID:  output.GoalID.String(),
		Entries: dto.ToSavingEntryResponses(output.Entries),
		Total:   output.Total,
	})
}

func (c *GoalController) parseGoalID(ctx *gin.Context) (uuid.UUID, bool) {
	goalID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid goal ID format",
			Code:  string(domainerror.ErrCodeInvalidGoalID),
		})
		return uuid.Nil, false
	}
	return goalID, true
}

// handleGoalError handles goal errors and returns appropriate HTTP responses.
func (c *GoalController) handleGoalError(ctx *gin.Context, err error) {
	var goalErr *domainerror.GoalError
	if errors.As(err, &goalErr) {
		statusCode := c.getStatusCodeForGoalError(goalErr.Code)
		if statusCode == http.StatusInternalServerError {
			slog.Error("Goal operation failed", "code", goalErr.Code, "error", err)
		}
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: goalErr.Message,
			Code:  string(goalErr.Code),
		})
		return
	}

	slog.Error("Unexpected goal error", "error", err)
	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForGoalError maps goal error codes to HTTP status codes.
func (c *GoalController) getStatusCodeForGoalError(code domainerror.GoalErrorCode) int {
	switch code {
	case domainerror.ErrCodeGoalNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeGoalLimitExceeded:
		return http.StatusForbidden
	case domainerror.ErrCodeInvalidGoalID:
		return http.StatusBadRequest
	case domainerror.ErrCodeInvalidGoalName,
		domainerror.ErrCodeInvalidTargetAmount,
		domainerror.ErrCodeInvalidDuration,
		domainerror.ErrCodeInvalidReminderPolicy,
		domainerror.ErrCodeInvalidSavingAmount,
		domainerror.ErrCodeSavedAmountTooLarge,
		domainerror.ErrCodeMissingGoalFields:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
