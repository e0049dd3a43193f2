package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	chatuc "github.com/mysavings/backend/internal/application/usecase/chat"
	domainerror "github.com/mysavings/backend/internal/domain/error"
	"github.com/mysavings/backend/internal/integration/entrypoint/dto"
)

// ChatController handles the "Ask AI" endpoints.
type ChatController struct {
	openUseCase       *chatuc.OpenChatUseCase
	sendUseCase       *chatuc.SendMessageUseCase
	transcriptUseCase *chatuc.GetTranscriptUseCase
	dismissUseCase    *chatuc.DismissChatUseCase
}

// NewChatController creates a new chat controller instance.
func NewChatController(
	openUseCase *chatuc.OpenChatUseCase,
	sendUseCase *chatuc.SendMessageUseCase,
	transcriptUseCase *chatuc.GetTranscriptUseCase,
	dismissUseCase *chatuc.DismissChatUseCase,
) *ChatController {
	return &ChatController{
		openUseCase:       openUseCase,
		sendUseCase:       sendUseCase,
		transcriptUseCase: transcriptUseCase,
		dismissUseCase:    dismissUseCase,
	}
}

// Open handles POST /chat/open requests.
func (c *ChatController) Open(ctx *gin.Context) {
	output, err := c.openUseCase.Execute(ctx.Request.Context(), chatuc.OpenChatInput{})
	if err != nil {
		c.handleChatError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToTranscriptResponse(output.Open, output.Messages))
}

// Send handles POST /chat/messages requests. The reply is not part of the
// response; clients poll GET /chat/messages for it.
func (c *ChatController) Send(ctx *gin.Context) {
	var req dto.SendChatMessageRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	output, err := c.sendUseCase.Execute(ctx.Request.Context(), chatuc.SendMessageInput{Text: req.Text})
	if err != nil {
		c.handleChatError(ctx, err)
		return
	}
	ctx.JSON(http.StatusAccepted, dto.ToChatMessageResponse(output.Message))
}

// Transcript handles GET /chat/messages requests.
func (c *ChatController) Transcript(ctx *gin.Context) {
	output, err := c.transcriptUseCase.Execute(ctx.Request.Context(), chatuc.GetTranscriptInput{})
	if err != nil {
		c.handleChatError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToTranscriptResponse(output.Open, output.Messages))
}

// Dismiss handles DELETE /chat requests.
func (c *ChatController) Dismiss(ctx *gin.Context) {
	if err := c.dismissUseCase.Execute(ctx.Request.Context(), chatuc.DismissChatInput{}); err != nil {
		c.handleChatError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

func (c *ChatController) handleChatError(ctx *gin.Context, err error) {
	var chatErr *domainerror.ChatError
	if errors.As(err, &chatErr) {
		status := http.StatusInternalServerError
		switch chatErr.Code {
		case domainerror.ErrCodeEmptyChatMessage:
			status = http.StatusUnprocessableEntity
		case domainerror.ErrCodeChatNotOpen:
			status = http.StatusConflict
		case domainerror.ErrCodeChatRateLimited:
			status = http.StatusTooManyRequests
		}
		ctx.JSON(status, dto.ErrorResponse{
			Error: chatErr.Message,
			Code:  string(chatErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}
