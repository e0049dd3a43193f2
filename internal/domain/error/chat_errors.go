// Package error defines domain-specific errors for the MySavings application.
package error

import "errors"

// Chat domain errors.
var (
	// ErrEmptyChatMessage is returned when a blank message is submitted.
	ErrEmptyChatMessage = errors.New("chat message is empty")

	// ErrChatNotOpen is returned when a message is sent to a dismissed chat.
	ErrChatNotOpen = errors.New("chat is not open")
)

// ChatErrorCode defines error codes for chat errors.
type ChatErrorCode string

const (
	ErrCodeEmptyChatMessage ChatErrorCode = "CHAT-010001"
	ErrCodeChatNotOpen      ChatErrorCode = "CHAT-010002"
	ErrCodeChatRateLimited  ChatErrorCode = "CHAT-020001"
)

// ChatError represents a chat error with code and message.
type ChatError struct {
	Code    ChatErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ChatError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ChatError) Unwrap() error {
	return e.Err
}

// NewChatError creates a new ChatError.
func NewChatError(code ChatErrorCode, message string, err error) *ChatError {
	return &ChatError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
