// Package error defines domain-specific errors for the MySavings application.
package error

import (
	"errors"
	"strings"
)

// Goal domain errors.
var (
	// ErrGoalNotFound is returned when an operation references an unknown goal.
	ErrGoalNotFound = errors.New("goal not found")

	// ErrGoalLimitExceeded is returned when the free plan already holds its one goal.
	ErrGoalLimitExceeded = errors.New("free plan allows only one goal")

	// ErrInvalidGoalName is returned when the goal name is empty.
	ErrInvalidGoalName = errors.New("goal name is required")

	// ErrInvalidTargetAmount is returned when the target is missing, non-numeric or not positive.
	ErrInvalidTargetAmount = errors.New("invalid target amount")

	// ErrInvalidDuration is returned when the duration in months is missing or not positive.
	ErrInvalidDuration = errors.New("invalid duration")

	// ErrInvalidReminderPolicy is returned when the reminder is not one of the supported policies.
	ErrInvalidReminderPolicy = errors.New("invalid reminder policy")

	// ErrInvalidSavingAmount is returned when a saving amount is not a positive whole number.
	ErrInvalidSavingAmount = errors.New("invalid saving amount")

	// ErrSavedAmountTooLarge is returned when a saving would push the saved amount past the largest representable value.
	ErrSavedAmountTooLarge = errors.New("saved amount too large")

	// ErrInvalidGoalID is returned when a goal ID cannot be parsed.
	ErrInvalidGoalID = errors.New("invalid goal id")

	// ErrLedgerPersistFailed is returned when the ledger could not save a mutation.
	ErrLedgerPersistFailed = errors.New("failed to persist ledger change")

	// ErrCorruptLedger is returned when a loaded goal's saved amount disagrees with its entries.
	ErrCorruptLedger = errors.New("saved amount does not match saving entries")
)

// GoalErrorCode defines error codes for goal errors.
// Format: GOL-XXYYYY where XX is category and YYYY is specific error.
type GoalErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidGoalName       GoalErrorCode = "GOL-010001"
	ErrCodeInvalidTargetAmount   GoalErrorCode = "GOL-010002"
	ErrCodeInvalidDuration       GoalErrorCode = "GOL-010003"
	ErrCodeInvalidReminderPolicy GoalErrorCode = "GOL-010004"
	ErrCodeInvalidSavingAmount   GoalErrorCode = "GOL-010005"
	ErrCodeInvalidGoalID         GoalErrorCode = "GOL-010006"
	ErrCodeMissingGoalFields     GoalErrorCode = "GOL-010007"
	ErrCodeSavedAmountTooLarge   GoalErrorCode = "GOL-010008"

	// Entitlement errors (02XXXX)
	ErrCodeGoalLimitExceeded GoalErrorCode = "GOL-020001"

	// Lookup errors (03XXXX)
	ErrCodeGoalNotFound GoalErrorCode = "GOL-030001"

	// Storage errors (04XXXX)
	ErrCodeLedgerPersistFailed GoalErrorCode = "GOL-040001"
	ErrCodeCorruptLedger       GoalErrorCode = "GOL-040002"
)

const validationCodePrefix = "GOL-01"

// GoalError represents a goal error with code and message.
type GoalError struct {
	Code    GoalErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *GoalError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *GoalError) Unwrap() error {
	return e.Err
}

// IsValidation reports whether the error belongs to the validation category.
func (e *GoalError) IsValidation() bool {
	return strings.HasPrefix(string(e.Code), validationCodePrefix)
}

// NewGoalError creates a new GoalError with the given code and message.
func NewGoalError(code GoalErrorCode, message string, err error) *GoalError {
	return &GoalError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// IsValidation reports whether err is a goal validation error.
// Validation errors never leave any state behind.
func IsValidation(err error) bool {
	var goalErr *GoalError
	return errors.As(err, &goalErr) && goalErr.IsValidation()
}
