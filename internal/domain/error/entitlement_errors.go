// Package error defines domain-specific errors for the MySavings application.
package error

import "errors"

// Entitlement domain errors.
var (
	// ErrEntitlementPersistFailed is returned when an upgrade could not be saved.
	ErrEntitlementPersistFailed = errors.New("failed to persist entitlement")

	// ErrInvalidPlan is returned when a stored plan value is unknown.
	ErrInvalidPlan = errors.New("invalid plan")
)

// EntitlementErrorCode defines error codes for entitlement errors.
type EntitlementErrorCode string

const (
	ErrCodeEntitlementPersistFailed EntitlementErrorCode = "ENT-010001"
	ErrCodeInvalidPlan              EntitlementErrorCode = "ENT-010002"
)

// EntitlementError represents an entitlement error with code and message.
type EntitlementError struct {
	Code    EntitlementErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *EntitlementError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *EntitlementError) Unwrap() error {
	return e.Err
}

// NewEntitlementError creates a new EntitlementError.
func NewEntitlementError(code EntitlementErrorCode, message string, err error) *EntitlementError {
	return &EntitlementError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
