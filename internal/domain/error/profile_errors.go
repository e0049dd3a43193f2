// Package error defines domain-specific errors for the MySavings application.
package error

import "errors"

// Profile domain errors.
var (
	// ErrInvalidProfileName is returned when the profile name is empty.
	ErrInvalidProfileName = errors.New("profile name is required")

	// ErrInvalidProfileEmail is returned when the email is not a plausible address.
	ErrInvalidProfileEmail = errors.New("invalid profile email")
)

// ProfileErrorCode defines error codes for profile errors.
type ProfileErrorCode string

const (
	ErrCodeInvalidProfileName  ProfileErrorCode = "PRF-010001"
	ErrCodeInvalidProfileEmail ProfileErrorCode = "PRF-010002"
	ErrCodeProfileStoreFailed  ProfileErrorCode = "PRF-020001"
)

// ProfileError represents a profile error with code and message.
type ProfileError struct {
	Code    ProfileErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ProfileError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ProfileError) Unwrap() error {
	return e.Err
}

// NewProfileError creates a new ProfileError.
func NewProfileError(code ProfileErrorCode, message string, err error) *ProfileError {
	return &ProfileError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
