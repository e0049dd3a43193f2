package controller

import (
	"errors"

	domainerror "github.com/mysavings/backend/internal/domain/error"
)

// entitlementErrorCode extracts the code of an EntitlementError, if any.
func entitlementErrorCode(err error) string {
	var entErr *domainerror.EntitlementError
	if errors.As(err, &entErr) {
		return string(entErr.Code)
	}
	return ""
}
