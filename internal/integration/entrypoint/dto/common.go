// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"bytes"
	"encoding/json"
	"strings"
)

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details string `json:"details,omitempty"`
}

// NumberField accepts a JSON number or a numeric string and keeps the raw text.
// Parsing happens in the use case so bad input becomes a validation error.
type NumberField string

// UnmarshalJSON implements json.Unmarshaler.
func (n *NumberField) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*n = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*n = NumberField(strings.TrimSpace(s))
		return nil
	}
	*n = NumberField(data)
	return nil
}

// String returns the raw text.
func (n NumberField) String() string {
	return string(n)
}
