package dto

import (
	"encoding/json"
	"testing"
)

func TestNumberField_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		body     string
		expected string
	}{
		{body: `{"target_amount": 50000}`, expected: "50000"},
		{body: `{"target_amount": "50000"}`, expected: "50000"},
		{body: `{"target_amount": " 750 "}`, expected: "750"},
		{body: `{"target_amount": "abc"}`, expected: "abc"},
		{body: `{"target_amount": 12.5}`, expected: "12.5"},
		{body: `{"target_amount": null}`, expected: ""},
		{body: `{}`, expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.body, func(t *testing.T) {
			var req CreateGoalRequest
			if err := json.Unmarshal([]byte(tt.body), &req); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if req.TargetAmount.String() != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, req.TargetAmount)
			}
		})
	}
}
