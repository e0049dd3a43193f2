package dto

import (
	entitlementuc "github.com/mysavings/backend/internal/application/usecase/entitlement"
)

// EntitlementResponse describes the plan and its limits.
type EntitlementResponse struct {
	Plan           string `json:"plan"`
	PlanLabel      string `json:"plan_label"`
	IsPremium      bool   `json:"is_premium"`
	GoalLimit      int    `json:"goal_limit"`
	GoalCount      int    `json:"goal_count"`
	CanCreateGoal  bool   `json:"can_create_goal"`
	AlreadyPremium *bool  `json:"already_premium,omitempty"`
}

// ToEntitlementResponse converts the use case output to its DTO.
func ToEntitlementResponse(out entitlementuc.EntitlementOutput) EntitlementResponse {
	return EntitlementResponse{
		Plan:          string(out.Plan),
		PlanLabel:     out.Plan.Label(),
		IsPremium:     out.IsPremium,
		GoalLimit:     out.GoalLimit,
		GoalCount:     out.GoalCount,
		CanCreateGoal: out.CanCreateGoal,
	}
}
