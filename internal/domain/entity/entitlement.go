// Package entity defines the core business entities for the domain layer.
package entity

// Plan represents the entitlement tier of the installation.
type Plan string

const (
	PlanFree    Plan = "free"
	PlanPremium Plan = "premium"
)

// FreeGoalLimit is how many goals a free plan may hold.
const FreeGoalLimit = 1

// IsPremium reports whether the plan is the premium tier.
func (p Plan) IsPremium() bool {
	return p == PlanPremium
}

// IsValid reports whether p is a known plan.
func (p Plan) IsValid() bool {
	return p == PlanFree || p == PlanPremium
}

// Label returns the upper-case name shown on the pricing screen.
func (p Plan) Label() string {
	if p.IsPremium() {
		return "PREMIUM"
	}
	return "FREE"
}
