// Package entity defines the core business entities for the domain layer.
package entity

import (
	"strings"
	"time"
)

// ReminderPolicy represents the day of the month a goal reminder fires.
type ReminderPolicy string

const (
	ReminderFirstOfMonth     ReminderPolicy = "first-of-month"
	ReminderFifteenthOfMonth ReminderPolicy = "fifteenth-of-month"
	ReminderLastDayOfMonth   ReminderPolicy = "last-day-of-month"
)

// DefaultReminderPolicy is used when a goal is created without one.
const DefaultReminderPolicy = ReminderFirstOfMonth

var reminderLabels = map[ReminderPolicy]string{
	ReminderFirstOfMonth:     "1st of every month",
	ReminderFifteenthOfMonth: "15th of every month",
	ReminderLastDayOfMonth:   "Last day of every month",
}

// ReminderPolicies lists every supported policy in display order.
func ReminderPolicies() []ReminderPolicy {
	return []ReminderPolicy{ReminderFirstOfMonth, ReminderFifteenthOfMonth, ReminderLastDayOfMonth}
}

// ParseReminderPolicy accepts either the policy key or its display label.
// An empty value yields the default policy.
func ParseReminderPolicy(raw string) (ReminderPolicy, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return DefaultReminderPolicy, true
	}
	for policy, label := range reminderLabels {
		if strings.EqualFold(raw, string(policy)) || strings.EqualFold(raw, label) {
			return policy, true
		}
	}
	return "", false
}

// IsValid reports whether the policy is one of the enumerated values.
func (p ReminderPolicy) IsValid() bool {
	_, ok := reminderLabels[p]
	return ok
}

// Label returns the human readable form shown next to a goal.
func (p ReminderPolicy) Label() string {
	return reminderLabels[p]
}

// DueOn reports whether a reminder with this policy fires on the given day.
func (p ReminderPolicy) DueOn(day time.Time) bool {
	switch p {
	case ReminderFirstOfMonth:
		return day.Day() == 1
	case ReminderFifteenthOfMonth:
		return day.Day() == 15
	case ReminderLastDayOfMonth:
		return day.AddDate(0, 0, 1).Day() == 1
	default:
		return false
	}
}
